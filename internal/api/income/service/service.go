package incomeService

import (
	"github.com/N0mena/Expenses-Track/internal/api/income"
	incomeRepository "github.com/N0mena/Expenses-Track/internal/api/income/repository"
	"github.com/N0mena/Expenses-Track/internal/entity"
	"github.com/N0mena/Expenses-Track/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IIncomeService interface {
	CreateIncome(ctx context.Context, req income.CreateIncomeRequest) (entity.Income, error)
	GetIncomeByID(ctx context.Context, id string, userID string) (entity.Income, error)
	GetIncomesByUserID(ctx context.Context, userID string) ([]entity.Income, error)
	UpdateIncome(ctx context.Context, req income.UpdateIncomeRequest) (entity.Income, error)
	DeleteIncome(ctx context.Context, id string, userID string) error
}

type incomeService struct {
	log              *logrus.Logger
	incomeRepository incomeRepository.Repository
	utils            utils.IUtils
}

func NewIncomeService(log *logrus.Logger, ir incomeRepository.Repository, utils utils.IUtils) IIncomeService {
	return &incomeService{
		log:              log,
		incomeRepository: ir,
		utils:            utils,
	}
}
