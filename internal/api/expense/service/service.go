package expenseService

import (
	"mime/multipart"

	"github.com/N0mena/Expenses-Track/internal/api/expense"
	expenseRepository "github.com/N0mena/Expenses-Track/internal/api/expense/repository"
	"github.com/N0mena/Expenses-Track/internal/entity"
	"github.com/N0mena/Expenses-Track/pkg/s3"
	"github.com/N0mena/Expenses-Track/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IExpenseService interface {
	CreateExpense(ctx context.Context, req expense.CreateExpenseRequest, receipt *multipart.FileHeader) (entity.Expense, error)
	GetExpenseByID(ctx context.Context, id string, userID string) (entity.Expense, error)
	GetExpensesByUserID(ctx context.Context, userID string) ([]entity.Expense, error)
	UpdateExpense(ctx context.Context, req expense.UpdateExpenseRequest) (entity.Expense, error)
	DeleteExpense(ctx context.Context, id string, userID string) error
}

type expenseService struct {
	log               *logrus.Logger
	expenseRepository expenseRepository.Repository
	s3                s3.ItfS3
	utils             utils.IUtils
}

func NewExpenseService(
	log *logrus.Logger,
	er expenseRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IExpenseService {
	return &expenseService{
		log:               log,
		expenseRepository: er,
		s3:                s3Client,
		utils:             utils,
	}
}
