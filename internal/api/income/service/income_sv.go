package incomeService

import (
	"context"
	"time"

	"github.com/N0mena/Expenses-Track/internal/api/income"
	"github.com/N0mena/Expenses-Track/internal/entity"
	contextPkg "github.com/N0mena/Expenses-Track/pkg/context"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func (s *incomeService) CreateIncome(ctx context.Context, req income.CreateIncomeRequest) (entity.Income, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Income{}, err
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"amount":     req.Amount.String(),
		}).Warn("Invalid income amount")
		return entity.Income{}, income.ErrInvalidAmount
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Invalid income date")
		return entity.Income{}, income.ErrInvalidIncomeDay
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Income{}, err
	}

	inc := entity.Income{
		ID:          ULID,
		UserID:      req.UserID,
		Amount:      req.Amount,
		Date:        date,
		Source:      req.Source,
		Description: req.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := repo.Incomes.CreateIncome(ctx, inc); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create income")
		return entity.Income{}, income.ErrCreateIncome
	}

	return inc, nil
}

func (s *incomeService) GetIncomeByID(ctx context.Context, id string, userID string) (entity.Income, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Income{}, err
	}

	inc, err := repo.Incomes.GetIncomeByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get income by ID")
		return entity.Income{}, err
	}

	if inc.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"income_user_id": inc.UserID,
		}).Warn("Income does not belong to user")
		return entity.Income{}, income.ErrIncomeNotFound
	}

	return inc, nil
}

func (s *incomeService) GetIncomesByUserID(ctx context.Context, userID string) ([]entity.Income, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	incomes, err := repo.Incomes.GetIncomesByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get incomes by user ID")
		return nil, err
	}

	return incomes, nil
}

func (s *incomeService) UpdateIncome(ctx context.Context, req income.UpdateIncomeRequest) (entity.Income, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Income{}, err
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"amount":     req.Amount.String(),
		}).Warn("Invalid income amount")
		return entity.Income{}, income.ErrInvalidAmount
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Invalid income date")
		return entity.Income{}, income.ErrInvalidIncomeDay
	}

	existing, err := repo.Incomes.GetIncomeByID(ctx, req.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Warn("Failed to get existing income")
		return entity.Income{}, err
	}

	if existing.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"income_user_id": existing.UserID,
		}).Warn("Income does not belong to user")
		return entity.Income{}, income.ErrIncomeNotFound
	}

	inc := entity.Income{
		ID:          req.ID,
		UserID:      req.UserID,
		Amount:      req.Amount,
		Date:        date,
		Source:      req.Source,
		Description: req.Description,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now(),
	}

	if err := repo.Incomes.UpdateIncome(ctx, inc); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update income")
		return entity.Income{}, income.ErrUpdateIncome
	}

	return inc, nil
}

func (s *incomeService) DeleteIncome(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Incomes.GetIncomeByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get existing income")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"income_user_id": existing.UserID,
		}).Warn("Income does not belong to user")
		return income.ErrIncomeNotFound
	}

	if err := repo.Incomes.DeleteIncome(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete income")
		return income.ErrDeleteIncome
	}

	return nil
}
