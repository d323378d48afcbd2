package expenseService

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/N0mena/Expenses-Track/internal/api/expense"
	"github.com/N0mena/Expenses-Track/internal/entity"
	contextPkg "github.com/N0mena/Expenses-Track/pkg/context"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// expenseDates holds the parsed schedule fields after kind-specific
// validation. One-time expenses carry Date only, recurring ones carry
// StartDate and an optional EndDate.
type expenseDates struct {
	Date      time.Time
	StartDate time.Time
	EndDate   *time.Time
}

func (s *expenseService) CreateExpense(ctx context.Context, req expense.CreateExpenseRequest, receipt *multipart.FileHeader) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"amount":     req.Amount.String(),
		}).Warn("Invalid expense amount")
		return entity.Expense{}, expense.ErrInvalidAmount
	}

	kind := entity.ExpenseKind(req.Kind)
	dates, err := s.parseDates(requestID, kind, req.Date, req.StartDate, req.EndDate)
	if err != nil {
		return entity.Expense{}, err
	}

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Expense{}, err
	}

	if _, err := repo.Categories.GetCategoryByID(ctx, req.CategoryID, req.UserID); err != nil {
		return entity.Expense{}, err
	}

	receiptURL := ""
	if receipt != nil {
		if err := s.utils.ValidateReceiptFile(receipt); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"file_name":  receipt.Filename,
				"error":      err.Error(),
			}).Warn("Invalid receipt file")
			return entity.Expense{}, expense.ErrInvalidReceiptFile
		}

		receiptURL, err = s.s3.UploadFile(receipt)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"file_name":  receipt.Filename,
				"error":      err.Error(),
			}).Error("Failed to upload receipt to S3")
			return entity.Expense{}, expense.ErrUploadReceipt
		}
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Expense{}, err
	}

	exp := entity.Expense{
		ID:          ULID,
		UserID:      req.UserID,
		Amount:      req.Amount,
		Kind:        kind,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Date:        dates.Date,
		StartDate:   dates.StartDate,
		EndDate:     dates.EndDate,
		ReceiptURL:  receiptURL,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := repo.Expenses.CreateExpense(ctx, exp); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create expense")
		return entity.Expense{}, expense.ErrCreateExpense
	}

	return exp, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, id string, userID string) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Expense{}, err
	}

	exp, err := repo.Expenses.GetExpenseByID(ctx, id)
	if err != nil {
		return entity.Expense{}, err
	}

	if exp.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"expense_id": id,
		}).Warn("Expense does not belong to user")
		return entity.Expense{}, expense.ErrExpenseNotFound
	}

	if exp.ReceiptURL != "" {
		presigned, err := s.s3.PresignUrl(exp.ReceiptURL)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"expense_id": id,
				"error":      err.Error(),
			}).Warn("Failed to presign receipt URL")
		} else {
			exp.ReceiptURL = presigned
		}
	}

	return exp, nil
}

func (s *expenseService) GetExpensesByUserID(ctx context.Context, userID string) ([]entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.Expenses.GetExpensesByUserID(ctx, userID)
}

func (s *expenseService) UpdateExpense(ctx context.Context, req expense.UpdateExpenseRequest) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"amount":     req.Amount.String(),
		}).Warn("Invalid expense amount")
		return entity.Expense{}, expense.ErrInvalidAmount
	}

	kind := entity.ExpenseKind(req.Kind)
	dates, err := s.parseDates(requestID, kind, req.Date, req.StartDate, req.EndDate)
	if err != nil {
		return entity.Expense{}, err
	}

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Expense{}, err
	}

	existing, err := repo.Expenses.GetExpenseByID(ctx, req.ID)
	if err != nil {
		return entity.Expense{}, err
	}

	if existing.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"expense_id": req.ID,
		}).Warn("Expense does not belong to user")
		return entity.Expense{}, expense.ErrExpenseNotFound
	}

	if _, err := repo.Categories.GetCategoryByID(ctx, req.CategoryID, req.UserID); err != nil {
		return entity.Expense{}, err
	}

	exp := entity.Expense{
		ID:          existing.ID,
		UserID:      existing.UserID,
		Amount:      req.Amount,
		Kind:        kind,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Date:        dates.Date,
		StartDate:   dates.StartDate,
		EndDate:     dates.EndDate,
		ReceiptURL:  existing.ReceiptURL,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now(),
	}

	if err := repo.Expenses.UpdateExpense(ctx, exp); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update expense")
		return entity.Expense{}, expense.ErrUpdateExpense
	}

	return exp, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Expenses.GetExpenseByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"expense_id": id,
		}).Warn("Expense does not belong to user")
		return expense.ErrExpenseNotFound
	}

	if err := repo.Expenses.DeleteExpense(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete expense")
		return expense.ErrDeleteExpense
	}

	if existing.ReceiptURL != "" {
		if err := s.s3.DeleteFile(existing.ReceiptURL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"expense_id": id,
				"error":      err.Error(),
			}).Warn("Failed to delete receipt from S3")
		}
	}

	return nil
}

// parseDates validates the schedule fields that belong to each kind: a
// one-time expense needs its single date, a recurring one needs a start
// date and may carry an end date that is not before it.
func (s *expenseService) parseDates(requestID string, kind entity.ExpenseKind, date, startDate, endDate string) (expenseDates, error) {
	var dates expenseDates

	switch kind {
	case entity.ExpenseKindOneTime:
		if date == "" {
			return dates, expense.ErrMissingDate
		}

		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"date":       date,
			}).Warn("Invalid expense date")
			return dates, expense.ErrInvalidDateFormat
		}
		dates.Date = parsed

	case entity.ExpenseKindRecurring:
		if startDate == "" {
			return dates, expense.ErrMissingStartDate
		}

		parsedStart, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"start_date": startDate,
			}).Warn("Invalid expense start date")
			return dates, expense.ErrInvalidDateFormat
		}
		dates.StartDate = parsedStart

		if endDate != "" {
			parsedEnd, err := time.Parse("2006-01-02", endDate)
			if err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"end_date":   endDate,
				}).Warn("Invalid expense end date")
				return dates, expense.ErrInvalidDateFormat
			}

			if parsedEnd.Before(parsedStart) {
				return dates, expense.ErrInvalidDateRange
			}
			dates.EndDate = &parsedEnd
		}

	default:
		return dates, expense.ErrInvalidExpenseKind
	}

	return dates, nil
}
