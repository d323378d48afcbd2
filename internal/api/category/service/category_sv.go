package categoryService

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/N0mena/Expenses-Track/internal/api/category"
	"github.com/N0mena/Expenses-Track/internal/entity"
	contextPkg "github.com/N0mena/Expenses-Track/pkg/context"
	"github.com/sirupsen/logrus"
)

func (s *categoryService) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Category{}, err
	}

	name := strings.TrimSpace(req.Name)

	// Name uniqueness is case-insensitive per user. The unique index is the
	// backstop, this check gives the clean conflict response.
	if _, err := repo.Categories.GetCategoryByName(ctx, name, req.UserID); err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       name,
		}).Warn("Category name already taken")
		return entity.Category{}, category.ErrCategoryAlreadyExists
	} else if !errors.Is(err, category.ErrCategoryNotFound) {
		return entity.Category{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Category{}, err
	}

	cat := entity.Category{
		ID:        ULID,
		UserID:    req.UserID,
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := repo.Categories.CreateCategory(ctx, cat); err != nil {
		if errors.Is(err, category.ErrCategoryAlreadyExists) {
			return entity.Category{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create category")
		return entity.Category{}, category.ErrCreateCategory
	}

	return cat, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string, userID string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Category{}, err
	}

	return repo.Categories.GetCategoryByID(ctx, id, userID)
}

func (s *categoryService) GetCategoriesByUserID(ctx context.Context, userID string) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.Categories.GetCategoriesByUserID(ctx, userID)
}

func (s *categoryService) UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Category{}, err
	}

	existing, err := repo.Categories.GetCategoryByID(ctx, req.ID, req.UserID)
	if err != nil {
		return entity.Category{}, err
	}

	name := strings.TrimSpace(req.Name)

	if !strings.EqualFold(existing.Name, name) {
		if _, err := repo.Categories.GetCategoryByName(ctx, name, req.UserID); err == nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"name":       name,
			}).Warn("Category name already taken")
			return entity.Category{}, category.ErrCategoryAlreadyExists
		} else if !errors.Is(err, category.ErrCategoryNotFound) {
			return entity.Category{}, err
		}
	}

	existing.Name = name
	existing.UpdatedAt = time.Now()

	if err := repo.Categories.UpdateCategory(ctx, existing); err != nil {
		if errors.Is(err, category.ErrCategoryAlreadyExists) || errors.Is(err, category.ErrCategoryNotFound) {
			return entity.Category{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update category")
		return entity.Category{}, category.ErrUpdateCategory
	}

	return existing, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if _, err := repo.Categories.GetCategoryByID(ctx, id, userID); err != nil {
		return err
	}

	total, err := repo.Categories.CountExpensesByCategory(ctx, id)
	if err != nil {
		return err
	}

	if total > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"category_id": id,
			"expenses":    total,
		}).Warn("Category still referenced by expenses")
		return category.ErrCategoryInUse
	}

	if err := repo.Categories.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete category")
		return category.ErrDeleteCategory
	}

	return nil
}
