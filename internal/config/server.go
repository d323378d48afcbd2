package config

import (
	"fmt"
	"os"

	"github.com/N0mena/Expenses-Track/database/postgres"
	authHandler "github.com/N0mena/Expenses-Track/internal/api/auth/handler"
	authRepository "github.com/N0mena/Expenses-Track/internal/api/auth/repository"
	authService "github.com/N0mena/Expenses-Track/internal/api/auth/service"
	categoryHandler "github.com/N0mena/Expenses-Track/internal/api/category/handler"
	categoryRepository "github.com/N0mena/Expenses-Track/internal/api/category/repository"
	categoryService "github.com/N0mena/Expenses-Track/internal/api/category/service"
	dashboardHandler "github.com/N0mena/Expenses-Track/internal/api/dashboard/handler"
	dashboardRepository "github.com/N0mena/Expenses-Track/internal/api/dashboard/repository"
	dashboardService "github.com/N0mena/Expenses-Track/internal/api/dashboard/service"
	expenseHandler "github.com/N0mena/Expenses-Track/internal/api/expense/handler"
	expenseRepository "github.com/N0mena/Expenses-Track/internal/api/expense/repository"
	expenseService "github.com/N0mena/Expenses-Track/internal/api/expense/service"
	incomeHandler "github.com/N0mena/Expenses-Track/internal/api/income/handler"
	incomeRepository "github.com/N0mena/Expenses-Track/internal/api/income/repository"
	incomeService "github.com/N0mena/Expenses-Track/internal/api/income/service"
	"github.com/N0mena/Expenses-Track/internal/middleware"
	"github.com/N0mena/Expenses-Track/pkg/bcrypt"
	"github.com/N0mena/Expenses-Track/pkg/redis"
	"github.com/N0mena/Expenses-Track/pkg/s3"
	"github.com/N0mena/Expenses-Track/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	handlers    []handler
	redisServer redis.IRedis
	s3Client    s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.redisServer)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.redisServer, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Income Domain
	incomeRepo := incomeRepository.New(s.db, s.log)
	incomeServices := incomeService.NewIncomeService(s.log, incomeRepo, s.utils)
	incomeHandlers := incomeHandler.New(s.log, s.validator, s.middleware, incomeServices)

	// Expense Domain
	expenseRepo := expenseRepository.New(s.db, s.log)
	expenseServices := expenseService.NewExpenseService(s.log, expenseRepo, s.s3Client, s.utils)
	expenseHandlers := expenseHandler.New(s.log, s.validator, s.middleware, expenseServices)

	// Category Domain
	categoryRepo := categoryRepository.New(s.db, s.log)
	categoryServices := categoryService.NewCategoryService(s.log, categoryRepo, s.utils)
	categoryHandlers := categoryHandler.New(s.log, s.validator, s.middleware, categoryServices)

	// Dashboard Domain
	dashboardRepo := dashboardRepository.New(s.db, s.log)
	dashboardServices := dashboardService.NewDashboardService(s.log, dashboardRepo)
	dashboardHandlers := dashboardHandler.New(s.log, s.validator, s.middleware, dashboardServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, incomeHandlers, expenseHandlers, categoryHandlers, dashboardHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
