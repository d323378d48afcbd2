package dashboardHandler

import (
	dashboardService "github.com/N0mena/Expenses-Track/internal/api/dashboard/service"
	"github.com/N0mena/Expenses-Track/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DashboardHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	dashboardService dashboardService.IDashboardService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	dashboardService dashboardService.IDashboardService,
) *DashboardHandler {
	return &DashboardHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) Start(srv fiber.Router) {
	boards := srv.Group("/dashboard")

	boards.Get("/summary", h.middleware.NewTokenMiddleware, h.GetMonthlySummary)
	boards.Get("/summary/custom", h.middleware.NewTokenMiddleware, h.GetCustomSummary)
	boards.Get("/alerts", h.middleware.NewTokenMiddleware, h.GetBudgetAlerts)
	boards.Get("/trend", h.middleware.NewTokenMiddleware, h.GetMonthlyTrend)
}
