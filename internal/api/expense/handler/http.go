package expenseHandler

import (
	expenseService "github.com/N0mena/Expenses-Track/internal/api/expense/service"
	"github.com/N0mena/Expenses-Track/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ExpenseHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	expenseService expenseService.IExpenseService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	expenseService expenseService.IExpenseService,
) *ExpenseHandler {
	return &ExpenseHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		expenseService: expenseService,
	}
}

func (h *ExpenseHandler) Start(srv fiber.Router) {
	expenses := srv.Group("/expenses")

	expenses.Post("/", h.middleware.NewTokenMiddleware, h.CreateExpense)
	expenses.Get("/", h.middleware.NewTokenMiddleware, h.GetExpenses)
	expenses.Get("/:id", h.middleware.NewTokenMiddleware, h.GetExpenseByID)
	expenses.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateExpense)
	expenses.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteExpense)
}
