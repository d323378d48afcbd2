package dashboardHandler

import (
	"strconv"
	"time"

	"github.com/N0mena/Expenses-Track/internal/api/dashboard"
	contextPkg "github.com/N0mena/Expenses-Track/pkg/context"
	"github.com/N0mena/Expenses-Track/pkg/handlerUtil"
	jwtPkg "github.com/N0mena/Expenses-Track/pkg/jwt"
	"github.com/N0mena/Expenses-Track/pkg/period"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const defaultTrendMonths = 6

func (h *DashboardHandler) GetMonthlySummary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	now := time.Now()
	p := period.Month(now.Year(), int(now.Month()))

	if month := ctx.Query("month"); month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			return errHandler.Handle(ctx, requestID, dashboard.ErrInvalidMonthFormat, ctx.Path(), "parse_month")
		}
		p = period.Month(parsed.Year(), int(parsed.Month()))
	}

	summary, err := h.dashboardService.MonthlySummary(c, userData.ID, p)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "monthly_summary")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, "Monthly summary retrieved successfully", summary)
	}
}

func (h *DashboardHandler) GetCustomSummary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	start := ctx.Query("start")
	end := ctx.Query("end")
	if start == "" || end == "" {
		return errHandler.Handle(ctx, requestID, dashboard.ErrMissingDateRange, ctx.Path(), "parse_date_range")
	}

	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return errHandler.Handle(ctx, requestID, dashboard.ErrInvalidDateFormat, ctx.Path(), "parse_date_range")
	}

	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return errHandler.Handle(ctx, requestID, dashboard.ErrInvalidDateFormat, ctx.Path(), "parse_date_range")
	}

	p, err := period.New(startDate, period.EndOfDay(endDate))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_date_range")
	}

	summary, err := h.dashboardService.CustomSummary(c, userData.ID, p)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "custom_summary")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, "Custom period summary retrieved successfully", summary)
	}
}

func (h *DashboardHandler) GetBudgetAlerts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	now := time.Now()
	p := period.Month(now.Year(), int(now.Month()))

	alerts, err := h.dashboardService.BudgetAlerts(c, userData.ID, p)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "budget_alerts")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, "Budget alerts retrieved successfully", alerts)
	}
}

func (h *DashboardHandler) GetMonthlyTrend(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	// The anchor is the current month. An explicit year parameter pins the
	// window to December of that year instead, except when it is the
	// current year.
	anchor := time.Now()
	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil || year < 1 {
			return errHandler.Handle(ctx, requestID, dashboard.ErrInvalidYearFormat, ctx.Path(), "parse_year")
		}
		if year != anchor.Year() {
			anchor = time.Date(year, time.December, 1, 0, 0, 0, 0, time.UTC)
		}
	}

	months := defaultTrendMonths
	if monthsStr := ctx.Query("months"); monthsStr != "" {
		parsed, err := strconv.Atoi(monthsStr)
		if err != nil || parsed < 1 {
			return errHandler.Handle(ctx, requestID, dashboard.ErrInvalidMonthsCount, ctx.Path(), "parse_months")
		}
		months = parsed
	}

	trend, err := h.dashboardService.MonthlyTrend(c, userData.ID, anchor, months)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "monthly_trend")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, "Monthly trend retrieved successfully", trend)
	}
}
