package dashboardService

import (
	"time"

	"github.com/N0mena/Expenses-Track/internal/api/dashboard"
	dashboardRepository "github.com/N0mena/Expenses-Track/internal/api/dashboard/repository"
	"github.com/N0mena/Expenses-Track/pkg/period"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IDashboardService interface {
	MonthlySummary(ctx context.Context, userID string, p period.Period) (dashboard.MonthlySummaryResponse, error)
	CustomSummary(ctx context.Context, userID string, p period.Period) (dashboard.CustomSummaryResponse, error)
	BudgetAlerts(ctx context.Context, userID string, p period.Period) (dashboard.BudgetAlertsResponse, error)
	MonthlyTrend(ctx context.Context, userID string, anchor time.Time, months int) (dashboard.MonthlyTrendResponse, error)
}

type dashboardService struct {
	log                 *logrus.Logger
	dashboardRepository dashboardRepository.Repository
}

func NewDashboardService(log *logrus.Logger, dr dashboardRepository.Repository) IDashboardService {
	return &dashboardService{
		log:                 log,
		dashboardRepository: dr,
	}
}
