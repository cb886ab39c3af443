package services

import (
	"context"
	"time"

	"estore-api/models"

	"github.com/rs/zerolog/log"
)

// StatsService computes the read-only admin rollups: dashboard counters
// and the analytics summary. Nothing here is persisted.
type StatsService struct {
	statsRepo StatsRepository
	catalog   ProductCatalog
	now       func() time.Time
}

func NewStatsService(statsRepo StatsRepository, catalog ProductCatalog) *StatsService {
	return &StatsService{statsRepo: statsRepo, catalog: catalog, now: time.Now}
}

func (s *StatsService) DashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	totalUsers, err := s.statsRepo.CountUsersByRole(ctx, models.RoleUser)
	if err != nil {
		return nil, err
	}
	totalAdmins, err := s.statsRepo.CountUsersByRole(ctx, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	totalSignedIn, err := s.statsRepo.CountSignedInUsers(ctx)
	if err != nil {
		return nil, err
	}
	recentUsers, err := s.statsRepo.RecentUsers(ctx, 5)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.statsRepo.CountOrders(ctx)
	if err != nil {
		return nil, err
	}

	// Product data lives in the external catalog; an unreachable catalog
	// degrades the count to zero rather than failing the dashboard.
	totalProducts, err := s.catalog.ProductCount(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("catalog product count unavailable")
		totalProducts = 0
	}

	return &models.DashboardSummary{
		TotalUsers:         totalUsers,
		TotalSignedInUsers: totalSignedIn,
		TotalAdmins:        totalAdmins,
		TotalProducts:      totalProducts,
		TotalOrders:        totalOrders,
		RecentUsers:        recentUsers,
	}, nil
}

func (s *StatsService) AnalyticsSummary(ctx context.Context, rangeDays int) (*models.AnalyticsSummary, error) {
	// An absent or unparsable range means the default window; an explicit
	// negative is clamped to the smallest valid one.
	if rangeDays == 0 {
		rangeDays = 30
	} else if rangeDays < 0 {
		rangeDays = 1
	}
	since := s.now().Add(-time.Duration(rangeDays) * 24 * time.Hour)

	totals, err := s.statsRepo.OrderTotals(ctx, since)
	if err != nil {
		return nil, err
	}

	registeredUsers, err := s.statsRepo.CountUsersByRole(ctx, models.RoleUser)
	if err != nil {
		return nil, err
	}

	conversionRate := 0.0
	if registeredUsers > 0 {
		conversionRate = float64(totals.Buyers) / float64(registeredUsers) * 100
	}

	avgOrderValue := 0.0
	if totals.Orders > 0 {
		avgOrderValue = totals.Revenue / float64(totals.Orders)
	}

	monthlyRows, err := s.statsRepo.MonthlyTotals(ctx, since)
	if err != nil {
		return nil, err
	}
	monthlyData := make([]models.MonthlyStat, 0, len(monthlyRows))
	for _, row := range monthlyRows {
		monthlyData = append(monthlyData, models.MonthlyStat{
			Month:   monthLabel(row.Year, row.Month),
			Revenue: row.Revenue,
			Orders:  row.Orders,
		})
	}

	topProducts, err := s.statsRepo.TopProducts(ctx, since, 10)
	if err != nil {
		return nil, err
	}

	return &models.AnalyticsSummary{
		RangeDays:      rangeDays,
		TotalRevenue:   totals.Revenue,
		TotalOrders:    totals.Orders,
		AvgOrderValue:  avgOrderValue,
		ConversionRate: conversionRate,
		MonthlyData:    monthlyData,
		TopProducts:    topProducts,
	}, nil
}

func monthLabel(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}
