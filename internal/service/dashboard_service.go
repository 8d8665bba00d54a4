package service

import (
	"time"

	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/model"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/repository"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/pkg/e"

	"github.com/shopspring/decimal"
)

// DashboardStats untuk overview KPIs
type DashboardStats struct {
	TotalOrders   int64           `json:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalProducts int64           `json:"total_products"`
	WeeklyGrowth  float64         `json:"weekly_growth"`
}

// TrendPoint is one day of the revenue chart.
type TrendPoint struct {
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardService is a pure read path. Every operation takes `today`
// from the caller instead of the global clock, so results are
// deterministic and testable.
type DashboardService interface {
	GetStats(today time.Time) (*DashboardStats, error)
	GetSalesTrend(today time.Time) ([]TrendPoint, error)
	GetRecentActivity(limit int) ([]model.ActivityLog, error)
}

const defaultActivityLimit = 10

type dashboardService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	activityRepo repository.ActivityRepository
}

func NewDashboardService(
	oRepo repository.OrderRepository,
	pRepo repository.ProductRepository,
	aRepo repository.ActivityRepository,
) DashboardService {
	return &dashboardService{
		orderRepo:    oRepo,
		productRepo:  pRepo,
		activityRepo: aRepo,
	}
}

func (s *dashboardService) GetStats(today time.Time) (*DashboardStats, error) {
	const op = "dashboard.stats"

	totalOrders, err := s.orderRepo.Count()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	totalRevenue, err := s.orderRepo.TotalRevenue()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	totalProducts, err := s.productRepo.Count()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	growth, err := s.weeklyGrowth(today)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &DashboardStats{
		TotalOrders:   totalOrders,
		TotalRevenue:  totalRevenue,
		TotalProducts: totalProducts,
		WeeklyGrowth:  growth,
	}, nil
}

// weeklyGrowth compares revenue of the last 7 days (today inclusive)
// against the 7 days immediately before, gap-free. A zero previous window
// yields exactly 0: understated on purpose, never a division by zero.
func (s *dashboardService) weeklyGrowth(today time.Time) (float64, error) {
	currentStart := today.AddDate(0, 0, -6)
	prevStart := currentStart.AddDate(0, 0, -7)
	prevEnd := currentStart.AddDate(0, 0, -1)

	current, err := s.orderRepo.RevenueBetween(currentStart, today)
	if err != nil {
		return 0, err
	}

	previous, err := s.orderRepo.RevenueBetween(prevStart, prevEnd)
	if err != nil {
		return 0, err
	}

	if previous.IsZero() {
		return 0, nil
	}

	growth := current.Sub(previous).
		Div(previous).
		Mul(decimal.NewFromInt(100))
	return growth.InexactFloat64(), nil
}

// GetSalesTrend returns exactly 7 points, oldest first, one per calendar
// day from today-6 through today. Days without orders contribute a zero
// point rather than being skipped.
func (s *dashboardService) GetSalesTrend(today time.Time) ([]TrendPoint, error) {
	const op = "dashboard.sales_trend"

	points := make([]TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)

		revenue, err := s.orderRepo.RevenueOn(day)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		points = append(points, TrendPoint{
			Label:   day.Format("Jan 02"),
			Revenue: revenue.Round(2),
		})
	}

	return points, nil
}

func (s *dashboardService) GetRecentActivity(limit int) ([]model.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	return s.activityRepo.Recent(limit)
}
