package repository

import (
	"time"

	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	Count() (int64, error)
	TotalRevenue() (decimal.Decimal, error)
	RevenueBetween(startDate, endDate time.Time) (decimal.Decimal, error)
	RevenueOn(day time.Time) (decimal.Decimal, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(order *model.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepo) TotalRevenue() (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&model.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}

// RevenueBetween sums totals over an inclusive date range. Bounds are
// normalized to date granularity so the comparison matches what Order
// stores.
func (r *orderRepo) RevenueBetween(startDate, endDate time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&model.Order{}).
		Where("order_date BETWEEN ? AND ?", model.DateOnly(startDate), model.DateOnly(endDate)).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *orderRepo) RevenueOn(day time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&model.Order{}).
		Where("order_date = ?", model.DateOnly(day)).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}
