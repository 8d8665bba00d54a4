package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order captures a sale at a date granularity. TotalAmount is a snapshot
// taken at order time and is never recomputed from the product price.
type Order struct {
	BaseModel
	ProductID   *uuid.UUID      `gorm:"type:uuid" json:"product_id,omitempty"`
	Product     *Product        `gorm:"constraint:OnDelete:SET NULL;" json:"product,omitempty" validate:"-"`
	Quantity    int             `gorm:"not null;default:1" json:"quantity" validate:"required,gt=0"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	OrderDate   time.Time       `gorm:"type:date;not null;index" json:"order_date"`
}

// Analytics buckets by calendar day, so the date is normalized to
// midnight UTC before it hits the store.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if err := o.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	o.OrderDate = DateOnly(o.OrderDate)
	return nil
}

// DateOnly strips the time-of-day component, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
