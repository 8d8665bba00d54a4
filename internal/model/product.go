package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Name          string          `gorm:"type:varchar(150);not null" json:"name" validate:"required"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category      string          `gorm:"type:varchar(100);not null" json:"category" validate:"required"`
	Stock         int             `gorm:"not null;default:0" json:"stock"`
	Description   string          `gorm:"type:text" json:"description"`
	ImageFilename string          `gorm:"type:varchar(255)" json:"image_filename"`

	// Relasi
	Orders []Order `json:"orders,omitempty"`
}
