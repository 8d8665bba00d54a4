package model

import "time"

// AdminUser is a singleton row. The repository pins its primary key, so the
// uniqueness of the profile is enforced by the storage layer, not by code.
type AdminUser struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(150);not null" json:"name" validate:"required"`
	Email          string    `gorm:"type:varchar(200);not null" json:"email" validate:"required,email"`
	AvatarFilename string    `gorm:"type:varchar(255)" json:"avatar_filename"`
	UpdatedAt      time.Time `json:"updated_at"`
}
