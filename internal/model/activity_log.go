package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLog is append-only: rows are never updated or deleted by the app.
type ActivityLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	ActionType  string    `gorm:"type:varchar(100);not null" json:"action_type"`
	Description string    `gorm:"type:varchar(255);not null" json:"description"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

func (a *ActivityLog) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// Action type constants
const (
	ActionProductCreated = "product_created"
	ActionProductEdited  = "product_edited"
	ActionProductDeleted = "product_deleted"
	ActionProfileUpdated = "profile_updated"
	ActionSystemInit     = "system_init"
)
