package repository

import (
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	// Log menerima tx: the audit row commits (or rolls back) together with
	// the mutation that produced it.
	Log(tx *gorm.DB, actionType, description string) error
	Recent(limit int) ([]model.ActivityLog, error)
	Count() (int64, error)
}

type activityRepo struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{db}
}

func (r *activityRepo) Log(tx *gorm.DB, actionType, description string) error {
	entry := model.ActivityLog{
		ActionType:  actionType,
		Description: description,
	}
	return tx.Create(&entry).Error
}

func (r *activityRepo) Recent(limit int) ([]model.ActivityLog, error) {
	var entries []model.ActivityLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (r *activityRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.ActivityLog{}).Count(&count).Error
	return count, err
}
