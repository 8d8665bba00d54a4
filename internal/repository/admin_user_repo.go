package repository

import (
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/model"

	"gorm.io/gorm"
)

// singletonAdminID pins the one-and-only profile row. Uniqueness is
// enforced by the primary key, so a concurrent first read cannot seed a
// second row.
const singletonAdminID uint = 1

// Placeholder values for the lazily seeded profile.
const (
	defaultAdminName  = "Admin"
	defaultAdminEmail = "admin@example.com"
)

type AdminUserRepository interface {
	GetOrCreate() (*model.AdminUser, error)
	Update(tx *gorm.DB, admin *model.AdminUser) error
}

type adminUserRepo struct {
	db *gorm.DB
}

func NewAdminUserRepo(db *gorm.DB) AdminUserRepository {
	return &adminUserRepo{db}
}

// GetOrCreate returns the singleton profile, seeding placeholder values on
// first access. If two callers race the seed, the loser hits the primary
// key conflict and re-reads the winner's row.
func (r *adminUserRepo) GetOrCreate() (*model.AdminUser, error) {
	var admin model.AdminUser
	err := r.db.Where("id = ?", singletonAdminID).
		Attrs(model.AdminUser{
			ID:    singletonAdminID,
			Name:  defaultAdminName,
			Email: defaultAdminEmail,
		}).
		FirstOrCreate(&admin).Error
	if err != nil {
		// Lost the seed race: the winner's row exists now.
		if ferr := r.db.First(&admin, "id = ?", singletonAdminID).Error; ferr == nil {
			return &admin, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminUserRepo) Update(tx *gorm.DB, admin *model.AdminUser) error {
	return tx.Save(admin).Error
}
