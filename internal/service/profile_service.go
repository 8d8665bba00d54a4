package service

import (
	"context"

	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/model"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/repository"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/pkg/assets"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/pkg/e"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProfileResult mirrors CatalogResult: a failed avatar save keeps the old
// reference and is carried as a warning.
type ProfileResult struct {
	Admin        *model.AdminUser
	AssetWarning error
}

type ProfileService interface {
	GetProfile() (*model.AdminUser, error)
	UpdateProfile(ctx context.Context, input ProfileInput, avatar *assets.Upload) (*ProfileResult, error)
}

type profileService struct {
	adminRepo    repository.AdminUserRepository
	activityRepo repository.ActivityRepository
	assetStore   assets.Store
	db           *gorm.DB
	logger       *zap.Logger
}

func NewProfileService(
	aRepo repository.AdminUserRepository,
	actRepo repository.ActivityRepository,
	store assets.Store,
	db *gorm.DB,
	logger *zap.Logger,
) ProfileService {
	return &profileService{
		adminRepo:    aRepo,
		activityRepo: actRepo,
		assetStore:   store,
		db:           db,
		logger:       logger,
	}
}

func (s *profileService) GetProfile() (*model.AdminUser, error) {
	return s.adminRepo.GetOrCreate()
}

func (s *profileService) UpdateProfile(ctx context.Context, input ProfileInput, avatar *assets.Upload) (*ProfileResult, error) {
	const op = "profile.update"

	parsed, err := parseProfileInput(input)
	if err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.GetOrCreate()
	if err != nil {
		return nil, &e.StorageError{Op: op, Err: err}
	}

	admin.Name = parsed.Name
	admin.Email = parsed.Email

	var warn error
	if avatar != nil && len(avatar.Data) > 0 {
		name, aerr := s.assetStore.Save(ctx, avatar)
		if aerr != nil {
			s.logger.Warn("avatar save failed, keeping the old one", zap.Error(aerr))
			warn = &e.AssetError{Op: op, Err: aerr}
		} else {
			admin.AvatarFilename = name
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.adminRepo.Update(tx, admin); err != nil {
			return err
		}
		return s.activityRepo.Log(tx, model.ActionProfileUpdated, "Admin profile was updated.")
	})
	if err != nil {
		return nil, &e.StorageError{Op: op, Err: err}
	}

	return &ProfileResult{Admin: admin, AssetWarning: warn}, nil
}
