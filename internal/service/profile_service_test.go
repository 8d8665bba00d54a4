package service

import (
	"context"
	"testing"

	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/model"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/pkg/assets"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/pkg/e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileLazySeed(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProfile(t, db, nil)

	admin, err := svc.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, "Admin", admin.Name)
	assert.Equal(t, "admin@example.com", admin.Email)

	// Second read observes the same row, never a second one.
	again, err := svc.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)
	assert.Equal(t, int64(1), countRows(t, db, &model.AdminUser{}))
}

func TestGetProfileSeedRaceLoserGetsWinnersRow(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProfile(t, db, nil)

	// Simulate losing the seed race: the winner's row is already there.
	winner := model.AdminUser{ID: 1, Name: "Istanbul Gasht Admin", Email: "admin@istanbulgasht.com"}
	require.NoError(t, db.Create(&winner).Error)

	admin, err := svc.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, "Istanbul Gasht Admin", admin.Name)
	assert.Equal(t, int64(1), countRows(t, db, &model.AdminUser{}))
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProfile(t, db, nil)

	result, err := svc.UpdateProfile(context.Background(), ProfileInput{
		Name:  "Istanbul Gasht Admin",
		Email: "admin@istanbulgasht.com",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Istanbul Gasht Admin", result.Admin.Name)
	assert.Equal(t, "admin@istanbulgasht.com", result.Admin.Email)

	var entry model.ActivityLog
	require.NoError(t, db.Where("action_type = ?", model.ActionProfileUpdated).First(&entry).Error)

	// Still exactly one profile row after a lazy seed plus an update.
	assert.Equal(t, int64(1), countRows(t, db, &model.AdminUser{}))
}

func TestUpdateProfileValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProfile(t, db, nil)

	seeded, err := svc.GetProfile()
	require.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), ProfileInput{Name: "Someone", Email: "  "}, nil)

	var vErr *e.ValidationError
	require.ErrorAs(t, err, &vErr)

	// No mutation, no audit entry.
	current, err := svc.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, seeded.Name, current.Name)
	assert.Equal(t, seeded.Email, current.Email)
	assert.Equal(t, int64(0), countRows(t, db, &model.ActivityLog{}))
}

func TestUpdateProfileAvatarFailureKeepsOldAvatar(t *testing.T) {
	db := newTestDB(t)

	okSvc := newTestProfile(t, db, nil)
	first, err := okSvc.UpdateProfile(context.Background(), ProfileInput{
		Name:  "Admin",
		Email: "admin@example.com",
	}, &assets.Upload{Data: []byte("img"), Ext: ".png"})
	require.NoError(t, err)
	oldAvatar := first.Admin.AvatarFilename
	require.NotEmpty(t, oldAvatar)

	badSvc := newTestProfile(t, db, failingStore{})
	result, err := badSvc.UpdateProfile(context.Background(), ProfileInput{
		Name:  "Renamed Admin",
		Email: "admin@example.com",
	}, &assets.Upload{Data: []byte("img2"), Ext: ".png"})

	// Name/email still update; only the avatar is left alone.
	require.NoError(t, err)
	var aErr *e.AssetError
	require.ErrorAs(t, result.AssetWarning, &aErr)
	assert.Equal(t, "Renamed Admin", result.Admin.Name)
	assert.Equal(t, oldAvatar, result.Admin.AvatarFilename)
}
