package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/model"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/repository"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/pkg/assets"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.Product{}, &model.AdminUser{}, &model.Order{}, &model.ActivityLog{}))
	return db
}

func newTestCatalog(t *testing.T, db *gorm.DB, store assets.Store) CatalogService {
	t.Helper()
	if store == nil {
		store = nopStore{}
	}
	return NewCatalogService(
		repository.NewProductRepo(db),
		repository.NewActivityRepo(db),
		store,
		db,
		zap.NewNop(),
	)
}

func newTestDashboard(db *gorm.DB) DashboardService {
	return NewDashboardService(
		repository.NewOrderRepo(db),
		repository.NewProductRepo(db),
		repository.NewActivityRepo(db),
	)
}

func newTestProfile(t *testing.T, db *gorm.DB, store assets.Store) ProfileService {
	t.Helper()
	if store == nil {
		store = nopStore{}
	}
	return NewProfileService(
		repository.NewAdminUserRepo(db),
		repository.NewActivityRepo(db),
		store,
		db,
		zap.NewNop(),
	)
}

// nopStore pretends every save worked.
type nopStore struct{}

func (nopStore) Save(_ context.Context, up *assets.Upload) (string, error) {
	return assets.NewObjectName(up.Ext), nil
}

// failingStore simulates the asset backend being down.
type failingStore struct{}

func (failingStore) Save(context.Context, *assets.Upload) (string, error) {
	return "", errors.New("disk full")
}

func addOrder(t *testing.T, db *gorm.DB, amount string, day time.Time) {
	t.Helper()

	total, err := decimal.NewFromString(amount)
	require.NoError(t, err)

	order := model.Order{
		Quantity:    1,
		TotalAmount: total,
		OrderDate:   day,
	}
	require.NoError(t, db.Create(&order).Error)
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(m).Count(&count).Error)
	return count
}

func validInput() ProductInput {
	return ProductInput{
		Name:        "Classic Istanbul T-Shirt",
		Price:       "29.99",
		Category:    "T-Shirts",
		Stock:       "50",
		Description: "Simple white tee with a minimal Istanbul skyline print.",
	}
}
