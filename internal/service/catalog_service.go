package service

import (
	"context"
	"fmt"

	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/model"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/repository"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/pkg/assets"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/pkg/e"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatalogResult is the outcome of a successful catalog mutation. A failed
// image save does not fail the mutation; it rides along as AssetWarning.
type CatalogResult struct {
	Product      *model.Product
	AssetWarning error
}

type CatalogService interface {
	CreateProduct(ctx context.Context, input ProductInput, image *assets.Upload) (*CatalogResult, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput, image *assets.Upload) (*CatalogResult, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts() ([]model.Product, error)
}

type catalogService struct {
	productRepo  repository.ProductRepository
	activityRepo repository.ActivityRepository
	assetStore   assets.Store
	db           *gorm.DB
	logger       *zap.Logger
}

func NewCatalogService(
	pRepo repository.ProductRepository,
	aRepo repository.ActivityRepository,
	store assets.Store,
	db *gorm.DB,
	logger *zap.Logger,
) CatalogService {
	return &catalogService{
		productRepo:  pRepo,
		activityRepo: aRepo,
		assetStore:   store,
		db:           db,
		logger:       logger,
	}
}

func (s *catalogService) CreateProduct(ctx context.Context, input ProductInput, image *assets.Upload) (*CatalogResult, error) {
	const op = "catalog.create"

	fields, err := parseProductInput(input)
	if err != nil {
		return nil, err
	}

	imageName, warn := s.saveImage(ctx, op, image)

	product := &model.Product{
		Name:          fields.name,
		Price:         fields.price,
		Category:      fields.category,
		Stock:         fields.stock,
		Description:   fields.description,
		ImageFilename: imageName,
	}

	// Product row and its audit entry commit together
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.Create(tx, product); err != nil {
			return err
		}
		return s.activityRepo.Log(tx, model.ActionProductCreated, fmt.Sprintf("Product %q was created.", product.Name))
	})
	if err != nil {
		return nil, &e.StorageError{Op: op, Err: err}
	}

	return &CatalogResult{Product: product, AssetWarning: warn}, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput, image *assets.Upload) (*CatalogResult, error) {
	const op = "catalog.update"

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	fields, err := parseProductInput(input)
	if err != nil {
		return nil, err
	}

	// Scalars are always overwritten; the image reference only changes
	// when a new blob was supplied.
	product.Name = fields.name
	product.Price = fields.price
	product.Category = fields.category
	product.Stock = fields.stock
	product.Description = fields.description

	var warn error
	if image != nil {
		imageName, w := s.saveImage(ctx, op, image)
		warn = w
		if imageName != "" {
			product.ImageFilename = imageName
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.Update(tx, product); err != nil {
			return err
		}
		return s.activityRepo.Log(tx, model.ActionProductEdited, fmt.Sprintf("Product %q was updated.", product.Name))
	})
	if err != nil {
		return nil, &e.StorageError{Op: op, Err: err}
	}

	return &CatalogResult{Product: product, AssetWarning: warn}, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	const op = "catalog.delete"

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return err
	}

	// The name is gone after the delete, so capture it for the audit entry.
	name := product.Name

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.Delete(tx, id); err != nil {
			return err
		}
		return s.activityRepo.Log(tx, model.ActionProductDeleted, fmt.Sprintf("Product %q was deleted.", name))
	})
	if err != nil {
		return &e.StorageError{Op: op, Err: err}
	}

	return nil
}

func (s *catalogService) ListProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

// saveImage stores an uploaded blob under a generated name. Failure is
// reported as a warning, never as a failed mutation.
func (s *catalogService) saveImage(ctx context.Context, op string, image *assets.Upload) (string, error) {
	if image == nil || len(image.Data) == 0 {
		return "", nil
	}

	name, err := s.assetStore.Save(ctx, image)
	if err != nil {
		s.logger.Warn("image save failed, continuing without image",
			zap.String("op", op),
			zap.Error(err),
		)
		return "", &e.AssetError{Op: op, Err: err}
	}
	return name, nil
}
