package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/olivertwistor/financial-assets-manager/internal/domain"
)

// AssetTypeService manages the user-defined asset categories.
type AssetTypeService struct {
	types domain.AssetTypeRepository
}

// NewAssetTypeService creates a new AssetTypeService.
func NewAssetTypeService(types domain.AssetTypeRepository) *AssetTypeService {
	return &AssetTypeService{types: types}
}

// Create adds a new asset type after validating its name.
func (s *AssetTypeService) Create(ctx context.Context, name string) (*domain.AssetType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: asset type name is required", domain.ErrInvalidInput)
	}

	assetType := &domain.AssetType{Name: name}
	if err := s.types.Create(ctx, assetType); err != nil {
		return nil, err
	}
	return assetType, nil
}

// Get retrieves one asset type by id.
func (s *AssetTypeService) Get(ctx context.Context, id int64) (*domain.AssetType, error) {
	return s.types.GetByID(ctx, id)
}

// List returns all asset types.
func (s *AssetTypeService) List(ctx context.Context) ([]domain.AssetType, error) {
	return s.types.List(ctx)
}

// Rename changes an asset type's name.
func (s *AssetTypeService) Rename(ctx context.Context, id int64, name string) (*domain.AssetType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: asset type name is required", domain.ErrInvalidInput)
	}

	assetType := &domain.AssetType{ID: id, Name: name}
	if err := s.types.Update(ctx, assetType); err != nil {
		return nil, err
	}
	return assetType, nil
}

// Delete removes an asset type. Types still referenced by assets cannot
// be removed; the database enforces this.
func (s *AssetTypeService) Delete(ctx context.Context, id int64) error {
	return s.types.Delete(ctx, id)
}
