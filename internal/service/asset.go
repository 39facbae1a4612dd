package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/olivertwistor/financial-assets-manager/internal/domain"
)

// AssetService manages financial assets and their validation rules.
type AssetService struct {
	assets domain.AssetRepository
	types  domain.AssetTypeRepository
}

// NewAssetService creates a new AssetService.
func NewAssetService(assets domain.AssetRepository, types domain.AssetTypeRepository) *AssetService {
	return &AssetService{assets: assets, types: types}
}

// Create validates and stores a new asset.
func (s *AssetService) Create(ctx context.Context, asset *domain.Asset) error {
	if err := s.validate(ctx, asset); err != nil {
		return err
	}
	return s.assets.Create(ctx, asset)
}

// Get retrieves one asset by id.
func (s *AssetService) Get(ctx context.Context, id int64) (*domain.Asset, error) {
	return s.assets.GetByID(ctx, id)
}

// List returns all assets, optionally restricted to one asset type.
func (s *AssetService) List(ctx context.Context, assetTypeID int64) ([]domain.Asset, error) {
	if assetTypeID > 0 {
		return s.assets.ListByType(ctx, assetTypeID)
	}
	return s.assets.List(ctx)
}

// Update validates and stores changes to an existing asset.
func (s *AssetService) Update(ctx context.Context, asset *domain.Asset) error {
	if err := s.validate(ctx, asset); err != nil {
		return err
	}
	return s.assets.Update(ctx, asset)
}

// Delete removes an asset.
func (s *AssetService) Delete(ctx context.Context, id int64) error {
	return s.assets.Delete(ctx, id)
}

func (s *AssetService) validate(ctx context.Context, asset *domain.Asset) error {
	asset.Name = strings.TrimSpace(asset.Name)
	if asset.Name == "" {
		return fmt.Errorf("%w: asset name is required", domain.ErrInvalidInput)
	}

	asset.Currency = strings.ToUpper(strings.TrimSpace(asset.Currency))
	if len(asset.Currency) != 3 {
		return fmt.Errorf("%w: currency must be a three-letter code", domain.ErrInvalidInput)
	}

	if _, err := s.types.GetByID(ctx, asset.AssetTypeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: unknown asset type %d", domain.ErrInvalidInput, asset.AssetTypeID)
		}
		return fmt.Errorf("check asset type: %w", err)
	}
	return nil
}
