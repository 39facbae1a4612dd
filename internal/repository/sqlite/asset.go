package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/olivertwistor/financial-assets-manager/internal/domain"
)

// AssetRepository implements domain.AssetRepository on top of the
// connection handle.
type AssetRepository struct {
	db *DB
}

// NewAssetRepository creates a new SQLite-backed AssetRepository.
func NewAssetRepository(db *DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	now := time.Now().UTC()
	err := r.db.Execute(ctx,
		`INSERT INTO asset (asset_type_id, name, amount, currency, created_at, updated_at)
		 VALUES (:asset_type_id, :name, :amount, :currency, :created_at, :updated_at)`,
		map[string]any{
			"asset_type_id": asset.AssetTypeID,
			"name":          asset.Name,
			"amount":        asset.Amount,
			"currency":      asset.Currency,
			"created_at":    now,
			"updated_at":    now,
		})
	if err != nil {
		return fmt.Errorf("insert asset: %w", err)
	}

	asset.ID = r.db.LastInsertedID()
	asset.CreatedAt = now
	asset.UpdatedAt = now
	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, id int64) (*domain.Asset, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, asset_type_id, name, amount, currency, created_at, updated_at
		 FROM asset WHERE id = :id`,
		map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("query asset by id: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query asset by id: %w", err)
		}
		return nil, domain.ErrNotFound
	}

	asset := &domain.Asset{}
	if err := scanAsset(rows, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (r *AssetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, asset_type_id, name, amount, currency, created_at, updated_at
		 FROM asset ORDER BY id`, nil)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	return collectAssets(rows)
}

func (r *AssetRepository) ListByType(ctx context.Context, assetTypeID int64) ([]domain.Asset, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, asset_type_id, name, amount, currency, created_at, updated_at
		 FROM asset WHERE asset_type_id = :asset_type_id ORDER BY id`,
		map[string]any{"asset_type_id": assetTypeID})
	if err != nil {
		return nil, fmt.Errorf("list assets by type: %w", err)
	}
	defer rows.Close()

	return collectAssets(rows)
}

func (r *AssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	if _, err := r.GetByID(ctx, asset.ID); err != nil {
		return err
	}

	now := time.Now().UTC()
	err := r.db.Execute(ctx,
		`UPDATE asset SET asset_type_id = :asset_type_id, name = :name, amount = :amount,
		 currency = :currency, updated_at = :updated_at WHERE id = :id`,
		map[string]any{
			"id":            asset.ID,
			"asset_type_id": asset.AssetTypeID,
			"name":          asset.Name,
			"amount":        asset.Amount,
			"currency":      asset.Currency,
			"updated_at":    now,
		})
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}

	asset.UpdatedAt = now
	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	err := r.db.Execute(ctx,
		`DELETE FROM asset WHERE id = :id`,
		map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}

func scanAsset(rows *sql.Rows, asset *domain.Asset) error {
	err := rows.Scan(&asset.ID, &asset.AssetTypeID, &asset.Name, &asset.Amount,
		&asset.Currency, &asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		return fmt.Errorf("scan asset: %w", err)
	}
	return nil
}

func collectAssets(rows *sql.Rows) ([]domain.Asset, error) {
	var assets []domain.Asset
	for rows.Next() {
		var asset domain.Asset
		if err := scanAsset(rows, &asset); err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}
