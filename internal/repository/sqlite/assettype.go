package sqlite

import (
	"context"
	"fmt"

	"github.com/olivertwistor/financial-assets-manager/internal/domain"
)

// AssetTypeRepository implements domain.AssetTypeRepository on top of the
// connection handle.
type AssetTypeRepository struct {
	db *DB
}

// NewAssetTypeRepository creates a new SQLite-backed AssetTypeRepository.
func NewAssetTypeRepository(db *DB) *AssetTypeRepository {
	return &AssetTypeRepository{db: db}
}

func (r *AssetTypeRepository) Create(ctx context.Context, assetType *domain.AssetType) error {
	err := r.db.Execute(ctx,
		`INSERT INTO asset_type (name) VALUES (:name)`,
		map[string]any{"name": assetType.Name})
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert asset type: %w", err)
	}

	assetType.ID = r.db.LastInsertedID()
	return nil
}

func (r *AssetTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AssetType, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM asset_type WHERE id = :id`,
		map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("query asset type by id: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query asset type by id: %w", err)
		}
		return nil, domain.ErrNotFound
	}

	assetType := &domain.AssetType{}
	if err := rows.Scan(&assetType.ID, &assetType.Name); err != nil {
		return nil, fmt.Errorf("scan asset type: %w", err)
	}
	return assetType, nil
}

func (r *AssetTypeRepository) List(ctx context.Context) ([]domain.AssetType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM asset_type ORDER BY name`, nil)
	if err != nil {
		return nil, fmt.Errorf("list asset types: %w", err)
	}
	defer rows.Close()

	var assetTypes []domain.AssetType
	for rows.Next() {
		var assetType domain.AssetType
		if err := rows.Scan(&assetType.ID, &assetType.Name); err != nil {
			return nil, fmt.Errorf("scan asset type: %w", err)
		}
		assetTypes = append(assetTypes, assetType)
	}
	return assetTypes, rows.Err()
}

func (r *AssetTypeRepository) Update(ctx context.Context, assetType *domain.AssetType) error {
	// Existence first: Execute does not report affected rows.
	if _, err := r.GetByID(ctx, assetType.ID); err != nil {
		return err
	}

	err := r.db.Execute(ctx,
		`UPDATE asset_type SET name = :name WHERE id = :id`,
		map[string]any{"id": assetType.ID, "name": assetType.Name})
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update asset type: %w", err)
	}
	return nil
}

func (r *AssetTypeRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	err := r.db.Execute(ctx,
		`DELETE FROM asset_type WHERE id = :id`,
		map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("delete asset type: %w", err)
	}
	return nil
}
