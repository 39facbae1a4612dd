package domain

import "context"

// AssetType is a user-defined category of financial assets, such as
// "savings account", "fund" or "stock".
type AssetType struct {
	ID   int64
	Name string
}

type AssetTypeRepository interface {
	Create(ctx context.Context, assetType *AssetType) error
	GetByID(ctx context.Context, id int64) (*AssetType, error)
	List(ctx context.Context) ([]AssetType, error)
	Update(ctx context.Context, assetType *AssetType) error
	Delete(ctx context.Context, id int64) error
}
