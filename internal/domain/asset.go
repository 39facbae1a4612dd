package domain

import (
	"context"
	"time"
)

// Asset is a single financial asset: an account, a holding or any
// other thing with a monetary value worth tracking over time.
type Asset struct {
	ID          int64
	AssetTypeID int64
	Name        string
	Amount      float64
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type AssetRepository interface {
	Create(ctx context.Context, asset *Asset) error
	GetByID(ctx context.Context, id int64) (*Asset, error)
	List(ctx context.Context) ([]Asset, error)
	ListByType(ctx context.Context, assetTypeID int64) ([]Asset, error)
	Update(ctx context.Context, asset *Asset) error
	Delete(ctx context.Context, id int64) error
}
