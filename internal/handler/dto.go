package handler

import (
	"time"

	"github.com/olivertwistor/financial-assets-manager/internal/domain"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

// AssetTypeDTO is the JSON representation of an asset type.
type AssetTypeDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toAssetTypeDTO(t *domain.AssetType) AssetTypeDTO {
	return AssetTypeDTO{ID: t.ID, Name: t.Name}
}

func toAssetTypeDTOs(types []domain.AssetType) []AssetTypeDTO {
	dtos := make([]AssetTypeDTO, len(types))
	for i := range types {
		dtos[i] = toAssetTypeDTO(&types[i])
	}
	return dtos
}

// AssetDTO is the JSON representation of an asset.
type AssetDTO struct {
	ID          int64   `json:"id"`
	AssetTypeID int64   `json:"assetTypeId"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func toAssetDTO(a *domain.Asset) AssetDTO {
	return AssetDTO{
		ID:          a.ID,
		AssetTypeID: a.AssetTypeID,
		Name:        a.Name,
		Amount:      a.Amount,
		Currency:    a.Currency,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}

func toAssetDTOs(assets []domain.Asset) []AssetDTO {
	dtos := make([]AssetDTO, len(assets))
	for i := range assets {
		dtos[i] = toAssetDTO(&assets[i])
	}
	return dtos
}
