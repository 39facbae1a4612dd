package handler

import (
	"net/http"
	"strconv"

	"github.com/olivertwistor/financial-assets-manager/internal/domain"
	"github.com/olivertwistor/financial-assets-manager/internal/service"
)

// AssetHandler handles asset HTTP requests.
type AssetHandler struct {
	assets *service.AssetService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assets *service.AssetService) *AssetHandler {
	return &AssetHandler{assets: assets}
}

type assetRequest struct {
	AssetTypeID int64   `json:"assetTypeId"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

// HandleList returns all assets; ?type=N restricts to one asset type.
func (h *AssetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var typeID int64
	if raw := r.URL.Query().Get("type"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid type filter")
			return
		}
		typeID = parsed
	}

	assets, err := h.assets.List(r.Context(), typeID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssetDTOs(assets))
}

// HandleCreate adds a new asset.
func (h *AssetHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	asset := &domain.Asset{
		AssetTypeID: req.AssetTypeID,
		Name:        req.Name,
		Amount:      req.Amount,
		Currency:    req.Currency,
	}
	if err := h.assets.Create(r.Context(), asset); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAssetDTO(asset))
}

// HandleGet returns one asset.
func (h *AssetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	asset, err := h.assets.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssetDTO(asset))
}

// HandleUpdate replaces an asset's mutable fields.
func (h *AssetHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req assetRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	asset := &domain.Asset{
		ID:          id,
		AssetTypeID: req.AssetTypeID,
		Name:        req.Name,
		Amount:      req.Amount,
		Currency:    req.Currency,
	}
	if err := h.assets.Update(r.Context(), asset); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssetDTO(asset))
}

// HandleDelete removes an asset.
func (h *AssetHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.assets.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
