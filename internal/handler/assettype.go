package handler

import (
	"net/http"
	"strconv"

	"github.com/olivertwistor/financial-assets-manager/internal/service"
)

// AssetTypeHandler handles asset type HTTP requests.
type AssetTypeHandler struct {
	types *service.AssetTypeService
}

// NewAssetTypeHandler creates a new AssetTypeHandler.
func NewAssetTypeHandler(types *service.AssetTypeService) *AssetTypeHandler {
	return &AssetTypeHandler{types: types}
}

type assetTypeRequest struct {
	Name string `json:"name"`
}

// HandleList returns all asset types.
func (h *AssetTypeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	types, err := h.types.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssetTypeDTOs(types))
}

// HandleCreate adds a new asset type.
func (h *AssetTypeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req assetTypeRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	assetType, err := h.types.Create(r.Context(), req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAssetTypeDTO(assetType))
}

// HandleGet returns one asset type.
func (h *AssetTypeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	assetType, err := h.types.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssetTypeDTO(assetType))
}

// HandleUpdate renames an asset type.
func (h *AssetTypeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req assetTypeRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	assetType, err := h.types.Rename(r.Context(), id, req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssetTypeDTO(assetType))
}

// HandleDelete removes an asset type.
func (h *AssetTypeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.types.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} path segment, writing a 400 response on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
