package handler

import (
	"net/http"

	"github.com/olivertwistor/financial-assets-manager/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, types *service.AssetTypeService, assets *service.AssetService, cookieSecure bool) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	typeHandler := NewAssetTypeHandler(types)
	assetHandler := NewAssetHandler(assets)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/logout", authHandler.HandleLogout)

	protected := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(auth, h)
	}

	mux.Handle("GET /api/asset-types", protected(typeHandler.HandleList))
	mux.Handle("POST /api/asset-types", protected(typeHandler.HandleCreate))
	mux.Handle("GET /api/asset-types/{id}", protected(typeHandler.HandleGet))
	mux.Handle("PUT /api/asset-types/{id}", protected(typeHandler.HandleUpdate))
	mux.Handle("DELETE /api/asset-types/{id}", protected(typeHandler.HandleDelete))

	mux.Handle("GET /api/assets", protected(assetHandler.HandleList))
	mux.Handle("POST /api/assets", protected(assetHandler.HandleCreate))
	mux.Handle("GET /api/assets/{id}", protected(assetHandler.HandleGet))
	mux.Handle("PUT /api/assets/{id}", protected(assetHandler.HandleUpdate))
	mux.Handle("DELETE /api/assets/{id}", protected(assetHandler.HandleDelete))
}
