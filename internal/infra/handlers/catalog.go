package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"car-advisor/internal/domain/dto"
	"car-advisor/internal/infra/catalog"
	"car-advisor/internal/infra/logger"
	"car-advisor/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type CatalogHandlers struct {
	Logger    *logger.Logger
	Favorites *catalog.FavoritesStore
	validate  *validator.Validate
}

func NewCatalogHandlers(logger *logger.Logger, favorites *catalog.FavoritesStore) *CatalogHandlers {
	return &CatalogHandlers{Logger: logger, Favorites: favorites, validate: validator.New()}
}

func (ch *CatalogHandlers) Models(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"models": catalog.Models()})
}

func (ch *CatalogHandlers) ListFavorites(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing token")
		return
	}
	writeJSON(w, http.StatusOK, dto.FavoritesResponse{Favorites: ch.Favorites.List(principal.ID)})
}

func (ch *CatalogHandlers) AddFavorite(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing token")
		return
	}

	var req dto.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Error to process JSON")
		return
	}
	defer r.Body.Close()

	if err := ch.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "modelId required")
		return
	}

	ch.Favorites.Add(principal.ID, req.ModelID)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (ch *CatalogHandlers) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing token")
		return
	}

	modelID, err := strconv.Atoi(mux.Vars(r)["modelId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "modelId must be numeric")
		return
	}

	ch.Favorites.Remove(principal.ID, modelID)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
