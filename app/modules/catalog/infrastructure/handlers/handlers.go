package cataloghandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	catalogservice "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/application"
	catalogdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/domain"
)

// CatalogHandlers serves the world and character listing endpoints.
type CatalogHandlers struct {
	service catalogservice.Service
	logger  *slog.Logger
}

// NewCatalogHandlers creates catalog HTTP handlers.
func NewCatalogHandlers(service catalogservice.Service, logger *slog.Logger) *CatalogHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogHandlers{service: service, logger: logger}
}

// HandleListWorlds returns all available worlds.
func (h *CatalogHandlers) HandleListWorlds(w http.ResponseWriter, r *http.Request) {
	worlds := h.service.ListWorlds(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(worlds)
}

// HandleListWorldCharacters returns a world's roster grouped by faction.
func (h *CatalogHandlers) HandleListWorldCharacters(w http.ResponseWriter, r *http.Request) {
	worldID, err := strconv.Atoi(chi.URLParam(r, "worldID"))
	if err != nil {
		http.Error(w, "invalid world id", http.StatusBadRequest)
		return
	}

	roster, err := h.service.ListByWorld(r.Context(), worldID)
	if err != nil {
		if errors.Is(err, catalogdomain.ErrWorldNotFound) {
			http.Error(w, "world not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to list world characters", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(roster)
}
