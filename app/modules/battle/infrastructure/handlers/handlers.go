package battlehandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	battleservice "github.com/Clone-Wars-Club/arena-bot/app/modules/battle/application"
	battledomain "github.com/Clone-Wars-Club/arena-bot/app/modules/battle/domain"
	battlestore "github.com/Clone-Wars-Club/arena-bot/app/modules/battle/infrastructure/store"
	catalogdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/domain"
	userdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/user/domain"
)

// BattleHandlers serves the interactive battle endpoints.
type BattleHandlers struct {
	service battleservice.Service
	logger  *slog.Logger
}

// NewBattleHandlers creates battle HTTP handlers.
func NewBattleHandlers(service battleservice.Service, logger *slog.Logger) *BattleHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &BattleHandlers{service: service, logger: logger}
}

// StartBattleRequest is the input for starting a battle.
type StartBattleRequest struct {
	WorldID     int    `json:"world_id"`
	CharacterID string `json:"character_id"`
}

// TakeActionRequest is the input for one battle turn.
type TakeActionRequest struct {
	Action string `json:"action"`
}

// HandleStartBattle starts a new player-vs-AI battle.
func (h *BattleHandlers) HandleStartBattle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := userdomain.FromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req StartBattleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	state, err := h.service.StartBattle(ctx, user, req.WorldID, req.CharacterID)
	if err != nil {
		switch {
		case errors.Is(err, catalogdomain.ErrCharacterNotFound):
			http.Error(w, "character not found", http.StatusNotFound)
		case errors.Is(err, battleservice.ErrCharacterNotInWorld),
			errors.Is(err, battleservice.ErrNoOpponentAvailable):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			h.logger.ErrorContext(ctx, "failed to start battle", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// HandleTakeAction resolves one turn of an active battle.
func (h *BattleHandlers) HandleTakeAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := userdomain.FromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	battleID := chi.URLParam(r, "battleID")

	var req TakeActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	action, err := battledomain.ParseAbility(req.Action)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.service.TakeAction(ctx, user, battleID, action)
	if err != nil {
		switch {
		case errors.Is(err, battlestore.ErrNotFound):
			http.Error(w, "battle not found or already finished", http.StatusNotFound)
		case errors.Is(err, battleservice.ErrForbidden):
			http.Error(w, "forbidden", http.StatusForbidden)
		case errors.Is(err, battledomain.ErrBattleFinished):
			http.Error(w, "this battle has already finished", http.StatusBadRequest)
		default:
			h.logger.ErrorContext(ctx, "failed to take battle action", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}
