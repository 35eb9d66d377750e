package tournamenthandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	catalogdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/domain"
	tournamentservice "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/application"
	tournamentdb "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/infrastructure/repositories"
	userdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/user/domain"
)

// TournamentHandlers serves the tournament endpoints.
type TournamentHandlers struct {
	service tournamentservice.Service
	logger  *slog.Logger
}

// NewTournamentHandlers creates tournament HTTP handlers.
func NewTournamentHandlers(service tournamentservice.Service, logger *slog.Logger) *TournamentHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &TournamentHandlers{service: service, logger: logger}
}

// CreateTournamentRequest is the input for creating a tournament.
type CreateTournamentRequest struct {
	Name string `json:"name"`
}

// JoinTournamentRequest is the input for joining a tournament.
type JoinTournamentRequest struct {
	CharacterID string `json:"character_id"`
}

func (h *TournamentHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, tournamentdb.ErrNotFound):
		http.Error(w, "tournament not found", http.StatusNotFound)
	case errors.Is(err, tournamentdb.ErrMatchNotFound):
		http.Error(w, "match not found", http.StatusNotFound)
	case errors.Is(err, catalogdomain.ErrCharacterNotFound):
		http.Error(w, "character not found", http.StatusNotFound)
	case errors.Is(err, tournamentservice.ErrAlreadyJoined),
		errors.Is(err, tournamentservice.ErrHumanSlotTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, tournamentservice.ErrTournamentNotPending),
		errors.Is(err, tournamentservice.ErrMatchAlreadyPlayed),
		errors.Is(err, tournamentservice.ErrMatchNotReady),
		errors.Is(err, tournamentservice.ErrInsufficientCharacters):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.ErrorContext(r.Context(), "tournament request failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// HandleCreate creates a new pending tournament.
func (h *TournamentHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := userdomain.FromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateTournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	view, err := h.service.Create(ctx, user, req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// HandleListOpen lists pending tournaments.
func (h *TournamentHandlers) HandleListOpen(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListOpen(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// HandleGet returns one tournament's full bracket.
func (h *TournamentHandlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "tournamentID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid tournament id", http.StatusBadRequest)
		return
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HandleJoin joins the caller into a pending tournament and seeds the
// bracket.
func (h *TournamentHandlers) HandleJoin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := userdomain.FromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "tournamentID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid tournament id", http.StatusBadRequest)
		return
	}

	var req JoinTournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.service.Join(ctx, user, id, req.CharacterID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HandleSimulateMatch resolves one pending match.
func (h *TournamentHandlers) HandleSimulateMatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := userdomain.FromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "matchID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid match id", http.StatusBadRequest)
		return
	}

	view, err := h.service.SimulateMatch(ctx, user, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HandleLeaderboard returns the fastest human-won completions.
func (h *TournamentHandlers) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Leaderboard(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// HandleLeaderboardChart renders the leaderboard as a PNG bar chart.
func (h *TournamentHandlers) HandleLeaderboardChart(w http.ResponseWriter, r *http.Request) {
	png, err := h.service.LeaderboardChart(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleExportLeaderboard streams the leaderboard as an xlsx workbook.
func (h *TournamentHandlers) HandleExportLeaderboard(w http.ResponseWriter, r *http.Request) {
	raw, err := h.service.ExportLeaderboard(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="leaderboard.xlsx"`)
	w.Write(raw)
}
