package userhandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	userservice "github.com/Clone-Wars-Club/arena-bot/app/modules/user/application"
	userdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/user/domain"
	userdb "github.com/Clone-Wars-Club/arena-bot/app/modules/user/infrastructure/repositories"
)

// UserHandlers serves the account endpoints.
type UserHandlers struct {
	service userservice.Service
	logger  *slog.Logger
}

// NewUserHandlers creates user HTTP handlers.
func NewUserHandlers(service userservice.Service, logger *slog.Logger) *UserHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandlers{service: service, logger: logger}
}

// CredentialsRequest is the input for register and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the input for a password change.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// HandleRegister creates a player account and returns its first token.
func (h *UserHandlers) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	token, err := h.service.Register(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, userservice.ErrUsernameTaken) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to register user", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, token)
}

// HandleLogin verifies credentials and returns a token.
func (h *UserHandlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, userservice.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to log in user", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, token)
}

// HandleMe returns the authenticated account.
func (h *UserHandlers) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := userdomain.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// HandleChangePassword verifies the current password and stores a new one.
func (h *UserHandlers) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := userdomain.FromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.NewPassword == "" {
		http.Error(w, "new password is required", http.StatusBadRequest)
		return
	}

	if err := h.service.ChangePassword(ctx, user, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, userservice.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to change password", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandlePromote grants the admin role to the named user. Mounted behind the
// admin middleware.
func (h *UserHandlers) HandlePromote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	admin, ok := userdomain.FromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	username := chi.URLParam(r, "username")
	promoted, err := h.service.Promote(ctx, admin, username)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to promote user", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, promoted)
}
