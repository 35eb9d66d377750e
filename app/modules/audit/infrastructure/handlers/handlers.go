package audithandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	auditservice "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/application"
)

// AuditHandlers serves the admin audit endpoints.
type AuditHandlers struct {
	service auditservice.Service
	logger  *slog.Logger
}

// NewAuditHandlers creates audit HTTP handlers.
func NewAuditHandlers(service auditservice.Service, logger *slog.Logger) *AuditHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditHandlers{service: service, logger: logger}
}

func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}

// HandleLogs returns audit rows newest first. Supports skip and limit
// query parameters.
func (h *AuditHandlers) HandleLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	views, err := h.service.List(ctx, queryInt(r, "skip"), queryInt(r, "limit"))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list audit logs", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

// HandleStats returns the admin overview counters.
func (h *AuditHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.service.Stats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute stats", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
