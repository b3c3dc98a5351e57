package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"roster/internal/directory"
	"roster/internal/platform/middleware"
	"roster/pkg/platform/httputil"
)

// DirectoryAdmin exposes the operator-facing directory controls.
type DirectoryAdmin interface {
	Reload(ctx context.Context) error
	Stats() directory.Stats
}

type Handler struct {
	directory DirectoryAdmin
	logger    *slog.Logger
}

func New(directory DirectoryAdmin, logger *slog.Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/admin/directory/reload", h.HandleReload)
	r.Get("/admin/directory/stats", h.HandleStats)
}

type reloadResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
	Version string `json:"version"`
}

type statsResponse struct {
	Loaded   bool   `json:"loaded"`
	Records  int    `json:"records"`
	Version  string `json:"version"`
	LoadedAt string `json:"loadedAt,omitempty"`
}

// HandleReload implements POST /admin/directory/reload. It forces a snapshot
// reload regardless of the source version, so operators can recover from an
// edit that kept the file's modification time.
func (h *Handler) HandleReload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	if err := h.directory.Reload(ctx); err != nil {
		h.logger.ErrorContext(ctx, "forced reload failed",
			"error", err,
			"admin", middleware.GetAdminSubject(ctx),
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	stats := h.directory.Stats()
	h.logger.InfoContext(ctx, "directory reloaded",
		"records", stats.Records,
		"version", stats.Version.String(),
		"admin", middleware.GetAdminSubject(ctx),
		"request_id", requestID,
	)
	httputil.WriteJSON(w, http.StatusOK, reloadResponse{
		Status:  "reloaded",
		Records: stats.Records,
		Version: stats.Version.String(),
	})
}

// HandleStats implements GET /admin/directory/stats.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats := h.directory.Stats()
	resp := statsResponse{
		Loaded:  stats.Loaded,
		Records: stats.Records,
		Version: stats.Version.String(),
	}
	if !stats.LoadedAt.IsZero() {
		resp.LoadedAt = stats.LoadedAt.UTC().Format(time.RFC3339)
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
