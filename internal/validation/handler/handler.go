package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"roster/internal/platform/middleware"
	"roster/internal/validation/models"
	"roster/pkg/platform/httputil"
)

// Service answers validation queries. Outcomes are typed results; an error
// return means the query never produced an outcome.
type Service interface {
	Validate(ctx context.Context, query models.Query) (models.Result, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/validate", h.HandleValidate)
}

// HandleValidate implements POST /validate.
// Input: { "email": "...", "correlationId": "..." }
// Output: 200 with the journey claims payload for every outcome; non-200
// statuses are reserved for transport failures (bad JSON, invalid email).
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	// Limit request body size to prevent DoS via large payloads
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024) // 64KB max

	req, ok := httputil.DecodeAndPrepare[models.ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Validate(ctx, req.Query())
	if err != nil {
		h.logger.ErrorContext(ctx, "validation failed",
			"error", err,
			"correlation_id", req.CorrelationID,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toJourneyResponse(result))
}
