// Package handler serves the demo-only simulation endpoints. They return
// deterministic canned journey payloads so policy authors can exercise UI
// branches (blocked message, throttle hint, inline error, slow backend)
// without editing the directory snapshot. They are not part of the core
// validation contract.
package handler

import (
	"log/slog"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"roster/contracts/journey"
	"roster/pkg/platform/httputil"
)

const (
	defaultRetryAfter = 60

	blockedMessage   = "Your account has been blocked. Contact support to regain access."
	throttledMessage = "Too many attempts. Please wait before trying again."
	errorMessage     = "Something went wrong during sign-in. Please try again."
)

type Handler struct {
	logger   *slog.Logger
	maxDelay time.Duration

	// sleep and intn are injectable for deterministic tests.
	sleep func(time.Duration)
	intn  func(n int) int
}

// Option configures the Handler.
type Option func(*Handler)

// WithSleep replaces the delay function.
func WithSleep(sleep func(time.Duration)) Option {
	return func(h *Handler) {
		h.sleep = sleep
	}
}

// WithRand replaces the random source for the delay endpoint.
func WithRand(intn func(n int) int) Option {
	return func(h *Handler) {
		h.intn = intn
	}
}

func New(logger *slog.Logger, maxDelay time.Duration, opts ...Option) *Handler {
	h := &Handler{
		logger:   logger,
		maxDelay: maxDelay,
		sleep:    time.Sleep,
		intn:     rand.Intn,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/simulate/blocked", h.HandleBlocked)
	r.Post("/simulate/throttled", h.HandleThrottled)
	r.Post("/simulate/error", h.HandleError)
	r.Post("/simulate/delay", h.HandleDelay)
}

// HandleBlocked implements POST /simulate/blocked.
func (h *Handler) HandleBlocked(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, journey.Blocked(journey.CodeUserBlocked, blockedMessage))
}

// HandleThrottled implements POST /simulate/throttled.
// The retry hint in seconds can be overridden with ?retryAfter=N.
func (h *Handler) HandleThrottled(w http.ResponseWriter, r *http.Request) {
	retryAfter := defaultRetryAfter
	if v := r.URL.Query().Get("retryAfter"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			httputil.WriteJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "bad_request",
				"error_description": "retryAfter must be a non-negative integer",
			})
			return
		}
		retryAfter = n
	}
	httputil.WriteJSON(w, http.StatusOK, journey.Throttled(retryAfter, throttledMessage))
}

// HandleError implements POST /simulate/error.
func (h *Handler) HandleError(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, journey.Error(errorMessage))
}

// HandleDelay implements POST /simulate/delay. It stalls for a random
// duration bounded by the configured maximum, then answers NotFound. Used to
// exercise the orchestration engine's own timeout handling.
func (h *Handler) HandleDelay(w http.ResponseWriter, r *http.Request) {
	delay := h.randomDelay()
	h.logger.InfoContext(r.Context(), "simulating slow backend", "delay", delay)
	h.sleep(delay)
	httputil.WriteJSON(w, http.StatusOK, journey.NotFound())
}

func (h *Handler) randomDelay() time.Duration {
	if h.maxDelay <= 0 {
		return 0
	}
	return time.Duration(h.intn(int(h.maxDelay.Milliseconds())+1)) * time.Millisecond
}
