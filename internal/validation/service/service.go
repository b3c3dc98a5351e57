package service

import (
	"context"
	"log/slog"
	"time"

	"roster/contracts/journey"
	dirmodels "roster/internal/directory/models"
	"roster/internal/validation/metrics"
	"roster/internal/validation/models"
	"roster/internal/validation/tracer"
	dErrors "roster/pkg/domain-errors"
)

// Directory defines the lookup interface the service consumes. The concrete
// store owns reload policy; the service only sees complete snapshots.
type Directory interface {
	Lookup(ctx context.Context, email string) (dirmodels.Record, bool, error)
}

// blockedMessage is surfaced inline by the journey UI for blocked accounts.
const blockedMessage = "Your account has been blocked. Contact support to regain access."

// Service answers existence/blocked/new-user queries over an email key.
type Service struct {
	directory Directory
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    tracer.Tracer
}

// Option configures the Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs the validation service over the given directory.
func New(directory Directory, opts ...Option) *Service {
	svc := &Service{
		directory: directory,
		tracer:    tracer.Noop{},
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

// Validate answers whether the queried email belongs to an existing user, a
// blocked user, or nobody. Misses and blocked accounts are outcomes, not
// errors; an error here means the request was malformed or the directory
// lookup itself failed.
func (s *Service) Validate(ctx context.Context, query models.Query) (models.Result, error) {
	if dirmodels.NormalizeEmail(query.Email) == "" {
		if s.metrics != nil {
			s.metrics.IncrementRequestsFailed()
		}
		return models.Result{}, dErrors.New(dErrors.CodeValidation, "email must not be empty")
	}

	ctx, span := s.tracer.Start(ctx, "validation.validate",
		tracer.String("correlation_id", query.CorrelationID),
	)

	start := time.Now()
	rec, ok, err := s.directory.Lookup(ctx, query.Email)
	if s.metrics != nil {
		s.metrics.ObserveLookupLatency(time.Since(start))
	}
	if err != nil {
		span.End(err)
		return models.Result{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "directory lookup failed")
	}

	result := s.resolve(rec, ok)
	span.SetAttributes(
		tracer.String("outcome", string(result.Outcome)),
		tracer.Bool("user_exists", result.Outcome == models.OutcomeExists),
	)
	span.End(nil)

	if s.metrics != nil {
		s.metrics.IncrementOutcome(string(result.Outcome))
	}
	s.logger.InfoContext(ctx, "validation completed",
		"outcome", result.Outcome,
		"correlation_id", query.CorrelationID,
	)
	return result, nil
}

func (s *Service) resolve(rec dirmodels.Record, ok bool) models.Result {
	switch {
	case !ok:
		return models.NotFound()
	case rec.Blocked:
		return models.Blocked(journey.CodeUserBlocked, blockedMessage)
	default:
		return models.Exists(rec.UserID)
	}
}
