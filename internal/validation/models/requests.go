package models

import (
	"strings"

	dErrors "roster/pkg/domain-errors"
)

const maxEmailLength = 255

// ValidateRequest is the body of POST /validate as sent by the orchestration
// engine mid-journey.
type ValidateRequest struct {
	Email         string `json:"email"`
	CorrelationID string `json:"correlationId"`
}

// Normalize trims surrounding whitespace. Case folding happens at the
// directory key, not here, so the original casing stays available for logs.
func (r *ValidateRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.CorrelationID = strings.TrimSpace(r.CorrelationID)
}

// Validate rejects malformed requests before any lookup happens.
func (r *ValidateRequest) Validate() error {
	if r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email must not be empty")
	}
	if len(r.Email) > maxEmailLength {
		return dErrors.New(dErrors.CodeValidation, "email exceeds maximum length")
	}
	if !strings.Contains(r.Email, "@") {
		return dErrors.New(dErrors.CodeValidation, "email must contain @")
	}
	return nil
}

// Query converts the request into the service-level query.
func (r *ValidateRequest) Query() Query {
	return Query{
		Email:         r.Email,
		CorrelationID: r.CorrelationID,
	}
}
