package models

// Outcome tags a validation result. Exactly one outcome applies per query;
// results are never partially populated across outcomes.
type Outcome string

const (
	OutcomeExists   Outcome = "exists"
	OutcomeNotFound Outcome = "not_found"
	OutcomeBlocked  Outcome = "blocked"
)

// Query is one ephemeral validation request. CorrelationID is opaque and
// echoed only for tracing; it never influences the lookup.
type Query struct {
	Email         string
	CorrelationID string
}

// Result is the typed outcome of a validation query.
type Result struct {
	Outcome Outcome

	// UserID is set only for OutcomeExists.
	UserID string

	// Code and Message are set only for OutcomeBlocked.
	Code    string
	Message string
}

// Exists builds the result for a known, non-blocked user.
func Exists(userID string) Result {
	return Result{Outcome: OutcomeExists, UserID: userID}
}

// NotFound builds the "new user, proceed" result.
func NotFound() Result {
	return Result{Outcome: OutcomeNotFound}
}

// Blocked builds the result for a known, blocked user.
func Blocked(code, message string) Result {
	return Result{Outcome: OutcomeBlocked, Code: code, Message: message}
}
