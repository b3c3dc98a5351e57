// Package journey defines the fixed response contract consumed by the
// identity-orchestration engine when it calls out to this service mid-journey.
// Field names and null handling are dictated by the consumer: it extracts
// claims by strict JSON path, so unset optional fields must be encoded as
// explicit nulls, never omitted.
package journey

// ContractVersion identifies the contract schema version for compatibility checks.
const ContractVersion = "v1.0.0"

// Stable machine-readable codes carried in the errorCode claim. The
// orchestration policy branches on these, so they must not change.
const (
	CodeUserBlocked  = "user_blocked"
	CodeThrottled    = "throttled"
	CodeJourneyError = "journey_error"
)

// Response is the flat claims payload returned for every journey outcome.
// Journey outcomes are always carried in a 200 body; HTTP status codes encode
// only transport-level failures (malformed request, failed endpoint auth).
type Response struct {
	UserExists      bool    `json:"userExists"`
	UserID          *string `json:"userId"`
	UserMessage     *string `json:"userMessage"`
	ErrorCode       *string `json:"errorCode"`
	JourneyHasError bool    `json:"journeyHasError"`
	RetryAfter      *int    `json:"retryAfter"`
}

// Exists reports a known, non-blocked user.
func Exists(userID string) Response {
	return Response{
		UserExists: true,
		UserID:     &userID,
	}
}

// NotFound reports an unknown user, which signals the journey to proceed
// with sign-up. It is a valid outcome, not an error.
func NotFound() Response {
	return Response{}
}

// Blocked reports a known user whose account is blocked. The message is
// surfaced inline by the journey UI; the code drives policy branching.
func Blocked(code, message string) Response {
	return Response{
		UserExists:      true,
		UserMessage:     &message,
		ErrorCode:       &code,
		JourneyHasError: true,
	}
}

// Throttled reports a throttling-style outcome with a retry hint in seconds.
func Throttled(retryAfter int, message string) Response {
	code := CodeThrottled
	return Response{
		UserMessage:     &message,
		ErrorCode:       &code,
		JourneyHasError: true,
		RetryAfter:      &retryAfter,
	}
}

// Error reports a business-level journey failure intended to drive inline
// UI messaging rather than a hard failure page.
func Error(message string) Response {
	code := CodeJourneyError
	return Response{
		UserMessage:     &message,
		ErrorCode:       &code,
		JourneyHasError: true,
	}
}
