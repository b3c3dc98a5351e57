package handler

import (
	"roster/contracts/journey"
	"roster/internal/validation/models"
)

// toJourneyResponse maps a typed validation result onto the fixed claims
// payload. Unknown outcomes degrade to a journey error rather than a 500 so
// the orchestration engine always receives a well-formed body.
func toJourneyResponse(result models.Result) journey.Response {
	switch result.Outcome {
	case models.OutcomeExists:
		return journey.Exists(result.UserID)
	case models.OutcomeNotFound:
		return journey.NotFound()
	case models.OutcomeBlocked:
		return journey.Blocked(result.Code, result.Message)
	default:
		return journey.Error("validation produced no outcome")
	}
}
