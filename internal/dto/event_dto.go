package dto

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEventMessage is the payload published on the internal event bus
// whenever a user-facing action completes.
type ActivityEventMessage struct {
	UserId     uuid.UUID              `json:"user_id"`
	Action     string                 `json:"action"`
	Details    map[string]interface{} `json:"details,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}
