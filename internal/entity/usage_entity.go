package entity

import (
	"time"

	"github.com/google/uuid"
)

// UsageLimit accumulates request and token counters against a rolling
// period. Limits are advisory: they are tracked and displayed, never
// enforced.
type UsageLimit struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	PeriodStart   time.Time
	PeriodEnd     time.Time
	RequestsUsed  int
	RequestsLimit int
	TokensUsed    int
	TokensLimit   int
}
