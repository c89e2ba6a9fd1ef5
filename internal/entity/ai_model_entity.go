package entity

import (
	"time"

	"github.com/google/uuid"
)

// AIModel is a user-scoped model configuration (provider, endpoint, key).
type AIModel struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Provider    string
	ModelName   string
	ApiKey      *string
	EndpointURL *string
	Parameters  map[string]interface{}
	IsActive    bool
	CreatedAt   time.Time
}
