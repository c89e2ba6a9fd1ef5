package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpsertAIModelRequest creates a model configuration, or replaces the one
// identified by Id when present.
type UpsertAIModelRequest struct {
	Id          *uuid.UUID             `json:"id"`
	Provider    string                 `json:"provider" validate:"required"`
	ModelName   string                 `json:"modelName" validate:"required"`
	ApiKey      *string                `json:"apiKey"`
	EndpointURL *string                `json:"endpointUrl"`
	Parameters  map[string]interface{} `json:"parameters"`
	IsActive    *bool                  `json:"isActive"`
}

type AIModelResponse struct {
	Id          uuid.UUID              `json:"id"`
	UserId      uuid.UUID              `json:"userId"`
	Provider    string                 `json:"provider"`
	ModelName   string                 `json:"modelName"`
	ApiKey      *string                `json:"apiKey,omitempty"`
	EndpointURL *string                `json:"endpointUrl,omitempty"`
	Parameters  map[string]interface{} `json:"parameters"`
	IsActive    bool                   `json:"isActive"`
	CreatedAt   time.Time              `json:"createdAt"`
}

type AIModelEnvelope struct {
	Model AIModelResponse `json:"model"`
}

type AIModelListResponse struct {
	Models []AIModelResponse `json:"models"`
}
