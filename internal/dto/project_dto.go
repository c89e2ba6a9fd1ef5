package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Name        string                 `json:"name" validate:"required"`
	Type        string                 `json:"type" validate:"required"`
	Description string                 `json:"description"`
	Settings    map[string]interface{} `json:"settings"`
}

type UpdateProjectRequest struct {
	Name        *string                `json:"name"`
	Type        *string                `json:"type"`
	Description *string                `json:"description"`
	Settings    map[string]interface{} `json:"settings"`
}

type ProjectResponse struct {
	Id          uuid.UUID              `json:"id"`
	UserId      uuid.UUID              `json:"userId"`
	Name        string                 `json:"name"`
	Description *string                `json:"description,omitempty"`
	Type        string                 `json:"type"`
	Settings    map[string]interface{} `json:"settings"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

type ProjectEnvelope struct {
	Project ProjectResponse `json:"project"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}
