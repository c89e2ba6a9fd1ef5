package dto

import (
	"time"

	"github.com/google/uuid"
)

type UsageResponse struct {
	Id            uuid.UUID `json:"id"`
	UserId        uuid.UUID `json:"userId"`
	PeriodStart   time.Time `json:"periodStart"`
	PeriodEnd     time.Time `json:"periodEnd"`
	RequestsUsed  int       `json:"requestsUsed"`
	RequestsLimit int       `json:"requestsLimit"`
	TokensUsed    int       `json:"tokensUsed"`
	TokensLimit   int       `json:"tokensLimit"`
}

type AIRequestResponse struct {
	Id           uuid.UUID              `json:"id"`
	UserId       uuid.UUID              `json:"userId"`
	ProjectId    *uuid.UUID             `json:"projectId,omitempty"`
	Type         string                 `json:"type"`
	InputData    map[string]interface{} `json:"inputData"`
	OutputData   map[string]interface{} `json:"outputData"`
	ModelUsed    *string                `json:"modelUsed,omitempty"`
	TokensUsed   int                    `json:"tokensUsed"`
	Cost         float64                `json:"cost"`
	Status       string                 `json:"status"`
	ErrorMessage *string                `json:"errorMessage,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
}

// DashboardSnapshot aggregates per-user activity counters. Counts are
// computed at request time, nothing is cached.
type DashboardSnapshot struct {
	Projects         int           `json:"projects"`
	ContentGenerated int           `json:"contentGenerated"`
	TextAnalyzed     int           `json:"textAnalyzed"`
	ChatMessages     int           `json:"chatMessages"`
	MarketingIdeas   int           `json:"marketingIdeas"`
	Usage            UsageResponse `json:"usage"`
	LastUpdated      time.Time     `json:"lastUpdated"`
}

type DashboardResponse struct {
	Snapshot DashboardSnapshot   `json:"snapshot"`
	Projects []ProjectResponse   `json:"projects"`
	Requests []AIRequestResponse `json:"requests"`
}
