package entity

import (
	"time"

	"github.com/google/uuid"
)

type AIRequestType string
type AIRequestStatus string

const (
	AIRequestTypeContentGeneration AIRequestType = "content_generation"
	AIRequestTypeTextAnalysis      AIRequestType = "text_analysis"
	AIRequestTypeChat              AIRequestType = "chat"
	AIRequestTypeImageGeneration   AIRequestType = "image_generation"
	AIRequestTypeMarketingIdea     AIRequestType = "marketing_idea"
	AIRequestTypeVoiceSynthesis    AIRequestType = "voice_synthesis"
	AIRequestTypeVoiceTranscribe   AIRequestType = "voice_transcription"

	AIRequestStatusPending   AIRequestStatus = "pending"
	AIRequestStatusCompleted AIRequestStatus = "completed"
	AIRequestStatusFailed    AIRequestStatus = "failed"
)

// AIRequest is an append-only audit record of a simulated AI action.
// It is never mutated after creation.
type AIRequest struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	ProjectId    *uuid.UUID
	Type         AIRequestType
	InputData    map[string]interface{}
	OutputData   map[string]interface{}
	ModelUsed    *string
	TokensUsed   int
	Cost         float64
	Status       AIRequestStatus
	ErrorMessage *string
	CreatedAt    time.Time
}
