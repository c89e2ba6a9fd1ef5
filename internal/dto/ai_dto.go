package dto

import (
	"time"

	"github.com/google/uuid"

	"ai-helper-be/pkg/assistant"
)

type GenerateContentRequest struct {
	Topic       string `json:"topic" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
	Tone        string `json:"tone"`
	Length      string `json:"length"`
}

type ContentResponse struct {
	Content string `json:"content"`
}

type AnalyzeTextRequest struct {
	Text string `json:"text" validate:"required"`
}

type AnalyzeTextResponse struct {
	Metrics     assistant.TextMetrics `json:"metrics"`
	Suggestions []string              `json:"suggestions"`
}

type ChatMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"userId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type ChatHistoryResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

type GenerateImageRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Style  string `json:"style"`
	Count  int    `json:"count"`
}

type GeneratedImage struct {
	Id  string `json:"id"`
	URL string `json:"url"`
}

type GenerateImageResponse struct {
	Images []GeneratedImage `json:"images"`
}

type MarketingIdeaRequest struct {
	Topic    string `json:"topic" validate:"required"`
	Channel  string `json:"channel" validate:"required"`
	Audience string `json:"audience"`
}

type MarketingIdeaResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"userId"`
	Topic     string    `json:"topic"`
	Channel   string    `json:"channel"`
	Idea      string    `json:"idea"`
	CreatedAt time.Time `json:"createdAt"`
}

type MarketingIdeaEnvelope struct {
	Idea    MarketingIdeaResponse   `json:"idea"`
	History []MarketingIdeaResponse `json:"history"`
}

type SynthesizeVoiceRequest struct {
	Text  string `json:"text" validate:"required,notblank"`
	Voice string `json:"voice"`
	Speed string `json:"speed"`
}

type SynthesizeVoiceResponse struct {
	Audio string `json:"audio"`
	Voice string `json:"voice"`
	Speed string `json:"speed"`
}

type TranscribeRequest struct {
	Audio string `json:"audio" validate:"required"`
}

type TranscribeResponse struct {
	Transcript string `json:"transcript"`
}
