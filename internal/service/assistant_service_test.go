package service

import (
	"context"
	"strings"
	"testing"

	"ai-helper-be/internal/dto"
	"ai-helper-be/internal/repository/unitofwork"
	"ai-helper-be/pkg/assistant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestAssistant(t *testing.T) (IAssistantService, IUsageService) {
	t.Helper()

	factory := unitofwork.NewRepositoryFactory(newTestDB(t))
	return NewAssistantService(factory, nil, testUsageCfg), NewUsageService(factory, testUsageCfg)
}

func TestGenerateContentChargesUsage(t *testing.T) {
	svc, usageSvc := newTestAssistant(t)
	ctx := context.Background()
	userId := uuid.New()

	resp, err := svc.GenerateContent(ctx, userId, &dto.GenerateContentRequest{
		Topic:       "Удаленная работа",
		ContentType: "article",
		Length:      "long",
	})
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Content, "# Удаленная работа"))
	assert.Contains(t, resp.Content, "Расширенный материал")

	usage, err := usageSvc.GetForUser(ctx, userId)
	assert.NoError(t, err)
	assert.Equal(t, 1, usage.RequestsUsed)
	assert.Equal(t, assistant.TokensContentGeneration, usage.TokensUsed)
}

func TestAnalyzeTextReturnsMetricsAndSuggestions(t *testing.T) {
	svc, usageSvc := newTestAssistant(t)
	ctx := context.Background()
	userId := uuid.New()

	resp, err := svc.AnalyzeText(ctx, userId, &dto.AnalyzeTextRequest{Text: "Hello world. Hello again."})
	assert.NoError(t, err)
	assert.Equal(t, 4, resp.Metrics.WordCount)
	assert.Equal(t, 2, resp.Metrics.SentenceCount)
	assert.NotEmpty(t, resp.Suggestions)

	usage, err := usageSvc.GetForUser(ctx, userId)
	assert.NoError(t, err)
	assert.Equal(t, assistant.TokensTextAnalysis, usage.TokensUsed)
}

func TestSendChatMessage(t *testing.T) {
	svc, usageSvc := newTestAssistant(t)
	ctx := context.Background()
	userId := uuid.New()

	first, err := svc.SendChatMessage(ctx, userId, &dto.ChatMessageRequest{Message: "привет"})
	assert.NoError(t, err)
	assert.Len(t, first.Messages, 2)
	assert.Equal(t, "user", first.Messages[0].Role)
	assert.Equal(t, "привет", first.Messages[0].Content)
	assert.Equal(t, "assistant", first.Messages[1].Role)
	assert.Contains(t, first.Messages[1].Content, "«привет»")
	assert.Contains(t, first.Messages[1].Content, "один из первых запросов")

	second, err := svc.SendChatMessage(ctx, userId, &dto.ChatMessageRequest{Message: "продолжим"})
	assert.NoError(t, err)
	assert.Len(t, second.Messages, 4)

	// History stays chronological: user and assistant turns alternate.
	for i, role := range []string{"user", "assistant", "user", "assistant"} {
		assert.Equal(t, role, second.Messages[i].Role, "message %d", i)
	}

	// The third turn sees five stored messages and switches tone.
	third, err := svc.SendChatMessage(ctx, userId, &dto.ChatMessageRequest{Message: "еще"})
	assert.NoError(t, err)
	assert.Contains(t, third.Messages[5].Content, "хорошая история диалога")

	usage, err := usageSvc.GetForUser(ctx, userId)
	assert.NoError(t, err)
	assert.Equal(t, 3, usage.RequestsUsed)
	assert.Equal(t, 3*assistant.TokensChat, usage.TokensUsed)
}

func TestChatHistoryIsPerUser(t *testing.T) {
	svc, _ := newTestAssistant(t)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.SendChatMessage(ctx, alice, &dto.ChatMessageRequest{Message: "от Алисы"})
	assert.NoError(t, err)

	history, err := svc.SendChatMessage(ctx, bob, &dto.ChatMessageRequest{Message: "от Боба"})
	assert.NoError(t, err)
	assert.Len(t, history.Messages, 2, "users must not see each other's chats")
	assert.Equal(t, "от Боба", history.Messages[0].Content)
}

func TestGenerateImagesClampsCount(t *testing.T) {
	svc, usageSvc := newTestAssistant(t)
	ctx := context.Background()
	userId := uuid.New()

	resp, err := svc.GenerateImages(ctx, userId, &dto.GenerateImageRequest{Prompt: "закат", Count: 10})
	assert.NoError(t, err)
	assert.Len(t, resp.Images, 4)
	for _, image := range resp.Images {
		assert.True(t, strings.HasPrefix(image.URL, "data:image/svg+xml;base64,"))
	}

	zero, err := svc.GenerateImages(ctx, userId, &dto.GenerateImageRequest{Prompt: "закат"})
	assert.NoError(t, err)
	assert.Len(t, zero.Images, 1, "missing count defaults to one image")

	usage, err := usageSvc.GetForUser(ctx, userId)
	assert.NoError(t, err)
	assert.Equal(t, 2, usage.RequestsUsed, "the charge is per request, not per image")
	assert.Equal(t, 2*assistant.TokensImageGeneration, usage.TokensUsed)
}

func TestCreateMarketingIdeaKeepsHistory(t *testing.T) {
	svc, _ := newTestAssistant(t)
	ctx := context.Background()
	userId := uuid.New()

	first, err := svc.CreateMarketingIdea(ctx, userId, &dto.MarketingIdeaRequest{
		Topic:   "новый тариф",
		Channel: "email",
	})
	assert.NoError(t, err)
	assert.Contains(t, first.Idea.Idea, "«новый тариф»")
	assert.Len(t, first.History, 1)

	second, err := svc.CreateMarketingIdea(ctx, userId, &dto.MarketingIdeaRequest{
		Topic:    "вебинар",
		Channel:  "telegram",
		Audience: "маркетологи",
	})
	assert.NoError(t, err)
	assert.Len(t, second.History, 2)
	assert.Equal(t, first.Idea.Id, second.History[0].Id, "history stays chronological")
	assert.Contains(t, second.Idea.Idea, "Целевая аудитория: маркетологи.")
}

func TestSynthesizeVoice(t *testing.T) {
	svc, usageSvc := newTestAssistant(t)
	ctx := context.Background()
	userId := uuid.New()

	resp, err := svc.SynthesizeVoice(ctx, userId, &dto.SynthesizeVoiceRequest{
		Text:  "Произнеси это вслух",
		Voice: "alien",
		Speed: "fast",
	})
	assert.NoError(t, err)
	assert.Equal(t, assistant.DemoAudioBase64, resp.Audio)
	assert.Equal(t, "female-ru", resp.Voice, "unknown voices fall back to the default")
	assert.Equal(t, "fast", resp.Speed)

	usage, err := usageSvc.GetForUser(ctx, userId)
	assert.NoError(t, err)
	assert.Equal(t, assistant.SynthesisTokens("Произнеси это вслух"), usage.TokensUsed)
}

func TestTranscribe(t *testing.T) {
	svc, usageSvc := newTestAssistant(t)
	ctx := context.Background()
	userId := uuid.New()

	resp, err := svc.Transcribe(ctx, userId, &dto.TranscribeRequest{Audio: assistant.DemoAudioBase64})
	assert.NoError(t, err)
	assert.Equal(t, assistant.DemoTranscript, resp.Transcript)

	usage, err := usageSvc.GetForUser(ctx, userId)
	assert.NoError(t, err)
	assert.Equal(t, 1, usage.RequestsUsed)
	assert.Equal(t, assistant.TokensTranscription, usage.TokensUsed)
}
