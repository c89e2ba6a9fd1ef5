package service

import (
	"context"
	"testing"

	"ai-helper-be/internal/dto"
	"ai-helper-be/internal/repository/unitofwork"
	"ai-helper-be/pkg/assistant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetDashboard(t *testing.T) {
	factory := unitofwork.NewRepositoryFactory(newTestDB(t))
	usageSvc := NewUsageService(factory, testUsageCfg)
	assistantSvc := NewAssistantService(factory, nil, testUsageCfg)
	projectSvc := NewProjectService(factory, nil)
	dashboardSvc := NewDashboardService(factory, usageSvc)

	ctx := context.Background()
	userId := uuid.New()

	_, err := projectSvc.Create(ctx, userId, &dto.CreateProjectRequest{Name: "Проект", Type: "content"})
	assert.NoError(t, err)

	_, err = assistantSvc.GenerateContent(ctx, userId, &dto.GenerateContentRequest{Topic: "Тема", ContentType: "article"})
	assert.NoError(t, err)
	_, err = assistantSvc.GenerateContent(ctx, userId, &dto.GenerateContentRequest{Topic: "Тема 2", ContentType: "post"})
	assert.NoError(t, err)
	_, err = assistantSvc.AnalyzeText(ctx, userId, &dto.AnalyzeTextRequest{Text: "Один. Два."})
	assert.NoError(t, err)
	_, err = assistantSvc.SendChatMessage(ctx, userId, &dto.ChatMessageRequest{Message: "привет"})
	assert.NoError(t, err)
	_, err = assistantSvc.CreateMarketingIdea(ctx, userId, &dto.MarketingIdeaRequest{Topic: "акция", Channel: "email"})
	assert.NoError(t, err)

	dashboard, err := dashboardSvc.GetDashboard(ctx, userId)
	assert.NoError(t, err)

	snapshot := dashboard.Snapshot
	assert.Equal(t, 1, snapshot.Projects)
	assert.Equal(t, 2, snapshot.ContentGenerated)
	assert.Equal(t, 1, snapshot.TextAnalyzed)
	assert.Equal(t, 2, snapshot.ChatMessages, "both chat turns count")
	assert.Equal(t, 1, snapshot.MarketingIdeas)
	assert.False(t, snapshot.LastUpdated.IsZero())

	assert.Equal(t, 5, snapshot.Usage.RequestsUsed)
	expectedTokens := 2*assistant.TokensContentGeneration +
		assistant.TokensTextAnalysis +
		assistant.TokensChat +
		assistant.TokensMarketingIdea
	assert.Equal(t, expectedTokens, snapshot.Usage.TokensUsed)

	assert.Len(t, dashboard.Projects, 1)
	assert.Len(t, dashboard.Requests, 5)
	assert.Equal(t, "content_generation", dashboard.Requests[0].Type)
}

func TestGetDashboardForFreshUser(t *testing.T) {
	factory := unitofwork.NewRepositoryFactory(newTestDB(t))
	dashboardSvc := NewDashboardService(factory, NewUsageService(factory, testUsageCfg))

	dashboard, err := dashboardSvc.GetDashboard(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, 0, dashboard.Snapshot.Projects)
	assert.Equal(t, 0, dashboard.Snapshot.Usage.RequestsUsed)
	assert.Empty(t, dashboard.Projects)
	assert.Empty(t, dashboard.Requests)
}
