package service

import (
	"context"
	"testing"

	"ai-helper-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAIModelUpsertCreates(t *testing.T) {
	svc := NewAIModelService(newTestFactory(t))
	ctx := context.Background()
	owner := uuid.New()

	model, err := svc.Upsert(ctx, owner, &dto.UpsertAIModelRequest{
		Provider:  "openai",
		ModelName: "gpt-4o-mini",
	})
	assert.NoError(t, err)
	assert.Equal(t, owner, model.UserId)
	assert.True(t, model.IsActive, "active defaults to true")
	assert.NotNil(t, model.Parameters)
	assert.Nil(t, model.ApiKey)
}

func TestAIModelUpsertReplacesKeepingCreatedAt(t *testing.T) {
	svc := NewAIModelService(newTestFactory(t))
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Upsert(ctx, owner, &dto.UpsertAIModelRequest{
		Provider:  "openai",
		ModelName: "gpt-4o-mini",
	})
	assert.NoError(t, err)

	inactive := false
	key := "sk-demo"
	replaced, err := svc.Upsert(ctx, owner, &dto.UpsertAIModelRequest{
		Id:        &created.Id,
		Provider:  "anthropic",
		ModelName: "claude-3-haiku",
		ApiKey:    &key,
		IsActive:  &inactive,
	})
	assert.NoError(t, err)
	assert.Equal(t, created.Id, replaced.Id)
	assert.Equal(t, "anthropic", replaced.Provider)
	assert.False(t, replaced.IsActive)
	assert.Equal(t, created.CreatedAt.Unix(), replaced.CreatedAt.Unix(), "replacing keeps the original creation time")

	list, err := svc.List(ctx, owner)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAIModelDelete(t *testing.T) {
	svc := NewAIModelService(newTestFactory(t))
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	model, err := svc.Upsert(ctx, owner, &dto.UpsertAIModelRequest{Provider: "local", ModelName: "llama3"})
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, stranger, model.Id), ErrModelNotFound)
	assert.NoError(t, svc.Delete(ctx, owner, model.Id))
	assert.ErrorIs(t, svc.Delete(ctx, owner, model.Id), ErrModelNotFound)
}
