package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUsageGetForUserCreatesPeriod(t *testing.T) {
	svc := NewUsageService(newTestFactory(t), testUsageCfg)
	ctx := context.Background()
	userId := uuid.New()

	usage, err := svc.GetForUser(ctx, userId)
	assert.NoError(t, err)
	assert.Equal(t, userId, usage.UserId)
	assert.Equal(t, 0, usage.RequestsUsed)
	assert.Equal(t, testUsageCfg.RequestsLimit, usage.RequestsLimit)
	assert.Equal(t, testUsageCfg.TokensLimit, usage.TokensLimit)
	assert.WithinDuration(t, usage.PeriodStart.Add(30*24*time.Hour), usage.PeriodEnd, time.Second)

	// A second read returns the same record.
	again, err := svc.GetForUser(ctx, userId)
	assert.NoError(t, err)
	assert.Equal(t, usage.Id, again.Id)
}

func TestUsageIncrementAccumulates(t *testing.T) {
	svc := NewUsageService(newTestFactory(t), testUsageCfg)
	ctx := context.Background()
	userId := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := svc.Increment(ctx, userId, 64)
		assert.NoError(t, err)
	}

	usage, err := svc.GetForUser(ctx, userId)
	assert.NoError(t, err)
	assert.Equal(t, 3, usage.RequestsUsed)
	assert.Equal(t, 192, usage.TokensUsed)
}

func TestUsageIncrementNeverRejects(t *testing.T) {
	cfg := testUsageCfg
	cfg.RequestsLimit = 1
	cfg.TokensLimit = 10
	svc := NewUsageService(newTestFactory(t), cfg)
	ctx := context.Background()
	userId := uuid.New()

	// Limits are advisory: going past them keeps counting, never fails.
	for i := 0; i < 5; i++ {
		usage, err := svc.Increment(ctx, userId, 100)
		assert.NoError(t, err)
		assert.Equal(t, i+1, usage.RequestsUsed)
	}

	usage, err := svc.GetForUser(ctx, userId)
	assert.NoError(t, err)
	assert.Equal(t, 5, usage.RequestsUsed)
	assert.Equal(t, 500, usage.TokensUsed)
	assert.Greater(t, usage.RequestsUsed, usage.RequestsLimit)
}
