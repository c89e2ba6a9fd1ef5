package service

import (
	"context"
	"testing"

	"ai-helper-be/internal/dto"
	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/repository/memory"
	"ai-helper-be/internal/repository/specification"
	"ai-helper-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUpdateProfile(t *testing.T) {
	factory := unitofwork.NewRepositoryFactory(newTestDB(t))
	authSvc := NewAuthService(factory, memory.NewSessionRepository(1), newRecordingMailer(), nil, testUsageCfg)
	userSvc := NewUserService(factory, nil)
	ctx := context.Background()

	user, _, err := authSvc.Register(ctx, &dto.RegisterRequest{
		Email:    "frank@example.com",
		Password: "password123",
		Name:     "Frank",
	})
	assert.NoError(t, err)

	name := "Франк"
	avatar := "https://cdn.example.com/frank.png"
	updated, err := userSvc.UpdateProfile(ctx, user.Id, &dto.UpdateProfileRequest{
		Name:      &name,
		AvatarURL: &avatar,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Франк", updated.Name)
	assert.NotNil(t, updated.AvatarURL)
	assert.Equal(t, avatar, *updated.AvatarURL)
	assert.Equal(t, "frank@example.com", updated.Email, "untouched fields survive")

	// Empty strings are ignored, a nil avatar pointer leaves it in place.
	empty := ""
	unchanged, err := userSvc.UpdateProfile(ctx, user.Id, &dto.UpdateProfileRequest{Name: &empty})
	assert.NoError(t, err)
	assert.Equal(t, "Франк", unchanged.Name)
	assert.NotNil(t, unchanged.AvatarURL)

	// Email updates are lowercased like at registration.
	newEmail := "Frank.Miller@Example.com"
	relocated, err := userSvc.UpdateProfile(ctx, user.Id, &dto.UpdateProfileRequest{Email: &newEmail})
	assert.NoError(t, err)
	assert.Equal(t, "frank.miller@example.com", relocated.Email)
}

func TestUpdateProfilePlanChangeOpensSubscription(t *testing.T) {
	db := newTestDB(t)
	factory := unitofwork.NewRepositoryFactory(db)
	authSvc := NewAuthService(factory, memory.NewSessionRepository(1), newRecordingMailer(), nil, testUsageCfg)
	userSvc := NewUserService(factory, nil)
	ctx := context.Background()

	user, _, err := authSvc.Register(ctx, &dto.RegisterRequest{
		Email:    "grace@example.com",
		Password: "password123",
		Name:     "Grace",
	})
	assert.NoError(t, err)
	assert.Nil(t, user.SubscriptionExpiresAt)

	plan := "pro"
	upgraded, err := userSvc.UpdateProfile(ctx, user.Id, &dto.UpdateProfileRequest{SubscriptionPlan: &plan})
	assert.NoError(t, err)
	assert.Equal(t, "pro", upgraded.SubscriptionPlan)
	assert.NotNil(t, upgraded.SubscriptionExpiresAt)

	uow := factory.NewUnitOfWork(ctx)
	subscription, err := uow.SubscriptionRepository().FindOne(ctx, specification.OwnedBy{UserID: user.Id})
	assert.NoError(t, err)
	assert.NotNil(t, subscription)
	assert.Equal(t, "pro", subscription.PlanName)
	assert.Equal(t, entity.SubscriptionStatusActive, subscription.Status)

	// Changing plans again rolls the same record instead of adding one.
	firstPeriodEnd := subscription.CurrentPeriodEnd
	plan = "enterprise"
	_, err = userSvc.UpdateProfile(ctx, user.Id, &dto.UpdateProfileRequest{SubscriptionPlan: &plan})
	assert.NoError(t, err)

	rolled, err := uow.SubscriptionRepository().FindOne(ctx, specification.OwnedBy{UserID: user.Id})
	assert.NoError(t, err)
	assert.Equal(t, subscription.Id, rolled.Id)
	assert.Equal(t, "enterprise", rolled.PlanName)
	assert.True(t, !rolled.CurrentPeriodEnd.Before(firstPeriodEnd))
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	userSvc := NewUserService(newTestFactory(t), nil)

	_, err := userSvc.UpdateProfile(context.Background(), uuid.New(), &dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
