package service

import (
	"context"
	"strings"
	"time"

	"ai-helper-be/internal/dto"
	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/repository/specification"
	"ai-helper-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory  unitofwork.RepositoryFactory
	activityPub IPublisherService
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, activityPub IPublisherService) IUserService {
	return &userService{
		uowFactory:  uowFactory,
		activityPub: activityPub,
	}
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != "" {
		user.Email = strings.ToLower(*req.Email)
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}

	planChanged := req.SubscriptionPlan != nil && *req.SubscriptionPlan != "" &&
		*req.SubscriptionPlan != user.SubscriptionPlan
	if planChanged {
		user.SubscriptionPlan = *req.SubscriptionPlan
		if err := s.rollSubscription(ctx, uow, user); err != nil {
			return nil, err
		}
	}
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.activityPub, user.Id, "PROFILE_UPDATED", nil)

	return toUserResponse(user), nil
}

// rollSubscription opens a fresh 30-day period on the new plan, replacing the
// user's current subscription record when one exists.
func (s *userService) rollSubscription(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User) error {
	now := time.Now()
	periodEnd := now.Add(30 * 24 * time.Hour)
	user.SubscriptionExpiresAt = &periodEnd

	subscription, err := uow.SubscriptionRepository().FindOne(ctx, specification.OwnedBy{UserID: user.Id})
	if err != nil {
		return err
	}
	if subscription == nil {
		return uow.SubscriptionRepository().Create(ctx, &entity.Subscription{
			Id:                 uuid.New(),
			UserId:             user.Id,
			PlanName:           user.SubscriptionPlan,
			Status:             entity.SubscriptionStatusActive,
			CurrentPeriodStart: now,
			CurrentPeriodEnd:   periodEnd,
			CreatedAt:          now,
		})
	}

	subscription.PlanName = user.SubscriptionPlan
	subscription.Status = entity.SubscriptionStatusActive
	subscription.CurrentPeriodStart = now
	subscription.CurrentPeriodEnd = periodEnd
	return uow.SubscriptionRepository().Update(ctx, subscription)
}
