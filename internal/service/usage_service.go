package service

import (
	"context"
	"time"

	"ai-helper-be/internal/config"
	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/repository/specification"
	"ai-helper-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUsageService interface {
	// GetForUser returns the user's usage record, creating one when absent.
	GetForUser(ctx context.Context, userId uuid.UUID) (*entity.UsageLimit, error)

	// Increment adds one request and the given tokens to the user's counters.
	Increment(ctx context.Context, userId uuid.UUID, tokens int) (*entity.UsageLimit, error)
}

type usageService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        config.UsageConfig
}

func NewUsageService(uowFactory unitofwork.RepositoryFactory, cfg config.UsageConfig) IUsageService {
	return &usageService{
		uowFactory: uowFactory,
		cfg:        cfg,
	}
}

func (s *usageService) newUsage(userId uuid.UUID) *entity.UsageLimit {
	now := time.Now()
	return &entity.UsageLimit{
		Id:            uuid.New(),
		UserId:        userId,
		PeriodStart:   now,
		PeriodEnd:     now.Add(time.Duration(s.cfg.PeriodDays) * 24 * time.Hour),
		RequestsUsed:  0,
		RequestsLimit: s.cfg.RequestsLimit,
		TokensUsed:    0,
		TokensLimit:   s.cfg.TokensLimit,
	}
}

func (s *usageService) GetForUser(ctx context.Context, userId uuid.UUID) (*entity.UsageLimit, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	usage, err := uow.UsageRepository().FindOne(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if usage != nil {
		return usage, nil
	}

	usage = s.newUsage(userId)
	if err := uow.UsageRepository().Create(ctx, usage); err != nil {
		return nil, err
	}
	return usage, nil
}

func (s *usageService) Increment(ctx context.Context, userId uuid.UUID, tokens int) (*entity.UsageLimit, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Find-or-create and the counter bump share one transaction so two
	// concurrent requests cannot race a duplicate record into existence.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	usage, err := uow.UsageRepository().FindOne(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if usage == nil {
		usage = s.newUsage(userId)
		if err := uow.UsageRepository().Create(ctx, usage); err != nil {
			return nil, err
		}
	}

	usage.RequestsUsed++
	usage.TokensUsed += tokens

	if err := uow.UsageRepository().Update(ctx, usage); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return usage, nil
}
