package unitofwork

import (
	"context"

	"ai-helper-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProjectRepository() contract.ProjectRepository
	AIRequestRepository() contract.AIRequestRepository
	FileRepository() contract.FileRepository
	UsageRepository() contract.UsageRepository
	AIModelRepository() contract.AIModelRepository
	ChatMessageRepository() contract.ChatMessageRepository
	MarketingIdeaRepository() contract.MarketingIdeaRepository
	SubscriptionRepository() contract.SubscriptionRepository
}
