package unitofwork

import (
	"context"
	"fmt"

	"ai-helper-be/internal/repository/contract"
	"ai-helper-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProjectRepository() contract.ProjectRepository {
	return implementation.NewProjectRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AIRequestRepository() contract.AIRequestRepository {
	return implementation.NewAIRequestRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FileRepository() contract.FileRepository {
	return implementation.NewFileRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UsageRepository() contract.UsageRepository {
	return implementation.NewUsageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AIModelRepository() contract.AIModelRepository {
	return implementation.NewAIModelRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatMessageRepository() contract.ChatMessageRepository {
	return implementation.NewChatMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MarketingIdeaRepository() contract.MarketingIdeaRepository {
	return implementation.NewMarketingIdeaRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SubscriptionRepository() contract.SubscriptionRepository {
	return implementation.NewSubscriptionRepository(u.getDB())
}
