package implementation

import (
	"context"
	"errors"

	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/mapper"
	"ai-helper-be/internal/model"
	"ai-helper-be/internal/repository/contract"
	"ai-helper-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, subscription *entity.Subscription) error {
	modelSubscription := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Create(modelSubscription).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(modelSubscription)
	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, subscription *entity.Subscription) error {
	modelSubscription := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Save(modelSubscription).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(modelSubscription)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	var modelSubscription model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	err := query.First(&modelSubscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelSubscription), nil
}
