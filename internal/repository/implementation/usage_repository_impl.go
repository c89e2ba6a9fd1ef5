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

type UsageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UsageMapper
}

func NewUsageRepository(db *gorm.DB) contract.UsageRepository {
	return &UsageRepositoryImpl{
		db:     db,
		mapper: mapper.NewUsageMapper(),
	}
}

func (r *UsageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UsageRepositoryImpl) Create(ctx context.Context, usage *entity.UsageLimit) error {
	modelUsage := r.mapper.ToModel(usage)
	if err := r.db.WithContext(ctx).Create(modelUsage).Error; err != nil {
		return err
	}
	*usage = *r.mapper.ToEntity(modelUsage)
	return nil
}

func (r *UsageRepositoryImpl) Update(ctx context.Context, usage *entity.UsageLimit) error {
	modelUsage := r.mapper.ToModel(usage)
	if err := r.db.WithContext(ctx).Save(modelUsage).Error; err != nil {
		return err
	}
	*usage = *r.mapper.ToEntity(modelUsage)
	return nil
}

func (r *UsageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UsageLimit, error) {
	var modelUsage model.UsageLimit
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelUsage).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelUsage), nil
}
