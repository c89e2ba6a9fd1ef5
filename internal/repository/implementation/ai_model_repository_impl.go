package implementation

import (
	"context"
	"errors"

	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/mapper"
	"ai-helper-be/internal/model"
	"ai-helper-be/internal/repository/contract"
	"ai-helper-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AIModelRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AIModelMapper
}

func NewAIModelRepository(db *gorm.DB) contract.AIModelRepository {
	return &AIModelRepositoryImpl{
		db:     db,
		mapper: mapper.NewAIModelMapper(),
	}
}

func (r *AIModelRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AIModelRepositoryImpl) Save(ctx context.Context, config *entity.AIModel) error {
	modelConfig := r.mapper.ToModel(config)
	if err := r.db.WithContext(ctx).Save(modelConfig).Error; err != nil {
		return err
	}
	*config = *r.mapper.ToEntity(modelConfig)
	return nil
}

func (r *AIModelRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AIModel{}).Error
}

func (r *AIModelRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AIModel, error) {
	var modelConfig model.AIModel
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelConfig).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelConfig), nil
}

func (r *AIModelRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AIModel, error) {
	var modelConfigs []*model.AIModel
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelConfigs).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelConfigs), nil
}
