package implementation

import (
	"context"

	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/mapper"
	"ai-helper-be/internal/model"
	"ai-helper-be/internal/repository/contract"
	"ai-helper-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AIRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AIRequestMapper
}

func NewAIRequestRepository(db *gorm.DB) contract.AIRequestRepository {
	return &AIRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewAIRequestMapper(),
	}
}

func (r *AIRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AIRequestRepositoryImpl) Create(ctx context.Context, request *entity.AIRequest) error {
	modelRequest := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(modelRequest).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(modelRequest)
	return nil
}

func (r *AIRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AIRequest, error) {
	var modelRequests []*model.AIRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelRequests).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelRequests), nil
}

func (r *AIRequestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AIRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
