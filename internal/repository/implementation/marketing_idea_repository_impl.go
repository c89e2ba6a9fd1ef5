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

type MarketingIdeaRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MarketingMapper
}

func NewMarketingIdeaRepository(db *gorm.DB) contract.MarketingIdeaRepository {
	return &MarketingIdeaRepositoryImpl{
		db:     db,
		mapper: mapper.NewMarketingMapper(),
	}
}

func (r *MarketingIdeaRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MarketingIdeaRepositoryImpl) Create(ctx context.Context, idea *entity.MarketingIdea) error {
	modelIdea := r.mapper.ToModel(idea)
	if err := r.db.WithContext(ctx).Create(modelIdea).Error; err != nil {
		return err
	}
	*idea = *r.mapper.ToEntity(modelIdea)
	return nil
}

func (r *MarketingIdeaRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MarketingIdea, error) {
	var modelIdeas []*model.MarketingIdea
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelIdeas).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelIdeas), nil
}

func (r *MarketingIdeaRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.MarketingIdea{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
