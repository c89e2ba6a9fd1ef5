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

type ChatMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, message *entity.ChatMessage) error {
	modelMessage := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(modelMessage).Error; err != nil {
		return err
	}
	*message = *r.mapper.ToEntity(modelMessage)
	return nil
}

func (r *ChatMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var modelMessages []*model.ChatMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelMessages).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelMessages), nil
}

func (r *ChatMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
