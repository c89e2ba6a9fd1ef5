package mapper

import (
	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/model"

	"gorm.io/datatypes"
)

type AIModelMapper struct{}

func NewAIModelMapper() *AIModelMapper {
	return &AIModelMapper{}
}

func (m *AIModelMapper) ToEntity(c *model.AIModel) *entity.AIModel {
	if c == nil {
		return nil
	}
	return &entity.AIModel{
		Id:          c.Id,
		UserId:      c.UserId,
		Provider:    c.Provider,
		ModelName:   c.ModelName,
		ApiKey:      c.ApiKey,
		EndpointURL: c.EndpointURL,
		Parameters:  map[string]interface{}(c.Parameters),
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *AIModelMapper) ToModel(c *entity.AIModel) *model.AIModel {
	if c == nil {
		return nil
	}
	return &model.AIModel{
		Id:          c.Id,
		UserId:      c.UserId,
		Provider:    c.Provider,
		ModelName:   c.ModelName,
		ApiKey:      c.ApiKey,
		EndpointURL: c.EndpointURL,
		Parameters:  datatypes.JSONMap(c.Parameters),
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *AIModelMapper) ToEntities(models []*model.AIModel) []*entity.AIModel {
	entities := make([]*entity.AIModel, len(models))
	for i, c := range models {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
