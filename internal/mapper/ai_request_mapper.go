package mapper

import (
	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/model"

	"gorm.io/datatypes"
)

type AIRequestMapper struct{}

func NewAIRequestMapper() *AIRequestMapper {
	return &AIRequestMapper{}
}

func (m *AIRequestMapper) ToEntity(r *model.AIRequest) *entity.AIRequest {
	if r == nil {
		return nil
	}
	return &entity.AIRequest{
		Id:           r.Id,
		UserId:       r.UserId,
		ProjectId:    r.ProjectId,
		Type:         entity.AIRequestType(r.Type),
		InputData:    map[string]interface{}(r.InputData),
		OutputData:   map[string]interface{}(r.OutputData),
		ModelUsed:    r.ModelUsed,
		TokensUsed:   r.TokensUsed,
		Cost:         r.Cost,
		Status:       entity.AIRequestStatus(r.Status),
		ErrorMessage: r.ErrorMessage,
		CreatedAt:    r.CreatedAt,
	}
}

func (m *AIRequestMapper) ToModel(r *entity.AIRequest) *model.AIRequest {
	if r == nil {
		return nil
	}
	return &model.AIRequest{
		Id:           r.Id,
		UserId:       r.UserId,
		ProjectId:    r.ProjectId,
		Type:         string(r.Type),
		InputData:    datatypes.JSONMap(r.InputData),
		OutputData:   datatypes.JSONMap(r.OutputData),
		ModelUsed:    r.ModelUsed,
		TokensUsed:   r.TokensUsed,
		Cost:         r.Cost,
		Status:       string(r.Status),
		ErrorMessage: r.ErrorMessage,
		CreatedAt:    r.CreatedAt,
	}
}

func (m *AIRequestMapper) ToEntities(requests []*model.AIRequest) []*entity.AIRequest {
	entities := make([]*entity.AIRequest, len(requests))
	for i, r := range requests {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
