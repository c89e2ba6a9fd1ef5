package mapper

import (
	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/model"

	"gorm.io/datatypes"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToEntity(p *model.Project) *entity.Project {
	if p == nil {
		return nil
	}
	return &entity.Project{
		Id:          p.Id,
		UserId:      p.UserId,
		Name:        p.Name,
		Description: p.Description,
		Type:        p.Type,
		Settings:    map[string]interface{}(p.Settings),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *ProjectMapper) ToModel(p *entity.Project) *model.Project {
	if p == nil {
		return nil
	}
	return &model.Project{
		Id:          p.Id,
		UserId:      p.UserId,
		Name:        p.Name,
		Description: p.Description,
		Type:        p.Type,
		Settings:    datatypes.JSONMap(p.Settings),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *ProjectMapper) ToEntities(projects []*model.Project) []*entity.Project {
	entities := make([]*entity.Project, len(projects))
	for i, p := range projects {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
