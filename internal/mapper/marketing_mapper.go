package mapper

import (
	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/model"
)

type MarketingMapper struct{}

func NewMarketingMapper() *MarketingMapper {
	return &MarketingMapper{}
}

func (m *MarketingMapper) ToEntity(i *model.MarketingIdea) *entity.MarketingIdea {
	if i == nil {
		return nil
	}
	return &entity.MarketingIdea{
		Id:        i.Id,
		UserId:    i.UserId,
		Topic:     i.Topic,
		Channel:   i.Channel,
		Idea:      i.Idea,
		CreatedAt: i.CreatedAt,
	}
}

func (m *MarketingMapper) ToModel(i *entity.MarketingIdea) *model.MarketingIdea {
	if i == nil {
		return nil
	}
	return &model.MarketingIdea{
		Id:        i.Id,
		UserId:    i.UserId,
		Topic:     i.Topic,
		Channel:   i.Channel,
		Idea:      i.Idea,
		CreatedAt: i.CreatedAt,
	}
}

func (m *MarketingMapper) ToEntities(ideas []*model.MarketingIdea) []*entity.MarketingIdea {
	entities := make([]*entity.MarketingIdea, len(ideas))
	for i, idea := range ideas {
		entities[i] = m.ToEntity(idea)
	}
	return entities
}
