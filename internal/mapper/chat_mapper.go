package mapper

import (
	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(c *model.ChatMessage) *entity.ChatMessage {
	if c == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:        c.Id,
		UserId:    c.UserId,
		Role:      entity.ChatRole(c.Role),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatMapper) ToModel(c *entity.ChatMessage) *model.ChatMessage {
	if c == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:        c.Id,
		UserId:    c.UserId,
		Role:      string(c.Role),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatMapper) ToEntities(messages []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(messages))
	for i, c := range messages {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
