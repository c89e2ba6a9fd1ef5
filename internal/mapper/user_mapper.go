package mapper

import (
	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                    u.Id,
		Email:                 u.Email,
		PasswordHash:          u.PasswordHash,
		Name:                  u.Name,
		AvatarURL:             u.AvatarURL,
		SubscriptionPlan:      u.SubscriptionPlan,
		SubscriptionExpiresAt: u.SubscriptionExpiresAt,
		Role:                  entity.UserRole(u.Role),
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                    u.Id,
		Email:                 u.Email,
		PasswordHash:          u.PasswordHash,
		Name:                  u.Name,
		AvatarURL:             u.AvatarURL,
		SubscriptionPlan:      u.SubscriptionPlan,
		SubscriptionExpiresAt: u.SubscriptionExpiresAt,
		Role:                  string(u.Role),
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) ResetTokenToEntity(t *model.PasswordResetToken) *entity.PasswordResetToken {
	if t == nil {
		return nil
	}
	return &entity.PasswordResetToken{
		Token:     t.Token,
		UserId:    t.UserId,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}

func (m *UserMapper) ResetTokenToModel(t *entity.PasswordResetToken) *model.PasswordResetToken {
	if t == nil {
		return nil
	}
	return &model.PasswordResetToken{
		Token:     t.Token,
		UserId:    t.UserId,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}
