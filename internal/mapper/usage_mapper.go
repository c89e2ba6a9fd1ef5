package mapper

import (
	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/model"
)

type UsageMapper struct{}

func NewUsageMapper() *UsageMapper {
	return &UsageMapper{}
}

func (m *UsageMapper) ToEntity(u *model.UsageLimit) *entity.UsageLimit {
	if u == nil {
		return nil
	}
	return &entity.UsageLimit{
		Id:            u.Id,
		UserId:        u.UserId,
		PeriodStart:   u.PeriodStart,
		PeriodEnd:     u.PeriodEnd,
		RequestsUsed:  u.RequestsUsed,
		RequestsLimit: u.RequestsLimit,
		TokensUsed:    u.TokensUsed,
		TokensLimit:   u.TokensLimit,
	}
}

func (m *UsageMapper) ToModel(u *entity.UsageLimit) *model.UsageLimit {
	if u == nil {
		return nil
	}
	return &model.UsageLimit{
		Id:            u.Id,
		UserId:        u.UserId,
		PeriodStart:   u.PeriodStart,
		PeriodEnd:     u.PeriodEnd,
		RequestsUsed:  u.RequestsUsed,
		RequestsLimit: u.RequestsLimit,
		TokensUsed:    u.TokensUsed,
		TokensLimit:   u.TokensLimit,
	}
}
