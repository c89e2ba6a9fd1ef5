package model

import (
	"time"

	"github.com/google/uuid"
)

type MarketingIdea struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Topic     string    `gorm:"type:varchar(255);not null"`
	Channel   string    `gorm:"type:varchar(100);not null"`
	Idea      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (MarketingIdea) TableName() string {
	return "marketing_ideas"
}
