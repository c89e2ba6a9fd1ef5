package model

import (
	"time"

	"github.com/google/uuid"
)

type UsageLimit struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	PeriodStart   time.Time `gorm:"not null"`
	PeriodEnd     time.Time `gorm:"not null"`
	RequestsUsed  int       `gorm:"default:0"`
	RequestsLimit int       `gorm:"default:0"`
	TokensUsed    int       `gorm:"default:0"`
	TokensLimit   int       `gorm:"default:0"`
}

func (UsageLimit) TableName() string {
	return "usage_limits"
}
