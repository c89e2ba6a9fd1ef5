package model

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId             uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanName           string    `gorm:"type:varchar(50);not null"`
	Status             string    `gorm:"type:varchar(20);not null;default:'active'"`
	CurrentPeriodStart time.Time `gorm:"not null"`
	CurrentPeriodEnd   time.Time `gorm:"not null"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
