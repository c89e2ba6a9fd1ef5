package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AIRequest struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProjectId    *uuid.UUID `gorm:"type:uuid;index"`
	Type         string     `gorm:"type:varchar(50);not null;index"`
	InputData    datatypes.JSONMap
	OutputData   datatypes.JSONMap
	ModelUsed    *string `gorm:"type:varchar(255)"`
	TokensUsed   int     `gorm:"default:0"`
	Cost         float64 `gorm:"default:0"`
	Status       string  `gorm:"type:varchar(20);not null;default:'pending'"`
	ErrorMessage *string `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (AIRequest) TableName() string {
	return "ai_requests"
}
