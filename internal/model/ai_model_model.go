package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AIModel struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider    string    `gorm:"type:varchar(100);not null"`
	ModelName   string    `gorm:"type:varchar(255);not null"`
	ApiKey      *string   `gorm:"type:text"`
	EndpointURL *string   `gorm:"type:text"`
	Parameters  datatypes.JSONMap
	IsActive    bool      `gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (AIModel) TableName() string {
	return "ai_models"
}
