package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email                 string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash          string    `gorm:"type:varchar(255);not null"`
	Name                  string    `gorm:"type:varchar(255);not null"`
	AvatarURL             *string   `gorm:"type:text"`
	SubscriptionPlan      string    `gorm:"type:varchar(50);not null;default:'free'"`
	SubscriptionExpiresAt *time.Time
	Role                  string    `gorm:"type:varchar(50);not null;default:'user'"`
	CreatedAt             time.Time `gorm:"autoCreateTime"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type PasswordResetToken struct {
	Token     string    `gorm:"type:varchar(255);primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}
