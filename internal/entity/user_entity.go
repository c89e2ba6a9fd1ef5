package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	Id                    uuid.UUID
	Email                 string
	PasswordHash          string
	Name                  string
	AvatarURL             *string
	SubscriptionPlan      string
	SubscriptionExpiresAt *time.Time
	Role                  UserRole
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type PasswordResetToken struct {
	Token     string
	UserId    uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Session binds an opaque token to a user id. Sessions live in the in-memory
// session repository only and are never written to the database.
type Session struct {
	Token     string
	UserId    uuid.UUID
	CreatedAt time.Time
}
