package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserResponse is the sanitized user shape. The password hash never appears
// here, whatever the caller does with the struct.
type UserResponse struct {
	Id                    uuid.UUID  `json:"id"`
	Email                 string     `json:"email"`
	Name                  string     `json:"name"`
	AvatarURL             *string    `json:"avatarUrl,omitempty"`
	SubscriptionPlan      string     `json:"subscriptionPlan"`
	SubscriptionExpiresAt *time.Time `json:"subscriptionExpiresAt"`
	Role                  string     `json:"role"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

type UserEnvelope struct {
	User UserResponse `json:"user"`
}

// SessionUserResponse is the /auth/me shape: the user is null when no valid
// session is presented.
type SessionUserResponse struct {
	User *UserResponse `json:"user"`
}

type ForgotPasswordResponse struct {
	Success    bool       `json:"success"`
	ResetToken string     `json:"resetToken,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
