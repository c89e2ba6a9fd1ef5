package dto

// UpdateProfileRequest carries partial updates: nil fields are left
// untouched.
type UpdateProfileRequest struct {
	Name             *string `json:"name"`
	Email            *string `json:"email" validate:"omitempty,email"`
	AvatarURL        *string `json:"avatarUrl"`
	SubscriptionPlan *string `json:"subscriptionPlan"`
}
