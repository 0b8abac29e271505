package dto

import "time"

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Phone           string `json:"phone" validate:"omitempty,min=10,max=20"`
	Age             int    `json:"age" validate:"required,gte=1,lte=150"`
}

type GoogleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

type CompleteProfileRequest struct {
	Age   int    `json:"age" validate:"required,gte=1,lte=150"`
	Phone string `json:"phone" validate:"omitempty,min=10,max=20"`
}

// Response DTOs

type UserResponse struct {
	ID                        string `json:"id"`
	Email                     string `json:"email"`
	DisplayName               string `json:"display_name"`
	Role                      string `json:"role"`
	AuthProvider              string `json:"auth_provider"`
	RequiresProfileCompletion bool   `json:"requires_profile_completion"`
}

type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	User      UserResponse `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
}
