package dto

// Request DTOs

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=patient doctor admin"`
}

type SpecializationRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// Response DTOs

type AdminUserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
}
