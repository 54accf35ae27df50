package request

import "github.com/franlead/franlead-api/internal/domain/enum"

// CreateUserRequest represents the create user payload (superadmin only)
type CreateUserRequest struct {
	Email    string    `json:"email" binding:"required,email"`
	FullName string    `json:"full_name" binding:"required"`
	Password string    `json:"password" binding:"required,min=8"`
	Role     enum.Role `json:"role" binding:"required"`
}

// UpdateUserRequest represents the update user payload (superadmin only)
type UpdateUserRequest struct {
	FullName *string    `json:"full_name"`
	Role     *enum.Role `json:"role"`
	Password *string    `json:"password" binding:"omitempty,min=8"`
}
