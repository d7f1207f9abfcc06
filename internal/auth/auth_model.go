package auth

import (
	"github.com/DhavalSuthar-24/baskettime/internal/user"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"min=2" example:"ann"`
	Password string `json:"password" validate:"min=6" example:"secret1"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"ann"`
	Password string `json:"password" validate:"required" example:"secret1"`
}

// UserResponse wraps the account object returned by every auth endpoint.
type UserResponse struct {
	User user.Response `json:"user"`
}
