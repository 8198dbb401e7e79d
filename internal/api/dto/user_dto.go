package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/procurement-service/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AuthResponse carries the issued bearer token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UserResponse is the embedded user summary. Login and password hash are
// never part of it.
type UserResponse struct {
	ID   uuid.UUID   `json:"id"`
	Name string      `json:"name"`
	Role domain.Role `json:"role"`
}

// UserSummary maps a domain user to its public summary.
func UserSummary(user *domain.User) UserResponse {
	return UserResponse{
		ID:   user.ID,
		Name: user.Name,
		Role: user.Role,
	}
}
