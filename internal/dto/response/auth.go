package response

import (
	"time"

	"album-shop/internal/data/entity"
)

type RegisterResponse struct {
	Role entity.UserRole `json:"role"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	Username    string    `json:"username"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email,omitempty"`
	Role      entity.UserRole `json:"role,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// PublicUserResponse exposes only the fields any caller may see.
type PublicUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func UserToPublicResponse(user *entity.User) PublicUserResponse {
	return PublicUserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
	}
}
