package dto

import "codelance_backend/internal/models"

// RegisterRequest creates a User plus its default Profile. Only Client and
// Developer are selectable; Admin is granted out-of-band.
type RegisterRequest struct {
	Username  string          `json:"username" binding:"required,min=3,max=150"`
	Password  string          `json:"password" binding:"required,min=8"`
	Email     string          `json:"email" binding:"required,email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Role      models.UserRole `json:"role"` // defaults to Client
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh" binding:"required"`
}

// AuthResponse carries the token pair, mirroring the access/refresh
// contract of the identity boundary.
type AuthResponse struct {
	AccessToken  string       `json:"access"`
	RefreshToken string       `json:"refresh"`
	User         UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}
