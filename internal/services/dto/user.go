package dto

import (
	"time"

	"codelance_backend/internal/models"
)

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type ProfileResponse struct {
	ID         string          `json:"id"`
	User       UserResponse    `json:"user"`
	Role       models.UserRole `json:"role"`
	Skills     string          `json:"skills,omitempty"`
	Experience string          `json:"experience,omitempty"`
	Portfolio  string          `json:"portfolio,omitempty"`
	GithubLink string          `json:"github_link,omitempty"`
	IsApproved bool            `json:"is_approved"`
	Phone      string          `json:"phone,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// UpdateProfileRequest is the admin PATCH body for the users collection.
// Role changes and developer approval both go through here.
type UpdateProfileRequest struct {
	Role       *models.UserRole `json:"role" binding:"omitempty,oneof=Client Developer Admin"`
	IsApproved *bool            `json:"is_approved"`
	Skills     *string          `json:"skills"`
	Experience *string          `json:"experience"`
	Portfolio  *string          `json:"portfolio" binding:"omitempty,url"`
	GithubLink *string          `json:"github_link" binding:"omitempty,url"`
	Phone      *string          `json:"phone"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func NewProfileResponse(p *models.Profile) ProfileResponse {
	resp := ProfileResponse{
		ID:         p.ID,
		Role:       p.Role,
		Skills:     p.Skills,
		Experience: p.Experience,
		Portfolio:  p.Portfolio,
		GithubLink: p.GithubLink,
		IsApproved: p.IsApproved,
		Phone:      p.Phone,
		CreatedAt:  p.CreatedAt,
	}
	if p.User != nil {
		resp.User = NewUserResponse(p.User)
	}
	return resp
}
