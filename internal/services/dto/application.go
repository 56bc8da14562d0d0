package dto

import (
	"time"

	"codelance_backend/internal/models"
)

type CreateApplicationRequest struct {
	ProjectID   string `json:"project" binding:"required"`
	CoverLetter string `json:"cover_letter"`
}

type ApplicationResponse struct {
	ID            string                   `json:"id"`
	ProjectID     string                   `json:"project"`
	ProjectTitle  string                   `json:"project_title"`
	DeveloperID   string                   `json:"developer"`
	DeveloperName string                   `json:"developer_name"`
	CoverLetter   string                   `json:"cover_letter,omitempty"`
	Status        models.ApplicationStatus `json:"status"`
	CreatedAt     time.Time                `json:"created_at"`
}

func NewApplicationResponse(a *models.ProjectApplication) ApplicationResponse {
	resp := ApplicationResponse{
		ID:          a.ID,
		ProjectID:   a.ProjectID,
		DeveloperID: a.DeveloperID,
		CoverLetter: a.CoverLetter,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
	if a.Project != nil {
		resp.ProjectTitle = a.Project.Title
	}
	if a.Developer != nil {
		resp.DeveloperName = a.Developer.Username
	}
	return resp
}

func NewApplicationResponseList(applications []models.ProjectApplication) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(applications))
	for i := range applications {
		out = append(out, NewApplicationResponse(&applications[i]))
	}
	return out
}
