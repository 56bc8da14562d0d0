package dto

import (
	"time"

	"codelance_backend/internal/models"
)

type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required"`
	ServiceType string   `json:"service_type" binding:"required,max=100"`
	Budget      *float64 `json:"budget" binding:"omitempty,gt=0"`
	Deadline    *Date    `json:"deadline"`
}

// UpdateProjectRequest: owners edit fields; Status is applied only when
// the actor is an admin.
type UpdateProjectRequest struct {
	Title       *string               `json:"title" binding:"omitempty,max=200"`
	Description *string               `json:"description"`
	ServiceType *string               `json:"service_type" binding:"omitempty,max=100"`
	Budget      *float64              `json:"budget" binding:"omitempty,gt=0"`
	Deadline    *Date                 `json:"deadline"`
	Status      *models.ProjectStatus `json:"status"`
}

type ProjectResponse struct {
	ID          string               `json:"id"`
	ClientID    string               `json:"client"`
	ClientName  string               `json:"client_name"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	ServiceType string               `json:"service_type"`
	Budget      *float64             `json:"budget"`
	Deadline    *Date                `json:"deadline"`
	Status      models.ProjectStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

func NewProjectResponse(p *models.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID,
		ClientID:    p.ClientID,
		Title:       p.Title,
		Description: p.Description,
		ServiceType: p.ServiceType,
		Budget:      p.Budget,
		Deadline:    NewDate(p.Deadline),
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
	if p.Client != nil {
		resp.ClientName = p.Client.Username
	}
	return resp
}

func NewProjectResponseList(projects []models.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, NewProjectResponse(&projects[i]))
	}
	return out
}
