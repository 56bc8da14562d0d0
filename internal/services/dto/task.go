package dto

import (
	"time"

	"codelance_backend/internal/models"
)

type CreateTaskRequest struct {
	ProjectID   string  `json:"project" binding:"required"`
	AssignedTo  *string `json:"assigned_to"`
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"required"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
	Deadline    Date    `json:"deadline" binding:"required"`
}

// UpdateTaskRequest: the admin may set any field; the assigned developer
// may only update Status and the submission fields.
type UpdateTaskRequest struct {
	Title             *string            `json:"title" binding:"omitempty,max=200"`
	Description       *string            `json:"description"`
	AssignedTo        *string            `json:"assigned_to"`
	Budget            *float64           `json:"budget" binding:"omitempty,gt=0"`
	Deadline          *Date              `json:"deadline"`
	Status            *models.TaskStatus `json:"status"`
	SubmissionGitLink *string            `json:"submission_git_link" binding:"omitempty,url"`
	SubmissionNotes   *string            `json:"submission_notes"`
}

type TaskResponse struct {
	ID                string            `json:"id"`
	ProjectID         string            `json:"project"`
	ProjectTitle      string            `json:"project_title"`
	AssignedTo        *string           `json:"assigned_to"`
	AssignedToName    string            `json:"assigned_to_name,omitempty"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	Budget            float64           `json:"budget"`
	Deadline          *Date             `json:"deadline"`
	Status            models.TaskStatus `json:"status"`
	SubmissionGitLink string            `json:"submission_git_link,omitempty"`
	SubmissionNotes   string            `json:"submission_notes,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
}

func NewTaskResponse(t *models.Task) TaskResponse {
	deadline := t.Deadline
	resp := TaskResponse{
		ID:                t.ID,
		ProjectID:         t.ProjectID,
		AssignedTo:        t.AssignedTo,
		Title:             t.Title,
		Description:       t.Description,
		Budget:            t.Budget,
		Deadline:          NewDate(&deadline),
		Status:            t.Status,
		SubmissionGitLink: t.SubmissionGitLink,
		SubmissionNotes:   t.SubmissionNotes,
		CreatedAt:         t.CreatedAt,
	}
	if t.Project != nil {
		resp.ProjectTitle = t.Project.Title
	}
	if t.Assignee != nil {
		resp.AssignedToName = t.Assignee.Username
	}
	return resp
}

func NewTaskResponseList(tasks []models.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}
