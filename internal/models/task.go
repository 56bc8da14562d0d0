package models

import "time"

// Task is a unit of work under a project, assigned to at most one
// developer. The assignee reference is nulled when the user is deleted;
// the task itself is removed with its project.
type Task struct {
	BaseModel
	ProjectID   string  `gorm:"not null;index"`
	AssignedTo  *string `gorm:"index"`
	Title       string  `gorm:"size:200;not null"`
	Description string  `gorm:"type:text;not null"`
	Budget      float64 `gorm:"not null"` // payment amount for this task
	Deadline    time.Time
	Status      TaskStatus `gorm:"type:varchar(50);not null;default:'Assigned'"`

	// Submission
	SubmissionGitLink string
	SubmissionNotes   string `gorm:"type:text"`

	// Relations
	Project  *Project `gorm:"foreignKey:ProjectID"`
	Assignee *User    `gorm:"foreignKey:AssignedTo;constraint:OnDelete:SET NULL"`
}
