package models

// ProjectApplication links a developer to a project they want to work on.
// Pending is the only state that can transition; Approved and Rejected are
// terminal. At most one non-rejected application may exist per
// (project, developer) pair, enforced in the insert transaction.
type ProjectApplication struct {
	BaseModel
	ProjectID   string            `gorm:"not null;index:idx_applications_project_developer"`
	DeveloperID string            `gorm:"not null;index:idx_applications_project_developer"`
	CoverLetter string            `gorm:"type:text"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'Pending'"`

	// Relations
	Project   *Project `gorm:"foreignKey:ProjectID"`
	Developer *User    `gorm:"foreignKey:DeveloperID;constraint:OnDelete:CASCADE"`
}
