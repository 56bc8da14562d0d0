package models

import "time"

// Project is a client's work request. Status is mutated by the admin or
// the application workflow only, never by the owning client.
type Project struct {
	BaseModel
	ClientID    string `gorm:"not null;index"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	ServiceType string `gorm:"size:100;not null"` // Logo, Web, App etc.
	Budget      *float64
	Deadline    *time.Time
	Status      ProjectStatus `gorm:"type:varchar(50);not null;default:'Pending'"`

	// Relations
	Client       *User                `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Tasks        []Task               `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Applications []ProjectApplication `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
