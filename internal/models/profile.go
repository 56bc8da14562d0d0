package models

import "strings"

// Profile is the 1:1 role record attached to every User. It is created in
// the same transaction as the User, before any role-dependent logic runs.
type Profile struct {
	BaseModel
	UserID string   `gorm:"uniqueIndex;not null"`
	Role   UserRole `gorm:"type:varchar(20);not null;default:'Client'"`

	// Developer specific
	Skills     string `gorm:"type:text"` // comma separated
	Experience string `gorm:"type:text"`
	Portfolio  string
	GithubLink string
	IsApproved bool `gorm:"default:false"` // admin approval for developers

	// Common
	Phone string

	// Relations
	User *User `gorm:"foreignKey:UserID"`
}

// GetSkills splits the comma-separated skills column.
func (p *Profile) GetSkills() []string {
	if strings.TrimSpace(p.Skills) == "" {
		return nil
	}
	parts := strings.Split(p.Skills, ",")
	skills := make([]string, 0, len(parts))
	for _, s := range parts {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// SetSkills stores skills as a comma-separated string.
func (p *Profile) SetSkills(skills []string) {
	p.Skills = strings.Join(skills, ", ")
}
