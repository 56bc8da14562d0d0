// Package policy centralizes access decisions. Handlers and services ask
// an Actor whether a mutation is permitted instead of repeating role
// comparisons per endpoint; read visibility is applied as scoped queries
// in the repositories, dispatched per role by the services.
package policy

import (
	"codelance_backend/internal/models"
)

// Actor is the authenticated identity making a request.
type Actor struct {
	UserID     string
	Role       models.UserRole
	IsApproved bool
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.UserRoleAdmin
}

func (a Actor) IsClient() bool {
	return a.Role == models.UserRoleClient
}

func (a Actor) IsDeveloper() bool {
	return a.Role == models.UserRoleDeveloper
}

// CanCreateProject: only clients open projects.
func (a Actor) CanCreateProject() bool {
	return a.IsClient()
}

// CanCreateTask: only the admin assigns tasks directly.
func (a Actor) CanCreateTask() bool {
	return a.IsAdmin()
}

// CanApply: the developer-only permission class carries the approval
// gate; an unapproved developer is treated as unauthorized here. Query
// visibility deliberately does not re-check IsApproved.
func (a Actor) CanApply() bool {
	return a.IsDeveloper() && a.IsApproved
}

// CanModerateApplications: approve/reject is admin-only.
func (a Actor) CanModerateApplications() bool {
	return a.IsAdmin()
}

// CanManageUsers: the profile collection (list, patch, delete) is
// admin-only; role promotion and developer approval go through it.
func (a Actor) CanManageUsers() bool {
	return a.IsAdmin()
}

// CanViewStats: the dashboard counters are admin-only.
func (a Actor) CanViewStats() bool {
	return a.IsAdmin()
}

// CanUpdateProject: the owning client edits fields; the admin may also
// move status between the enumerated values.
func (a Actor) CanUpdateProject(p *models.Project) bool {
	return a.IsAdmin() || (a.IsClient() && p.ClientID == a.UserID)
}

// CanSetProjectStatus: status writes are reserved to the admin/workflow.
func (a Actor) CanSetProjectStatus() bool {
	return a.IsAdmin()
}

// CanUpdateTask: admin edits anything; the assigned developer updates
// progress (status and submission fields).
func (a Actor) CanUpdateTask(t *models.Task) bool {
	if a.IsAdmin() {
		return true
	}
	return a.IsDeveloper() && t.AssignedTo != nil && *t.AssignedTo == a.UserID
}

// CanDeleteTask: admin-only.
func (a Actor) CanDeleteTask() bool {
	return a.IsAdmin()
}

// CanDeleteProject: the owner or the admin.
func (a Actor) CanDeleteProject(p *models.Project) bool {
	return a.IsAdmin() || (a.IsClient() && p.ClientID == a.UserID)
}

// CanMarkMessageRead: only the receiver flips the read flag; a message is
// always "read" from the sender's own perspective.
func (a Actor) CanMarkMessageRead(m *models.Message) bool {
	return m.ReceiverID == a.UserID
}
