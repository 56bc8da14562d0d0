package policy

import (
	"testing"

	"codelance_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanApplyRequiresApproval(t *testing.T) {
	unapproved := Actor{UserID: "dev-1", Role: models.UserRoleDeveloper, IsApproved: false}
	approved := Actor{UserID: "dev-1", Role: models.UserRoleDeveloper, IsApproved: true}
	client := Actor{UserID: "client-1", Role: models.UserRoleClient}

	assert.False(t, unapproved.CanApply())
	assert.True(t, approved.CanApply())
	assert.False(t, client.CanApply())
}

func TestMutationPermissionsByRole(t *testing.T) {
	admin := Actor{UserID: "a", Role: models.UserRoleAdmin}
	client := Actor{UserID: "c", Role: models.UserRoleClient}
	developer := Actor{UserID: "d", Role: models.UserRoleDeveloper, IsApproved: true}

	assert.True(t, client.CanCreateProject())
	assert.False(t, admin.CanCreateProject())
	assert.False(t, developer.CanCreateProject())

	assert.True(t, admin.CanCreateTask())
	assert.True(t, admin.CanModerateApplications())
	assert.True(t, admin.CanManageUsers())
	assert.True(t, admin.CanViewStats())

	assert.False(t, client.CanModerateApplications())
	assert.False(t, developer.CanManageUsers())
}

func TestCanUpdateProjectOwnership(t *testing.T) {
	admin := Actor{UserID: "a", Role: models.UserRoleAdmin}
	owner := Actor{UserID: "c", Role: models.UserRoleClient}
	other := Actor{UserID: "x", Role: models.UserRoleClient}

	project := &models.Project{ClientID: "c"}

	assert.True(t, admin.CanUpdateProject(project))
	assert.True(t, owner.CanUpdateProject(project))
	assert.False(t, other.CanUpdateProject(project))

	assert.True(t, admin.CanSetProjectStatus())
	assert.False(t, owner.CanSetProjectStatus())
}

func TestCanUpdateTaskAssignment(t *testing.T) {
	admin := Actor{UserID: "a", Role: models.UserRoleAdmin}
	assignee := Actor{UserID: "d", Role: models.UserRoleDeveloper, IsApproved: true}
	other := Actor{UserID: "x", Role: models.UserRoleDeveloper, IsApproved: true}

	dev := "d"
	assigned := &models.Task{AssignedTo: &dev}
	unassigned := &models.Task{}

	assert.True(t, admin.CanUpdateTask(assigned))
	assert.True(t, assignee.CanUpdateTask(assigned))
	assert.False(t, other.CanUpdateTask(assigned))
	assert.False(t, assignee.CanUpdateTask(unassigned))
}

func TestCanMarkMessageRead(t *testing.T) {
	receiver := Actor{UserID: "bob", Role: models.UserRoleClient}
	sender := Actor{UserID: "alice", Role: models.UserRoleClient}

	message := &models.Message{SenderID: "alice", ReceiverID: "bob"}

	assert.True(t, receiver.CanMarkMessageRead(message))
	assert.False(t, sender.CanMarkMessageRead(message))
}
