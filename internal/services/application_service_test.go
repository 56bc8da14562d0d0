package services

import (
	"testing"
	"time"

	"codelance_backend/internal/models"
	"codelance_backend/internal/policy"
	"codelance_backend/internal/services/dto"
	"codelance_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicationServiceForTest() (*ApplicationServiceImpl, *stubApplicationRepo, *stubProjectRepo, *stubTaskRepo) {
	applicationRepo := newStubApplicationRepo()
	projectRepo := newStubProjectRepo()
	taskRepo := newStubTaskRepo()
	svc := NewApplicationService(applicationRepo, projectRepo, taskRepo).(*ApplicationServiceImpl)
	return svc, applicationRepo, projectRepo, taskRepo
}

func adminActor() policy.Actor {
	return policy.Actor{UserID: "admin-1", Role: models.UserRoleAdmin}
}

func approvedDeveloper() policy.Actor {
	return policy.Actor{UserID: "dev-1", Role: models.UserRoleDeveloper, IsApproved: true}
}

func TestApplyRejectsUnapprovedDeveloper(t *testing.T) {
	svc, _, _, _ := newApplicationServiceForTest()

	actor := policy.Actor{UserID: "dev-1", Role: models.UserRoleDeveloper, IsApproved: false}
	_, err := svc.Apply(nil, actor, &dto.CreateApplicationRequest{ProjectID: "project-1"})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrOnlyDevelopersApply))
}

func TestApplyRejectsNonDeveloper(t *testing.T) {
	svc, _, _, _ := newApplicationServiceForTest()

	actor := policy.Actor{UserID: "client-1", Role: models.UserRoleClient}
	_, err := svc.Apply(nil, actor, &dto.CreateApplicationRequest{ProjectID: "project-1"})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrOnlyDevelopersApply))
}

func TestApplyDuplicateBlocked(t *testing.T) {
	svc, applicationRepo, _, _ := newApplicationServiceForTest()

	_ = applicationRepo.Create(nil, &models.ProjectApplication{
		ProjectID:   "project-1",
		DeveloperID: "dev-1",
		Status:      models.ApplicationStatusPending,
	})

	err := svc.apply(nil, &models.ProjectApplication{
		ProjectID:   "project-1",
		DeveloperID: "dev-1",
		Status:      models.ApplicationStatusPending,
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrDuplicateApplication))
	assert.Len(t, applicationRepo.applications, 1)
}

func TestApplyAllowedAfterRejection(t *testing.T) {
	svc, applicationRepo, _, _ := newApplicationServiceForTest()

	_ = applicationRepo.Create(nil, &models.ProjectApplication{
		ProjectID:   "project-1",
		DeveloperID: "dev-1",
		Status:      models.ApplicationStatusRejected,
	})

	err := svc.apply(nil, &models.ProjectApplication{
		ProjectID:   "project-1",
		DeveloperID: "dev-1",
		Status:      models.ApplicationStatusPending,
	})

	require.NoError(t, err)
	assert.Len(t, applicationRepo.applications, 2)
}

func TestApproveSpawnsTask(t *testing.T) {
	svc, applicationRepo, projectRepo, taskRepo := newApplicationServiceForTest()

	budget := 500.0
	deadline := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	project := &models.Project{
		ClientID:    "client-1",
		Title:       "Landing Page",
		Description: "Marketing site",
		ServiceType: "Web",
		Budget:      &budget,
		Deadline:    &deadline,
		Status:      models.ProjectStatusPending,
	}
	require.NoError(t, projectRepo.Create(nil, project))

	application := &models.ProjectApplication{
		ProjectID:   project.ID,
		DeveloperID: "dev-1",
		Status:      models.ApplicationStatusPending,
	}
	require.NoError(t, applicationRepo.Create(nil, application))

	approved, err := svc.approve(nil, application.ID)
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusApproved, approved.Status)
	require.Len(t, taskRepo.tasks, 1)
	for _, task := range taskRepo.tasks {
		assert.Equal(t, project.ID, task.ProjectID)
		assert.Equal(t, "Development: Landing Page", task.Title)
		assert.Equal(t, 500.0, task.Budget)
		assert.Equal(t, deadline, task.Deadline)
		assert.Equal(t, models.TaskStatusAssigned, task.Status)
		require.NotNil(t, task.AssignedTo)
		assert.Equal(t, "dev-1", *task.AssignedTo)
	}
}

func TestApproveFallbacksForMissingBudgetAndDeadline(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	project := &models.Project{
		BaseModel: models.BaseModel{ID: "project-1", CreatedAt: createdAt},
		ClientID:  "client-1",
		Title:     "Logo",
	}

	task := buildTaskForApproval(project, "dev-1")

	assert.Equal(t, 0.0, task.Budget)
	assert.Equal(t, createdAt, task.Deadline)
}

func TestApproveRequiresAdmin(t *testing.T) {
	svc, _, _, _ := newApplicationServiceForTest()

	_, err := svc.Approve(nil, approvedDeveloper(), "application-1")

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInsufficientPermissions))
}

func TestApproveProcessedApplicationFails(t *testing.T) {
	svc, applicationRepo, _, taskRepo := newApplicationServiceForTest()

	application := &models.ProjectApplication{
		ProjectID:   "project-1",
		DeveloperID: "dev-1",
		Status:      models.ApplicationStatusApproved,
	}
	require.NoError(t, applicationRepo.Create(nil, application))

	_, err := svc.Approve(nil, adminActor(), application.ID)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrApplicationProcessed))
	assert.Empty(t, taskRepo.tasks, "a second task must not be spawned")
}

func TestApproveRecheckedUnderTransaction(t *testing.T) {
	svc, applicationRepo, _, taskRepo := newApplicationServiceForTest()

	// The application was approved between the pending pre-check and the
	// transaction body, as a racing approval would leave it.
	application := &models.ProjectApplication{
		ProjectID:   "project-1",
		DeveloperID: "dev-1",
		Status:      models.ApplicationStatusApproved,
	}
	require.NoError(t, applicationRepo.Create(nil, application))

	_, err := svc.approve(nil, application.ID)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrApplicationProcessed))
	assert.Empty(t, taskRepo.tasks, "a second task must not be spawned")
}

func TestRejectProcessedApplicationFails(t *testing.T) {
	svc, applicationRepo, _, _ := newApplicationServiceForTest()

	application := &models.ProjectApplication{
		ProjectID:   "project-1",
		DeveloperID: "dev-1",
		Status:      models.ApplicationStatusRejected,
	}
	require.NoError(t, applicationRepo.Create(nil, application))

	_, err := svc.Reject(nil, adminActor(), application.ID)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrApplicationProcessed))
}

func TestRejectPendingApplication(t *testing.T) {
	svc, applicationRepo, _, _ := newApplicationServiceForTest()

	application := &models.ProjectApplication{
		ProjectID:   "project-1",
		DeveloperID: "dev-1",
		Status:      models.ApplicationStatusPending,
	}
	require.NoError(t, applicationRepo.Create(nil, application))

	resp, err := svc.Reject(nil, adminActor(), application.ID)

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, resp.Status)
}

func TestListApplicationsScopedByRole(t *testing.T) {
	svc, applicationRepo, _, _ := newApplicationServiceForTest()

	_ = applicationRepo.Create(nil, &models.ProjectApplication{ProjectID: "project-1", DeveloperID: "dev-1"})
	_ = applicationRepo.Create(nil, &models.ProjectApplication{ProjectID: "project-2", DeveloperID: "dev-2"})

	all, err := svc.List(nil, adminActor(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.List(nil, approvedDeveloper(), "")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "dev-1", own[0].DeveloperID)

	clientView, err := svc.List(nil, policy.Actor{UserID: "client-1", Role: models.UserRoleClient}, "")
	require.NoError(t, err)
	assert.Empty(t, clientView)
}
