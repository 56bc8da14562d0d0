package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"codelance_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProjectApplicationWorkflow walks the happy path end to end: a
// client posts a project, an approved developer applies, the admin
// approves, and a task appears on the developer's board.
func TestProjectApplicationWorkflow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	clientToken, _ := helpers.CreateAndLoginClient(t, ts)
	devToken, _ := helpers.CreateAndLoginDeveloper(t, ts)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)

	// Client posts a project.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/projects", clientToken, map[string]interface{}{
		"title":        "Company Website",
		"description":  "Five-page marketing site",
		"service_type": "Web",
		"budget":       800,
		"deadline":     "2026-12-01",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var project struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &project))

	// Developer applies.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications", devToken, map[string]interface{}{
		"project":      project.ID,
		"cover_letter": "I have built several of these.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var application struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &application))
	assert.Equal(t, "Pending", application.Status)

	// A second application for the same project is a duplicate.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications", devToken, map[string]interface{}{
		"project": project.ID,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	// Admin approves.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+application.ID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// The developer now sees the spawned task.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/tasks", devToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var tasks []struct {
		Title   string  `json:"title"`
		Project string  `json:"project"`
		Budget  float64 `json:"budget"`
		Status  string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Development: Company Website", tasks[0].Title)
	assert.Equal(t, project.ID, tasks[0].Project)
	assert.Equal(t, 800.0, tasks[0].Budget)
	assert.Equal(t, "Assigned", tasks[0].Status)

	// Approving again must fail and must not spawn a second task.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+application.ID+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/tasks", devToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &tasks))
	assert.Len(t, tasks, 1)
}

func TestRoleGatesOverHTTP(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	clientToken, _ := helpers.CreateAndLoginClient(t, ts)
	devToken, _ := helpers.CreateAndLoginDeveloper(t, ts)

	// A developer cannot open projects.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/projects", devToken, map[string]interface{}{
		"title":        "Nope",
		"description":  "x",
		"service_type": "Web",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	// A client cannot see the admin user collection.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/users", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	// A client cannot see the admin stats.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/stats", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	// Unauthenticated requests bounce at the middleware.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestAdminDeletesClientWithProjects covers the cascade from the user
// row: removing a client account also removes the projects it owns
// instead of tripping the foreign key.
func TestAdminDeletesClientWithProjects(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	clientToken, clientUser := helpers.CreateAndLoginClient(t, ts)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/projects", clientToken, map[string]interface{}{
		"title":        "Web Shop",
		"description":  "Online store",
		"service_type": "Web",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/users/"+clientUser.Profile.ID, adminToken, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode, body)

	// The projects went with the account.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/projects", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var projects []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &projects))
	assert.Empty(t, projects)

	// And the deleted client cannot log in again.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": clientUser.Username,
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestMessagingOverHTTP(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	clientToken, clientUser := helpers.CreateAndLoginClient(t, ts)
	devToken, devUser := helpers.CreateAndLoginDeveloper(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/messages", clientToken, map[string]interface{}{
		"receiver": devUser.ID,
		"content":  "When can you start?",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var message struct {
		ID     string `json:"id"`
		Sender string `json:"sender"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &message))
	assert.Equal(t, clientUser.ID, message.Sender)

	// The developer's conversations view shows one unread thread.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/messages/conversations", devToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var conversations []struct {
		UserID string `json:"user_id"`
		IsRead bool   `json:"is_read"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &conversations))
	require.Len(t, conversations, 1)
	assert.Equal(t, clientUser.ID, conversations[0].UserID)
	assert.False(t, conversations[0].IsRead)

	// Only the receiver may mark it read.
	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/messages/"+message.ID, clientToken, map[string]interface{}{
		"is_read": true,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/messages/"+message.ID, devToken, map[string]interface{}{
		"is_read": true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
}
