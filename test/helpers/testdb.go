package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"codelance_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestDB wraps the gorm handle used for fixtures and cleanup.
type TestDB struct {
	db *gorm.DB
}

// Gorm returns the underlying handle for direct fixture writes.
func (t *TestDB) Gorm() *gorm.DB {
	return t.db
}

// CreateUserWithProfile inserts a user plus profile directly, bypassing
// the registration endpoint so tests can mint Admin accounts and
// pre-approved developers.
func CreateUserWithProfile(t *testing.T, db *gorm.DB, username, password string, role models.UserRole, approved bool) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s_%d@test.local", username, time.Now().UnixNano()),
		PasswordHash: string(hashed),
	}
	require.NoError(t, db.Create(user).Error)

	profile := &models.Profile{
		UserID:     user.ID,
		Role:       role,
		IsApproved: approved,
	}
	require.NoError(t, db.Create(profile).Error)

	user.Profile = profile
	return user
}

// LoginUser logs in through the API and returns the access token.
func LoginUser(t *testing.T, ts *TestServer, username, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+body)

	var loginResponse struct {
		Access string `json:"access"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Access)

	return loginResponse.Access
}

// CreateAndLoginClient seeds a client account and returns its token.
func CreateAndLoginClient(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()
	username := fmt.Sprintf("client_%d", time.Now().UnixNano())
	user := CreateUserWithProfile(t, ts.DB.Gorm(), username, "password123", models.UserRoleClient, false)
	return LoginUser(t, ts, username, "password123"), user
}

// CreateAndLoginDeveloper seeds an approved developer and returns its token.
func CreateAndLoginDeveloper(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()
	username := fmt.Sprintf("dev_%d", time.Now().UnixNano())
	user := CreateUserWithProfile(t, ts.DB.Gorm(), username, "password123", models.UserRoleDeveloper, true)
	return LoginUser(t, ts, username, "password123"), user
}

// CreateAndLoginAdmin seeds an admin account and returns its token.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()
	username := fmt.Sprintf("admin_%d", time.Now().UnixNano())
	user := CreateUserWithProfile(t, ts.DB.Gorm(), username, "password123", models.UserRoleAdmin, true)
	return LoginUser(t, ts, username, "password123"), user
}
