package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tmaeda/studycards-api/internal/dto"
)

func TestAuthHandler_Register(t *testing.T) {
	env := setupTestEnv(t)

	user := env.registerUser(t, "Alice", "alice@example.com")
	require.Equal(t, "Alice", user.Name)
	require.Equal(t, "alice@example.com", user.Email)
	require.NotEmpty(t, user.ID)
	require.Zero(t, user.TotalCollections)
	require.Zero(t, user.TotalSections)
	require.Zero(t, user.TotalFlashcards)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)

	first := env.registerUser(t, "Alice", "alice@example.com")

	w := env.request(t, "POST", "/api/users/newUser", map[string]string{
		"name":     "Impostor",
		"email":    "alice@example.com",
		"password": "different",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// The first account is untouched.
	stored := env.fetchUser(t, first.ID)
	require.Equal(t, "Alice", stored.Name)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, "POST", "/api/users/newUser", map[string]string{
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)

	registered := env.registerUser(t, "Alice", "alice@example.com")

	w := env.request(t, "POST", "/api/users/login", map[string]string{
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	require.Equal(t, registered.ID, user.ID)

	// No hash in the outward representation.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.NotContains(t, raw, "passwordHash")
	require.NotContains(t, raw, "password")
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupTestEnv(t)

	env.registerUser(t, "Alice", "alice@example.com")

	w := env.request(t, "POST", "/api/users/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_UnknownEmail(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, "POST", "/api/users/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_EditUser(t *testing.T) {
	env := setupTestEnv(t)

	registered := env.registerUser(t, "Alice", "alice@example.com")

	w := env.request(t, "PUT", "/api/users/editUser", map[string]string{
		"userId":   registered.ID,
		"email":    "alice@example.com",
		"password": "supersecret",
		"newName":  "Alice B.",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	require.Equal(t, "Alice B.", user.Name)
	// Unchanged fields stay put.
	require.Equal(t, "alice@example.com", user.Email)
}

func TestAuthHandler_EditUser_NewPassword(t *testing.T) {
	env := setupTestEnv(t)

	registered := env.registerUser(t, "Alice", "alice@example.com")

	w := env.request(t, "PUT", "/api/users/editUser", map[string]string{
		"userId":      registered.ID,
		"email":       "alice@example.com",
		"password":    "supersecret",
		"newPassword": "evenmoresecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, "POST", "/api/users/login", map[string]string{
		"email":    "alice@example.com",
		"password": "evenmoresecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, "POST", "/api/users/login", map[string]string{
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_EditUser_WrongPassword(t *testing.T) {
	env := setupTestEnv(t)

	registered := env.registerUser(t, "Alice", "alice@example.com")

	w := env.request(t, "PUT", "/api/users/editUser", map[string]string{
		"userId":   registered.ID,
		"email":    "alice@example.com",
		"password": "wrong",
		"newName":  "Mallory",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	stored := env.fetchUser(t, registered.ID)
	require.Equal(t, "Alice", stored.Name)
}

func TestAuthHandler_EditUser_UnknownUser(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, "PUT", "/api/users/editUser", map[string]string{
		"userId":   "missing",
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}
