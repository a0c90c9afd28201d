package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ismavld/esport-tournament/internal/dto"
	"github.com/ismavld/esport-tournament/internal/models"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	env := setupHandlerTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "alice@example.com",
		"username": "alice",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	require.Equal(t, "alice", response.User.Username)
	require.Equal(t, models.RolePlayer, response.User.Role)
}

func TestAuthHandler_RegisterInvalidBody(t *testing.T) {
	env := setupHandlerTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "not-an-email",
		"username": "alice",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupHandlerTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "alice@example.com",
		"username": "alice",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)

	w = env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
