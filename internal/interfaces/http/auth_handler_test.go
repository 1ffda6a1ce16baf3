package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganadoboy/ganadoboy-api/internal/domain"
)

func TestRegister_Validacion(t *testing.T) {
	s := newTestServer(t)
	resp, env := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"nombre":    "A",
		"apellidos": "Rojas",
		"email":     "no-es-email",
		"password":  "sinmayuscula1",
		"telefono":  "123",
		"municipio": "Paipa",
	})

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Validation Error", env.Error)
	campos := map[string]bool{}
	for _, d := range env.Details {
		campos[d.Campo] = true
	}
	assert.True(t, campos["nombre"])
	assert.True(t, campos["email"])
	assert.True(t, campos["password"])
	assert.True(t, campos["telefono"])
}

func TestRegister_EmailDuplicadoEs400(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "ana@finca.co")

	resp, env := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"nombre": "Ana", "apellidos": "Rojas", "email": "ana@finca.co",
		"password": "Ganado2024", "municipio": "Paipa",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, domain.ErrEmailAlreadyExists.Code, env.Code)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "ana@finca.co")

	resp, env := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "ana@finca.co", "password": "Otra2024",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestRefreshYLogout(t *testing.T) {
	s := newTestServer(t)
	_, env := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"nombre": "Ana", "apellidos": "Rojas", "email": "ana@finca.co",
		"password": "Ganado2024", "municipio": "Paipa",
	})
	var session struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))

	resp, env := s.do(t, http.MethodPost, "/api/auth/refresh", "", map[string]any{"refreshToken": session.RefreshToken})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, env.Error)
	var pair struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &pair))

	// El refresh anterior quedó reemplazado.
	resp, _ = s.do(t, http.MethodPost, "/api/auth/refresh", "", map[string]any{"refreshToken": session.RefreshToken})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/api/auth/logout", pair.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/api/auth/refresh", "", map[string]any{"refreshToken": pair.RefreshToken})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
