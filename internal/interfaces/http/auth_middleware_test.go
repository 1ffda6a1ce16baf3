package http_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganadoboy/ganadoboy-api/pkg/jwt"
)

func TestAuthMiddleware_SinToken(t *testing.T) {
	s := newTestServer(t)
	resp, env := s.do(t, http.MethodGet, "/api/bovinos", "", nil)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "MISSING_TOKEN", env.Code)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	s := newTestServer(t)
	req, _ := http.NewRequest(http.MethodGet, "/api/bovinos", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, env := s.send(t, req, "")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_ACCESS_TOKEN", env.Code)
}

func TestAuthMiddleware_TokenBasura(t *testing.T) {
	s := newTestServer(t)
	resp, env := s.do(t, http.MethodGet, "/api/auth/me", "no-es-un-jwt", nil)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_ACCESS_TOKEN", env.Code)
}

func TestAuthMiddleware_RefreshNoSirveComoAccess(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "ana@finca.co")
	refresh, err := s.issuer.IssueRefresh(jwt.Payload{UserID: 1, Email: "ana@finca.co", Nombre: "Ana"})
	require.NoError(t, err)

	resp, _ := s.do(t, http.MethodGet, "/api/auth/me", refresh, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ana@finca.co")

	resp, env := s.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, env.Error)
	assert.Contains(t, string(env.Data), `"email":"ana@finca.co"`)
}
