package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ganadoboy/ganadoboy-api/internal/application/auth"
	"github.com/ganadoboy/ganadoboy-api/internal/application/bovino"
	"github.com/ganadoboy/ganadoboy-api/internal/application/marketplace"
	"github.com/ganadoboy/ganadoboy-api/internal/application/ubicacion"
	"github.com/ganadoboy/ganadoboy-api/internal/infrastructure/events"
	"github.com/ganadoboy/ganadoboy-api/internal/infrastructure/memory"
	"github.com/ganadoboy/ganadoboy-api/internal/infrastructure/pdf"
	"github.com/ganadoboy/ganadoboy-api/internal/infrastructure/storage"
	apphttp "github.com/ganadoboy/ganadoboy-api/internal/interfaces/http"
	"github.com/ganadoboy/ganadoboy-api/pkg/jwt"
	"github.com/ganadoboy/ganadoboy-api/pkg/logger"
)

type testServer struct {
	app    *fiber.App
	issuer *jwt.Issuer
	store  *memory.Store
}

// envelope sobre genérico de respuesta.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Details []struct {
		Campo   string `json:"campo"`
		Mensaje string `json:"mensaje"`
	} `json:"details"`
}

// newTestServer arma la API completa sobre el store en memoria y disco temporal.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	issuer, err := jwt.NewIssuer(jwt.Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		Issuer:        "ganadoboy-test",
	})
	require.NoError(t, err)

	photos, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	store := memory.NewStore()
	log := logger.Nop()
	authUC := auth.NewAuthUseCase(store.Usuarios(), issuer)
	bovinoUC := bovino.NewBovinoUseCase(bovino.Deps{
		Bovinos:       store.Bovinos(),
		Publicaciones: store.Publicaciones(),
		Usuarios:      store.Usuarios(),
		Tx:            store.TxRunner(),
		Photos:        photos,
		Ficha:         pdf.NewFichaGenerator(),
		NewKey:        storage.NewKey,
		Log:           log,
	})
	mkUC := marketplace.NewMarketplaceUseCase(store.Publicaciones(), store.Bovinos(), store.TxRunner(), events.NewNoop(zerolog.Nop()), log)

	limits := apphttp.UploadLimits{MaxFiles: 5, MaxFileBytes: 5 * 1024 * 1024}
	app := apphttp.NewApp(log, limits)
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        authUC,
		BovinoUC:      bovinoUC,
		MarketplaceUC: mkUC,
		UbicacionUC:   ubicacion.NewUbicacionUseCase(store.Ubicaciones()),
		Photos:        photos,
		Limits:        limits,
		Log:           log,
	})
	return &testServer{app: app, issuer: issuer, store: store}
}

// do lanza la petición y decodifica el sobre.
func (s *testServer) do(t *testing.T, method, path, token string, body any) (*http.Response, envelope) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return s.send(t, req, token)
}

func (s *testServer) send(t *testing.T, req *http.Request, token string) (*http.Response, envelope) {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

// register crea un usuario y devuelve su access token.
func (s *testServer) register(t *testing.T, email string) string {
	t.Helper()
	resp, env := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"nombre":    "Ana",
		"apellidos": "Rojas",
		"email":     email,
		"password":  "Ganado2024",
		"telefono":  "3101234567",
		"municipio": "Paipa",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)
	var data struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.AccessToken
}

func (s *testServer) createBovino(t *testing.T, token string, body map[string]any) int64 {
	t.Helper()
	resp, env := s.do(t, http.MethodPost, "/api/bovinos", token, body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)
	var data struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.ID
}
