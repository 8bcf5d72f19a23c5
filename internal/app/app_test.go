package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NurM0hammad/FoxMind-AI/internal/app"
	"github.com/NurM0hammad/FoxMind-AI/internal/config"
)

// newTestConfig wires an app against a throwaway conversations directory
// and no upstream credential.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		AppPort:          5000,
		ConversationsDir: t.TempDir(),
		LogLevel:         "ERROR",
	}
}

func TestNewApp_WiresWithoutCredential(t *testing.T) {
	a, err := app.NewApp(context.Background(), newTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, ":5000", a.Server.Addr)
	assert.NotNil(t, a.Server.Handler)
	assert.Zero(t, a.Server.WriteTimeout, "write timeout must stay disabled for streaming")
}

func TestNewApp_ServesStatusUnconfigured(t *testing.T) {
	a, err := app.NewApp(context.Background(), newTestConfig(t))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	a.Server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"api_configured":false`)
}

func TestNewApp_ChatRejectedWithoutCredential(t *testing.T) {
	a, err := app.NewApp(context.Background(), newTestConfig(t))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	a.Server.Handler.ServeHTTP(rec, req)

	// An empty body fails decoding before the credential check.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewApp_HealthCheck(t *testing.T) {
	a, err := app.NewApp(context.Background(), newTestConfig(t))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	a.Server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
