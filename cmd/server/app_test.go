package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/config"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 0, LogLevel: "error"},
		LLM: config.LLMConfig{
			Backend:      "rest",
			GeminiAPIKey: "test-key",
			ModelName:    "gemini-2.0-flash",
			BaseURL:      "http://127.0.0.1:1",
		},
		Images: config.ImagesConfig{
			Endpoint: "http://127.0.0.1:1/text-to-image/v1",
			Model:    "stable-diffusion-xl",
		},
		Auth: config.AuthConfig{TokenLifetimeMinutes: 60},
		Sweeper: config.SweeperConfig{
			Schedule:   "0 */15 * * * *",
			ImageTTL:   24 * time.Hour,
			SessionTTL: 2 * time.Hour,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewApplication_InMemory(t *testing.T) {
	t.Parallel()

	app, err := newApplication(context.Background(), testConfig(), testLogger())
	require.NoError(t, err)
	t.Cleanup(app.cleanup)

	assert.IsType(t, &memstore.ImageStore{}, app.imageStore)
	assert.Nil(t, app.db)
	assert.Nil(t, app.jwtService)

	rec := httptest.NewRecorder()
	app.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewApplication_WithAuth(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Auth.JWTSecret = "test-secret-that-is-long-enough-for-testing"

	app, err := newApplication(context.Background(), cfg, testLogger())
	require.NoError(t, err)
	t.Cleanup(app.cleanup)

	rec := httptest.NewRecorder()
	app.router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/sessions", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewApplication_InvalidSchedule(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Sweeper.Schedule = "every now and then"

	_, err := newApplication(context.Background(), cfg, testLogger())
	assert.Error(t, err)
}

func TestStartHTTPServer_StopsOnCancel(t *testing.T) {
	t.Parallel()

	app, err := newApplication(context.Background(), testConfig(), testLogger())
	require.NoError(t, err)
	t.Cleanup(app.cleanup)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.startHTTPServer(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
