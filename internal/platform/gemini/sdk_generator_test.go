package gemini_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/generation"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSDKGenerator_RequiresKey(t *testing.T) {
	t.Parallel()

	cfg := testConfig("")
	cfg.GeminiAPIKey = ""

	_, err := gemini.NewSDKGenerator(context.Background(), testLogger(), cfg)

	assert.ErrorIs(t, err, generation.ErrConfiguration)
}

func TestSDKGenerator_Generate(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.True(t, strings.HasSuffix(r.URL.Path, "gemini-test:generateContent"), "path %s", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"hello from sdk"}]}}]}`))
	}))
	defer server.Close()

	g, err := gemini.NewSDKGenerator(context.Background(), testLogger(), testConfig(server.URL))
	require.NoError(t, err)

	text, err := g.Generate(context.Background(), "say hello", 0.2, 50)

	require.NoError(t, err)
	assert.Equal(t, "hello from sdk", text)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSDKGenerator_APIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer server.Close()

	g, err := gemini.NewSDKGenerator(context.Background(), testLogger(), testConfig(server.URL))
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "prompt", 0.2, 50)

	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)

	var genErr *generation.GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, http.StatusTooManyRequests, genErr.StatusCode)
}
