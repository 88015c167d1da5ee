package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swot-core/internal/domain/entity"
	"swot-core/internal/usecase"
)

type stubLimiter struct {
	decision entity.RateDecision
	lastID   string
}

func (s *stubLimiter) Check(ctx context.Context, identifier string) (entity.RateDecision, error) {
	s.lastID = identifier
	return s.decision, nil
}

type stubProvider struct {
	result *entity.GenerationResult
	err    error
}

func (s *stubProvider) Generate(ctx context.Context, prompt string) (*entity.GenerationResult, error) {
	return s.result, s.err
}

func newTestApp(limiter *stubLimiter, provider *stubProvider) *fiber.App {
	gw := usecase.NewGateway(limiter, provider, false)
	app := fiber.New()
	SetupRouter(app, NewInsightHandler(gw))
	return app
}

func postGenerate(t *testing.T, app *fiber.App, body any, headers map[string]string) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/generate", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func validBody() entity.GenerationRequest {
	return entity.GenerationRequest{
		Prompt:     "What Coffee strengths matter most to Gen Z Creators when trying to increase sales?",
		Segment:    "Gen Z Creators",
		Product:    "Coffee",
		Objective:  "Increase Sales",
		PromptType: "strengths",
	}
}

func TestHandleGenerateSuccess(t *testing.T) {
	limiter := &stubLimiter{decision: entity.RateDecision{Allowed: true}}
	provider := &stubProvider{result: &entity.GenerationResult{
		Insight: "• Point one",
		Usage:   entity.Usage{TotalTokens: 99},
	}}
	app := newTestApp(limiter, provider)

	resp := postGenerate(t, app, validBody(), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result entity.GenerationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "• Point one", result.Insight)
	assert.Equal(t, 99, result.Usage.TotalTokens)
}

func TestHandleGenerateMissingFields(t *testing.T) {
	limiter := &stubLimiter{decision: entity.RateDecision{Allowed: true}}
	app := newTestApp(limiter, &stubProvider{})

	body := validBody()
	body.Objective = ""
	resp := postGenerate(t, app, body, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Missing required fields", payload["error"])
}

func TestHandleGenerateRateLimited(t *testing.T) {
	resetAt := time.Now().Add(45 * time.Second)
	limiter := &stubLimiter{decision: entity.RateDecision{Allowed: false, ResetAt: resetAt}}
	app := newTestApp(limiter, &stubProvider{})

	resp := postGenerate(t, app, validBody(), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, strconv.FormatInt(resetAt.UnixMilli(), 10), resp.Header.Get("X-RateLimit-Reset"))
}

func TestHandleGenerateProviderFailure(t *testing.T) {
	limiter := &stubLimiter{decision: entity.RateDecision{Allowed: true}}
	provider := &stubProvider{err: io.ErrUnexpectedEOF}
	app := newTestApp(limiter, provider)

	resp := postGenerate(t, app, validBody(), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, entity.ErrProviderFailure.Error(), payload["error"])
}

func TestHandleGenerateInvalidBody(t *testing.T) {
	limiter := &stubLimiter{decision: entity.RateDecision{Allowed: true}}
	app := newTestApp(limiter, &stubProvider{})

	req := httptest.NewRequest(http.MethodPost, "/v1/generate", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	// Malformed bodies are rejected before the limiter runs.
	assert.Empty(t, limiter.lastID)
}

func TestClientIdentifierResolution(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded chain uses first hop", map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, "1.2.3.4"},
		{"forwarded with whitespace", map[string]string{"X-Forwarded-For": " 9.9.9.9 "}, "9.9.9.9"},
		{"real ip fallback", map[string]string{"X-Real-Ip": "2.2.2.2"}, "2.2.2.2"},
		{"no headers shares the unknown bucket", nil, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := &stubLimiter{decision: entity.RateDecision{Allowed: true}}
			provider := &stubProvider{result: &entity.GenerationResult{Insight: "x"}}
			app := newTestApp(limiter, provider)

			resp := postGenerate(t, app, validBody(), tt.headers)
			resp.Body.Close()

			assert.Equal(t, tt.want, limiter.lastID)
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(&stubLimiter{decision: entity.RateDecision{Allowed: true}}, &stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
