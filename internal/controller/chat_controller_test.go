package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"ticker-chat-be/internal/dto"
	"ticker-chat-be/internal/pkg/apperrors"
	"ticker-chat-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type fakeChatService struct {
	response *dto.ChatResponse
	err      error
	calls    int
	lastKey  string
}

func (f *fakeChatService) Chat(_ context.Context, apiKey string, _ *dto.ChatRequest) (*dto.ChatResponse, error) {
	f.calls++
	f.lastKey = apiKey
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func newTestApp(svc *fakeChatService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nopLogger{}))
	NewChatController(svc).RegisterRoutes(app)
	return app
}

func TestChatMissingAuthorizationHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc123"},
		{"bearer without key", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeChatService{}
			app := newTestApp(svc)

			req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{"question":"hi"}`))
			req.Header.Set("Content-Type", "application/json")
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, 0, svc.calls, "no pipeline side effects without a credential")

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "Missing or invalid API key", body["error"])
		})
	}
}

func TestChatBadRequests(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{"empty body", "", "Request body is required"},
		{"invalid json", "{not json", "Invalid JSON"},
		{"missing question", `{"conversation_id":""}`, "Question is required"},
		{"blank question", `{"question":"   "}`, "Question is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeChatService{}
			app := newTestApp(svc)

			req := httptest.NewRequest("POST", "/chat", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer sk-test")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, 0, svc.calls, "no remote calls on invalid input")

			var body serverutils.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantError, body.Error)
			assert.NotEmpty(t, body.Details)
		})
	}
}

func TestChatSuccess(t *testing.T) {
	svc := &fakeChatService{response: &dto.ChatResponse{
		Answer:         "AMD had a strong quarter.",
		ConversationId: "3f2c8b1e-0000-4000-8000-000000000000",
	}}
	app := newTestApp(svc)

	req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{"question":"What is AMD's latest earnings report?"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer sk-test")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, "sk-test", svc.lastKey)

	var body dto.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "AMD had a strong quarter.", body.Answer)
	assert.NotEmpty(t, body.ConversationId)
}

func TestChatPipelineFailuresMapTo500(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"retrieval error", apperrors.NewRetrieval(errors.New("store unavailable"))},
		{"generation error", apperrors.NewGeneration(errors.New("invalid api key"))},
		{"config error", apperrors.NewConfig("Configuration Error", errors.New("missing environment variables: PG_HOST"))},
		{"unclassified error", errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeChatService{err: tt.err}
			app := newTestApp(svc)

			req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{"question":"q"}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer sk-test")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

			var body serverutils.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "Internal Server Error", body.Error)
			assert.NotEmpty(t, body.Details)
			assert.NotEmpty(t, body.Timestamp)
		})
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(&fakeChatService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(raw))
}
