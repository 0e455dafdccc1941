package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/recout-api/internal/infrastructure/ai"
)

func TestGemini_GenerateRecoveryPlan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "k", r.Header.Get("x-goog-api-key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "contents")

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"# Plano"},{"text":"\n1. Resumo"}]}}]}`))
	}))
	defer srv.Close()

	svc := ai.NewGeminiService("k", "").WithBaseURL(srv.URL)
	plan, err := svc.GenerateRecoveryPlan(context.Background(), "um painel de produção")
	require.NoError(t, err)
	assert.Equal(t, "# Plano\n1. Resumo", plan)
}

func TestGemini_EmptyCandidatesIsEmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	plan, err := ai.NewGeminiService("k", "").WithBaseURL(srv.URL).GenerateRecoveryPlan(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestGemini_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota"}}`))
	}))
	defer srv.Close()

	_, err := ai.NewGeminiService("k", "").WithBaseURL(srv.URL).GenerateRecoveryPlan(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota")
}

func TestGemini_MissingKey(t *testing.T) {
	_, err := ai.NewGeminiService("", "").GenerateRecoveryPlan(context.Background(), "x")
	assert.Error(t, err)
}

func TestAnthropic_GenerateRecoveryPlan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "k", r.Header.Get("x-api-key"))
		assert.NotEmpty(t, r.Header.Get("anthropic-version"))
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Plano "},{"type":"text","text":"pronto"}]}`))
	}))
	defer srv.Close()

	plan, err := ai.NewAnthropicService("k", "").WithBaseURL(srv.URL).GenerateRecoveryPlan(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "Plano pronto", plan)
}

func TestAnthropic_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"type":"authentication_error","message":"bad key"}}`))
	}))
	defer srv.Close()

	_, err := ai.NewAnthropicService("k", "").WithBaseURL(srv.URL).GenerateRecoveryPlan(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}
