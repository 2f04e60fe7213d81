package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fadilmartias/rozgar/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAI(t *testing.T, handler http.HandlerFunc) *OpenAIService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAIService(
		&config.OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: srv.URL},
		&RetryPolicy{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond, Timeout: 2 * time.Second},
	)
}

func TestOpenAIGenerateQuestions(t *testing.T) {
	svc := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "gpt-4o-mini", payload["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"questions\":[]}"}}]}`))
	})

	content, err := svc.GenerateQuestions(context.Background(), "Backend Engineer")
	require.NoError(t, err)
	assert.Equal(t, `{"questions":[]}`, content)
}

func TestOpenAIRetriesServerErrors(t *testing.T) {
	var calls int32
	svc := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	})

	content, err := svc.GenerateQuestions(context.Background(), "QA")
	require.NoError(t, err)
	assert.Equal(t, "ok", content)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestOpenAIDoesNotRetryAuthErrors(t *testing.T) {
	var calls int32
	svc := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := svc.GenerateQuestions(context.Background(), "QA")
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
