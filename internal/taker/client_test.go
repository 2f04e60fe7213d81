package taker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/tests/by-job/job-1":
			w.Write([]byte(`{"_id":"6f1c2a9e-5b5e-4a53-9e0c-1b1c3f1e7a11","jobId":"job-1","title":"T","durationSec":60,"questions":[{"text":"q","options":["a","b"]}]}`))
		case r.Method == http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"No test for this job"}`))
		case r.URL.Path == "/api/tests/submit":
			var req dto.SubmitTestRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.UserID == "" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":"Missing fields"}`))
				return
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"_id":"0b6f8c3e-8d36-4c8c-9f3a-2f7d8f7f0d11","score":1,"total":1}`))
		}
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, 5*time.Second)
	ctx := context.Background()

	test, err := client.TestForJob(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, 60, test.DurationSec)
	require.Len(t, test.Questions, 1)

	_, err = client.TestForJob(ctx, "missing")
	assert.ErrorIs(t, err, ErrNoTest)

	result, err := client.Submit(ctx, dto.SubmitTestRequest{TestID: test.ID.String(), JobID: "job-1", UserID: "u", Answers: map[string]any{"1": 0}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)

	_, err = client.Submit(ctx, dto.SubmitTestRequest{TestID: test.ID.String()})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Missing fields", apiErr.Message)
}
