package taker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/go-resty/resty/v2"
)

var ErrNoTest = errors.New("no test for this job")

// APIError is a non-2xx answer from the API, carrying its {"error"} message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type errorBody struct {
	Error string `json:"error"`
}

// APIClient talks to the test endpoints of the Rozgar API.
type APIClient struct {
	http *resty.Client
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

func (c *APIClient) TestForJob(ctx context.Context, jobID string) (*dto.SanitizedTest, error) {
	var test dto.SanitizedTest
	var apiErr errorBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("jobId", jobID).
		SetResult(&test).
		SetError(&apiErr).
		Get("/api/tests/by-job/{jobId}")
	if err != nil {
		return nil, fmt.Errorf("fetch test: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrNoTest
	}
	if resp.IsError() {
		return nil, &APIError{Status: resp.StatusCode(), Message: apiErr.Error}
	}
	return &test, nil
}

func (c *APIClient) Submit(ctx context.Context, req dto.SubmitTestRequest) (*model.TestResult, error) {
	var result model.TestResult
	var apiErr errorBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		SetError(&apiErr).
		Post("/api/tests/submit")
	if err != nil {
		return nil, fmt.Errorf("submit test: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{Status: resp.StatusCode(), Message: apiErr.Error}
	}
	return &result, nil
}
