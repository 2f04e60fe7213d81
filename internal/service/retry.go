package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"net"
	"strings"
	"time"

	"github.com/fadilmartias/rozgar/internal/config"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// StatusError is a non-2xx answer from an HTTP provider.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.Code, e.Body)
}

// RetryPolicy is applied to every outbound generative call: a per-call timeout,
// a shared rate limit and capped exponential backoff on retryable errors.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Timeout    time.Duration
	limiter    *rate.Limiter
}

func NewRetryPolicy(cfg *config.AIConfig) *RetryPolicy {
	p := &RetryPolicy{
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  cfg.BaseDelay,
		MaxDelay:   cfg.MaxDelay,
		Timeout:    cfg.Timeout,
	}
	if cfg.RatePerMinute > 0 {
		p.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RatePerMinute)), cfg.RatePerMinute)
	}
	return p
}

// Do runs fn until it succeeds, fails with a non-retryable error or retries run out.
// Each attempt gets its own Timeout; an attempt that runs out of time is retried
// while ctx is still alive.
func (p *RetryPolicy) Do(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := p.backoff(attempt)
			log.Printf("Retry attempt %d/%d for %s after %v", attempt, p.MaxRetries, name, delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("context done during retry: %w", ctx.Err())
			}
		}

		if p.limiter != nil {
			if err := p.limiter.Wait(ctx); err != nil {
				return fmt.Errorf("%s rate limit wait: %w", name, err)
			}
		}

		err := p.attempt(ctx, fn)
		if err == nil {
			return nil
		}
		lastErr = err

		if errors.Is(err, errAttemptTimeout) {
			log.Printf("Attempt %d for %s timed out after %v", attempt+1, name, p.Timeout)
			continue
		}
		if !IsRetryableError(err) {
			log.Printf("Non-retryable error for %s: %v", name, err)
			return err
		}
		log.Printf("Retryable error on attempt %d for %s: %v", attempt+1, name, err)
	}
	return fmt.Errorf("max retries (%d) exceeded for %s: %w", p.MaxRetries, name, lastErr)
}

var errAttemptTimeout = errors.New("attempt timed out")

// attempt runs fn under the per-call timeout. A deadline hit by that timeout,
// not by ctx, is reported as errAttemptTimeout.
func (p *RetryPolicy) attempt(ctx context.Context, fn func(ctx context.Context) error) error {
	if p.Timeout <= 0 {
		return fn(ctx)
	}
	callCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	err := fn(callCtx)
	if err != nil && ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", errAttemptTimeout, err)
	}
	return err
}

func (p *RetryPolicy) backoff(attempt int) time.Duration {
	delay := p.BaseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
	if p.MaxDelay > 0 && delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	return delay
}

func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return retryableStatus(statusErr.Code)
	}
	if apiErr, ok := err.(*genai.APIError); ok {
		return retryableStatus(apiErr.Code)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF")
}

func retryableStatus(code int) bool {
	switch {
	case code == 429:
		return true
	case code >= 500 && code <= 599:
		return true
	}
	return false
}
