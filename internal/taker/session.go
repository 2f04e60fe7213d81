// Package taker runs a screening test on the candidate's side: it loads the
// sanitized test, keeps the countdown, records answers and submits them.
package taker

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/model"
)

type State string

const (
	StateLoading    State = "loading"
	StateReady      State = "ready"
	StateInProgress State = "in_progress"
	StateSubmitting State = "submitting"
	StateCompleted  State = "completed"
	StateExpired    State = "expired"
)

var (
	ErrWrongState       = errors.New("operation not allowed in current state")
	ErrOptionOutOfRange = errors.New("option out of range")
	ErrNoAdjacent       = errors.New("no adjacent question in that direction")
	ErrNotConfirmed     = errors.New("submission not confirmed")
)

// API is what a Session needs from the server.
type API interface {
	TestForJob(ctx context.Context, jobID string) (*dto.SanitizedTest, error)
	Submit(ctx context.Context, req dto.SubmitTestRequest) (*model.TestResult, error)
}

// Snapshot is a copy of the session state for rendering.
type Snapshot struct {
	State     State
	Test      *dto.SanitizedTest
	Current   int
	Remaining int
	Answers   map[int]int
	Result    *model.TestResult
	Err       error
}

// Session is the test-taking state machine. All methods are safe to call from
// the UI goroutine while Run ticks on its own goroutine.
type Session struct {
	api      API
	jobID    string
	userID   string
	interval time.Duration
	onChange func(Snapshot)

	mu        sync.Mutex
	state     State
	test      *dto.SanitizedTest
	current   int
	answers   map[int]int
	remaining int
	elapsed   int
	result    *model.TestResult
	err       error
	done      chan struct{}
	closeOnce sync.Once
}

type Option func(*Session)

// WithTickInterval overrides the one second countdown step.
func WithTickInterval(d time.Duration) Option {
	return func(s *Session) { s.interval = d }
}

// WithOnChange registers a callback run after every state change.
func WithOnChange(fn func(Snapshot)) Option {
	return func(s *Session) { s.onChange = fn }
}

func NewSession(api API, jobID, userID string, opts ...Option) *Session {
	s := &Session{
		api:      api,
		jobID:    jobID,
		userID:   userID,
		interval: time.Second,
		state:    StateLoading,
		answers:  map[int]int{},
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches the test and arms the countdown with its duration.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateLoading {
		s.mu.Unlock()
		return ErrWrongState
	}
	s.mu.Unlock()

	test, err := s.api.TestForJob(ctx, s.jobID)

	if err == nil && len(test.Questions) == 0 {
		err = errors.New("test has no questions")
	}

	s.mu.Lock()
	if err != nil {
		s.err = err
		s.mu.Unlock()
		s.notify()
		return err
	}
	s.test = test
	s.remaining = test.DurationSec
	s.err = nil
	s.state = StateReady
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *Session) Start() error {
	s.mu.Lock()
	if s.state != StateReady {
		s.mu.Unlock()
		return ErrWrongState
	}
	s.state = StateInProgress
	s.mu.Unlock()
	s.notify()
	return nil
}

// Tick advances the countdown by one step. At zero the session expires and
// submits whatever has been answered, without asking.
func (s *Session) Tick(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return nil
	}
	s.remaining--
	s.elapsed++
	if s.remaining > 0 {
		s.mu.Unlock()
		s.notify()
		return nil
	}
	s.remaining = 0
	s.state = StateExpired
	s.mu.Unlock()
	s.notify()

	return s.submit(ctx, StateExpired)
}

// Select records option as the answer to the current question, replacing any
// earlier choice.
func (s *Session) Select(option int) error {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return ErrWrongState
	}
	if option < 0 || option >= len(s.test.Questions[s.current].Options) {
		s.mu.Unlock()
		return ErrOptionOutOfRange
	}
	s.answers[s.current] = option
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *Session) Next() error {
	return s.move(1)
}

func (s *Session) Prev() error {
	return s.move(-1)
}

func (s *Session) move(step int) error {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return ErrWrongState
	}
	target := s.current + step
	if target < 0 || target >= len(s.test.Questions) {
		s.mu.Unlock()
		return ErrNoAdjacent
	}
	s.current = target
	s.mu.Unlock()
	s.notify()
	return nil
}

// Submit sends the answers before time runs out. confirm is asked first and
// must return true. A failed submission returns to InProgress so it can be retried.
func (s *Session) Submit(ctx context.Context, confirm func() bool) error {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return ErrWrongState
	}
	s.mu.Unlock()

	if confirm == nil || !confirm() {
		return ErrNotConfirmed
	}
	return s.submit(ctx, StateInProgress)
}

// submit moves from `from` to Submitting and on to Completed. On failure the
// session goes back to `from` with the error recorded.
func (s *Session) submit(ctx context.Context, from State) error {
	s.mu.Lock()
	if s.state != from {
		s.mu.Unlock()
		return ErrWrongState
	}
	s.state = StateSubmitting
	s.err = nil
	req := dto.SubmitTestRequest{
		TestID:    s.test.ID.String(),
		JobID:     s.jobID,
		UserID:    s.userID,
		Answers:   answerPayload(s.answers),
		TimeTaken: s.elapsed,
	}
	s.mu.Unlock()
	s.notify()

	result, err := s.api.Submit(ctx, req)

	s.mu.Lock()
	if err != nil {
		s.state = from
		s.err = fmt.Errorf("submit: %w", err)
		err = s.err
		s.mu.Unlock()
		s.notify()
		if from == StateExpired {
			s.finish()
		}
		return err
	}
	s.result = result
	s.state = StateCompleted
	s.mu.Unlock()
	s.notify()
	s.finish()
	return nil
}

// Run ticks the countdown until the session ends or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case <-ticker.C:
			if err := s.Tick(ctx); err != nil {
				return err
			}
		}
	}
}

// Done is closed once the session is over: completed, or expired and its
// automatic submission attempted.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	answers := make(map[int]int, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	return Snapshot{
		State:     s.state,
		Test:      s.test,
		Current:   s.current,
		Remaining: s.remaining,
		Answers:   answers,
		Result:    s.result,
		Err:       s.err,
	}
}

func (s *Session) finish() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Session) notify() {
	if s.onChange != nil {
		s.onChange(s.Snapshot())
	}
}

// answerPayload keys answers by 1-based question number as the API expects.
func answerPayload(answers map[int]int) map[string]any {
	out := make(map[string]any, len(answers))
	for q, opt := range answers {
		out[strconv.Itoa(q+1)] = opt
	}
	return out
}
