package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createInterviewRequest() dto.CreateInterviewRequest {
	return dto.CreateInterviewRequest{
		JobID:       "job-1",
		CompanyID:   "company-1",
		Title:       "Technical interview",
		ScheduledAt: "2025-03-01T10:00:00Z",
		MeetingLink: "https://meet.example.com/abc",
	}
}

func TestCreateInterviewUpsertsPerJob(t *testing.T) {
	store := &fakeInterviewStore{}
	uc := NewInterviewUsecase(store, nil)
	ctx := context.Background()

	first, err := uc.Create(ctx, createInterviewRequest())
	require.NoError(t, err)
	assert.Equal(t, model.InterviewScheduled, first.Status)
	assert.Contains(t, first.GoogleAddURL, "dates=20250301T100000Z/20250301T103000Z")

	req := createInterviewRequest()
	req.ScheduledAt = "2025-03-02T15:00:00Z"
	second, err := uc.Create(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, store.items, 1)
	assert.Equal(t, "2025-03-02T15:00:00Z", store.items[0].ScheduledAt)
}

func TestCreateInterviewValidation(t *testing.T) {
	uc := NewInterviewUsecase(&fakeInterviewStore{}, nil)
	_, err := uc.Create(context.Background(), dto.CreateInterviewRequest{JobID: "job-1"})
	assert.Error(t, err)
}

func TestScheduleInterviewForCandidate(t *testing.T) {
	store := &fakeInterviewStore{}
	uc := NewInterviewUsecase(store, nil)
	ctx := context.Background()

	req := dto.ScheduleInterviewRequest{CreateInterviewRequest: createInterviewRequest(), CandidateEmail: " Ana@Example.com "}
	interview, err := uc.Schedule(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", deref(interview.CandidateEmail))
	assert.Contains(t, interview.GoogleAddURL, "Interview+%28Online%29")

	list, err := uc.ListByCandidate(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAcceptAndRejectInterview(t *testing.T) {
	store := &fakeInterviewStore{}
	cache := newMemCache()
	uc := NewInterviewUsecase(store, cache)
	ctx := context.Background()

	_, err := uc.Accept(ctx, dto.InterviewDecisionRequest{JobID: "job-1", UserID: "u1"})
	assert.ErrorIs(t, err, ErrInterviewNotFound)

	_, err = uc.GetByJob(ctx, "job-1")
	assert.ErrorIs(t, err, ErrNoInterviewForJob)

	_, err = uc.Create(ctx, createInterviewRequest())
	require.NoError(t, err)

	accepted, err := uc.Accept(ctx, dto.InterviewDecisionRequest{JobID: "job-1", UserID: "u1", Email: "U1@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, model.InterviewAccepted, accepted.Status)
	assert.Equal(t, "u1@example.com", deref(accepted.AcceptedByEmail))
	assert.Contains(t, cache.invalidated, seekerDashboardKey("u1@example.com"))

	rejected, err := uc.Reject(ctx, dto.InterviewDecisionRequest{JobID: "job-1", UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, model.InterviewCancelled, rejected.Status)

	_, err = uc.Accept(ctx, dto.InterviewDecisionRequest{JobID: "job-1"})
	assert.Error(t, err)
}
