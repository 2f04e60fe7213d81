package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passingResult() *model.TestResult {
	return &model.TestResult{ID: uuid.New(), JobID: "job-1", UserID: "user-7", Score: 4, Total: 5}
}

func TestTriggerIgnoresFailingResults(t *testing.T) {
	tasks := newFakeQualificationStore()
	dispatcher := &syncDispatcher{}
	uc := NewQualificationUsecase(tasks, NewInterviewUsecase(&fakeInterviewStore{}, nil), dispatcher)

	task, err := uc.Trigger(context.Background(), &model.TestResult{ID: uuid.New(), Score: 3, Total: 5})
	require.NoError(t, err)
	assert.Nil(t, task)
	assert.Empty(t, dispatcher.ids)

	task, err = uc.Trigger(context.Background(), &model.TestResult{ID: uuid.New(), Score: 0, Total: 0})
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestTriggerCreatesOneTaskPerResult(t *testing.T) {
	tasks := newFakeQualificationStore()
	dispatcher := &syncDispatcher{}
	uc := NewQualificationUsecase(tasks, NewInterviewUsecase(&fakeInterviewStore{}, nil), dispatcher)
	res := passingResult()

	first, err := uc.Trigger(context.Background(), res)
	require.NoError(t, err)
	second, err := uc.Trigger(context.Background(), res)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, tasks.all(), 1)
	assert.Len(t, dispatcher.ids, 1)
	assert.Equal(t, model.QualificationPending, tasks.all()[0].Status)
}

func TestProcessRunsAtMostOnce(t *testing.T) {
	ctx := context.Background()
	interviews := &fakeInterviewStore{}
	require.NoError(t, interviews.Create(ctx, &model.Interview{JobID: "job-1", CompanyID: "c", Title: "t", ScheduledAt: "2025-01-01T10:00:00Z"}))
	tasks := newFakeQualificationStore()
	uc := NewQualificationUsecase(tasks, NewInterviewUsecase(interviews, nil), &syncDispatcher{})

	task, err := uc.Trigger(ctx, passingResult())
	require.NoError(t, err)

	require.NoError(t, uc.Process(ctx, task.ID.String()))
	require.NoError(t, uc.Process(ctx, task.ID.String()))

	assert.Equal(t, 1, interviews.updates)
	got, err := uc.ForResult(ctx, task.ResultID)
	require.NoError(t, err)
	assert.Equal(t, model.QualificationAccepted, got.Status)

	i, err := interviews.FindByJob(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "user-7", deref(i.AcceptedByUserID))
	assert.Nil(t, i.AcceptedByEmail)
}

func TestProcessWithoutInterview(t *testing.T) {
	ctx := context.Background()
	tasks := newFakeQualificationStore()
	uc := NewQualificationUsecase(tasks, NewInterviewUsecase(&fakeInterviewStore{}, nil), &syncDispatcher{})

	task, err := uc.Trigger(ctx, passingResult())
	require.NoError(t, err)
	require.NoError(t, uc.Process(ctx, task.ID.String()))

	got, err := uc.ForResult(ctx, task.ResultID)
	require.NoError(t, err)
	assert.Equal(t, model.QualificationNoInterview, got.Status)
	assert.NotEmpty(t, got.Detail)
}

func TestTriggerDispatchFailureMarksTaskFailed(t *testing.T) {
	tasks := newFakeQualificationStore()
	uc := NewQualificationUsecase(tasks, NewInterviewUsecase(&fakeInterviewStore{}, nil), &syncDispatcher{err: errors.New("broker down")})

	task, err := uc.Trigger(context.Background(), passingResult())
	require.Error(t, err)
	require.NotNil(t, task)
	assert.Equal(t, model.QualificationFailed, tasks.all()[0].Status)
	assert.Contains(t, tasks.all()[0].Detail, "broker down")
}

func TestForResultWithoutTask(t *testing.T) {
	uc := NewQualificationUsecase(newFakeQualificationStore(), nil, &syncDispatcher{})
	task, err := uc.ForResult(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, task)
}
