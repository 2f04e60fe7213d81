package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applicationRequest(jobID, email string) dto.CreateApplicationRequest {
	return dto.CreateApplicationRequest{
		JobID:          jobID,
		JobTitle:       "Go Developer",
		Company:        "Acme",
		ApplicantEmail: email,
		ApplicantName:  "Ana",
	}
}

func TestCreateApplicationRejectsDuplicates(t *testing.T) {
	store := &fakeApplicationStore{}
	cache := newMemCache()
	uc := NewApplicationUsecase(store, cache)
	ctx := context.Background()

	app, err := uc.Create(ctx, applicationRequest("job-1", "Ana@Example.com"))
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationApplied, app.Status)
	assert.Equal(t, "ana@example.com", app.ApplicantEmail)
	assert.Nil(t, app.ApplicantID)
	assert.Contains(t, cache.invalidated, seekerDashboardKey("ana@example.com"))

	_, err = uc.Create(ctx, applicationRequest("job-1", "ana@example.com "))
	assert.ErrorIs(t, err, ErrAlreadyApplied)

	_, err = uc.Create(ctx, applicationRequest("job-2", "ana@example.com"))
	require.NoError(t, err)

	mine, err := uc.ListByUser(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestCountByJobsIncludesZeroes(t *testing.T) {
	uc := NewApplicationUsecase(&fakeApplicationStore{}, nil)
	ctx := context.Background()
	for _, email := range []string{"a@x.com", "b@x.com"} {
		_, err := uc.Create(ctx, applicationRequest("job-1", email))
		require.NoError(t, err)
	}

	counts, err := uc.CountByJobs(ctx, []string{"job-1", "job-2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"job-1": 2, "job-2": 0}, counts.Counts)
	assert.Equal(t, 2, counts.Total)

	_, err = uc.CountByJobs(ctx, nil)
	assert.Error(t, err)
}

func TestAttachResume(t *testing.T) {
	uc := NewApplicationUsecase(&fakeApplicationStore{}, nil)
	ctx := context.Background()
	app, err := uc.Create(ctx, applicationRequest("job-1", "a@x.com"))
	require.NoError(t, err)

	uc.extractText = func(string) (string, error) { return "Five years of Go.", nil }
	got, err := uc.AttachResume(ctx, app.ID.String(), "/tmp/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "Five years of Go.", got.ResumeText)

	uc.extractText = func(string) (string, error) { return "", errors.New("scanned") }
	_, err = uc.AttachResume(ctx, app.ID.String(), "/tmp/cv.pdf")
	assert.Error(t, err)

	_, err = uc.AttachResume(ctx, "missing", "/tmp/cv.pdf")
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}
