package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/fadilmartias/rozgar/internal/repository"
	"github.com/fadilmartias/rozgar/internal/service"
	"github.com/fadilmartias/rozgar/internal/util"
)

type ApplicationUsecase struct {
	applications ApplicationStore
	cache        service.CounterCache
	extractText  func(path string) (string, error)
}

func NewApplicationUsecase(applications ApplicationStore, cache service.CounterCache) *ApplicationUsecase {
	if cache == nil {
		cache = service.NoopCounterCache{}
	}
	return &ApplicationUsecase{
		applications: applications,
		cache:        cache,
		extractText:  util.ExtractPDFText,
	}
}

func (uc *ApplicationUsecase) Create(ctx context.Context, req dto.CreateApplicationRequest) (*model.Application, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	app := &model.Application{
		JobID:          req.JobID,
		JobTitle:       req.JobTitle,
		Company:        req.Company,
		ApplicantID:    optional(req.ApplicantID),
		ApplicantEmail: req.ApplicantEmail,
		ApplicantName:  req.ApplicantName,
		Phone:          req.Phone,
		ResumeURL:      req.ResumeURL,
		CoverLetter:    req.CoverLetter,
		Status:         model.ApplicationApplied,
	}
	if err := uc.applications.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("create application: %w", err)
	}
	uc.cache.Invalidate(ctx, seekerDashboardKey(app.ApplicantEmail))
	return app, nil
}

func (uc *ApplicationUsecase) ListByUser(ctx context.Context, email string) ([]model.Application, error) {
	email = dto.NormalizeEmail(email)
	if email == "" {
		return nil, util.NewFormError("email is required", nil)
	}
	return uc.applications.ListByEmail(ctx, email)
}

func (uc *ApplicationUsecase) ListByJobs(ctx context.Context, jobIDs []string) ([]model.Application, error) {
	if len(jobIDs) == 0 {
		return []model.Application{}, nil
	}
	return uc.applications.ListByJobs(ctx, jobIDs)
}

// CountByJobs reports applicants per job. Every requested id appears in the
// result, with zero when nobody applied.
func (uc *ApplicationUsecase) CountByJobs(ctx context.Context, jobIDs []string) (*dto.ApplicantCounts, error) {
	if len(jobIDs) == 0 {
		return nil, util.NewFormError("jobIds is required", nil)
	}
	apps, err := uc.applications.ListByJobs(ctx, jobIDs)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(jobIDs))
	for _, id := range jobIDs {
		counts[id] = 0
	}
	for _, a := range apps {
		counts[a.JobID]++
	}
	return &dto.ApplicantCounts{Counts: counts, Total: len(apps)}, nil
}

// AttachResume extracts the text of an uploaded PDF resume onto the application.
func (uc *ApplicationUsecase) AttachResume(ctx context.Context, id, pdfPath string) (*model.Application, error) {
	app, err := uc.applications.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrApplicationNotFound)
	}

	text, err := uc.extractText(pdfPath)
	if err != nil {
		log.Printf("resume for application %s: %v", id, err)
		return nil, util.NewFormError("Could not read text from the uploaded resume", nil)
	}
	if err := uc.applications.SetResumeText(ctx, app, text); err != nil {
		return nil, fmt.Errorf("store resume text: %w", err)
	}
	return app, nil
}
