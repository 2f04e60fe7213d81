package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/fadilmartias/rozgar/internal/repository"
	"github.com/fadilmartias/rozgar/internal/service"
	"github.com/fadilmartias/rozgar/internal/util"
)

type InterviewUsecase struct {
	interviews InterviewStore
	cache      service.CounterCache
}

func NewInterviewUsecase(interviews InterviewStore, cache service.CounterCache) *InterviewUsecase {
	if cache == nil {
		cache = service.NoopCounterCache{}
	}
	return &InterviewUsecase{interviews: interviews, cache: cache}
}

// Create sets the interview schedule of a job, replacing the existing one.
func (uc *InterviewUsecase) Create(ctx context.Context, req dto.CreateInterviewRequest) (*model.Interview, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	details := "Interview for job " + req.Title
	if req.MeetingLink != "" {
		details += "\nMeet: " + req.MeetingLink
	}
	addURL := service.GoogleCalendarAddURL(req.Title, details, req.Location, req.ScheduledAt)

	existing, err := uc.interviews.FindByJob(ctx, req.JobID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		interview := &model.Interview{
			JobID:        req.JobID,
			CompanyID:    req.CompanyID,
			Title:        req.Title,
			ScheduledAt:  req.ScheduledAt,
			Location:     req.Location,
			MeetingLink:  req.MeetingLink,
			GoogleAddURL: addURL,
			Status:       model.InterviewScheduled,
		}
		if err := uc.interviews.Create(ctx, interview); err != nil {
			return nil, fmt.Errorf("create interview: %w", err)
		}
		uc.invalidate(ctx, interview)
		return interview, nil
	case err != nil:
		return nil, err
	}

	existing.CompanyID = req.CompanyID
	existing.Title = req.Title
	existing.ScheduledAt = req.ScheduledAt
	existing.Location = req.Location
	existing.MeetingLink = req.MeetingLink
	existing.GoogleEventID = ""
	existing.GoogleAddURL = addURL
	existing.Status = model.InterviewScheduled
	if err := uc.interviews.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update interview: %w", err)
	}
	uc.invalidate(ctx, existing)
	return existing, nil
}

// Schedule books an interview with a named candidate.
func (uc *InterviewUsecase) Schedule(ctx context.Context, req dto.ScheduleInterviewRequest) (*model.Interview, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	mode := req.Mode
	if mode == "" {
		mode = "Online"
	}
	details := fmt.Sprintf("Interview (%s)", mode)
	if req.MeetingLink != "" {
		details += "\nMeet: " + req.MeetingLink
	}

	email := req.CandidateEmail
	interview := &model.Interview{
		JobID:          req.JobID,
		CompanyID:      req.CompanyID,
		CandidateEmail: &email,
		Title:          req.Title,
		ScheduledAt:    req.ScheduledAt,
		Location:       req.Location,
		MeetingLink:    req.MeetingLink,
		GoogleAddURL:   service.GoogleCalendarAddURL(req.Title, details, req.Location, req.ScheduledAt),
		Status:         model.InterviewScheduled,
	}
	if err := uc.interviews.Create(ctx, interview); err != nil {
		return nil, fmt.Errorf("schedule interview: %w", err)
	}
	uc.invalidate(ctx, interview)
	return interview, nil
}

func (uc *InterviewUsecase) ListByCandidate(ctx context.Context, email string) ([]model.Interview, error) {
	email = dto.NormalizeEmail(email)
	if email == "" {
		return nil, util.NewFormError("email is required", nil)
	}
	return uc.interviews.ListByCandidate(ctx, email)
}

func (uc *InterviewUsecase) ListByCompany(ctx context.Context, companyID string) ([]model.Interview, error) {
	if companyID == "" {
		return nil, util.NewFormError("companyId is required", nil)
	}
	return uc.interviews.ListByCompany(ctx, companyID)
}

func (uc *InterviewUsecase) GetByJob(ctx context.Context, jobID string) (*model.Interview, error) {
	interview, err := uc.interviews.FindByJob(ctx, jobID)
	if err != nil {
		return nil, notFound(err, ErrNoInterviewForJob)
	}
	return interview, nil
}

// Accept marks the job's interview as accepted by the given user.
func (uc *InterviewUsecase) Accept(ctx context.Context, req dto.InterviewDecisionRequest) (*model.Interview, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	interview, err := uc.interviews.FindByJob(ctx, req.JobID)
	if err != nil {
		return nil, notFound(err, ErrInterviewNotFound)
	}

	interview.AcceptedByUserID = optional(req.UserID)
	interview.AcceptedByEmail = optional(dto.NormalizeEmail(req.Email))
	interview.Status = model.InterviewAccepted
	if err := uc.interviews.Update(ctx, interview); err != nil {
		return nil, fmt.Errorf("accept interview: %w", err)
	}
	uc.invalidate(ctx, interview)
	return interview, nil
}

func (uc *InterviewUsecase) Reject(ctx context.Context, req dto.InterviewDecisionRequest) (*model.Interview, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	interview, err := uc.interviews.FindByJob(ctx, req.JobID)
	if err != nil {
		return nil, notFound(err, ErrInterviewNotFound)
	}

	interview.Status = model.InterviewCancelled
	if err := uc.interviews.Update(ctx, interview); err != nil {
		return nil, fmt.Errorf("reject interview: %w", err)
	}
	uc.invalidate(ctx, interview)
	return interview, nil
}

func (uc *InterviewUsecase) invalidate(ctx context.Context, i *model.Interview) {
	keys := []string{companyDashboardKey(i.CompanyID)}
	for _, identity := range []*string{i.CandidateEmail, i.AcceptedByEmail, i.AcceptedByUserID} {
		if identity != nil && *identity != "" {
			keys = append(keys, seekerDashboardKey(*identity))
		}
	}
	uc.cache.Invalidate(ctx, keys...)
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}
