package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/fadilmartias/rozgar/internal/repository"
	"github.com/fadilmartias/rozgar/internal/scoring"
	"github.com/fadilmartias/rozgar/internal/service"
	"github.com/google/uuid"
)

// InterviewAcceptor is the part of InterviewUsecase qualification depends on.
type InterviewAcceptor interface {
	GetByJob(ctx context.Context, jobID string) (*model.Interview, error)
	Accept(ctx context.Context, req dto.InterviewDecisionRequest) (*model.Interview, error)
}

// QualificationUsecase moves a passing candidate onto the job's interview.
// Each passing result gets exactly one task and a task runs at most once.
type QualificationUsecase struct {
	tasks      QualificationStore
	interviews InterviewAcceptor
	dispatcher service.Dispatcher
}

func NewQualificationUsecase(tasks QualificationStore, interviews InterviewAcceptor, dispatcher service.Dispatcher) *QualificationUsecase {
	return &QualificationUsecase{tasks: tasks, interviews: interviews, dispatcher: dispatcher}
}

// Trigger records a pending task for a passing result and dispatches it.
// Non-passing results are ignored and return a nil task.
func (uc *QualificationUsecase) Trigger(ctx context.Context, result *model.TestResult) (*model.QualificationTask, error) {
	if !scoring.Qualifies(result.Score, result.Total) {
		return nil, nil
	}

	task := &model.QualificationTask{
		ResultID: result.ID,
		JobID:    result.JobID,
		UserID:   result.UserID,
		Status:   model.QualificationPending,
	}
	if err := uc.tasks.Create(ctx, task); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return uc.tasks.FindByResult(ctx, result.ID)
		}
		return nil, fmt.Errorf("create qualification task: %w", err)
	}

	if err := uc.dispatcher.Dispatch(ctx, task.ID.String()); err != nil {
		detail := fmt.Sprintf("dispatch: %v", err)
		if ferr := uc.tasks.Finish(ctx, task.ID, model.QualificationFailed, detail); ferr != nil {
			log.Printf("qualification task %s: %v", task.ID, ferr)
		}
		return task, fmt.Errorf("dispatch qualification task: %w", err)
	}
	return task, nil
}

// Process runs a dispatched task. A task that was already claimed is skipped.
func (uc *QualificationUsecase) Process(ctx context.Context, taskID string) error {
	task, err := uc.tasks.FindByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("load qualification task %s: %w", taskID, err)
	}

	claimed, err := uc.tasks.Claim(ctx, task.ID)
	if err != nil {
		return fmt.Errorf("claim qualification task %s: %w", taskID, err)
	}
	if !claimed {
		log.Printf("qualification task %s already claimed, skipping", taskID)
		return nil
	}

	status, detail := uc.qualify(ctx, task)
	log.Printf("qualification task %s for job %s: %s %s", task.ID, task.JobID, status, detail)
	return uc.tasks.Finish(ctx, task.ID, status, detail)
}

func (uc *QualificationUsecase) qualify(ctx context.Context, task *model.QualificationTask) (model.QualificationStatus, string) {
	if _, err := uc.interviews.GetByJob(ctx, task.JobID); err != nil {
		if errors.Is(err, ErrNoInterviewForJob) {
			return model.QualificationNoInterview, "no interview scheduled for this job"
		}
		return model.QualificationFailed, err.Error()
	}

	req := dto.InterviewDecisionRequest{JobID: task.JobID, UserID: task.UserID}
	if strings.Contains(task.UserID, "@") {
		req.Email = dto.NormalizeEmail(task.UserID)
	}
	if _, err := uc.interviews.Accept(ctx, req); err != nil {
		if errors.Is(err, ErrInterviewNotFound) {
			return model.QualificationNoInterview, "no interview scheduled for this job"
		}
		return model.QualificationFailed, err.Error()
	}
	return model.QualificationAccepted, ""
}

// ForResult returns the task of a result, or nil when none was scheduled.
func (uc *QualificationUsecase) ForResult(ctx context.Context, resultID uuid.UUID) (*model.QualificationTask, error) {
	task, err := uc.tasks.FindByResult(ctx, resultID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return task, err
}
