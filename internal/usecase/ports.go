package usecase

import (
	"context"

	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/fadilmartias/rozgar/internal/repository"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// The interfaces below are satisfied by the repository package and by the
// in-memory fakes used in tests.

type TestStore interface {
	Create(ctx context.Context, t *model.Test) error
	FindByID(ctx context.Context, id string) (*model.Test, error)
	FindActiveByJob(ctx context.Context, jobID string) (*model.Test, error)
	ListByCompany(ctx context.Context, companyID string) ([]model.Test, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type TestResultStore interface {
	Create(ctx context.Context, r *model.TestResult) error
	FindByID(ctx context.Context, id string) (*model.TestResult, error)
	ListByTestIDs(ctx context.Context, testIDs []uuid.UUID) ([]model.TestResult, error)
	ListByUser(ctx context.Context, userID string) ([]model.TestResult, error)
}

type QualificationStore interface {
	Create(ctx context.Context, t *model.QualificationTask) error
	FindByID(ctx context.Context, id string) (*model.QualificationTask, error)
	FindByResult(ctx context.Context, resultID uuid.UUID) (*model.QualificationTask, error)
	Claim(ctx context.Context, id uuid.UUID) (bool, error)
	Finish(ctx context.Context, id uuid.UUID, status model.QualificationStatus, detail string) error
}

type InterviewStore interface {
	Create(ctx context.Context, i *model.Interview) error
	Update(ctx context.Context, i *model.Interview) error
	FindByJob(ctx context.Context, jobID string) (*model.Interview, error)
	ListByCandidate(ctx context.Context, email string) ([]model.Interview, error)
	ListByCompany(ctx context.Context, companyID string) ([]model.Interview, error)
	ListAcceptedBy(ctx context.Context, identity string) ([]model.Interview, error)
}

type ApplicationStore interface {
	Create(ctx context.Context, a *model.Application) error
	FindByID(ctx context.Context, id string) (*model.Application, error)
	ListByEmail(ctx context.Context, email string) ([]model.Application, error)
	ListByJobs(ctx context.Context, jobIDs []string) ([]model.Application, error)
	SetResumeText(ctx context.Context, app *model.Application, text string) error
}

type JobStore interface {
	Create(ctx context.Context, j *model.Job) error
	FindByID(ctx context.Context, id string) (*model.Job, error)
	ListJobs(ctx context.Context, limit, offset int) ([]model.Job, int64, error)
	SearchJobs(ctx context.Context, embedding pgvector.Vector, topK int) ([]model.Job, error)
	UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding pgvector.Vector) error
}

type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*model.User, error)
}

var (
	_ TestStore          = (*repository.TestRepository)(nil)
	_ TestResultStore    = (*repository.TestResultRepository)(nil)
	_ QualificationStore = (*repository.QualificationRepository)(nil)
	_ InterviewStore     = (*repository.InterviewRepository)(nil)
	_ ApplicationStore   = (*repository.ApplicationRepository)(nil)
	_ JobStore           = (*repository.JobRepository)(nil)
	_ UserStore          = (*repository.UserRepository)(nil)
)
