package usecase

import (
	"context"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/service"
	"github.com/fadilmartias/rozgar/internal/util"
	"github.com/google/uuid"
)

func seekerDashboardKey(identity string) string {
	return "dashboard:seeker:" + dto.NormalizeEmail(identity)
}

func companyDashboardKey(companyID string) string {
	return "dashboard:company:" + companyID
}

// DashboardUsecase serves per-view counters computed from the database.
// Cached values are dropped by the use cases that mutate the underlying rows.
type DashboardUsecase struct {
	tests        TestStore
	results      TestResultStore
	interviews   InterviewStore
	applications ApplicationStore
	cache        service.CounterCache
}

func NewDashboardUsecase(tests TestStore, results TestResultStore, interviews InterviewStore, applications ApplicationStore, cache service.CounterCache) *DashboardUsecase {
	return &DashboardUsecase{tests: tests, results: results, interviews: interviews, applications: applications, cache: cache}
}

func (uc *DashboardUsecase) SeekerStats(ctx context.Context, email string) (*dto.SeekerDashboard, error) {
	email = dto.NormalizeEmail(email)
	if email == "" {
		return nil, util.NewFormError("email is required", nil)
	}

	key := seekerDashboardKey(email)
	var stats dto.SeekerDashboard
	if uc.cache.Get(ctx, key, &stats) {
		return &stats, nil
	}
	version := uc.cache.Version(ctx, key)

	apps, err := uc.applications.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	interviews, err := uc.interviews.ListAcceptedBy(ctx, email)
	if err != nil {
		return nil, err
	}
	results, err := uc.results.ListByUser(ctx, email)
	if err != nil {
		return nil, err
	}

	stats = dto.SeekerDashboard{
		Applications: int64(len(apps)),
		Interviews:   int64(len(interviews)),
		TestsTaken:   int64(len(results)),
		TestsPassed:  int64(len(BestPassingAttempts(results))),
	}
	uc.cache.Set(ctx, key, stats, version)
	return &stats, nil
}

func (uc *DashboardUsecase) CompanyStats(ctx context.Context, companyID string) (*dto.CompanyDashboard, error) {
	if companyID == "" {
		return nil, util.NewFormError("companyId is required", nil)
	}

	key := companyDashboardKey(companyID)
	var stats dto.CompanyDashboard
	if uc.cache.Get(ctx, key, &stats) {
		return &stats, nil
	}
	version := uc.cache.Version(ctx, key)

	tests, err := uc.tests.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	interviews, err := uc.interviews.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(tests))
	for _, t := range tests {
		ids = append(ids, t.ID)
	}
	results, err := uc.results.ListByTestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	stats = dto.CompanyDashboard{
		Tests:            int64(len(tests)),
		Interviews:       int64(len(interviews)),
		PassedCandidates: int64(len(BestPassingAttempts(results))),
	}
	uc.cache.Set(ctx, key, stats, version)
	return &stats, nil
}
