package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/fadilmartias/rozgar/internal/scoring"
	"github.com/fadilmartias/rozgar/internal/service"
	"github.com/fadilmartias/rozgar/internal/util"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TestUsecase struct {
	tests         TestStore
	results       TestResultStore
	qualification *QualificationUsecase
	cache         service.CounterCache
	generators    []service.QuestionGenerator
}

// NewTestUsecase wires the test lifecycle. Generators are tried in order;
// qualification may be nil, in which case passing results are only stored.
func NewTestUsecase(tests TestStore, results TestResultStore, qualification *QualificationUsecase, cache service.CounterCache, generators ...service.QuestionGenerator) *TestUsecase {
	if cache == nil {
		cache = service.NoopCounterCache{}
	}
	return &TestUsecase{
		tests:         tests,
		results:       results,
		qualification: qualification,
		cache:         cache,
		generators:    generators,
	}
}

// GenerateQuestions drafts a test for a job title. A provider that is down or
// returns an empty completion falls through to the next one, and finally to the
// built-in set. An answer that holds no valid question is rejected with
// ErrUnusableOutput.
func (uc *TestUsecase) GenerateQuestions(ctx context.Context, title string) (*dto.GeneratedTest, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, util.NewFormError("title is required", nil)
	}

	for _, gen := range uc.generators {
		content, err := gen.GenerateQuestions(ctx, title)
		if err != nil {
			log.Printf("%s: question generation failed, trying next provider: %v", gen.Name(), err)
			continue
		}
		if strings.TrimSpace(content) == "" {
			log.Printf("%s: empty completion, trying next provider", gen.Name())
			continue
		}

		preview, err := service.ParseGeneratedTest(content, title)
		if err != nil {
			log.Printf("%s: unusable output: %v", gen.Name(), err)
			return nil, err
		}
		if len(preview.Questions) == 0 {
			log.Printf("%s: no valid questions in output", gen.Name())
			return nil, fmt.Errorf("%w: no valid questions", service.ErrUnusableOutput)
		}
		return preview, nil
	}

	log.Printf("no provider produced questions for %q, using fallback set", title)
	return FallbackTest(title), nil
}

func (uc *TestUsecase) CreateTest(ctx context.Context, req dto.CreateTestRequest) (*model.Test, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	test := &model.Test{
		JobID:       strings.TrimSpace(req.JobID),
		CompanyID:   strings.TrimSpace(req.CompanyID),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		DurationSec: req.DurationSec,
		Questions:   datatypes.NewJSONSlice(req.Questionnaire()),
		IsActive:    true,
	}
	if err := uc.tests.Create(ctx, test); err != nil {
		return nil, fmt.Errorf("create test: %w", err)
	}
	uc.cache.Invalidate(ctx, companyDashboardKey(test.CompanyID))
	return test, nil
}

// GetTestForJob returns the newest active test of a job.
func (uc *TestUsecase) GetTestForJob(ctx context.Context, jobID string) (*model.Test, error) {
	test, err := uc.tests.FindActiveByJob(ctx, jobID)
	if err != nil {
		return nil, notFound(err, ErrNoTestForJob)
	}
	return test, nil
}

func (uc *TestUsecase) ListByCompany(ctx context.Context, companyID string) ([]model.Test, error) {
	if companyID == "" {
		return nil, util.NewFormError("companyId is required", nil)
	}
	return uc.tests.ListByCompany(ctx, companyID)
}

// Deactivate hides a test from delivery. Stored results keep pointing at it.
func (uc *TestUsecase) Deactivate(ctx context.Context, id string) (*model.Test, error) {
	test, err := uc.tests.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrTestNotFound)
	}
	if err := uc.tests.Deactivate(ctx, test.ID); err != nil {
		return nil, notFound(err, ErrTestNotFound)
	}
	test.IsActive = false
	uc.cache.Invalidate(ctx, companyDashboardKey(test.CompanyID))
	return test, nil
}

// Submit scores and stores an attempt. Every submission creates a new result.
// A passing result schedules interview qualification; its outcome never
// changes the submission response.
func (uc *TestUsecase) Submit(ctx context.Context, req dto.SubmitTestRequest) (*model.TestResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	test, err := uc.tests.FindByID(ctx, req.TestID)
	if err != nil {
		return nil, notFound(err, ErrTestNotFound)
	}

	userID := strings.TrimSpace(req.UserID)
	if strings.Contains(userID, "@") {
		userID = dto.NormalizeEmail(userID)
	}

	questions := []model.Question(test.Questions)
	result := &model.TestResult{
		JobID:     req.JobID,
		TestID:    test.ID,
		UserID:    userID,
		Score:     scoring.Score(questions, req.Answers),
		Total:     len(questions),
		TimeTaken: req.Seconds(),
		Answers:   datatypes.JSONMap(req.Answers),
	}
	if err := uc.results.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("create test result: %w", err)
	}

	uc.cache.Invalidate(ctx, seekerDashboardKey(result.UserID), companyDashboardKey(test.CompanyID))

	if uc.qualification != nil {
		if _, err := uc.qualification.Trigger(ctx, result); err != nil {
			log.Printf("qualification for result %s: %v", result.ID, err)
		}
	}
	return result, nil
}

// ListPassedByCompany returns one passing result per candidate and test
// across every test the company owns.
func (uc *TestUsecase) ListPassedByCompany(ctx context.Context, companyID string) ([]model.TestResult, error) {
	passed, _, err := uc.passedWithTitles(ctx, companyID)
	return passed, err
}

// ExportPassedByCompany renders ListPassedByCompany as an xlsx workbook.
func (uc *TestUsecase) ExportPassedByCompany(ctx context.Context, companyID string) ([]byte, error) {
	passed, titles, err := uc.passedWithTitles(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return service.PassedCandidatesWorkbook(passed, titles)
}

func (uc *TestUsecase) passedWithTitles(ctx context.Context, companyID string) ([]model.TestResult, map[string]string, error) {
	tests, err := uc.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}

	titles := make(map[string]string, len(tests))
	ids := make([]uuid.UUID, 0, len(tests))
	for _, t := range tests {
		ids = append(ids, t.ID)
		titles[t.ID.String()] = t.Title
	}
	if len(ids) == 0 {
		return []model.TestResult{}, titles, nil
	}

	results, err := uc.results.ListByTestIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("list results: %w", err)
	}
	return BestPassingAttempts(results), titles, nil
}

// GetResult returns a stored result with its pass verdict and, when one was
// scheduled, the state of its interview qualification.
func (uc *TestUsecase) GetResult(ctx context.Context, id string) (*dto.TestResultView, error) {
	result, err := uc.results.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrResultNotFound)
	}

	view := &dto.TestResultView{
		TestResult: *result,
		Percent:    scoring.Percent(result.Score, result.Total),
		Passed:     scoring.Qualifies(result.Score, result.Total),
	}
	if uc.qualification != nil {
		task, err := uc.qualification.ForResult(ctx, result.ID)
		if err != nil {
			return nil, err
		}
		if task != nil {
			view.Qualification = &dto.QualificationView{
				Status:      task.Status,
				Detail:      task.Detail,
				AttemptedAt: task.AttemptedAt,
			}
		}
	}
	return view, nil
}

// BestPassingAttempts keeps passing results only, one per (test, user): the
// highest score, with the earlier attempt winning ties. Input order is kept.
func BestPassingAttempts(results []model.TestResult) []model.TestResult {
	type attemptKey struct {
		test uuid.UUID
		user string
	}
	best := map[attemptKey]int{}
	out := make([]model.TestResult, 0, len(results))
	for _, r := range results {
		if !scoring.Qualifies(r.Score, r.Total) {
			continue
		}
		k := attemptKey{test: r.TestID, user: r.UserID}
		i, seen := best[k]
		if !seen {
			best[k] = len(out)
			out = append(out, r)
			continue
		}
		prev := out[i]
		if r.Score > prev.Score || (r.Score == prev.Score && r.CreatedAt.Before(prev.CreatedAt)) {
			out[i] = r
		}
	}
	return out
}
