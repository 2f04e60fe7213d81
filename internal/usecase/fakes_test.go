package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/fadilmartias/rozgar/internal/repository"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// clock hands out strictly increasing timestamps so ordering is deterministic.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.t.IsZero() {
		c.t = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	}
	c.t = c.t.Add(time.Second)
	return c.t
}

var testClock = &clock{}

func stamp(id *uuid.UUID, created *time.Time) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	if created.IsZero() {
		*created = testClock.next()
	}
}

type fakeTestStore struct {
	mu    sync.Mutex
	items []model.Test
}

func (s *fakeTestStore) Create(_ context.Context, t *model.Test) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&t.ID, &t.CreatedAt)
	s.items = append(s.items, *t)
	return nil
}

func (s *fakeTestStore) FindByID(_ context.Context, id string) (*model.Test, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.items {
		if t.ID.String() == id {
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeTestStore) FindActiveByJob(_ context.Context, jobID string) (*model.Test, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found *model.Test
	for i := range s.items {
		t := s.items[i]
		if t.JobID == jobID && t.IsActive && (found == nil || t.CreatedAt.After(found.CreatedAt)) {
			found = &t
		}
	}
	if found == nil {
		return nil, repository.ErrNotFound
	}
	return found, nil
}

func (s *fakeTestStore) ListByCompany(_ context.Context, companyID string) ([]model.Test, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Test
	for _, t := range s.items {
		if t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeTestStore) Deactivate(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].IsActive = false
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeResultStore struct {
	mu    sync.Mutex
	items []model.TestResult
}

func (s *fakeResultStore) Create(_ context.Context, r *model.TestResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&r.ID, &r.CreatedAt)
	s.items = append(s.items, *r)
	return nil
}

func (s *fakeResultStore) FindByID(_ context.Context, id string) (*model.TestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.items {
		if r.ID.String() == id {
			return &r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeResultStore) ListByTestIDs(_ context.Context, ids []uuid.UUID) ([]model.TestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := map[uuid.UUID]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []model.TestResult
	for _, r := range s.items {
		if want[r.TestID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeResultStore) ListByUser(_ context.Context, userID string) ([]model.TestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.TestResult
	for _, r := range s.items {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeQualificationStore struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.QualificationTask
}

func newFakeQualificationStore() *fakeQualificationStore {
	return &fakeQualificationStore{items: map[uuid.UUID]*model.QualificationTask{}}
}

func (s *fakeQualificationStore) Create(_ context.Context, t *model.QualificationTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.ResultID == t.ResultID {
			return repository.ErrDuplicate
		}
	}
	stamp(&t.ID, &t.CreatedAt)
	cp := *t
	s.items[t.ID] = &cp
	return nil
}

func (s *fakeQualificationStore) FindByID(_ context.Context, id string) (*model.QualificationTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	t, ok := s.items[parsed]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *fakeQualificationStore) FindByResult(_ context.Context, resultID uuid.UUID) (*model.QualificationTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.items {
		if t.ResultID == resultID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeQualificationStore) Claim(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.items[id]
	if !ok || t.Status != model.QualificationPending {
		return false, nil
	}
	now := testClock.next()
	t.Status = model.QualificationRunning
	t.AttemptedAt = &now
	return true, nil
}

func (s *fakeQualificationStore) Finish(_ context.Context, id uuid.UUID, status model.QualificationStatus, detail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.Status = status
	t.Detail = detail
	return nil
}

func (s *fakeQualificationStore) all() []model.QualificationTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.QualificationTask
	for _, t := range s.items {
		out = append(out, *t)
	}
	return out
}

type fakeInterviewStore struct {
	mu      sync.Mutex
	items   []model.Interview
	updates int
}

func (s *fakeInterviewStore) Create(_ context.Context, i *model.Interview) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&i.ID, &i.CreatedAt)
	s.items = append(s.items, *i)
	return nil
}

func (s *fakeInterviewStore) Update(_ context.Context, i *model.Interview) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.items {
		if s.items[k].ID == i.ID {
			s.items[k] = *i
			s.updates++
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeInterviewStore) FindByJob(_ context.Context, jobID string) (*model.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, i := range s.items {
		if i.JobID == jobID {
			return &i, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeInterviewStore) filter(match func(model.Interview) bool) []model.Interview {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Interview
	for _, i := range s.items {
		if match(i) {
			out = append(out, i)
		}
	}
	return out
}

func (s *fakeInterviewStore) ListByCandidate(_ context.Context, email string) ([]model.Interview, error) {
	return s.filter(func(i model.Interview) bool { return deref(i.CandidateEmail) == email }), nil
}

func (s *fakeInterviewStore) ListByCompany(_ context.Context, companyID string) ([]model.Interview, error) {
	return s.filter(func(i model.Interview) bool { return i.CompanyID == companyID }), nil
}

func (s *fakeInterviewStore) ListAcceptedBy(_ context.Context, identity string) ([]model.Interview, error) {
	return s.filter(func(i model.Interview) bool {
		return deref(i.AcceptedByUserID) == identity || deref(i.AcceptedByEmail) == identity || deref(i.CandidateEmail) == identity
	}), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type fakeApplicationStore struct {
	mu    sync.Mutex
	items []model.Application
}

func (s *fakeApplicationStore) Create(_ context.Context, a *model.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.JobID == a.JobID && existing.ApplicantEmail == a.ApplicantEmail {
			return repository.ErrDuplicate
		}
	}
	stamp(&a.ID, &a.CreatedAt)
	s.items = append(s.items, *a)
	return nil
}

func (s *fakeApplicationStore) FindByID(_ context.Context, id string) (*model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.items {
		if a.ID.String() == id {
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeApplicationStore) ListByEmail(_ context.Context, email string) ([]model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Application
	for _, a := range s.items {
		if a.ApplicantEmail == email {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *fakeApplicationStore) ListByJobs(_ context.Context, jobIDs []string) ([]model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := map[string]bool{}
	for _, id := range jobIDs {
		want[id] = true
	}
	var out []model.Application
	for _, a := range s.items {
		if want[a.JobID] {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *fakeApplicationStore) SetResumeText(_ context.Context, app *model.Application, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	app.ResumeText = text
	for i := range s.items {
		if s.items[i].ID == app.ID {
			s.items[i].ResumeText = text
		}
	}
	return nil
}

type fakeJobStore struct {
	mu         sync.Mutex
	items      []model.Job
	embeddings map[uuid.UUID]pgvector.Vector
	embedded   chan uuid.UUID
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{embeddings: map[uuid.UUID]pgvector.Vector{}, embedded: make(chan uuid.UUID, 8)}
}

func (s *fakeJobStore) Create(_ context.Context, j *model.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&j.ID, &j.CreatedAt)
	s.items = append(s.items, *j)
	return nil
}

func (s *fakeJobStore) FindByID(_ context.Context, id string) (*model.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.items {
		if j.ID.String() == id {
			return &j, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeJobStore) ListJobs(_ context.Context, limit, offset int) ([]model.Job, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sorted := append([]model.Job(nil), s.items...)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].CreatedAt.After(sorted[b].CreatedAt) })
	total := int64(len(sorted))
	if offset >= len(sorted) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], total, nil
}

func (s *fakeJobStore) SearchJobs(_ context.Context, _ pgvector.Vector, topK int) ([]model.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Job
	for _, j := range s.items {
		if _, ok := s.embeddings[j.ID]; ok && len(out) < topK {
			out = append(out, j)
		}
	}
	return out, nil
}

func (s *fakeJobStore) UpdateEmbedding(_ context.Context, id uuid.UUID, v pgvector.Vector) error {
	s.mu.Lock()
	s.embeddings[id] = v
	s.mu.Unlock()
	s.embedded <- id
	return nil
}

type fakeUserStore struct {
	mu    sync.Mutex
	items []model.User
}

func (s *fakeUserStore) Create(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	stamp(&u.ID, &u.CreatedAt)
	s.items = append(s.items, *u)
	return nil
}

func (s *fakeUserStore) Update(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == u.ID {
			s.items[i] = *u
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeUserStore) find(match func(model.User) bool) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.items {
		if match(u) {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*model.User, error) {
	return s.find(func(u model.User) bool { return u.ID.String() == id })
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return s.find(func(u model.User) bool { return u.Email == email })
}

func (s *fakeUserStore) FindByGoogleID(_ context.Context, googleID string) (*model.User, error) {
	return s.find(func(u model.User) bool { return deref(u.GoogleID) == googleID })
}

type fakeGenerator struct {
	name    string
	content string
	err     error
	calls   int
}

func (g *fakeGenerator) Name() string { return g.name }

func (g *fakeGenerator) GenerateQuestions(context.Context, string) (string, error) {
	g.calls++
	return g.content, g.err
}

type fakeEmbedder struct {
	err error
}

func (e *fakeEmbedder) GenerateEmbedding(context.Context, string) ([]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	return make([]float32, model.EmbeddingDimensions), nil
}

// syncDispatcher runs tasks inline so tests can assert on the outcome.
type syncDispatcher struct {
	handle func(ctx context.Context, id string) error
	ids    []string
	err    error
}

func (d *syncDispatcher) Dispatch(ctx context.Context, id string) error {
	d.ids = append(d.ids, id)
	if d.err != nil {
		return d.err
	}
	if d.handle != nil {
		return d.handle(ctx, id)
	}
	return nil
}

type memCache struct {
	mu          sync.Mutex
	data        map[string][]byte
	versions    map[string]int64
	invalidated []string
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, versions: map[string]int64{}}
}

func (c *memCache) Version(_ context.Context, key string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions[key]
}

func (c *memCache) Get(_ context.Context, key string, dst any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (c *memCache) Set(_ context.Context, key string, v any, version int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.versions[key] != version {
		return
	}
	raw, _ := json.Marshal(v)
	c.data[key] = raw
}

func (c *memCache) Invalidate(_ context.Context, keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
		c.versions[k]++
		c.invalidated = append(c.invalidated, k)
	}
}
