package article_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"article-hub/internal/common/pagination"
	"article-hub/internal/domain/entity"
	"article-hub/internal/handler/http/article"
	"article-hub/internal/infra/drafter"
	"article-hub/internal/repository"
	artUC "article-hub/internal/usecase/article"
)

/* ───────── in-memory repository ───────── */

type memRepo struct {
	mu     sync.Mutex
	data   map[int64]*entity.Article
	nextID int64
	now    time.Time
	err    error

	calls int
}

func newMemRepo() *memRepo {
	return &memRepo{
		data:   map[int64]*entity.Article{},
		nextID: 1,
		now:    time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (m *memRepo) tick() time.Time {
	m.now = m.now.Add(time.Hour)
	return m.now
}

// seed inserts an article created at the given time.
func (m *memRepo) seed(title string, createdAt time.Time) *entity.Article {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := &entity.Article{ID: m.nextID, Title: title, Content: title + " body", CreatedAt: createdAt, UpdatedAt: createdAt}
	m.nextID++
	m.data[a.ID] = a
	return a
}

func (m *memRepo) Create(_ context.Context, in repository.NewArticle) (*entity.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	now := m.tick()
	a := &entity.Article{ID: m.nextID, Title: in.Title, Content: in.Content, PhotoURL: in.PhotoURL, CreatedAt: now, UpdatedAt: now}
	m.nextID++
	m.data[a.ID] = a
	cp := *a
	return &cp, nil
}

func (m *memRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	a, ok := m.data[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *memRepo) filtered(f repository.DateFilter) []*entity.Article {
	var out []*entity.Article
	for _, a := range m.data {
		if f.From != nil && a.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && a.CreatedAt.After(*f.To) {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out
}

func (m *memRepo) ListPage(_ context.Context, q repository.PageQuery) ([]*entity.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	all := m.filtered(q.Filter)
	sort.Slice(all, func(i, j int) bool {
		if q.Sort == pagination.SortAsc {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if q.Offset >= len(all) {
		return []*entity.Article{}, nil
	}
	return all[q.Offset:min(q.Offset+q.Limit, len(all))], nil
}

func (m *memRepo) Count(_ context.Context, f repository.DateFilter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.filtered(f))), nil
}

func (m *memRepo) Update(_ context.Context, id int64, p entity.ArticlePatch) (*entity.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	a, ok := m.data[id]
	if !ok {
		return nil, nil
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.PhotoURL.Set {
		a.PhotoURL = p.PhotoURL.Value
	}
	a.UpdatedAt = m.tick()
	cp := *a
	return &cp, nil
}

func (m *memRepo) Delete(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.data[id]; !ok {
		return false, nil
	}
	delete(m.data, id)
	return true, nil
}

func (m *memRepo) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

/* ───────── drafters ───────── */

type failingDrafter struct{ err error }

func (d failingDrafter) Draft(context.Context, artUC.DraftRequest) (*artUC.Draft, error) {
	return nil, d.err
}

func (failingDrafter) Name() string { return "failing" }

/* ───────── server ───────── */

type testServer struct {
	handler http.Handler
	repo    *memRepo
}

func newTestServer(t *testing.T, d artUC.Drafter) *testServer {
	t.Helper()
	if d == nil {
		d = drafter.NewTemplate()
	}
	repo := newMemRepo()
	svc, err := artUC.NewService(repo, d, nil)
	require.NoError(t, err)

	mux := http.NewServeMux()
	article.Register(mux, svc, pagination.DefaultConfig(), nil)
	return &testServer{handler: mux, repo: repo}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

type errorBody struct {
	Error   string                  `json:"error"`
	Details []entity.FieldViolation `json:"details"`
}

type pageBody struct {
	Data       []article.DTO       `json:"data"`
	Pagination pagination.Metadata `json:"pagination"`
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
