package article_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"article-hub/internal/common/pagination"
	"article-hub/internal/domain/entity"
	"article-hub/internal/repository"
	artUC "article-hub/internal/usecase/article"
)

/* ───────── stubs ───────── */

// stubRepo is a minimal in-memory ArticleRepository.
type stubRepo struct {
	mu     sync.Mutex
	data   map[int64]*entity.Article
	nextID int64
	now    time.Time
	err    error // forced error for every call

	calls int
}

func newStub() *stubRepo {
	return &stubRepo{
		data:   map[int64]*entity.Article{},
		nextID: 1,
		now:    time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (s *stubRepo) tick() time.Time {
	s.now = s.now.Add(time.Minute)
	return s.now
}

func (s *stubRepo) Create(_ context.Context, in repository.NewArticle) (*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	now := s.tick()
	a := &entity.Article{
		ID: s.nextID, Title: in.Title, Content: in.Content, PhotoURL: in.PhotoURL,
		CreatedAt: now, UpdatedAt: now,
	}
	s.nextID++
	s.data[a.ID] = a
	cp := *a
	return &cp, nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	a, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (s *stubRepo) filtered(f repository.DateFilter) []*entity.Article {
	var out []*entity.Article
	for _, a := range s.data {
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

func (s *stubRepo) ListPage(_ context.Context, q repository.PageQuery) ([]*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	all := s.filtered(q.Filter)
	sort.Slice(all, func(i, j int) bool {
		if q.Sort == pagination.SortAsc {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if q.Offset >= len(all) {
		return []*entity.Article{}, nil
	}
	end := q.Offset + q.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[q.Offset:end], nil
}

func (s *stubRepo) Count(_ context.Context, f repository.DateFilter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.filtered(f))), nil
}

func (s *stubRepo) Update(_ context.Context, id int64, p entity.ArticlePatch) (*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	a, ok := s.data[id]
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
	a.UpdatedAt = s.tick()
	cp := *a
	return &cp, nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *stubRepo) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// stubDrafter returns a fixed draft or error.
type stubDrafter struct {
	draft *artUC.Draft
	err   error
	got   artUC.DraftRequest
}

func (d *stubDrafter) Draft(_ context.Context, req artUC.DraftRequest) (*artUC.Draft, error) {
	d.got = req
	return d.draft, d.err
}

func (d *stubDrafter) Name() string { return "stub" }

func strPtr(s string) *string { return &s }
