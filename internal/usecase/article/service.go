package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"article-hub/internal/common/pagination"
	"article-hub/internal/domain/entity"
	"article-hub/internal/observability/metrics"
	"article-hub/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title    string
	Content  string
	PhotoURL *string
}

// PaginatedResult represents the result of a paginated query.
// It contains both the data and pagination metadata.
type PaginatedResult struct {
	Data       []*entity.Article
	Pagination pagination.Metadata
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	repo    repository.ArticleRepository
	drafter Drafter
	logger  *slog.Logger
	pageCfg pagination.Config
}

// Option configures a Service.
type Option func(*Service)

// WithPaginationConfig overrides the default page size limits.
func WithPaginationConfig(cfg pagination.Config) Option {
	return func(s *Service) { s.pageCfg = cfg }
}

// NewService wires the article use cases.
// Returns ErrDependencyMissing if repo or drafter is nil. A nil logger falls back to slog.Default().
func NewService(repo repository.ArticleRepository, drafter Drafter, logger *slog.Logger, opts ...Option) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("article service: repository: %w", entity.ErrDependencyMissing)
	}
	if drafter == nil {
		return nil, fmt.Errorf("article service: drafter: %w", entity.ErrDependencyMissing)
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		repo:    repo,
		drafter: drafter,
		logger:  logger,
		pageCfg: pagination.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Create persists a new article.
// Returns a ValidationError listing every blank required field.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	art, err := s.create(ctx, in)
	metrics.RecordArticleOperation("create", outcome(err))
	return art, err
}

func (s *Service) create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	candidate := entity.Article{Title: in.Title, Content: in.Content, PhotoURL: in.PhotoURL}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	art, err := s.repo.Create(ctx, repository.NewArticle{
		Title:    in.Title,
		Content:  in.Content,
		PhotoURL: in.PhotoURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// List returns one page of articles, newest first unless params say otherwise.
// The page query and the count run concurrently; the first failure cancels the other.
// Returns ErrInvalidDateRange when filter has both bounds and From is after To.
func (s *Service) List(ctx context.Context, params pagination.Params, filter repository.DateFilter) (*PaginatedResult, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, entity.ErrInvalidDateRange
	}

	params = params.Normalize(s.pageCfg)
	start := time.Now()

	var (
		articles []*entity.Article
		total    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := s.repo.ListPage(gctx, repository.PageQuery{
			Limit:  params.PageSize,
			Offset: params.Offset(),
			Sort:   params.Sort,
			Filter: filter,
		})
		if err != nil {
			return fmt.Errorf("list articles: %w", err)
		}
		articles = page
		return nil
	})
	g.Go(func() error {
		n, err := s.repo.Count(gctx, filter)
		if err != nil {
			return fmt.Errorf("count articles: %w", err)
		}
		total = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if articles == nil {
		articles = []*entity.Article{}
	}
	meta := pagination.NewMetadata(params, total)

	elapsed := time.Since(start)
	pagination.RecordDuration("list", elapsed.Seconds())
	if filter.IsZero() {
		pagination.UpdateTotalCount(total)
	}
	pagination.LogResponse(s.logger, params, meta, len(articles), elapsed)

	return &PaginatedResult{Data: articles, Pagination: meta}, nil
}

// ListByDateRange lists articles created within [from, to], both inclusive.
// Returns ErrInvalidDateRange before touching the store when from is after to.
func (s *Service) ListByDateRange(ctx context.Context, from, to time.Time, params pagination.Params) (*PaginatedResult, error) {
	if from.After(to) {
		return nil, entity.ErrInvalidDateRange
	}
	return s.List(ctx, params, repository.DateFilter{From: &from, To: &to})
}

// Get retrieves a single article by its ID.
// Returns a NotFoundError if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, invalidID()
	}

	art, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, notFound(id)
	}
	return art, nil
}

// Update applies the fields present in patch.
// An empty patch is rejected without touching the store.
// Returns a NotFoundError if no article has the given ID.
func (s *Service) Update(ctx context.Context, id int64, patch entity.ArticlePatch) (*entity.Article, error) {
	art, err := s.update(ctx, id, patch)
	metrics.RecordArticleOperation("update", outcome(err))
	return art, err
}

func (s *Service) update(ctx context.Context, id int64, patch entity.ArticlePatch) (*entity.Article, error) {
	if id <= 0 {
		return nil, invalidID()
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	art, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	if art == nil {
		return nil, notFound(id)
	}
	return art, nil
}

// Delete removes an article by its ID.
// Returns a NotFoundError when nothing was deleted, so repeated deletes keep failing the same way.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.delete(ctx, id)
	metrics.RecordArticleOperation("delete", outcome(err))
	return err
}

func (s *Service) delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return invalidID()
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if !deleted {
		return notFound(id)
	}
	return nil
}

// Generate asks the drafter for an article and persists it through Create.
// Provider failures and empty drafts surface as *entity.ProviderError; nothing is stored in that case.
func (s *Service) Generate(ctx context.Context, req DraftRequest) (*entity.Article, error) {
	art, err := s.generate(ctx, req)
	metrics.RecordArticleOperation("generate", outcome(err))
	return art, err
}

func (s *Service) generate(ctx context.Context, req DraftRequest) (*entity.Article, error) {
	start := time.Now()
	provider := s.drafter.Name()

	draft, err := s.drafter.Draft(ctx, req)
	if err != nil {
		s.logger.Warn("draft generation failed",
			slog.String("provider", provider),
			slog.String("model", req.Model),
			slog.Any("error", err))
		var perr *entity.ProviderError
		if errors.As(err, &perr) {
			return nil, err
		}
		return nil, &entity.ProviderError{Provider: provider, Err: err}
	}
	if draft == nil {
		return nil, &entity.ProviderError{Provider: provider, Err: errEmptyDraft}
	}
	if err := (&entity.Article{Title: draft.Title, Content: draft.Content}).Validate(); err != nil {
		return nil, &entity.ProviderError{Provider: provider, Err: fmt.Errorf("%w: %v", errEmptyDraft, err)}
	}

	art, err := s.create(ctx, CreateInput{
		Title:    draft.Title,
		Content:  draft.Content,
		PhotoURL: draft.PhotoURL,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("article generated",
		slog.String("provider", provider),
		slog.String("model", req.Model),
		slog.Int64("article_id", art.ID),
		slog.Duration("duration", time.Since(start)))
	return art, nil
}
