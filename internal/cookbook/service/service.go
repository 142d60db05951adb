package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"cookbook/internal/cookbook/metrics"
	"cookbook/internal/cookbook/models"
	"cookbook/internal/cookbook/resolver"
	"cookbook/internal/cookbook/store"
	dErrors "cookbook/pkg/domain-errors"
	pstrings "cookbook/pkg/platform/strings"
	"cookbook/pkg/requestcontext"
)

const tracerName = "cookbook/internal/cookbook/service"

// DefaultSummaryCacheTTL bounds how long an unused summary stays cached.
const DefaultSummaryCacheTTL = 5 * time.Minute

type Registry interface {
	Create(ctx context.Context, name string, build func() (*models.Entry, error)) error
	View(ctx context.Context, fn func(r store.Reader) error) error
	Reset(ctx context.Context) error
	Count(ctx context.Context) (models.Counts, error)
}

type Resolver interface {
	Resolve(catalog resolver.Catalog, name string) (*models.Summary, error)
}

// Service implements the cookbook operations on top of a registry.
type Service struct {
	registry Registry
	resolver Resolver
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer

	cacheTTL time.Duration
	cache    *gocache.Cache
	inflight singleflight.Group
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithSummaryCacheTTL sets the summary cache expiration. A value <= 0
// disables caching.
func WithSummaryCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.cacheTTL = ttl
	}
}

// New constructs a Service. A nil resolver gets the default one.
func New(registry Registry, res Resolver, opts ...Option) *Service {
	s := &Service{
		registry: registry,
		resolver: res,
		cacheTTL: DefaultSummaryCacheTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.resolver == nil {
		s.resolver = resolver.New()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	if s.cacheTTL > 0 {
		s.cache = gocache.New(s.cacheTTL, 2*s.cacheTTL)
	}
	return s
}

// CreateEntry validates req and registers the resulting entry. A taken name
// is reported as ErrDuplicateName even when the payload is also invalid.
func (s *Service) CreateEntry(ctx context.Context, req *models.CreateEntryRequest) (err error) {
	req.Normalize()
	ctx, span := s.tracer.Start(ctx, "cookbook.CreateEntry", trace.WithAttributes(
		attribute.String("cookbook.entry.name", req.Name),
		attribute.String("cookbook.entry.type", req.Type),
	))
	defer func() { endSpan(span, err) }()

	var entry *models.Entry
	err = s.registry.Create(ctx, req.Name, func() (*models.Entry, error) {
		built, err := buildEntry(req)
		entry = built
		return built, err
	})
	if err != nil {
		return translate(err)
	}

	s.logger.InfoContext(ctx, "cookbook entry created",
		"request_id", requestcontext.RequestID(ctx),
		"name", entry.Name,
		"kind", entry.Kind,
		"required_items", len(entry.RequiredItems),
	)
	s.metrics.IncrementEntriesCreated(string(entry.Kind))
	return nil
}

func buildEntry(req *models.CreateEntryRequest) (*models.Entry, error) {
	kind, err := models.ParseKind(req.Type)
	if err != nil {
		return nil, err
	}
	switch kind {
	case models.KindIngredient:
		if req.CookTime == nil {
			return nil, fmt.Errorf("%w: cookTime is required", models.ErrInvalidCookTime)
		}
		return models.NewIngredient(req.Name, *req.CookTime)
	default:
		return models.NewRecipe(req.Name, req.RequiredItems)
	}
}

// GetSummary resolves the recipe called name. Results are cached per
// registry version, so any insert or reset invalidates them.
func (s *Service) GetSummary(ctx context.Context, name string) (summary *models.Summary, err error) {
	ctx, span := s.tracer.Start(ctx, "cookbook.GetSummary", trace.WithAttributes(
		attribute.String("cookbook.recipe", name),
	))
	defer func() {
		endSpan(span, err)
		outcome := "ok"
		if err != nil {
			outcome = string(dErrors.CodeOf(err))
		}
		s.metrics.IncrementSummaryOutcome(outcome)
	}()

	if err := ctx.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "request cancelled")
	}

	err = s.registry.View(ctx, func(r store.Reader) error {
		key := fmt.Sprintf("%d/%s", r.Version(), name)
		if cached, ok := s.cachedSummary(key); ok {
			span.SetAttributes(attribute.Bool("cookbook.cache_hit", true))
			summary = cached
			return nil
		}

		v, err, _ := s.inflight.Do(key, func() (any, error) {
			start := time.Now()
			resolved, err := s.resolver.Resolve(r, name)
			s.metrics.ObserveResolve(start)
			if err != nil {
				return nil, err
			}
			if s.cache != nil {
				s.cache.SetDefault(key, resolved)
			}
			return resolved, nil
		})
		if err != nil {
			return err
		}
		summary = cloneSummary(v.(*models.Summary))
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "recipe summary failed",
			"request_id", requestcontext.RequestID(ctx),
			"name", name,
			"error", err,
		)
		return nil, translate(err)
	}
	return summary, nil
}

func (s *Service) cachedSummary(key string) (*models.Summary, bool) {
	if s.cache == nil {
		return nil, false
	}
	v, found := s.cache.Get(key)
	if !found {
		s.metrics.IncrementCacheMiss()
		return nil, false
	}
	summary, ok := v.(*models.Summary)
	if !ok {
		return nil, false
	}
	s.metrics.IncrementCacheHit()
	return cloneSummary(summary), true
}

// Reset clears the registry and the summary cache.
func (s *Service) Reset(ctx context.Context) (err error) {
	ctx, span := s.tracer.Start(ctx, "cookbook.Reset")
	defer func() { endSpan(span, err) }()

	if err := s.registry.Reset(ctx); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to reset cookbook")
	}
	if s.cache != nil {
		s.cache.Flush()
	}
	s.logger.InfoContext(ctx, "cookbook reset",
		"request_id", requestcontext.RequestID(ctx),
	)
	s.metrics.IncrementResets()
	return nil
}

// ParseName normalizes a handwritten recipe name for display.
func (s *Service) ParseName(_ context.Context, raw string) (string, error) {
	name, ok := pstrings.NormalizeDisplayName(raw)
	if !ok {
		return "", dErrors.Wrap(models.ErrInvalidDisplayName, dErrors.CodeValidation, models.ErrInvalidDisplayName.Error())
	}
	return name, nil
}

// Stats reports registry sizes for health checks.
func (s *Service) Stats(ctx context.Context) (models.Counts, error) {
	counts, err := s.registry.Count(ctx)
	if err != nil {
		return models.Counts{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count entries")
	}
	return counts, nil
}

// translate attaches a wire code to a domain error. The original error stays
// in the chain.
func translate(err error) error {
	code := dErrors.CodeInternal
	var kind error
	for _, candidate := range []struct {
		err  error
		code dErrors.Code
	}{
		{models.ErrInvalidVariant, dErrors.CodeBadRequest},
		{models.ErrInvalidName, dErrors.CodeValidation},
		{models.ErrInvalidCookTime, dErrors.CodeValidation},
		{models.ErrInvalidQuantity, dErrors.CodeValidation},
		{models.ErrDuplicateRequiredItem, dErrors.CodeInvalidInput},
		{models.ErrDuplicateName, dErrors.CodeConflict},
		{models.ErrNotFound, dErrors.CodeNotFound},
		{models.ErrNotARecipe, dErrors.CodeInvalidRequest},
		{models.ErrIngredientNotFound, dErrors.CodeInvariantViolation},
		{models.ErrCyclicReference, dErrors.CodeInvariantViolation},
		{models.ErrExpansionLimit, dErrors.CodeInvariantViolation},
		{models.ErrQuantityOverflow, dErrors.CodeInvariantViolation},
	} {
		if errors.Is(err, candidate.err) {
			kind, code = candidate.err, candidate.code
			break
		}
	}
	if kind == nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "cookbook operation failed")
	}
	return dErrors.Wrap(err, code, kind.Error())
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func cloneSummary(s *models.Summary) *models.Summary {
	c := *s
	c.Ingredients = make([]models.IngredientQuantity, len(s.Ingredients))
	copy(c.Ingredients, s.Ingredients)
	return &c
}
