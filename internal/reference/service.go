package reference

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tamilansjob/jobportal/internal/domain"
	"github.com/tamilansjob/jobportal/internal/logger"
	"github.com/tamilansjob/jobportal/internal/metrics"
	"github.com/tamilansjob/jobportal/internal/repository"
	"github.com/tamilansjob/jobportal/internal/utils"
)

// Service defines the interface for reference data operations
type Service interface {
	ListDistricts(ctx context.Context) ([]domain.District, error)
	CreateDistrict(ctx context.Context, d *domain.District) (*domain.District, error)
	ListQualifications(ctx context.Context) ([]domain.Qualification, error)
	CreateQualification(ctx context.Context, q *domain.Qualification) (*domain.Qualification, error)
	ListCategories(ctx context.Context, sector string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Seed(ctx context.Context) (*domain.SeedCounts, error)
}

// service implements the Service interface
type service struct {
	repo   repository.Reference
	seeder repository.Seeder
	cache  *listCache
}

// NewService creates a new reference data service
func NewService(repo repository.Reference, seeder repository.Seeder) Service {
	return &service{
		repo:   repo,
		seeder: seeder,
		cache:  newListCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

func (s *service) ListDistricts(ctx context.Context) ([]domain.District, error) {
	if items, ok := s.cache.getDistricts(); ok {
		metrics.ReferenceCacheHits.WithLabelValues(KindDistrict).Inc()
		return items, nil
	}

	items, err := s.repo.ListDistricts(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgListError, "kind", KindDistrict, "error", err)
		return nil, err
	}
	s.cache.setDistricts(items)
	return items, nil
}

func (s *service) CreateDistrict(ctx context.Context, d *domain.District) (*domain.District, error) {
	if err := normalizeNamed(&d.ID, &d.NameEN, &d.Slug); err != nil {
		return nil, err
	}
	d.CreatedAt = time.Now().UTC()

	if err := s.repo.CreateDistrict(ctx, d); err != nil {
		logger.FromContext(ctx).Error(LogMsgCreateError, "kind", KindDistrict, "slug", d.Slug, "error", err)
		return nil, err
	}

	s.cache.clear()
	metrics.ReferenceCreated.WithLabelValues(KindDistrict).Inc()
	logger.FromContext(ctx).Info(LogMsgCreated, "kind", KindDistrict, "id", d.ID, "slug", d.Slug)
	return d, nil
}

func (s *service) ListQualifications(ctx context.Context) ([]domain.Qualification, error) {
	if items, ok := s.cache.getQualifications(); ok {
		metrics.ReferenceCacheHits.WithLabelValues(KindQualification).Inc()
		return items, nil
	}

	items, err := s.repo.ListQualifications(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgListError, "kind", KindQualification, "error", err)
		return nil, err
	}
	s.cache.setQualifications(items)
	return items, nil
}

func (s *service) CreateQualification(ctx context.Context, q *domain.Qualification) (*domain.Qualification, error) {
	if err := normalizeNamed(&q.ID, &q.NameEN, &q.Slug); err != nil {
		return nil, err
	}
	q.CreatedAt = time.Now().UTC()

	if err := s.repo.CreateQualification(ctx, q); err != nil {
		logger.FromContext(ctx).Error(LogMsgCreateError, "kind", KindQualification, "slug", q.Slug, "error", err)
		return nil, err
	}

	s.cache.clear()
	metrics.ReferenceCreated.WithLabelValues(KindQualification).Inc()
	logger.FromContext(ctx).Info(LogMsgCreated, "kind", KindQualification, "id", q.ID, "slug", q.Slug)
	return q, nil
}

func (s *service) ListCategories(ctx context.Context, sector string) ([]domain.Category, error) {
	sector = strings.TrimSpace(sector)

	if items, ok := s.cache.getCategories(sector); ok {
		metrics.ReferenceCacheHits.WithLabelValues(KindCategory).Inc()
		return items, nil
	}

	items, err := s.repo.ListCategories(ctx, sector)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgListError, "kind", KindCategory, "error", err)
		return nil, err
	}
	s.cache.setCategories(sector, items)
	return items, nil
}

func (s *service) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	if err := normalizeNamed(&c.ID, &c.NameEN, &c.Slug); err != nil {
		return nil, err
	}
	c.Sector = strings.TrimSpace(c.Sector)
	c.CreatedAt = time.Now().UTC()

	if err := s.repo.CreateCategory(ctx, c); err != nil {
		logger.FromContext(ctx).Error(LogMsgCreateError, "kind", KindCategory, "slug", c.Slug, "error", err)
		return nil, err
	}

	s.cache.clear()
	metrics.ReferenceCreated.WithLabelValues(KindCategory).Inc()
	logger.FromContext(ctx).Info(LogMsgCreated, "kind", KindCategory, "id", c.ID, "slug", c.Slug)
	return c, nil
}

// Seed loads the sample data set and drops every cached list so the new rows
// are immediately visible.
func (s *service) Seed(ctx context.Context) (*domain.SeedCounts, error) {
	counts, err := s.seeder.Seed(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgSeedError, "error", err)
		return nil, err
	}

	s.cache.clear()
	metrics.SeedRuns.Inc()
	logger.FromContext(ctx).Info(LogMsgSeeded,
		"districts", counts.Districts,
		"qualifications", counts.Qualifications,
		"categories", counts.Categories,
		"jobs", counts.Jobs)
	return counts, nil
}

// normalizeNamed applies the shared create defaults: trimmed required English
// name, generated UUID when the ID is absent, and a slug derived from the
// name when none was supplied.
func normalizeNamed(id, nameEN, slug *string) error {
	*nameEN = strings.TrimSpace(*nameEN)
	if *nameEN == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	}
	if *id == "" {
		*id = uuid.NewString()
	}
	if *slug = strings.TrimSpace(*slug); *slug == "" {
		*slug = utils.Slugify(*nameEN)
	}
	if *slug == "" {
		*slug = *id
	}
	return nil
}
