package job

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

// Service defines the interface for job operations
type Service interface {
	List(ctx context.Context, filter domain.JobFilter) (*domain.JobPage, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
}

// service implements the Service interface
type service struct {
	repo repository.Job
}

// NewService creates a new job service
func NewService(repo repository.Job) Service {
	return &service{repo: repo}
}

// List returns one page of published jobs matching the filter. The filter is
// normalized before it reaches the store, so out-of-range pagination never
// produces an error, only an empty or clamped page.
func (s *service) List(ctx context.Context, filter domain.JobFilter) (*domain.JobPage, error) {
	log := logger.FromContext(ctx)
	filter = filter.Normalize()

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error(LogMsgListFailed, "error", err)
		return nil, err
	}

	metrics.JobSearches.WithLabelValues(filteredLabel(filter)).Inc()
	metrics.JobsServed.Add(float64(len(items)))

	log.Debug(LogMsgJobsListed,
		"total", total,
		"page", filter.Page,
		"limit", filter.Limit,
		"returned", len(items))

	return &domain.JobPage{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// Get fetches a single job by ID, drafts included.
func (s *service) Get(ctx context.Context, id string) (*domain.Job, error) {
	log := logger.FromContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyJobID)
	}

	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Debug(LogMsgGetFailed, "job_id", id, "error", err)
		return nil, err
	}

	log.Debug(LogMsgJobFetched, "job_id", id, "slug", job.Slug)
	return job, nil
}

// Create validates and persists a new job. Missing optional fields get
// server-side defaults: ID, slug (derived from the title), postedAt, status
// and timestamps. A duplicate slug surfaces as domain.ErrSlugTaken.
func (s *service) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	log := logger.FromContext(ctx)

	if err := validateNewJob(job); err != nil {
		return nil, err
	}

	applyJobDefaults(job)

	if err := s.repo.Create(ctx, job); err != nil {
		log.Error(LogMsgCreateError, "slug", job.Slug, "error", err)
		return nil, err
	}

	metrics.JobsCreated.Inc()
	log.Info(LogMsgJobCreated, "job_id", job.ID, "slug", job.Slug, "status", string(job.Status))
	return job, nil
}

func validateNewJob(job *domain.Job) error {
	job.Title = strings.TrimSpace(job.Title)
	job.Dept = strings.TrimSpace(job.Dept)

	if job.Title == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgTitleRequired)
	}
	if job.Dept == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgDeptRequired)
	}
	return nil
}

func applyJobDefaults(job *domain.Job) {
	now := time.Now().UTC()

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Slug = strings.TrimSpace(job.Slug); job.Slug == "" {
		job.Slug = utils.Slugify(job.Title)
	}
	// Fully non-latin titles slug to nothing; fall back to the ID so the
	// UNIQUE constraint still has something meaningful to hold on to.
	if job.Slug == "" {
		job.Slug = job.ID
	}
	if !domain.ValidStatus(job.Status) {
		job.Status = domain.StatusDraft
	}
	if job.JobType == "" {
		job.JobType = domain.JobTypePermanent
	}
	if job.Lang == "" {
		job.Lang = "ta"
	}
	if job.PostedAt.IsZero() {
		job.PostedAt = now
	}
	if job.QualificationIDs == nil {
		job.QualificationIDs = []string{}
	}
	if job.CategoryIDs == nil {
		job.CategoryIDs = []string{}
	}
	if job.Tags == nil {
		job.Tags = []string{}
	}
	job.CreatedAt = now
	job.UpdatedAt = now
}

func filteredLabel(f domain.JobFilter) string {
	if f.DistrictID != "" || f.QualificationID != "" || f.CategoryID != "" || f.Search != "" {
		return "true"
	}
	return "false"
}
