package repository

import (
	"context"

	"github.com/tamilansjob/jobportal/internal/domain"
)

// Job defines the data access interface for job postings.
type Job interface {
	// List returns one page of published jobs matching the filter together
	// with the total match count before slicing.
	List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, int, error)
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	Create(ctx context.Context, job *domain.Job) error
}
