package repository

import (
	"context"

	"github.com/tamilansjob/jobportal/internal/domain"
)

// Reference defines the data access interface for the lookup collections.
type Reference interface {
	ListDistricts(ctx context.Context) ([]domain.District, error)
	CreateDistrict(ctx context.Context, d *domain.District) error

	ListQualifications(ctx context.Context) ([]domain.Qualification, error)
	CreateQualification(ctx context.Context, q *domain.Qualification) error

	// ListCategories optionally filters by sector; empty sector lists all.
	ListCategories(ctx context.Context, sector string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) error
}

// Seeder populates the store with the sample data set.
type Seeder interface {
	Seed(ctx context.Context) (*domain.SeedCounts, error)
}
