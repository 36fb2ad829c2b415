package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tamilansjob/jobportal/internal/domain"
)

// ReferenceRepository implements repository.Reference against PostgreSQL.
type ReferenceRepository struct {
	db *pgxpool.Pool
}

// NewReferenceRepository creates a new reference data repository.
func NewReferenceRepository(db *pgxpool.Pool) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) ListDistricts(ctx context.Context) ([]domain.District, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name_en, name_ta, slug, created_at FROM districts ORDER BY name_en")
	if err != nil {
		return nil, mapError("list districts", err)
	}
	defer rows.Close()

	items := make([]domain.District, 0)
	for rows.Next() {
		var d domain.District
		if err := rows.Scan(&d.ID, &d.NameEN, &d.NameTA, &d.Slug, &d.CreatedAt); err != nil {
			return nil, mapError("scan district", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("iterate districts", err)
	}
	return items, nil
}

func (r *ReferenceRepository) CreateDistrict(ctx context.Context, d *domain.District) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO districts (id, name_en, name_ta, slug, created_at) VALUES ($1, $2, $3, $4, $5)",
		d.ID, d.NameEN, d.NameTA, d.Slug, d.CreatedAt)
	if err != nil {
		return mapError("create district", err)
	}
	return nil
}

// ListQualifications orders by rank so clients render education levels from
// lowest to highest.
func (r *ReferenceRepository) ListQualifications(ctx context.Context) ([]domain.Qualification, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name_en, name_ta, slug, rank, created_at FROM qualifications ORDER BY rank, name_en")
	if err != nil {
		return nil, mapError("list qualifications", err)
	}
	defer rows.Close()

	items := make([]domain.Qualification, 0)
	for rows.Next() {
		var q domain.Qualification
		if err := rows.Scan(&q.ID, &q.NameEN, &q.NameTA, &q.Slug, &q.Rank, &q.CreatedAt); err != nil {
			return nil, mapError("scan qualification", err)
		}
		items = append(items, q)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("iterate qualifications", err)
	}
	return items, nil
}

func (r *ReferenceRepository) CreateQualification(ctx context.Context, q *domain.Qualification) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO qualifications (id, name_en, name_ta, slug, rank, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		q.ID, q.NameEN, q.NameTA, q.Slug, q.Rank, q.CreatedAt)
	if err != nil {
		return mapError("create qualification", err)
	}
	return nil
}

func (r *ReferenceRepository) ListCategories(ctx context.Context, sector string) ([]domain.Category, error) {
	query := "SELECT id, name_en, name_ta, slug, sector, created_at FROM categories"
	args := []any{}
	if sector != "" {
		query += " WHERE sector = $1"
		args = append(args, sector)
	}
	query += " ORDER BY name_en"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list categories", err)
	}
	defer rows.Close()

	items := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.NameEN, &c.NameTA, &c.Slug, &c.Sector, &c.CreatedAt); err != nil {
			return nil, mapError("scan category", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("iterate categories", err)
	}
	return items, nil
}

func (r *ReferenceRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO categories (id, name_en, name_ta, slug, sector, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		c.ID, c.NameEN, c.NameTA, c.Slug, c.Sector, c.CreatedAt)
	if err != nil {
		return mapError("create category", err)
	}
	return nil
}
