package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tamilansjob/jobportal/internal/domain"
)

// jobColumns is the canonical column list shared by every job SELECT.
const jobColumns = `id, title, slug, summary, content, vacancies, dept, sector, board,
	job_type, pay_scale, salary_from, salary_to, age_min, age_max, fees,
	selection_process, mode, last_date, posted_at, district_id,
	qualification_ids, category_ids, tags, notification_url, apply_url,
	source_url, status, lang, created_at, updated_at`

// JobRepository implements repository.Job against PostgreSQL.
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

// List returns the filtered page of published jobs plus the total match count.
// The WHERE clause is built once and shared by the COUNT and page queries so
// total always reflects the same predicate the page was sliced from.
func (r *JobRepository) List(ctx context.Context, f domain.JobFilter) ([]domain.Job, int, error) {
	where := []string{"status = $1"}
	args := []any{string(domain.StatusPublished)}

	if f.DistrictID != "" {
		args = append(args, f.DistrictID)
		where = append(where, fmt.Sprintf("district_id = $%d", len(args)))
	}
	if f.QualificationID != "" {
		args = append(args, f.QualificationID)
		where = append(where, fmt.Sprintf("$%d = ANY(qualification_ids)", len(args)))
	}
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		where = append(where, fmt.Sprintf("$%d = ANY(category_ids)", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+escapeLike(f.Search)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR dept ILIKE $%d OR summary ILIKE $%d)", n, n, n))
	}

	clause := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM jobs WHERE "+clause, args...).Scan(&total); err != nil {
		return nil, 0, mapError("count jobs", err)
	}

	args = append(args, f.Limit, f.Offset())
	query := fmt.Sprintf(
		"SELECT %s FROM jobs WHERE %s ORDER BY posted_at DESC, created_at DESC, id LIMIT $%d OFFSET $%d",
		jobColumns, clause, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapError("list jobs", err)
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0, f.Limit)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, mapError("scan job", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError("iterate jobs", err)
	}
	return jobs, total, nil
}

// GetByID fetches one job regardless of status; the detail view is also used
// by authors previewing drafts.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	row := r.db.QueryRow(ctx, "SELECT "+jobColumns+" FROM jobs WHERE id = $1", id)
	job, err := scanJob(row)
	if err != nil {
		return nil, mapError("get job", err)
	}
	return job, nil
}

// Create inserts a fully populated job. A duplicate slug surfaces as
// domain.ErrSlugTaken via the UNIQUE constraint.
func (r *JobRepository) Create(ctx context.Context, j *domain.Job) error {
	_, err := r.db.Exec(ctx, `INSERT INTO jobs (
		id, title, slug, summary, content, vacancies, dept, sector, board,
		job_type, pay_scale, salary_from, salary_to, age_min, age_max, fees,
		selection_process, mode, last_date, posted_at, district_id,
		qualification_ids, category_ids, tags, notification_url, apply_url,
		source_url, status, lang, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31)`,
		j.ID, j.Title, j.Slug, j.Summary, j.Content, j.Vacancies, j.Dept, j.Sector, j.Board,
		string(j.JobType), j.PayScale, j.SalaryFrom, j.SalaryTo, j.AgeMin, j.AgeMax, j.Fees,
		j.SelectionProcess, j.Mode, j.LastDate, j.PostedAt, j.DistrictID,
		j.QualificationIDs, j.CategoryIDs, j.Tags, j.NotificationURL, j.ApplyURL,
		j.SourceURL, string(j.Status), j.Lang, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return mapError("create job", err)
	}
	return nil
}

// scanJob maps one row (in jobColumns order) to a domain.Job.
func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	var jobType, status string
	err := row.Scan(
		&j.ID, &j.Title, &j.Slug, &j.Summary, &j.Content, &j.Vacancies, &j.Dept,
		&j.Sector, &j.Board, &jobType, &j.PayScale, &j.SalaryFrom, &j.SalaryTo,
		&j.AgeMin, &j.AgeMax, &j.Fees, &j.SelectionProcess, &j.Mode, &j.LastDate,
		&j.PostedAt, &j.DistrictID, &j.QualificationIDs, &j.CategoryIDs, &j.Tags,
		&j.NotificationURL, &j.ApplyURL, &j.SourceURL, &status, &j.Lang,
		&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	j.JobType = domain.JobType(jobType)
	j.Status = domain.JobStatus(status)
	if j.QualificationIDs == nil {
		j.QualificationIDs = []string{}
	}
	if j.CategoryIDs == nil {
		j.CategoryIDs = []string{}
	}
	if j.Tags == nil {
		j.Tags = []string{}
	}
	return &j, nil
}

// escapeLike escapes LIKE metacharacters so search terms match literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
