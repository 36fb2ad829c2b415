package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tamilansjob/jobportal/internal/database"
	"github.com/tamilansjob/jobportal/internal/domain"
)

// Fixed seed identifiers used by the assertions below
const (
	chennaiID  = "2f6d2a1e-54b7-4c29-9a63-0d7f3f1c9b01"
	tenthID    = "7e2a9c4d-3b16-4d58-9f07-2c81e5a6d910"
	tnpscCatID = "4f9b7d2e-2c83-4e85-b670-3d58f6c9d120"
	tnpscJobID = "f5a8d2c6-8c49-4e21-b036-9d14f2c5d730"
)

func TestRepositories_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start Postgres container
	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()

	if pgContainer == nil {
		if err != nil {
			t.Fatalf("failed to start postgres container: %v", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %v", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(ctx, database.PoolOptions{
		ConnString:      connStr,
		MaxConns:        5,
		MaxConnIdleTime: time.Minute,
		MaxConnLifetime: 5 * time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := applyMigrations(ctx, pool, "../../../migrations"); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	jobRepo := NewJobRepository(pool)
	refRepo := NewReferenceRepository(pool)
	seedRepo := NewSeedRepository(pool)

	t.Run("Seed is idempotent", func(t *testing.T) {
		first, err := seedRepo.Seed(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, first.Districts)
		assert.Equal(t, 7, first.Qualifications)
		assert.Equal(t, 6, first.Categories)
		assert.Equal(t, 2, first.Jobs)

		second, err := seedRepo.Seed(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		districts, err := refRepo.ListDistricts(ctx)
		require.NoError(t, err)
		assert.Len(t, districts, 6)
	})

	t.Run("List returns published jobs newest first", func(t *testing.T) {
		jobs, total, err := jobRepo.List(ctx, domain.JobFilter{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, jobs, 2)
		assert.Equal(t, tnpscJobID, jobs[0].ID, "newest posting comes first")
	})

	t.Run("List filters by district, qualification and category", func(t *testing.T) {
		jobs, total, err := jobRepo.List(ctx, domain.JobFilter{DistrictID: chennaiID, Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, jobs, 1)
		assert.Equal(t, tnpscJobID, jobs[0].ID)

		jobs, total, err = jobRepo.List(ctx, domain.JobFilter{QualificationID: tenthID, Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, jobs, 1)

		_, total, err = jobRepo.List(ctx, domain.JobFilter{CategoryID: tnpscCatID, Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("List search matches title dept and summary", func(t *testing.T) {
		jobs, total, err := jobRepo.List(ctx, domain.JobFilter{Search: "teacher", Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, jobs, 1)
		assert.Contains(t, jobs[0].Title, "Teacher")
	})

	t.Run("List unknown filter id matches nothing", func(t *testing.T) {
		jobs, total, err := jobRepo.List(ctx, domain.JobFilter{DistrictID: uuid.NewString(), Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, jobs)
	})

	t.Run("List pagination slices under a stable total", func(t *testing.T) {
		jobs, total, err := jobRepo.List(ctx, domain.JobFilter{Page: 2, Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, jobs, 1)

		jobs, total, err = jobRepo.List(ctx, domain.JobFilter{Page: 5, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Empty(t, jobs)
	})

	t.Run("GetByID round trip", func(t *testing.T) {
		job, err := jobRepo.GetByID(ctx, tnpscJobID)
		require.NoError(t, err)
		assert.Equal(t, "tnpsc-group-4-ccse-iv-recruitment-2025", job.Slug)
		assert.Equal(t, domain.StatusPublished, job.Status)
		assert.NotEmpty(t, job.QualificationIDs)
	})

	t.Run("GetByID unknown and malformed ids return not found", func(t *testing.T) {
		_, err := jobRepo.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = jobRepo.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Create enforces unique slug", func(t *testing.T) {
		now := time.Now().UTC()
		job := &domain.Job{
			ID:               uuid.NewString(),
			Title:            "Office Assistant",
			Slug:             "office-assistant-2025",
			Dept:             "District Court",
			JobType:          domain.JobTypePermanent,
			Status:           domain.StatusDraft,
			PostedAt:         now,
			QualificationIDs: []string{},
			CategoryIDs:      []string{},
			Tags:             []string{},
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		require.NoError(t, jobRepo.Create(ctx, job))

		dup := *job
		dup.ID = uuid.NewString()
		assert.ErrorIs(t, jobRepo.Create(ctx, &dup), domain.ErrSlugTaken)

		// Draft stays invisible on the public listing
		_, total, err := jobRepo.List(ctx, domain.JobFilter{Search: "Office Assistant", Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})

	t.Run("Qualifications are ordered by rank", func(t *testing.T) {
		quals, err := refRepo.ListQualifications(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, quals)
		assert.Equal(t, "10th", quals[0].NameEN)
		for i := 1; i < len(quals); i++ {
			assert.GreaterOrEqual(t, quals[i].Rank, quals[i-1].Rank)
		}
	})

	t.Run("Categories filter by sector", func(t *testing.T) {
		central, err := refRepo.ListCategories(ctx, "central")
		require.NoError(t, err)
		require.Len(t, central, 1)
		assert.Equal(t, "Banking", central[0].NameEN)
	})
}

func applyMigrations(ctx context.Context, pool *pgxpool.Pool, migrationsDir string) error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to read migrations dir: %w", err)
	}

	var migrationFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			migrationFiles = append(migrationFiles, filepath.Join(migrationsDir, entry.Name()))
		}
	}
	sort.Strings(migrationFiles)

	for _, file := range migrationFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		// Strip the goose Down section; only the Up half applies here
		contentStr := string(content)
		if downIdx := strings.Index(contentStr, "-- +goose Down"); downIdx != -1 {
			contentStr = contentStr[:downIdx]
		}

		if _, err := pool.Exec(ctx, contentStr); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}
