package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamilansjob/jobportal/internal/config"
	"github.com/tamilansjob/jobportal/internal/domain"
)

// stubPool satisfies database.Pool without a live database
type stubPool struct{}

func (stubPool) Ping(ctx context.Context) error { return nil }
func (stubPool) Close()                         {}

// stubJobService serves a fixed page
type stubJobService struct{}

func (stubJobService) List(ctx context.Context, f domain.JobFilter) (*domain.JobPage, error) {
	return &domain.JobPage{Items: []domain.Job{}, Total: 0, Page: f.Page, Limit: f.Limit}, nil
}

func (stubJobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return nil, domain.ErrNotFound
}

func (stubJobService) Create(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	return j, nil
}

// stubReferenceService serves empty lists
type stubReferenceService struct{}

func (stubReferenceService) ListDistricts(ctx context.Context) ([]domain.District, error) {
	return []domain.District{}, nil
}

func (stubReferenceService) CreateDistrict(ctx context.Context, d *domain.District) (*domain.District, error) {
	return d, nil
}

func (stubReferenceService) ListQualifications(ctx context.Context) ([]domain.Qualification, error) {
	return []domain.Qualification{}, nil
}

func (stubReferenceService) CreateQualification(ctx context.Context, q *domain.Qualification) (*domain.Qualification, error) {
	return q, nil
}

func (stubReferenceService) ListCategories(ctx context.Context, sector string) ([]domain.Category, error) {
	return []domain.Category{}, nil
}

func (stubReferenceService) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	return c, nil
}

func (stubReferenceService) Seed(ctx context.Context) (*domain.SeedCounts, error) {
	return &domain.SeedCounts{}, nil
}

func newTestServer() *Server {
	cfg := &config.Config{Port: 0, AllowedOrigins: []string{"*"}}
	return NewServer(cfg, stubPool{}, stubJobService{}, stubReferenceService{})
}

func TestRoutesAreWired(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/healthz", http.StatusOK},
		{"GET", "/readyz", http.StatusOK},
		{"GET", "/version", http.StatusOK},
		{"GET", "/metrics", http.StatusOK},
		{"GET", "/api", http.StatusOK},
		{"GET", "/api/jobs", http.StatusOK},
		{"GET", "/api/jobs/missing", http.StatusNotFound},
		{"GET", "/api/districts", http.StatusOK},
		{"GET", "/api/qualifications", http.StatusOK},
		{"GET", "/api/categories", http.StatusOK},
		{"POST", "/api/seed", http.StatusOK},
		{"GET", "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			srv.httpServer.Handler.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestSecurityHeadersApplied(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/api/jobs", nil)
	w := httptest.NewRecorder()

	srv.httpServer.Handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentTypeOptions))
	assert.Equal(t, HeaderValueSameOrigin, w.Header().Get(HeaderFrameOptions))
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("OPTIONS", "/api/jobs", nil)
	req.Header.Set("Origin", "https://tamilansjob.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()

	srv.httpServer.Handler.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
