package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tamilansjob/jobportal/internal/domain"
)

// MockReferenceService mocks the reference.Service interface
type MockReferenceService struct {
	mock.Mock
}

func (m *MockReferenceService) ListDistricts(ctx context.Context) ([]domain.District, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.District), args.Error(1)
}

func (m *MockReferenceService) CreateDistrict(ctx context.Context, d *domain.District) (*domain.District, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.District), args.Error(1)
}

func (m *MockReferenceService) ListQualifications(ctx context.Context) ([]domain.Qualification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Qualification), args.Error(1)
}

func (m *MockReferenceService) CreateQualification(ctx context.Context, q *domain.Qualification) (*domain.Qualification, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Qualification), args.Error(1)
}

func (m *MockReferenceService) ListCategories(ctx context.Context, sector string) ([]domain.Category, error) {
	args := m.Called(ctx, sector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockReferenceService) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockReferenceService) Seed(ctx context.Context) (*domain.SeedCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeedCounts), args.Error(1)
}

func TestHandleListDistricts(t *testing.T) {
	t.Run("returns bare array", func(t *testing.T) {
		svc := &MockReferenceService{}
		svc.On("ListDistricts", mock.Anything).Return([]domain.District{
			{ID: "d1", NameEN: "Chennai", Slug: "chennai"},
			{ID: "d2", NameEN: "Madurai", Slug: "madurai"},
		}, nil)

		req := httptest.NewRequest("GET", "/api/districts", nil)
		w := httptest.NewRecorder()

		HandleListDistricts(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Body.String(), "["))
		assert.Contains(t, w.Body.String(), `"Chennai"`)
		svc.AssertExpectations(t)
	})

	t.Run("empty list stays an array", func(t *testing.T) {
		svc := &MockReferenceService{}
		svc.On("ListDistricts", mock.Anything).Return([]domain.District{}, nil)

		req := httptest.NewRequest("GET", "/api/districts", nil)
		w := httptest.NewRecorder()

		HandleListDistricts(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})
}

func TestHandleCreateDistrict(t *testing.T) {
	t.Run("creates district and returns 201", func(t *testing.T) {
		svc := &MockReferenceService{}
		svc.On("CreateDistrict", mock.Anything, mock.MatchedBy(func(d *domain.District) bool {
			return d.NameEN == "Erode"
		})).Return(&domain.District{ID: "new-id", NameEN: "Erode", Slug: "erode"}, nil)

		body := `{"name_en":"Erode","name_ta":"ஈரோடு"}`
		req := httptest.NewRequest("POST", "/api/districts", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleCreateDistrict(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"erode"`)
		svc.AssertExpectations(t)
	})

	t.Run("missing name fails validation", func(t *testing.T) {
		svc := &MockReferenceService{}

		req := httptest.NewRequest("POST", "/api/districts", strings.NewReader(`{"name_ta":"ஈரோடு"}`))
		w := httptest.NewRecorder()

		HandleCreateDistrict(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"name_en"`)
		svc.AssertNotCalled(t, "CreateDistrict")
	})

	t.Run("uppercase slug fails validation", func(t *testing.T) {
		svc := &MockReferenceService{}

		body := `{"name_en":"Erode","slug":"Erode"}`
		req := httptest.NewRequest("POST", "/api/districts", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleCreateDistrict(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate slug returns 409", func(t *testing.T) {
		svc := &MockReferenceService{}
		svc.On("CreateDistrict", mock.Anything, mock.Anything).Return(nil, domain.ErrSlugTaken)

		body := `{"name_en":"Chennai"}`
		req := httptest.NewRequest("POST", "/api/districts", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleCreateDistrict(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandleListQualifications(t *testing.T) {
	svc := &MockReferenceService{}
	svc.On("ListQualifications", mock.Anything).Return([]domain.Qualification{
		{ID: "q1", NameEN: "10th", Slug: "10th", Rank: 1},
		{ID: "q2", NameEN: "Diploma", Slug: "diploma", Rank: 4},
	}, nil)

	req := httptest.NewRequest("GET", "/api/qualifications", nil)
	w := httptest.NewRecorder()

	HandleListQualifications(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"order":1`)
	svc.AssertExpectations(t)
}

func TestHandleListCategories(t *testing.T) {
	t.Run("passes sector filter through", func(t *testing.T) {
		svc := &MockReferenceService{}
		svc.On("ListCategories", mock.Anything, "state").Return([]domain.Category{
			{ID: "c1", NameEN: "TNPSC", Slug: "tnpsc", Sector: "state"},
		}, nil)

		req := httptest.NewRequest("GET", "/api/categories?sector=state", nil)
		w := httptest.NewRecorder()

		HandleListCategories(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"TNPSC"`)
		svc.AssertExpectations(t)
	})

	t.Run("no sector lists everything", func(t *testing.T) {
		svc := &MockReferenceService{}
		svc.On("ListCategories", mock.Anything, "").Return([]domain.Category{}, nil)

		req := httptest.NewRequest("GET", "/api/categories", nil)
		w := httptest.NewRecorder()

		HandleListCategories(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestHandleSeed(t *testing.T) {
	t.Run("returns seed counts", func(t *testing.T) {
		svc := &MockReferenceService{}
		svc.On("Seed", mock.Anything).Return(&domain.SeedCounts{
			Districts:      6,
			Qualifications: 7,
			Categories:     6,
			Jobs:           2,
		}, nil)

		req := httptest.NewRequest("POST", "/api/seed", nil)
		w := httptest.NewRecorder()

		HandleSeed(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"districts":6`)
		assert.Contains(t, w.Body.String(), `"jobs":2`)
		svc.AssertExpectations(t)
	})

	t.Run("store failure returns 503", func(t *testing.T) {
		svc := &MockReferenceService{}
		svc.On("Seed", mock.Anything).Return(nil, domain.ErrStoreUnavailable)

		req := httptest.NewRequest("POST", "/api/seed", nil)
		w := httptest.NewRecorder()

		HandleSeed(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
