package handler

import (
	"net/http"

	"github.com/tamilansjob/jobportal/internal/domain"
	"github.com/tamilansjob/jobportal/internal/reference"
)

// CreateDistrictRequest is the payload for creating a district
type CreateDistrictRequest struct {
	NameEN string `json:"name_en" validate:"required,max=200"`
	NameTA string `json:"name_ta" validate:"max=200"`
	Slug   string `json:"slug" validate:"omitempty,slug,max=200"`
}

// CreateQualificationRequest is the payload for creating a qualification
type CreateQualificationRequest struct {
	NameEN string `json:"name_en" validate:"required,max=200"`
	NameTA string `json:"name_ta" validate:"max=200"`
	Slug   string `json:"slug" validate:"omitempty,slug,max=200"`
	Rank   int    `json:"order" validate:"gte=0"`
}

// CreateCategoryRequest is the payload for creating a category
type CreateCategoryRequest struct {
	NameEN string `json:"name_en" validate:"required,max=200"`
	NameTA string `json:"name_ta" validate:"max=200"`
	Slug   string `json:"slug" validate:"omitempty,slug,max=200"`
	Sector string `json:"sector" validate:"omitempty,oneof=state central"`
}

// HandleListDistricts lists all districts
// @Summary List districts
// @Description Returns every district ordered by English name
// @Tags reference
// @Produce json
// @Success 200 {array} domain.District
// @Failure 503 {object} ErrorResponse
// @Router /api/districts [get]
func HandleListDistricts(svc reference.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListDistricts(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleCreateDistrict creates a district
// @Summary Create a district
// @Tags reference
// @Accept json
// @Produce json
// @Param request body CreateDistrictRequest true "District details"
// @Success 201 {object} domain.District
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/districts [post]
func HandleCreateDistrict(svc reference.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateDistrictRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create district"); err != nil {
			return
		}

		created, err := svc.CreateDistrict(r.Context(), &domain.District{
			NameEN: req.NameEN,
			NameTA: req.NameTA,
			Slug:   req.Slug,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleListQualifications lists all qualifications
// @Summary List qualifications
// @Description Returns every qualification ordered from lowest to highest education level
// @Tags reference
// @Produce json
// @Success 200 {array} domain.Qualification
// @Failure 503 {object} ErrorResponse
// @Router /api/qualifications [get]
func HandleListQualifications(svc reference.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListQualifications(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleCreateQualification creates a qualification
// @Summary Create a qualification
// @Tags reference
// @Accept json
// @Produce json
// @Param request body CreateQualificationRequest true "Qualification details"
// @Success 201 {object} domain.Qualification
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/qualifications [post]
func HandleCreateQualification(svc reference.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateQualificationRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create qualification"); err != nil {
			return
		}

		created, err := svc.CreateQualification(r.Context(), &domain.Qualification{
			NameEN: req.NameEN,
			NameTA: req.NameTA,
			Slug:   req.Slug,
			Rank:   req.Rank,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleListCategories lists job categories, optionally by sector
// @Summary List categories
// @Description Returns job categories; pass sector=state or sector=central to narrow the list
// @Tags reference
// @Produce json
// @Param sector query string false "Sector filter"
// @Success 200 {array} domain.Category
// @Failure 503 {object} ErrorResponse
// @Router /api/categories [get]
func HandleListCategories(svc reference.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListCategories(r.Context(), r.URL.Query().Get("sector"))
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleCreateCategory creates a category
// @Summary Create a category
// @Tags reference
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "Category details"
// @Success 201 {object} domain.Category
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/categories [post]
func HandleCreateCategory(svc reference.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCategoryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create category"); err != nil {
			return
		}

		created, err := svc.CreateCategory(r.Context(), &domain.Category{
			NameEN: req.NameEN,
			NameTA: req.NameTA,
			Slug:   req.Slug,
			Sector: req.Sector,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}
