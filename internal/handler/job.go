package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tamilansjob/jobportal/internal/domain"
	"github.com/tamilansjob/jobportal/internal/job"
	"github.com/tamilansjob/jobportal/internal/logger"
)

// CreateJobRequest is the payload for creating a job posting. Only title and
// dept are mandatory; everything else gets a server-side default.
type CreateJobRequest struct {
	Title            string     `json:"title" validate:"required,max=300"`
	Slug             string     `json:"slug" validate:"omitempty,slug,max=300"`
	Summary          string     `json:"summary" validate:"max=1000"`
	Content          string     `json:"content"`
	Vacancies        int        `json:"vacancies" validate:"gte=0"`
	Dept             string     `json:"dept" validate:"required,max=300"`
	Sector           string     `json:"sector" validate:"omitempty,oneof=state central"`
	Board            string     `json:"board" validate:"max=200"`
	JobType          string     `json:"jobType" validate:"omitempty,oneof=permanent temporary contract"`
	PayScale         string     `json:"payScale" validate:"max=200"`
	SalaryFrom       int        `json:"salaryFrom" validate:"gte=0"`
	SalaryTo         int        `json:"salaryTo" validate:"gte=0"`
	AgeMin           int        `json:"ageMin" validate:"gte=0"`
	AgeMax           int        `json:"ageMax" validate:"gte=0"`
	Fees             int        `json:"fees" validate:"gte=0"`
	SelectionProcess string     `json:"selectionProcess" validate:"max=500"`
	Mode             string     `json:"mode" validate:"omitempty,oneof=online offline"`
	LastDate         *time.Time `json:"lastDate"`
	PostedAt         *time.Time `json:"postedAt"`
	DistrictID       string     `json:"districtId"`
	QualificationIDs []string   `json:"qualificationIds"`
	CategoryIDs      []string   `json:"categoryIds"`
	Tags             []string   `json:"tags"`
	NotificationURL  string     `json:"notificationUrl" validate:"omitempty,url"`
	ApplyURL         string     `json:"applyUrl" validate:"omitempty,url"`
	SourceURL        string     `json:"sourceUrl" validate:"omitempty,url"`
	Status           string     `json:"status" validate:"jobstatus"`
	Lang             string     `json:"lang" validate:"omitempty,oneof=ta en"`
}

func (req *CreateJobRequest) toDomain() *domain.Job {
	j := &domain.Job{
		Title:            req.Title,
		Slug:             req.Slug,
		Summary:          req.Summary,
		Content:          req.Content,
		Vacancies:        req.Vacancies,
		Dept:             req.Dept,
		Sector:           req.Sector,
		Board:            req.Board,
		JobType:          domain.JobType(req.JobType),
		PayScale:         req.PayScale,
		SalaryFrom:       req.SalaryFrom,
		SalaryTo:         req.SalaryTo,
		AgeMin:           req.AgeMin,
		AgeMax:           req.AgeMax,
		Fees:             req.Fees,
		SelectionProcess: req.SelectionProcess,
		Mode:             req.Mode,
		LastDate:         req.LastDate,
		DistrictID:       req.DistrictID,
		QualificationIDs: req.QualificationIDs,
		CategoryIDs:      req.CategoryIDs,
		Tags:             req.Tags,
		NotificationURL:  req.NotificationURL,
		ApplyURL:         req.ApplyURL,
		SourceURL:        req.SourceURL,
		Status:           domain.JobStatus(req.Status),
		Lang:             req.Lang,
	}
	if req.PostedAt != nil {
		j.PostedAt = *req.PostedAt
	}
	return j
}

// HandleListJobs returns one page of published jobs
// @Summary List published jobs
// @Description Returns a filtered, paginated page of published job postings, newest first
// @Tags jobs
// @Produce json
// @Param district query string false "District ID"
// @Param qualification query string false "Qualification ID"
// @Param category query string false "Category ID"
// @Param search query string false "Case-insensitive match against title, dept and summary"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {object} domain.JobPage
// @Failure 503 {object} ErrorResponse
// @Router /api/jobs [get]
func HandleListJobs(svc job.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := job.ParseFilter(r.URL.Query())

		page, err := svc.List(r.Context(), filter)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, page)
	}
}

// HandleGetJob returns one job by ID
// @Summary Get a job
// @Description Returns a single job posting by ID, drafts included
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} domain.Job
// @Failure 404 {object} ErrorResponse
// @Router /api/jobs/{id} [get]
func HandleGetJob(svc job.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		found, err := svc.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	}
}

// HandleCreateJob creates a job posting
// @Summary Create a job
// @Description Creates a job posting; unset optional fields get server-side defaults
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body CreateJobRequest true "Job details"
// @Success 201 {object} domain.Job
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse "Slug already exists"
// @Failure 500 {object} ErrorResponse
// @Router /api/jobs [post]
func HandleCreateJob(svc job.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateJobRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create job"); err != nil {
			return
		}

		created, err := svc.Create(r.Context(), req.toDomain())
		if err != nil {
			respondServiceError(w, err)
			return
		}

		log.Info("Job created via API", "job_id", created.ID, "slug", created.Slug)
		respondJSON(w, http.StatusCreated, created)
	}
}
