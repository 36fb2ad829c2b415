package handler

import (
	"net/http"

	"github.com/tamilansjob/jobportal/internal/logger"
	"github.com/tamilansjob/jobportal/internal/reference"
)

// HandleSeed loads the sample data set
// @Summary Seed sample data
// @Description Inserts the sample districts, qualifications, categories and jobs. Safe to call repeatedly; existing rows are left untouched.
// @Tags admin
// @Produce json
// @Success 200 {object} domain.SeedCounts
// @Failure 503 {object} ErrorResponse
// @Router /api/seed [post]
func HandleSeed(svc reference.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.Seed(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}

		logger.FromContext(r.Context()).Info("Seed endpoint completed",
			"districts", counts.Districts, "jobs", counts.Jobs)
		respondJSON(w, http.StatusOK, counts)
	}
}
