package handler

import "net/http"

// RootResponse describes the API root payload
type RootResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
}

// HandleRoot greets API consumers and points at the docs
// @Summary API root
// @Tags health
// @Produce json
// @Success 200 {object} RootResponse
// @Router /api [get]
func HandleRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, RootResponse{
			Message: "TamilansJob API",
			Docs:    "/swagger/index.html",
		})
	}
}
