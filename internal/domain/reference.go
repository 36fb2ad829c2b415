package domain

import "time"

// District is a Tamil Nadu district used to localise job postings.
type District struct {
	ID        string    `json:"id"`
	NameEN    string    `json:"name_en"`
	NameTA    string    `json:"name_ta"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

// Qualification is an education level a posting can require.
// Rank orders qualifications from lowest (10th) to highest for display.
type Qualification struct {
	ID        string    `json:"id"`
	NameEN    string    `json:"name_en"`
	NameTA    string    `json:"name_ta"`
	Slug      string    `json:"slug"`
	Rank      int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

// Category groups postings by recruiting body (TNPSC, TRB, Police, ...).
// Sector distinguishes state from central government bodies.
type Category struct {
	ID        string    `json:"id"`
	NameEN    string    `json:"name_en"`
	NameTA    string    `json:"name_ta"`
	Slug      string    `json:"slug"`
	Sector    string    `json:"sector"`
	CreatedAt time.Time `json:"createdAt"`
}
