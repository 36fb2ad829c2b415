package domain

// SeedCounts reports how many sample records the seeder ensured per collection.
type SeedCounts struct {
	Districts      int `json:"districts"`
	Qualifications int `json:"qualifications"`
	Categories     int `json:"categories"`
	Jobs           int `json:"jobs"`
}
