package domain

import "time"

// JobStatus is the publication state of a posting. Only published jobs are
// visible on the public query path.
type JobStatus string

const (
	StatusDraft     JobStatus = "draft"
	StatusPublished JobStatus = "published"
)

// ValidStatus reports whether s is a known publication status.
func ValidStatus(s JobStatus) bool {
	return s == StatusDraft || s == StatusPublished
}

// JobType is the employment type of a posting.
type JobType string

const (
	JobTypePermanent JobType = "permanent"
	JobTypeTemporary JobType = "temporary"
	JobTypeContract  JobType = "contract"
)

// Job is a government job posting.
//
// DistrictID, QualificationIDs and CategoryIDs reference the corresponding
// reference collections by identifier. The store does not enforce these as
// foreign keys; a dangling reference simply matches no filter.
type Job struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Summary          string     `json:"summary"`
	Content          string     `json:"content"`
	Vacancies        int        `json:"vacancies"`
	Dept             string     `json:"dept"`
	Sector           string     `json:"sector"`
	Board            string     `json:"board"`
	JobType          JobType    `json:"jobType"`
	PayScale         string     `json:"payScale,omitempty"`
	SalaryFrom       int        `json:"salaryFrom"`
	SalaryTo         int        `json:"salaryTo"`
	AgeMin           int        `json:"ageMin"`
	AgeMax           int        `json:"ageMax"`
	Fees             int        `json:"fees"`
	SelectionProcess string     `json:"selectionProcess"`
	Mode             string     `json:"mode"`
	LastDate         *time.Time `json:"lastDate,omitempty"`
	PostedAt         time.Time  `json:"postedAt"`
	DistrictID       string     `json:"districtId,omitempty"`
	QualificationIDs []string   `json:"qualificationIds"`
	CategoryIDs      []string   `json:"categoryIds"`
	Tags             []string   `json:"tags"`
	NotificationURL  string     `json:"notificationUrl,omitempty"`
	ApplyURL         string     `json:"applyUrl,omitempty"`
	SourceURL        string     `json:"sourceUrl,omitempty"`
	Status           JobStatus  `json:"status"`
	Lang             string     `json:"lang"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
