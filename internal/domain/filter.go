package domain

// Pagination bounds for job queries.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MinLimit     = 1
	MaxLimit     = 100
)

// JobFilter is the combined set of constraints for a job query.
// Empty string fields mean "no constraint". All supplied constraints AND
// together, and the query path only ever sees published jobs.
type JobFilter struct {
	DistrictID      string
	QualificationID string
	CategoryID      string
	Search          string
	Page            int
	Limit           int
}

// Normalize clamps pagination to the documented bounds: page numbers below 1
// become 1 and limit is forced into [MinLimit, MaxLimit]. A zero limit marks
// a filter built in code without pagination and takes the default; explicit
// query values are resolved before they get here, in ParseFilter.
func (f JobFilter) Normalize() JobFilter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit < MinLimit {
		f.Limit = MinLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

// Offset returns the row offset for the normalized filter.
func (f JobFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// JobPage is one page of query results. Total reflects the filtered set
// before slicing, so a page past the end has empty Items and unchanged Total.
type JobPage struct {
	Items []Job `json:"items"`
	Total int   `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
