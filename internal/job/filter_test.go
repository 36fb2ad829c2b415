package job

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tamilansjob/jobportal/internal/domain"
)

func TestParseFilterDefaults(t *testing.T) {
	f := ParseFilter(url.Values{})

	assert.Equal(t, domain.DefaultPage, f.Page)
	assert.Equal(t, domain.DefaultLimit, f.Limit)
	assert.Empty(t, f.DistrictID)
	assert.Empty(t, f.Search)
}

func TestParseFilterReadsAllParameters(t *testing.T) {
	q := url.Values{}
	q.Set(ParamDistrict, "dist-1")
	q.Set(ParamQualification, "qual-2")
	q.Set(ParamCategory, "cat-3")
	q.Set(ParamSearch, "  teacher  ")
	q.Set(ParamPage, "3")
	q.Set(ParamLimit, "25")

	f := ParseFilter(q)

	assert.Equal(t, "dist-1", f.DistrictID)
	assert.Equal(t, "qual-2", f.QualificationID)
	assert.Equal(t, "cat-3", f.CategoryID)
	assert.Equal(t, "teacher", f.Search)
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 25, f.Limit)
}

func TestParseFilterPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"malformed page falls back to default", "abc", "10", domain.DefaultPage, 10},
		{"malformed limit falls back to default", "2", "ten", 2, domain.DefaultLimit},
		{"zero page clamps to first", "0", "10", domain.DefaultPage, 10},
		{"negative page clamps to first", "-4", "10", domain.DefaultPage, 10},
		{"zero limit clamps to minimum", "1", "0", 1, domain.MinLimit},
		{"negative limit clamps to minimum", "1", "-5", 1, domain.MinLimit},
		{"oversized limit clamps to cap", "1", "5000", 1, domain.MaxLimit},
		{"float page falls back to default", "1.5", "10", domain.DefaultPage, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := url.Values{}
			q.Set(ParamPage, tt.page)
			q.Set(ParamLimit, tt.limit)

			f := ParseFilter(q)

			assert.Equal(t, tt.wantPage, f.Page)
			assert.Equal(t, tt.wantLimit, f.Limit)
		})
	}
}

func TestFilterOffset(t *testing.T) {
	f := domain.JobFilter{Page: 3, Limit: 10}
	assert.Equal(t, 20, f.Offset())

	f = domain.JobFilter{Page: 1, Limit: 25}
	assert.Equal(t, 0, f.Offset())
}
