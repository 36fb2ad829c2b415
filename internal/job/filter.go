package job

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/tamilansjob/jobportal/internal/domain"
)

// Query parameter names accepted by the job listing endpoint.
const (
	ParamDistrict      = "district"
	ParamQualification = "qualification"
	ParamCategory      = "category"
	ParamSearch        = "search"
	ParamPage          = "page"
	ParamLimit         = "limit"
)

// ParseFilter builds a normalized JobFilter from raw query values.
// Malformed numeric parameters fall back to their defaults rather than
// failing the request; pagination is clamped to the documented bounds.
func ParseFilter(q url.Values) domain.JobFilter {
	f := domain.JobFilter{
		DistrictID:      strings.TrimSpace(q.Get(ParamDistrict)),
		QualificationID: strings.TrimSpace(q.Get(ParamQualification)),
		CategoryID:      strings.TrimSpace(q.Get(ParamCategory)),
		Search:          strings.TrimSpace(q.Get(ParamSearch)),
		Page:            parseIntOrDefault(q.Get(ParamPage), domain.DefaultPage),
		Limit:           parseLimit(q.Get(ParamLimit)),
	}
	return f.Normalize()
}

func parseIntOrDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// parseLimit keeps the default for an absent or malformed limit parameter.
// An explicit value below the minimum clamps up to it rather than reverting
// to the default, so limit=0 means "smallest page", not "no preference".
func parseLimit(raw string) int {
	n := parseIntOrDefault(raw, domain.DefaultLimit)
	if n < domain.MinLimit {
		return domain.MinLimit
	}
	return n
}
