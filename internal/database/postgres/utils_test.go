package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/tamilansjob/jobportal/internal/domain"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows is not found", pgx.ErrNoRows, domain.ErrNotFound},
		{"unique violation is slug conflict", &pgconn.PgError{Code: "23505"}, domain.ErrSlugTaken},
		{"malformed uuid is not found", &pgconn.PgError{Code: "22P02"}, domain.ErrNotFound},
		{"connection failure is store unavailable", &pgconn.PgError{Code: "08006"}, domain.ErrStoreUnavailable},
		{"too many connections is store unavailable", &pgconn.PgError{Code: "53300"}, domain.ErrStoreUnavailable},
		{"dial failure is store unavailable", errors.New("dial tcp: connection refused"), domain.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError("query jobs", tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapErrorKeepsUnrecognizedServerErrors(t *testing.T) {
	// A CHECK violation is a caller bug, not an outage; it must not report
	// the store as unavailable or the row as missing.
	err := mapError("create job", &pgconn.PgError{Code: "23514", Message: "vacancies_nonnegative"})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrSlugTaken)
}
