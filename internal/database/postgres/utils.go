package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tamilansjob/jobportal/internal/domain"
)

// Postgres error codes this layer cares about.
const (
	pgCodeUniqueViolation = "23505"
	pgCodeInvalidTextRep  = "22P02"
)

// mapError translates pgx errors into domain errors so upper layers never
// depend on driver types.
//
// Invalid text representation (e.g. a non-UUID path parameter scanned into a
// UUID column) maps to ErrNotFound: a malformed identifier cannot resolve to
// a record, and callers expect a 404 rather than a 500 for it.
//
// ErrStoreUnavailable is reserved for errors that mean the store itself is
// unhealthy: connection and resource SQLSTATE classes, plus anything that
// never produced a server error code (dial failures, pool exhaustion,
// cancelled contexts). Other server errors surface unchanged.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCodeUniqueViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrSlugTaken)
		case pgCodeInvalidTextRep:
			return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		if isConnectivityCode(pgErr.Code) {
			return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
}

// isConnectivityCode reports whether a SQLSTATE belongs to a class that
// signals the database is unreachable or out of resources: 08 (connection
// exception), 53 (insufficient resources), 57 (operator intervention) or
// 58 (system error).
func isConnectivityCode(code string) bool {
	if len(code) < 2 {
		return false
	}
	switch code[:2] {
	case "08", "53", "57", "58":
		return true
	}
	return false
}
