// Package pgerrors inspects PostgreSQL driver errors so repositories can
// surface constraint violations as structured domain errors instead of
// leaking driver details.
package pgerrors

import (
	"errors"
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for unique constraint hits.
const uniqueViolation = "23505"

// detail looks like: Key (bill_code)=(BK20240105001) already exists.
var detailPattern = regexp.MustCompile(`Key \((.+?)\)=\((.+?)\)`)

// UniqueViolation reports whether err is a unique constraint violation and,
// if so, extracts the violated column list and the conflicting value from
// the error detail. For composite indexes the column string carries the
// comma-separated column list and the value the matching value list.
func UniqueViolation(err error) (column, value string, ok bool) {
	code, detail, constraint, found := serverError(err)
	if !found || code != uniqueViolation {
		return "", "", false
	}

	matches := detailPattern.FindStringSubmatch(detail)
	if len(matches) != 3 {
		return constraint, "", true
	}

	return matches[1], matches[2], true
}

// serverError extracts the SQLSTATE, detail line and constraint name from
// either driver's error type. The gorm connection speaks pgx, so its
// failures arrive as *pgconn.PgError; lib/pq is still recognized for
// plain database/sql connections.
func serverError(err error) (code, detail, constraint string, ok bool) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code, pgxErr.Detail, pgxErr.ConstraintName, true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Detail, pqErr.Constraint, true
	}

	return "", "", "", false
}
