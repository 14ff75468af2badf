package sqlconfig

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a lookup, update, or delete targets a
	// row that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUniqueViolation is returned when an insert or update breaks a
	// unique constraint (postgres error code 23505).
	ErrUniqueViolation = errors.New("unique constraint violated")

	// ErrNoFields is returned when an update names no columns.
	ErrNoFields = errors.New("no fields to update")
)

const uniqueViolationCode = pq.ErrorCode("23505")

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return ErrUniqueViolation
	}

	return err
}
