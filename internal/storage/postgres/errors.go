package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"trendscope/internal/domain"
)

// pq error code classes: 08 connection exception, 23 integrity constraint
// violation, 53 insufficient resources, 57 operator intervention,
// 58 system error.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "23":
			return fmt.Errorf("%w: %v", domain.ErrConstraintViolation, err)
		case "08", "53", "57", "58":
			return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
		}
		return err
	}

	// Cancellation is the caller's doing, not a storage outage.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	// Non-driver errors at this layer are dial/network failures.
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}

func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "42P01"
}
