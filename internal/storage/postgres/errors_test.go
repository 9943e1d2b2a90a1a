package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"trendscope/internal/domain"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(sql.ErrNoRows), domain.ErrNotFound)
	assert.ErrorIs(t, mapError(&pq.Error{Code: "23505"}), domain.ErrConstraintViolation)
	assert.ErrorIs(t, mapError(&pq.Error{Code: "08006"}), domain.ErrStorageUnavailable)
	assert.ErrorIs(t, mapError(errors.New("dial tcp: connection refused")), domain.ErrStorageUnavailable)
}

func TestMapError_CancellationPassesThrough(t *testing.T) {
	err := mapError(context.Canceled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrStorageUnavailable)

	wrapped := mapError(fmt.Errorf("query trends: %w", context.DeadlineExceeded))
	assert.ErrorIs(t, wrapped, context.DeadlineExceeded)
	assert.NotErrorIs(t, wrapped, domain.ErrStorageUnavailable)
}

func TestIsUndefinedTable(t *testing.T) {
	assert.True(t, isUndefinedTable(&pq.Error{Code: "42P01"}))
	assert.False(t, isUndefinedTable(errors.New("relation does not exist")))
}
