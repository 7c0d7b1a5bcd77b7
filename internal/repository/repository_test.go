package repository

import (
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestUniqueViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	require.True(t, uniqueViolation(pgErr))
	// sqlx and the tx helper wrap before the error reaches the caller
	require.True(t, uniqueViolation(errors.Wrap(pgErr, "insert fine")))

	require.False(t, uniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	require.False(t, uniqueViolation(errors.New("connection reset")))
	require.False(t, uniqueViolation(nil))
}
