package pgutil_test

import (
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/leporo/sqlf"
	"github.com/r3labs/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/internal/adapter/storage/pgutil"
)

func TestViolatesConstraint(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "profiles_pkey",
	}
	wrapped := fmt.Errorf("insert failed: %w", pgErr)

	assert.True(t, pgutil.ViolatesConstraint(wrapped, "profiles_pkey"))
	assert.False(t, pgutil.ViolatesConstraint(wrapped, "other_constraint"))
	assert.False(t, pgutil.ViolatesConstraint(fmt.Errorf("plain error"), "profiles_pkey"))
}

func TestPeek(t *testing.T) {
	assert.Equal(t, 42, pgutil.Peek(map[string]int{"a": 42}))
	assert.Equal(t, 0, pgutil.Peek(map[string]int{}))
	assert.Equal(t, 7, pgutil.Peek(map[string]int{}, 7))
}

func TestPeekOrErr(t *testing.T) {
	notFound := fmt.Errorf("not found")

	v, err := pgutil.PeekOrErr(map[string]int{"a": 42}, nil, notFound)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = pgutil.PeekOrErr(map[string]int{}, nil, notFound)
	assert.ErrorIs(t, err, notFound)

	queryErr := fmt.Errorf("query failed")
	_, err = pgutil.PeekOrErr(map[string]int{"a": 1}, queryErr, notFound)
	assert.ErrorIs(t, err, queryErr)
}

func TestMakeUpdateQuery(t *testing.T) {
	log := diff.Changelog{
		{Type: "update", Path: []string{"weight"}, To: 72.5},
		{Type: "update", Path: []string{"age"}, To: 31},
	}

	q := sqlf.Update("profiles").Where("user_id = ?", "user-1")
	q = pgutil.MakeUpdateQuery(q, log)
	defer q.Close()

	sql := q.String()
	assert.Contains(t, sql, "weight")
	assert.Contains(t, sql, "age")
}

func TestMakeUpdateQuery_RejectsNonUpdateChanges(t *testing.T) {
	q := sqlf.Update("profiles")
	defer q.Close()

	assert.Panics(t, func() {
		pgutil.MakeUpdateQuery(q, diff.Changelog{{Type: "create", Path: []string{"weight"}}})
	})
}

func TestMakeUpdateQuery_RejectsNestedPaths(t *testing.T) {
	q := sqlf.Update("profiles")
	defer q.Close()

	assert.Panics(t, func() {
		pgutil.MakeUpdateQuery(q, diff.Changelog{{Type: "update", Path: []string{"a", "b"}}})
	})
}
