package recordstorage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/leporo/sqlf"

	"healthtrack/internal/adapter/storage"
	"healthtrack/internal/domain/record"
)

// PostgresStorage persists BMI records and daily samples. Every write is an
// upsert keyed by calendar date, so recalculating for the same day overwrites
// instead of appending, and concurrent "add water" actions accumulate inside
// the database rather than racing in application code.
type PostgresStorage struct {
	db storage.DBContext
}

func NewPostgresStorage(db storage.DBContext) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// UpsertBmi writes one BMI value for one date. When a row already exists the
// newer RecordedAt wins, which makes local writes and sync pushes converge
// to the same state regardless of order.
func (s *PostgresStorage) UpsertBmi(ctx context.Context, e *record.BmiEntry) error {
	q := sqlf.InsertInto("bmi_records").
		Set("user_id", e.UserID).
		Set("date", e.Date).
		Set("bmi", e.BMI).
		Set("recorded_at", e.RecordedAt).
		Clause(
			"ON CONFLICT (user_id, date) DO UPDATE SET "+
				"bmi = excluded.bmi, recorded_at = excluded.recorded_at "+
				"WHERE bmi_records.recorded_at <= excluded.recorded_at",
		)

	if _, err := q.ExecAndClose(ctx, s.db); err != nil {
		return storage.InternalError(err)
	}
	return nil
}

// AddToSample accumulates a delta into the day's sample. Multiple intake
// actions within a day sum additively.
func (s *PostgresStorage) AddToSample(ctx context.Context, sample *record.Sample) error {
	q := sqlf.InsertInto("daily_samples").
		Set("user_id", sample.UserID).
		Set("kind", string(sample.Kind)).
		Set("date", sample.Date).
		Set("value", sample.Value).
		Set("recorded_at", sample.RecordedAt).
		Clause(
			"ON CONFLICT (user_id, kind, date) DO UPDATE SET " +
				"value = daily_samples.value + excluded.value, " +
				"recorded_at = excluded.recorded_at",
		)

	if _, err := q.ExecAndClose(ctx, s.db); err != nil {
		return storage.InternalError(err)
	}
	return nil
}

// PutSample overwrites the day's sample, newest RecordedAt winning. Used by
// sync, where the pushed value is already the day's total.
func (s *PostgresStorage) PutSample(ctx context.Context, sample *record.Sample) error {
	q := sqlf.InsertInto("daily_samples").
		Set("user_id", sample.UserID).
		Set("kind", string(sample.Kind)).
		Set("date", sample.Date).
		Set("value", sample.Value).
		Set("recorded_at", sample.RecordedAt).
		Clause(
			"ON CONFLICT (user_id, kind, date) DO UPDATE SET "+
				"value = excluded.value, recorded_at = excluded.recorded_at "+
				"WHERE daily_samples.recorded_at <= excluded.recorded_at",
		)

	if _, err := q.ExecAndClose(ctx, s.db); err != nil {
		return storage.InternalError(err)
	}
	return nil
}

func (s *PostgresStorage) GetSample(ctx context.Context, userID string, kind record.Kind, date string) (*record.Sample, error) {
	result, err := s.getSamples(ctx, func(stmt *sqlf.Stmt) {
		stmt.Where("s.user_id = ?", userID).
			Where("s.kind = ?", string(kind)).
			Where("s.date = ?", date)
	})
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, record.ErrNotFound
	}
	return result[0], nil
}

// ListSamples returns one kind of sample from sinceDate on, ordered by date
// ascending. An empty sinceDate lists everything.
func (s *PostgresStorage) ListSamples(ctx context.Context, userID string, kind record.Kind, sinceDate string) ([]*record.Sample, error) {
	return s.getSamples(ctx, func(stmt *sqlf.Stmt) {
		stmt.Where("s.user_id = ?", userID).Where("s.kind = ?", string(kind))
		if sinceDate != "" {
			stmt.Where("s.date >= ?", sinceDate)
		}
		stmt.OrderBy("s.date ASC")
	})
}

func (s *PostgresStorage) getSamples(
	ctx context.Context,
	modify func(stmt *sqlf.Stmt),
) ([]*record.Sample, error) {
	var tmp record.Sample
	var kind string

	q := sqlf.From("daily_samples s").
		Select("s.user_id").To(&tmp.UserID).
		Select("s.kind").To(&kind).
		Select("s.date").To(&tmp.Date).
		Select("s.value").To(&tmp.Value).
		Select("s.recorded_at").To(&tmp.RecordedAt)

	modify(q)

	var result []*record.Sample
	err := q.QueryAndClose(ctx, s.db, func(rows *sql.Rows) {
		sample := tmp
		sample.Kind = record.Kind(kind)
		result = append(result, &sample)
	})

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, storage.InternalError(err)
	}
	return result, nil
}

// ListBmi returns the user's BMI history from sinceDate on, ordered by date
// ascending. An empty sinceDate lists everything.
func (s *PostgresStorage) ListBmi(ctx context.Context, userID string, sinceDate string) ([]*record.BmiEntry, error) {
	var tmp record.BmiEntry

	q := sqlf.From("bmi_records r").
		Select("r.user_id").To(&tmp.UserID).
		Select("r.date").To(&tmp.Date).
		Select("r.bmi").To(&tmp.BMI).
		Select("r.recorded_at").To(&tmp.RecordedAt).
		Where("r.user_id = ?", userID).
		OrderBy("r.date ASC")

	if sinceDate != "" {
		q.Where("r.date >= ?", sinceDate)
	}

	var result []*record.BmiEntry
	err := q.QueryAndClose(ctx, s.db, func(rows *sql.Rows) {
		entry := tmp
		result = append(result, &entry)
	})

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, storage.InternalError(err)
	}
	return result, nil
}

func (s *PostgresStorage) Close() error {
	return nil
}
