package profilestorage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/leporo/sqlf"
	"github.com/r3labs/diff"

	"healthtrack/internal/adapter/storage"
	"healthtrack/internal/adapter/storage/pgutil"
	"healthtrack/internal/domain"
	"healthtrack/internal/domain/health"
	"healthtrack/internal/domain/profile"
)

type PostgresStorage struct {
	base *pgutil.BasePostgresStorage
}

func NewPostgresStorage(db storage.DBContext) *PostgresStorage {
	return &PostgresStorage{
		base: pgutil.NewBasePostgresStorage(db),
	}
}

func (s *PostgresStorage) Add(ctx context.Context, p *profile.Profile) error {
	q := sqlf.InsertInto("profiles").
		Set("user_id", p.UserID).
		Set("height", p.Height).
		Set("weight", p.Weight).
		Set("age", p.Age).
		Set("gender", string(p.Gender)).
		Set("activity_level", string(p.ActivityLevel)).
		Set("unit", string(p.Unit)).
		Set("goal", string(p.Goal)).
		Set("created_at", p.CreatedAt).
		Set("updated_at", p.UpdatedAt)

	if _, err := q.ExecAndClose(ctx, s.base.DB); err != nil {
		if pgutil.ViolatesConstraint(err, "profiles_pkey") {
			return profile.ErrProfileExists
		}
		return storage.InternalError(err)
	}

	s.base.MarkSeen(p)
	return nil
}

func (s *PostgresStorage) GetByID(ctx context.Context, userID string) (*profile.Profile, error) {
	var r profileRow

	q := sqlf.From("profiles p").
		Where("p.user_id = ?", userID).
		Select("p.user_id").To(&r.UserID).
		Select("p.height").To(&r.Height).
		Select("p.weight").To(&r.Weight).
		Select("p.age").To(&r.Age).
		Select("p.gender").To(&r.Gender).
		Select("p.activity_level").To(&r.ActivityLevel).
		Select("p.unit").To(&r.Unit).
		Select("p.goal").To(&r.Goal).
		Select("p.created_at").To(&r.CreatedAt).
		Select("p.updated_at").To(&r.UpdatedAt)

	if err := q.QueryRowAndClose(ctx, s.base.DB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, storage.InternalError(err)
	}

	return r.toDomain(), nil
}

// Persist writes only the fields that actually changed since the stored
// state, mirroring the diff-driven update path used across storages.
func (s *PostgresStorage) Persist(ctx context.Context, p *profile.Profile) error {
	dbState, err := s.GetByID(ctx, p.UserID)
	if err != nil {
		return err
	}

	if log, _ := diff.Diff(dbState, p); len(log) != 0 {
		q := sqlf.Update("profiles").Where("user_id = ?", p.UserID)
		q = pgutil.MakeUpdateQuery(q, log)

		res, err := q.ExecAndClose(ctx, s.base.DB)
		if err := pgutil.AssertUpdated(res, err, profile.ErrProfileNotFound); err != nil {
			return err
		}
	}

	s.base.MarkSeen(p)
	return nil
}

func (s *PostgresStorage) CollectEvents() []domain.Event {
	return s.base.CollectEvents()
}

func (s *PostgresStorage) Close() error {
	s.base.Close()
	return nil
}

type profileRow struct {
	UserID        string
	Height        float64
	Weight        float64
	Age           int
	Gender        string
	ActivityLevel string
	Unit          string
	Goal          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r profileRow) toDomain() *profile.Profile {
	return &profile.Profile{
		UserID:        r.UserID,
		Height:        r.Height,
		Weight:        r.Weight,
		Age:           r.Age,
		Gender:        health.Gender(r.Gender),
		ActivityLevel: health.ActivityLevel(r.ActivityLevel),
		Unit:          health.Unit(r.Unit),
		Goal:          health.Goal(r.Goal),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
