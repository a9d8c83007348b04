package mealstorage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/leporo/sqlf"

	"healthtrack/internal/adapter/storage"
	"healthtrack/internal/adapter/storage/pgutil"
	"healthtrack/internal/domain/record"
)

type PostgresStorage struct {
	db storage.DBContext
}

func NewPostgresStorage(db storage.DBContext) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) Add(ctx context.Context, m *record.Meal) error {
	q := sqlf.InsertInto("meals").
		Set("meal_id", m.MealID).
		Set("user_id", m.UserID).
		Set("date", m.Date).
		Set("name", m.Name).
		Set("calories", m.Calories).
		Set("logged_at", m.LoggedAt)

	if _, err := q.ExecAndClose(ctx, s.db); err != nil {
		return storage.InternalError(err)
	}
	return nil
}

func (s *PostgresStorage) GetByID(ctx context.Context, userID, mealID string) (*record.Meal, error) {
	result, err := s.get(ctx, func(stmt *sqlf.Stmt) {
		stmt.Where("m.user_id = ?", userID).Where("m.meal_id = ?", mealID)
	})
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, record.ErrMealNotFound
	}
	return result[0], nil
}

func (s *PostgresStorage) ListByDate(ctx context.Context, userID, date string) ([]*record.Meal, error) {
	return s.get(ctx, func(stmt *sqlf.Stmt) {
		stmt.Where("m.user_id = ?", userID).
			Where("m.date = ?", date).
			OrderBy("m.logged_at ASC")
	})
}

func (s *PostgresStorage) Delete(ctx context.Context, userID, mealID string) error {
	q := sqlf.DeleteFrom("meals").
		Where("user_id = ?", userID).
		Where("meal_id = ?", mealID)

	res, err := q.ExecAndClose(ctx, s.db)
	return pgutil.AssertUpdated(res, err, record.ErrMealNotFound)
}

func (s *PostgresStorage) get(
	ctx context.Context,
	modify func(stmt *sqlf.Stmt),
) ([]*record.Meal, error) {
	var tmp record.Meal

	q := sqlf.From("meals m").
		Select("m.meal_id").To(&tmp.MealID).
		Select("m.user_id").To(&tmp.UserID).
		Select("m.date").To(&tmp.Date).
		Select("m.name").To(&tmp.Name).
		Select("m.calories").To(&tmp.Calories).
		Select("m.logged_at").To(&tmp.LoggedAt)

	modify(q)

	var result []*record.Meal
	err := q.QueryAndClose(ctx, s.db, func(rows *sql.Rows) {
		meal := tmp
		result = append(result, &meal)
	})

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, storage.InternalError(err)
	}
	return result, nil
}
