package trackerapp

import (
	"context"
	"errors"
	"fmt"

	"healthtrack/internal/adapter/storage"
	mealstorage "healthtrack/internal/adapter/storage/meals"
	recordstorage "healthtrack/internal/adapter/storage/records"
	"healthtrack/internal/domain"
	"healthtrack/internal/domain/record"
)

type RecordStorage interface {
	AddToSample(ctx context.Context, sample *record.Sample) error
	GetSample(ctx context.Context, userID string, kind record.Kind, date string) (*record.Sample, error)
	Close() error
}

type MealStorage interface {
	Add(ctx context.Context, m *record.Meal) error
	GetByID(ctx context.Context, userID, mealID string) (*record.Meal, error)
	ListByDate(ctx context.Context, userID, date string) ([]*record.Meal, error)
	Delete(ctx context.Context, userID, mealID string) error
}

type AtomicContext struct {
	ctx     context.Context
	db      storage.DBContext
	Records RecordStorage
	Meals   MealStorage
}

func (a *AtomicContext) Context() context.Context {
	return a.ctx
}

func (a *AtomicContext) Commit() error {
	return a.db.Commit()
}

func (a *AtomicContext) Close() (err error) {
	if closeErr := a.Records.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}

	if err != nil {
		err = errors.Join(fmt.Errorf("failed to close storage"), err)
	}

	return err
}

// CollectEvents is empty: daily samples and meals are plain records, not
// event-sourcing aggregates.
func (a *AtomicContext) CollectEvents() []domain.Event {
	return nil
}

func NewAtomicContext(ctx context.Context, dbContext storage.DBContext) (*AtomicContext, error) {
	return &AtomicContext{
		ctx:     ctx,
		db:      dbContext,
		Records: recordstorage.NewPostgresStorage(dbContext),
		Meals:   mealstorage.NewPostgresStorage(dbContext),
	}, nil
}
