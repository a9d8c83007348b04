package syncapp

import (
	"context"
	"errors"
	"fmt"

	"healthtrack/internal/adapter/storage"
	recordstorage "healthtrack/internal/adapter/storage/records"
	"healthtrack/internal/domain"
	"healthtrack/internal/domain/record"
)

type RecordStorage interface {
	UpsertBmi(ctx context.Context, e *record.BmiEntry) error
	PutSample(ctx context.Context, sample *record.Sample) error
	ListBmi(ctx context.Context, userID string, sinceDate string) ([]*record.BmiEntry, error)
	ListSamples(ctx context.Context, userID string, kind record.Kind, sinceDate string) ([]*record.Sample, error)
	Close() error
}

type AtomicContext struct {
	ctx     context.Context
	db      storage.DBContext
	Records RecordStorage
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

func (a *AtomicContext) CollectEvents() []domain.Event {
	return nil
}

func NewAtomicContext(ctx context.Context, dbContext storage.DBContext) (*AtomicContext, error) {
	return &AtomicContext{
		ctx:     ctx,
		db:      dbContext,
		Records: recordstorage.NewPostgresStorage(dbContext),
	}, nil
}
