package profileapp

import (
	"context"
	"errors"
	"fmt"

	"healthtrack/internal/adapter/storage"
	profilestorage "healthtrack/internal/adapter/storage/profiles"
	recordstorage "healthtrack/internal/adapter/storage/records"
	"healthtrack/internal/domain"
	"healthtrack/internal/domain/profile"
	"healthtrack/internal/domain/record"
)

type ProfileStorage interface {
	Add(ctx context.Context, p *profile.Profile) error
	GetByID(ctx context.Context, userID string) (*profile.Profile, error)
	Persist(ctx context.Context, p *profile.Profile) error
	CollectEvents() []domain.Event
	Close() error
}

type RecordStorage interface {
	UpsertBmi(ctx context.Context, e *record.BmiEntry) error
	Close() error
}

type AtomicContext struct {
	ctx      context.Context
	db       storage.DBContext
	Profiles ProfileStorage
	Records  RecordStorage
}

func (a *AtomicContext) Context() context.Context {
	return a.ctx
}

func (a *AtomicContext) Commit() error {
	return a.db.Commit()
}

func (a *AtomicContext) Close() (err error) {
	if closeErr := a.Profiles.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	if closeErr := a.Records.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}

	if err != nil {
		err = errors.Join(fmt.Errorf("failed to close storage"), err)
	}

	return err
}

func (a *AtomicContext) CollectEvents() []domain.Event {
	return a.Profiles.CollectEvents()
}

func NewAtomicContext(ctx context.Context, dbContext storage.DBContext) (*AtomicContext, error) {
	return &AtomicContext{
		ctx:      ctx,
		db:       dbContext,
		Profiles: profilestorage.NewPostgresStorage(dbContext),
		Records:  recordstorage.NewPostgresStorage(dbContext),
	}, nil
}
