package syncapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"healthtrack/internal/app/unitofwork"
	"healthtrack/internal/domain/health"
	"healthtrack/internal/domain/record"
)

// PushedBmi is one BMI point uploaded by a client. RecordedAt carries the
// client-side write time; the newest write per date wins server-side.
type PushedBmi struct {
	Date       string    `json:"date"`
	BMI        float64   `json:"bmi"`
	RecordedAt time.Time `json:"recorded_at"`
}

// PushedSample is one daily total uploaded by a client. The value replaces
// the server's total for the date instead of accumulating, since the client
// already holds the full day.
type PushedSample struct {
	Kind       record.Kind `json:"kind"`
	Date       string      `json:"date"`
	Value      float64     `json:"value"`
	RecordedAt time.Time   `json:"recorded_at"`
}

type PushResult struct {
	BmiCount    int `json:"bmi_count"`
	SampleCount int `json:"sample_count"`
}

// Snapshot is the server-side state handed back on pull.
type Snapshot struct {
	Bmi      []*record.BmiEntry `json:"bmi"`
	Water    []*record.Sample   `json:"water"`
	Calories []*record.Sample   `json:"calories"`
}

type Service struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Push applies a client's batch in one transaction: every item validates or
// nothing lands. Per-date last-write-wins makes replaying the same batch a
// no-op, so clients can retry freely.
func (s *Service) Push(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID, device string,
	bmi []PushedBmi,
	samples []PushedSample,
) (*PushResult, error) {
	for _, b := range bmi {
		if err := validateDate(b.Date); err != nil {
			return nil, err
		}
		if b.BMI <= 0 || math.IsInf(b.BMI, 0) || math.IsNaN(b.BMI) {
			return nil, errors.Join(fmt.Errorf("bmi must be a positive finite number, got %v", b.BMI), health.ErrInvalidInput)
		}
	}
	for _, smp := range samples {
		if err := validateDate(smp.Date); err != nil {
			return nil, err
		}
		if smp.Kind != record.KindWater && smp.Kind != record.KindCalories {
			return nil, errors.Join(fmt.Errorf("unknown sample kind %q", smp.Kind), health.ErrInvalidInput)
		}
		if smp.Value < 0 || math.IsInf(smp.Value, 0) || math.IsNaN(smp.Value) {
			return nil, errors.Join(fmt.Errorf("sample value must be a non-negative finite number, got %v", smp.Value), health.ErrInvalidInput)
		}
	}

	outErr := uow.Atomic(ctx, func(a *AtomicContext) error {
		for _, b := range bmi {
			entry := &record.BmiEntry{
				UserID:     userID,
				Date:       b.Date,
				BMI:        b.BMI,
				RecordedAt: b.RecordedAt,
			}
			if err := a.Records.UpsertBmi(a.Context(), entry); err != nil {
				return err
			}
		}

		for _, smp := range samples {
			sample := &record.Sample{
				UserID:     userID,
				Kind:       smp.Kind,
				Date:       smp.Date,
				Value:      smp.Value,
				RecordedAt: smp.RecordedAt,
			}
			if err := a.Records.PutSample(a.Context(), sample); err != nil {
				return err
			}
		}

		return a.Commit()
	})
	if outErr != nil {
		return nil, outErr
	}

	s.logger.Info("sync push applied",
		"user_id", userID,
		"device", device,
		"bmi_count", len(bmi),
		"sample_count", len(samples),
	)
	return &PushResult{BmiCount: len(bmi), SampleCount: len(samples)}, nil
}

// Pull returns the user's records from sinceDate on, everything when empty.
func (s *Service) Pull(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID, sinceDate string,
) (snapshot *Snapshot, outErr error) {
	if sinceDate != "" {
		if err := validateDate(sinceDate); err != nil {
			return nil, err
		}
	}

	outErr = uow.Atomic(ctx, func(a *AtomicContext) error {
		snapshot = &Snapshot{}

		var err error
		if snapshot.Bmi, err = a.Records.ListBmi(a.Context(), userID, sinceDate); err != nil {
			return err
		}
		if snapshot.Water, err = a.Records.ListSamples(a.Context(), userID, record.KindWater, sinceDate); err != nil {
			return err
		}
		if snapshot.Calories, err = a.Records.ListSamples(a.Context(), userID, record.KindCalories, sinceDate); err != nil {
			return err
		}

		return a.Commit()
	})
	if outErr != nil {
		return nil, outErr
	}
	return snapshot, nil
}

func validateDate(date string) error {
	if _, err := time.Parse(health.DateLayout, date); err != nil {
		return errors.Join(fmt.Errorf("invalid date %q", date), health.ErrInvalidInput)
	}
	return nil
}
