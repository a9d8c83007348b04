package profileapp

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"healthtrack/internal/app/unitofwork"
	"healthtrack/internal/domain/health"
	"healthtrack/internal/domain/profile"
	"healthtrack/internal/domain/record"
)

// Summary is everything derived from one measurement: the values the client
// shows right after saving. Nothing here is stored except the BMI, which is
// upserted into the history under the measurement's date.
type Summary struct {
	BMI                float64         `json:"bmi"`
	Category           health.Category `json:"category"`
	DailyCalorieTarget int             `json:"daily_calorie_target"`
	WaterTargetML      int             `json:"water_target_ml"`
}

type Service struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// SaveMeasurement validates and stores a measurement, recomputes the derived
// summary and upserts the day's BMI record. Saving twice on the same day
// overwrites the day's BMI instead of appending a second point.
func (s *Service) SaveMeasurement(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID string,
	m health.Measurement,
	goal health.Goal,
	now time.Time,
) (*Summary, error) {
	summary, err := computeSummary(m, goal)
	if err != nil {
		return nil, err
	}

	outErr := uow.Atomic(ctx, func(a *AtomicContext) error {
		p, err := a.Profiles.GetByID(a.Context(), userID)
		switch {
		case errors.Is(err, profile.ErrProfileNotFound):
			p = profile.New(userID, m, goal, now)
			if err := a.Profiles.Add(a.Context(), p); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			p.ApplyMeasurement(m, goal, now)
			if err := a.Profiles.Persist(a.Context(), p); err != nil {
				return err
			}
		}

		entry := &record.BmiEntry{
			UserID:     userID,
			Date:       now.Format(health.DateLayout),
			BMI:        summary.BMI,
			RecordedAt: now,
		}
		if err := a.Records.UpsertBmi(a.Context(), entry); err != nil {
			return err
		}

		return a.Commit()
	})
	if outErr != nil {
		return nil, outErr
	}

	return summary, nil
}

// GetProfile loads the stored measurement together with a freshly computed
// summary, so a formula change shows up without re-saving.
func (s *Service) GetProfile(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID string,
) (p *profile.Profile, summary *Summary, outErr error) {
	outErr = uow.Atomic(ctx, func(a *AtomicContext) error {
		var err error
		if p, err = a.Profiles.GetByID(a.Context(), userID); err != nil {
			return err
		}

		return a.Commit()
	})
	if outErr != nil {
		return nil, nil, outErr
	}

	if summary, outErr = computeSummary(p.Measurement(), p.Goal); outErr != nil {
		return nil, nil, outErr
	}
	return p, summary, nil
}

func computeSummary(m health.Measurement, goal health.Goal) (*Summary, error) {
	bmi, err := health.ComputeBMI(m)
	if err != nil {
		return nil, err
	}

	calories, err := health.DailyCalorieTarget(m, bmi, goal)
	if err != nil {
		return nil, err
	}

	water, err := health.WaterTargetML(health.ToMetricWeight(m.Weight, m.Unit), m.ActivityLevel, bmi)
	if err != nil {
		return nil, err
	}

	return &Summary{
		BMI:                bmi,
		Category:           health.Categorize(bmi),
		DailyCalorieTarget: calories,
		WaterTargetML:      water,
	}, nil
}
