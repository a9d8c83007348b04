package trackerapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"healthtrack/internal/app/unitofwork"
	"healthtrack/internal/domain/health"
	"healthtrack/internal/domain/record"
)

// DayTotals is one day of intake: the accumulated water and calorie samples
// plus the individual meals behind the calorie total.
type DayTotals struct {
	Date     string         `json:"date"`
	WaterML  float64        `json:"water_ml"`
	Calories float64        `json:"calories"`
	Meals    []*record.Meal `json:"meals"`
}

type Service struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// AddWater accumulates a water intake into the day's sample and returns the
// day's new total. The accumulation happens inside the database, so two
// concurrent additions both land.
func (s *Service) AddWater(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID, date string,
	amountML float64,
	now time.Time,
) (total float64, outErr error) {
	if err := validateDate(date); err != nil {
		return 0, err
	}
	if err := validateAmount("water amount", amountML); err != nil {
		return 0, err
	}

	outErr = uow.Atomic(ctx, func(a *AtomicContext) error {
		sample := &record.Sample{
			UserID:     userID,
			Kind:       record.KindWater,
			Date:       date,
			Value:      amountML,
			RecordedAt: now,
		}
		if err := a.Records.AddToSample(a.Context(), sample); err != nil {
			return err
		}

		current, err := a.Records.GetSample(a.Context(), userID, record.KindWater, date)
		if err != nil {
			return err
		}
		total = current.Value

		return a.Commit()
	})
	return total, outErr
}

// LogMeal stores a meal and adds its calories to the day's sample, returning
// the meal with its generated id and the day's new calorie total.
func (s *Service) LogMeal(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID, date, name string,
	calories float64,
	now time.Time,
) (meal *record.Meal, total float64, outErr error) {
	if err := validateDate(date); err != nil {
		return nil, 0, err
	}
	if name == "" {
		return nil, 0, errors.Join(fmt.Errorf("meal name must not be empty"), health.ErrInvalidInput)
	}
	if err := validateAmount("meal calories", calories); err != nil {
		return nil, 0, err
	}

	meal = &record.Meal{
		MealID:   uuid.NewString(),
		UserID:   userID,
		Date:     date,
		Name:     name,
		Calories: calories,
		LoggedAt: now,
	}

	outErr = uow.Atomic(ctx, func(a *AtomicContext) error {
		if err := a.Meals.Add(a.Context(), meal); err != nil {
			return err
		}

		sample := &record.Sample{
			UserID:     userID,
			Kind:       record.KindCalories,
			Date:       date,
			Value:      calories,
			RecordedAt: now,
		}
		if err := a.Records.AddToSample(a.Context(), sample); err != nil {
			return err
		}

		current, err := a.Records.GetSample(a.Context(), userID, record.KindCalories, date)
		if err != nil {
			return err
		}
		total = current.Value

		return a.Commit()
	})
	if outErr != nil {
		return nil, 0, outErr
	}
	return meal, total, nil
}

// RemoveMeal deletes a meal and subtracts its calories from the day's sample
// in the same transaction, so the total never drifts from the meal list.
func (s *Service) RemoveMeal(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID, mealID string,
	now time.Time,
) (total float64, outErr error) {
	outErr = uow.Atomic(ctx, func(a *AtomicContext) error {
		meal, err := a.Meals.GetByID(a.Context(), userID, mealID)
		if err != nil {
			return err
		}

		if err := a.Meals.Delete(a.Context(), userID, mealID); err != nil {
			return err
		}

		sample := &record.Sample{
			UserID:     userID,
			Kind:       record.KindCalories,
			Date:       meal.Date,
			Value:      -meal.Calories,
			RecordedAt: now,
		}
		if err := a.Records.AddToSample(a.Context(), sample); err != nil {
			return err
		}

		current, err := a.Records.GetSample(a.Context(), userID, record.KindCalories, meal.Date)
		if err != nil {
			return err
		}
		total = current.Value

		return a.Commit()
	})
	return total, outErr
}

// Day returns one day's totals and meals. Missing samples read as zero; a day
// with nothing logged is an empty day, not an error.
func (s *Service) Day(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID, date string,
) (day *DayTotals, outErr error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	outErr = uow.Atomic(ctx, func(a *AtomicContext) error {
		day = &DayTotals{Date: date, Meals: []*record.Meal{}}

		water, err := a.Records.GetSample(a.Context(), userID, record.KindWater, date)
		if err != nil && !errors.Is(err, record.ErrNotFound) {
			return err
		}
		if water != nil {
			day.WaterML = water.Value
		}

		calories, err := a.Records.GetSample(a.Context(), userID, record.KindCalories, date)
		if err != nil && !errors.Is(err, record.ErrNotFound) {
			return err
		}
		if calories != nil {
			day.Calories = calories.Value
		}

		meals, err := a.Meals.ListByDate(a.Context(), userID, date)
		if err != nil {
			return err
		}
		if meals != nil {
			day.Meals = meals
		}

		return a.Commit()
	})
	if outErr != nil {
		return nil, outErr
	}
	return day, nil
}

func validateDate(date string) error {
	if _, err := time.Parse(health.DateLayout, date); err != nil {
		return errors.Join(fmt.Errorf("invalid date %q", date), health.ErrInvalidInput)
	}
	return nil
}

func validateAmount(what string, v float64) error {
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return errors.Join(fmt.Errorf("%s must be a positive finite number, got %v", what, v), health.ErrInvalidInput)
	}
	return nil
}
