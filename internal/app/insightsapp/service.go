package insightsapp

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/lo"

	"healthtrack/internal/app/unitofwork"
	"healthtrack/internal/domain/health"
	"healthtrack/internal/domain/record"
)

// Insight is a machine-readable observation code. The engine never formats
// user-facing text; clients translate codes themselves.
type Insight string

const (
	InsightBmiImproving    Insight = "bmi_improving"
	InsightBmiRising       Insight = "bmi_rising"
	InsightBmiRecovering   Insight = "bmi_recovering"
	InsightBmiDeclining    Insight = "bmi_declining"
	InsightWaterSteady     Insight = "water_steady"
	InsightWaterErratic    Insight = "water_erratic"
	InsightCaloriesSteady  Insight = "calories_steady"
	InsightCaloriesErratic Insight = "calories_erratic"
)

const (
	steadyConsistency  = 0.8
	erraticConsistency = 0.5

	defaultForecastDays = 30
)

// Dashboard is the combined insights view: per-series trends, the merged daily
// history, a short-horizon BMI forecast and the derived insight codes.
type Dashboard struct {
	BmiTrend     health.TrendResult  `json:"bmi_trend"`
	WaterTrend   health.TrendResult  `json:"water_trend"`
	CalorieTrend health.TrendResult  `json:"calorie_trend"`
	History      []health.AlignedRow `json:"history"`
	Forecast     *health.Forecast    `json:"forecast,omitempty"`
	Insights     []Insight           `json:"insights"`
}

type Service struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Dashboard loads the user's history from sinceDate on (everything when
// empty) and derives trends, the aligned history and insight codes. A history
// too short to forecast yields a dashboard without a forecast, not an error.
func (s *Service) Dashboard(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID, sinceDate string,
) (*Dashboard, error) {
	var (
		bmiEntries []*record.BmiEntry
		water      []*record.Sample
		calories   []*record.Sample
	)

	outErr := uow.Atomic(ctx, func(a *AtomicContext) error {
		var err error
		if bmiEntries, err = a.Records.ListBmi(a.Context(), userID, sinceDate); err != nil {
			return err
		}
		if water, err = a.Records.ListSamples(a.Context(), userID, record.KindWater, sinceDate); err != nil {
			return err
		}
		if calories, err = a.Records.ListSamples(a.Context(), userID, record.KindCalories, sinceDate); err != nil {
			return err
		}

		return a.Commit()
	})
	if outErr != nil {
		return nil, outErr
	}

	bmiRecords := lo.Map(bmiEntries, func(e *record.BmiEntry, _ int) health.BmiRecord {
		return health.BmiRecord{Date: e.Date, BMI: e.BMI}
	})
	waterSamples := lo.Map(water, func(smp *record.Sample, _ int) health.DailySample {
		return health.DailySample{Date: smp.Date, Value: smp.Value}
	})
	calorieSamples := lo.Map(calories, func(smp *record.Sample, _ int) health.DailySample {
		return health.DailySample{Date: smp.Date, Value: smp.Value}
	})

	bmiTrend, err := health.Trend(lo.Map(bmiRecords, func(r health.BmiRecord, _ int) float64 { return r.BMI }))
	if err != nil {
		return nil, err
	}
	waterTrend, err := health.Trend(lo.Map(waterSamples, func(smp health.DailySample, _ int) float64 { return smp.Value }))
	if err != nil {
		return nil, err
	}
	calorieTrend, err := health.Trend(lo.Map(calorieSamples, func(smp health.DailySample, _ int) float64 { return smp.Value }))
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		BmiTrend:     bmiTrend,
		WaterTrend:   waterTrend,
		CalorieTrend: calorieTrend,
		History:      health.AlignByDate(bmiRecords, waterSamples, calorieSamples),
	}

	forecast, err := health.ForecastBMI(bmiRecords, defaultForecastDays)
	if err != nil && !errors.Is(err, health.ErrInsufficientData) {
		return nil, err
	}
	d.Forecast = forecast

	d.Insights = deriveInsights(bmiRecords, bmiTrend, waterTrend, calorieTrend)
	return d, nil
}

// Plan generates a weight-management plan from the stored profile. A zero
// targetBMI asks for the default target.
func (s *Service) Plan(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID string,
	targetBMI float64,
) (*health.PlanResult, error) {
	if targetBMI == 0 {
		targetBMI = health.DefaultTargetBMI
	}

	var m health.Measurement
	outErr := uow.Atomic(ctx, func(a *AtomicContext) error {
		p, err := a.Profiles.GetByID(a.Context(), userID)
		if err != nil {
			return err
		}
		m = p.Measurement()

		return a.Commit()
	})
	if outErr != nil {
		return nil, outErr
	}

	bmi, err := health.ComputeBMI(m)
	if err != nil {
		return nil, err
	}
	return health.BuildPlan(m, bmi, targetBMI)
}

// deriveInsights turns trend numbers into codes. BMI codes depend on both the
// slope direction and where the latest value sits relative to the normal
// range; intake codes depend only on consistency.
func deriveInsights(bmiRecords []health.BmiRecord, bmiTrend, waterTrend, calorieTrend health.TrendResult) []Insight {
	insights := make([]Insight, 0, 4)

	if len(bmiRecords) > 0 {
		last := health.SortRecordsByDate(bmiRecords)[len(bmiRecords)-1].BMI
		lastCategory := health.Categorize(last)

		switch {
		case bmiTrend.Slope < 0 && (lastCategory == health.CategoryOverweight || lastCategory == health.CategoryObese):
			insights = append(insights, InsightBmiImproving)
		case bmiTrend.Slope > 0 && lastCategory == health.CategoryUnderweight:
			insights = append(insights, InsightBmiRecovering)
		case bmiTrend.Slope > 0 && (lastCategory == health.CategoryOverweight || lastCategory == health.CategoryObese):
			insights = append(insights, InsightBmiRising)
		case bmiTrend.Slope < 0 && lastCategory == health.CategoryUnderweight:
			insights = append(insights, InsightBmiDeclining)
		}
	}

	switch {
	case waterTrend.ConsistencyScore >= steadyConsistency:
		insights = append(insights, InsightWaterSteady)
	case waterTrend.ConsistencyScore < erraticConsistency:
		insights = append(insights, InsightWaterErratic)
	}

	switch {
	case calorieTrend.ConsistencyScore >= steadyConsistency:
		insights = append(insights, InsightCaloriesSteady)
	case calorieTrend.ConsistencyScore < erraticConsistency:
		insights = append(insights, InsightCaloriesErratic)
	}

	return insights
}
