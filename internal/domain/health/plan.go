package health

import "math"

// DefaultTargetBMI is the midpoint of the normal BMI range and the default
// goal for generated weight-management plans.
const DefaultTargetBMI = 22.0

// kcalPerKg approximates the energy content of 1 kg of adipose tissue.
const kcalPerKg = 7700.0

const maxProjectionWeeks = 52

// ProjectionPoint is one week of the projected weight trajectory, in the
// measurement's original unit. Week 0 is the starting weight.
type ProjectionPoint struct {
	Week   int     `json:"week"`
	Weight float64 `json:"weight"`
}

// PlanResult is a generated weight-management plan. All weight values are in
// the measurement's original unit; WeightDelta is current minus target, so a
// positive value means loss is needed.
type PlanResult struct {
	TargetBMI          float64           `json:"target_bmi"`
	TargetWeight       float64           `json:"target_weight"`
	WeightDelta        float64           `json:"weight_delta"`
	DailyCalorieTarget int               `json:"daily_calorie_target"`
	WeeksToGoal        int               `json:"weeks_to_goal"`
	MonthsToGoal       int               `json:"months_to_goal"`
	Projection         []ProjectionPoint `json:"projection"`
}

// BuildPlan produces a week-by-week trajectory from the current weight toward
// the weight implied by targetBMI, driven by the plan calorie deficit. When
// the current weight is already below target the same math yields a
// gain-oriented path, mirroring the bulking goal.
func BuildPlan(m Measurement, bmi, targetBMI float64) (*PlanResult, error) {
	// Checked before any arithmetic so a zero height can never reach the
	// divisions below.
	if !positive(m.Height) || !positive(m.Weight) || m.Age <= 0 || !positive(bmi) {
		return nil, insufficientData("height, weight, age and bmi are all required for a plan")
	}
	if !positive(targetBMI) {
		return nil, invalidInput("target bmi must be a positive finite number, got %v", targetBMI)
	}

	heightM := ToMetricHeight(m.Height, m.Unit) / 100
	weightKg := ToMetricWeight(m.Weight, m.Unit)

	targetWeightKg := targetBMI * heightM * heightM
	deltaKg := weightKg - targetWeightKg

	maintenance, err := MaintenanceCalories(m)
	if err != nil {
		return nil, err
	}

	dailyTarget := PlanCalorieTarget(maintenance, math.Abs(deltaKg))

	// Recomputed from the clamped target so the 1200 kcal floor also slows
	// the projected rate, not just the displayed calories.
	deficit := maintenance - float64(dailyTarget)
	weeklyChangeKg := deficit * 7 / kcalPerKg
	if weeklyChangeKg <= 0 {
		return nil, degenerateProjection("weekly weight change is %v kg", weeklyChangeKg)
	}

	weeksExact := math.Abs(deltaKg) / weeklyChangeKg
	weeks := int(math.Round(weeksExact))
	months := int(math.Round(weeksExact / 4.33))

	lastWeek := int(math.Min(maxProjectionWeeks, math.Ceil(weeksExact)))
	projection := make([]ProjectionPoint, 0, lastWeek+1)
	for week := 0; week <= lastWeek; week++ {
		w := weightKg - float64(week)*weeklyChangeKg
		if deltaKg >= 0 {
			w = math.Max(w, targetWeightKg)
		} else {
			w = weightKg + float64(week)*weeklyChangeKg
			w = math.Min(w, targetWeightKg)
		}
		projection = append(projection, ProjectionPoint{
			Week:   week,
			Weight: round1(FromMetricWeight(w, m.Unit)),
		})
	}

	return &PlanResult{
		TargetBMI:          targetBMI,
		TargetWeight:       round1(FromMetricWeight(targetWeightKg, m.Unit)),
		WeightDelta:        round1(FromMetricWeight(deltaKg, m.Unit)),
		DailyCalorieTarget: dailyTarget,
		WeeksToGoal:        weeks,
		MonthsToGoal:       months,
		Projection:         projection,
	}, nil
}

func insufficientData(format string, args ...any) error {
	return joinErr(ErrInsufficientData, format, args...)
}

func degenerateProjection(format string, args ...any) error {
	return joinErr(ErrDegenerateProjection, format, args...)
}
