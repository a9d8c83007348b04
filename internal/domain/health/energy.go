package health

import "math"

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.20,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.90,
}

// goalAdjustments for the "ideal" goal, keyed by the current BMI category.
var goalAdjustments = map[Category]float64{
	CategoryUnderweight: 1.10,
	CategoryNormal:      1.00,
	CategoryOverweight:  0.90,
	CategoryObese:       0.80,
}

const bulkingSurplus = 1.15

// ComputeBMR estimates the basal metabolic rate in kcal/day with the
// Mifflin-St Jeor equation over metric-normalized weight and height.
func ComputeBMR(m Measurement) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	weightKg := ToMetricWeight(m.Weight, m.Unit)
	heightCm := ToMetricHeight(m.Height, m.Unit)

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(m.Age)
	if m.Gender == GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr, nil
}

// ActivityMultiplier returns the TDEE multiplier for a level. An unrecognized
// level is an input error, never a silent sedentary default.
func ActivityMultiplier(level ActivityLevel) (float64, error) {
	mult, ok := activityMultipliers[level]
	if !ok {
		return 0, invalidInput("unknown activity level %q", level)
	}
	return mult, nil
}

// MaintenanceCalories is the BMR scaled by the activity multiplier: the
// energy needed to hold the current weight.
func MaintenanceCalories(m Measurement) (float64, error) {
	bmr, err := ComputeBMR(m)
	if err != nil {
		return 0, err
	}
	mult, err := ActivityMultiplier(m.ActivityLevel)
	if err != nil {
		return 0, err
	}
	return bmr * mult, nil
}

// DailyCalorieTarget is the quick target shown by the BMI calculator flow:
// maintenance scaled by a goal adjustment. Bulking always gets a 15% surplus;
// the ideal goal adjusts by the current BMI category.
func DailyCalorieTarget(m Measurement, bmi float64, goal Goal) (int, error) {
	maintenance, err := MaintenanceCalories(m)
	if err != nil {
		return 0, err
	}

	var adjustment float64
	switch goal {
	case GoalBulking:
		adjustment = bulkingSurplus
	case GoalIdeal:
		adjustment = goalAdjustments[Categorize(bmi)]
	default:
		return 0, invalidInput("unknown goal %q", goal)
	}

	return int(math.Round(maintenance * adjustment)), nil
}

const minDailyCalories = 1200

// PlanCalorieTarget is the weight-management target: maintenance minus a 500
// kcal deficit, or 750 when more than 10 kg must change. The 1200 kcal floor
// is a hard safety clamp.
func PlanCalorieTarget(maintenance, weightDeltaKg float64) int {
	deficit := 500.0
	if weightDeltaKg > 10 {
		deficit = 750
	}
	return int(math.Max(minDailyCalories, math.Round(maintenance-deficit)))
}
