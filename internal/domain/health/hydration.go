package health

import "math"

// WaterTargetML recommends a daily water intake in milliliters: 30 ml per kg
// of body weight, plus 500 ml for active users and another 500 ml above the
// overweight threshold. The value is canonically milliliters; display
// conversion is the caller's concern (MLToDisplayVolume).
func WaterTargetML(weightKg float64, level ActivityLevel, bmi float64) (int, error) {
	if !positive(weightKg) {
		return 0, invalidInput("weight must be a positive finite number, got %v", weightKg)
	}
	if _, ok := activityMultipliers[level]; !ok {
		return 0, invalidInput("unknown activity level %q", level)
	}

	target := int(math.Round(weightKg * 30))
	if level == ActivityActive || level == ActivityVeryActive {
		target += 500
	}
	if bmi > 25 {
		target += 500
	}
	return target, nil
}
