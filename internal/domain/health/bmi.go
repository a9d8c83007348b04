package health

type Category string

const (
	CategoryUnderweight Category = "underweight"
	CategoryNormal      Category = "normal"
	CategoryOverweight  Category = "overweight"
	CategoryObese       Category = "obese"
)

// ComputeBMI calculates the body mass index from a measurement, rounded to
// one fractional digit. Metric uses kg/m², imperial the 703 factor over
// squared inches.
func ComputeBMI(m Measurement) (float64, error) {
	if !positive(m.Height) || !positive(m.Weight) {
		return 0, invalidInput("height and weight must be positive finite numbers")
	}

	var bmi float64
	if m.Unit == UnitImperial {
		bmi = m.Weight * 703 / (m.Height * m.Height)
	} else {
		heightM := m.Height / 100
		bmi = m.Weight / (heightM * heightM)
	}
	return round1(bmi), nil
}

// Categorize maps a BMI value onto the WHO categories. Thresholds are
// half-open: 18.5 is already normal, 25.0 already overweight, 30.0 obese.
func Categorize(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}
