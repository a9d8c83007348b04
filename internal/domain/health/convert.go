package health

const (
	cmPerInch  = 2.54
	kgPerPound = 0.453592
	lbPerKg    = 2.20462
	mlPerOunce = 29.574
)

// ToMetricHeight returns the height in centimeters.
func ToMetricHeight(v float64, u Unit) float64 {
	if u == UnitImperial {
		return v * cmPerInch
	}
	return v
}

// ToMetricWeight returns the weight in kilograms.
func ToMetricWeight(v float64, u Unit) float64 {
	if u == UnitImperial {
		return v * kgPerPound
	}
	return v
}

// FromMetricWeight converts kilograms to the display unit (pounds when imperial).
func FromMetricWeight(kg float64, u Unit) float64 {
	if u == UnitImperial {
		return kg * lbPerKg
	}
	return kg
}

// MLToDisplayVolume converts milliliters to the display unit (fluid ounces
// when imperial).
func MLToDisplayVolume(ml float64, u Unit) float64 {
	if u == UnitImperial {
		return ml / mlPerOunce
	}
	return ml
}
