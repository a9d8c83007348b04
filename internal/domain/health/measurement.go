// Package health is the derived-metrics engine: pure functions that turn raw
// measurements and time-series history into BMI classification, calorie and
// water targets, weight projections and trend statistics. The package holds no
// state, performs no I/O and never formats user-facing text; callers persist
// inputs and outputs themselves.
package health

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInsufficientData     = errors.New("insufficient data")
	ErrDegenerateProjection = errors.New("degenerate projection")
)

type Unit string

const (
	UnitMetric   Unit = "metric"
	UnitImperial Unit = "imperial"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very-active"
)

type Goal string

const (
	GoalIdeal   Goal = "ideal"
	GoalBulking Goal = "bulking"
)

// Measurement is the immutable input to every calculation. Height is
// centimeters and Weight kilograms when Unit is metric, inches and pounds
// when imperial.
type Measurement struct {
	Height        float64
	Weight        float64
	Age           int
	Gender        Gender
	ActivityLevel ActivityLevel
	Unit          Unit
}

func (m Measurement) Validate() error {
	if !positive(m.Height) {
		return invalidInput("height must be a positive finite number, got %v", m.Height)
	}
	if !positive(m.Weight) {
		return invalidInput("weight must be a positive finite number, got %v", m.Weight)
	}
	if m.Age <= 0 {
		return invalidInput("age must be a positive integer, got %d", m.Age)
	}
	if m.Gender != GenderMale && m.Gender != GenderFemale {
		return invalidInput("unknown gender %q", m.Gender)
	}
	if _, ok := activityMultipliers[m.ActivityLevel]; !ok {
		return invalidInput("unknown activity level %q", m.ActivityLevel)
	}
	if m.Unit != UnitMetric && m.Unit != UnitImperial {
		return invalidInput("unknown unit %q", m.Unit)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func invalidInput(format string, args ...any) error {
	return joinErr(ErrInvalidInput, format, args...)
}

func joinErr(kind error, format string, args ...any) error {
	return errors.Join(fmt.Errorf(format, args...), kind)
}

// round1 rounds half away from zero to one fractional digit.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
