package record

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrMealNotFound = errors.New("meal not found")
)

type Kind string

const (
	KindWater    Kind = "water"
	KindCalories Kind = "calories"
)

// BmiEntry is one persisted BMI value per user per calendar date. A later
// calculation for the same date overwrites the earlier one; RecordedAt
// decides the winner when local and synced writes race.
type BmiEntry struct {
	UserID     string
	Date       string
	BMI        float64
	RecordedAt time.Time
}

// Sample is one accumulated daily value (water in ml, calories in kcal) per
// user per date.
type Sample struct {
	UserID     string
	Kind       Kind
	Date       string
	Value      float64
	RecordedAt time.Time
}

// Meal is a single logged meal contributing to a day's calorie sample.
type Meal struct {
	MealID   string
	UserID   string
	Date     string
	Name     string
	Calories float64
	LoggedAt time.Time
}
