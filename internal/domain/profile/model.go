package profile

import (
	"errors"
	"time"

	"healthtrack/internal/domain"
	"healthtrack/internal/domain/health"
)

var (
	ErrProfileExists   = errors.New("profile already exists")
	ErrProfileNotFound = errors.New("profile not found")
)

const EventMeasurementSaved = "profile.measurement_saved"

// Profile is the per-user measurement aggregate: the raw inputs every derived
// metric is computed from, plus the selected goal. Derived values (BMI,
// calorie and water targets) are never stored here; they are recomputed by
// the health engine on demand.
type Profile struct {
	domain.Aggregate `diff:"-"`
	UserID           string               `diff:"-"`
	Height           float64              `diff:"height"`
	Weight           float64              `diff:"weight"`
	Age              int                  `diff:"age"`
	Gender           health.Gender        `diff:"gender"`
	ActivityLevel    health.ActivityLevel `diff:"activity_level"`
	Unit             health.Unit          `diff:"unit"`
	Goal             health.Goal          `diff:"goal"`
	CreatedAt        time.Time            `diff:"-"`
	UpdatedAt        time.Time            `diff:"updated_at"`
}

func New(userID string, m health.Measurement, goal health.Goal, now time.Time) *Profile {
	p := &Profile{
		UserID:        userID,
		Height:        m.Height,
		Weight:        m.Weight,
		Age:           m.Age,
		Gender:        m.Gender,
		ActivityLevel: m.ActivityLevel,
		Unit:          m.Unit,
		Goal:          goal,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	p.PushEvent(MeasurementSavedEvent{At: now, UserID: userID})
	return p
}

// Measurement returns the stored inputs as the engine's immutable value type.
func (p *Profile) Measurement() health.Measurement {
	return health.Measurement{
		Height:        p.Height,
		Weight:        p.Weight,
		Age:           p.Age,
		Gender:        p.Gender,
		ActivityLevel: p.ActivityLevel,
		Unit:          p.Unit,
	}
}

// ApplyMeasurement replaces the stored inputs with a new reading.
func (p *Profile) ApplyMeasurement(m health.Measurement, goal health.Goal, now time.Time) {
	p.Height = m.Height
	p.Weight = m.Weight
	p.Age = m.Age
	p.Gender = m.Gender
	p.ActivityLevel = m.ActivityLevel
	p.Unit = m.Unit
	p.Goal = goal
	p.UpdatedAt = now
	p.PushEvent(MeasurementSavedEvent{At: now, UserID: p.UserID})
}

type MeasurementSavedEvent struct {
	At     time.Time
	UserID string
}

func (e MeasurementSavedEvent) Type() string {
	return EventMeasurementSaved
}

func (e MeasurementSavedEvent) PublishedAt() time.Time {
	return e.At
}
