package profile_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/internal/domain/health"
	"healthtrack/internal/domain/profile"
)

func measurement() health.Measurement {
	return health.Measurement{
		Height:        175,
		Weight:        70,
		Age:           30,
		Gender:        health.GenderMale,
		ActivityLevel: health.ActivityModerate,
		Unit:          health.UnitMetric,
	}
}

func TestNew_PushesMeasurementSavedEvent(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	p := profile.New("user-1", measurement(), health.GoalIdeal, now)

	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, now, p.UpdatedAt)
	assert.Equal(t, measurement(), p.Measurement())

	events := p.PopEvents()
	require.Len(t, events, 1)
	assert.Equal(t, profile.EventMeasurementSaved, events[0].Type())
	assert.Empty(t, p.PopEvents())
}

func TestApplyMeasurement_ReplacesInputs(t *testing.T) {
	created := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	updated := created.AddDate(0, 0, 7)

	p := profile.New("user-1", measurement(), health.GoalIdeal, created)
	p.PopEvents()

	next := measurement()
	next.Weight = 68.5
	p.ApplyMeasurement(next, health.GoalBulking, updated)

	assert.Equal(t, 68.5, p.Weight)
	assert.Equal(t, health.GoalBulking, p.Goal)
	assert.Equal(t, created, p.CreatedAt)
	assert.Equal(t, updated, p.UpdatedAt)

	events := p.PopEvents()
	require.Len(t, events, 1)
	assert.Equal(t, profile.EventMeasurementSaved, events[0].Type())
}
