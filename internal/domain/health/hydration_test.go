package health_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/internal/domain/health"
)

func TestWaterTargetML(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		level    health.ActivityLevel
		bmi      float64
		want     int
	}{
		{"base", 70, health.ActivityModerate, 22, 2100},
		{"active bonus", 70, health.ActivityActive, 22, 2600},
		{"very active bonus", 70, health.ActivityVeryActive, 22, 2600},
		{"overweight bonus", 70, health.ActivityModerate, 27, 2600},
		{"both bonuses", 80, health.ActivityVeryActive, 30, 3400},
		{"boundary bmi 25 gets no bonus", 70, health.ActivityModerate, 25, 2100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := health.WaterTargetML(tc.weightKg, tc.level, tc.bmi)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWaterTargetML_InvalidInput(t *testing.T) {
	_, err := health.WaterTargetML(0, health.ActivityModerate, 22)
	assert.ErrorIs(t, err, health.ErrInvalidInput)

	_, err = health.WaterTargetML(70, "none", 22)
	assert.ErrorIs(t, err, health.ErrInvalidInput)
}
