package health_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"healthtrack/internal/domain/health"
)

func TestConversions(t *testing.T) {
	assert.Equal(t, 175.0, health.ToMetricHeight(175, health.UnitMetric))
	assert.InDelta(t, 175.26, health.ToMetricHeight(69, health.UnitImperial), 0.001)

	assert.Equal(t, 70.0, health.ToMetricWeight(70, health.UnitMetric))
	assert.InDelta(t, 69.853, health.ToMetricWeight(154, health.UnitImperial), 0.001)

	assert.Equal(t, 70.0, health.FromMetricWeight(70, health.UnitMetric))
	assert.InDelta(t, 154.32, health.FromMetricWeight(70, health.UnitImperial), 0.01)

	assert.Equal(t, 2000.0, health.MLToDisplayVolume(2000, health.UnitMetric))
	assert.InDelta(t, 67.63, health.MLToDisplayVolume(2000, health.UnitImperial), 0.01)
}

func TestConversions_RoundTrip(t *testing.T) {
	kg := health.ToMetricWeight(154, health.UnitImperial)
	lb := health.FromMetricWeight(kg, health.UnitImperial)
	assert.InDelta(t, 154, lb, 0.01)
}
