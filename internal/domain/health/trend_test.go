package health_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/internal/domain/health"
)

func TestLinearSlope(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   float64
	}{
		{"arithmetic series", []float64{20, 21, 22, 23}, 1},
		{"constant series", []float64{25, 25, 25}, 0},
		{"descending", []float64{30, 28, 26}, -2},
		{"single point is flat", []float64{42}, 0},
		{"empty is flat", nil, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := health.LinearSlope(tc.series)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestConsistencyScore(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   float64
	}{
		{"constant is perfect", []float64{2000, 2000, 2000}, 1},
		{"high variation scores zero", []float64{0, 4000}, 0},
		{"all zeros are perfect", []float64{0, 0, 0}, 1},
		{"single point is perfect", []float64{1500}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, health.ConsistencyScore(tc.series), 1e-9)
		})
	}
}

func TestConsistencyScore_Range(t *testing.T) {
	series := []float64{1800, 2200, 1900, 2100, 2000}
	score := health.ConsistencyScore(series)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
	assert.Greater(t, score, 0.8, "mild variation should score high")
}

func TestTrend(t *testing.T) {
	got, err := health.Trend([]float64{20, 21, 22, 23})
	require.NoError(t, err)
	assert.InDelta(t, 1, got.Slope, 1e-9)
	assert.Greater(t, got.ConsistencyScore, 0.9)
}

func TestForecastBMI(t *testing.T) {
	history := []float64{25, 25.5, 26}
	records := []health.BmiRecord{
		{Date: "2024-01-03", BMI: history[2]},
		{Date: "2024-01-01", BMI: history[0]},
		{Date: "2024-01-02", BMI: history[1]},
	}

	f, err := health.ForecastBMI(records, 5)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, f.Slope, 1e-9)
	require.Len(t, f.Points, 5)
	assert.Equal(t, health.BmiRecord{Date: "2024-01-04", BMI: 26.5}, f.Points[0])
	assert.Equal(t, health.BmiRecord{Date: "2024-01-05", BMI: 27.0}, f.Points[1])

	// (22 - 26) / 0.5 = -8 days, reported as a distance of 8 days.
	assert.Equal(t, "2024-01-11", f.TargetDate)
}

func TestForecastBMI_ClampsPredictions(t *testing.T) {
	records := []health.BmiRecord{
		{Date: "2024-01-01", BMI: 33},
		{Date: "2024-01-02", BMI: 34},
		{Date: "2024-01-03", BMI: 35},
	}

	f, err := health.ForecastBMI(records, 10)
	require.NoError(t, err)
	for _, p := range f.Points {
		assert.LessOrEqual(t, p.BMI, 35.0)
		assert.GreaterOrEqual(t, p.BMI, 18.5)
	}
}

func TestForecastBMI_FlatTrendHasNoTargetDate(t *testing.T) {
	records := []health.BmiRecord{
		{Date: "2024-01-01", BMI: 24},
		{Date: "2024-01-02", BMI: 24},
		{Date: "2024-01-03", BMI: 24},
	}

	f, err := health.ForecastBMI(records, 3)
	require.NoError(t, err)
	assert.Empty(t, f.TargetDate)
}

func TestForecastBMI_InsufficientData(t *testing.T) {
	records := []health.BmiRecord{
		{Date: "2024-01-01", BMI: 24},
		{Date: "2024-01-02", BMI: 24.5},
	}
	_, err := health.ForecastBMI(records, 30)
	assert.ErrorIs(t, err, health.ErrInsufficientData)
}
