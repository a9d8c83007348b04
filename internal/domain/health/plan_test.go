package health_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/internal/domain/health"
)

func TestBuildPlan_WeightLoss(t *testing.T) {
	// target weight = 22 * 1.75² = 67.375 kg, so delta is exactly 5 kg.
	m := health.Measurement{
		Height:        175,
		Weight:        72.375,
		Age:           30,
		Gender:        health.GenderMale,
		ActivityLevel: health.ActivityModerate,
		Unit:          health.UnitMetric,
	}
	bmi, err := health.ComputeBMI(m)
	require.NoError(t, err)

	plan, err := health.BuildPlan(m, bmi, health.DefaultTargetBMI)
	require.NoError(t, err)

	assert.Equal(t, 22.0, plan.TargetBMI)
	assert.Equal(t, 67.4, plan.TargetWeight)
	assert.Equal(t, 5.0, plan.WeightDelta)
	// maintenance ≈ 2592.4, small delta → 500 deficit, weekly ≈ 0.455 kg
	assert.Equal(t, 2092, plan.DailyCalorieTarget)
	assert.Equal(t, 11, plan.WeeksToGoal)
	assert.Equal(t, 3, plan.MonthsToGoal)

	require.NotEmpty(t, plan.Projection)
	assert.Equal(t, 0, plan.Projection[0].Week)
	assert.Equal(t, 72.4, plan.Projection[0].Weight)
	assert.LessOrEqual(t, len(plan.Projection), 53)

	for i := 1; i < len(plan.Projection); i++ {
		assert.Equal(t, i, plan.Projection[i].Week)
		assert.LessOrEqual(t, plan.Projection[i].Weight, plan.Projection[i-1].Weight)
		assert.GreaterOrEqual(t, plan.Projection[i].Weight, plan.TargetWeight)
	}
}

func TestBuildPlan_Idempotent(t *testing.T) {
	m := health.Measurement{
		Height:        160,
		Weight:        85,
		Age:           45,
		Gender:        health.GenderFemale,
		ActivityLevel: health.ActivityLight,
		Unit:          health.UnitMetric,
	}
	bmi, err := health.ComputeBMI(m)
	require.NoError(t, err)

	first, err := health.BuildPlan(m, bmi, health.DefaultTargetBMI)
	require.NoError(t, err)
	second, err := health.BuildPlan(m, bmi, health.DefaultTargetBMI)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildPlan_ImperialOutputUnit(t *testing.T) {
	m := health.Measurement{
		Height:        69,  // inches
		Weight:        200, // pounds
		Age:           35,
		Gender:        health.GenderMale,
		ActivityLevel: health.ActivityModerate,
		Unit:          health.UnitImperial,
	}
	bmi, err := health.ComputeBMI(m)
	require.NoError(t, err)

	plan, err := health.BuildPlan(m, bmi, health.DefaultTargetBMI)
	require.NoError(t, err)

	// target = 22 * 1.7526² kg ≈ 67.58 kg ≈ 149.0 lb, so output stays imperial.
	assert.InDelta(t, 149.0, plan.TargetWeight, 0.5)
	assert.InDelta(t, 200.0, plan.Projection[0].Weight, 0.1)
}

func TestBuildPlan_GainPath(t *testing.T) {
	// Current weight below target: the plan still runs and projects a
	// gain-oriented trajectory, clamped at the target.
	m := health.Measurement{
		Height:        180,
		Weight:        65,
		Age:           30,
		Gender:        health.GenderMale,
		ActivityLevel: health.ActivityModerate,
		Unit:          health.UnitMetric,
	}
	bmi, err := health.ComputeBMI(m)
	require.NoError(t, err)

	plan, err := health.BuildPlan(m, bmi, health.DefaultTargetBMI)
	require.NoError(t, err)

	assert.Negative(t, plan.WeightDelta)
	last := plan.Projection[len(plan.Projection)-1]
	for i := 1; i < len(plan.Projection); i++ {
		assert.GreaterOrEqual(t, plan.Projection[i].Weight, plan.Projection[i-1].Weight)
	}
	assert.InDelta(t, plan.TargetWeight, last.Weight, 0.1)
}

func TestBuildPlan_InsufficientData(t *testing.T) {
	m := health.Measurement{
		Height:        0,
		Weight:        70,
		Age:           30,
		Gender:        health.GenderMale,
		ActivityLevel: health.ActivityModerate,
		Unit:          health.UnitMetric,
	}
	_, err := health.BuildPlan(m, 22, health.DefaultTargetBMI)
	assert.ErrorIs(t, err, health.ErrInsufficientData)

	m.Height = 175
	_, err = health.BuildPlan(m, 0, health.DefaultTargetBMI)
	assert.ErrorIs(t, err, health.ErrInsufficientData)
}

func TestBuildPlan_DegenerateProjection(t *testing.T) {
	// Maintenance below the 1200 kcal floor: the clamped target implies a
	// non-positive rate of change, so no finite time-to-goal exists.
	m := health.Measurement{
		Height:        150,
		Weight:        40,
		Age:           80,
		Gender:        health.GenderFemale,
		ActivityLevel: health.ActivitySedentary,
		Unit:          health.UnitMetric,
	}
	bmi, err := health.ComputeBMI(m)
	require.NoError(t, err)

	_, err = health.BuildPlan(m, bmi, health.DefaultTargetBMI)
	assert.ErrorIs(t, err, health.ErrDegenerateProjection)
}

func TestBuildPlan_ProjectionCappedAt52Weeks(t *testing.T) {
	m := health.Measurement{
		Height:        170,
		Weight:        160,
		Age:           40,
		Gender:        health.GenderMale,
		ActivityLevel: health.ActivitySedentary,
		Unit:          health.UnitMetric,
	}
	bmi, err := health.ComputeBMI(m)
	require.NoError(t, err)

	plan, err := health.BuildPlan(m, bmi, health.DefaultTargetBMI)
	require.NoError(t, err)

	assert.Len(t, plan.Projection, 53)
	assert.Equal(t, 52, plan.Projection[52].Week)
	assert.Greater(t, plan.WeeksToGoal, 52)
}
