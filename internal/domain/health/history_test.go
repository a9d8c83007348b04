package health_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/internal/domain/health"
)

func TestAlignByDate(t *testing.T) {
	bmi := []health.BmiRecord{
		{Date: "2024-03-01", BMI: 24.1},
		{Date: "2024-03-03", BMI: 23.9},
	}
	water := []health.DailySample{
		{Date: "2024-03-01", Value: 2100},
		{Date: "2024-03-02", Value: 1800},
	}
	calories := []health.DailySample{
		{Date: "2024-03-02", Value: 2200},
		{Date: "2024-03-03", Value: 1950},
	}

	rows := health.AlignByDate(bmi, water, calories)
	require.Len(t, rows, 3)

	assert.Equal(t, "2024-03-01", rows[0].Date)
	require.NotNil(t, rows[0].BMI)
	assert.Equal(t, 24.1, *rows[0].BMI)
	assert.Equal(t, 2100.0, rows[0].Water)
	assert.Equal(t, 0.0, rows[0].Calories)

	assert.Equal(t, "2024-03-02", rows[1].Date)
	assert.Nil(t, rows[1].BMI, "absent BMI must stay nil, never zero")
	assert.Equal(t, 1800.0, rows[1].Water)
	assert.Equal(t, 2200.0, rows[1].Calories)

	assert.Equal(t, "2024-03-03", rows[2].Date)
	require.NotNil(t, rows[2].BMI)
	assert.Equal(t, 23.9, *rows[2].BMI)
	assert.Equal(t, 0.0, rows[2].Water)
	assert.Equal(t, 1950.0, rows[2].Calories)
}

func TestAlignByDate_Empty(t *testing.T) {
	assert.Empty(t, health.AlignByDate(nil, nil, nil))
}

func TestSortRecordsByDate(t *testing.T) {
	records := []health.BmiRecord{
		{Date: "2024-02-10", BMI: 25},
		{Date: "2024-01-05", BMI: 26},
		{Date: "2024-03-01", BMI: 24},
	}

	sorted := health.SortRecordsByDate(records)
	assert.Equal(t, "2024-01-05", sorted[0].Date)
	assert.Equal(t, "2024-02-10", sorted[1].Date)
	assert.Equal(t, "2024-03-01", sorted[2].Date)
	// input untouched
	assert.Equal(t, "2024-02-10", records[0].Date)
}
