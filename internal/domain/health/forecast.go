package health

import (
	"math"
	"time"
)

const (
	// Predicted BMI values are kept inside a plausible band; the regression
	// line is a short-horizon heuristic, not a physiological model.
	forecastFloorBMI   = 18.5
	forecastCeilingBMI = 35.0

	minForecastPoints = 3
)

// Forecast is a regression-based BMI projection over the coming days.
// TargetDate is the estimated date of reaching DefaultTargetBMI, empty when
// the trend is flat.
type Forecast struct {
	Points     []BmiRecord `json:"points"`
	Slope      float64     `json:"slope"`
	TargetDate string      `json:"target_date,omitempty"`
}

// ForecastBMI extrapolates the BMI history horizonDays past its last record
// using the linear trend slope. At least three records are required for the
// regression to mean anything. Dates are derived from the last record only,
// so identical history always yields an identical forecast.
func ForecastBMI(history []BmiRecord, horizonDays int) (*Forecast, error) {
	if len(history) < minForecastPoints {
		return nil, insufficientData("bmi forecast needs at least %d records, got %d", minForecastPoints, len(history))
	}
	if horizonDays <= 0 {
		return nil, invalidInput("forecast horizon must be positive, got %d", horizonDays)
	}

	sorted := SortRecordsByDate(history)
	last := sorted[len(sorted)-1]

	lastDate, err := time.Parse(DateLayout, last.Date)
	if err != nil {
		return nil, invalidInput("bad record date %q: %v", last.Date, err)
	}

	values := make([]float64, len(sorted))
	for i, r := range sorted {
		values[i] = r.BMI
	}
	slope, err := LinearSlope(values)
	if err != nil {
		return nil, err
	}

	points := make([]BmiRecord, 0, horizonDays)
	for day := 1; day <= horizonDays; day++ {
		predicted := last.BMI + slope*float64(day)
		predicted = math.Max(forecastFloorBMI, math.Min(forecastCeilingBMI, predicted))
		points = append(points, BmiRecord{
			Date: lastDate.AddDate(0, 0, day).Format(DateLayout),
			BMI:  round1(predicted),
		})
	}

	f := &Forecast{Points: points, Slope: slope}
	if slope != 0 {
		days := int(math.Abs(math.Round((DefaultTargetBMI - last.BMI) / slope)))
		f.TargetDate = lastDate.AddDate(0, 0, days).Format(DateLayout)
	}
	return f, nil
}
