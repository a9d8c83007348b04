package health

import "math"

// TrendResult combines a linear trend with a consistency score for one series.
type TrendResult struct {
	Slope            float64 `json:"slope"`
	ConsistencyScore float64 `json:"consistency_score"`
}

// LinearSlope fits an ordinary least squares line against the sample index
// and returns its slope: the change in value per sample step. Fewer than two
// points is a flat trend, not an error.
func LinearSlope(series []float64) (float64, error) {
	n := len(series)
	if n < 2 {
		return 0, nil
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := float64(n)*sumXX - sumX*sumX
	if denom == 0 {
		// Unreachable for n >= 2 integer indices; kept as a guard against
		// a division by zero ever leaking out as NaN.
		return 0, degenerateProjection("regression denominator is zero")
	}
	return (float64(n)*sumXY - sumX*sumY) / denom, nil
}

// ConsistencyScore maps the population coefficient of variation onto [0, 1],
// where 1 is perfectly consistent. Fewer than two points, or an all-zero
// series, count as perfectly consistent by convention.
func ConsistencyScore(series []float64) float64 {
	n := len(series)
	if n < 2 {
		return 1
	}

	var sum float64
	for _, v := range series {
		sum += v
	}
	mean := sum / float64(n)

	var variance float64
	for _, v := range series {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(n)

	cv := 0.0
	if mean != 0 {
		cv = math.Sqrt(variance) / mean
	}
	return math.Max(0, math.Min(1, 1-cv))
}

// Trend computes slope and consistency in one pass over the series.
func Trend(series []float64) (TrendResult, error) {
	slope, err := LinearSlope(series)
	if err != nil {
		return TrendResult{}, err
	}
	return TrendResult{
		Slope:            slope,
		ConsistencyScore: ConsistencyScore(series),
	}, nil
}
