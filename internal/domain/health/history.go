package health

import "sort"

// DateLayout is the calendar-date key format used throughout the engine.
// Day resolution, no time component, so records upsert idempotently per day.
const DateLayout = "2006-01-02"

// BmiRecord is one BMI value for one calendar date.
type BmiRecord struct {
	Date string  `json:"date"`
	BMI  float64 `json:"bmi"`
}

// DailySample is one accumulated water or calorie value for one calendar date.
type DailySample struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// AlignedRow is one date of the merged history. BMI is nil when no record
// exists for the date: zero is not a valid BMI, so absence must stay
// distinguishable. Water and calories default to zero because absence there
// legitimately means nothing was logged.
type AlignedRow struct {
	Date     string   `json:"date"`
	BMI      *float64 `json:"bmi"`
	Water    float64  `json:"water"`
	Calories float64  `json:"calories"`
}

// AlignByDate merges the three independent daily series into one sequence
// over the union of their dates, sorted ascending.
func AlignByDate(bmi []BmiRecord, water, calories []DailySample) []AlignedRow {
	bmiByDate := make(map[string]float64, len(bmi))
	dates := make(map[string]struct{}, len(bmi)+len(water)+len(calories))
	for _, r := range bmi {
		bmiByDate[r.Date] = r.BMI
		dates[r.Date] = struct{}{}
	}

	waterByDate := make(map[string]float64, len(water))
	for _, s := range water {
		waterByDate[s.Date] = s.Value
		dates[s.Date] = struct{}{}
	}

	caloriesByDate := make(map[string]float64, len(calories))
	for _, s := range calories {
		caloriesByDate[s.Date] = s.Value
		dates[s.Date] = struct{}{}
	}

	sorted := make([]string, 0, len(dates))
	for d := range dates {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	rows := make([]AlignedRow, 0, len(sorted))
	for _, d := range sorted {
		row := AlignedRow{
			Date:     d,
			Water:    waterByDate[d],
			Calories: caloriesByDate[d],
		}
		if v, ok := bmiByDate[d]; ok {
			value := v
			row.BMI = &value
		}
		rows = append(rows, row)
	}
	return rows
}

// SortRecordsByDate returns a copy of the records ordered ascending by date.
// History has no inherent order; every time-series consumer sorts first.
func SortRecordsByDate(records []BmiRecord) []BmiRecord {
	sorted := make([]BmiRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })
	return sorted
}
