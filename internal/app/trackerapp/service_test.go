package trackerapp_test

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"healthtrack/internal/app/trackerapp"
	"healthtrack/internal/domain/health"
)

// Input validation happens before any storage access, so a nil unit of work
// proves the request is rejected without touching the database.

func newService() *trackerapp.Service {
	return trackerapp.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAddWater_RejectsBadInput(t *testing.T) {
	svc := newService()
	now := time.Now()

	tests := []struct {
		name   string
		date   string
		amount float64
	}{
		{"malformed date", "01-02-2024", 250},
		{"empty date", "", 250},
		{"zero amount", "2024-01-02", 0},
		{"negative amount", "2024-01-02", -100},
		{"nan amount", "2024-01-02", math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddWater(context.Background(), nil, "user-1", tt.date, tt.amount, now)
			assert.ErrorIs(t, err, health.ErrInvalidInput)
		})
	}
}

func TestLogMeal_RejectsBadInput(t *testing.T) {
	svc := newService()
	now := time.Now()

	tests := []struct {
		name     string
		date     string
		mealName string
		calories float64
	}{
		{"malformed date", "bad", "lunch", 600},
		{"empty name", "2024-01-02", "", 600},
		{"zero calories", "2024-01-02", "lunch", 0},
		{"infinite calories", "2024-01-02", "lunch", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.LogMeal(context.Background(), nil, "user-1", tt.date, tt.mealName, tt.calories, now)
			assert.ErrorIs(t, err, health.ErrInvalidInput)
		})
	}
}

func TestDay_RejectsMalformedDate(t *testing.T) {
	svc := newService()

	_, err := svc.Day(context.Background(), nil, "user-1", "2024/01/02")
	assert.ErrorIs(t, err, health.ErrInvalidInput)
}
