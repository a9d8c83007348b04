package messagebus_test

import (
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/internal/app/messagebus"
	"healthtrack/internal/domain"
	"healthtrack/internal/domain/profile"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMessageBus_DeliversToRegisteredHandler(t *testing.T) {
	bus := messagebus.New(discardLogger())

	var calls atomic.Int32
	bus.Register(profile.EventMeasurementSaved, func(event domain.Event) error {
		calls.Add(1)
		return nil
	})

	err := bus.PublishEvents(profile.MeasurementSavedEvent{At: time.Now(), UserID: "user-1"})
	require.NoError(t, err)

	bus.Close()
	assert.Equal(t, int32(1), calls.Load())
}

func TestMessageBus_IgnoresUnregisteredEventType(t *testing.T) {
	bus := messagebus.New(discardLogger())

	var calls atomic.Int32
	bus.Register("some.other_event", func(event domain.Event) error {
		calls.Add(1)
		return nil
	})

	err := bus.PublishEvents(profile.MeasurementSavedEvent{At: time.Now(), UserID: "user-1"})
	require.NoError(t, err)

	bus.Close()
	assert.Equal(t, int32(0), calls.Load())
}

func TestMessageBus_FansOutToAllHandlers(t *testing.T) {
	bus := messagebus.New(discardLogger())

	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		bus.Register(profile.EventMeasurementSaved, func(event domain.Event) error {
			calls.Add(1)
			return nil
		})
	}

	err := bus.PublishEvents(
		profile.MeasurementSavedEvent{At: time.Now(), UserID: "user-1"},
		profile.MeasurementSavedEvent{At: time.Now(), UserID: "user-2"},
	)
	require.NoError(t, err)

	bus.Close()
	assert.Equal(t, int32(6), calls.Load())
}
