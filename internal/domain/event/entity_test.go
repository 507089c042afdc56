//go:build unit

package event_test

import (
	"strings"
	"testing"

	"campus-tickets/internal/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	t.Run("valid event", func(t *testing.T) {
		ev, err := event.NewEvent("  Fall Concert 2025  ", "2025-10-03", 120)
		require.NoError(t, err)
		assert.Equal(t, "Fall Concert 2025", ev.Name())
		assert.Equal(t, "2025-10-03", ev.Date())
		assert.Equal(t, 120, ev.TicketsRemaining())
		assert.NotEqual(t, uuid.Nil, ev.ID())
	})

	t.Run("zero tickets is allowed", func(t *testing.T) {
		ev, err := event.NewEvent("Sold Out Show", "2025-11-01", 0)
		require.NoError(t, err)
		assert.True(t, ev.SoldOut())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := event.NewEvent("   ", "2025-10-03", 10)
		assert.ErrorIs(t, err, event.ErrEmptyEventName)
	})

	t.Run("overlong name rejected", func(t *testing.T) {
		_, err := event.NewEvent(strings.Repeat("a", event.MaxEventNameLength+1), "2025-10-03", 10)
		assert.ErrorIs(t, err, event.ErrEventNameTooLong)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		for _, date := range []string{"10/03/2025", "2025-10-3", "2025-10-03T00:00:00Z", "", "next friday"} {
			_, err := event.NewEvent("Fall Concert", date, 10)
			assert.ErrorIs(t, err, event.ErrInvalidDate, "date %q", date)
		}
	})

	t.Run("negative tickets rejected", func(t *testing.T) {
		_, err := event.NewEvent("Fall Concert", "2025-10-03", -1)
		assert.ErrorIs(t, err, event.ErrNegativeTickets)
	})
}

func TestReconstructEvent(t *testing.T) {
	id := uuid.New()
	ev := event.ReconstructEvent(id, "Spring Play", "2026-04-18", 3)

	assert.Equal(t, id, ev.ID())
	assert.Equal(t, "Spring Play", ev.Name())
	assert.Equal(t, "2026-04-18", ev.Date())
	assert.Equal(t, 3, ev.TicketsRemaining())
	assert.False(t, ev.SoldOut())
}
