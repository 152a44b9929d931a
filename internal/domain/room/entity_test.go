//go:build unit

package room_test

import (
	"strings"
	"testing"
	"time"

	"roomboard/internal/domain/room"
	"roomboard/internal/domain/schedule"
	"roomboard/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func testServices() *room.Services {
	return &room.Services{Clock: clock.NewMockClock(testNow)}
}

func testWindow(t *testing.T) schedule.BusinessWindow {
	t.Helper()
	w, err := schedule.NewBusinessWindow("08:00", "20:00", 15, 30)
	require.NoError(t, err)
	return w
}

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := room.NewRoom(testServices(), "Conference Room A", "3F East Wing", schedule.SpecialNone, testWindow(t))
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Conference Room A", actual.Name())
		assert.Equal(t, "3F East Wing", actual.Location())
		assert.True(t, actual.IsBookable())
		assert.Equal(t, testNow, actual.CreatedAt())
		assert.Equal(t, testNow, actual.UpdatedAt())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		actual, err := room.NewRoom(testServices(), "  Studio  ", " 1F ", schedule.SpecialNone, testWindow(t))
		require.NoError(t, err)

		assert.Equal(t, "Studio", actual.Name())
		assert.Equal(t, "1F", actual.Location())
	})

	t.Run("name validation", func(t *testing.T) {
		cases := []struct {
			name     string
			roomName string
			errIs    error
		}{
			{name: "empty name", roomName: "", errIs: room.ErrEmptyName},
			{name: "whitespace only name", roomName: "   ", errIs: room.ErrEmptyName},
			{name: "maximum length name", roomName: strings.Repeat("a", room.MaxNameLength)},
			{name: "name too long", roomName: strings.Repeat("a", room.MaxNameLength+1), errIs: room.ErrNameTooLong},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := room.NewRoom(testServices(), tc.roomName, "", schedule.SpecialNone, testWindow(t))
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("rejects unknown special state", func(t *testing.T) {
		_, err := room.NewRoom(testServices(), "Room", "", schedule.SpecialState("broken"), testWindow(t))
		assert.ErrorIs(t, err, room.ErrInvalidSpecialState)
	})
}

func TestRoom_SetSpecialState(t *testing.T) {
	entity, err := room.NewRoom(testServices(), "Room", "", schedule.SpecialNone, testWindow(t))
	require.NoError(t, err)

	t.Run("valid state makes room unbookable", func(t *testing.T) {
		require.NoError(t, entity.SetSpecialState(schedule.SpecialMaintenance))
		assert.Equal(t, schedule.SpecialMaintenance, entity.SpecialState())
		assert.False(t, entity.IsBookable())
	})

	t.Run("clearing the state restores bookability", func(t *testing.T) {
		require.NoError(t, entity.SetSpecialState(schedule.SpecialNone))
		assert.True(t, entity.IsBookable())
	})

	t.Run("invalid state is rejected", func(t *testing.T) {
		err := entity.SetSpecialState(schedule.SpecialState("closed-forever"))
		assert.ErrorIs(t, err, room.ErrInvalidSpecialState)
	})
}
