//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"roomboard/internal/domain/schedule"
	"roomboard/internal/infra"
	"roomboard/internal/pkg/clock"
	"roomboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRoomReads struct {
	snapshots map[uuid.UUID]*queries.RoomSnapshot
}

func (s *stubRoomReads) FindByID(_ context.Context, id uuid.UUID) (*queries.RoomSnapshot, error) {
	snap, ok := s.snapshots[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return snap, nil
}

func (s *stubRoomReads) List(_ context.Context) ([]*queries.RoomSnapshot, error) {
	snaps := make([]*queries.RoomSnapshot, 0, len(s.snapshots))
	for _, snap := range s.snapshots {
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

type stubIntervals struct {
	rows []queries.IntervalRow
}

func (s *stubIntervals) ListActiveIntervalsForRoomDay(_ context.Context, _ uuid.UUID, _ time.Time) ([]queries.IntervalRow, error) {
	return s.rows, nil
}

func snapshotFor(id uuid.UUID) *queries.RoomSnapshot {
	return &queries.RoomSnapshot{
		ID:                     id,
		Name:                   "Conference Room A",
		Location:               "3F",
		OpenTime:               "08:00",
		CloseTime:              "20:00",
		GranularityMinutes:     15,
		DefaultDurationMinutes: 30,
	}
}

func newService(rooms *stubRoomReads, intervals *stubIntervals, now time.Time) queries.RoomQueries {
	return queries.NewRoomQueries(
		rooms,
		intervals,
		clock.NewMockClock(now),
		schedule.LoadThresholds{HeavyBookingCount: 3, HeavyLoadFraction: 0.66},
	)
}

func wallClock(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", s)
	require.NoError(t, err)
	return parsed
}

func TestRoomQueries_GetStatus(t *testing.T) {
	roomID := uuid.New()

	t.Run("free room is available until its next booking", func(t *testing.T) {
		rooms := &stubRoomReads{snapshots: map[uuid.UUID]*queries.RoomSnapshot{roomID: snapshotFor(roomID)}}
		intervals := &stubIntervals{rows: []queries.IntervalRow{
			{StartAt: wallClock(t, "2026-03-02 11:00:00"), EndAt: wallClock(t, "2026-03-02 12:00:00")},
		}}
		svc := newService(rooms, intervals, wallClock(t, "2026-03-02 09:10:00"))

		view, err := svc.GetStatus(context.Background(), roomID)
		require.NoError(t, err)

		assert.Equal(t, "available_until", view.Kind)
		assert.Equal(t, "available until 11:00", view.Label)
		assert.Equal(t, int64(110), view.MinutesUntilNext)
	})

	t.Run("occupied room reports the end of the booked block", func(t *testing.T) {
		rooms := &stubRoomReads{snapshots: map[uuid.UUID]*queries.RoomSnapshot{roomID: snapshotFor(roomID)}}
		intervals := &stubIntervals{rows: []queries.IntervalRow{
			{StartAt: wallClock(t, "2026-03-02 09:00:00"), EndAt: wallClock(t, "2026-03-02 10:00:00")},
			{StartAt: wallClock(t, "2026-03-02 10:00:00"), EndAt: wallClock(t, "2026-03-02 11:30:00")},
		}}
		svc := newService(rooms, intervals, wallClock(t, "2026-03-02 09:30:00"))

		view, err := svc.GetStatus(context.Background(), roomID)
		require.NoError(t, err)

		assert.Equal(t, "occupied", view.Kind)
		assert.Equal(t, "occupied until 11:30", view.Label)
		require.NotNil(t, view.Until)
		assert.Equal(t, "2026-03-02 11:30:00", *view.Until)
	})

	t.Run("special state wins over bookings", func(t *testing.T) {
		snap := snapshotFor(roomID)
		snap.SpecialState = "maintenance"
		rooms := &stubRoomReads{snapshots: map[uuid.UUID]*queries.RoomSnapshot{roomID: snap}}
		intervals := &stubIntervals{rows: []queries.IntervalRow{
			{StartAt: wallClock(t, "2026-03-02 09:00:00"), EndAt: wallClock(t, "2026-03-02 10:00:00")},
		}}
		svc := newService(rooms, intervals, wallClock(t, "2026-03-02 09:30:00"))

		view, err := svc.GetStatus(context.Background(), roomID)
		require.NoError(t, err)

		assert.Equal(t, "unavailable", view.Kind)
		assert.Equal(t, "under maintenance", view.Label)
	})

	t.Run("unknown room maps to ErrRoomNotFound", func(t *testing.T) {
		rooms := &stubRoomReads{snapshots: map[uuid.UUID]*queries.RoomSnapshot{}}
		svc := newService(rooms, &stubIntervals{}, wallClock(t, "2026-03-02 09:30:00"))

		_, err := svc.GetStatus(context.Background(), roomID)
		assert.ErrorIs(t, err, queries.ErrRoomNotFound)
	})
}

func TestRoomQueries_FindSlots(t *testing.T) {
	roomID := uuid.New()

	t.Run("first slot carries the suggestion flag", func(t *testing.T) {
		rooms := &stubRoomReads{snapshots: map[uuid.UUID]*queries.RoomSnapshot{roomID: snapshotFor(roomID)}}
		svc := newService(rooms, &stubIntervals{}, wallClock(t, "2026-03-02 09:05:00"))

		slots, err := svc.FindSlots(context.Background(), queries.SlotSearch{RoomID: roomID})
		require.NoError(t, err)
		require.Len(t, slots, 3)

		assert.Equal(t, "2026-03-02 09:15:00", slots[0].Start)
		assert.Equal(t, "2026-03-02 09:45:00", slots[0].End)
		assert.True(t, slots[0].Suggested)
		assert.False(t, slots[1].Suggested)
		assert.False(t, slots[2].Suggested)
	})

	t.Run("uses the room defaults when duration and limit are omitted", func(t *testing.T) {
		snap := snapshotFor(roomID)
		snap.DefaultDurationMinutes = 60
		rooms := &stubRoomReads{snapshots: map[uuid.UUID]*queries.RoomSnapshot{roomID: snap}}
		svc := newService(rooms, &stubIntervals{}, wallClock(t, "2026-03-02 09:00:00"))

		slots, err := svc.FindSlots(context.Background(), queries.SlotSearch{RoomID: roomID})
		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.Equal(t, "2026-03-02 10:00:00", slots[0].End)
	})

	t.Run("searching an explicit future day starts at opening", func(t *testing.T) {
		rooms := &stubRoomReads{snapshots: map[uuid.UUID]*queries.RoomSnapshot{roomID: snapshotFor(roomID)}}
		svc := newService(rooms, &stubIntervals{}, wallClock(t, "2026-03-02 18:00:00"))

		slots, err := svc.FindSlots(context.Background(), queries.SlotSearch{
			RoomID:     roomID,
			Day:        "2026-03-03",
			MaxResults: 1,
		})
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "2026-03-03 08:00:00", slots[0].Start)
	})

	t.Run("malformed day maps to ErrInvalidDay", func(t *testing.T) {
		rooms := &stubRoomReads{snapshots: map[uuid.UUID]*queries.RoomSnapshot{roomID: snapshotFor(roomID)}}
		svc := newService(rooms, &stubIntervals{}, wallClock(t, "2026-03-02 09:00:00"))

		_, err := svc.FindSlots(context.Background(), queries.SlotSearch{RoomID: roomID, Day: "next tuesday"})
		assert.ErrorIs(t, err, queries.ErrInvalidDay)
	})
}
