//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"roomboard/internal/infra"
	"roomboard/internal/pkg/clock"
	"roomboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingStore struct {
	views    map[uuid.UUID]*queries.BookingView
	listed   []*queries.BookingView
	askedDay time.Time
}

func (s *stubBookingStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, ok := s.views[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return view, nil
}

func (s *stubBookingStore) ListForRoomDay(_ context.Context, _ uuid.UUID, day time.Time) ([]*queries.BookingView, error) {
	s.askedDay = day
	return s.listed, nil
}

func TestBookingQueries_ListForRoomDay(t *testing.T) {
	roomID := uuid.New()

	t.Run("explicit day is parsed and passed through", func(t *testing.T) {
		store := &stubBookingStore{listed: []*queries.BookingView{{RoomID: roomID}}}
		svc := queries.NewBookingQueries(store, clock.NewMockClock(wallClock(t, "2026-03-02 09:30:00")))

		views, err := svc.ListForRoomDay(context.Background(), roomID, "2026-03-05")
		require.NoError(t, err)

		assert.Len(t, views, 1)
		assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), store.askedDay)
	})

	t.Run("empty day resolves to today from the clock", func(t *testing.T) {
		store := &stubBookingStore{}
		svc := queries.NewBookingQueries(store, clock.NewMockClock(wallClock(t, "2026-03-02 09:30:00")))

		_, err := svc.ListForRoomDay(context.Background(), roomID, "")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), store.askedDay)
	})

	t.Run("malformed day is rejected", func(t *testing.T) {
		svc := queries.NewBookingQueries(&stubBookingStore{}, clock.NewMockClock(wallClock(t, "2026-03-02 09:30:00")))

		_, err := svc.ListForRoomDay(context.Background(), roomID, "yesterday")
		assert.ErrorIs(t, err, queries.ErrInvalidDay)
	})
}

func TestBookingQueries_GetByID(t *testing.T) {
	bookingID := uuid.New()

	t.Run("found booking is returned", func(t *testing.T) {
		store := &stubBookingStore{views: map[uuid.UUID]*queries.BookingView{
			bookingID: {ID: bookingID, Title: "Weekly sync"},
		}}
		svc := queries.NewBookingQueries(store, clock.NewMockClock(wallClock(t, "2026-03-02 09:30:00")))

		view, err := svc.GetByID(context.Background(), bookingID)
		require.NoError(t, err)
		assert.Equal(t, "Weekly sync", view.Title)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc := queries.NewBookingQueries(&stubBookingStore{}, clock.NewMockClock(wallClock(t, "2026-03-02 09:30:00")))

		_, err := svc.GetByID(context.Background(), bookingID)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}
