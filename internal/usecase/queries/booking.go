package queries

import (
	"context"
	"time"

	"roomboard/internal/infra"
	"roomboard/internal/pkg/clock"
	"roomboard/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingView struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	Title     string    `json:"title"`
	OwnerRef  string    `json:"owner_ref"`
	StartAt   string    `json:"start_at"`
	EndAt     string    `json:"end_at"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForRoomDay(ctx context.Context, roomID uuid.UUID, day time.Time) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListForRoomDay lists one room-day; an empty day means today as seen
	// by the injected clock.
	ListForRoomDay(ctx context.Context, roomID uuid.UUID, day string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForRoomDay(ctx context.Context, roomID uuid.UUID, day string) ([]*BookingView, error) {
	parsed, err := q.resolveDay(day)
	if err != nil {
		return nil, err
	}
	return q.store.ListForRoomDay(ctx, roomID, parsed)
}

func (q *bookingQueriesImpl) resolveDay(day string) (time.Time, error) {
	if day == "" {
		now := q.clock.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	parsed, err := time.Parse("2006-01-02", day)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidDay)
	}
	return parsed, nil
}
