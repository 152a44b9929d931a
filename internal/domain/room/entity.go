package room

import (
	"errors"
	"strings"
	"time"

	"roomboard/internal/domain/schedule"
	"roomboard/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrEmptyName           = errors.New("room name cannot be empty")
	ErrNameTooLong         = errors.New("room name is too long")
	ErrInvalidSpecialState = errors.New("invalid special state")
)

const MaxNameLength = 100

type Services struct {
	Clock clock.Clock
}

// Room is a bookable meeting room with its own business window and an
// optional operator-set special state that overrides booking-derived status.
type Room struct {
	id           uuid.UUID
	name         string
	location     string
	specialState schedule.SpecialState
	window       schedule.BusinessWindow
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRoom(services *Services, name, location string, specialState schedule.SpecialState, window schedule.BusinessWindow) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if !specialState.IsValid() {
		return nil, ErrInvalidSpecialState
	}

	now := services.Clock.Now()
	return &Room{
		id:           uuid.New(),
		name:         name,
		location:     strings.TrimSpace(location),
		specialState: specialState,
		window:       window,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name, location string,
	specialState schedule.SpecialState,
	window schedule.BusinessWindow,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:           id,
		name:         name,
		location:     location,
		specialState: specialState,
		window:       window,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *Room) SetSpecialState(s schedule.SpecialState) error {
	if !s.IsValid() {
		return ErrInvalidSpecialState
	}
	r.specialState = s
	return nil
}

// IsBookable reports whether the room accepts new bookings at all; rooms in
// any special state do not.
func (r *Room) IsBookable() bool {
	return r.specialState == schedule.SpecialNone
}

func (r *Room) ID() uuid.UUID                        { return r.id }
func (r *Room) Name() string                         { return r.name }
func (r *Room) Location() string                     { return r.location }
func (r *Room) SpecialState() schedule.SpecialState  { return r.specialState }
func (r *Room) Window() schedule.BusinessWindow      { return r.window }
func (r *Room) CreatedAt() time.Time                 { return r.createdAt }
func (r *Room) UpdatedAt() time.Time                 { return r.updatedAt }
