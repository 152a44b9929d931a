package booking

import (
	"errors"
	"strings"
	"time"

	"roomboard/internal/domain/schedule"
	"roomboard/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("booking title cannot be empty")
	ErrEmptyOwner       = errors.New("booking owner reference cannot be empty")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

type Services struct {
	Clock clock.Clock
}

// Booking is one occupied span of a room. The availability engine only ever
// reads its interval; title and owner are display metadata.
type Booking struct {
	id        uuid.UUID
	roomID    uuid.UUID
	title     string
	ownerRef  string
	interval  schedule.Interval
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(services *Services, roomID uuid.UUID, interval schedule.Interval, title, ownerRef string) (*Booking, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	ownerRef = strings.TrimSpace(ownerRef)
	if ownerRef == "" {
		return nil, ErrEmptyOwner
	}

	now := services.Clock.Now()
	return &Booking{
		id:        uuid.New(),
		roomID:    roomID,
		title:     title,
		ownerRef:  ownerRef,
		interval:  interval,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(
	id, roomID uuid.UUID,
	title, ownerRef string,
	interval schedule.Interval,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		roomID:    roomID,
		title:     title,
		ownerRef:  ownerRef,
		interval:  interval,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusActive
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) RoomID() uuid.UUID           { return b.roomID }
func (b *Booking) Title() string               { return b.title }
func (b *Booking) OwnerRef() string            { return b.ownerRef }
func (b *Booking) Interval() schedule.Interval { return b.interval }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
