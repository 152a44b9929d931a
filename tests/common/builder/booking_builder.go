//go:build unit

package builder

import (
	"time"

	reqdto "roomboard/internal/handler/dto/request"
	"roomboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	Title     string
	OwnerRef  string
	StartAt   string
	EndAt     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:        uuid.New(),
		RoomID:    uuid.New(),
		Title:     "Weekly sync",
		OwnerRef:  "alice@example.com",
		StartAt:   "2026-03-02 09:00:00",
		EndAt:     "2026-03-02 10:00:00",
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingBuilder) WithRoomID(roomID uuid.UUID) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithInterval(startAt, endAt string) *BookingBuilder {
	b.StartAt = startAt
	b.EndAt = endAt
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = "cancelled"
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		StartAt:  b.StartAt,
		EndAt:    b.EndAt,
		Title:    b.Title,
		OwnerRef: b.OwnerRef,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        b.ID,
		RoomID:    b.RoomID,
		Title:     b.Title,
		OwnerRef:  b.OwnerRef,
		StartAt:   b.StartAt,
		EndAt:     b.EndAt,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
