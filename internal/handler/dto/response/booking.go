package response

import (
	"time"

	"roomboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"roomId"`
	Title     string    `json:"title"`
	OwnerRef  string    `json:"ownerRef"`
	StartAt   string    `json:"startAt"`
	EndAt     string    `json:"endAt"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:        rm.ID,
		RoomID:    rm.RoomID,
		Title:     rm.Title,
		OwnerRef:  rm.OwnerRef,
		StartAt:   rm.StartAt,
		EndAt:     rm.EndAt,
		Status:    rm.Status,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}
