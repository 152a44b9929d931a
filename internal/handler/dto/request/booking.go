package request

import (
	"github.com/google/uuid"

	"roomboard/internal/usecase/commands"
)

type CreateBookingRequest struct {
	// Naive wall-clock timestamps, "2006-01-02 15:04:05".
	StartAt  string `json:"start_at" binding:"required"`
	EndAt    string `json:"end_at" binding:"required"`
	Title    string `json:"title" binding:"required"`
	OwnerRef string `json:"owner_ref" binding:"required"`
}

func (r CreateBookingRequest) ToParams(roomID uuid.UUID) commands.CreateBookingParams {
	return commands.CreateBookingParams{
		RoomID:   roomID,
		StartAt:  r.StartAt,
		EndAt:    r.EndAt,
		Title:    r.Title,
		OwnerRef: r.OwnerRef,
	}
}
