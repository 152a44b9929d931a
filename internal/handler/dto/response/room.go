package response

import (
	"time"

	"roomboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Location               string    `json:"location,omitempty"`
	SpecialState           string    `json:"specialState,omitempty"`
	OpenTime               string    `json:"openTime"`
	CloseTime              string    `json:"closeTime"`
	GranularityMinutes     int       `json:"granularityMinutes"`
	DefaultDurationMinutes int       `json:"defaultDurationMinutes"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

type RoomStatusResponse struct {
	RoomID           uuid.UUID `json:"roomId"`
	Name             string    `json:"name"`
	Location         string    `json:"location,omitempty"`
	Kind             string    `json:"kind"`
	Label            string    `json:"label"`
	ProgressFraction float64   `json:"progressFraction"`
	RemainingSeconds int64     `json:"remainingSeconds"`
	MinutesUntilNext int64     `json:"minutesUntilNext"`
	Until            *string   `json:"until,omitempty"`
}

type SlotResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Suggested bool   `json:"suggested"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:                     rm.ID,
		Name:                   rm.Name,
		Location:               rm.Location,
		SpecialState:           rm.SpecialState,
		OpenTime:               rm.OpenTime,
		CloseTime:              rm.CloseTime,
		GranularityMinutes:     rm.GranularityMinutes,
		DefaultDurationMinutes: rm.DefaultDurationMinutes,
		CreatedAt:              rm.CreatedAt,
		UpdatedAt:              rm.UpdatedAt,
	}
}

func FromRoomStatusView(rm *queries.RoomStatusView) *RoomStatusResponse {
	return &RoomStatusResponse{
		RoomID:           rm.RoomID,
		Name:             rm.Name,
		Location:         rm.Location,
		Kind:             rm.Kind,
		Label:            rm.Label,
		ProgressFraction: rm.ProgressFraction,
		RemainingSeconds: rm.RemainingSeconds,
		MinutesUntilNext: rm.MinutesUntilNext,
		Until:            rm.Until,
	}
}

func FromSlotView(rm queries.SlotView) SlotResponse {
	return SlotResponse{
		Start:     rm.Start,
		End:       rm.End,
		Suggested: rm.Suggested,
	}
}
