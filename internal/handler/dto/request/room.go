package request

import (
	"roomboard/internal/usecase/commands"
)

type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	// Optional window overrides; omitted fields fall back to the configured
	// schedule defaults.
	OpenTime               string `json:"open_time"`
	CloseTime              string `json:"close_time"`
	GranularityMinutes     int    `json:"granularity_minutes"`
	DefaultDurationMinutes int    `json:"default_duration_minutes"`
}

func (r CreateRoomRequest) ToParams() commands.CreateRoomParams {
	return commands.CreateRoomParams{
		Name:                   r.Name,
		Location:               r.Location,
		OpenTime:               r.OpenTime,
		CloseTime:              r.CloseTime,
		GranularityMinutes:     r.GranularityMinutes,
		DefaultDurationMinutes: r.DefaultDurationMinutes,
	}
}

type SetSpecialStateRequest struct {
	// Empty string clears the state and makes the room bookable again.
	State string `json:"state"`
}
