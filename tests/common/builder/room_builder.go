//go:build unit

package builder

import (
	"time"

	reqdto "roomboard/internal/handler/dto/request"
	"roomboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID                     uuid.UUID
	Name                   string
	Location               string
	SpecialState           string
	OpenTime               string
	CloseTime              string
	GranularityMinutes     int
	DefaultDurationMinutes int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	return &RoomBuilder{
		ID:                     uuid.New(),
		Name:                   "Conference Room A",
		Location:               "3F East Wing",
		SpecialState:           "",
		OpenTime:               "08:00",
		CloseTime:              "20:00",
		GranularityMinutes:     15,
		DefaultDurationMinutes: 30,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

func (r *RoomBuilder) WithID(id uuid.UUID) *RoomBuilder {
	r.ID = id
	return r
}

func (r *RoomBuilder) WithName(name string) *RoomBuilder {
	r.Name = name
	return r
}

func (r *RoomBuilder) WithSpecialState(state string) *RoomBuilder {
	r.SpecialState = state
	return r
}

func (r *RoomBuilder) WithWindow(open, close string, granularity, duration int) *RoomBuilder {
	r.OpenTime = open
	r.CloseTime = close
	r.GranularityMinutes = granularity
	r.DefaultDurationMinutes = duration
	return r
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Name:                   r.Name,
		Location:               r.Location,
		OpenTime:               r.OpenTime,
		CloseTime:              r.CloseTime,
		GranularityMinutes:     r.GranularityMinutes,
		DefaultDurationMinutes: r.DefaultDurationMinutes,
	}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:                     r.ID,
		Name:                   r.Name,
		Location:               r.Location,
		SpecialState:           r.SpecialState,
		OpenTime:               r.OpenTime,
		CloseTime:              r.CloseTime,
		GranularityMinutes:     r.GranularityMinutes,
		DefaultDurationMinutes: r.DefaultDurationMinutes,
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
	}
}

func (r *RoomBuilder) BuildStatusView() *queries.RoomStatusView {
	return &queries.RoomStatusView{
		RoomID: r.ID,
		Name:   r.Name,
		Kind:   "available",
		Label:  "available",
	}
}

func (r *RoomBuilder) BuildSnapshot() *queries.RoomSnapshot {
	return &queries.RoomSnapshot{
		ID:                     r.ID,
		Name:                   r.Name,
		Location:               r.Location,
		SpecialState:           r.SpecialState,
		OpenTime:               r.OpenTime,
		CloseTime:              r.CloseTime,
		GranularityMinutes:     r.GranularityMinutes,
		DefaultDurationMinutes: r.DefaultDurationMinutes,
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
	}
}
