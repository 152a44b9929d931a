package commands

import (
	"context"
	"time"

	"roomboard/internal/domain/room"
	"roomboard/internal/domain/schedule"
	"roomboard/internal/infra"
	"roomboard/internal/pkg/clock"
	"roomboard/internal/pkg/config"
	"roomboard/internal/pkg/errs"
	"roomboard/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoom         = errs.New("invalid room")
	ErrInvalidWindowConfig = errs.New("invalid business window configuration")
	ErrInvalidSpecialState = errs.New("invalid special state")
)

type CreateRoomParams struct {
	Name     string
	Location string
	// Window overrides; empty/zero values fall back to the configured
	// schedule defaults.
	OpenTime               string
	CloseTime              string
	GranularityMinutes     int
	DefaultDurationMinutes int
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	UpdateSpecialState(ctx context.Context, id uuid.UUID, state schedule.SpecialState, updatedAt time.Time) error
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, params CreateRoomParams) (*queries.RoomView, error)
	SetSpecialState(ctx context.Context, roomID uuid.UUID, state string) error
}

type roomCommandsImpl struct {
	rooms     RoomRepository
	roomReads queries.RoomReadStore
	defaults  config.ScheduleConfig
	clock     clock.Clock
}

func NewRoomCommands(rooms RoomRepository, roomReads queries.RoomReadStore, defaults config.ScheduleConfig, clk clock.Clock) RoomCommands {
	return &roomCommandsImpl{
		rooms:     rooms,
		roomReads: roomReads,
		defaults:  defaults,
		clock:     clk,
	}
}

func (c *roomCommandsImpl) CreateRoom(ctx context.Context, params CreateRoomParams) (*queries.RoomView, error) {
	window, err := c.buildWindow(params)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWindowConfig)
	}

	services := &room.Services{Clock: c.clock}
	entity, err := room.NewRoom(services, params.Name, params.Location, schedule.SpecialNone, window)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRoom)
	}

	if err := c.rooms.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &queries.RoomView{
		ID:                     entity.ID(),
		Name:                   entity.Name(),
		Location:               entity.Location(),
		SpecialState:           string(entity.SpecialState()),
		OpenTime:               window.OpenString(),
		CloseTime:              window.CloseString(),
		GranularityMinutes:     window.GranularityMinutes(),
		DefaultDurationMinutes: window.DefaultDurationMinutes(),
		CreatedAt:              entity.CreatedAt(),
		UpdatedAt:              entity.UpdatedAt(),
	}, nil
}

func (c *roomCommandsImpl) SetSpecialState(ctx context.Context, roomID uuid.UUID, state string) error {
	special := schedule.SpecialState(state)
	if !special.IsValid() {
		return ErrInvalidSpecialState
	}

	if _, err := c.roomReads.FindByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.rooms.UpdateSpecialState(ctx, roomID, special, c.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *roomCommandsImpl) buildWindow(params CreateRoomParams) (schedule.BusinessWindow, error) {
	open := params.OpenTime
	if open == "" {
		open = c.defaults.OpenTime
	}
	close := params.CloseTime
	if close == "" {
		close = c.defaults.CloseTime
	}
	granularity := params.GranularityMinutes
	if granularity == 0 {
		granularity = c.defaults.GranularityMinutes
	}
	duration := params.DefaultDurationMinutes
	if duration == 0 {
		duration = c.defaults.DefaultDurationMinutes
	}
	if c.defaults.AllHours {
		open, close = "00:00", "24:00"
	}
	return schedule.NewBusinessWindow(open, close, granularity, duration)
}
