package queries

import (
	"context"
	"time"

	"roomboard/internal/domain/schedule"
	"roomboard/internal/infra"
	"roomboard/internal/pkg/clock"
	"roomboard/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound  = errs.New("room not found")
	ErrInvalidDay    = errs.New("invalid day")
	ErrInvalidSearch = errs.New("invalid slot search parameters")
)

// RoomSnapshot is the persistence-shaped row for a room; the query service
// rebuilds engine values (window, special state) from it per call.
type RoomSnapshot struct {
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

// RoomStatusView is one room card on the board.
type RoomStatusView struct {
	RoomID           uuid.UUID `json:"room_id"`
	Name             string    `json:"name"`
	Location         string    `json:"location,omitempty"`
	Kind             string    `json:"kind"`
	Label            string    `json:"label"`
	ProgressFraction float64   `json:"progress_fraction"`
	RemainingSeconds int64     `json:"remaining_seconds"`
	MinutesUntilNext int64     `json:"minutes_until_next"`
	Until            *string   `json:"until,omitempty"`
}

// SlotView is one suggested free slot; the first result of a search is the
// default suggestion the client auto-selects.
type SlotView struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Suggested bool   `json:"suggested"`
}

type RoomView struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Location               string    `json:"location,omitempty"`
	SpecialState           string    `json:"special_state,omitempty"`
	OpenTime               string    `json:"open_time"`
	CloseTime              string    `json:"close_time"`
	GranularityMinutes     int       `json:"granularity_minutes"`
	DefaultDurationMinutes int       `json:"default_duration_minutes"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type SlotSearch struct {
	RoomID          uuid.UUID
	Day             string // "2006-01-02"; empty means today
	DurationMinutes int    // 0 means the room's default duration
	MaxResults      int    // 0 means DefaultMaxSlotResults
}

const DefaultMaxSlotResults = 3

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	List(ctx context.Context) ([]*RoomSnapshot, error)
}

type BookingIntervalReadStore interface {
	// ListActiveIntervalsForRoomDay returns the active bookings of one
	// room-day as naive wall-clock pairs, sorted by start.
	ListActiveIntervalsForRoomDay(ctx context.Context, roomID uuid.UUID, day time.Time) ([]IntervalRow, error)
}

type IntervalRow struct {
	StartAt time.Time
	EndAt   time.Time
}

type RoomQueries interface {
	GetRoom(ctx context.Context, roomID uuid.UUID) (*RoomView, error)
	GetStatus(ctx context.Context, roomID uuid.UUID) (*RoomStatusView, error)
	ListStatuses(ctx context.Context) ([]*RoomStatusView, error)
	FindSlots(ctx context.Context, search SlotSearch) ([]SlotView, error)
}

type roomQueriesImpl struct {
	rooms      RoomReadStore
	intervals  BookingIntervalReadStore
	clock      clock.Clock
	thresholds schedule.LoadThresholds
}

func NewRoomQueries(rooms RoomReadStore, intervals BookingIntervalReadStore, clk clock.Clock, thresholds schedule.LoadThresholds) RoomQueries {
	return &roomQueriesImpl{
		rooms:      rooms,
		intervals:  intervals,
		clock:      clk,
		thresholds: thresholds,
	}
}

func (q *roomQueriesImpl) GetRoom(ctx context.Context, roomID uuid.UUID) (*RoomView, error) {
	snap, err := q.findRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return roomViewFromSnapshot(snap), nil
}

func (q *roomQueriesImpl) GetStatus(ctx context.Context, roomID uuid.UUID) (*RoomStatusView, error) {
	snap, err := q.findRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	now := schedule.FromWallClock(q.clock.Now())
	return q.statusForRoom(ctx, snap, now)
}

func (q *roomQueriesImpl) ListStatuses(ctx context.Context) ([]*RoomStatusView, error) {
	snaps, err := q.rooms.List(ctx)
	if err != nil {
		return nil, err
	}

	now := schedule.FromWallClock(q.clock.Now())
	views := make([]*RoomStatusView, 0, len(snaps))
	for _, snap := range snaps {
		view, err := q.statusForRoom(ctx, snap, now)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (q *roomQueriesImpl) FindSlots(ctx context.Context, search SlotSearch) ([]SlotView, error) {
	snap, err := q.findRoom(ctx, search.RoomID)
	if err != nil {
		return nil, err
	}

	window, err := windowFromSnapshot(snap)
	if err != nil {
		return nil, err
	}

	now := schedule.FromWallClock(q.clock.Now())
	day := now
	if search.Day != "" {
		parsed, parseErr := time.Parse("2006-01-02", search.Day)
		if parseErr != nil {
			return nil, errs.Mark(parseErr, ErrInvalidDay)
		}
		day = schedule.FromWallClock(parsed)
	}

	duration := search.DurationMinutes
	if duration == 0 {
		duration = window.DefaultDurationMinutes()
	}
	maxResults := search.MaxResults
	if maxResults == 0 {
		maxResults = DefaultMaxSlotResults
	}

	existing, err := q.roomDayIntervals(ctx, snap.ID, day)
	if err != nil {
		return nil, err
	}

	slots, err := schedule.FindNextSlots(now, day, window, duration, maxResults, existing)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSearch)
	}

	views := make([]SlotView, len(slots))
	for i, slot := range slots {
		views[i] = SlotView{
			Start:     slot.Start().String(),
			End:       slot.End().String(),
			Suggested: i == 0,
		}
	}
	return views, nil
}

func (q *roomQueriesImpl) findRoom(ctx context.Context, roomID uuid.UUID) (*RoomSnapshot, error) {
	snap, err := q.rooms.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return snap, nil
}

func (q *roomQueriesImpl) statusForRoom(ctx context.Context, snap *RoomSnapshot, now schedule.TimePoint) (*RoomStatusView, error) {
	window, err := windowFromSnapshot(snap)
	if err != nil {
		return nil, err
	}

	bookings, err := q.roomDayIntervals(ctx, snap.ID, now)
	if err != nil {
		return nil, err
	}

	result := schedule.ComputeStatus(now, schedule.SpecialState(snap.SpecialState), bookings, window, q.thresholds)

	view := &RoomStatusView{
		RoomID:           snap.ID,
		Name:             snap.Name,
		Location:         snap.Location,
		Kind:             string(result.Kind),
		Label:            result.Label,
		ProgressFraction: result.ProgressFraction,
		RemainingSeconds: result.RemainingSeconds,
		MinutesUntilNext: result.MinutesUntilNext,
	}
	if result.Until != nil {
		s := result.Until.String()
		view.Until = &s
	}
	return view, nil
}

func (q *roomQueriesImpl) roomDayIntervals(ctx context.Context, roomID uuid.UUID, day schedule.TimePoint) ([]schedule.Interval, error) {
	rows, err := q.intervals.ListActiveIntervalsForRoomDay(ctx, roomID, day.StartOfDay().ToWallClock())
	if err != nil {
		return nil, err
	}

	intervals := make([]schedule.Interval, 0, len(rows))
	for _, row := range rows {
		iv, err := schedule.NewInterval(schedule.FromWallClock(row.StartAt), schedule.FromWallClock(row.EndAt))
		if err != nil {
			// Rows violating start < end cannot produce a schedule; surface
			// the corruption instead of guessing.
			return nil, errs.Wrap(err, "stored booking has an invalid interval")
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}

func windowFromSnapshot(snap *RoomSnapshot) (schedule.BusinessWindow, error) {
	window, err := schedule.NewBusinessWindow(snap.OpenTime, snap.CloseTime, snap.GranularityMinutes, snap.DefaultDurationMinutes)
	if err != nil {
		return schedule.BusinessWindow{}, errs.Wrap(err, "stored room has an invalid business window")
	}
	return window, nil
}

func roomViewFromSnapshot(snap *RoomSnapshot) *RoomView {
	return &RoomView{
		ID:                     snap.ID,
		Name:                   snap.Name,
		Location:               snap.Location,
		SpecialState:           snap.SpecialState,
		OpenTime:               snap.OpenTime,
		CloseTime:              snap.CloseTime,
		GranularityMinutes:     snap.GranularityMinutes,
		DefaultDurationMinutes: snap.DefaultDurationMinutes,
		CreatedAt:              snap.CreatedAt,
		UpdatedAt:              snap.UpdatedAt,
	}
}
