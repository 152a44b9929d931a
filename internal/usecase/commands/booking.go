package commands

import (
	"context"
	"fmt"
	"time"

	"roomboard/internal/domain/booking"
	"roomboard/internal/domain/schedule"
	"roomboard/internal/infra"
	"roomboard/internal/pkg/clock"
	"roomboard/internal/pkg/errs"
	"roomboard/internal/usecase/queries"
	"roomboard/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jinzhu/copier"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrRoomUnavailable         = errs.New("room does not accept bookings")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingConflict         = errs.New("booking conflicts with an existing one")
	ErrBookingAlreadyCancelled = errs.New("booking is already cancelled")
	ErrInvalidTimeRange        = errs.New("invalid booking time range")
	ErrOutsideBusinessHours    = errs.New("booking is outside business hours")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingParams struct {
	RoomID   uuid.UUID
	StartAt  string // "2006-01-02 15:04:05", naive
	EndAt    string
	Title    string
	OwnerRef string
}

type BookingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, updatedAt time.Time) error
	FindByID(ctx context.Context, id uuid.UUID) (*BookingRecord, error)
}

// BookingRecord is the persistence-shaped row a repository returns for
// rebuilding the aggregate.
type BookingRecord struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	Title     string
	OwnerRef  string
	StartAt   time.Time
	EndAt     time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookings  BookingRepository
	rooms     queries.RoomReadStore
	intervals queries.BookingIntervalReadStore
	tx        shared.TxRunner
	clock     clock.Clock
}

func NewBookingCommands(
	bookings BookingRepository,
	rooms queries.RoomReadStore,
	intervals queries.BookingIntervalReadStore,
	tx shared.TxRunner,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:  bookings,
		rooms:     rooms,
		intervals: intervals,
		tx:        tx,
		clock:     clk,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	roomSnap, err := c.rooms.FindByID(ctx, params.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if schedule.SpecialState(roomSnap.SpecialState) != schedule.SpecialNone {
		return nil, ErrRoomUnavailable
	}

	interval, err := c.parseInterval(params.StartAt, params.EndAt)
	if err != nil {
		return nil, err
	}

	window, err := schedule.NewBusinessWindow(roomSnap.OpenTime, roomSnap.CloseTime, roomSnap.GranularityMinutes, roomSnap.DefaultDurationMinutes)
	if err != nil {
		return nil, errs.Wrap(err, "stored room has an invalid business window")
	}
	if err := validateWithinWindow(interval, window); err != nil {
		return nil, err
	}

	if err := c.checkConflict(ctx, params.RoomID, interval); err != nil {
		return nil, err
	}

	services := &booking.Services{Clock: c.clock}
	entity, err := booking.NewBooking(services, params.RoomID, interval, params.Title, params.OwnerRef)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.insertBooking(ctx, entity); err != nil {
		return nil, err
	}

	return bookingViewFromEntity(entity)
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID) error {
	record, err := c.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	interval, err := schedule.NewInterval(schedule.FromWallClock(record.StartAt), schedule.FromWallClock(record.EndAt))
	if err != nil {
		return errs.Wrap(err, "stored booking has an invalid interval")
	}

	entity := booking.Reconstruct(
		record.ID, record.RoomID,
		record.Title, record.OwnerRef,
		interval,
		booking.Status(record.Status),
		record.CreatedAt, record.UpdatedAt,
	)
	if err := entity.Cancel(); err != nil {
		return errs.Mark(err, ErrBookingAlreadyCancelled)
	}

	if err := c.bookings.UpdateStatus(ctx, entity.ID(), entity.Status(), c.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *bookingCommandsImpl) parseInterval(startAt, endAt string) (schedule.Interval, error) {
	start, err := schedule.ParseTimePoint(startAt)
	if err != nil {
		return schedule.Interval{}, errs.Mark(err, ErrInvalidTimeRange)
	}
	end, err := schedule.ParseTimePoint(endAt)
	if err != nil {
		return schedule.Interval{}, errs.Mark(err, ErrInvalidTimeRange)
	}
	interval, err := schedule.NewInterval(start, end)
	if err != nil {
		return schedule.Interval{}, errs.Mark(err, ErrInvalidTimeRange)
	}
	return interval, nil
}

// checkConflict applies the engine's half-open overlap rule to the
// room-day's active bookings; touching an existing booking is allowed.
func (c *bookingCommandsImpl) checkConflict(ctx context.Context, roomID uuid.UUID, proposed schedule.Interval) error {
	rows, err := c.intervals.ListActiveIntervalsForRoomDay(ctx, roomID, proposed.Start().StartOfDay().ToWallClock())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	existing := make([]schedule.Interval, 0, len(rows))
	for _, row := range rows {
		iv, err := schedule.NewInterval(schedule.FromWallClock(row.StartAt), schedule.FromWallClock(row.EndAt))
		if err != nil {
			return errs.Wrap(err, "stored booking has an invalid interval")
		}
		existing = append(existing, iv)
	}

	if conflict, found := schedule.FindConflict(proposed, existing); found {
		detail := fmt.Errorf("overlaps existing booking %s - %s", conflict.Start(), conflict.End())
		return errs.Mark(detail, ErrBookingConflict)
	}
	return nil
}

func (c *bookingCommandsImpl) insertBooking(ctx context.Context, entity *booking.Booking) error {
	err := c.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		return c.bookings.Create(ctx, tx, entity)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func validateWithinWindow(interval schedule.Interval, window schedule.BusinessWindow) error {
	if !interval.Start().SameDay(interval.End()) && !interval.End().Equal(window.CloseOn(interval.Start())) {
		return ErrOutsideBusinessHours
	}
	if interval.Start().Before(window.OpenOn(interval.Start())) {
		return ErrOutsideBusinessHours
	}
	if interval.End().After(window.CloseOn(interval.Start())) {
		return ErrOutsideBusinessHours
	}
	return nil
}

func bookingViewFromEntity(entity *booking.Booking) (*queries.BookingView, error) {
	view := &queries.BookingView{}
	// Copies matching accessor results (ID, RoomID, Title, ...); interval
	// fields need the naive rendering and are set explicitly.
	if err := copier.Copy(view, entity); err != nil {
		return nil, errs.Wrap(err, "failed to build booking view")
	}
	view.OwnerRef = entity.OwnerRef()
	view.Status = string(entity.Status())
	view.StartAt = entity.Interval().Start().String()
	view.EndAt = entity.Interval().End().String()
	return view, nil
}
