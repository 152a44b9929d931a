package readstore

import (
	"context"
	"time"

	"roomboard/internal/domain/booking"
	"roomboard/internal/domain/schedule"
	"roomboard/internal/infra"
	"roomboard/internal/pkg/pgconv"
	"roomboard/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var bookingColumns = []string{
	"id", "room_id", "title", "owner_ref",
	"start_at", "end_at", "status",
	"created_at", "updated_at",
}

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := psql.Select(bookingColumns...).
		From("bookings").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	view, err := scanBookingView(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) ListForRoomDay(ctx context.Context, roomID uuid.UUID, day time.Time) ([]*queries.BookingView, error) {
	dayStart, dayEnd := dayBounds(day)
	query, args, err := psql.Select(bookingColumns...).
		From("bookings").
		Where(sq.Eq{"room_id": roomID}).
		Where(sq.GtOrEq{"start_at": dayStart}).
		Where(sq.Lt{"start_at": dayEnd}).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

// ListActiveIntervalsForRoomDay feeds the availability engine: only active
// bookings, interval columns only, sorted by start.
func (r *BookingReadStore) ListActiveIntervalsForRoomDay(ctx context.Context, roomID uuid.UUID, day time.Time) ([]queries.IntervalRow, error) {
	dayStart, dayEnd := dayBounds(day)
	query, args, err := psql.Select("start_at", "end_at").
		From("bookings").
		Where(sq.Eq{"room_id": roomID, "status": string(booking.StatusActive)}).
		Where(sq.GtOrEq{"start_at": dayStart}).
		Where(sq.Lt{"start_at": dayEnd}).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build interval query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking intervals", err)
	}
	defer rows.Close()

	var intervals []queries.IntervalRow
	for rows.Next() {
		var row queries.IntervalRow
		if err := rows.Scan(&row.StartAt, &row.EndAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan interval row", err)
		}
		intervals = append(intervals, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate interval rows", err)
	}
	return intervals, nil
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var (
		view    queries.BookingView
		startAt time.Time
		endAt   time.Time
	)
	err := row.Scan(
		&view.ID,
		&view.RoomID,
		&view.Title,
		&view.OwnerRef,
		&startAt,
		&endAt,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.StartAt = schedule.FromWallClock(startAt).String()
	view.EndAt = schedule.FromWallClock(endAt).String()
	return &view, nil
}
