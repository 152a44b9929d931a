package repository

import (
	"context"
	"errors"
	"time"

	"roomboard/internal/domain/booking"
	"roomboard/internal/infra"
	"roomboard/internal/pkg/pgconv"
	"roomboard/internal/usecase/commands"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) error {
	query, args, err := psql.Insert("bookings").
		Columns("id", "room_id", "title", "owner_ref", "start_at", "end_at", "status", "created_at", "updated_at").
		Values(
			b.ID(),
			b.RoomID(),
			b.Title(),
			b.OwnerRef(),
			b.Interval().Start().ToWallClock(),
			b.Interval().End().ToWallClock(),
			string(b.Status()),
			b.CreatedAt(),
			b.UpdatedAt(),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking insert", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return classifyPgErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, updatedAt time.Time) error {
	query, args, err := psql.Update("bookings").
		Set("status", string(status)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking status update", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return classifyPgErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.BookingRecord, error) {
	query, args, err := psql.Select("id", "room_id", "title", "owner_ref", "start_at", "end_at", "status", "created_at", "updated_at").
		From("bookings").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	var record commands.BookingRecord
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&record.ID,
		&record.RoomID,
		&record.Title,
		&record.OwnerRef,
		&record.StartAt,
		&record.EndAt,
		&record.Status,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &record, nil
}

func classifyPgErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case "23503":
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
