package readstore

import (
	"context"

	"roomboard/internal/infra"
	"roomboard/internal/pkg/pgconv"
	"roomboard/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var roomColumns = []string{
	"id", "name", "location", "special_state",
	"open_time", "close_time", "granularity_minutes", "default_duration_minutes",
	"created_at", "updated_at",
}

type RoomReadStore struct {
	db *pgxpool.Pool
}

func NewRoomReadStore(db *pgxpool.Pool) *RoomReadStore {
	return &RoomReadStore{db: db}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomSnapshot, error) {
	query, args, err := psql.Select(roomColumns...).
		From("rooms").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build room query", err)
	}

	snap, err := scanRoom(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return snap, nil
}

func (r *RoomReadStore) List(ctx context.Context) ([]*queries.RoomSnapshot, error) {
	query, args, err := psql.Select(roomColumns...).
		From("rooms").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build room list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var snaps []*queries.RoomSnapshot
	for rows.Next() {
		snap, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return snaps, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (*queries.RoomSnapshot, error) {
	var snap queries.RoomSnapshot
	err := row.Scan(
		&snap.ID,
		&snap.Name,
		&snap.Location,
		&snap.SpecialState,
		&snap.OpenTime,
		&snap.CloseTime,
		&snap.GranularityMinutes,
		&snap.DefaultDurationMinutes,
		&snap.CreatedAt,
		&snap.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
