package repository

import (
	"context"
	"time"

	"roomboard/internal/domain/room"
	"roomboard/internal/domain/schedule"
	"roomboard/internal/infra"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, entity *room.Room) error {
	window := entity.Window()
	query, args, err := psql.Insert("rooms").
		Columns("id", "name", "location", "special_state",
			"open_time", "close_time", "granularity_minutes", "default_duration_minutes",
			"created_at", "updated_at").
		Values(
			entity.ID(),
			entity.Name(),
			entity.Location(),
			string(entity.SpecialState()),
			window.OpenString(),
			window.CloseString(),
			window.GranularityMinutes(),
			window.DefaultDurationMinutes(),
			entity.CreatedAt(),
			entity.UpdatedAt(),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build room insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return classifyPgErr("failed to insert room", err)
	}
	return nil
}

func (r *RoomRepository) UpdateSpecialState(ctx context.Context, id uuid.UUID, state schedule.SpecialState, updatedAt time.Time) error {
	query, args, err := psql.Update("rooms").
		Set("special_state", string(state)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build room state update", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update room state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
