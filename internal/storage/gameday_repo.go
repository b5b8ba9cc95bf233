package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gamenight/internal/domain/entity"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type gameDayRepo struct {
	db dbConn
	sb sq.StatementBuilderType
}

func newGameDayRepo(db dbConn, sb sq.StatementBuilderType) *gameDayRepo {
	return &gameDayRepo{db: db, sb: sb}
}

var gameDayColumns = []string{
	"id", "server_id", "title", "description", "date_time", "location",
	"host_user_id", "game_id", "status", "discord_role_id", "discord_category_id",
	"discord_event_id", "announcement_channel_id", "announcement_message_id",
	"created_at", "updated_at",
}

func scanGameDay(row scanner) (*entity.GameDay, error) {
	gd := &entity.GameDay{}
	var game, role, category, event, channel, message sql.NullString
	err := row.Scan(
		&gd.ID,
		&gd.ServerID,
		&gd.Title,
		&gd.Description,
		&gd.DateTime,
		&gd.Location,
		&gd.HostUserID,
		&game,
		&gd.Status,
		&role,
		&category,
		&event,
		&channel,
		&message,
		&gd.CreatedAt,
		&gd.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	gd.GameID = game.String
	gd.RoleID = role.String
	gd.CategoryID = category.String
	gd.EventID = event.String
	gd.AnnouncementChannelID = channel.String
	gd.AnnouncementID = message.String
	return gd, nil
}

func (r *gameDayRepo) Create(ctx context.Context, gd *entity.GameDay) error {
	gd.ID = uuid.NewString()
	gd.CreatedAt = now()
	gd.UpdatedAt = gd.CreatedAt
	if gd.Status == "" {
		gd.Status = entity.GameDayScheduling
	}

	query, args, err := r.sb.Insert("game_days").
		Columns(gameDayColumns...).
		Values(
			gd.ID,
			gd.ServerID,
			gd.Title,
			gd.Description,
			gd.DateTime.UTC(),
			gd.Location,
			gd.HostUserID,
			nullable(gd.GameID),
			gd.Status,
			nullable(gd.RoleID),
			nullable(gd.CategoryID),
			nullable(gd.EventID),
			nullable(gd.AnnouncementChannelID),
			nullable(gd.AnnouncementID),
			gd.CreatedAt,
			gd.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build game day insert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create game day: %w", err)
	}
	return nil
}

func (r *gameDayRepo) get(ctx context.Context, where sq.Eq) (*entity.GameDay, error) {
	query, args, err := r.sb.Select(gameDayColumns...).
		From("game_days").
		Where(where).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build game day query: %w", err)
	}

	gd, err := scanGameDay(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game day: %w", err)
	}
	return gd, nil
}

func (r *gameDayRepo) GetByID(ctx context.Context, id string) (*entity.GameDay, error) {
	return r.get(ctx, sq.Eq{"id": id})
}

// GetByRoleID returns the most recent game day using the role.
func (r *gameDayRepo) GetByRoleID(ctx context.Context, roleID string) (*entity.GameDay, error) {
	return r.get(ctx, sq.Eq{"discord_role_id": roleID})
}

func (r *gameDayRepo) Update(ctx context.Context, gd *entity.GameDay) error {
	gd.UpdatedAt = now()

	query, args, err := r.sb.Update("game_days").
		SetMap(map[string]interface{}{
			"title":                   gd.Title,
			"description":             gd.Description,
			"date_time":               gd.DateTime.UTC(),
			"location":                gd.Location,
			"game_id":                 nullable(gd.GameID),
			"status":                  gd.Status,
			"discord_role_id":         nullable(gd.RoleID),
			"discord_category_id":     nullable(gd.CategoryID),
			"discord_event_id":        nullable(gd.EventID),
			"announcement_channel_id": nullable(gd.AnnouncementChannelID),
			"announcement_message_id": nullable(gd.AnnouncementID),
			"updated_at":              gd.UpdatedAt,
		}).
		Where(sq.Eq{"id": gd.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build game day update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update game day: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("failed to update game day %s: no such row", gd.ID)
	}
	return nil
}

// ListUpcoming returns the game days of the server that start at or after
// from and were not cancelled, soonest first.
func (r *gameDayRepo) ListUpcoming(ctx context.Context, serverID string, from time.Time) ([]*entity.GameDay, error) {
	query, args, err := r.sb.Select(gameDayColumns...).
		From("game_days").
		Where(sq.Eq{"server_id": serverID}).
		Where(sq.GtOrEq{"date_time": from.UTC()}).
		Where(sq.NotEq{"status": entity.GameDayCancelled}).
		OrderBy("date_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build game days query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list game days: %w", err)
	}
	defer rows.Close()

	var gameDays []*entity.GameDay
	for rows.Next() {
		gd, err := scanGameDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game day: %w", err)
		}
		gameDays = append(gameDays, gd)
	}
	return gameDays, rows.Err()
}
