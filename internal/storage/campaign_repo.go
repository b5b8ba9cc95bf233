package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gamenight/internal/domain/entity"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type campaignRepo struct {
	db dbConn
	sb sq.StatementBuilderType
}

func newCampaignRepo(db dbConn, sb sq.StatementBuilderType) *campaignRepo {
	return &campaignRepo{db: db, sb: sb}
}

var campaignColumns = []string{
	"id", "server_id", "title", "description", "game_id", "game_name",
	"regular_game_time", "discord_role_id", "discord_category_id",
	"announcement_channel_id", "announcement_message_id", "created_at", "updated_at",
}

func scanCampaign(row scanner) (*entity.Campaign, error) {
	c := &entity.Campaign{}
	var game, role, category, channel, message sql.NullString
	err := row.Scan(
		&c.ID,
		&c.ServerID,
		&c.Title,
		&c.Description,
		&game,
		&c.GameName,
		&c.RegularGameTime,
		&role,
		&category,
		&channel,
		&message,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.GameID = game.String
	c.RoleID = role.String
	c.CategoryID = category.String
	c.AnnouncementChannelID = channel.String
	c.AnnouncementID = message.String
	return c, nil
}

func (r *campaignRepo) Create(ctx context.Context, c *entity.Campaign) error {
	c.ID = uuid.NewString()
	c.CreatedAt = now()
	c.UpdatedAt = c.CreatedAt

	query, args, err := r.sb.Insert("campaigns").
		Columns(campaignColumns...).
		Values(
			c.ID,
			c.ServerID,
			c.Title,
			c.Description,
			nullable(c.GameID),
			c.GameName,
			c.RegularGameTime,
			nullable(c.RoleID),
			nullable(c.CategoryID),
			nullable(c.AnnouncementChannelID),
			nullable(c.AnnouncementID),
			c.CreatedAt,
			c.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build campaign insert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

func (r *campaignRepo) get(ctx context.Context, where sq.Eq) (*entity.Campaign, error) {
	query, args, err := r.sb.Select(campaignColumns...).
		From("campaigns").
		Where(where).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build campaign query: %w", err)
	}

	c, err := scanCampaign(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return c, nil
}

func (r *campaignRepo) GetByID(ctx context.Context, id string) (*entity.Campaign, error) {
	return r.get(ctx, sq.Eq{"id": id})
}

func (r *campaignRepo) GetByRoleID(ctx context.Context, roleID string) (*entity.Campaign, error) {
	return r.get(ctx, sq.Eq{"discord_role_id": roleID})
}

func (r *campaignRepo) Update(ctx context.Context, c *entity.Campaign) error {
	c.UpdatedAt = now()

	query, args, err := r.sb.Update("campaigns").
		SetMap(map[string]interface{}{
			"title":                   c.Title,
			"description":             c.Description,
			"game_id":                 nullable(c.GameID),
			"game_name":               c.GameName,
			"regular_game_time":       c.RegularGameTime,
			"discord_role_id":         nullable(c.RoleID),
			"discord_category_id":     nullable(c.CategoryID),
			"announcement_channel_id": nullable(c.AnnouncementChannelID),
			"announcement_message_id": nullable(c.AnnouncementID),
			"updated_at":              c.UpdatedAt,
		}).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build campaign update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("failed to update campaign %s: no such row", c.ID)
	}
	return nil
}

func (r *campaignRepo) ListByServer(ctx context.Context, serverID string) ([]*entity.Campaign, error) {
	query, args, err := r.sb.Select(campaignColumns...).
		From("campaigns").
		Where(sq.Eq{"server_id": serverID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build campaigns query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*entity.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}
