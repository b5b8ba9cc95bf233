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

type playerRepo struct {
	db dbConn
	sb sq.StatementBuilderType
}

func newPlayerRepo(db dbConn, sb sq.StatementBuilderType) *playerRepo {
	return &playerRepo{db: db, sb: sb}
}

var playerColumns = []string{"id", "campaign_id", "user_id", "status", "character_name", "created_at", "updated_at"}

func scanPlayer(row scanner) (*entity.Player, error) {
	p := &entity.Player{}
	err := row.Scan(&p.ID, &p.CampaignID, &p.UserID, &p.Status, &p.CharacterName, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *playerRepo) Upsert(ctx context.Context, campaignID, userID string, status entity.PlayerStatus) (*entity.Player, error) {
	ts := now()
	query, args, err := r.sb.Insert("players").
		Columns("id", "campaign_id", "user_id", "status", "created_at", "updated_at").
		Values(uuid.NewString(), campaignID, userID, status, ts, ts).
		Suffix("ON CONFLICT (campaign_id, user_id) DO UPDATE SET status = excluded.status, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build player upsert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to upsert player: %w", err)
	}

	query, args, err = r.sb.Select(playerColumns...).
		From("players").
		Where(sq.Eq{"campaign_id": campaignID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build player query: %w", err)
	}
	p, err := scanPlayer(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("player %s of %s vanished after upsert", userID, campaignID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return p, nil
}

func (r *playerRepo) ListByCampaign(ctx context.Context, campaignID string) ([]*entity.Player, error) {
	query, args, err := r.sb.Select(playerColumns...).
		From("players").
		Where(sq.Eq{"campaign_id": campaignID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build players query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []*entity.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}
