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

type gameRepo struct {
	db dbConn
	sb sq.StatementBuilderType
}

func newGameRepo(db dbConn, sb sq.StatementBuilderType) *gameRepo {
	return &gameRepo{db: db, sb: sb}
}

var gameColumns = []string{
	"id", "server_id", "name", "short_name", "description",
	"discord_role_id", "min_players", "max_players", "created_at",
}

func scanGame(row scanner) (*entity.Game, error) {
	game := &entity.Game{}
	var role sql.NullString
	err := row.Scan(
		&game.ID,
		&game.ServerID,
		&game.Name,
		&game.ShortName,
		&game.Description,
		&role,
		&game.MinPlayers,
		&game.MaxPlayers,
		&game.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	game.RoleID = role.String
	return game, nil
}

func (r *gameRepo) Create(ctx context.Context, game *entity.Game) error {
	game.ID = uuid.NewString()
	game.CreatedAt = now()

	query, args, err := r.sb.Insert("games").
		Columns(gameColumns...).
		Values(
			game.ID,
			game.ServerID,
			game.Name,
			game.ShortName,
			game.Description,
			nullable(game.RoleID),
			game.MinPlayers,
			game.MaxPlayers,
			game.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build game insert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

func (r *gameRepo) get(ctx context.Context, where sq.Eq) (*entity.Game, error) {
	query, args, err := r.sb.Select(gameColumns...).From("games").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build game query: %w", err)
	}

	game, err := scanGame(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

func (r *gameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	return r.get(ctx, sq.Eq{"id": id})
}

func (r *gameRepo) GetByRoleID(ctx context.Context, serverID, roleID string) (*entity.Game, error) {
	return r.get(ctx, sq.Eq{"server_id": serverID, "discord_role_id": roleID})
}

func (r *gameRepo) ListByServer(ctx context.Context, serverID string) ([]*entity.Game, error) {
	query, args, err := r.sb.Select(gameColumns...).
		From("games").
		Where(sq.Eq{"server_id": serverID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build games query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var games []*entity.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, game)
	}
	return games, rows.Err()
}
