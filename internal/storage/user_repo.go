package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gamenight/internal/domain/entity"

	sq "github.com/Masterminds/squirrel"
)

type userRepo struct {
	db dbConn
	sb sq.StatementBuilderType
}

func newUserRepo(db dbConn, sb sq.StatementBuilderType) *userRepo {
	return &userRepo{db: db, sb: sb}
}

// Upsert records the user, refreshing the username if it changed.
func (r *userRepo) Upsert(ctx context.Context, discordID, username string) error {
	query, args, err := r.sb.Insert("users").
		Columns("discord_id", "username", "created_at").
		Values(discordID, username, now()).
		Suffix("ON CONFLICT (discord_id) DO UPDATE SET username = excluded.username").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build user upsert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (r *userRepo) GetByDiscordID(ctx context.Context, discordID string) (*entity.User, error) {
	query, args, err := r.sb.Select("discord_id", "username", "created_at").
		From("users").
		Where(sq.Eq{"discord_id": discordID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}

	user := &entity.User{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.DiscordID, &user.Username, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
