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

type scanner interface {
	Scan(dest ...interface{}) error
}

type serverRepo struct {
	db dbConn
	sb sq.StatementBuilderType
}

func newServerRepo(db dbConn, sb sq.StatementBuilderType) *serverRepo {
	return &serverRepo{db: db, sb: sb}
}

var serverColumns = []string{"id", "discord_id", "scheduling_channel_id", "created_at", "updated_at"}

func scanServer(row scanner) (*entity.Server, error) {
	server := &entity.Server{}
	var channel sql.NullString
	err := row.Scan(&server.ID, &server.DiscordID, &channel, &server.CreatedAt, &server.UpdatedAt)
	if err != nil {
		return nil, err
	}
	server.SchedulingChannelID = channel.String
	return server, nil
}

func (r *serverRepo) GetByDiscordID(ctx context.Context, discordID string) (*entity.Server, error) {
	query, args, err := r.sb.Select(serverColumns...).
		From("discord_servers").
		Where(sq.Eq{"discord_id": discordID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build server query: %w", err)
	}

	server, err := scanServer(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get server: %w", err)
	}
	return server, nil
}

func (r *serverRepo) GetOrCreate(ctx context.Context, discordID string) (*entity.Server, error) {
	server, err := r.GetByDiscordID(ctx, discordID)
	if err != nil || server != nil {
		return server, err
	}

	ts := now()
	query, args, err := r.sb.Insert("discord_servers").
		Columns("id", "discord_id", "created_at", "updated_at").
		Values(uuid.NewString(), discordID, ts, ts).
		Suffix("ON CONFLICT (discord_id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build server insert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	server, err = r.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	if server == nil {
		return nil, fmt.Errorf("server %s vanished after insert", discordID)
	}
	return server, nil
}

func (r *serverRepo) SetSchedulingChannel(ctx context.Context, serverID, channelID string) error {
	query, args, err := r.sb.Update("discord_servers").
		Set("scheduling_channel_id", nullable(channelID)).
		Set("updated_at", now()).
		Where(sq.Eq{"id": serverID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build server update: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set scheduling channel: %w", err)
	}
	return nil
}
