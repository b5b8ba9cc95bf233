package contract

import (
	"context"
	"time"

	"gamenight/internal/domain/entity"
)

// DataManager groups the repositories. Getters return nil, nil when the row
// does not exist.
type DataManager interface {
	Server() ServerRepo
	User() UserRepo
	Game() GameRepo
	GameDay() GameDayRepo
	Attendance() AttendanceRepo
	Campaign() CampaignRepo
	Player() PlayerRepo
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
}

type ServerRepo interface {
	GetOrCreate(ctx context.Context, discordID string) (*entity.Server, error)
	GetByDiscordID(ctx context.Context, discordID string) (*entity.Server, error)
	SetSchedulingChannel(ctx context.Context, serverID, channelID string) error
}

type UserRepo interface {
	Upsert(ctx context.Context, discordID, username string) error
	GetByDiscordID(ctx context.Context, discordID string) (*entity.User, error)
}

type GameRepo interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	GetByRoleID(ctx context.Context, serverID, roleID string) (*entity.Game, error)
	ListByServer(ctx context.Context, serverID string) ([]*entity.Game, error)
}

type GameDayRepo interface {
	Create(ctx context.Context, gameDay *entity.GameDay) error
	GetByID(ctx context.Context, id string) (*entity.GameDay, error)
	GetByRoleID(ctx context.Context, roleID string) (*entity.GameDay, error)
	Update(ctx context.Context, gameDay *entity.GameDay) error
	ListUpcoming(ctx context.Context, serverID string, from time.Time) ([]*entity.GameDay, error)
}

type AttendanceRepo interface {
	// Upsert keeps a single row per game day and user; the status of a
	// second call replaces the first.
	Upsert(ctx context.Context, gameDayID, userID string, status entity.AttendanceStatus) (*entity.Attendance, error)
	Get(ctx context.Context, gameDayID, userID string) (*entity.Attendance, error)
	ListByGameDay(ctx context.Context, gameDayID string) ([]*entity.Attendance, error)
}

type CampaignRepo interface {
	Create(ctx context.Context, campaign *entity.Campaign) error
	GetByID(ctx context.Context, id string) (*entity.Campaign, error)
	GetByRoleID(ctx context.Context, roleID string) (*entity.Campaign, error)
	Update(ctx context.Context, campaign *entity.Campaign) error
	ListByServer(ctx context.Context, serverID string) ([]*entity.Campaign, error)
}

type PlayerRepo interface {
	Upsert(ctx context.Context, campaignID, userID string, status entity.PlayerStatus) (*entity.Player, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]*entity.Player, error)
}
