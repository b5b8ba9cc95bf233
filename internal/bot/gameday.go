package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gamenight/internal/common"
	"gamenight/internal/customid"
	"gamenight/internal/domain/contract"
	"gamenight/internal/domain/entity"
	"gamenight/internal/rsvp"

	"github.com/rs/zerolog/log"
)

// Scheduled events need an end; game days last an evening.
const gameDayLength = 4 * time.Hour

func (bot *Bot) onScheduleGameDaySubmit(ctx context.Context, ix contract.Interaction, intent customid.Intent) error {

	schedule, ok := intent.(customid.ScheduleGameDay)
	if !ok {
		return fmt.Errorf("unexpected intent %T", intent)
	}
	if err := ix.Defer(ctx); err != nil {
		return err
	}
	server, err := bot.serverFor(ctx, ix, schedule)
	if err != nil {
		return err
	}
	// The form is only ever shown to the host
	if schedule.HostID != ix.ActorID() {
		return fmt.Errorf("form of host %s submitted by %s", schedule.HostID, ix.ActorID())
	}
	host := ix.ActorID()

	title := strings.TrimSpace(ix.Value(inputTitle))
	if title == "" {
		return respond(ctx, ix, InputNotValid("A game day needs a title"))
	}
	dateTime, err := time.ParseInLocation(dateTimeLayout, strings.TrimSpace(ix.Value(inputDateTime)), time.UTC)
	if err != nil {
		return respond(ctx, ix, InvalidDateTime())
	}
	if !dateTime.After(bot.now()) {
		return respond(ctx, ix, DateTimeInPast())
	}

	var game *entity.Game
	if schedule.GameRoleID != "" {
		if game, err = bot.dm.Game().GetByRoleID(ctx, server.ID, schedule.GameRoleID); err != nil {
			return err
		}
	}
	roleID, err := bot.platform.CreateRole(ctx, schedule.GuildID, GameDayRoleName(title, dateTime))
	if err != nil {
		log.Error().Err(err).Msg(fmt.Sprintf("Could not create role for game day %s", title))
		return respond(ctx, ix, GameDayCreationFailed())
	}

	gameDay := &entity.GameDay{
		ServerID:    server.ID,
		Title:       title,
		Description: strings.TrimSpace(ix.Value(inputDescription)),
		DateTime:    dateTime,
		Location:    strings.TrimSpace(ix.Value(inputLocation)),
		HostUserID:  host,
		Status:      entity.GameDayScheduling,
		RoleID:      roleID,
	}
	if game != nil {
		gameDay.GameID = game.ID
	}
	if err := bot.dm.GameDay().Create(ctx, gameDay); err != nil {
		log.Error().Err(err).Msg(fmt.Sprintf("Could not save game day %s", title))
		common.BestEffort(ctx, "delete game day role", func(ctx context.Context) error {
			return bot.platform.DeleteRole(ctx, schedule.GuildID, roleID)
		})
		return respond(ctx, ix, GameDayCreationFailed())
	}

	// From here on the game day exists, every Discord resource is optional
	common.BestEffort(ctx, "create game day channels", func(ctx context.Context) error {
		categoryID, err := bot.platform.CreatePrivateCategory(ctx, schedule.GuildID, title, roleID, gameDayChannels(title))
		gameDay.CategoryID = categoryID
		return err
	})
	common.BestEffort(ctx, "create scheduled event", func(ctx context.Context) error {
		eventID, err := bot.platform.CreateEvent(ctx, schedule.GuildID, contract.ScheduledEvent{
			Name:        title,
			Description: orDefault(gameDay.Description, title),
			Location:    orDefault(gameDay.Location, "To be decided"),
			Start:       dateTime,
			End:         dateTime.Add(gameDayLength),
		})
		gameDay.EventID = eventID
		return err
	})
	common.BestEffort(ctx, "save game day resources", func(ctx context.Context) error {
		return bot.dm.GameDay().Update(ctx, gameDay)
	})

	// The host attends their own game day
	hostSubject := rsvp.Subject{Kind: entity.SubjectGameDay, ID: gameDay.ID, GuildID: schedule.GuildID, RoleID: roleID}
	if _, err := bot.sync.Set(ctx, hostSubject, rsvp.Actor{ID: host, Name: ix.ActorName()}, entity.AttendanceAvailable); err != nil {
		log.Error().Err(err).Msg(fmt.Sprintf("Could not mark host %s as available", host))
	}

	channelID := announcementChannel(server, ix)
	common.BestEffort(ctx, "post game day announcement", func(ctx context.Context) error {
		return bot.postGameDayAnnouncement(ctx, gameDay, channelID)
	})

	attendances, err := bot.dm.Attendance().ListByGameDay(ctx, gameDay.ID)
	if err != nil {
		log.Warn().Err(err).Msg("Could not list attendances for the reply")
	}
	log.Info().Msg(fmt.Sprintf("Game day scheduled: %s", gameDay.ID))
	return respond(ctx, ix, GameDayScheduled(gameDay, attendances, game))
}

// announcementChannel prefers the configured scheduling channel over the
// channel the command was typed in.
func announcementChannel(server *entity.Server, ix contract.Interaction) string {
	if server.SchedulingChannelID != "" {
		return server.SchedulingChannelID
	}
	return ix.ChannelID()
}

func (bot *Bot) gameOf(ctx context.Context, gameID string) (*entity.Game, error) {
	if gameID == "" {
		return nil, nil
	}
	return bot.dm.Game().GetByID(ctx, gameID)
}

func (bot *Bot) postGameDayAnnouncement(ctx context.Context, gameDay *entity.GameDay, channelID string) error {

	attendances, err := bot.dm.Attendance().ListByGameDay(ctx, gameDay.ID)
	if err != nil {
		return err
	}
	game, err := bot.gameOf(ctx, gameDay.GameID)
	if err != nil {
		return err
	}
	messageID, err := bot.platform.SendMessage(ctx, channelID, GameDayAnnouncement(gameDay, attendances, game))
	if err != nil {
		return err
	}
	gameDay.AnnouncementChannelID = channelID
	gameDay.AnnouncementID = messageID
	return bot.dm.GameDay().Update(ctx, gameDay)
}

// gameDayByRole returns the game day of this server behind a role, or nil.
func (bot *Bot) gameDayByRole(ctx context.Context, server *entity.Server, roleID string) (*entity.GameDay, error) {
	gameDay, err := bot.dm.GameDay().GetByRoleID(ctx, roleID)
	if err != nil || gameDay == nil || gameDay.ServerID != server.ID {
		return nil, err
	}
	return gameDay, nil
}

func (bot *Bot) announceGameDay(ctx context.Context, ix contract.Interaction, server *entity.Server, roleID string) error {

	if err := ix.Defer(ctx); err != nil {
		return err
	}
	gameDay, err := bot.gameDayByRole(ctx, server, roleID)
	if err != nil {
		return err
	}
	if gameDay == nil {
		return respond(ctx, ix, GameDayNotFound())
	}

	channelID := announcementChannel(server, ix)
	if err := bot.postGameDayAnnouncement(ctx, gameDay, channelID); err != nil {
		return err
	}
	if gameDay.EventID != "" {
		common.BestEffort(ctx, "link announcement in event", func(ctx context.Context) error {
			link := messageLink(server.DiscordID, channelID, gameDay.AnnouncementID)
			description := strings.TrimSpace(fmt.Sprintf("%s\n\nRSVP here: %s", gameDay.Description, link))
			return bot.platform.EditEventDescription(ctx, server.DiscordID, gameDay.EventID, description)
		})
	}
	return respond(ctx, ix, GameDayAnnounced(gameDay))
}

func (bot *Bot) cancelGameDay(ctx context.Context, ix contract.Interaction, server *entity.Server, roleID string) error {

	if err := ix.Defer(ctx); err != nil {
		return err
	}
	gameDay, err := bot.gameDayByRole(ctx, server, roleID)
	if err != nil {
		return err
	}
	if gameDay == nil {
		return respond(ctx, ix, GameDayNotFound())
	}
	if gameDay.Status == entity.GameDayCancelled {
		return respond(ctx, ix, GameDayAlreadyCancelled(gameDay))
	}

	gameDay.Status = entity.GameDayCancelled
	if err := bot.dm.GameDay().Update(ctx, gameDay); err != nil {
		return err
	}
	log.Info().Msg(fmt.Sprintf("Game day %s cancelled by %s", gameDay.ID, ix.ActorID()))

	common.BestEffort(ctx, "mark announcement cancelled", func(ctx context.Context) error {
		return bot.RefreshAnnouncement(ctx, entity.SubjectGameDay, gameDay.ID)
	})
	if gameDay.EventID != "" {
		common.BestEffort(ctx, "delete scheduled event", func(ctx context.Context) error {
			return bot.platform.DeleteEvent(ctx, server.DiscordID, gameDay.EventID)
		})
	}
	if gameDay.CategoryID != "" {
		common.BestEffort(ctx, "delete game day channels", func(ctx context.Context) error {
			return bot.platform.DeleteCategory(ctx, server.DiscordID, gameDay.CategoryID)
		})
	}
	common.BestEffort(ctx, "delete game day role", func(ctx context.Context) error {
		return bot.platform.DeleteRole(ctx, server.DiscordID, gameDay.RoleID)
	})
	return respond(ctx, ix, GameDayCancelled(gameDay))
}

func (bot *Bot) listGameDays(ctx context.Context, ix contract.Interaction, server *entity.Server) error {
	if err := ix.Defer(ctx); err != nil {
		return err
	}
	gameDays, err := bot.dm.GameDay().ListUpcoming(ctx, server.ID, bot.now())
	if err != nil {
		return err
	}
	return respond(ctx, ix, GameDayList(gameDays))
}
