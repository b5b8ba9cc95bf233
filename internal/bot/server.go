package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gamenight/internal/customid"
	"gamenight/internal/domain"
	"gamenight/internal/domain/contract"
	"gamenight/internal/domain/entity"

	"github.com/rs/zerolog/log"
)

func (bot *Bot) setupChannel(ctx context.Context, ix contract.Interaction, server *entity.Server, channelID string) error {

	if err := ix.Defer(ctx); err != nil {
		return err
	}
	isText, err := bot.platform.IsTextChannel(ctx, channelID)
	if err != nil {
		return err
	}
	if !isText {
		return respond(ctx, ix, ChannelNotText())
	}
	if err := bot.dm.Server().SetSchedulingChannel(ctx, server.ID, channelID); err != nil {
		return err
	}
	log.Info().Msg(fmt.Sprintf("Changing scheduling channel of guild %s to %s", server.DiscordID, channelID))
	return respond(ctx, ix, ChannelChanged(fmt.Sprintf("<#%s>", channelID)))
}

// onLegacySetupSubmit serves the setup form of older installs, which named
// the channel instead of picking it.
func (bot *Bot) onLegacySetupSubmit(ctx context.Context, ix contract.Interaction, _ string) error {

	if err := ix.Defer(ctx); err != nil {
		return err
	}
	channelName := strings.TrimSpace(ix.Value(inputSchedulingChannel))
	if channelName == "" {
		return respond(ctx, ix, InputNotValid("A channel name is required"))
	}

	channelID, err := bot.platform.FindTextChannel(ctx, ix.GuildID(), channelName)
	if errors.Is(err, domain.ErrNotFound) {
		return respond(ctx, ix, ChannelDoesNotExist(channelName))
	}
	if err != nil {
		return err
	}

	server, err := bot.dm.Server().GetOrCreate(ctx, ix.GuildID())
	if err != nil {
		return err
	}
	if err := bot.dm.Server().SetSchedulingChannel(ctx, server.ID, channelID); err != nil {
		return err
	}
	return respond(ctx, ix, ChannelChanged(fmt.Sprintf("<#%s>", channelID)))
}

// onExpiredForm answers forms whose state lived in the memory of an older
// process.
func (bot *Bot) onExpiredForm(ctx context.Context, ix contract.Interaction, _ string) error {
	return respond(ctx, ix, []Response{ResponseString{"This form has expired. Please run `/game setup` again."}})
}

func (bot *Bot) listGames(ctx context.Context, ix contract.Interaction, server *entity.Server) error {
	if err := ix.Defer(ctx); err != nil {
		return err
	}
	games, err := bot.dm.Game().ListByServer(ctx, server.ID)
	if err != nil {
		return err
	}
	return respond(ctx, ix, GameList(games))
}

// serverFor returns the record of the guild a form was opened in.
func (bot *Bot) serverFor(ctx context.Context, ix contract.Interaction, intent customid.Intent) (*entity.Server, error) {
	guildID := intent.Subject()
	if guildID != ix.GuildID() {
		return nil, fmt.Errorf("form of guild %s submitted in guild %s", guildID, ix.GuildID())
	}
	return bot.dm.Server().GetOrCreate(ctx, guildID)
}
