package bot

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"gamenight/internal/config"
	"gamenight/internal/customid"
	"gamenight/internal/discord"
	"gamenight/internal/dispatch"
	"gamenight/internal/domain/contract"
	"gamenight/internal/domain/entity"
	"gamenight/internal/rsvp"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Discord lets a bot complete an interaction for this long after it was
// acknowledged.
const interactionWindow = 15 * time.Minute

type Bot struct {
	session    *discordgo.Session
	settings   config.DiscordConfig
	dm         contract.DataManager
	platform   contract.Platform
	sync       *rsvp.Synchronizer
	dispatcher *dispatch.Dispatcher
	now        func() time.Time
}

func CreateBot(settings config.DiscordConfig, dm contract.DataManager) (*Bot, error) {

	session, err := discordgo.New("Bot " + settings.Token)
	if err != nil {
		return nil, fmt.Errorf("could not create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	bot := newBot(dm, discord.NewPlatform(session), settings.AckDeadline)
	bot.session = session
	bot.settings = settings
	return bot, nil
}

func newBot(dm contract.DataManager, platform contract.Platform, ackDeadline time.Duration) *Bot {

	bot := &Bot{dm: dm, platform: platform, now: time.Now}
	bot.sync = rsvp.NewSynchronizer(platform, bot, map[entity.SubjectKind]rsvp.Ledger{
		entity.SubjectGameDay:  rsvp.NewGameDayLedger(dm),
		entity.SubjectCampaign: rsvp.NewCampaignLedger(dm),
	})
	bot.dispatcher = dispatch.New(bot.handlers(), bot.legacyHandlers(), dispatch.WithAckDeadline(ackDeadline))
	return bot
}

// handlers owns every intent kind exactly once.
func (bot *Bot) handlers() []dispatch.Handler {
	return []dispatch.Handler{
		dispatch.ForKind(customid.KindAttendance, bot.onAttendance),
		dispatch.ForKind(customid.KindInterest, bot.onInterest),
		dispatch.ForKind(customid.KindGameSetup, bot.onGameSetupSubmit),
		dispatch.ForKind(customid.KindScheduleGameDay, bot.onScheduleGameDaySubmit),
		dispatch.ForKind(customid.KindCreateCampaign, bot.onCreateCampaignSubmit),
	}
}

func (bot *Bot) legacyHandlers() []dispatch.LegacyHandler {
	return []dispatch.LegacyHandler{
		dispatch.LegacyExact("setup-modal", bot.onLegacySetupSubmit),
		dispatch.LegacyPrefix("game_setup_modal_", bot.onExpiredForm),
	}
}

func (bot *Bot) Run() error {

	bot.session.AddHandler(bot.onReady)
	bot.session.AddHandler(bot.onGuildCreate)
	bot.session.AddHandler(bot.onInteractionCreate)

	if err := bot.session.Open(); err != nil {
		return fmt.Errorf("could not open discord session: %w", err)
	}
	defer bot.session.Close()

	if !bot.settings.SkipCommandRegistration {
		if err := bot.registerCommands(); err != nil {
			log.Error().Err(err).Msg("Could not register slash commands")
		}
	}

	// keep bot running until there is an os interruption (ctrl + C)
	log.Info().Msg("Bot is running")
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	log.Info().Msg("Shutting down")

	return nil
}

func (bot *Bot) registerCommands() error {
	appID := bot.settings.AppID
	if appID == "" {
		appID = bot.session.State.User.ID
	}
	commands, err := bot.session.ApplicationCommandBulkOverwrite(appID, bot.settings.DevGuildID, Commands())
	if err != nil {
		return fmt.Errorf("could not overwrite application commands: %w", err)
	}
	log.Info().Msg(fmt.Sprintf("Registered %d slash commands", len(commands)))
	return nil
}

func (bot *Bot) onReady(s *discordgo.Session, ready *discordgo.Ready) {
	log.Info().Msg(fmt.Sprintf("Logged in as %s in %d guilds", ready.User.Username, len(ready.Guilds)))
}

// Register the guild the first time I see it
func (bot *Bot) onGuildCreate(s *discordgo.Session, event *discordgo.GuildCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if _, err := bot.dm.Server().GetOrCreate(ctx, event.ID); err != nil {
		log.Error().Err(err).Str("guild", event.ID).Msg("Could not register guild")
		return
	}
	log.Debug().Str("guild", event.ID).Msg(fmt.Sprintf("Guild %s is registered", event.Name))
}

func (bot *Bot) onInteractionCreate(s *discordgo.Session, event *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), interactionWindow)
	defer cancel()

	ix := discord.NewInteraction(s, event.Interaction)
	switch event.Type {
	case discordgo.InteractionApplicationCommand:
		bot.Command(ctx, ix, Parse(event.ApplicationCommandData()))
	case discordgo.InteractionMessageComponent, discordgo.InteractionModalSubmit:
		bot.dispatcher.Dispatch(ctx, ix)
	}
}

// Command runs one parsed slash command. Like Dispatch, it never panics.
func (bot *Bot) Command(ctx context.Context, ix contract.Interaction, parseResult ParseResult) {

	logger := log.With().Str("actor", ix.ActorID()).Str("guild", ix.GuildID()).Int("command", parseResult.command).Logger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Msg(fmt.Sprintf("Command panicked: %v\n%s", r, debug.Stack()))
			bot.reportFailure(ctx, ix)
		}
	}()

	if parseResult.parseid != PARSEID_OK {
		logger.Debug().Msg(fmt.Sprintf("Wrong input: %s", parseResult.errorMessage))
		bot.send(ctx, ix, InputNotValid(parseResult.errorMessage))
		return
	}
	switch parseResult.command {
	case COMMAND_HELP:
		bot.send(ctx, ix, HelpMessage())
		return
	case COMMAND_PING:
		bot.send(ctx, ix, Pong())
		return
	}
	if ix.GuildID() == "" {
		bot.send(ctx, ix, GuildOnly())
		return
	}

	server, err := bot.dm.Server().GetOrCreate(ctx, ix.GuildID())
	if err != nil {
		logger.Error().Err(err).Msg("No server record for guild")
		bot.send(ctx, ix, Reinstall())
		return
	}

	switch parseResult.command {
	case COMMAND_SETUP_CHANNEL:
		err = bot.setupChannel(ctx, ix, server, parseResult.arguments)
	case COMMAND_GAME_SETUP:
		err = ix.ShowModal(ctx, GameSetupModal(customid.GameSetup{GuildID: ix.GuildID(), RoleID: parseResult.arguments}))
	case COMMAND_GAME_LIST:
		err = bot.listGames(ctx, ix, server)
	case COMMAND_GAMEDAY_SCHEDULE:
		err = ix.ShowModal(ctx, ScheduleGameDayModal(customid.ScheduleGameDay{
			GuildID:    ix.GuildID(),
			HostID:     ix.ActorID(),
			GameRoleID: parseResult.arguments,
		}))
	case COMMAND_GAMEDAY_ANNOUNCE:
		err = bot.announceGameDay(ctx, ix, server, parseResult.arguments)
	case COMMAND_GAMEDAY_CANCEL:
		err = bot.cancelGameDay(ctx, ix, server, parseResult.arguments)
	case COMMAND_GAMEDAY_LIST:
		err = bot.listGameDays(ctx, ix, server)
	case COMMAND_CAMPAIGN_CREATE:
		err = ix.ShowModal(ctx, CreateCampaignModal(customid.CreateCampaign{GuildID: ix.GuildID(), GameRoleID: parseResult.arguments}))
	case COMMAND_CAMPAIGN_ANNOUNCE:
		err = bot.announceCampaign(ctx, ix, server, parseResult.arguments)
	default:
		panic(fmt.Sprintf("Command %d is not one of the possible ones", parseResult.command))
	}

	if err != nil {
		logger.Error().Err(err).Msg("Command failed")
		bot.reportFailure(ctx, ix)
	}
}

func (bot *Bot) send(ctx context.Context, ix contract.Interaction, responses []Response) {
	if err := respond(ctx, ix, responses); err != nil {
		log.Error().Err(err).Str("actor", ix.ActorID()).Msg("Could not reply to interaction")
	}
}

func (bot *Bot) reportFailure(ctx context.Context, ix contract.Interaction) {
	bot.send(ctx, ix, []Response{ResponseString{dispatch.FailureNotice}})
}
