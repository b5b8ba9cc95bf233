package bot

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gamenight/internal/customid"
	"gamenight/internal/domain"
	"gamenight/internal/domain/contract"
	"gamenight/internal/domain/entity"
	"gamenight/internal/storage"
	"gamenight/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	guildID             = "112233445566778899"
	channelID           = "223344556677889900"
	actorID             = "998877665544332211"
	roleID              = "123456789012345678"
	schedulingChannelID = "334455667788990011"
	otherGuildID        = "554433221100998877"
	hostID              = "111122223333444455"
)

var testNow = time.Date(2029, time.June, 1, 12, 0, 0, 0, time.UTC)

type allMocks struct {
	ctrl     *gomock.Controller
	platform *mocks.MockPlatform
}

func newBotTest(t *testing.T) (m allMocks, dm contract.DataManager, bot *Bot) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m = allMocks{ctrl: ctrl, platform: mocks.NewMockPlatform(ctrl)}
	dm = storage.NewInstance(storage.SetupTestDB(t))
	bot = newBot(dm, m.platform, time.Second)
	bot.now = func() time.Time { return testNow }
	return
}

// fakeInteraction records the last reply sent to the actor.
type fakeInteraction struct {
	*mocks.MockInteraction
	acked bool
	reply contract.Message
	modal *contract.Modal
}

func newInteraction(ctrl *gomock.Controller, customID string, values map[string]string) *fakeInteraction {
	fake := &fakeInteraction{MockInteraction: mocks.NewMockInteraction(ctrl)}
	ix := fake.MockInteraction
	ix.EXPECT().CustomID().Return(customID).AnyTimes()
	ix.EXPECT().GuildID().Return(guildID).AnyTimes()
	ix.EXPECT().ChannelID().Return(channelID).AnyTimes()
	ix.EXPECT().ActorID().Return(actorID).AnyTimes()
	ix.EXPECT().ActorName().Return("alice").AnyTimes()
	ix.EXPECT().Value(gomock.Any()).DoAndReturn(func(field string) string {
		return values[field]
	}).AnyTimes()
	ix.EXPECT().Acknowledged().DoAndReturn(func() bool {
		return fake.acked
	}).AnyTimes()
	ix.EXPECT().Defer(gomock.Any()).DoAndReturn(func(context.Context) error {
		fake.acked = true
		return nil
	}).AnyTimes()
	ix.EXPECT().Reply(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg contract.Message) error {
		fake.acked = true
		fake.reply = msg
		return nil
	}).AnyTimes()
	ix.EXPECT().EditReply(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg contract.Message) error {
		fake.reply = msg
		return nil
	}).AnyTimes()
	ix.EXPECT().ShowModal(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, modal contract.Modal) error {
		fake.acked = true
		fake.modal = &modal
		return nil
	}).AnyTimes()
	return fake
}

func seedServer(t *testing.T, dm contract.DataManager, schedulingChannel string) *entity.Server {
	t.Helper()
	ctx := context.Background()

	server, err := dm.Server().GetOrCreate(ctx, guildID)
	require.NoError(t, err)
	if schedulingChannel != "" {
		require.NoError(t, dm.Server().SetSchedulingChannel(ctx, server.ID, schedulingChannel))
		server.SchedulingChannelID = schedulingChannel
	}
	return server
}

func seedGameDay(t *testing.T, dm contract.DataManager, modify func(gd *entity.GameDay)) *entity.GameDay {
	t.Helper()

	server := seedServer(t, dm, "")
	gd := &entity.GameDay{
		ServerID:   server.ID,
		Title:      "Board game night",
		DateTime:   testNow.Add(48 * time.Hour),
		HostUserID: actorID,
		Status:     entity.GameDayScheduling,
		RoleID:     roleID,
	}
	if modify != nil {
		modify(gd)
	}
	require.NoError(t, dm.GameDay().Create(context.Background(), gd))
	return gd
}

func TestBot_HandlersDoNotOverlap(t *testing.T) {
	_, _, bot := newBotTest(t)

	samples := []customid.Intent{
		customid.Attendance{SubjectID: "3f2b8c1e-4d5a-4b6c-8d7e-9f0a1b2c3d4e", Status: entity.AttendanceAvailable},
		customid.Interest{SubjectID: "3f2b8c1e-4d5a-4b6c-8d7e-9f0a1b2c3d4e"},
		customid.GameSetup{GuildID: guildID},
		customid.ScheduleGameDay{GuildID: guildID, HostID: actorID},
		customid.CreateCampaign{GuildID: guildID},
	}
	assert.Empty(t, bot.dispatcher.Overlaps(samples))
}

func TestBot_Command(t *testing.T) {
	ctx := context.Background()

	t.Run("Should show the help without touching the database", func(t *testing.T) {
		m, _, bot := newBotTest(t)
		ix := newInteraction(m.ctrl, "", nil)

		bot.Command(ctx, ix, ParseResult{command: COMMAND_HELP, parseid: PARSEID_OK})

		require.Len(t, ix.reply.Embeds, 1)
		assert.Equal(t, "Commands available", ix.reply.Embeds[0].Title)
	})

	t.Run("Should answer a ping without touching the database", func(t *testing.T) {
		m, _, bot := newBotTest(t)
		ix := newInteraction(m.ctrl, "", nil)

		bot.Command(ctx, ix, ParseResult{command: COMMAND_PING, parseid: PARSEID_OK})

		assert.Equal(t, "Pong!", ix.reply.Content)
	})

	t.Run("Should report invalid input", func(t *testing.T) {
		m, _, bot := newBotTest(t)
		ix := newInteraction(m.ctrl, "", nil)

		bot.Command(ctx, ix, ParseResult{parseid: PARSEID_NO_INPUT, errorMessage: "Command `gameday cancel` requires an argument"})

		assert.Contains(t, ix.reply.Content, "requires an argument")
	})

	t.Run("Should ask to reinstall when the server record is unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := storage.SetupTestDB(t)
		require.NoError(t, db.Close())
		bot := newBot(storage.NewInstance(db), mocks.NewMockPlatform(ctrl), time.Second)
		ix := newInteraction(ctrl, "", nil)

		bot.Command(ctx, ix, ParseResult{command: COMMAND_GAME_LIST, parseid: PARSEID_OK})

		assert.Contains(t, ix.reply.Content, "This bot needs to be reinstalled")
	})

	t.Run("Should open the schedule form for the actor", func(t *testing.T) {
		m, _, bot := newBotTest(t)
		ix := newInteraction(m.ctrl, "", nil)

		bot.Command(ctx, ix, ParseResult{command: COMMAND_GAMEDAY_SCHEDULE, parseid: PARSEID_OK, arguments: roleID})

		require.NotNil(t, ix.modal)
		intent, err := customid.Decode(ix.modal.CustomID)
		require.NoError(t, err)
		assert.Equal(t, customid.ScheduleGameDay{GuildID: guildID, HostID: actorID, GameRoleID: roleID}, intent)
	})

	t.Run("Should turn a failing command into a failure notice", func(t *testing.T) {
		m, _, bot := newBotTest(t)
		ix := newInteraction(m.ctrl, "", nil)
		m.platform.EXPECT().IsTextChannel(gomock.Any(), schedulingChannelID).Return(false, errors.New("Unknown Channel"))

		bot.Command(ctx, ix, ParseResult{command: COMMAND_SETUP_CHANNEL, parseid: PARSEID_OK, arguments: schedulingChannelID})

		assert.Contains(t, ix.reply.Content, "Something went wrong")
	})
}

func TestBot_SetupChannel(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		isText      bool
		wantReply   string
		wantChannel string
	}{
		{
			name:        "Should store a text channel",
			isText:      true,
			wantReply:   fmt.Sprintf("<#%s>", schedulingChannelID),
			wantChannel: schedulingChannelID,
		},
		{
			name:      "Should refuse a channel that is not a text channel",
			isText:    false,
			wantReply: "must be a text channel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, dm, bot := newBotTest(t)
			ix := newInteraction(m.ctrl, "", nil)
			var ackedBeforeLookup bool
			m.platform.EXPECT().IsTextChannel(gomock.Any(), schedulingChannelID).
				DoAndReturn(func(context.Context, string) (bool, error) {
					ackedBeforeLookup = ix.acked
					return tt.isText, nil
				})

			bot.Command(ctx, ix, ParseResult{command: COMMAND_SETUP_CHANNEL, parseid: PARSEID_OK, arguments: schedulingChannelID})

			assert.True(t, ackedBeforeLookup)
			assert.Contains(t, ix.reply.Content, tt.wantReply)
			server, err := dm.Server().GetByDiscordID(ctx, guildID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantChannel, server.SchedulingChannelID)
		})
	}
}

func TestBot_LegacyForms(t *testing.T) {
	ctx := context.Background()

	t.Run("Should set the scheduling channel by name", func(t *testing.T) {
		m, dm, bot := newBotTest(t)
		ix := newInteraction(m.ctrl, "setup-modal", map[string]string{inputSchedulingChannel: "board-games"})
		m.platform.EXPECT().FindTextChannel(gomock.Any(), guildID, "board-games").Return(schedulingChannelID, nil)

		bot.dispatcher.Dispatch(ctx, ix)

		assert.Contains(t, ix.reply.Content, schedulingChannelID)
		server, err := dm.Server().GetByDiscordID(ctx, guildID)
		require.NoError(t, err)
		assert.Equal(t, schedulingChannelID, server.SchedulingChannelID)
	})

	t.Run("Should report an unknown channel name", func(t *testing.T) {
		m, _, bot := newBotTest(t)
		ix := newInteraction(m.ctrl, "setup-modal", map[string]string{inputSchedulingChannel: "memes"})
		m.platform.EXPECT().FindTextChannel(gomock.Any(), guildID, "memes").Return("", fmt.Errorf("%w: no text channel named memes", domain.ErrNotFound))

		bot.dispatcher.Dispatch(ctx, ix)

		assert.Contains(t, ix.reply.Content, "Channel `memes` does not exist")
	})

	t.Run("Should tell the actor an old game form expired", func(t *testing.T) {
		m, _, bot := newBotTest(t)
		ix := newInteraction(m.ctrl, "game_setup_modal_1712345678901", nil)

		bot.dispatcher.Dispatch(ctx, ix)

		assert.Contains(t, ix.reply.Content, "This form has expired")
	})
}

func TestBot_GameSetup(t *testing.T) {
	ctx := context.Background()
	form := func(min, max string) map[string]string {
		return map[string]string{
			inputName:        "Gloomhaven",
			inputShortName:   "gh",
			inputDescription: "Dungeon crawler",
			inputMinPlayers:  min,
			inputMaxPlayers:  max,
		}
	}

	t.Run("Should create a role named after the short name", func(t *testing.T) {
		m, dm, bot := newBotTest(t)
		ix := newInteraction(m.ctrl, customid.Encode(customid.GameSetup{GuildID: guildID}), form("1", "4"))
		m.platform.EXPECT().CreateRole(gomock.Any(), guildID, "gh").Return(roleID, nil)

		bot.dispatcher.Dispatch(ctx, ix)

		assert.Contains(t, ix.reply.Content, "Game added!")
		server, err := dm.Server().GetByDiscordID(ctx, guildID)
		require.NoError(t, err)
		game, err := dm.Game().GetByRoleID(ctx, server.ID, roleID)
		require.NoError(t, err)
		require.NotNil(t, game)
		assert.Equal(t, "Gloomhaven", game.Name)
		assert.Equal(t, 1, game.MinPlayers)
		assert.Equal(t, 4, game.MaxPlayers)
	})

	t.Run("Should reuse the given role", func(t *testing.T) {
		m, _, bot := newBotTest(t)
		ix := newInteraction(m.ctrl, customid.Encode(customid.GameSetup{GuildID: guildID, RoleID: roleID}), form("", ""))

		bot.dispatcher.Dispatch(ctx, ix)

		assert.Contains(t, ix.reply.Content, "Game added!")
	})

	t.Run("Should reject player counts that are not numbers", func(t *testing.T) {
		m, _, bot := newBotTest(t)
		ix := newInteraction(m.ctrl, customid.Encode(customid.GameSetup{GuildID: guildID}), form("two", "4"))

		bot.dispatcher.Dispatch(ctx, ix)

		assert.Contains(t, ix.reply.Content, "not a valid number of players")
	})

	t.Run("Should reject a minimum above the maximum", func(t *testing.T) {
		m, _, bot := newBotTest(t)
		ix := newInteraction(m.ctrl, customid.Encode(customid.GameSetup{GuildID: guildID}), form("6", "4"))

		bot.dispatcher.Dispatch(ctx, ix)

		assert.Contains(t, ix.reply.Content, "cannot exceed the maximum")
	})

	t.Run("Should report a role that could not be created", func(t *testing.T) {
		m, _, bot := newBotTest(t)
		ix := newInteraction(m.ctrl, customid.Encode(customid.GameSetup{GuildID: guildID}), form("1", "4"))
		m.platform.EXPECT().CreateRole(gomock.Any(), guildID, "gh").Return("", errors.New("Missing Permissions"))

		bot.dispatcher.Dispatch(ctx, ix)

		assert.Contains(t, ix.reply.Content, "Failed to create the game")
	})
}
