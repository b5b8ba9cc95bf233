package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func command(name, sub string, options ...*discordgo.ApplicationCommandInteractionDataOption) discordgo.ApplicationCommandInteractionData {
	data := discordgo.ApplicationCommandInteractionData{Name: name}
	if sub != "" {
		data.Options = []*discordgo.ApplicationCommandInteractionDataOption{{
			Name:    sub,
			Type:    discordgo.ApplicationCommandOptionSubCommand,
			Options: options,
		}}
	}
	return data
}

func option(name string, value interface{}) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionRole, Value: value}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data discordgo.ApplicationCommandInteractionData
		want ParseResult
	}{
		{
			name: "help",
			data: command("help", ""),
			want: ParseResult{command: COMMAND_HELP, parseid: PARSEID_OK},
		},
		{
			name: "ping",
			data: command("ping", ""),
			want: ParseResult{command: COMMAND_PING, parseid: PARSEID_OK},
		},
		{
			name: "setup channel",
			data: command("setup", "channel", option("channel", channelID)),
			want: ParseResult{command: COMMAND_SETUP_CHANNEL, parseid: PARSEID_OK, arguments: channelID},
		},
		{
			name: "setup channel without channel",
			data: command("setup", "channel"),
			want: ParseResult{command: COMMAND_SETUP_CHANNEL, parseid: PARSEID_NO_INPUT, errorMessage: "Command `setup channel` requires an argument"},
		},
		{
			name: "game setup without role",
			data: command("game", "setup"),
			want: ParseResult{command: COMMAND_GAME_SETUP, parseid: PARSEID_OK},
		},
		{
			name: "game setup with role",
			data: command("game", "setup", option("role", roleID)),
			want: ParseResult{command: COMMAND_GAME_SETUP, parseid: PARSEID_OK, arguments: roleID},
		},
		{
			name: "game list",
			data: command("game", "list"),
			want: ParseResult{command: COMMAND_GAME_LIST, parseid: PARSEID_OK},
		},
		{
			name: "gameday schedule",
			data: command("gameday", "schedule", option("game", roleID)),
			want: ParseResult{command: COMMAND_GAMEDAY_SCHEDULE, parseid: PARSEID_OK, arguments: roleID},
		},
		{
			name: "gameday announce",
			data: command("gameday", "announce", option("role", roleID)),
			want: ParseResult{command: COMMAND_GAMEDAY_ANNOUNCE, parseid: PARSEID_OK, arguments: roleID},
		},
		{
			name: "gameday cancel",
			data: command("gameday", "cancel", option("role", roleID)),
			want: ParseResult{command: COMMAND_GAMEDAY_CANCEL, parseid: PARSEID_OK, arguments: roleID},
		},
		{
			name: "gameday cancel with a name instead of a role",
			data: command("gameday", "cancel", option("role", "friday")),
			want: ParseResult{command: COMMAND_GAMEDAY_CANCEL, parseid: PARSEID_NOT_A_SNOWFLAKE, errorMessage: "Input `friday` is not a role or channel"},
		},
		{
			name: "gameday list",
			data: command("gameday", "list"),
			want: ParseResult{command: COMMAND_GAMEDAY_LIST, parseid: PARSEID_OK},
		},
		{
			name: "campaign create",
			data: command("campaign", "create"),
			want: ParseResult{command: COMMAND_CAMPAIGN_CREATE, parseid: PARSEID_OK},
		},
		{
			name: "campaign announce",
			data: command("campaign", "announce", option("role", roleID)),
			want: ParseResult{command: COMMAND_CAMPAIGN_ANNOUNCE, parseid: PARSEID_OK, arguments: roleID},
		},
		{
			name: "no command",
			data: command("", ""),
			want: ParseResult{parseid: PARSEID_NO_COMMAND, errorMessage: "No command provided"},
		},
		{
			name: "missing subcommand",
			data: command("gameday", ""),
			want: ParseResult{parseid: PARSEID_NO_COMMAND, errorMessage: "No command provided"},
		},
		{
			name: "unknown subcommand",
			data: command("gameday", "postpone"),
			want: ParseResult{parseid: PARSEID_COMMAND_NOT_RECOGNISED, errorMessage: "Command `gameday postpone` not recognised"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.data))
		})
	}
}

func TestCommands(t *testing.T) {
	names := map[string][]string{}
	for _, cmd := range Commands() {
		for _, sub := range cmd.Options {
			names[cmd.Name] = append(names[cmd.Name], sub.Name)
		}
		if cmd.Name == "help" || cmd.Name == "ping" {
			names[cmd.Name] = nil
		}
	}

	// Every registered command must parse
	for name, subs := range names {
		if len(subs) == 0 {
			assert.Equal(t, PARSEID_OK, Parse(command(name, "")).parseid, name)
			continue
		}
		for _, sub := range subs {
			result := Parse(command(name, sub))
			assert.NotEqual(t, PARSEID_COMMAND_NOT_RECOGNISED, result.parseid, "%s %s", name, sub)
		}
	}
	assert.Len(t, names, 6)
}
