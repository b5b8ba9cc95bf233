package bot

import (
	"fmt"

	"gamenight/internal/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

const (
	COMMAND_SETUP_CHANNEL     = iota
	COMMAND_GAME_SETUP        = iota
	COMMAND_GAME_LIST         = iota
	COMMAND_GAMEDAY_SCHEDULE  = iota
	COMMAND_GAMEDAY_ANNOUNCE  = iota
	COMMAND_GAMEDAY_CANCEL    = iota
	COMMAND_GAMEDAY_LIST      = iota
	COMMAND_CAMPAIGN_CREATE   = iota
	COMMAND_CAMPAIGN_ANNOUNCE = iota
	COMMAND_HELP              = iota
	COMMAND_PING              = iota
)

const (
	PARSEID_OK                     = iota
	PARSEID_NO_COMMAND             = iota
	PARSEID_COMMAND_NOT_RECOGNISED = iota
	PARSEID_NO_INPUT               = iota
	PARSEID_NOT_A_SNOWFLAKE        = iota
)

var errorMessages map[int]string = map[int]string{
	PARSEID_NO_COMMAND:             "No command provided",
	PARSEID_COMMAND_NOT_RECOGNISED: "Command `%s` not recognised",
	PARSEID_NO_INPUT:               "Command `%s` requires an argument",
	PARSEID_NOT_A_SNOWFLAKE:        "Input `%s` is not a role or channel",
}

type ParseResult struct {
	command      int
	parseid      int
	errorMessage string
	arguments    string // role or channel id, "" if an optional one was not given
}

func Parse(data discordgo.ApplicationCommandInteractionData) ParseResult {

	if data.Name == "" {
		parseid := PARSEID_NO_COMMAND
		return ParseResult{parseid: parseid, errorMessage: errorMessages[parseid]}
	}
	if data.Name == "help" {
		return ParseResult{command: COMMAND_HELP, parseid: PARSEID_OK}
	}
	if data.Name == "ping" {
		return ParseResult{command: COMMAND_PING, parseid: PARSEID_OK}
	}

	// Every other command has exactly one subcommand
	if len(data.Options) == 0 || data.Options[0].Type != discordgo.ApplicationCommandOptionSubCommand {
		parseid := PARSEID_NO_COMMAND
		return ParseResult{parseid: parseid, errorMessage: errorMessages[parseid]}
	}
	sub := data.Options[0]
	commandString := data.Name + " " + sub.Name
	log.Debug().Msg(fmt.Sprintf("Parsing command /%s", commandString))

	switch commandString {
	case "setup channel":
		// /setup channel <channel>
		return parseSnowflake(COMMAND_SETUP_CHANNEL, commandString, sub.Options, "channel", true)
	case "game setup":
		// /game setup [role]
		return parseSnowflake(COMMAND_GAME_SETUP, commandString, sub.Options, "role", false)
	case "game list":
		return ParseResult{command: COMMAND_GAME_LIST, parseid: PARSEID_OK}
	case "gameday schedule":
		// /gameday schedule [game]
		return parseSnowflake(COMMAND_GAMEDAY_SCHEDULE, commandString, sub.Options, "game", false)
	case "gameday announce":
		// /gameday announce <role>
		return parseSnowflake(COMMAND_GAMEDAY_ANNOUNCE, commandString, sub.Options, "role", true)
	case "gameday cancel":
		// /gameday cancel <role>
		return parseSnowflake(COMMAND_GAMEDAY_CANCEL, commandString, sub.Options, "role", true)
	case "gameday list":
		return ParseResult{command: COMMAND_GAMEDAY_LIST, parseid: PARSEID_OK}
	case "campaign create":
		// /campaign create [game]
		return parseSnowflake(COMMAND_CAMPAIGN_CREATE, commandString, sub.Options, "game", false)
	case "campaign announce":
		// /campaign announce <role>
		return parseSnowflake(COMMAND_CAMPAIGN_ANNOUNCE, commandString, sub.Options, "role", true)
	default:
		parseid := PARSEID_COMMAND_NOT_RECOGNISED
		return ParseResult{parseid: parseid, errorMessage: fmt.Sprintf(errorMessages[parseid], commandString)}
	}
}

func parseSnowflake(command int, commandString string, options []*discordgo.ApplicationCommandInteractionDataOption, name string, required bool) ParseResult {

	var value string
	for _, option := range options {
		if option.Name != name {
			continue
		}
		// Role and channel options arrive as their id
		if s, ok := option.Value.(string); ok {
			value = s
		} else {
			value = fmt.Sprint(option.Value)
		}
	}

	if value == "" {
		if required {
			parseid := PARSEID_NO_INPUT
			return ParseResult{command: command, parseid: parseid, errorMessage: fmt.Sprintf(errorMessages[parseid], commandString)}
		}
		return ParseResult{command: command, parseid: PARSEID_OK}
	}
	if !domain.IsSnowflake(value) {
		parseid := PARSEID_NOT_A_SNOWFLAKE
		return ParseResult{command: command, parseid: parseid, errorMessage: fmt.Sprintf(errorMessages[parseid], value)}
	}
	return ParseResult{command: command, parseid: PARSEID_OK, arguments: value}
}
