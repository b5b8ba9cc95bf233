package bot

import (
	"gamenight/internal/customid"
	"gamenight/internal/domain/contract"

	"github.com/bwmarrin/discordgo"
)

// Modal input ids
const (
	inputName        = "name"
	inputShortName   = "short_name"
	inputDescription = "description"
	inputMinPlayers  = "min_players"
	inputMaxPlayers  = "max_players"

	inputTitle    = "title"
	inputDateTime = "date_time"
	inputLocation = "location"

	inputRegularGameTime = "regular_game_time"
	inputGameName        = "game_name"
	inputRoleName        = "role_name"

	inputSchedulingChannel = "scheduling-channel"
)

const dateTimeLayout = "2006-01-02 15:04"

func textInput(id, label string, style discordgo.TextInputStyle, required bool, maxLength int, placeholder string) discordgo.MessageComponent {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.TextInput{
			CustomID:    id,
			Label:       label,
			Style:       style,
			Required:    required,
			MaxLength:   maxLength,
			Placeholder: placeholder,
		},
	}}
}

func GameSetupModal(intent customid.GameSetup) contract.Modal {
	return contract.Modal{
		CustomID: customid.Encode(intent),
		Title:    "Set up a game",
		Components: []discordgo.MessageComponent{
			textInput(inputName, "Name", discordgo.TextInputShort, true, 100, "Gloomhaven"),
			textInput(inputShortName, "Short name", discordgo.TextInputShort, true, 20, "gh"),
			textInput(inputDescription, "Description", discordgo.TextInputParagraph, false, 1000, ""),
			textInput(inputMinPlayers, "Minimum players", discordgo.TextInputShort, false, 3, "1"),
			textInput(inputMaxPlayers, "Maximum players", discordgo.TextInputShort, false, 3, "4"),
		},
	}
}

func ScheduleGameDayModal(intent customid.ScheduleGameDay) contract.Modal {
	return contract.Modal{
		CustomID: customid.Encode(intent),
		Title:    "Schedule a game day",
		Components: []discordgo.MessageComponent{
			textInput(inputTitle, "Title", discordgo.TextInputShort, true, 100, "Friday board games"),
			textInput(inputDescription, "Description", discordgo.TextInputParagraph, false, 1000, ""),
			textInput(inputDateTime, "Date and time (YYYY-MM-DD HH:MM, UTC)", discordgo.TextInputShort, true, 16, "2025-01-31 19:00"),
			textInput(inputLocation, "Location", discordgo.TextInputShort, false, 100, ""),
		},
	}
}

func CreateCampaignModal(intent customid.CreateCampaign) contract.Modal {
	return contract.Modal{
		CustomID: customid.Encode(intent),
		Title:    "Create a campaign",
		Components: []discordgo.MessageComponent{
			textInput(inputTitle, "Title", discordgo.TextInputShort, true, 100, ""),
			textInput(inputDescription, "Description", discordgo.TextInputParagraph, false, 1000, ""),
			textInput(inputRegularGameTime, "Regular game time", discordgo.TextInputShort, false, 100, "Every other Sunday, 18:00"),
			textInput(inputGameName, "Game", discordgo.TextInputShort, false, 100, ""),
			textInput(inputRoleName, "Role name (optional)", discordgo.TextInputShort, false, 100, ""),
		},
	}
}
