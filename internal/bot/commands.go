package bot

import (
	"github.com/bwmarrin/discordgo"
)

var manageServer int64 = discordgo.PermissionManageServer

func roleOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionRole,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

// Commands is the full set of slash commands, overwritten in bulk on start.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:                     "setup",
			Description:              "Configure the bot for this server",
			DefaultMemberPermissions: &manageServer,
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("channel", "Set the channel where game days are announced",
					&discordgo.ApplicationCommandOption{
						Type:         discordgo.ApplicationCommandOptionChannel,
						Name:         "channel",
						Description:  "Text channel for announcements",
						Required:     true,
						ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
					}),
			},
		},
		{
			Name:        "game",
			Description: "Manage the games of this server",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("setup", "Add a game", roleOption("role", "Existing role for the players of this game", false)),
				subcommand("list", "List the games"),
			},
		},
		{
			Name:        "gameday",
			Description: "Schedule and manage game days",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("schedule", "Schedule a game day", roleOption("game", "Role of the game to play", false)),
				subcommand("announce", "Post the announcement again", roleOption("role", "Role of the game day", true)),
				subcommand("cancel", "Cancel a game day", roleOption("role", "Role of the game day", true)),
				subcommand("list", "List the upcoming game days"),
			},
		},
		{
			Name:        "campaign",
			Description: "Run long campaigns",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("create", "Create a campaign", roleOption("game", "Role of the game to play", false)),
				subcommand("announce", "Post the announcement again", roleOption("role", "Role of the campaign", true)),
			},
		},
		{
			Name:        "help",
			Description: "Print the usage of the different commands",
		},
		{
			Name:        "ping",
			Description: "Check that the bot is alive",
		},
	}
}
