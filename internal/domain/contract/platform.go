package contract

//go:generate mockgen -source=platform.go -destination=../../../mocks/platform_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Message is the rich content sent to a channel or used to edit a reply.
// On edits, nil Components removes every component from the message.
type Message struct {
	Content    string
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent
}

type Modal struct {
	CustomID   string
	Title      string
	Components []discordgo.MessageComponent
}

type ChannelSpec struct {
	Name  string
	Topic string
}

type ScheduledEvent struct {
	Name        string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

// Platform is the subset of the Discord REST API the bot drives.
type Platform interface {
	AddRole(ctx context.Context, guildID, userID, roleID string) error
	RemoveRole(ctx context.Context, guildID, userID, roleID string) error
	CreateRole(ctx context.Context, guildID, name string) (string, error)
	DeleteRole(ctx context.Context, guildID, roleID string) error

	// CreatePrivateCategory creates a category only visible to roleID and
	// the given text channels inside it.
	CreatePrivateCategory(ctx context.Context, guildID, name, roleID string, channels []ChannelSpec) (string, error)
	// DeleteCategory deletes the category and every channel parented to it.
	DeleteCategory(ctx context.Context, guildID, categoryID string) error
	IsTextChannel(ctx context.Context, channelID string) (bool, error)
	FindTextChannel(ctx context.Context, guildID, name string) (string, error)

	CreateEvent(ctx context.Context, guildID string, event ScheduledEvent) (string, error)
	EditEventDescription(ctx context.Context, guildID, eventID, description string) error
	DeleteEvent(ctx context.Context, guildID, eventID string) error

	SendMessage(ctx context.Context, channelID string, msg Message) (string, error)
	EditMessage(ctx context.Context, channelID, messageID string, msg Message) error
}
