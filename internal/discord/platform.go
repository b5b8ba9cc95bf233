package discord

import (
	"context"
	"fmt"
	"strings"

	"gamenight/internal/domain"
	"gamenight/internal/domain/contract"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Platform drives the Discord REST API through a bot session.
type Platform struct {
	session *discordgo.Session
}

func NewPlatform(session *discordgo.Session) *Platform {
	return &Platform{session: session}
}

func (p *Platform) AddRole(ctx context.Context, guildID, userID, roleID string) error {
	if err := p.session.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("could not add role %s to member %s: %w", roleID, userID, err)
	}
	return nil
}

func (p *Platform) RemoveRole(ctx context.Context, guildID, userID, roleID string) error {
	if err := p.session.GuildMemberRoleRemove(guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("could not remove role %s from member %s: %w", roleID, userID, err)
	}
	return nil
}

func (p *Platform) CreateRole(ctx context.Context, guildID, name string) (string, error) {
	mentionable := true
	role, err := p.session.GuildRoleCreate(guildID, &discordgo.RoleParams{
		Name:        name,
		Mentionable: &mentionable,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("could not create role %s: %w", name, err)
	}
	log.Info().Msg(fmt.Sprintf("Created role %s (%s) in guild %s", role.ID, name, guildID))
	return role.ID, nil
}

func (p *Platform) DeleteRole(ctx context.Context, guildID, roleID string) error {
	if err := p.session.GuildRoleDelete(guildID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("could not delete role %s: %w", roleID, err)
	}
	return nil
}

func (p *Platform) CreatePrivateCategory(ctx context.Context, guildID, name, roleID string, channels []contract.ChannelSpec) (string, error) {
	overwrites := privateOverwrites(guildID, roleID)
	category, err := p.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildCategory,
		PermissionOverwrites: overwrites,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("could not create category %s: %w", name, err)
	}

	for _, channel := range channels {
		_, err := p.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
			Name:                 channel.Name,
			Type:                 discordgo.ChannelTypeGuildText,
			Topic:                channel.Topic,
			ParentID:             category.ID,
			PermissionOverwrites: overwrites,
		}, discordgo.WithContext(ctx))
		if err != nil {
			// Do not leave a half built category behind
			if cleanupErr := p.DeleteCategory(ctx, guildID, category.ID); cleanupErr != nil {
				log.Error().Err(cleanupErr).Msg(fmt.Sprintf("Could not clean up category %s", category.ID))
			}
			return "", fmt.Errorf("could not create channel %s in category %s: %w", channel.Name, name, err)
		}
	}
	log.Info().Msg(fmt.Sprintf("Created category %s (%s) with %d channels", name, category.ID, len(channels)))
	return category.ID, nil
}

// privateOverwrites hides a channel from @everyone, whose role id is the
// guild id, and shows it to roleID.
func privateOverwrites(guildID, roleID string) []*discordgo.PermissionOverwrite {
	return []*discordgo.PermissionOverwrite{
		{
			ID:   guildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    roleID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: discordgo.PermissionViewChannel,
		},
	}
}

func (p *Platform) DeleteCategory(ctx context.Context, guildID, categoryID string) error {
	channels, err := p.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("could not extract list of channels of guild id %s: %w", guildID, err)
	}
	for _, ch := range childrenOf(channels, categoryID) {
		if _, err := p.session.ChannelDelete(ch.ID, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("could not delete channel %s: %w", ch.ID, err)
		}
	}
	if _, err := p.session.ChannelDelete(categoryID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("could not delete category %s: %w", categoryID, err)
	}
	return nil
}

func childrenOf(channels []*discordgo.Channel, categoryID string) []*discordgo.Channel {
	var children []*discordgo.Channel
	for _, ch := range channels {
		if ch.ParentID == categoryID {
			children = append(children, ch)
		}
	}
	return children
}

func (p *Platform) IsTextChannel(ctx context.Context, channelID string) (bool, error) {
	ch, err := p.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return false, fmt.Errorf("could not fetch channel %s: %w", channelID, err)
	}
	return ch.Type == discordgo.ChannelTypeGuildText, nil
}

func (p *Platform) FindTextChannel(ctx context.Context, guildID, name string) (string, error) {
	channels, err := p.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("could not extract list of channels of guild id %s: %w", guildID, err)
	}
	if ch := textChannelNamed(channels, name); ch != nil {
		return ch.ID, nil
	}
	return "", fmt.Errorf("%w: no text channel named %s", domain.ErrNotFound, name)
}

func textChannelNamed(channels []*discordgo.Channel, name string) *discordgo.Channel {
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "#"))
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText && strings.ToLower(ch.Name) == name {
			return ch
		}
	}
	return nil
}

func (p *Platform) CreateEvent(ctx context.Context, guildID string, event contract.ScheduledEvent) (string, error) {
	start, end := event.Start, event.End
	created, err := p.session.GuildScheduledEventCreate(guildID, &discordgo.GuildScheduledEventParams{
		Name:               event.Name,
		Description:        event.Description,
		ScheduledStartTime: &start,
		ScheduledEndTime:   &end,
		EntityType:         discordgo.GuildScheduledEventEntityTypeExternal,
		EntityMetadata:     &discordgo.GuildScheduledEventEntityMetadata{Location: event.Location},
		PrivacyLevel:       discordgo.GuildScheduledEventPrivacyLevelGuildOnly,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("could not create scheduled event %s: %w", event.Name, err)
	}
	return created.ID, nil
}

func (p *Platform) EditEventDescription(ctx context.Context, guildID, eventID, description string) error {
	_, err := p.session.GuildScheduledEventEdit(guildID, eventID, &discordgo.GuildScheduledEventParams{
		Description: description,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("could not edit scheduled event %s: %w", eventID, err)
	}
	return nil
}

func (p *Platform) DeleteEvent(ctx context.Context, guildID, eventID string) error {
	if err := p.session.GuildScheduledEventDelete(guildID, eventID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("could not delete scheduled event %s: %w", eventID, err)
	}
	return nil
}

func (p *Platform) SendMessage(ctx context.Context, channelID string, msg contract.Message) (string, error) {
	sent, err := p.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:    msg.Content,
		Embeds:     msg.Embeds,
		Components: msg.Components,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("could not send message to channel %s: %w", channelID, err)
	}
	return sent.ID, nil
}

func (p *Platform) EditMessage(ctx context.Context, channelID, messageID string, msg contract.Message) error {
	edit := discordgo.NewMessageEdit(channelID, messageID)
	edit.Content, edit.Embeds, edit.Components = editFields(msg)
	if _, err := p.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("could not edit message %s in channel %s: %w", messageID, channelID, err)
	}
	return nil
}

// editFields turns a message into the pointer fields of an edit. Nil
// components become an empty list, which removes them.
func editFields(msg contract.Message) (*string, *[]*discordgo.MessageEmbed, *[]discordgo.MessageComponent) {
	content := msg.Content
	embeds := msg.Embeds
	if embeds == nil {
		embeds = []*discordgo.MessageEmbed{}
	}
	components := msg.Components
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	return &content, &embeds, &components
}
