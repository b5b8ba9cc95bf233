package discord

import (
	"context"
	"fmt"

	"gamenight/internal/domain/contract"

	"github.com/bwmarrin/discordgo"
)

// Interaction adapts one InteractionCreate event. It is used by a single
// goroutine and is not safe for concurrent use.
type Interaction struct {
	session *discordgo.Session
	event   *discordgo.Interaction
	acked   bool
}

func NewInteraction(session *discordgo.Session, event *discordgo.Interaction) *Interaction {
	return &Interaction{session: session, event: event}
}

func (ix *Interaction) CustomID() string {
	switch ix.event.Type {
	case discordgo.InteractionMessageComponent:
		return ix.event.MessageComponentData().CustomID
	case discordgo.InteractionModalSubmit:
		return ix.event.ModalSubmitData().CustomID
	}
	return ""
}

func (ix *Interaction) GuildID() string   { return ix.event.GuildID }
func (ix *Interaction) ChannelID() string { return ix.event.ChannelID }

func (ix *Interaction) ActorID() string {
	if user := ix.actor(); user != nil {
		return user.ID
	}
	return ""
}

func (ix *Interaction) ActorName() string {
	if user := ix.actor(); user != nil {
		return user.Username
	}
	return ""
}

// Guild interactions carry the member, direct messages the user.
func (ix *Interaction) actor() *discordgo.User {
	if ix.event.Member != nil && ix.event.Member.User != nil {
		return ix.event.Member.User
	}
	return ix.event.User
}

func (ix *Interaction) Value(field string) string {
	if ix.event.Type != discordgo.InteractionModalSubmit {
		return ""
	}
	return textInputValue(ix.event.ModalSubmitData().Components, field)
}

func textInputValue(components []discordgo.MessageComponent, field string) string {
	for _, component := range components {
		switch c := component.(type) {
		case *discordgo.ActionsRow:
			if value := textInputValue(c.Components, field); value != "" {
				return value
			}
		case discordgo.ActionsRow:
			if value := textInputValue(c.Components, field); value != "" {
				return value
			}
		case *discordgo.TextInput:
			if c.CustomID == field {
				return c.Value
			}
		case discordgo.TextInput:
			if c.CustomID == field {
				return c.Value
			}
		}
	}
	return ""
}

func (ix *Interaction) Acknowledged() bool {
	return ix.acked
}

func (ix *Interaction) Defer(ctx context.Context) error {
	if ix.acked {
		return nil
	}
	err := ix.session.InteractionRespond(ix.event, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("could not defer interaction %s: %w", ix.event.ID, err)
	}
	ix.acked = true
	return nil
}

// Reply answers immediately, or edits the deferred reply when the
// interaction was already acknowledged.
func (ix *Interaction) Reply(ctx context.Context, msg contract.Message) error {
	if ix.acked {
		return ix.EditReply(ctx, msg)
	}
	err := ix.session.InteractionRespond(ix.event, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    msg.Content,
			Embeds:     msg.Embeds,
			Components: msg.Components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("could not reply to interaction %s: %w", ix.event.ID, err)
	}
	ix.acked = true
	return nil
}

func (ix *Interaction) EditReply(ctx context.Context, msg contract.Message) error {
	edit := &discordgo.WebhookEdit{}
	edit.Content, edit.Embeds, edit.Components = editFields(msg)
	if _, err := ix.session.InteractionResponseEdit(ix.event, edit, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("could not edit reply of interaction %s: %w", ix.event.ID, err)
	}
	return nil
}

func (ix *Interaction) ShowModal(ctx context.Context, modal contract.Modal) error {
	err := ix.session.InteractionRespond(ix.event, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   modal.CustomID,
			Title:      modal.Title,
			Components: modal.Components,
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("could not show modal %s: %w", modal.CustomID, err)
	}
	ix.acked = true
	return nil
}
