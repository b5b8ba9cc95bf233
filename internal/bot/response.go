package bot

import (
	"context"

	"gamenight/internal/domain/contract"

	"github.com/bwmarrin/discordgo"
)

type ResponseString struct {
	string
}
type ResponseEmbed struct {
	discordgo.MessageEmbed
}

// Response is one part of an ephemeral reply. Strings are joined into the
// content, embeds keep their order.
type Response interface {
	addTo(msg *contract.Message)
}

func (response ResponseString) addTo(msg *contract.Message) {
	if msg.Content != "" {
		msg.Content += "\n"
	}
	msg.Content += response.string
}

func (response ResponseEmbed) addTo(msg *contract.Message) {
	embed := response.MessageEmbed
	msg.Embeds = append(msg.Embeds, &embed)
}

func Message(responses []Response) contract.Message {
	var msg contract.Message
	for _, response := range responses {
		response.addTo(&msg)
	}
	return msg
}

// respond edits the deferred reply, or replies directly when the interaction
// was not acknowledged yet.
func respond(ctx context.Context, ix contract.Interaction, responses []Response) error {
	msg := Message(responses)
	if ix.Acknowledged() {
		return ix.EditReply(ctx, msg)
	}
	return ix.Reply(ctx, msg)
}
