package contract

//go:generate mockgen -source=interaction.go -destination=../../../mocks/interaction_mock.go -package=mocks

import "context"

// Interaction is one inbound button press, modal submission or slash
// command. Replies are always ephemeral.
type Interaction interface {
	CustomID() string
	GuildID() string
	ChannelID() string
	ActorID() string
	ActorName() string
	// Value returns the submitted text of a modal input, or "".
	Value(field string) string

	Acknowledged() bool
	// Defer acknowledges the interaction with a deferred ephemeral reply.
	// Calling it twice is a no-op.
	Defer(ctx context.Context) error
	Reply(ctx context.Context, msg Message) error
	EditReply(ctx context.Context, msg Message) error
	ShowModal(ctx context.Context, modal Modal) error
}
