package dispatch

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"gamenight/internal/common"
	"gamenight/internal/customid"
	"gamenight/internal/domain/contract"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Discord drops interactions that are not acknowledged within this time.
const DefaultAckDeadline = 3 * time.Second

const FailureNotice = "Something went wrong while handling this interaction. Please try again later."

var errPanic = errors.New("handler panicked")

type Handler interface {
	CanHandle(intent customid.Intent) bool
	Handle(ctx context.Context, ix contract.Interaction, intent customid.Intent) error
}

// LegacyHandler serves raw custom ids that predate the codec.
type LegacyHandler interface {
	Matches(customID string) bool
	Handle(ctx context.Context, ix contract.Interaction, customID string) error
}

type Dispatcher struct {
	handlers    []Handler
	legacy      []LegacyHandler
	ackDeadline time.Duration
}

type Option func(*Dispatcher)

func WithAckDeadline(deadline time.Duration) Option {
	return func(d *Dispatcher) {
		d.ackDeadline = deadline
	}
}

// New builds a dispatcher over a fixed list of handlers. Handlers must not
// claim the same intent; the first one that does wins.
func New(handlers []Handler, legacy []LegacyHandler, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handlers:    handlers,
		legacy:      legacy,
		ackDeadline: DefaultAckDeadline,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch routes one button press or modal submission. It never panics
// and never returns an error: failures are logged and, when possible,
// reported to the actor.
func (d *Dispatcher) Dispatch(ctx context.Context, ix contract.Interaction) {
	raw := ix.CustomID()
	logger := log.With().
		Str("custom_id", raw).
		Str("actor", ix.ActorID()).
		Str("guild", ix.GuildID()).
		Logger()

	intent, err := customid.Decode(raw)
	if err != nil {
		for _, h := range d.legacy {
			if h.Matches(raw) {
				logger = logger.With().Str("kind", "legacy").Logger()
				d.run(ctx, ix, logger, func(ctx context.Context, ix contract.Interaction) error {
					return h.Handle(ctx, ix, raw)
				})
				return
			}
		}
		logger.Debug().Err(err).Msg("Ignoring interaction with unknown custom id")
		return
	}

	logger = logger.With().
		Str("kind", intent.Kind().String()).
		Str("subject", intent.Subject()).
		Logger()

	handler := d.route(intent)
	if handler == nil {
		logger.Warn().Msg("No handler registered for intent")
		return
	}
	d.run(ctx, ix, logger, func(ctx context.Context, ix contract.Interaction) error {
		return handler.Handle(ctx, ix, intent)
	})
}

func (d *Dispatcher) route(intent customid.Intent) Handler {
	for _, h := range d.handlers {
		if h.CanHandle(intent) {
			return h
		}
	}
	return nil
}

// Overlaps returns the sample intents that more than one handler claims.
func (d *Dispatcher) Overlaps(samples []customid.Intent) []customid.Intent {
	var overlapping []customid.Intent
	for _, intent := range samples {
		owners := 0
		for _, h := range d.handlers {
			if h.CanHandle(intent) {
				owners++
			}
		}
		if owners > 1 {
			overlapping = append(overlapping, intent)
		}
	}
	return overlapping
}

func (d *Dispatcher) run(ctx context.Context, ix contract.Interaction, logger zerolog.Logger, handle func(context.Context, contract.Interaction) error) {
	watched := &watchedInteraction{
		Interaction: ix,
		stopwatch:   common.StartStopwatch(d.ackDeadline),
		logger:      logger,
	}

	err := invoke(ctx, watched, handle)
	if err == nil {
		return
	}

	logger.Error().Err(err).Msg("Interaction handler failed")
	common.BestEffort(ctx, "failure notice", func(ctx context.Context) error {
		notice := contract.Message{Content: FailureNotice}
		if ix.Acknowledged() {
			return ix.EditReply(ctx, notice)
		}
		return ix.Reply(ctx, notice)
	})
}

func invoke(ctx context.Context, ix contract.Interaction, handle func(context.Context, contract.Interaction) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v\n%s", errPanic, r, debug.Stack())
		}
	}()
	return handle(ctx, ix)
}

// watchedInteraction warns when the first acknowledgement comes after the
// deadline.
type watchedInteraction struct {
	contract.Interaction
	stopwatch common.Stopwatch
	logger    zerolog.Logger
}

func (w *watchedInteraction) acknowledging(how string) {
	if !w.stopwatch.Running {
		return
	}
	if w.stopwatch.Expired() {
		w.logger.Warn().
			Dur("elapsed", w.stopwatch.Elapsed()).
			Str("ack", how).
			Msg("Interaction acknowledged after the deadline")
	}
	w.stopwatch.Stop()
}

func (w *watchedInteraction) Defer(ctx context.Context) error {
	w.acknowledging("defer")
	return w.Interaction.Defer(ctx)
}

func (w *watchedInteraction) Reply(ctx context.Context, msg contract.Message) error {
	w.acknowledging("reply")
	return w.Interaction.Reply(ctx, msg)
}

func (w *watchedInteraction) ShowModal(ctx context.Context, modal contract.Modal) error {
	w.acknowledging("modal")
	return w.Interaction.ShowModal(ctx, modal)
}
