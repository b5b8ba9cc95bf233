package dispatch

import (
	"context"
	"strings"

	"gamenight/internal/customid"
	"gamenight/internal/domain/contract"
)

type HandleFunc func(ctx context.Context, ix contract.Interaction, intent customid.Intent) error

type kindHandler struct {
	kind   customid.Kind
	handle HandleFunc
}

// ForKind returns a handler owning every intent of one kind.
func ForKind(kind customid.Kind, handle HandleFunc) Handler {
	return kindHandler{kind: kind, handle: handle}
}

func (h kindHandler) CanHandle(intent customid.Intent) bool {
	return intent.Kind() == h.kind
}

func (h kindHandler) Handle(ctx context.Context, ix contract.Interaction, intent customid.Intent) error {
	return h.handle(ctx, ix, intent)
}

type LegacyHandleFunc func(ctx context.Context, ix contract.Interaction, customID string) error

type prefixHandler struct {
	prefix string
	exact  bool
	handle LegacyHandleFunc
}

// LegacyExact serves one fixed raw custom id.
func LegacyExact(customID string, handle LegacyHandleFunc) LegacyHandler {
	return prefixHandler{prefix: customID, exact: true, handle: handle}
}

// LegacyPrefix serves raw custom ids starting with prefix.
func LegacyPrefix(prefix string, handle LegacyHandleFunc) LegacyHandler {
	return prefixHandler{prefix: prefix, handle: handle}
}

func (h prefixHandler) Matches(customID string) bool {
	if h.exact {
		return customID == h.prefix
	}
	return strings.HasPrefix(customID, h.prefix)
}

func (h prefixHandler) Handle(ctx context.Context, ix contract.Interaction, customID string) error {
	return h.handle(ctx, ix, customID)
}
