package common

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// BestEffort runs a side effect whose failure must not reach the caller.
// Errors and panics are logged and swallowed. It reports whether the task
// succeeded.
func BestEffort(ctx context.Context, what string, task func(ctx context.Context) error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("task", what).Msg(fmt.Sprintf("Best-effort task panicked: %v", r))
			ok = false
		}
	}()

	if err := task(ctx); err != nil {
		log.Warn().Err(err).Str("task", what).Msg("Best-effort task failed")
		return false
	}
	return true
}
