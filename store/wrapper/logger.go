package wrapper

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/rise-and-shine/statekit/logger"
	"github.com/rise-and-shine/statekit/mask"
	"github.com/rise-and-shine/statekit/store"
)

// failure is satisfied by actions that represent a failed outcome, such as
// the future middleware's rejected result action.
type failure interface {
	Failed() bool
}

// NewLogger returns a middleware that logs every dispatch after the rest of
// the chain has processed it. Each entry carries a dispatch id, the action's
// name, its masked payload, and the downstream processing time. Actions
// reporting a failed outcome are logged at warn level.
func NewLogger(log logger.Logger) store.Middleware {
	log = log.Named("store.logger")

	return func(s store.Store, action any, next store.NextDispatcher) {
		start := time.Now()

		next(action)

		entry := log.With(
			"dispatch_id", uuid.NewString(),
			"action", actionName(action),
			"payload", mask.Value(action),
			"duration", time.Since(start).String(),
		)

		failed := false
		if f, ok := action.(failure); ok {
			failed = f.Failed()
		}
		write := lo.Ternary(failed, entry.Warnw, entry.Infow)
		write("action dispatched")
	}
}
