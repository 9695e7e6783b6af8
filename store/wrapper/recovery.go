package wrapper

import (
	"fmt"
	"runtime"

	"github.com/rise-and-shine/statekit/logger"
	"github.com/rise-and-shine/statekit/store"
)

// NewRecovery returns a middleware that recovers panics raised further down
// the chain, including the reducer. The panic is logged with its stack trace
// and the dispatch completes as a no-op for that action.
func NewRecovery(log logger.Logger) store.Middleware {
	log = log.Named("store.recovery")

	return func(s store.Store, action any, next store.NextDispatcher) {
		defer func() {
			if r := recover(); r != nil {
				stackTrace := make([]byte, 4096) // 4KB
				stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]

				log.
					With("action", actionName(action)).
					With("panic_values", fmt.Sprintf("%v", r)).
					With("stack_trace", string(stackTrace)).
					Error("panic recovered in store dispatch")
			}
		}()

		next(action)
	}
}
