// Package futuremw provides a store middleware that lets deferred
// computations be dispatched as actions.
//
// The middleware watches every dispatched action. A bare deferred computation
// or a FutureAction wrapping one is intercepted instead of being forwarded
// down the chain; once the computation settles, the middleware dispatches a
// FulfilledAction or RejectedAction through the store's top-level Dispatch.
// A FutureAction may carry an initial action that is forwarded synchronously
// before the computation can settle, which covers the usual "loading" pattern:
//
//	act := futuremw.NewFutureAction(
//	    promise.Go(func() (any, error) { return fetchResults() }),
//	    futuremw.WithInitialAction(SearchStarted{}),
//	)
//	st.Dispatch(act)
//	result, err := act.Result().Wait(ctx)
//
// The middleware owns no logging and swallows no errors: a computation's
// failure is delivered verbatim inside the RejectedAction, both to the reducer
// and to the wrapped action's result handle.
package futuremw

import (
	"github.com/rise-and-shine/statekit/promise"
	"github.com/rise-and-shine/statekit/store"
)

// Deferred is a caller-supplied asynchronous computation that settles exactly
// once, either with a value or with an error.
//
// Subscribe registers a continuation invoked exactly once, on its own
// goroutine, when the computation settles. Registering on an already settled
// computation must still defer the continuation rather than run it inline.
// *promise.Future[any] satisfies this contract.
type Deferred interface {
	Subscribe(fn func(value any, err error))
}

var _ Deferred = (*promise.Future[any])(nil)

// New returns the future-dispatch middleware.
//
// Dispatched actions are handled three ways:
//   - a *FutureAction is not forwarded; its initial action, when present, is
//     forwarded through next first, then the embedded computation is observed
//     and its result handle is resolved once the result action has been
//     dispatched;
//   - a bare Deferred is not forwarded; its settlement is observed with no
//     initial action and no result handle;
//   - anything else is forwarded to next unchanged.
//
// The returned middleware never blocks and never panics on any action shape.
func New() store.Middleware {
	return func(s store.Store, action any, next store.NextDispatcher) {
		switch act := action.(type) {
		case *FutureAction:
			if act.initial != nil {
				next(act.initial)
			}
			if act.deferred != nil {
				observe(s, act.deferred, act.result)
			}
		case Deferred:
			observe(s, act, nil)
		default:
			next(action)
		}
	}
}

// observe attaches the settlement continuation to d. When d settles, the
// continuation builds the matching result action, dispatches it through the
// store's top-level Dispatch, and only then resolves the handle. Rejection of
// the computation still resolves the handle: the failure travels as the
// RejectedAction value, the handle itself never fails.
func observe(s store.Store, d Deferred, handle *promise.Promise[ResultAction]) {
	d.Subscribe(func(value any, err error) {
		var result ResultAction
		if err != nil {
			result = RejectedAction{Err: err}
		} else {
			result = FulfilledAction{Value: value}
		}
		s.Dispatch(result)
		if handle != nil {
			handle.Resolve(result)
		}
	})
}
