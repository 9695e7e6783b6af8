package futuremw

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"

	"github.com/rise-and-shine/statekit/promise"
)

// FutureAction couples a deferred computation with an optional initial action
// dispatched synchronously ahead of it.
//
// The value is immutable after construction. Its result handle is created
// alongside it and is resolved by the middleware exactly once, with the
// FulfilledAction or RejectedAction that was dispatched for the computation.
type FutureAction struct {
	deferred Deferred
	initial  any
	result   *promise.Promise[ResultAction]
}

// Option configures a FutureAction at construction time.
type Option func(*FutureAction)

// WithInitialAction sets the action forwarded down the chain synchronously,
// before the computation can settle.
func WithInitialAction(action any) Option {
	return func(a *FutureAction) {
		a.initial = action
	}
}

// NewFutureAction wraps a deferred computation for dispatching.
func NewFutureAction(d Deferred, opts ...Option) *FutureAction {
	a := &FutureAction{
		deferred: d,
		result:   promise.New[ResultAction](),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Deferred returns the embedded computation.
func (a *FutureAction) Deferred() Deferred {
	return a.deferred
}

// InitialAction returns the initial action, or nil when none was set.
func (a *FutureAction) InitialAction() any {
	return a.initial
}

// Result returns the read-only handle for the eventual result action. The
// handle resolves strictly after the result action has been dispatched to the
// store, so a caller returning from Wait knows the reducer has already
// observed the outcome.
func (a *FutureAction) Result() *promise.Future[ResultAction] {
	return a.result.Future()
}

// Equal reports structural equality: deep-equal initial actions and the
// identical embedded computation. Equal actions remain distinct handles.
func (a *FutureAction) Equal(other *FutureAction) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.deferred == other.deferred && reflect.DeepEqual(a.initial, other.initial)
}

// Hash combines the initial action's hash with the computation's identity
// using exclusive-or. An absent initial action contributes zero.
func (a *FutureAction) Hash() uint64 {
	var h uint64
	if a.initial != nil {
		h = xxhash.Sum64String(fmt.Sprintf("%#v", a.initial))
	}
	return h ^ deferredIdentity(a.deferred)
}

func (a *FutureAction) String() string {
	if a.initial == nil {
		return "FutureAction()"
	}
	return fmt.Sprintf("FutureAction(initial=%v)", a.initial)
}

// deferredIdentity derives a hash from the computation's identity. Deferred
// implementations are expected to be reference types; value implementations
// fall back to hashing their rendering.
func deferredIdentity(d Deferred) uint64 {
	v := reflect.ValueOf(d)
	switch v.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Map, reflect.Func, reflect.UnsafePointer:
		return uint64(v.Pointer())
	default:
		return xxhash.Sum64String(fmt.Sprintf("%#v", d))
	}
}
