// Package store defines the in-process contracts between a unidirectional
// state container and its middleware.
//
// The store implementation itself, its reducer, and the mechanics of wiring a
// middleware chain are the application's concern. This package only fixes the
// call shapes that middlewares in this module agree on, so that any store
// honoring them can host the middlewares.
package store

// Store is the dispatch surface a middleware sees.
//
// Dispatch sends an action through the store's full middleware chain, from the
// top, and ultimately to the reducer. Implementations must tolerate reentrant
// calls from a middleware's asynchronous continuations, which may run on a
// different goroutine than the original dispatch.
type Store interface {
	Dispatch(action any)
}

// NextDispatcher forwards an action to the remainder of the middleware chain
// and, eventually, the reducer. The call is synchronous: when it returns, the
// reducer has processed the action.
type NextDispatcher func(action any)

// Middleware observes every action dispatched to a store. It may forward the
// action unchanged via next, swallow it, transform it, or dispatch new actions
// through the store's top-level Dispatch.
type Middleware func(s Store, action any, next NextDispatcher)
