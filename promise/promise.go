// Package promise implements a single-assignment promise/future pair.
//
// A Promise is the write side: it is settled exactly once, either with a value
// (Resolve) or with an error (Reject). A Future is the read side: any number of
// readers can wait for the settled result, poll it, or subscribe continuations
// that fire once settlement happens. Continuations always run on their own
// goroutine, never inline with the call that settles the promise or registers
// the subscription.
package promise

import (
	"context"
	"sync"

	"github.com/code19m/errx"
)

// Promise is the write side of a single-assignment slot.
//
// A Promise must not be copied after first use. Settling an already settled
// promise is a no-op; the first settlement wins.
type Promise[T any] struct {
	state *state[T]
}

// New creates an unsettled promise.
func New[T any]() *Promise[T] {
	return &Promise[T]{state: newState[T]()}
}

// Resolve settles the promise with a value. Ignored if already settled.
func (p *Promise[T]) Resolve(value T) {
	p.state.settle(value, nil)
}

// Reject settles the promise with an error. Ignored if already settled.
func (p *Promise[T]) Reject(err error) {
	var zero T
	p.state.settle(zero, err)
}

// Future returns the read side of the promise. Every call returns a future
// backed by the same shared state.
func (p *Promise[T]) Future() *Future[T] {
	return &Future[T]{state: p.state}
}

// Future provides read access to the eventual result of a Promise.
type Future[T any] struct {
	state *state[T]
}

// Go runs fn on a new goroutine and returns a future settled with its result.
func Go[T any](fn func() (T, error)) *Future[T] {
	p := New[T]()
	go func() {
		p.state.settle(fn())
	}()
	return p.Future()
}

// Resolved returns a future already settled with value.
func Resolved[T any](value T) *Future[T] {
	p := New[T]()
	p.Resolve(value)
	return p.Future()
}

// Rejected returns a future already settled with err.
func Rejected[T any](err error) *Future[T] {
	p := New[T]()
	p.Reject(err)
	return p.Future()
}

// Done returns a channel closed when the future settles. Useful in select
// statements.
func (f *Future[T]) Done() <-chan struct{} {
	return f.state.done
}

// Settled reports whether the future has settled without blocking.
func (f *Future[T]) Settled() bool {
	select {
	case <-f.state.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the future settles or ctx is done. On settlement it
// returns the settled value and error; on cancellation it returns the
// context's error.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.state.done:
		return f.state.value, f.state.err
	case <-ctx.Done():
		var zero T
		return zero, errx.Wrap(ctx.Err())
	}
}

// Subscribe registers a continuation invoked exactly once when the future
// settles. The continuation runs on a fresh goroutine even when the future is
// already settled at registration time, so it can never run inline with the
// registering call. Multiple continuations may be registered; each fires once.
func (f *Future[T]) Subscribe(fn func(value T, err error)) {
	f.state.subscribe(fn)
}

type state[T any] struct {
	mu    sync.Mutex
	done  chan struct{}
	value T
	err   error
	subs  []func(T, error)
}

func newState[T any]() *state[T] {
	return &state[T]{done: make(chan struct{})}
}

func (s *state[T]) settle(value T, err error) {
	s.mu.Lock()
	select {
	case <-s.done:
		s.mu.Unlock()
		return
	default:
	}
	s.value = value
	s.err = err
	subs := s.subs
	s.subs = nil
	close(s.done)
	s.mu.Unlock()

	for _, fn := range subs {
		go fn(value, err)
	}
}

func (s *state[T]) subscribe(fn func(T, error)) {
	s.mu.Lock()
	select {
	case <-s.done:
		value, err := s.value, s.err
		s.mu.Unlock()
		go fn(value, err)
		return
	default:
	}
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}
