// Package promise_test contains tests for the promise package.
package promise_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/statekit/promise"
)

func TestPromise_ResolveSettlesOnce(t *testing.T) {
	p := promise.New[string]()
	f := p.Future()

	assert.False(t, f.Settled())

	p.Resolve("first")
	p.Resolve("second")
	p.Reject(errors.New("too late"))

	value, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", value)
	assert.True(t, f.Settled())
}

func TestPromise_RejectSettlesOnce(t *testing.T) {
	p := promise.New[int]()
	rejection := errors.New("boom")

	p.Reject(rejection)
	p.Resolve(42)

	value, err := p.Future().Wait(context.Background())
	assert.ErrorIs(t, err, rejection)
	assert.Zero(t, value)
}

func TestFuture_WaitCancelled(t *testing.T) {
	p := promise.New[string]()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Future().Wait(ctx)
	require.Error(t, err)
	assert.ErrorContains(t, err, context.Canceled.Error())
}

func TestFuture_Done(t *testing.T) {
	f := promise.Resolved("done")

	select {
	case <-f.Done():
	default:
		t.Fatal("expected done channel to be closed")
	}
}

func TestFuture_SubscribeAfterSettlementIsDeferred(t *testing.T) {
	f := promise.Resolved("value")

	fired := make(chan string, 1)
	f.Subscribe(func(value string, err error) {
		fired <- value
	})

	select {
	case value := <-fired:
		assert.Equal(t, "value", value)
	case <-time.After(time.Second):
		t.Fatal("subscription never fired")
	}
}

func TestFuture_SubscribeBeforeSettlement(t *testing.T) {
	p := promise.New[string]()
	f := p.Future()

	fired := make(chan error, 1)
	f.Subscribe(func(value string, err error) {
		fired <- err
	})

	rejection := errors.New("failed")
	p.Reject(rejection)

	select {
	case err := <-fired:
		assert.ErrorIs(t, err, rejection)
	case <-time.After(time.Second):
		t.Fatal("subscription never fired")
	}
}

func TestFuture_MultipleSubscribersEachFireOnce(t *testing.T) {
	p := promise.New[int]()
	f := p.Future()

	const subscribers = 5
	fired := make(chan int, subscribers)
	for range subscribers {
		f.Subscribe(func(value int, err error) {
			fired <- value
		})
	}

	p.Resolve(7)

	for range subscribers {
		select {
		case value := <-fired:
			assert.Equal(t, 7, value)
		case <-time.After(time.Second):
			t.Fatal("subscriber never fired")
		}
	}

	select {
	case <-fired:
		t.Fatal("a subscriber fired more than once")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestGo(t *testing.T) {
	tests := []struct {
		name      string
		fn        func() (string, error)
		wantValue string
		wantErr   string
	}{
		{
			name:      "fulfilled",
			fn:        func() (string, error) { return "Friend", nil },
			wantValue: "Friend",
		},
		{
			name:    "rejected",
			fn:      func() (string, error) { return "", errors.New("Oh no!") },
			wantErr: "Oh no!",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			value, err := promise.Go(tc.fn).Wait(context.Background())
			if tc.wantErr != "" {
				assert.EqualError(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantValue, value)
		})
	}
}

func TestRejected(t *testing.T) {
	rejection := errors.New("nope")
	_, err := promise.Rejected[string](rejection).Wait(context.Background())
	assert.ErrorIs(t, err, rejection)
}
