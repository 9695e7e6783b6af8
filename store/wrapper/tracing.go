package wrapper

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rise-and-shine/statekit/store"
)

const tracerName = "statekit/store"

// NewTracing returns a middleware that opens an OpenTelemetry span around
// each dispatch. Dispatch carries no context, so every span is a root span;
// the action's name is attached as an attribute.
func NewTracing() store.Middleware {
	tracer := otel.Tracer(tracerName)

	return func(s store.Store, action any, next store.NextDispatcher) {
		_, span := tracer.Start(context.Background(), "store.dispatch",
			trace.WithAttributes(attribute.String("action.name", actionName(action))),
		)
		defer span.End()

		next(action)
	}
}
