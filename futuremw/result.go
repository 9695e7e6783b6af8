package futuremw

import (
	"fmt"
	"reflect"
)

// ResultAction is the terminal action dispatched for a settled computation.
// Exactly one result action, fulfilled or rejected, is produced per
// computation the middleware observes.
type ResultAction interface {
	fmt.Stringer

	// Failed reports whether the underlying computation settled with an error.
	Failed() bool

	// Equal reports same-variant, same-payload equality.
	Equal(other ResultAction) bool
}

// FulfilledAction carries the success value of a settled computation.
type FulfilledAction struct {
	Value any
}

// Failed implements ResultAction.
func (FulfilledAction) Failed() bool {
	return false
}

// Equal reports whether other is a FulfilledAction with a deep-equal value.
func (a FulfilledAction) Equal(other ResultAction) bool {
	o, ok := other.(FulfilledAction)
	return ok && reflect.DeepEqual(a.Value, o.Value)
}

func (a FulfilledAction) String() string {
	return fmt.Sprintf("FulfilledAction(%v)", a.Value)
}

// RejectedAction carries the error of a failed computation, verbatim.
type RejectedAction struct {
	Err error
}

// Failed implements ResultAction.
func (RejectedAction) Failed() bool {
	return true
}

// Equal reports whether other is a RejectedAction with a deep-equal error.
func (a RejectedAction) Equal(other ResultAction) bool {
	o, ok := other.(RejectedAction)
	return ok && reflect.DeepEqual(a.Err, o.Err)
}

func (a RejectedAction) String() string {
	return fmt.Sprintf("RejectedAction(%v)", a.Err)
}
