package futuremw_test

import (
	"context"
	"fmt"

	"github.com/rise-and-shine/statekit/futuremw"
	"github.com/rise-and-shine/statekit/promise"
)

func ExampleNew() {
	st := newRecordingStore(futuremw.New())

	search := promise.New[any]()
	act := futuremw.NewFutureAction(
		search.Future(),
		futuremw.WithInitialAction("Fetching"),
	)
	st.Dispatch(act)
	fmt.Println(st.State())

	search.Resolve("Search Results")
	result, _ := act.Result().Wait(context.Background())
	fmt.Println(result)
	fmt.Println(st.State())

	// Output:
	// Fetching
	// FulfilledAction(Search Results)
	// Search Results
}
