// Package wrapper provides store middlewares for cross-cutting concerns.
//
// This package enables dispatch logging, panic recovery, and tracing to be
// applied around a store's dispatch path without touching reducer logic.
// Each wrapper is an ordinary store.Middleware and can be registered in any
// order the hosting store supports.
package wrapper

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// actionName renders an action for log and span attributes. Scalar actions
// are rendered by value, everything else by type.
func actionName(action any) string {
	switch action.(type) {
	case nil:
		return "<nil>"
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return cast.ToString(action)
	default:
		return strings.TrimPrefix(fmt.Sprintf("%T", action), "*")
	}
}
