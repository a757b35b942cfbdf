package orders

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewOrderNumber returns a human friendly order number such as HK-261016-7QF3ZK.
// The suffix is taken from the random part of a ULID.
func NewOrderNumber(now time.Time) string {
	id := ulid.Make().String()
	return "HK-" + now.UTC().Format("060102") + "-" + strings.ToUpper(id[len(id)-6:])
}
