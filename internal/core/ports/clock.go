package ports

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
)

// Clock supplies the current instant and the current business date.
// Injected so handlers stay deterministic under test.
type Clock interface {
	// Now returns the current wall-clock instant, used for resolution
	// timestamps.
	Now() time.Time

	// Today returns the current operational day as YYYYMMDD.
	Today() kernel.BusinessDate
}
