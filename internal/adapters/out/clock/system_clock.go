// Package clock provides the production Clock implementation.
package clock

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
)

// SystemClock reads the wall clock in a fixed location so the business
// date rolls over at local midnight regardless of server timezone.
type SystemClock struct {
	location *time.Location
}

// NewSystemClock creates a clock pinned to the given location.
// A nil location falls back to UTC.
func NewSystemClock(location *time.Location) SystemClock {
	if location == nil {
		location = time.UTC
	}
	return SystemClock{location: location}
}

// Now returns the current instant in the clock's location.
func (c SystemClock) Now() time.Time {
	return time.Now().In(c.location)
}

// Today returns the current business date in the clock's location.
func (c SystemClock) Today() kernel.BusinessDate {
	return kernel.BusinessDateFromTime(c.Now())
}
