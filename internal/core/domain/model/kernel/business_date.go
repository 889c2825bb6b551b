package kernel

import (
	"fmt"
	"time"

	"backoffice/internal/pkg/errs"
)

// BusinessDate is the operational day a bill or request is logically filed
// under, encoded as an 8-digit integer YYYYMMDD. It is independent of the
// wall-clock create_at timestamp.
//
// The zero value is invalid; construct via NewBusinessDate or
// BusinessDateFromTime.
//
// Example:
//
//	date, err := kernel.NewBusinessDate(20260829)
//	today := kernel.BusinessDateFromTime(time.Now())
type BusinessDate struct {
	value int
}

// NewBusinessDate validates and wraps a YYYYMMDD integer.
func NewBusinessDate(value int) (BusinessDate, error) {
	if value < 10000101 || value > 99991231 {
		return BusinessDate{}, errs.NewValueIsInvalidErrorWithCause("businessDate",
			fmt.Errorf("%d is not an 8-digit YYYYMMDD date", value))
	}

	month := value / 100 % 100
	day := value % 100
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return BusinessDate{}, errs.NewValueIsInvalidErrorWithCause("businessDate",
			fmt.Errorf("%d has month %d, day %d", value, month, day))
	}

	return BusinessDate{value: value}, nil
}

// BusinessDateFromTime derives the business date of the given instant.
func BusinessDateFromTime(t time.Time) BusinessDate {
	return BusinessDate{value: t.Year()*10000 + int(t.Month())*100 + t.Day()}
}

// Validate reports whether the BusinessDate was properly constructed.
func (d BusinessDate) Validate() error {
	if d.value == 0 {
		return errs.NewValueIsRequiredError("businessDate")
	}
	return nil
}

// Int returns the YYYYMMDD encoding for persistence and filtering.
func (d BusinessDate) Int() int {
	return d.value
}

// Before reports whether d falls strictly before other.
func (d BusinessDate) Before(other BusinessDate) bool {
	return d.value < other.value
}

// String formats the date as its decimal YYYYMMDD representation.
func (d BusinessDate) String() string {
	return fmt.Sprintf("%08d", d.value)
}
