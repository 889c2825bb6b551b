package kernel

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// orgCodeLength is the number of leading characters of a bill code that
// form the originating bill code shared by split deliveries.
const orgCodeLength = 8

// maxBillCodeLength matches the storage column width for bill codes.
const maxBillCodeLength = 13

// BillCode is a value object for the externally supplied, immutable
// identifier of a bill. Codes arrive from the upstream intake system
// (e.g. "HD026075.01") and are never generated here.
//
// The zero value is invalid; construct via NewBillCode.
//
// Example:
//
//	code, err := kernel.NewBillCode("HD026075.01")
//	if err != nil {
//	    // handle invalid code
//	}
//	fmt.Println(code.OrgCode()) // "HD026075"
type BillCode struct {
	value string
}

// NewBillCode validates and wraps a raw bill code.
// The code must be non-empty and fit the storage column.
func NewBillCode(value string) (BillCode, error) {
	if value == "" {
		return BillCode{}, errs.NewValueIsRequiredError("billCode")
	}
	if len(value) > maxBillCodeLength {
		return BillCode{}, errs.NewValueIsInvalidErrorWithCause("billCode",
			fmt.Errorf("%q is longer than %d characters", value, maxBillCodeLength))
	}

	return BillCode{value: value}, nil
}

// Validate reports whether the BillCode was constructed via NewBillCode.
func (c BillCode) Validate() error {
	if c.value == "" {
		return errs.NewValueIsRequiredError("billCode")
	}
	return nil
}

// String returns the raw code.
func (c BillCode) String() string {
	return c.value
}

// OrgCode derives the originating bill code: the first eight characters
// of the bill code, or the whole code when it is shorter.
func (c BillCode) OrgCode() string {
	if len(c.value) <= orgCodeLength {
		return c.value
	}
	return c.value[:orgCodeLength]
}

// IsEqual compares two bill codes by value.
func (c BillCode) IsEqual(other BillCode) bool {
	return c.value == other.value
}
