package kernel

import (
	"fmt"
	"strings"

	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

// groupCodeLength is the length of a batch correlation code.
const groupCodeLength = 6

// GroupCode is the batch correlation identifier shared by every bill
// created in one intake call. Codes are short random tokens, readable
// enough to be quoted on reconciliation sheets.
//
// Example:
//
//	code := kernel.NewGroupCode() // e.g. "9A1F03"
type GroupCode struct {
	value string
}

// NewGroupCode generates a random group code: the first six characters of
// a v4 UUID, uppercased.
func NewGroupCode() GroupCode {
	raw := strings.ToUpper(uuid.NewString())
	return GroupCode{value: raw[:groupCodeLength]}
}

// GroupCodeFromString restores a group code from persistence.
func GroupCodeFromString(value string) (GroupCode, error) {
	if value == "" {
		return GroupCode{}, errs.NewValueIsRequiredError("groupCode")
	}
	if len(value) != groupCodeLength {
		return GroupCode{}, errs.NewValueIsInvalidErrorWithCause("groupCode",
			fmt.Errorf("%q is not %d characters", value, groupCodeLength))
	}

	return GroupCode{value: strings.ToUpper(value)}, nil
}

// Validate reports whether the GroupCode was properly constructed.
func (g GroupCode) Validate() error {
	if g.value == "" {
		return errs.NewValueIsRequiredError("groupCode")
	}
	return nil
}

// String returns the code.
func (g GroupCode) String() string {
	return g.value
}
