package guard_test

import (
	"errors"
	"testing"

	"backoffice/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		assert.NotNil(t, g)

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		require.NoError(t, g.Validate(customError))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	// A sample value object in the style of the domain model.
	type CodAmount struct {
		value int
		guard guard.ConstructorGuard
	}

	var errAmountNotConstructed = errors.New("CodAmount must be created via newCodAmount")

	newCodAmount := func(value int) (CodAmount, error) {
		if value <= 0 {
			return CodAmount{}, errors.New("amount must be greater than 0")
		}
		return CodAmount{
			value: value,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validateAmount := func(a CodAmount) error {
		return a.guard.Validate(errAmountNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		amount, err := newCodAmount(50000)

		require.NoError(t, err)
		require.NoError(t, validateAmount(amount))
		assert.Equal(t, 50000, amount.value)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var amount CodAmount // zero value

		err := validateAmount(amount)

		require.Error(t, err)
		assert.Equal(t, errAmountNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newCodAmount(-100)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount must be greater than 0")
	})
}
