package kernel_test

import (
	"strings"
	"testing"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroupCode(t *testing.T) {
	t.Run("generates_six_uppercase_characters", func(t *testing.T) {
		code := kernel.NewGroupCode()

		assert.Len(t, code.String(), 6)
		assert.Equal(t, strings.ToUpper(code.String()), code.String())
		require.NoError(t, code.Validate())
	})

	t.Run("codes_are_random", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 32 {
			seen[kernel.NewGroupCode().String()] = true
		}
		// Collisions on 6 hex-ish characters over 32 draws are vanishingly rare.
		assert.Greater(t, len(seen), 30)
	})
}

func TestGroupCodeFromString(t *testing.T) {
	t.Run("restores_and_uppercases", func(t *testing.T) {
		code, err := kernel.GroupCodeFromString("9a1f03")

		require.NoError(t, err)
		assert.Equal(t, "9A1F03", code.String())
	})

	t.Run("empty_is_rejected", func(t *testing.T) {
		_, err := kernel.GroupCodeFromString("")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("wrong_length_is_rejected", func(t *testing.T) {
		_, err := kernel.GroupCodeFromString("ABCD")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
