package clock_test

import (
	"testing"
	"time"

	"backoffice/internal/adapters/out/clock"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemClock_Today_MatchesNow(t *testing.T) {
	c := clock.NewSystemClock(time.UTC)

	now := c.Now()
	today := c.Today()

	require.NoError(t, today.Validate())
	assert.Equal(t, kernel.BusinessDateFromTime(now), today)
}

func TestNewSystemClock_NilLocationDefaultsToUTC(t *testing.T) {
	c := clock.NewSystemClock(nil)

	assert.Equal(t, time.UTC, c.Now().Location())
}
