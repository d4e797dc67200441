package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowUTC_UsesClock(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))
	restore := SetClock(func() time.Time { return fixed })
	defer restore()

	now := NowUTC()
	assert.Equal(t, time.UTC, now.Location())
	assert.True(t, now.Equal(fixed))
	assert.Equal(t, 9, now.Hour())
}

func TestInit(t *testing.T) {
	require.NoError(t, Init("Europe/Moscow"))
	defer func() { _ = Init("") }()

	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, ToBizTimezone(ts).Hour())

	assert.Error(t, Init("Not/AZone"))
}
