package timezone_test

import (
	"testing"
	"time"

	"choreboard/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowUsesAppLocation(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation().String(), now.Location().String())
}

func TestFormatAndParseRoundTrip(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02 15:04", "2024-03-09 08:30")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-09 08:30", timezone.Format(parsed, "2006-01-02 15:04"))
}

func TestDueDatesDoNotShift(t *testing.T) {
	due, err := timezone.ParseDate("2024-12-31")
	require.NoError(t, err)

	// Late on the previous day somewhere west of UTC must still render the stored date.
	assert.Equal(t, "2024-12-31", timezone.FormatDate(due))
	assert.Equal(t, "2024-12-31", timezone.FormatDate(due.In(time.UTC)))
}

func TestFormatDateZero(t *testing.T) {
	assert.Empty(t, timezone.FormatDate(time.Time{}))
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := timezone.ParseDate("31/12/2024")
	assert.Error(t, err)
}
