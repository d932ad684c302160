package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	m, err := ToMinutes("9:05")
	require.NoError(t, err)
	assert.Equal(t, 545, m)

	m, err = ToMinutes("23:59")
	require.NoError(t, err)
	assert.Equal(t, 1439, m)

	for _, bad := range []string{"", "—", "noon", "24:00", "10:60", "10"} {
		_, err := ToMinutes(bad)
		assert.Error(t, err, bad)
	}
}

func TestCalculateDuration(t *testing.T) {
	assert.Equal(t, "1h 30m", CalculateDuration("09:00", "10:30"))
	assert.Equal(t, "0h 45m", CalculateDuration("09:00", "09:45"))
	assert.Equal(t, "—", CalculateDuration("10:00", "09:00"))
	assert.Equal(t, "—", CalculateDuration("10:00", "10:00"))
	assert.Equal(t, "—", CalculateDuration("", "10:00"))
	assert.Equal(t, "—", CalculateDuration("—", "10:00"))
	assert.Equal(t, "—", CalculateDuration("09:00", "—"))
}

func TestTo12Hour(t *testing.T) {
	assert.Equal(t, "12:30 AM", To12Hour("00:30"))
	assert.Equal(t, "01:00 PM", To12Hour("13:00"))
	assert.Equal(t, "12:00 PM", To12Hour("12:00"))
	assert.Equal(t, "09:05 AM", To12Hour("9:05"))
	assert.Equal(t, "—", To12Hour("—"))
	assert.Equal(t, "soon", To12Hour("soon"))
}

func TestDurationInMinutes(t *testing.T) {
	assert.Equal(t, "45 min", DurationInMinutes("09:00", "09:45"))
	assert.Equal(t, "90 min", DurationInMinutes("09:00", "10:30"))
	assert.Equal(t, "—", DurationInMinutes("09:45", "09:00"))
	assert.Equal(t, "—", DurationInMinutes("—", "09:00"))
	assert.Equal(t, "—", DurationInMinutes("", ""))
}

func TestNormalizeTime(t *testing.T) {
	assert.Equal(t, "—", NormalizeTime(""))
	assert.Equal(t, "—", NormalizeTime("  "))
	assert.Equal(t, "08:15", NormalizeTime(" 08:15 "))
	assert.Equal(t, "09:05", NormalizeTime("9:05"))
	assert.Equal(t, "—", NormalizeTime("—"))
	assert.Equal(t, "later", NormalizeTime("later"))
}

func TestDates(t *testing.T) {
	d, err := ParseDate("2024-05-15")
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, d.Weekday())
	assert.Equal(t, "2024-05-15", FormatDate(d))

	next, err := AddDays("2024-02-28", 2)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", next)

	_, err = ParseDate("15/05/2024")
	assert.Error(t, err)

	now := time.Date(2024, 1, 2, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-02", Today(now))
}
