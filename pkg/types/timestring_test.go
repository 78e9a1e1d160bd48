package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, invalid := range []string{"9:30:00", "25:00", "09:61", "abc", ""} {
		_, err := NewTimeStringFromString(invalid)
		assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", invalid)
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	assert.Equal(t, TimeString("15:09"), NewTimeString(moment))
}

func TestTimeStringMinutes(t *testing.T) {
	ts := TimeString("10:45")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 10*60+45, minutes)

	midnight := TimeString("00:00")
	minutes, err = midnight.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	shifted, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), shifted)

	back, err := shifted.AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), back)

	// Выход за пределы суток
	_, err = TimeString("23:30").AddMinutes(31)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = TimeString("00:10").AddMinutes(-11)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("18:00"))
	assert.False(t, TimeString("18:00").IsBefore("09:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	// TEXT колонка
	require.NoError(t, ts.Scan("14:30"))
	assert.Equal(t, TimeString("14:30"), ts)

	// TIME колонка приходит с секундами
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	// []byte от драйвера
	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, TimeString("08:15"), ts)

	// time.Time
	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 12, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("12:05"), ts)

	// NULL
	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	value, err := TimeString("11:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "11:00", value)

	value, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	_, err = TimeString("nonsense").Value()
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
