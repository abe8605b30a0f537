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

	for _, bad := range []string{"", "9:30:00x", "25:00", "12:60", "noon"} {
		_, err := NewTimeStringFromString(bad)
		require.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		got, err := TimeString(tt.in).Minutes()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFromMinutes(t *testing.T) {
	ts, err := FromMinutes(570)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	_, err = FromMinutes(-1)
	require.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = FromMinutes(24 * 60)
	require.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("10:00").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:45"), ts)

	// Переход через полночь - ошибка, слоты не пересекают сутки
	_, err = TimeString("23:50").AddMinutes(30)
	require.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 2, 2, 14, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

func TestScan(t *testing.T) {
	var ts TimeString

	// Postgres отдает time как HH:MM:SS
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("18:45:00")))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	require.Error(t, ts.Scan(12345))
}

func TestValue(t *testing.T) {
	v, err := TimeString("09:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30", v)

	_, err = TimeString("bad").Value()
	require.Error(t, err)
}
