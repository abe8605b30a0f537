package timegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func TestSlots(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		step  int
		want  []string
	}{
		{
			name:  "one hour at 15 minutes",
			start: "09:00",
			end:   "10:00",
			step:  15,
			want:  []string{"09:00", "09:15", "09:30", "09:45"},
		},
		{
			name:  "single slot",
			start: "12:00",
			end:   "12:15",
			step:  15,
			want:  []string{"12:00"},
		},
		{
			name:  "half hour step",
			start: "09:00",
			end:   "11:00",
			step:  30,
			want:  []string{"09:00", "09:30", "10:00", "10:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Slots(types.TimeString(tt.start), types.TimeString(tt.end), tt.step)
			require.NoError(t, err)

			gotStrings := make([]string, len(got))
			for i, s := range got {
				gotStrings[i] = s.String()
			}
			assert.Equal(t, tt.want, gotStrings)
		})
	}
}

// Покрытие: (end-start)/step элементов, строго возрастающих,
// первый = start, последний = end - step.
func TestSlotsCoverage(t *testing.T) {
	cases := []struct {
		start, end string
		step       int
	}{
		{"08:00", "18:00", 15},
		{"09:00", "18:00", 15},
		{"00:00", "23:45", 15},
		{"08:00", "18:00", 30},
		{"10:00", "10:15", 15},
	}

	for _, c := range cases {
		slots, err := Slots(types.TimeString(c.start), types.TimeString(c.end), c.step)
		require.NoError(t, err)

		startMin, err := types.TimeString(c.start).Minutes()
		require.NoError(t, err)
		endMin, err := types.TimeString(c.end).Minutes()
		require.NoError(t, err)

		require.Len(t, slots, (endMin-startMin)/c.step)
		assert.Equal(t, c.start, slots[0].String())

		wantLast, err := types.FromMinutes(endMin - c.step)
		require.NoError(t, err)
		assert.Equal(t, wantLast, slots[len(slots)-1])

		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].IsBefore(slots[i]), "slots must be strictly increasing")
		}
	}
}

func TestSlotsInvalidRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		step  int
	}{
		{"end equals start", "10:00", "10:00", 15},
		{"end before start", "11:00", "10:00", 15},
		{"zero step", "09:00", "10:00", 0},
		{"negative step", "09:00", "10:00", -15},
		{"start not aligned", "09:10", "10:00", 15},
		{"end not aligned", "09:00", "10:05", 15},
		{"malformed start", "9am", "10:00", 15},
		{"malformed end", "09:00", "25:00", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Slots(types.TimeString(tt.start), types.TimeString(tt.end), tt.step)
			require.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestSlotsDeterministic(t *testing.T) {
	first, err := Slots("09:00", "18:00", 15)
	require.NoError(t, err)
	second, err := Slots("09:00", "18:00", 15)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLabels(t *testing.T) {
	labels, err := Labels("09:00", "12:00")
	require.NoError(t, err)

	want := []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	assert.Equal(t, want, labels)
}

// Окно, выровненное только по 15-минутной сетке, округляется наружу
// до шага подписей
func TestLabelsQuarterHourWindow(t *testing.T) {
	labels, err := Labels("09:00", "17:45")
	require.NoError(t, err)

	require.Len(t, labels, 18)
	assert.Equal(t, types.TimeString("09:00"), labels[0])
	assert.Equal(t, types.TimeString("17:30"), labels[len(labels)-1])

	labels, err = Labels("09:15", "10:00")
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, labels)

	// Конец в последней четверти суток округляется к полуночи, не дальше
	labels, err = Labels("23:00", "23:45")
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"23:00", "23:30"}, labels)
}

func TestLabelsInvalidRange(t *testing.T) {
	_, err := Labels("10:00", "10:00")
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = Labels("11:00", "10:00")
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = Labels("9am", "10:00")
	require.ErrorIs(t, err, ErrInvalidRange)
}
