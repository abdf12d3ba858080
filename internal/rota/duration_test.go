package rota_test

import (
	"testing"
	"time"

	"github.com/medrota/rota-checker/backend/internal/rota"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestShiftMinutes(t *testing.T) {
	d := date(2024, time.January, 1)

	tests := []struct {
		name    string
		start   string
		end     string
		minutes int
	}{
		{"day shift", "09:00", "17:00", 480},
		{"overnight shift", "22:00", "06:00", 480},
		{"end-of-day sentinel", "00:00", "24:00", 1440},
		{"clock-equal pair is a full day", "08:00", "08:00", 1440},
		{"finish one minute after start", "08:00", "08:01", 1},
		{"on-call into sentinel midnight", "20:00", "24:00", 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rota.ShiftMinutes(d, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, got)
		})
	}
}

func TestShiftMinutes_InvalidClocks(t *testing.T) {
	d := date(2024, time.January, 1)

	for _, clock := range []string{"25:00", "9am", "12", "12:60", "-1:30", ""} {
		_, err := rota.ShiftMinutes(d, clock, "17:00")
		assert.Error(t, err, "start clock %q", clock)

		_, err = rota.ShiftMinutes(d, "09:00", clock)
		assert.Error(t, err, "end clock %q", clock)
	}

	// 24:00 is only meaningful as a finish time
	_, err := rota.ShiftMinutes(d, "24:00", "08:00")
	assert.Error(t, err)
}

func TestShiftInstants_CrossesCalendarDate(t *testing.T) {
	start, end, err := rota.ShiftInstants(date(2024, time.March, 31), "22:00", "06:00")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.March, 31, 22, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.April, 1, 6, 0, 0, 0, time.UTC), end)
}
