package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  CalendarDate
		ok    bool
	}{
		{
			name:  "plain valid date",
			input: "2025-06-15",
			want:  CalendarDate{Year: 2025, Month: 6, Day: 15},
			ok:    true,
		},
		{
			name:  "single digit month and day",
			input: "2025-6-5",
			want:  CalendarDate{Year: 2025, Month: 6, Day: 5},
			ok:    true,
		},
		{
			name:  "leap day on leap year",
			input: "2024-02-29",
			want:  CalendarDate{Year: 2024, Month: 2, Day: 29},
			ok:    true,
		},
		{
			name:  "leap day on non-leap year",
			input: "2023-02-29",
			ok:    false,
		},
		{
			name:  "century year passes the simplified leap rule",
			input: "1900-02-29",
			want:  CalendarDate{Year: 1900, Month: 2, Day: 29},
			ok:    true,
		},
		{
			name:  "day 31 in a 30-day month",
			input: "2024-04-31",
			ok:    false,
		},
		{
			name:  "day 31 in a 31-day month",
			input: "2024-07-31",
			want:  CalendarDate{Year: 2024, Month: 7, Day: 31},
			ok:    true,
		},
		{
			name:  "month 13",
			input: "2024-13-01",
			ok:    false,
		},
		{
			name:  "month zero",
			input: "2024-0-10",
			ok:    false,
		},
		{
			name:  "day zero",
			input: "2024-01-0",
			ok:    false,
		},
		{
			name:  "wrong separator",
			input: "2024/01/10",
			ok:    false,
		},
		{
			name:  "trailing garbage",
			input: "2024-01-10x",
			ok:    false,
		},
		{
			name:  "empty string",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ClockTime
		ok    bool
	}{
		{
			name:  "valid time",
			input: "18:30:05",
			want:  ClockTime{Hour: 18, Minute: 30, Second: 5},
			ok:    true,
		},
		{
			name:  "midnight",
			input: "00:00:00",
			want:  ClockTime{},
			ok:    true,
		},
		{
			name:  "last second of the day",
			input: "23:59:59",
			want:  ClockTime{Hour: 23, Minute: 59, Second: 59},
			ok:    true,
		},
		{
			name:  "hour out of range",
			input: "24:00:00",
			ok:    false,
		},
		{
			name:  "minute out of range",
			input: "12:60:00",
			ok:    false,
		},
		{
			name:  "second out of range",
			input: "12:00:60",
			ok:    false,
		},
		{
			name:  "single digit field rejected",
			input: "9:30:00",
			ok:    false,
		},
		{
			name:  "missing seconds",
			input: "12:30",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTime(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIsValidLatitude(t *testing.T) {
	assert.True(t, IsValidLatitude(0))
	assert.True(t, IsValidLatitude(-90))
	assert.True(t, IsValidLatitude(90))
	assert.True(t, IsValidLatitude(45.123456))
	assert.False(t, IsValidLatitude(90.000001))
	assert.False(t, IsValidLatitude(-91))
}

func TestIsValidLongitude(t *testing.T) {
	assert.True(t, IsValidLongitude(0))
	assert.True(t, IsValidLongitude(-180))
	assert.True(t, IsValidLongitude(180))
	assert.True(t, IsValidLongitude(77.5))
	assert.False(t, IsValidLongitude(180.5))
	assert.False(t, IsValidLongitude(-181))
}

func TestCheckMissingFields(t *testing.T) {
	required := []string{"event_name", "city_name", "date", "time", "latitude", "longitude"}

	t.Run("all present", func(t *testing.T) {
		data := map[string]any{
			"event_name": "Concert",
			"city_name":  "Delhi",
			"date":       "2025-06-15",
			"time":       "18:00:00",
			"latitude":   28.6,
			"longitude":  77.2,
		}
		assert.Empty(t, CheckMissingFields(required, data))
	})

	t.Run("absent fields reported in declared order", func(t *testing.T) {
		data := map[string]any{
			"event_name": "Concert",
			"date":       "2025-06-15",
			"latitude":   28.6,
			"longitude":  77.2,
		}
		assert.Equal(t, []string{"city_name", "time"}, CheckMissingFields(required, data))
	})

	t.Run("falsy values count as missing", func(t *testing.T) {
		data := map[string]any{
			"event_name": "",
			"city_name":  "Delhi",
			"date":       "2025-06-15",
			"time":       "18:00:00",
			"latitude":   float64(0),
			"longitude":  77.2,
		}
		assert.Equal(t, []string{"event_name", "latitude"}, CheckMissingFields(required, data))
	})

	t.Run("nil counts as missing", func(t *testing.T) {
		data := map[string]any{
			"event_name": nil,
		}
		assert.Equal(t, []string{"event_name"}, CheckMissingFields([]string{"event_name"}, data))
	})
}
