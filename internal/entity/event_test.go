package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateRoundTrip(t *testing.T) {
	tests := []struct {
		year, month, day int
		rendered         string
	}{
		{2025, 6, 15, "2025-06-15"},
		{2024, 2, 29, "2024-02-29"},
		{2027, 1, 1, "2027-01-01"},
		{2027, 12, 31, "2027-12-31"},
	}

	for _, tt := range tests {
		ms := DateToMillis(tt.year, tt.month, tt.day)
		assert.Equal(t, tt.rendered, MillisToDateString(ms))
	}
}

func TestTimeToMillis(t *testing.T) {
	assert.Equal(t, int64(0), TimeToMillis(0, 0, 0))
	assert.Equal(t, int64(66_605_000), TimeToMillis(18, 30, 5))
	assert.Equal(t, int64(86_399_000), TimeToMillis(23, 59, 59))
}
