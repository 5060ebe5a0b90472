package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateRoundTrip(t *testing.T) {
	dates := []string{"01-01-2024", "25-12-2024", "31-01-1999", "09-10-2026"}
	for _, d := range dates {
		assert.Equal(t, d, ToDisplayDate(ToWireDate(d)), "round trip for %s", d)
	}
}

func TestToWireDate(t *testing.T) {
	assert.Equal(t, "2024-12-25", ToWireDate("25-12-2024"))
	// No calendar validation at this layer: malformed input passes through.
	assert.Equal(t, "garbage", ToWireDate("garbage"))
}

func TestValidDisplayDate(t *testing.T) {
	valid := []string{"01-01-2024", "31-12-1999", "15-06-2026"}
	for _, d := range valid {
		assert.True(t, ValidDisplayDate(d), d)
	}

	invalid := []string{
		"2024-12-25", // wire format
		"32-01-2024", // day out of range
		"00-01-2024",
		"25-13-2024", // month out of range
		"25-00-2024",
		"25-12-24", // two-digit year
		"25/12/2024",
		"",
	}
	for _, d := range invalid {
		assert.False(t, ValidDisplayDate(d), d)
	}
}

func TestTodayDisplayIsValid(t *testing.T) {
	assert.True(t, ValidDisplayDate(TodayDisplay()))
}
