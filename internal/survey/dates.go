package survey

import (
	"regexp"
	"strings"
	"time"
)

// Display format is DD-MM-YYYY, what participants type; wire format is
// YYYY-MM-DD, what the backend expects. Conversion is a token reorder with no
// calendar validation; format validation happens at form-input level with
// displayDatePattern.
var displayDatePattern = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])-(0[1-9]|1[0-2])-([0-9]{4})$`)

func ValidDisplayDate(date string) bool {
	return displayDatePattern.MatchString(date)
}

// ToWireDate converts DD-MM-YYYY to YYYY-MM-DD. Input not made of three
// hyphen-separated tokens is returned unchanged.
func ToWireDate(display string) string {
	parts := strings.Split(display, "-")
	if len(parts) != 3 {
		return display
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// ToDisplayDate converts YYYY-MM-DD back to DD-MM-YYYY.
func ToDisplayDate(wire string) string {
	parts := strings.Split(wire, "-")
	if len(parts) != 3 {
		return wire
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// TodayDisplay is the default survey date for new drafts.
func TodayDisplay() string {
	return time.Now().Format("02-01-2006")
}
