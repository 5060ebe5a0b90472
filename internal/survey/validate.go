package survey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError is a locally detected, field-scoped input error. It is
// raised before any network call and is always recoverable by correcting the
// field it names.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, ok := ParseClock(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("displaydate", func(fl validator.FieldLevel) bool {
		return ValidDisplayDate(fl.Field().String())
	})
	return v
}

// ParseClock checks a 24-hour HH:MM value and returns it zero-padded.
func ParseClock(s string) (string, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return "", false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", h, m), true
}

// DurationToMinutes converts an HH:MM duration entry to total minutes. It is
// a duration, not a time of day, so no calendar semantics apply.
func DurationToMinutes(s string) (int, error) {
	clock, ok := ParseClock(s)
	if !ok {
		return 0, fmt.Errorf("invalid duration %q, expected HH:MM", s)
	}
	h, _ := strconv.Atoi(clock[:2])
	m, _ := strconv.Atoi(clock[3:])
	return h*60 + m, nil
}
