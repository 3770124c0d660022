package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateAlarmTime checks that s is a wall-clock time of day in HH:MM form.
//
// Hours run 0-23 and minutes 0-59. Single-digit components ("7:30") are
// accepted; the web UI always submits zero-padded values but the API is
// callable directly.
//
// Returns:
//   - error: ErrInvalidAlarmTime (wrapped with detail) if malformed, nil otherwise
func ValidateAlarmTime(s string) error {
	if s == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidAlarmTime)
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return fmt.Errorf("%w: %q is not HH:MM", ErrInvalidAlarmTime, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return fmt.Errorf("%w: bad hour in %q", ErrInvalidAlarmTime, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("%w: bad minute in %q", ErrInvalidAlarmTime, s)
	}

	return nil
}
