package clock

import "errors"

// Domain errors for the clock state store.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrInvalidAlarmTime is returned when an alarm time is empty or not HH:MM.
	ErrInvalidAlarmTime = errors.New("clock: invalid alarm time")

	// ErrUnknownZone is returned when an alarm names a zone outside the registry.
	ErrUnknownZone = errors.New("clock: unknown zone")

	// ErrAlarmNotFound is returned when a delete position is out of bounds.
	ErrAlarmNotFound = errors.New("clock: alarm not found")

	// ErrEmptyRegistry is returned when constructing a registry with no zones.
	ErrEmptyRegistry = errors.New("clock: registry must contain at least one zone")

	// ErrDuplicateZone is returned when a registry contains repeated zone names.
	ErrDuplicateZone = errors.New("clock: duplicate zone name")

	// ErrInvalidZone is returned when a registry zone is malformed.
	ErrInvalidZone = errors.New("clock: invalid zone")
)
