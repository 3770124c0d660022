package clock

// Zone is a named timezone with a fixed offset from UTC.
//
// Offsets are static seconds east of UTC, matching the device firmware's
// zone table. No DST rules are applied anywhere in the system.
type Zone struct {
	Name          string `json:"name"`
	OffsetSeconds int    `json:"offset_seconds"`
}

// Alarm is a wall-clock time-of-day paired with a zone from the registry.
//
// Alarms have no identity beyond their position in the alarm list:
// duplicates are permitted, and deletion is by position.
type Alarm struct {
	Time string `json:"time"`
	Zone string `json:"zone"`
}
