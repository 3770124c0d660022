package mqtt

import "fmt"

// Topic constants for the SmartAlarm MQTT protocol.
//
// The clock/* topics are the device protocol and are fixed by the ESP32
// firmware: the device subscribes to clock/sync, clock/zone and clock/alarms,
// and publishes its own zone to clock/zone.
const (
	// TopicPrefixClock is the base for all device-facing topics.
	TopicPrefixClock = "clock"

	// TopicPrefixSystem is the base for bridge lifecycle topics.
	TopicPrefixSystem = "smartalarm/system"
)

// Topics provides builders for SmartAlarm MQTT topics.
// Using these helpers keeps topic naming consistent across the codebase.
//
//	topics := mqtt.Topics{}
//	topics.ClockSync() // "clock/sync"
type Topics struct{}

// ClockZone returns the topic for zone changes, in both directions:
// the bridge publishes here when the user cycles the zone, and the device
// publishes here when it reports its local zone.
//
// Payload: plain-text zone name.
func (Topics) ClockZone() string {
	return fmt.Sprintf("%s/zone", TopicPrefixClock)
}

// ClockSync returns the topic for clock synchronisation broadcasts.
//
// Payload: JSON {"epoch": <seconds since Unix epoch, UTC>}.
func (Topics) ClockSync() string {
	return fmt.Sprintf("%s/sync", TopicPrefixClock)
}

// ClockAlarms returns the topic for full alarm-list snapshots.
//
// Payload: JSON array of {"time": "HH:MM", "zone": <name>}.
func (Topics) ClockAlarms() string {
	return fmt.Sprintf("%s/alarms", TopicPrefixClock)
}

// SystemStatus returns the bridge status topic (online/offline, LWT).
//
// Example payload: {"status":"online","client_id":"smartalarm-core",...}
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}
