// Package clock holds the in-memory state for the SmartAlarm bridge:
// the timezone registry, the current zone, and the alarm list.
//
// The Registry is fixed at startup and immutable after. The Store is the
// single synchronisation point of the whole system: HTTP handlers, the
// sync broadcaster's siblings and the inbound MQTT callback never share
// any other mutable state.
//
// State is process-memory only. A restart resets the alarm list and the
// current zone; the device re-learns state from the retained clock/alarms
// snapshot and the next sync broadcast.
//
// # Thread Safety
//
// All Store methods are safe for concurrent use. Mutations are atomic with
// respect to each other: two concurrent deletes cannot remove the same
// logical entry, and snapshots never observe a half-applied change.
package clock
