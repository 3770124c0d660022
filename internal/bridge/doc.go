// Package bridge connects the clock state store to the MQTT broker.
//
// It owns the bidirectional propagation:
//
//   - HTTP-triggered mutations (add/delete alarm, cycle zone) commit to the
//     store first, then publish their snapshots to clock/alarms, clock/sync
//     and clock/zone.
//   - Inbound clock/zone messages from the device apply to the store through
//     the same mutual-exclusion boundary as HTTP mutations.
//
// The Broadcaster runs alongside, publishing the UTC epoch to clock/sync on
// a fixed period so the device's RTC stays corrected.
//
// State and the message bus are deliberately not transactionally linked:
// publish failures leave committed state in place, and because every payload
// is a full-state snapshot (never a delta), the retained alarm list and the
// next sync cycle re-converge the device once the broker recovers.
package bridge
