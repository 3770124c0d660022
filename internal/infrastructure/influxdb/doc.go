// Package influxdb provides optional telemetry storage for SmartAlarm Core.
//
// It wraps the official influxdb-client-go v2 library with connection
// management, non-blocking batched writes, and health monitoring.
//
// # Purpose
//
// Records operational telemetry for the bridge:
//   - clock/sync broadcasts (and what triggered them)
//   - zone changes (tagged by source: http user action vs device report)
//   - alarm-list size after each add/delete
//
// Telemetry is strictly observational: no bridge behaviour depends on it,
// and when disabled in config the rest of the system runs unchanged.
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if errors.Is(err, influxdb.ErrDisabled) {
//	    // run without telemetry
//	}
//	defer client.Close()
//
//	client.WriteZoneChange("CET", "http")
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes.
package influxdb
