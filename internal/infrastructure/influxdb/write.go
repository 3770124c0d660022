package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteSyncBroadcast records a clock/sync publication.
//
// The write is non-blocking; data is batched and sent asynchronously.
//
// Parameters:
//   - epoch: The epoch value that was broadcast
//   - trigger: What caused the broadcast ("interval", "alarm_change")
func (c *Client) WriteSyncBroadcast(epoch int64, trigger string) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"clock_sync",
		map[string]string{
			"trigger": trigger,
		},
		map[string]interface{}{
			"epoch": epoch,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WriteZoneChange records a current-zone change.
//
// Parameters:
//   - zone: The new active zone name
//   - source: Who changed it ("http" for user cycles, "device" for inbound reports)
func (c *Client) WriteZoneChange(zone string, source string) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"zone_change",
		map[string]string{
			"zone":   zone,
			"source": source,
		},
		map[string]interface{}{
			"count": 1,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WriteAlarmCount records the alarm-list size after an add or delete.
//
// Parameters:
//   - count: Number of alarms after the change
//   - action: The mutation that happened ("add", "delete")
func (c *Client) WriteAlarmCount(count int, action string) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"alarms",
		map[string]string{
			"action": action,
		},
		map[string]interface{}{
			"count": count,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}
