// Package mqtt provides MQTT client connectivity for SmartAlarm Core.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Topic subscriptions with automatic restoration on reconnect
//   - Last Will and Testament (LWT) for offline detection
//   - Connection health monitoring
//
// # Architecture
//
// MQTT is the link between the core and the ESP32 clock device:
//
//	Web UI ↔ SmartAlarm Core ↔ MQTT Broker ↔ ESP32 clock
//
// The core publishes full-state snapshots (clock/alarms), periodic time
// corrections (clock/sync) and zone changes (clock/zone); the device reports
// its own zone back on clock/zone. Connection lifecycle (handshake, retry,
// reconnect) is handled entirely inside this package — callers only see
// Publish and Subscribe.
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	err = client.Subscribe(mqtt.Topics{}.ClockZone(), 1,
//	    func(topic string, payload []byte) error {
//	        log.Printf("device zone: %s", payload)
//	        return nil
//	    })
//
//	client.PublishString(mqtt.Topics{}.ClockZone(), "CET", 1, false)
package mqtt
