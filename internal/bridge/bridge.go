package bridge

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/westbrae/smartalarm-core/internal/clock"
	"github.com/westbrae/smartalarm-core/internal/infrastructure/mqtt"
)

// Publisher is the slice of the MQTT client the bridge consumes.
// Connection lifecycle (connect, reconnect, credentials) stays behind it.
type Publisher interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
	PublishString(topic string, payload string, qos byte, retained bool) error
	PublishState(topic string, payload []byte) error
	Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error
}

// Telemetry receives operational data points. Implemented by the influxdb
// client; a nil Telemetry disables recording.
type Telemetry interface {
	WriteSyncBroadcast(epoch int64, trigger string)
	WriteZoneChange(zone string, source string)
	WriteAlarmCount(count int, action string)
}

// EventSink receives state-change events for live UI updates.
// Implemented by the API server's WebSocket hub.
type EventSink interface {
	Broadcast(channel string, payload any)
}

// Logger defines the logging interface used by the bridge.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Event channels broadcast to the WebSocket hub.
const (
	EventAlarmsChanged = "alarms_changed"
	EventZoneChanged   = "zone_changed"
)

// Bridge mediates between the state store and the MQTT broker.
//
// Every state change flows through here: HTTP handlers call the mutation
// methods, and the inbound clock/zone subscription applies device reports.
// Each successful mutation is followed by its outbound publishes, so the
// state change happens-before its snapshot on the wire. Publishes are
// best-effort: a broker outage never rolls back a committed change, and
// the retained snapshot plus the next sync cycle restore consistency once
// the broker returns.
type Bridge struct {
	store     *clock.Store
	pub       Publisher
	topics    mqtt.Topics
	qos       byte
	logger    Logger
	telemetry Telemetry
	events    EventSink

	// now is the clock source, replaceable in tests.
	now func() time.Time
}

// New creates a Bridge over the given store and publisher.
func New(store *clock.Store, pub Publisher, qos byte) *Bridge {
	return &Bridge{
		store:  store,
		pub:    pub,
		qos:    qos,
		logger: noopLogger{},
		now:    time.Now,
	}
}

// SetLogger sets the logger for the bridge.
func (b *Bridge) SetLogger(logger Logger) {
	b.logger = logger
}

// SetTelemetry sets the telemetry recorder. A nil value disables recording.
func (b *Bridge) SetTelemetry(t Telemetry) {
	b.telemetry = t
}

// SetEventSink sets the sink for live UI events. A nil value disables them.
func (b *Bridge) SetEventSink(sink EventSink) {
	b.events = sink
}

// Start subscribes to the device-facing topics.
//
// Must be called after the MQTT client is connected. The inbound handler
// runs on the paho delivery goroutine; it only takes the store mutex, so
// it cannot stall the transport for longer than one state mutation.
//
// Returns:
//   - error: If the subscription cannot be established
func (b *Bridge) Start() error {
	if err := b.pub.Subscribe(b.topics.ClockZone(), b.qos, b.handleZoneMessage); err != nil {
		return fmt.Errorf("subscribing to %s: %w", b.topics.ClockZone(), err)
	}
	return nil
}

// Alarms returns a snapshot of the alarm list.
func (b *Bridge) Alarms() []clock.Alarm {
	return b.store.Alarms()
}

// Zones returns the ordered timezone registry.
func (b *Bridge) Zones() []clock.Zone {
	return b.store.Registry().Zones()
}

// CurrentZone returns the active zone.
func (b *Bridge) CurrentZone() clock.Zone {
	return b.store.CurrentZone()
}

// CurrentTime returns the wall-clock time in the active zone.
func (b *Bridge) CurrentTime() (string, clock.Zone) {
	return b.store.LocalTime(b.now())
}

// AddAlarm validates and stores a new alarm, then publishes the updated
// alarm list and an immediate clock sync.
//
// The publishes are side effects of a committed state change: if they
// fail the alarm stays stored and the error is only logged.
//
// Returns:
//   - clock.Alarm: The stored alarm
//   - error: clock.ErrInvalidAlarmTime or clock.ErrUnknownZone on bad input
func (b *Bridge) AddAlarm(timeOfDay, zoneName string) (clock.Alarm, error) {
	alarm, err := b.store.AddAlarm(timeOfDay, zoneName)
	if err != nil {
		return clock.Alarm{}, err
	}

	b.logger.Info("alarm added", "time", alarm.Time, "zone", alarm.Zone)
	b.publishAlarmState("add")
	return alarm, nil
}

// DeleteAlarm removes the alarm at the given position, then publishes the
// updated alarm list and an immediate clock sync.
//
// Returns:
//   - error: clock.ErrAlarmNotFound if position is out of bounds
func (b *Bridge) DeleteAlarm(position int) error {
	if err := b.store.DeleteAlarm(position); err != nil {
		return err
	}

	b.logger.Info("alarm deleted", "position", position)
	b.publishAlarmState("delete")
	return nil
}

// CycleZone advances the current zone and publishes the new zone name
// (plain string) to clock/zone.
//
// Returns:
//   - clock.Zone: The new active zone
func (b *Bridge) CycleZone() clock.Zone {
	zone := b.store.CycleZone()

	if err := b.pub.PublishString(b.topics.ClockZone(), zone.Name, b.qos, false); err != nil {
		b.logger.Warn("failed to publish zone change", "zone", zone.Name, "error", err)
	}

	if b.telemetry != nil {
		b.telemetry.WriteZoneChange(zone.Name, "http")
	}
	b.broadcastZone(zone)

	b.logger.Info("zone cycled", "zone", zone.Name)
	return zone
}

// PublishSync publishes the current UTC epoch to clock/sync.
//
// Called by the periodic broadcaster and after every alarm change.
//
// Returns:
//   - error: If the publish fails (callers log and move on)
func (b *Bridge) PublishSync(trigger string) error {
	epoch := b.now().UTC().Unix()

	payload, err := json.Marshal(syncPayload{Epoch: epoch})
	if err != nil {
		return fmt.Errorf("encoding sync payload: %w", err)
	}

	if err := b.pub.Publish(b.topics.ClockSync(), payload, b.qos, false); err != nil {
		return fmt.Errorf("publishing sync: %w", err)
	}

	if b.telemetry != nil {
		b.telemetry.WriteSyncBroadcast(epoch, trigger)
	}
	return nil
}

// syncPayload is the wire format of clock/sync messages.
type syncPayload struct {
	Epoch int64 `json:"epoch"`
}

// publishAlarmState publishes the full alarm list snapshot and a sync,
// records telemetry, and notifies the UI. Best-effort throughout.
func (b *Bridge) publishAlarmState(action string) {
	alarms := b.store.Alarms()

	payload, err := json.Marshal(alarms)
	if err != nil {
		b.logger.Error("failed to encode alarm list", "error", err)
		return
	}

	// Retained so a rebooting device immediately receives the current list.
	if err := b.pub.PublishState(b.topics.ClockAlarms(), payload); err != nil {
		b.logger.Warn("failed to publish alarm list", "error", err)
	}

	if err := b.PublishSync("alarm_change"); err != nil {
		b.logger.Warn("failed to publish sync after alarm change", "error", err)
	}

	if b.telemetry != nil {
		b.telemetry.WriteAlarmCount(len(alarms), action)
	}
	if b.events != nil {
		b.events.Broadcast(EventAlarmsChanged, alarms)
	}
}

// handleZoneMessage applies an inbound zone report from the device.
//
// The payload is the bare zone name. Unknown zones are dropped without
// mutating state or surfacing an error; a debug line is the only trace.
// No acknowledgment is published.
func (b *Bridge) handleZoneMessage(topic string, payload []byte) error {
	name := string(payload)

	if !b.store.Registry().Contains(name) {
		b.logger.Debug("ignoring unknown zone report", "topic", topic, "zone", name)
		return nil
	}

	if !b.store.SetCurrentZone(name) {
		// Already the active zone; happens for our own cycle publishes
		// echoed back by the broker.
		return nil
	}

	b.logger.Info("zone set from device report", "zone", name)
	if b.telemetry != nil {
		b.telemetry.WriteZoneChange(name, "device")
	}
	b.broadcastZone(b.store.CurrentZone())
	return nil
}

// broadcastZone notifies the UI of a zone change.
func (b *Bridge) broadcastZone(zone clock.Zone) {
	if b.events != nil {
		b.events.Broadcast(EventZoneChanged, zone)
	}
}
