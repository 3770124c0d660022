package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/westbrae/smartalarm-core/internal/clock"
	"github.com/westbrae/smartalarm-core/internal/infrastructure/mqtt"
)

// fakePublisher records published messages and registered subscriptions.
type fakePublisher struct {
	mu       sync.Mutex
	messages []publishedMessage
	handlers map[string]mqtt.MessageHandler
	// For testing error paths
	publishErr error
}

type publishedMessage struct {
	topic    string
	payload  []byte
	retained bool
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{
		handlers: make(map[string]mqtt.MessageHandler),
	}
}

func (f *fakePublisher) Publish(topic string, payload []byte, _ byte, retained bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return f.publishErr
	}
	f.messages = append(f.messages, publishedMessage{topic: topic, payload: payload, retained: retained})
	return nil
}

func (f *fakePublisher) PublishString(topic string, payload string, qos byte, retained bool) error {
	return f.Publish(topic, []byte(payload), qos, retained)
}

func (f *fakePublisher) PublishState(topic string, payload []byte) error {
	return f.Publish(topic, payload, 1, true)
}

func (f *fakePublisher) Subscribe(topic string, _ byte, handler mqtt.MessageHandler) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[topic] = handler
	return nil
}

func (f *fakePublisher) messagesOn(topic string) []publishedMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []publishedMessage
	for _, m := range f.messages {
		if m.topic == topic {
			out = append(out, m)
		}
	}
	return out
}

// deliver simulates an inbound broker message.
func (f *fakePublisher) deliver(t *testing.T, topic string, payload string) {
	t.Helper()
	f.mu.Lock()
	handler := f.handlers[topic]
	f.mu.Unlock()
	if handler == nil {
		t.Fatalf("no handler registered for %s", topic)
	}
	if err := handler(topic, []byte(payload)); err != nil {
		t.Fatalf("handler(%s) error = %v", topic, err)
	}
}

func newTestBridge(t *testing.T) (*Bridge, *fakePublisher) {
	t.Helper()
	registry, err := clock.NewRegistry([]clock.Zone{
		{Name: "UTC", OffsetSeconds: 0},
		{Name: "CET", OffsetSeconds: 2 * 3600},
		{Name: "Tashkent", OffsetSeconds: 5 * 3600},
		{Name: "EST", OffsetSeconds: -4 * 3600},
	})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	pub := newFakePublisher()
	b := New(clock.NewStore(registry), pub, 1)
	if err := b.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return b, pub
}

func TestAddAlarm_PublishesListAndSync(t *testing.T) {
	b, pub := newTestBridge(t)

	if _, err := b.AddAlarm("07:30", "UTC"); err != nil {
		t.Fatalf("AddAlarm() error = %v", err)
	}

	alarmMsgs := pub.messagesOn("clock/alarms")
	if len(alarmMsgs) != 1 {
		t.Fatalf("clock/alarms messages = %d, want 1", len(alarmMsgs))
	}
	if !alarmMsgs[0].retained {
		t.Error("alarm list snapshot should be retained")
	}

	var alarms []clock.Alarm
	if err := json.Unmarshal(alarmMsgs[0].payload, &alarms); err != nil {
		t.Fatalf("unmarshal alarm list: %v", err)
	}
	if len(alarms) != 1 || alarms[0] != (clock.Alarm{Time: "07:30", Zone: "UTC"}) {
		t.Errorf("published alarms = %+v, want [{07:30 UTC}]", alarms)
	}

	syncMsgs := pub.messagesOn("clock/sync")
	if len(syncMsgs) != 1 {
		t.Fatalf("clock/sync messages = %d, want 1", len(syncMsgs))
	}
	var sync syncPayload
	if err := json.Unmarshal(syncMsgs[0].payload, &sync); err != nil {
		t.Fatalf("unmarshal sync payload: %v", err)
	}
	if sync.Epoch <= 0 {
		t.Errorf("sync epoch = %d, want positive", sync.Epoch)
	}
}

func TestAddAlarm_InvalidInputPublishesNothing(t *testing.T) {
	b, pub := newTestBridge(t)

	if _, err := b.AddAlarm("", "UTC"); !errors.Is(err, clock.ErrInvalidAlarmTime) {
		t.Errorf("AddAlarm() error = %v, want ErrInvalidAlarmTime", err)
	}
	if _, err := b.AddAlarm("07:30", "Mars"); !errors.Is(err, clock.ErrUnknownZone) {
		t.Errorf("AddAlarm() error = %v, want ErrUnknownZone", err)
	}

	if n := len(pub.messagesOn("clock/alarms")); n != 0 {
		t.Errorf("clock/alarms messages = %d after invalid adds, want 0", n)
	}
}

func TestDeleteAlarm_PublishesUpdatedList(t *testing.T) {
	b, pub := newTestBridge(t)
	b.AddAlarm("07:30", "UTC")
	b.AddAlarm("08:00", "CET")

	if err := b.DeleteAlarm(0); err != nil {
		t.Fatalf("DeleteAlarm() error = %v", err)
	}

	alarmMsgs := pub.messagesOn("clock/alarms")
	if len(alarmMsgs) != 3 {
		t.Fatalf("clock/alarms messages = %d, want 3 (two adds, one delete)", len(alarmMsgs))
	}

	var alarms []clock.Alarm
	if err := json.Unmarshal(alarmMsgs[2].payload, &alarms); err != nil {
		t.Fatalf("unmarshal alarm list: %v", err)
	}
	if len(alarms) != 1 || alarms[0] != (clock.Alarm{Time: "08:00", Zone: "CET"}) {
		t.Errorf("published alarms = %+v, want [{08:00 CET}]", alarms)
	}
}

func TestDeleteAlarm_NotFoundPublishesNothing(t *testing.T) {
	b, pub := newTestBridge(t)

	if err := b.DeleteAlarm(0); !errors.Is(err, clock.ErrAlarmNotFound) {
		t.Errorf("DeleteAlarm() error = %v, want ErrAlarmNotFound", err)
	}
	if n := len(pub.messagesOn("clock/alarms")); n != 0 {
		t.Errorf("clock/alarms messages = %d, want 0", n)
	}
}

func TestAddAlarm_PublishFailureKeepsState(t *testing.T) {
	b, pub := newTestBridge(t)
	pub.publishErr = mqtt.ErrNotConnected

	alarm, err := b.AddAlarm("07:30", "UTC")
	if err != nil {
		t.Fatalf("AddAlarm() error = %v, want nil despite publish failure", err)
	}
	if alarm != (clock.Alarm{Time: "07:30", Zone: "UTC"}) {
		t.Errorf("alarm = %+v, want {07:30 UTC}", alarm)
	}

	// State committed even though nothing reached the broker.
	if len(b.Alarms()) != 1 {
		t.Errorf("len(Alarms()) = %d, want 1", len(b.Alarms()))
	}
}

func TestCycleZone_PublishesPlainZoneName(t *testing.T) {
	b, pub := newTestBridge(t)

	zone := b.CycleZone()
	if zone.Name != "CET" {
		t.Errorf("CycleZone() = %q, want CET", zone.Name)
	}

	zoneMsgs := pub.messagesOn("clock/zone")
	if len(zoneMsgs) != 1 {
		t.Fatalf("clock/zone messages = %d, want 1", len(zoneMsgs))
	}
	if got := string(zoneMsgs[0].payload); got != "CET" {
		t.Errorf("clock/zone payload = %q, want plain string CET", got)
	}
	if zoneMsgs[0].retained {
		t.Error("zone change should not be retained")
	}
}

func TestInboundZoneMessage_SetsCurrentZone(t *testing.T) {
	b, pub := newTestBridge(t)

	pub.deliver(t, "clock/zone", "Tashkent")

	if got := b.CurrentZone().Name; got != "Tashkent" {
		t.Errorf("CurrentZone() = %q, want Tashkent", got)
	}

	// No acknowledgment goes back out.
	if n := len(pub.messagesOn("clock/zone")); n != 0 {
		t.Errorf("clock/zone publishes = %d after inbound message, want 0", n)
	}
}

func TestInboundZoneMessage_UnknownZoneIgnored(t *testing.T) {
	b, pub := newTestBridge(t)

	pub.deliver(t, "clock/zone", "Atlantis")

	if got := b.CurrentZone().Name; got != "UTC" {
		t.Errorf("CurrentZone() = %q after unknown report, want UTC", got)
	}
}

func TestInboundZoneMessage_EchoOfOwnCycle(t *testing.T) {
	b, pub := newTestBridge(t)

	zone := b.CycleZone()
	// The broker echoes our own publish back to our subscription.
	pub.deliver(t, "clock/zone", zone.Name)

	if got := b.CurrentZone().Name; got != zone.Name {
		t.Errorf("CurrentZone() = %q after echo, want %q", got, zone.Name)
	}
}

func TestCurrentTime_ReflectsDeviceReportedZone(t *testing.T) {
	b, pub := newTestBridge(t)

	pub.deliver(t, "clock/zone", "Tashkent")

	_, zone := b.CurrentTime()
	if zone.Name != "Tashkent" || zone.OffsetSeconds != 5*3600 {
		t.Errorf("CurrentTime() zone = %+v, want Tashkent UTC+5", zone)
	}
}

func TestConcurrentAdds_AllCommitted(t *testing.T) {
	b, _ := newTestBridge(t)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			timeOfDay := fmt.Sprintf("%02d:%02d", i%24, i%60)
			if _, err := b.AddAlarm(timeOfDay, "CET"); err != nil {
				t.Errorf("AddAlarm() error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	if got := len(b.Alarms()); got != n {
		t.Errorf("len(Alarms()) = %d after %d concurrent adds, want %d", got, n, n)
	}
}
