package clock

import (
	"fmt"
	"sync"
	"time"
)

// Store holds the current zone and the alarm list.
//
// It is the single shared mutable resource in the system: HTTP handlers,
// the inbound MQTT callback and tests all mutate state through it. Every
// operation takes the store mutex, so concurrent mutations serialise and
// readers always see a consistent snapshot.
//
// The store does not publish anything; the bridge layer pairs mutations
// with outbound messages.
type Store struct {
	mu       sync.Mutex
	registry *Registry
	alarms   []Alarm
	current  int
}

// NewStore creates a Store over the given registry.
// The current zone starts at the registry's first entry.
func NewStore(registry *Registry) *Store {
	return &Store{
		registry: registry,
	}
}

// Registry returns the store's zone registry.
func (s *Store) Registry() *Registry {
	return s.registry
}

// Alarms returns a snapshot of the alarm list in insertion order.
// The returned slice is a copy; callers can safely retain or modify it.
func (s *Store) Alarms() []Alarm {
	s.mu.Lock()
	defer s.mu.Unlock()

	alarms := make([]Alarm, len(s.alarms))
	copy(alarms, s.alarms)
	return alarms
}

// AlarmCount returns the current number of alarms.
func (s *Store) AlarmCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.alarms)
}

// AddAlarm validates and appends a new alarm.
//
// Duplicate (time, zone) pairs are permitted; alarms are identified only
// by position.
//
// Returns:
//   - Alarm: The stored alarm
//   - error: ErrInvalidAlarmTime or ErrUnknownZone on bad input
func (s *Store) AddAlarm(timeOfDay, zoneName string) (Alarm, error) {
	if err := ValidateAlarmTime(timeOfDay); err != nil {
		return Alarm{}, err
	}
	if !s.registry.Contains(zoneName) {
		return Alarm{}, fmt.Errorf("%w: %q", ErrUnknownZone, zoneName)
	}

	alarm := Alarm{Time: timeOfDay, Zone: zoneName}

	s.mu.Lock()
	s.alarms = append(s.alarms, alarm)
	s.mu.Unlock()

	return alarm, nil
}

// DeleteAlarm removes the alarm at the given position.
// Subsequent alarms shift down by one; positions are not stable IDs.
//
// Returns:
//   - error: ErrAlarmNotFound if position is outside the current list
func (s *Store) DeleteAlarm(position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if position < 0 || position >= len(s.alarms) {
		return fmt.Errorf("%w: position %d", ErrAlarmNotFound, position)
	}

	s.alarms = append(s.alarms[:position], s.alarms[position+1:]...)
	return nil
}

// CurrentZone returns the active zone.
func (s *Store) CurrentZone() Zone {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.At(s.current)
}

// SetCurrentZone sets the active zone by name.
//
// Unknown names are ignored without error: the device may report zones
// this deployment does not know about, and those reports are dropped.
//
// Returns:
//   - bool: true if the current zone changed
func (s *Store) SetCurrentZone(name string) bool {
	i, ok := s.registry.IndexOf(name)
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == i {
		return false
	}
	s.current = i
	return true
}

// CycleZone advances the current zone to the next registry entry,
// wrapping at the end. Always succeeds.
//
// Returns:
//   - Zone: The new active zone
func (s *Store) CycleZone() Zone {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = (s.current + 1) % s.registry.Len()
	return s.registry.At(s.current)
}

// LocalTime returns the wall-clock time for the active zone at the given
// instant: UTC plus the zone's fixed offset, formatted HH:MM:SS.
//
// Returns:
//   - string: Formatted local time
//   - Zone: The zone the time was computed for
func (s *Store) LocalTime(now time.Time) (string, Zone) {
	zone := s.CurrentZone()
	local := now.UTC().Add(time.Duration(zone.OffsetSeconds) * time.Second)
	return local.Format("15:04:05"), zone
}
