package clock

import (
	"errors"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry([]Zone{
		{Name: "UTC", OffsetSeconds: 0},
		{Name: "CET", OffsetSeconds: 7200},
	})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	if registry.Len() != 2 {
		t.Errorf("Len() = %d, want 2", registry.Len())
	}
	if got := registry.At(1).Name; got != "CET" {
		t.Errorf("At(1).Name = %q, want CET", got)
	}
	if i, ok := registry.IndexOf("CET"); !ok || i != 1 {
		t.Errorf("IndexOf(CET) = (%d, %v), want (1, true)", i, ok)
	}
	if registry.Contains("EST") {
		t.Error("Contains(EST) = true, want false")
	}
}

func TestNewRegistry_Empty(t *testing.T) {
	_, err := NewRegistry(nil)
	if !errors.Is(err, ErrEmptyRegistry) {
		t.Errorf("NewRegistry(nil) error = %v, want ErrEmptyRegistry", err)
	}
}

func TestNewRegistry_Duplicates(t *testing.T) {
	_, err := NewRegistry([]Zone{
		{Name: "UTC"},
		{Name: "UTC"},
	})
	if !errors.Is(err, ErrDuplicateZone) {
		t.Errorf("NewRegistry() error = %v, want ErrDuplicateZone", err)
	}
}

func TestNewRegistry_UnnamedZone(t *testing.T) {
	_, err := NewRegistry([]Zone{{Name: ""}})
	if !errors.Is(err, ErrInvalidZone) {
		t.Errorf("NewRegistry() error = %v, want ErrInvalidZone", err)
	}
}

func TestRegistry_Immutable(t *testing.T) {
	input := []Zone{{Name: "UTC"}, {Name: "CET"}}
	registry, err := NewRegistry(input)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	// Mutating the input slice or a returned copy must not affect the registry.
	input[0].Name = "mutated"
	zones := registry.Zones()
	zones[1].Name = "also mutated"

	if got := registry.At(0).Name; got != "UTC" {
		t.Errorf("At(0).Name = %q after input mutation, want UTC", got)
	}
	if got := registry.At(1).Name; got != "CET" {
		t.Errorf("At(1).Name = %q after copy mutation, want CET", got)
	}
}

func TestValidateAlarmTime(t *testing.T) {
	valid := []string{"00:00", "07:30", "23:59", "7:30", "12:5"}
	for _, s := range valid {
		t.Run("valid "+s, func(t *testing.T) {
			if err := ValidateAlarmTime(s); err != nil {
				t.Errorf("ValidateAlarmTime(%q) error = %v, want nil", s, err)
			}
		})
	}

	invalid := []string{"", "24:00", "12:60", "-1:00", "12", "12:00:00", "ab:cd", "12:", ":30"}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			if err := ValidateAlarmTime(s); !errors.Is(err, ErrInvalidAlarmTime) {
				t.Errorf("ValidateAlarmTime(%q) error = %v, want ErrInvalidAlarmTime", s, err)
			}
		})
	}
}
