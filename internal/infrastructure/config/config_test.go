package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	content := `
service:
  id: "test-core"
mqtt:
  broker:
    host: "broker.local"
    port: 1883
    client_id: "test-client"
  qos: 1
api:
  host: "0.0.0.0"
  port: 9090
clock:
  zones:
    - name: "UTC"
      offset_seconds: 0
    - name: "CET"
      offset_seconds: 7200
  sync_interval_minutes: 5
`
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Service.ID != "test-core" {
		t.Errorf("Service.ID = %q, want %q", cfg.Service.ID, "test-core")
	}
	if cfg.MQTT.Broker.Host != "broker.local" {
		t.Errorf("MQTT.Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "broker.local")
	}
	if cfg.API.Port != 9090 {
		t.Errorf("API.Port = %d, want 9090", cfg.API.Port)
	}
	if len(cfg.Clock.Zones) != 2 {
		t.Fatalf("len(Clock.Zones) = %d, want 2", len(cfg.Clock.Zones))
	}
	if cfg.Clock.Zones[1].OffsetSeconds != 7200 {
		t.Errorf("Clock.Zones[1].OffsetSeconds = %d, want 7200", cfg.Clock.Zones[1].OffsetSeconds)
	}
	if got := cfg.GetSyncInterval(); got != 5*time.Minute {
		t.Errorf("GetSyncInterval() = %v, want 5m", got)
	}
	if got := cfg.API.GetReadTimeout(); got != 30*time.Second {
		t.Errorf("API.GetReadTimeout() = %v, want 30s (default)", got)
	}
	if got := cfg.API.GetIdleTimeout(); got != 60*time.Second {
		t.Errorf("API.GetIdleTimeout() = %v, want 60s (default)", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "invalid: [yaml: content"))
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_DuplicateZoneNames(t *testing.T) {
	content := `
clock:
  zones:
    - name: "UTC"
      offset_seconds: 0
    - name: "UTC"
      offset_seconds: 3600
`
	_, err := Load(writeConfig(t, content))
	if err == nil {
		t.Fatal("Load() expected error for duplicate zone names, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate zone name") {
		t.Errorf("Load() error = %v, want duplicate zone name message", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SMARTALARM_MQTT_HOST", "env-broker")
	t.Setenv("SMARTALARM_API_PORT", "9999")

	content := `
mqtt:
  broker:
    host: "file-broker"
api:
  port: 8080
`
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MQTT.Broker.Host != "env-broker" {
		t.Errorf("MQTT.Broker.Host = %q, want env override %q", cfg.MQTT.Broker.Host, "env-broker")
	}
	if cfg.API.Port != 9999 {
		t.Errorf("API.Port = %d, want env override 9999", cfg.API.Port)
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}

	// Default registry matches the device firmware's zone table.
	wantZones := []string{"UTC", "CET", "Tashkent", "EST"}
	if len(cfg.Clock.Zones) != len(wantZones) {
		t.Fatalf("len(Clock.Zones) = %d, want %d", len(cfg.Clock.Zones), len(wantZones))
	}
	for i, name := range wantZones {
		if cfg.Clock.Zones[i].Name != name {
			t.Errorf("Clock.Zones[%d].Name = %q, want %q", i, cfg.Clock.Zones[i].Name, name)
		}
	}
}

func TestValidate_BadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty service id", func(c *Config) { c.Service.ID = "" }},
		{"qos out of range", func(c *Config) { c.MQTT.QoS = 3 }},
		{"port out of range", func(c *Config) { c.API.Port = 0 }},
		{"no zones", func(c *Config) { c.Clock.Zones = nil }},
		{"relative websocket path", func(c *Config) { c.WebSocket.Path = "ws" }},
		{"zero sync interval", func(c *Config) { c.Clock.SyncIntervalMinutes = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() expected error, got nil")
			}
		})
	}
}
