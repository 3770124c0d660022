package influxdb

import (
	"context"
	"errors"
	"testing"

	"github.com/westbrae/smartalarm-core/internal/infrastructure/config"
)

func TestConnect_Disabled(t *testing.T) {
	cfg := config.InfluxDBConfig{Enabled: false}

	_, err := Connect(cfg)
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Connect() error = %v, want ErrDisabled", err)
	}
}

func TestHealthCheck_NotConnected(t *testing.T) {
	client := &Client{}

	err := client.HealthCheck(context.Background())
	if !errors.Is(err, ErrNotConnected) {
		t.Errorf("HealthCheck() error = %v, want ErrNotConnected", err)
	}
}

func TestCloseNil(t *testing.T) {
	client := &Client{}
	if err := client.Close(); err != nil {
		t.Errorf("Close() on unconnected client error = %v, want nil", err)
	}
}

func TestWrites_NoopWhenDisconnected(t *testing.T) {
	// Write helpers must be safe no-ops without a connection: telemetry
	// is optional and the bridge calls these unconditionally.
	client := &Client{}

	client.WriteSyncBroadcast(1700000000, "interval")
	client.WriteZoneChange("UTC", "http")
	client.WriteAlarmCount(3, "add")
	client.Flush()
}
