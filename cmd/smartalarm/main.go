// SmartAlarm Core - ESP32 alarm clock bridge
//
// This is the main entry point for the SmartAlarm Core service. It bridges
// a web control panel and an ESP32 alarm clock over an MQTT broker:
//   - Holds the in-memory alarm list and active timezone
//   - Publishes clock sync, zone and alarm-list updates to the device
//   - Serves the REST API and embedded web UI for the control panel
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/westbrae/smartalarm-core/internal/api"
	"github.com/westbrae/smartalarm-core/internal/bridge"
	"github.com/westbrae/smartalarm-core/internal/clock"
	"github.com/westbrae/smartalarm-core/internal/infrastructure/config"
	"github.com/westbrae/smartalarm-core/internal/infrastructure/influxdb"
	"github.com/westbrae/smartalarm-core/internal/infrastructure/logging"
	"github.com/westbrae/smartalarm-core/internal/infrastructure/mqtt"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting SmartAlarm Core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Build the timezone registry and state store
	registry, err := clock.NewRegistry(zonesFromConfig(cfg.Clock.Zones))
	if err != nil {
		return fmt.Errorf("building timezone registry: %w", err)
	}
	store := clock.NewStore(registry)
	log.Info("timezone registry loaded",
		"zones", registry.Len(),
		"current", store.CurrentZone().Name,
	)

	// Connect to MQTT broker
	mqttClient, err := mqtt.Connect(cfg.MQTT)
	if err != nil {
		return fmt.Errorf("connecting to MQTT: %w", err)
	}
	defer func() {
		log.Info("disconnecting from MQTT")
		if closeErr := mqttClient.Close(); closeErr != nil {
			log.Error("error closing MQTT", "error", closeErr)
		}
	}()
	log.Info("MQTT connected",
		"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
		"client_id", cfg.MQTT.Broker.ClientID,
	)

	mqttClient.SetLogger(log)
	mqttClient.SetOnConnect(func() {
		log.Info("MQTT reconnected")
	})
	mqttClient.SetOnDisconnect(func(err error) {
		log.Warn("MQTT disconnected", "error", err)
	})

	// Connect to InfluxDB (optional)
	influxClient, err := influxdb.Connect(cfg.InfluxDB)
	switch {
	case errors.Is(err, influxdb.ErrDisabled):
		influxClient = nil
		log.Info("InfluxDB disabled")
	case err != nil:
		return fmt.Errorf("connecting to InfluxDB: %w", err)
	default:
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"bucket", cfg.InfluxDB.Bucket,
		)
	}

	// Create the bridge over the store and broker
	br := bridge.New(store, mqttClient, byte(cfg.MQTT.QoS))
	br.SetLogger(log)
	if influxClient != nil {
		br.SetTelemetry(influxClient)
	}

	// Create the API server and wire its WebSocket hub as the bridge's
	// event sink, so state changes reach the UI live
	server, err := api.New(api.Deps{
		Config:  cfg.API,
		WS:      cfg.WebSocket,
		Logger:  log,
		Bridge:  br,
		Version: version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	br.SetEventSink(server.Hub())

	// Subscribe to device-facing topics
	if err := br.Start(); err != nil {
		return fmt.Errorf("starting bridge: %w", err)
	}
	log.Info("bridge started", "subscriptions", mqttClient.SubscriptionCount())

	// Start the periodic clock sync broadcaster
	broadcaster := bridge.NewBroadcaster(br, cfg.GetSyncInterval())
	broadcaster.SetLogger(log)
	broadcaster.Start(ctx)
	defer func() {
		log.Info("stopping sync broadcaster")
		broadcaster.Close()
	}()
	log.Info("sync broadcaster started", "interval", cfg.GetSyncInterval())

	// Start the HTTP API server
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		log.Info("stopping API server")
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()
	log.Info("API server started",
		"address", fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port),
	)

	// Verify all connections are healthy
	if err := healthCheck(ctx, mqttClient, influxClient, server); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	log.Info("initialisation complete, waiting for shutdown signal")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")

	// Deferred Close() calls run in reverse order:
	// 1. API server
	// 2. Sync broadcaster
	// 3. InfluxDB (if enabled)
	// 4. MQTT

	log.Info("SmartAlarm Core stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses SMARTALARM_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("SMARTALARM_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// zonesFromConfig converts configured zones into registry entries.
func zonesFromConfig(zones []config.ZoneConfig) []clock.Zone {
	out := make([]clock.Zone, 0, len(zones))
	for _, z := range zones {
		out = append(out, clock.Zone{
			Name:          z.Name,
			OffsetSeconds: z.OffsetSeconds,
		})
	}
	return out
}

// healthCheck verifies all infrastructure connections are healthy.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - mqttClient: MQTT client to check
//   - influxClient: InfluxDB client to check (may be nil if disabled)
//   - server: API server to check
//
// Returns:
//   - error: First health check failure, or nil if all healthy
func healthCheck(ctx context.Context, mqttClient *mqtt.Client, influxClient *influxdb.Client, server *api.Server) error {
	if err := mqttClient.HealthCheck(ctx); err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}

	if influxClient != nil {
		if err := influxClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("influxdb: %w", err)
		}
	}

	if err := server.HealthCheck(ctx); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	return nil
}
