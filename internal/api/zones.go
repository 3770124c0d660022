package api

import (
	"net/http"
)

// handleListZones returns the timezone registry and the active zone.
func (s *Server) handleListZones(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"zones":   s.bridge.Zones(),
		"current": s.bridge.CurrentZone().Name,
	})
}

// handleGetZone returns the active zone.
func (s *Server) handleGetZone(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.bridge.CurrentZone())
}

// handleCycleZone advances the active zone to the next registry entry
// and publishes the change to the device.
func (s *Server) handleCycleZone(w http.ResponseWriter, _ *http.Request) {
	zone := s.bridge.CycleZone()
	writeJSON(w, http.StatusOK, map[string]any{
		"zone": zone.Name,
	})
}

// handleGetTime returns the wall-clock time in the active zone:
// UTC now plus the zone's fixed offset.
func (s *Server) handleGetTime(w http.ResponseWriter, _ *http.Request) {
	localTime, zone := s.bridge.CurrentTime()
	writeJSON(w, http.StatusOK, map[string]any{
		"time": localTime,
		"zone": zone.Name,
	})
}
