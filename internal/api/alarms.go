package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/westbrae/smartalarm-core/internal/clock"
)

// addAlarmRequest is the JSON body for POST /api/v1/alarms.
type addAlarmRequest struct {
	Time string `json:"time"`
	Zone string `json:"zone"`
}

// handleListAlarms returns the current alarm list in insertion order.
// Positions in this list are the identifiers used for deletion.
func (s *Server) handleListAlarms(w http.ResponseWriter, _ *http.Request) {
	alarms := s.bridge.Alarms()
	writeJSON(w, http.StatusOK, map[string]any{
		"alarms": alarms,
		"count":  len(alarms),
	})
}

// handleAddAlarm creates a new alarm and publishes updated state to the device.
func (s *Server) handleAddAlarm(w http.ResponseWriter, r *http.Request) {
	var req addAlarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	alarm, err := s.bridge.AddAlarm(req.Time, req.Zone)
	if err != nil {
		if errors.Is(err, clock.ErrInvalidAlarmTime) || errors.Is(err, clock.ErrUnknownZone) {
			writeBadRequest(w, "invalid input")
			return
		}
		writeInternalError(w, "failed to add alarm")
		return
	}

	writeJSON(w, http.StatusCreated, alarm)
}

// handleDeleteAlarm deletes the alarm at the given position.
// Later alarms shift down by one, so positions are only valid until the
// next mutation.
func (s *Server) handleDeleteAlarm(w http.ResponseWriter, r *http.Request) {
	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		writeBadRequest(w, "position must be an integer")
		return
	}

	if err := s.bridge.DeleteAlarm(position); err != nil {
		if errors.Is(err, clock.ErrAlarmNotFound) {
			writeNotFound(w, "alarm not found")
			return
		}
		writeInternalError(w, "failed to delete alarm")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
