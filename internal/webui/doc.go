// Package webui serves the alarm clock control panel as an embedded asset.
//
// The panel is a single HTML page embedded into the Go binary with the
// go:embed directive, so the server has no runtime dependency on external
// files. It talks to the /api/v1 endpoints for state and subscribes to
// the /api/v1/ws WebSocket for live updates, falling back to polling
// when the socket is unavailable.
package webui
