package web

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/cvasseur/astrowheel/internal/chart"
	"github.com/cvasseur/astrowheel/internal/config"
	"github.com/cvasseur/astrowheel/internal/logic/compose"
	"github.com/cvasseur/astrowheel/internal/render/svg"
)

// RenderRequest is the POST /render body: one chart, optionally a
// second for synastry overlay.
type RenderRequest struct {
	Primary *chart.Dataset `json:"primary"`
	Overlay *chart.Dataset `json:"overlay,omitempty"`
}

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	Broadcaster *StatusBroadcaster
	Composer    *compose.Composer
	Renderer    *svg.Renderer
	Defaults    config.Config

	mu       sync.RWMutex
	lastSVG  string
	staticFS fs.FS
}

// NewHandlers creates handlers with the given dependencies.
func NewHandlers(broadcaster *StatusBroadcaster, composer *compose.Composer, renderer *svg.Renderer, defaults config.Config, staticFS fs.FS) *Handlers {
	return &Handlers{
		Broadcaster: broadcaster,
		Composer:    composer,
		Renderer:    renderer,
		Defaults:    defaults,
		staticFS:    staticFS,
	}
}

// HandleConfig returns the effective engine configuration as JSON.
func (h *Handlers) HandleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"wheel":   h.Defaults.Wheel,
		"solver":  h.Defaults.Solver,
		"aspects": h.Defaults.Aspects,
	})
}

// ServeIndex serves the main HTML page (root path only).
func (h *Handlers) ServeIndex(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(h.staticFS, "index.html")
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// HandleRender handles POST /render: compose the wheel for the posted
// dataset(s), keep the drawn SVG for GET /chart.svg, and return the
// render plan as JSON.
func (h *Handlers) HandleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Primary == nil {
		http.Error(w, "primary chart is required", http.StatusBadRequest)
		return
	}

	req.Primary.Normalize()
	if req.Overlay != nil {
		req.Overlay.Normalize()
	}

	plan, err := h.Composer.Compose(req.Primary, req.Overlay)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	h.lastSVG = h.Renderer.Render(plan)
	h.mu.Unlock()

	h.Broadcaster.Broadcast("info", fmt.Sprintf(
		"Rendered wheel: %d bodies, %d natal aspects, %d synastry aspects",
		len(plan.Primary.Bodies), len(plan.NatalAspects), len(plan.SynastryAspects)))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}

// HandleChartSVG serves the most recently rendered wheel.
func (h *Handlers) HandleChartSVG(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	doc := h.lastSVG
	h.mu.RUnlock()

	if doc == "" {
		http.Error(w, "no chart rendered yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(doc))
}

// SetSVG replaces the served chart, used by watch mode when a dataset
// file changes outside an HTTP request.
func (h *Handlers) SetSVG(doc string) {
	h.mu.Lock()
	h.lastSVG = doc
	h.mu.Unlock()
}

// HandleStatusStream handles GET /status/stream for SSE.
func (h *Handlers) HandleStatusStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // nginx

	ch, unsub := h.Broadcaster.Subscribe()
	defer unsub()

	// Send initial comment to establish connection
	w.Write([]byte(": connected\n\n"))
	flusher.Flush()

	// Heartbeat while idle
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			w.Write([]byte("data: " + msg + "\n\n"))
			flusher.Flush()

		case <-ticker.C:
			w.Write([]byte(": heartbeat\n\n"))
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
