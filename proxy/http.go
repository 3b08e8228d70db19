package proxy

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHandler builds a mountable chi sub-router exposing /healthz and
// /metrics, following the teacher's admin-server route/middleware
// layout (nf/upf/internal/server/server.go) with one difference: the
// proxy never calls ListenAndServe itself. The host embeds this
// handler in its own listener (per SPEC_FULL.md §3, the proxy core
// owns routing, not sockets).
func (p *Proxy) NewHandler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))

	r.Get("/healthz", p.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

type backendStatus struct {
	Address      string `json:"address"`
	Zone         string `json:"zone"`
	State        string `json:"state"`
	SessionCount int    `json:"session_count"`
}

// handleHealthz reports per-backend health plus the proxy's own
// session-table size, for the host's liveness/readiness probes.
func (p *Proxy) handleHealthz(w http.ResponseWriter, r *http.Request) {
	backends := p.pool.All()
	statuses := make([]backendStatus, 0, len(backends))
	anyHealthy := false
	for _, b := range backends {
		if b.State() == Healthy || b.State() == Degraded {
			anyHealthy = true
		}
		statuses = append(statuses, backendStatus{
			Address:      b.Address,
			Zone:         b.Zone,
			State:        b.State().String(),
			SessionCount: b.SessionCount(),
		})
	}

	status := http.StatusOK
	if !anyHealthy {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"backends":        statuses,
		"sessions_active": p.sessions.Len(),
	})
}
