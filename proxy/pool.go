package proxy

import (
	"errors"
	"sync"
)

// ErrNoHealthyBackend is returned by Pool.Select when no backend is
// Healthy or Unknown (Degraded and Unhealthy backends are not
// selected), including when the pool is empty.
var ErrNoHealthyBackend = errors.New("proxy: no healthy backend available")

// Backend is one pooled UPF endpoint: its configured identity plus the
// mutable health/load state the pool tracks for it.
type Backend struct {
	Address     string
	Weight      int
	Zone        string
	MaxSessions int

	health       healthTracker
	sessionCount int

	// Per-backend message counters. Nothing in this package increments
	// them; per-backend message counts are recorded only in the
	// pfcp_proxy_messages_total metric (stats.go).
	MessagesIn  uint64
	MessagesOut uint64
}

// State returns the backend's current health state.
func (b *Backend) State() HealthState { return b.health.state }

// SessionCount returns the number of sessions currently mapped to this
// backend (for the least_sessions strategy and for /metrics).
func (b *Backend) SessionCount() int { return b.sessionCount }

// Pool is the ordered backend set plus selection logic. Per spec.md
// §5, backend state is read far more often than written, so Pool uses
// a single RWMutex rather than the session table's sharded-map
// approach (backend counts are in the tens, not the hundreds of
// thousands of sessions a real deployment's SEID table holds).
type Pool struct {
	mu       sync.RWMutex
	backends []*Backend
	rrCursor int
}

// NewPool builds a Pool from the configured backend list, every
// backend starting Unknown until its first heartbeat resolves.
func NewPool(cfgs []BackendConfig) *Pool {
	p := &Pool{backends: make([]*Backend, 0, len(cfgs))}
	for _, c := range cfgs {
		p.backends = append(p.backends, &Backend{
			Address:     c.Address,
			Weight:      c.Weight,
			Zone:        c.Zone,
			MaxSessions: c.MaxSessions,
		})
	}
	return p
}

// All returns a snapshot slice of every backend, for broadcast and for
// health-monitoring sweeps.
func (p *Pool) All() []*Backend {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]*Backend, len(p.backends))
	copy(out, p.backends)
	return out
}

// Get returns the backend with the given address, or nil.
func (p *Pool) Get(address string) *Backend {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, b := range p.backends {
		if b.Address == address {
			return b
		}
	}
	return nil
}

// Select picks a backend for a new session per the configured
// strategy. round_robin and least_sessions are fully implemented;
// weighted, geographic, and qos_based are validated by Config but
// currently select via round_robin — see DESIGN.md for the Open
// Question this resolves (a host-side policy extension point, not
// yet a core routing concern).
func (p *Pool) Select(strategy Strategy) (*Backend, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	healthy := make([]*Backend, 0, len(p.backends))
	for _, b := range p.backends {
		if b.health.state == Healthy || b.health.state == Unknown {
			healthy = append(healthy, b)
		}
	}
	if len(healthy) == 0 {
		return nil, ErrNoHealthyBackend
	}

	if strategy == StrategyLeastSessions {
		best := healthy[0]
		for _, b := range healthy[1:] {
			if b.sessionCount < best.sessionCount {
				best = b
			}
		}
		best.sessionCount++
		return best, nil
	}

	// round_robin, and the fallback for weighted/geographic/qos_based.
	_ = strategy.implemented() // documents the fallback; see doc comment above
	b := healthy[p.rrCursor%len(healthy)]
	p.rrCursor++
	b.sessionCount++
	return b, nil
}

// Release decrements a backend's session count when a session mapped
// to it is deleted or expires.
func (p *Pool) Release(address string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, b := range p.backends {
		if b.Address == address && b.sessionCount > 0 {
			b.sessionCount--
			return
		}
	}
}

// RecordHeartbeatSuccess transitions a backend toward Healthy.
func (p *Pool) RecordHeartbeatSuccess(address string, recoveryThreshold int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, b := range p.backends {
		if b.Address == address {
			b.health.recordSuccess(recoveryThreshold)
			return
		}
	}
}

// RecordHeartbeatFailure transitions a backend toward Unhealthy.
func (p *Pool) RecordHeartbeatFailure(address string, failureThreshold int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, b := range p.backends {
		if b.Address == address {
			b.health.recordFailure(failureThreshold)
			return
		}
	}
}
