package proxy

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Global counters and the routing-decision/latency breakdowns named in
// spec.md §4.8, following the teacher's common/metrics package style
// (promauto package vars, a small record* wrapper per metric family).
var (
	messagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pfcp_proxy_messages_total",
			Help: "Total PFCP messages seen by the proxy, by direction and backend.",
		},
		[]string{"direction", "backend"},
	)

	sessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pfcp_proxy_sessions_total",
			Help: "Total session lifecycle events, by kind (established/deleted).",
		},
		[]string{"kind"},
	)

	sessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pfcp_proxy_sessions_active",
			Help: "Sessions currently tracked in the affinity table.",
		},
	)

	routingDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pfcp_proxy_routing_decisions_total",
			Help: "Routing decisions by kind (affinity, load_balance, broadcast).",
		},
		[]string{"kind"},
	)

	backendLatencyBucket = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pfcp_proxy_backend_latency_bucket_total",
			Help: "Backend response latency, bucketed per spec.md §4.8 (0-10/10-50/50-100/100-500/500+ ms).",
		},
		[]string{"bucket"},
	)

	backendHealthState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pfcp_proxy_backend_health_state",
			Help: "Current backend health state (0=unknown,1=healthy,2=degraded,3=unhealthy).",
		},
		[]string{"backend"},
	)
)

// latencyBucketLabels are the bucket boundaries from spec.md §4.8, upper
// bound exclusive except the final catch-all.
var latencyBucketLabels = []struct {
	max   time.Duration
	label string
}{
	{10 * time.Millisecond, "0-10ms"},
	{50 * time.Millisecond, "10-50ms"},
	{100 * time.Millisecond, "50-100ms"},
	{500 * time.Millisecond, "100-500ms"},
	{0, "500ms+"}, // max=0 sentinel: matches anything not yet bucketed
}

// observeLatency increments the counter for d's bucket.
func observeLatency(d time.Duration) {
	for _, b := range latencyBucketLabels {
		if b.max == 0 || d < b.max {
			backendLatencyBucket.WithLabelValues(b.label).Inc()
			return
		}
	}
}

// recordMessageIn/Out count a message crossing the proxy in the named
// direction, attributed to a peer address: the backend for traffic to
// or from a backend (each copy of a broadcast counts once per backend),
// the client for a response relayed back to it, and empty for a
// message received from a client.
func recordMessageIn(backend string)  { messagesTotal.WithLabelValues("in", backend).Inc() }
func recordMessageOut(backend string) { messagesTotal.WithLabelValues("out", backend).Inc() }

func recordSessionEstablished() { sessionsTotal.WithLabelValues("established").Inc() }
func recordSessionDeleted()     { sessionsTotal.WithLabelValues("deleted").Inc() }

func recordRoutingDecision(kind string) { routingDecisionsTotal.WithLabelValues(kind).Inc() }

func setBackendHealthGauge(backend string, state HealthState) {
	backendHealthState.WithLabelValues(backend).Set(float64(state))
}

// Stats is a point-in-time snapshot for the /metrics JSON-adjacent
// handler and for tests; the atomic fields back cheap reads without
// touching the session table's locks.
type Stats struct {
	sessionsActive int64
}

func (s *Stats) setSessionsActive(n int) {
	atomic.StoreInt64(&s.sessionsActive, int64(n))
	sessionsActive.Set(float64(n))
}

// SessionsActive returns the last-recorded active session count.
func (s *Stats) SessionsActive() int64 { return atomic.LoadInt64(&s.sessionsActive) }
