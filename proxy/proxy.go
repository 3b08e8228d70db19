// Package proxy implements the PFCP session-affinity router described
// in spec.md §4.8: a load balancer that speaks just enough of the
// protocol to route by SEID, without owning a transport or a UDP
// socket. It is grounded on the teacher's nf/upf/internal/pfcp/server.go
// message loop (parse header, switch on type, build and send a
// response) generalized from a single-UPF responder into a
// many-backend router, and on nf/smf/internal/n4/pfcp.go's client-side
// request/response correlation by sequence number.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/your-org/pfcp-core/pfcp/header"
	"github.com/your-org/pfcp-core/pfcp/ie"
	"github.com/your-org/pfcp-core/pfcp/message"
)

// ErrSessionNotFound is returned by OnDatagram when a session-scoped
// message (other than Session Establishment Request) names a SEID the
// affinity table has no mapping for.
var ErrSessionNotFound = errors.New("proxy: session not found")

// Datagram is one outbound send the proxy asks its transport host to
// perform, per the `Vec<(addr, bytes)>` return shape in spec.md §6.
type Datagram struct {
	Addr string
	Data []byte
}

// noSEIDBroadcastTypes are message types with no SEID that this proxy
// fans out to every backend, per spec.md §4.8 ("broadcast or single
// target per policy" for Association/PFD/Node-Report — this module's
// policy decision, recorded in DESIGN.md, is broadcast for all of
// them, matching Heartbeat).
var noSEIDBroadcastTypes = map[uint8]bool{
	message.TypeHeartbeatRequest:          true,
	message.TypeAssociationSetupRequest:   true,
	message.TypeAssociationUpdateRequest:  true,
	message.TypeAssociationReleaseRequest: true,
	message.TypePFDManagementRequest:      true,
	message.TypeNodeReportRequest:         true,
}

type pendingKey struct {
	backend string
	seq     uint32
}

type pendingRequest struct {
	clientAddr  string
	messageType uint8
	sentAt      time.Time
	isHeartbeat bool
}

// Proxy is the session-affinity router. Construct with New and drive
// it with OnDatagram / OnBackendResponse / OnTick from a host-owned
// transport loop; Proxy itself never touches a socket (spec.md §1
// Non-goals: "no UDP socket ownership by the codec packages" extends
// here to the routing core too).
type Proxy struct {
	cfg      *Config
	pool     *Pool
	sessions *SessionTable
	logger   *zap.Logger
	tracer   trace.Tracer
	stats    Stats

	pendingMu sync.Mutex
	pending   map[pendingKey]*pendingRequest

	seqMu   sync.Mutex
	nextSeq uint32

	lastHealthCheck time.Time
}

// New constructs a Proxy from cfg. logger and tracer follow the
// teacher's pattern of accepting pre-built zap/otel instances rather
// than owning their configuration (exporter wiring is the host's
// concern, per SPEC_FULL.md §3).
func New(cfg *Config, logger *zap.Logger, tracer trace.Tracer) *Proxy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Proxy{
		cfg:      cfg,
		pool:     NewPool(cfg.Backends),
		sessions: NewSessionTable(),
		logger:   logger,
		tracer:   tracer,
		pending:  make(map[pendingKey]*pendingRequest),
	}
}

// Pool exposes the backend pool for read-only inspection (health,
// /metrics, /healthz).
func (p *Proxy) Pool() *Pool { return p.pool }

// Sessions exposes the session affinity table for read-only inspection.
func (p *Proxy) Sessions() *SessionTable { return p.sessions }

func (p *Proxy) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if p.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return p.tracer.Start(ctx, name)
}

// OnDatagram decides routing for a datagram received from a client
// (the SMF side of N4), per spec.md §6's on_datagram operation.
func (p *Proxy) OnDatagram(ctx context.Context, srcAddr string, data []byte) ([]Datagram, error) {
	ctx, span := p.startSpan(ctx, "pfcp.proxy.route")
	defer span.End()

	correlationID := uuid.New()
	log := p.logger.With(zap.String("correlation_id", correlationID.String()), zap.String("src", srcAddr))

	h, _, err := header.Parse(data)
	if err != nil {
		log.Warn("dropping undecodable datagram", zap.Error(err))
		return nil, err
	}
	recordMessageIn("")

	if !h.SEIDPresent {
		if noSEIDBroadcastTypes[h.MessageType] {
			recordRoutingDecision("broadcast")
			return p.broadcast(srcAddr, h, data), nil
		}
		log.Warn("unroutable node-scoped message type", zap.Uint8("type", h.MessageType))
		return nil, fmt.Errorf("proxy: unroutable message type %d", h.MessageType)
	}

	if h.MessageType == message.TypeSessionEstablishmentRequest {
		backend, err := p.pool.Select(p.cfg.Strategy)
		if err != nil {
			return nil, err
		}
		recordRoutingDecision("load_balance")
		p.trackPending(backend.Address, h.SequenceNumber, srcAddr, h.MessageType, false)
		recordMessageOut(backend.Address)
		return []Datagram{{Addr: backend.Address, Data: data}}, nil
	}

	backendAddr, ok := p.sessions.Lookup(h.SEID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	recordRoutingDecision("affinity")
	p.trackPending(backendAddr, h.SequenceNumber, srcAddr, h.MessageType, false)
	recordMessageOut(backendAddr)
	return []Datagram{{Addr: backendAddr, Data: data}}, nil
}

func (p *Proxy) broadcast(srcAddr string, h *header.Header, data []byte) []Datagram {
	backends := p.pool.All()
	out := make([]Datagram, 0, len(backends))
	for _, b := range backends {
		p.trackPending(b.Address, h.SequenceNumber, srcAddr, h.MessageType, false)
		recordMessageOut(b.Address)
		out = append(out, Datagram{Addr: b.Address, Data: data})
	}
	return out
}

func (p *Proxy) trackPending(backendAddr string, seq uint32, clientAddr string, msgType uint8, isHeartbeat bool) {
	p.pendingMu.Lock()
	defer p.pendingMu.Unlock()
	p.pending[pendingKey{backend: backendAddr, seq: seq}] = &pendingRequest{
		clientAddr:  clientAddr,
		messageType: msgType,
		sentAt:      time.Now(),
		isHeartbeat: isHeartbeat,
	}
}

// OnBackendResponse associates a backend's response with its
// originating client, per spec.md §6's on_backend_response operation.
// It also drives session-table and health-state updates: an accepted
// Session Establishment Response installs the SEID mapping, and a
// Session Deletion Response removes it.
func (p *Proxy) OnBackendResponse(ctx context.Context, backendAddr string, data []byte) ([]Datagram, error) {
	ctx, span := p.startSpan(ctx, "pfcp.proxy.route")
	defer span.End()

	h, _, err := header.Parse(data)
	if err != nil {
		p.logger.Warn("dropping undecodable backend response", zap.String("backend", backendAddr), zap.Error(err))
		return nil, err
	}
	recordMessageIn(backendAddr)

	key := pendingKey{backend: backendAddr, seq: h.SequenceNumber}
	p.pendingMu.Lock()
	req, ok := p.pending[key]
	if ok {
		delete(p.pending, key)
	}
	p.pendingMu.Unlock()

	if !ok {
		p.logger.Warn("unmatched backend response", zap.String("backend", backendAddr), zap.Uint32("seq", h.SequenceNumber))
		return nil, nil
	}
	observeLatency(time.Since(req.sentAt))

	if req.isHeartbeat {
		p.pool.RecordHeartbeatSuccess(backendAddr, p.cfg.RecoveryThreshold)
		if b := p.pool.Get(backendAddr); b != nil {
			setBackendHealthGauge(backendAddr, b.State())
		}
		return nil, nil
	}

	switch h.MessageType {
	case message.TypeSessionEstablishmentResponse:
		p.handleEstablishmentResponse(backendAddr, data)
	case message.TypeSessionDeletionResponse:
		if addr, ok := p.sessions.Delete(h.SEID); ok {
			p.pool.Release(addr)
			recordSessionDeleted()
			p.stats.setSessionsActive(p.sessions.Len())
		}
	}

	recordMessageOut(req.clientAddr)
	return []Datagram{{Addr: req.clientAddr, Data: data}}, nil
}

func (p *Proxy) handleEstablishmentResponse(backendAddr string, data []byte) {
	decoded, err := message.Parse(data)
	if err != nil {
		p.logger.Warn("malformed session establishment response", zap.Error(err))
		return
	}
	resp, ok := decoded.Message.(*message.SessionEstablishmentResponse)
	if !ok || resp.Cause != ie.CauseRequestAccepted || resp.FSEID == nil {
		return
	}
	p.sessions.Insert(resp.FSEID.SEID, backendAddr, "")
	recordSessionEstablished()
	p.stats.setSessionsActive(p.sessions.Len())
}

// OnTick emits periodic heartbeats and runs health/session
// housekeeping, per spec.md §6's on_tick operation. It should be
// called on a regular cadence shorter than HealthCheckInterval by the
// host's own timer.
func (p *Proxy) OnTick(ctx context.Context) ([]Datagram, error) {
	now := time.Now()
	p.expireHeartbeatTimeouts(now)
	p.releaseExpiredSessions()

	var out []Datagram
	if now.Sub(p.lastHealthCheck) >= p.cfg.HealthCheckInterval {
		p.lastHealthCheck = now
		out = p.sendHeartbeats(now)
	}
	return out, nil
}

func (p *Proxy) expireHeartbeatTimeouts(now time.Time) {
	var timedOut []string
	p.pendingMu.Lock()
	for k, req := range p.pending {
		if req.isHeartbeat && now.Sub(req.sentAt) > p.cfg.HeartbeatTimeout {
			timedOut = append(timedOut, k.backend)
			delete(p.pending, k)
		}
	}
	p.pendingMu.Unlock()

	for _, addr := range timedOut {
		p.pool.RecordHeartbeatFailure(addr, p.cfg.FailureThreshold)
		if b := p.pool.Get(addr); b != nil {
			setBackendHealthGauge(addr, b.State())
		}
	}
}

func (p *Proxy) releaseExpiredSessions() {
	released := p.sessions.ExpireIdle(p.cfg.SessionTimeout)
	for _, addr := range released {
		p.pool.Release(addr)
	}
	if len(released) > 0 {
		p.stats.setSessionsActive(p.sessions.Len())
	}
}

func (p *Proxy) sendHeartbeats(now time.Time) []Datagram {
	backends := p.pool.All()
	out := make([]Datagram, 0, len(backends))
	for _, b := range backends {
		seq := p.nextSequence()
		msg := &message.HeartbeatRequest{RecoveryTimeStamp: ie.RecoveryTimeStamp(uint32(now.Unix()))}
		hdr := &header.Header{SequenceNumber: seq}
		data := message.Emit(hdr, msg)

		p.trackPending(b.Address, seq, "", message.TypeHeartbeatRequest, true)
		recordMessageOut(b.Address)
		out = append(out, Datagram{Addr: b.Address, Data: data})
	}
	return out
}

func (p *Proxy) nextSequence() uint32 {
	p.seqMu.Lock()
	defer p.seqMu.Unlock()
	p.nextSeq++
	return p.nextSeq
}
