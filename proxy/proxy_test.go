package proxy_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pfcp-core/pfcp/header"
	"github.com/your-org/pfcp-core/pfcp/ie"
	"github.com/your-org/pfcp-core/pfcp/message"
	"github.com/your-org/pfcp-core/proxy"
)

func testConfig(backends ...string) *proxy.Config {
	cfg := &proxy.Config{Strategy: proxy.StrategyRoundRobin}
	for _, addr := range backends {
		cfg.Backends = append(cfg.Backends, proxy.BackendConfig{Address: addr, Weight: 1})
	}
	return cfg
}

func buildEstablishmentRequest(seq uint32, seid uint64) []byte {
	pdi := &ie.PDI{SourceInterface: ie.SourceInterface{Interface: ie.InterfaceAccess}}
	pdr := &ie.CreatePDR{PDRID: 1, Precedence: 10, PDI: pdi}
	far := message.NewUplinkToCoreFAR(1)

	msg := &message.SessionEstablishmentRequest{
		NodeID:     &ie.NodeID{Kind: ie.NodeIDIPv4, IPv4: net.ParseIP("10.0.0.1").To4()},
		FSEID:      &ie.FSEID{SEID: seid, IPv4: net.ParseIP("192.168.1.1").To4()},
		CreatePDRs: []*ie.CreatePDR{pdr},
		CreateFARs: []*ie.CreateFAR{far},
	}
	h := &header.Header{SEIDPresent: true, SEID: 0, SequenceNumber: seq}
	return message.Emit(h, msg)
}

func buildEstablishmentResponse(seq uint32, upSEID uint64) []byte {
	msg := &message.SessionEstablishmentResponse{
		NodeID: &ie.NodeID{Kind: ie.NodeIDIPv4, IPv4: net.ParseIP("10.0.0.2").To4()},
		Cause:  ie.CauseRequestAccepted,
		FSEID:  &ie.FSEID{SEID: upSEID, IPv4: net.ParseIP("10.0.0.2").To4()},
	}
	h := &header.Header{SEIDPresent: false, SequenceNumber: seq}
	return message.Emit(h, msg)
}

func buildModificationRequest(seq uint32, headerSEID uint64) []byte {
	msg := &message.SessionModificationRequest{}
	h := &header.Header{SEIDPresent: true, SEID: headerSEID, SequenceNumber: seq}
	return message.Emit(h, msg)
}

func buildHeartbeatRequest(seq uint32) []byte {
	msg := &message.HeartbeatRequest{RecoveryTimeStamp: ie.RecoveryTimeStamp(12345)}
	h := &header.Header{SequenceNumber: seq}
	return message.Emit(h, msg)
}

// TestProxy_SessionAffinity reproduces spec.md §8 scenario 5: three
// backends, round-robin selection on Session Establishment Request,
// then affinity routing by the UP-allocated SEID on a subsequent
// Session Modification Request.
func TestProxy_SessionAffinity(t *testing.T) {
	cfg := testConfig("backend-0", "backend-1", "backend-2")
	p := proxy.New(cfg, nil, nil)
	ctx := context.Background()

	est1 := buildEstablishmentRequest(1, 0)
	out, err := p.OnDatagram(ctx, "smf", est1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "backend-0", out[0].Addr)

	resp1 := buildEstablishmentResponse(1, 0x22)
	out, err = p.OnBackendResponse(ctx, "backend-0", resp1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "smf", out[0].Addr)

	mod := buildModificationRequest(2, 0x22)
	out, err = p.OnDatagram(ctx, "smf", mod)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "backend-0", out[0].Addr)

	est2 := buildEstablishmentRequest(3, 0)
	out, err = p.OnDatagram(ctx, "smf", est2)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "backend-1", out[0].Addr)
}

// TestProxy_SessionNotFound exercises the "lookup by SEID, fail if
// absent" branch of spec.md §4.8's routing table.
func TestProxy_SessionNotFound(t *testing.T) {
	p := proxy.New(testConfig("backend-0"), nil, nil)
	mod := buildModificationRequest(1, 0xDEAD)
	_, err := p.OnDatagram(context.Background(), "smf", mod)
	require.ErrorIs(t, err, proxy.ErrSessionNotFound)
}

// TestProxy_BroadcastHeartbeat reproduces spec.md §8 scenario 6: a
// no-SEID Heartbeat Request fans out to every configured backend with
// sequence preserved.
func TestProxy_BroadcastHeartbeat(t *testing.T) {
	p := proxy.New(testConfig("backend-0", "backend-1"), nil, nil)
	req := buildHeartbeatRequest(7)

	out, err := p.OnDatagram(context.Background(), "smf", req)
	require.NoError(t, err)
	require.Len(t, out, 2)

	addrs := map[string]bool{}
	for _, d := range out {
		addrs[d.Addr] = true
		h, _, err := header.Parse(d.Data)
		require.NoError(t, err)
		assert.Equal(t, uint32(7), h.SequenceNumber)
	}
	assert.True(t, addrs["backend-0"])
	assert.True(t, addrs["backend-1"])
}

func TestSessionTable_ExpireIdle(t *testing.T) {
	st := proxy.NewSessionTable()
	st.Insert(1, "backend-0", "")
	released := st.ExpireIdle(0)
	assert.Contains(t, released, "backend-0")
	_, ok := st.Lookup(1)
	assert.False(t, ok)
}

func TestPool_RoundRobinWrapsAround(t *testing.T) {
	p := proxy.NewPool([]proxy.BackendConfig{{Address: "a"}, {Address: "b"}})
	first, err := p.Select(proxy.StrategyRoundRobin)
	require.NoError(t, err)
	second, err := p.Select(proxy.StrategyRoundRobin)
	require.NoError(t, err)
	third, err := p.Select(proxy.StrategyRoundRobin)
	require.NoError(t, err)
	assert.NotEqual(t, first.Address, second.Address)
	assert.Equal(t, first.Address, third.Address)
}

func TestPool_NoHealthyBackend(t *testing.T) {
	p := proxy.NewPool([]proxy.BackendConfig{{Address: "a"}})
	for i := 0; i < 3; i++ {
		p.RecordHeartbeatFailure("a", 1)
	}
	_, err := p.Select(proxy.StrategyRoundRobin)
	require.ErrorIs(t, err, proxy.ErrNoHealthyBackend)
}

func TestConfig_ValidateRejectsEmptyBackends(t *testing.T) {
	cfg := &proxy.Config{Strategy: proxy.StrategyRoundRobin}
	err := cfg.Validate()
	require.Error(t, err)
}

func TestConfig_ValidateRejectsUnknownStrategy(t *testing.T) {
	cfg := &proxy.Config{Strategy: "bogus", Backends: []proxy.BackendConfig{{Address: "a"}}}
	err := cfg.Validate()
	require.Error(t, err)
}
