package message_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pfcp-core/pfcp/header"
	"github.com/your-org/pfcp-core/pfcp/ie"
	"github.com/your-org/pfcp-core/pfcp/message"
	"github.com/your-org/pfcp-core/pfcp/pfcperr"
)

// wantHeartbeatRequestWire is the literal wire encoding of a Heartbeat
// Request carrying sequence=1 and a single Recovery Time Stamp IE
// (type 96, value 0xE3514A00): an 8-byte no-SEID header (version 1,
// message type 1, declared length 12 covering the sequence/priority
// word plus the 8-byte IE) followed by the IE's own TLV envelope.
var wantHeartbeatRequestWire = []byte{
	0x20, 0x01, 0x00, 0x0C, 0x00, 0x00, 0x01, 0x00,
	0x00, 0x60, 0x00, 0x04, 0xE3, 0x51, 0x4A, 0x00,
}

func TestHeartbeatRequest_RoundTrip(t *testing.T) {
	msg := &message.HeartbeatRequest{RecoveryTimeStamp: ie.RecoveryTimeStamp(0xE3514A00)}
	h := &header.Header{Version: 1, SequenceNumber: 1}
	buf := message.Emit(h, msg)
	assert.Equal(t, wantHeartbeatRequestWire, buf)

	decoded, err := message.Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, message.TypeHeartbeatRequest, decoded.Header.MessageType)
	assert.EqualValues(t, 1, decoded.Header.SequenceNumber)
	assert.False(t, decoded.Header.SEIDPresent)
	got, ok := decoded.Message.(*message.HeartbeatRequest)
	require.True(t, ok)
	assert.Equal(t, msg.RecoveryTimeStamp, got.RecoveryTimeStamp)

	// re-encoding the decoded message reproduces the identical buffer.
	reEmitted := message.Emit(&header.Header{Version: 1, SequenceNumber: decoded.Header.SequenceNumber}, got)
	assert.Equal(t, wantHeartbeatRequestWire, reEmitted)
}

func TestParse_UnknownMessageType(t *testing.T) {
	h := &header.Header{Version: 1, MessageType: 0xF0, SequenceNumber: 1}
	buf := header.Emit(h, nil)
	_, err := message.Parse(buf)
	require.Error(t, err)
	var perr *pfcperr.Error
	require.ErrorAs(t, err, &perr)
}

// wantNodeIDWire is the literal TLV bytes for a Node ID IE carrying
// IPv4 sub-type and address 10.0.0.1.
var wantNodeIDWire = []byte{0x00, 0x3C, 0x00, 0x05, 0x00, 0x0A, 0x00, 0x00, 0x01}

func minimalSessionEstablishment(t *testing.T) *message.SessionEstablishmentRequest {
	t.Helper()
	nodeID := &ie.NodeID{Kind: ie.NodeIDIPv4, IPv4: net.IPv4(10, 0, 0, 1)}
	require.Equal(t, wantNodeIDWire, nodeID.ToIE())
	fseid := &ie.FSEID{SEID: 2, IPv4: net.IPv4(192, 168, 1, 1)}
	b, err := message.NewSessionEstablishmentRequest(nodeID, fseid).
		AddPDR(samplePDR()).
		AddFAR(message.NewUplinkToCoreFAR(1)).
		Build()
	require.NoError(t, err)
	return b
}

func samplePDR() *ie.CreatePDR {
	return &ie.CreatePDR{
		PDRID:      1,
		Precedence: 100,
		PDI:        &ie.PDI{SourceInterface: ie.SourceInterface{Interface: ie.InterfaceAccess}},
		FARID:      ptr(ie.FARID(1)),
	}
}

func ptr[T any](v T) *T { return &v }

func TestSessionEstablishmentRequest_RoundTrip(t *testing.T) {
	msg := minimalSessionEstablishment(t)
	h := &header.Header{Version: 1, SEID: 1, SequenceNumber: 1}
	buf := message.Emit(h, msg)

	// header is 16 bytes (S flag forced on by Emit for a session-scoped
	// type) carrying the literal CP-SEID from the header, and the IE
	// sequence leads with the exact Node ID wire bytes.
	require.GreaterOrEqual(t, len(buf), 16)
	assert.Equal(t, []byte{0x21, 0x32}, buf[0:2])
	assert.EqualValues(t, 1, header16SEID(buf))
	assert.Equal(t, wantNodeIDWire, buf[16:16+len(wantNodeIDWire)])

	decoded, err := message.Parse(buf)
	require.NoError(t, err)
	assert.True(t, decoded.Header.SEIDPresent)
	assert.EqualValues(t, 1, decoded.Header.SEID)
	got, ok := decoded.Message.(*message.SessionEstablishmentRequest)
	require.True(t, ok)
	assert.Equal(t, msg.FSEID.SEID, got.FSEID.SEID)
	require.Len(t, got.CreatePDRs, 1)
	require.Len(t, got.CreateFARs, 1)
	assert.Equal(t, ie.PDRID(1), got.CreatePDRs[0].PDRID)

	// re-emitting the decoded message reproduces the identical buffer.
	reEmitted := message.Emit(&header.Header{Version: 1, SEID: decoded.Header.SEID, SequenceNumber: decoded.Header.SequenceNumber}, got)
	assert.Equal(t, buf, reEmitted)
}

func header16SEID(buf []byte) uint64 {
	var seid uint64
	for _, b := range buf[4:12] {
		seid = seid<<8 | uint64(b)
	}
	return seid
}

func TestSessionEstablishmentRequest_MissingFAR_Fails(t *testing.T) {
	nodeID := &ie.NodeID{Kind: ie.NodeIDIPv4, IPv4: net.IPv4(10, 0, 0, 1)}
	fseid := &ie.FSEID{SEID: 1, IPv4: net.IPv4(10, 0, 0, 1)}
	_, err := message.NewSessionEstablishmentRequest(nodeID, fseid).
		AddPDR(samplePDR()).
		Build()
	require.Error(t, err)
	var perr *pfcperr.Error
	require.ErrorAs(t, err, &perr)
}
