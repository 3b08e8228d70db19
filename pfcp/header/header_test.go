package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pfcp-core/pfcp/header"
	"github.com/your-org/pfcp-core/pfcp/pfcperr"
)

func TestParse_HeartbeatRequest(t *testing.T) {
	// 20 01 00 04 00 00 01 00 — version 1, no SEID, type 1, length 4,
	// sequence 1, no IEs attached to the header itself.
	buf := []byte{0x20, 0x01, 0x00, 0x04, 0x00, 0x00, 0x01, 0x00}

	h, offset, err := header.Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), h.Version)
	assert.Equal(t, uint8(1), h.MessageType)
	assert.False(t, h.SEIDPresent)
	assert.Equal(t, uint32(1), h.SequenceNumber)
	assert.Equal(t, 8, offset)
}

func TestParse_SessionScopedWithSEID(t *testing.T) {
	buf := []byte{
		0x21, 0x32, 0x00, 0x0C, // length 12: SEID + sequence/priority, no IEs
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, // SEID = 1
		0x00, 0x00, 0x01, 0x00, // sequence = 1
	}

	h, offset, err := header.Parse(buf)
	require.NoError(t, err)
	assert.True(t, h.SEIDPresent)
	assert.Equal(t, uint64(1), h.SEID)
	assert.Equal(t, uint32(1), h.SequenceNumber)
	assert.Equal(t, uint8(50), h.MessageType)
	assert.Equal(t, 16, offset)
}

func TestParse_TooShort(t *testing.T) {
	_, _, err := header.Parse([]byte{0x20, 0x01, 0x00})
	require.Error(t, err)
	var perr *pfcperr.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, pfcperr.InvalidLength, perr.Code)
}

func TestParse_UnsupportedVersion(t *testing.T) {
	buf := []byte{0x40, 0x01, 0x00, 0x04, 0x00, 0x00, 0x01, 0x00}
	_, _, err := header.Parse(buf)
	require.Error(t, err)
	var perr *pfcperr.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, pfcperr.UnsupportedVersion, perr.Code)
}

func TestParse_DeclaredLengthPastBuffer(t *testing.T) {
	buf := []byte{0x20, 0x01, 0x00, 0xFF, 0x00, 0x00, 0x01, 0x00}
	_, _, err := header.Parse(buf)
	require.Error(t, err)
}

func TestParse_SEIDFlagButTooShort(t *testing.T) {
	buf := []byte{0x21, 0x32, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00}
	_, _, err := header.Parse(buf)
	require.Error(t, err)
}

func TestEmit_RoundTrip_Heartbeat(t *testing.T) {
	h := &header.Header{
		Version:       1,
		MessageType:   1,
		SequenceNumber: 1,
	}
	out := header.Emit(h, nil)
	assert.Equal(t, []byte{0x20, 0x01, 0x00, 0x04, 0x00, 0x00, 0x01, 0x00}, out)

	parsed, _, err := header.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, h.MessageType, parsed.MessageType)
	assert.Equal(t, h.SequenceNumber, parsed.SequenceNumber)
}

func TestEmit_RoundTrip_WithSEIDAndPriority(t *testing.T) {
	h := &header.Header{
		Version:        1,
		MessageType:    50,
		SEIDPresent:    true,
		SEID:           0x1122334455667788,
		SequenceNumber: 42,
		MP:             true,
		Priority:       5,
		FO:             true,
	}
	out := header.Emit(h, []byte{0xAA, 0xBB})

	parsed, offset, err := header.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, h.SEID, parsed.SEID)
	assert.Equal(t, h.SequenceNumber, parsed.SequenceNumber)
	assert.Equal(t, h.Priority, parsed.Priority)
	assert.True(t, parsed.MP)
	assert.True(t, parsed.FO)
	assert.Equal(t, out[offset:], []byte{0xAA, 0xBB})
	assert.Equal(t, len(out), int(parsed.MessageLength)+4)
}

func TestEmit_MessageLengthInvariant(t *testing.T) {
	h := &header.Header{Version: 1, MessageType: 50, SEIDPresent: true, SEID: 7, SequenceNumber: 3}
	payload := make([]byte, 20)
	out := header.Emit(h, payload)
	parsed, _, err := header.Parse(out)
	require.NoError(t, err)
	// MessageLength counts everything after byte 3: SEID + seq/priority + IEs.
	assert.Equal(t, len(out)-4, int(parsed.MessageLength))
}
