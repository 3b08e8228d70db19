package tlv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pfcp-core/pfcp/pfcperr"
	"github.com/your-org/pfcp-core/pfcp/tlv"
)

func TestParse_RecoveryTimeStamp(t *testing.T) {
	buf := []byte{0x00, 0x60, 0x00, 0x04, 0xE3, 0x51, 0x4A, 0x00}
	ie, err := tlv.Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, uint16(96), ie.Type)
	assert.Nil(t, ie.Enterprise)
	assert.Equal(t, []byte{0xE3, 0x51, 0x4A, 0x00}, ie.Value)
	assert.Equal(t, 8, ie.TotalConsumed)
}

func TestParse_EnterpriseIE(t *testing.T) {
	// Type 0x8001 (bit15 set), length 4 (includes 2-byte enterprise id),
	// enterprise id 0x0028 (40), 2 bytes of vendor payload.
	buf := []byte{0x80, 0x01, 0x00, 0x04, 0x00, 0x28, 0xAA, 0xBB}
	ie, err := tlv.Parse(buf)
	require.NoError(t, err)
	require.NotNil(t, ie.Enterprise)
	assert.Equal(t, uint16(0x28), *ie.Enterprise)
	assert.Equal(t, []byte{0xAA, 0xBB}, ie.Value)
	assert.True(t, ie.IsEnterprise())
	assert.False(t, ie.MandatoryToUnderstand())
	assert.Equal(t, 8, ie.TotalConsumed)
}

func TestParse_ZeroLengthRejectedByDefault(t *testing.T) {
	buf := []byte{0x00, 0x01, 0x00, 0x00} // type 1, length 0 — not allowlisted
	_, err := tlv.Parse(buf)
	require.Error(t, err)
	var perr *pfcperr.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, pfcperr.ZeroLengthNotAllowed, perr.Code)
}

func TestParse_ZeroLengthNetworkInstanceAllowed(t *testing.T) {
	buf := []byte{0x00, 0x16, 0x00, 0x00} // type 22, length 0
	ie, err := tlv.Parse(buf)
	require.NoError(t, err)
	assert.Empty(t, ie.Value)
}

func TestParse_TruncatedHeader(t *testing.T) {
	_, err := tlv.Parse([]byte{0x00, 0x16, 0x00})
	require.Error(t, err)
}

func TestParse_LengthExceedsBuffer(t *testing.T) {
	buf := []byte{0x00, 0x60, 0x00, 0x10, 0x01, 0x02} // declares 16 bytes, has 2
	_, err := tlv.Parse(buf)
	require.Error(t, err)
	var perr *pfcperr.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, pfcperr.InvalidLength, perr.Code)
}

func TestIterate_MultipleIEs(t *testing.T) {
	buf := []byte{
		0x00, 0x60, 0x00, 0x04, 0xE3, 0x51, 0x4A, 0x00, // Recovery Time Stamp
		0x00, 0x16, 0x00, 0x00, // Network Instance (zero length, allowed)
	}

	var types []uint16
	err := tlv.Iterate(buf, func(ie *tlv.IE) error {
		types = append(types, ie.Type)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []uint16{96, 22}, types)
}

func TestIterate_StopsOnTruncatedTrailer(t *testing.T) {
	buf := []byte{
		0x00, 0x60, 0x00, 0x04, 0xE3, 0x51, 0x4A, 0x00,
		0x00, 0x60, 0x00, // truncated second IE header
	}
	err := tlv.Iterate(buf, func(ie *tlv.IE) error { return nil })
	require.Error(t, err)
}

func TestEmit_RoundTrip(t *testing.T) {
	out := tlv.Emit(96, nil, []byte{0xE3, 0x51, 0x4A, 0x00})
	assert.Equal(t, []byte{0x00, 0x60, 0x00, 0x04, 0xE3, 0x51, 0x4A, 0x00}, out)

	ie, err := tlv.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, uint16(96), ie.Type)
	assert.Equal(t, []byte{0xE3, 0x51, 0x4A, 0x00}, ie.Value)
}

func TestEmit_Enterprise_RoundTrip(t *testing.T) {
	eid := uint16(0x28)
	out := tlv.Emit(1, &eid, []byte{0xAA, 0xBB})
	ie, err := tlv.Parse(out)
	require.NoError(t, err)
	assert.True(t, ie.IsEnterprise())
	require.NotNil(t, ie.Enterprise)
	assert.Equal(t, eid, *ie.Enterprise)
	assert.Equal(t, []byte{0xAA, 0xBB}, ie.Value)
}

func TestEmit_ZeroLengthNetworkInstance(t *testing.T) {
	out := tlv.Emit(22, nil, nil)
	assert.Equal(t, []byte{0x00, 0x16, 0x00, 0x00}, out)
}
