package ie_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pfcp-core/pfcp/ie"
	"github.com/your-org/pfcp-core/pfcp/pfcperr"
)

func TestPrecedence_RoundTrip(t *testing.T) {
	p, err := ie.UnmarshalPrecedence([]byte{0x00, 0x00, 0x00, 0x05})
	require.NoError(t, err)
	assert.Equal(t, ie.Precedence(5), p)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x05}, p.Marshal())
}

func TestPrecedence_ZeroRejected(t *testing.T) {
	_, err := ie.UnmarshalPrecedence([]byte{0x00, 0x00, 0x00, 0x00})
	require.Error(t, err)
	var perr *pfcperr.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, pfcperr.InvalidValue, perr.Code)
}

func TestPrecedence_TooShort(t *testing.T) {
	_, err := ie.UnmarshalPrecedence([]byte{0x00, 0x01})
	require.Error(t, err)
	var perr *pfcperr.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, pfcperr.InvalidLength, perr.Code)
}

func TestCause_RoundTrip(t *testing.T) {
	c, err := ie.UnmarshalCause([]byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, ie.CauseRequestAccepted, c)
}

func TestCause_UnknownRejected(t *testing.T) {
	_, err := ie.UnmarshalCause([]byte{0xFE})
	require.Error(t, err)
	var perr *pfcperr.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, pfcperr.InvalidValue, perr.Code)
}

func TestSourceInterface_BoundaryValues(t *testing.T) {
	for v := byte(0); v <= 3; v++ {
		si, err := ie.UnmarshalSourceInterface([]byte{v})
		require.NoError(t, err)
		assert.Equal(t, ie.Interface(v), si.Interface)
	}
	_, err := ie.UnmarshalSourceInterface([]byte{4})
	require.Error(t, err)
}

func TestFTEID_V4AndCHMutuallyExclusive(t *testing.T) {
	// flags byte: V4 (bit0) and CH (bit2) both set.
	_, err := ie.UnmarshalFTEID([]byte{0x05, 0, 0, 0, 0})
	require.Error(t, err)
	var perr *pfcperr.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, pfcperr.InvalidValue, perr.Code)
}

func TestFTEID_CHIDRequiresCH(t *testing.T) {
	// CHID (bit3) set without CH (bit2).
	_, err := ie.UnmarshalFTEID([]byte{0x09})
	require.Error(t, err)
}

func TestFTEID_V4RoundTrip(t *testing.T) {
	f := &ie.FTEID{V4: true, TEID: 0x11223344, IPv4: net.ParseIP("10.0.0.1").To4()}
	raw := f.ToIE()
	ie2, err := ie.UnmarshalFTEID(raw[4:])
	require.NoError(t, err)
	assert.True(t, ie2.V4)
	assert.Equal(t, uint32(0x11223344), ie2.TEID)
	assert.True(t, ie2.IPv4.Equal(net.ParseIP("10.0.0.1")))
}

func TestFSEID_RequiresAtLeastOneFamily(t *testing.T) {
	value := make([]byte, 9) // flags=0, seid=0
	_, err := ie.UnmarshalFSEID(value)
	require.Error(t, err)
	var perr *pfcperr.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, pfcperr.InvalidValue, perr.Code)
}

func TestFSEID_IPv4RoundTrip(t *testing.T) {
	f := &ie.FSEID{SEID: 2, IPv4: net.ParseIP("192.168.1.1").To4()}
	out := f.Marshal()
	got, err := ie.UnmarshalFSEID(out)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.SEID)
	assert.True(t, got.IPv4.Equal(net.ParseIP("192.168.1.1")))
}

func TestNodeID_IPv4RoundTrip(t *testing.T) {
	n := &ie.NodeID{Kind: ie.NodeIDIPv4, IPv4: net.ParseIP("10.0.0.1").To4()}
	out := n.Marshal()
	got, err := ie.UnmarshalNodeID(out)
	require.NoError(t, err)
	assert.Equal(t, ie.NodeIDIPv4, got.Kind)
	assert.True(t, got.IPv4.Equal(net.ParseIP("10.0.0.1")))
}

func TestNodeID_FQDNTooLongRejected(t *testing.T) {
	long := make([]byte, ie.MaxFQDNLength+1)
	for i := range long {
		long[i] = 'a'
	}
	value := append([]byte{byte(ie.NodeIDFQDN)}, long...)
	_, err := ie.UnmarshalNodeID(value)
	require.Error(t, err)
}

func TestMACAddressList_RoundTrip(t *testing.T) {
	mac1, _ := net.ParseMAC("00:11:22:33:44:55")
	list := &ie.MACAddressList{MACs: []net.HardwareAddr{mac1}, CTAG: []byte{0x01}, STAG: []byte{0x02}}
	out := list.Marshal()
	got, err := ie.UnmarshalMACAddressesDetected(out)
	require.NoError(t, err)
	require.Len(t, got.MACs, 1)
	assert.Equal(t, mac1.String(), got.MACs[0].String())
	assert.Equal(t, []byte{0x01}, got.CTAG)
	assert.Equal(t, []byte{0x02}, got.STAG)
}

func TestVolumeMeasurement_RoundTrip(t *testing.T) {
	v := &ie.VolumeMeasurement{HasTotal: true, Total: 1000}
	out := v.Marshal()
	got, err := ie.UnmarshalVolumeMeasurement(out)
	require.NoError(t, err)
	assert.True(t, got.HasTotal)
	assert.Equal(t, uint64(1000), got.Total)
	assert.False(t, got.HasUplink)
}
