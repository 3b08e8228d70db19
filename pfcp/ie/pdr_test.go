package ie_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pfcp-core/pfcp/ie"
)

func TestPDI_EthernetContextInformation_RoundTrip(t *testing.T) {
	mac1, _ := net.ParseMAC("00:11:22:33:44:55")
	pdi := &ie.PDI{
		SourceInterface: ie.SourceInterface{Interface: ie.InterfaceAccess},
		EthernetContextInformation: &ie.EthernetContextInformation{
			MACAddressesDetected: []*ie.MACAddressesDetected{
				{MACAddressList: ie.MACAddressList{MACs: []net.HardwareAddr{mac1}}},
			},
		},
	}

	raw := pdi.Marshal()
	g, err := ie.ParseGroup(raw, 0)
	require.NoError(t, err)

	got, err := ie.ParsePDI(g)
	require.NoError(t, err)

	require.NotNil(t, got.EthernetContextInformation)
	require.Len(t, got.EthernetContextInformation.MACAddressesDetected, 1)
	assert.Equal(t, mac1.String(), got.EthernetContextInformation.MACAddressesDetected[0].MACs[0].String())
	assert.Equal(t, ie.InterfaceAccess, got.SourceInterface.Interface)
}

func TestPDI_EthernetContextInformation_MissingMACsRejected(t *testing.T) {
	_, err := ie.ParseEthernetContextInformation(nil, 0)
	require.Error(t, err)
}

func TestCreatePDR_WithEthernetPDI_RoundTrip(t *testing.T) {
	mac1, _ := net.ParseMAC("aa:bb:cc:dd:ee:ff")
	cpdr := &ie.CreatePDR{
		PDRID:      ie.PDRID(1),
		Precedence: ie.Precedence(10),
		PDI: &ie.PDI{
			SourceInterface: ie.SourceInterface{Interface: ie.InterfaceAccess},
			EthernetContextInformation: &ie.EthernetContextInformation{
				MACAddressesDetected: []*ie.MACAddressesDetected{
					{MACAddressList: ie.MACAddressList{MACs: []net.HardwareAddr{mac1}}},
				},
			},
		},
	}

	raw := cpdr.Marshal()
	got, err := ie.ParseCreatePDR(raw, 0)
	require.NoError(t, err)

	require.NotNil(t, got.PDI.EthernetContextInformation)
	require.Len(t, got.PDI.EthernetContextInformation.MACAddressesDetected, 1)
	assert.Equal(t, mac1.String(), got.PDI.EthernetContextInformation.MACAddressesDetected[0].MACs[0].String())
}
