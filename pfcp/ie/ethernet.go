package ie

import "github.com/your-org/pfcp-core/pfcp/pfcperr"

// EthernetContextInformation is the SMF->UPF grouped IE describing
// detected Ethernet traffic for an Ethernet PDU session. Mandatory: one
// or more MAC Addresses Detected (spec §4.4).
type EthernetContextInformation struct {
	MACAddressesDetected []*MACAddressesDetected
}

func ParseEthernetContextInformation(value []byte, depth int) (*EthernetContextInformation, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	return ethernetContextInformationFromGroup(g)
}

// ethernetContextInformationFromGroup builds an EthernetContextInformation
// from an already-parsed group, used by ParsePDI when the enclosing PDI's
// group has already recursed into this child (PDI is itself a grouped IE,
// and ParseGroup recurses into every grouped child it encounters).
func ethernetContextInformationFromGroup(g *Group) (*EthernetContextInformation, error) {
	name := TypeName(TypeEthernetContextInformation)
	detected := g.All(TypeMACAddressesDetected)
	if len(detected) == 0 {
		return nil, pfcperr.MandatoryIeMissingErr(name, TypeName(TypeMACAddressesDetected))
	}
	e := &EthernetContextInformation{}
	for _, c := range detected {
		m, err := UnmarshalMACAddressesDetected(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		e.MACAddressesDetected = append(e.MACAddressesDetected, m)
	}
	return e, nil
}

func (e *EthernetContextInformation) Marshal() []byte {
	var parts [][]byte
	for _, m := range e.MACAddressesDetected {
		parts = append(parts, m.ToIE())
	}
	return Emit(parts...)
}

func (e *EthernetContextInformation) ToIE() []byte {
	return tlvWrap(TypeEthernetContextInformation, e.Marshal())
}

// EthernetTrafficInformation is the UPF->SMF grouped IE reporting
// observed Ethernet traffic within a Usage Report: MAC Addresses
// Detected and/or Removed, at least one of which must be present.
type EthernetTrafficInformation struct {
	MACAddressesDetected *MACAddressesDetected
	MACAddressesRemoved  *MACAddressesRemoved
}

func ParseEthernetTrafficInformation(value []byte, depth int) (*EthernetTrafficInformation, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	name := TypeName(TypeEthernetTrafficInformation)
	e := &EthernetTrafficInformation{}
	if c := g.First(TypeMACAddressesDetected); c != nil {
		m, err := UnmarshalMACAddressesDetected(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		e.MACAddressesDetected = m
	}
	if c := g.First(TypeMACAddressesRemoved); c != nil {
		m, err := UnmarshalMACAddressesRemoved(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		e.MACAddressesRemoved = m
	}
	if e.MACAddressesDetected == nil && e.MACAddressesRemoved == nil {
		return nil, pfcperr.MandatoryIeMissingErr(name, TypeName(TypeMACAddressesDetected)+" or "+TypeName(TypeMACAddressesRemoved))
	}
	return e, nil
}

func (e *EthernetTrafficInformation) Marshal() []byte {
	var parts [][]byte
	if e.MACAddressesDetected != nil {
		parts = append(parts, e.MACAddressesDetected.ToIE())
	}
	if e.MACAddressesRemoved != nil {
		parts = append(parts, e.MACAddressesRemoved.ToIE())
	}
	return Emit(parts...)
}

func (e *EthernetTrafficInformation) ToIE() []byte {
	return tlvWrap(TypeEthernetTrafficInformation, e.Marshal())
}
