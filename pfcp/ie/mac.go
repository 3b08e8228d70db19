package ie

import (
	"encoding/binary"
	"net"

	"github.com/your-org/pfcp-core/pfcp/pfcperr"
	"github.com/your-org/pfcp-core/pfcp/tlv"
)

// MaxMACsPerList bounds a MAC Addresses Detected/Removed list's count
// field, which is a single byte on the wire (spec §5).
const MaxMACsPerList = 255

// MACAddressList encodes the VLAN-tagged MAC address list shape shared
// by MAC Addresses Detected and MAC Addresses Removed: a count, that
// many 6-byte MAC addresses, then a length-prefixed C-TAG and
// length-prefixed S-TAG.
type MACAddressList struct {
	MACs []net.HardwareAddr
	CTAG []byte
	STAG []byte
}

func unmarshalMACAddressList(ieType uint16, value []byte) (*MACAddressList, error) {
	if len(value) < 1 {
		return nil, pfcperr.InvalidLengthErr(TypeName(ieType), ieType, 1, len(value))
	}
	count := int(value[0])
	if count > MaxMACsPerList {
		return nil, pfcperr.TooManyElementsErr(MaxMACsPerList)
	}
	offset := 1
	list := &MACAddressList{}
	for i := 0; i < count; i++ {
		if len(value) < offset+6 {
			return nil, pfcperr.InvalidLengthErr(TypeName(ieType), ieType, offset+6, len(value))
		}
		mac := make(net.HardwareAddr, 6)
		copy(mac, value[offset:offset+6])
		list.MACs = append(list.MACs, mac)
		offset += 6
	}

	if offset < len(value) {
		ctagLen := int(value[offset])
		offset++
		if len(value) < offset+ctagLen {
			return nil, pfcperr.InvalidLengthErr(TypeName(ieType), ieType, offset+ctagLen, len(value))
		}
		list.CTAG = append([]byte(nil), value[offset:offset+ctagLen]...)
		offset += ctagLen
	}
	if offset < len(value) {
		stagLen := int(value[offset])
		offset++
		if len(value) < offset+stagLen {
			return nil, pfcperr.InvalidLengthErr(TypeName(ieType), ieType, offset+stagLen, len(value))
		}
		list.STAG = append([]byte(nil), value[offset:offset+stagLen]...)
		offset += stagLen
	}

	return list, nil
}

// Marshal encodes the list directly, without the IE type/length
// envelope that MACAddressesDetected.ToIE/MACAddressesRemoved.ToIE add.
func (l *MACAddressList) Marshal() []byte { return l.marshal() }

func (l *MACAddressList) marshal() []byte {
	buf := []byte{byte(len(l.MACs))}
	for _, mac := range l.MACs {
		buf = append(buf, mac[:6]...)
	}
	buf = append(buf, byte(len(l.CTAG)))
	buf = append(buf, l.CTAG...)
	buf = append(buf, byte(len(l.STAG)))
	buf = append(buf, l.STAG...)
	return buf
}

// MACAddressesDetected is the list of detected MAC addresses, carried
// in Ethernet Context Information (SMF->UPF) and Ethernet Traffic
// Information (UPF->SMF).
type MACAddressesDetected struct{ MACAddressList }

func UnmarshalMACAddressesDetected(value []byte) (*MACAddressesDetected, error) {
	l, err := unmarshalMACAddressList(TypeMACAddressesDetected, value)
	if err != nil {
		return nil, err
	}
	return &MACAddressesDetected{*l}, nil
}

func (m *MACAddressesDetected) Marshal() []byte { return m.marshal() }
func (m *MACAddressesDetected) ToIE() []byte {
	return tlv.Emit(TypeMACAddressesDetected, nil, m.Marshal())
}

// MACAddressesRemoved is the UPF->SMF direction list of MAC addresses
// that have aged out (part of Ethernet Traffic Information).
type MACAddressesRemoved struct{ MACAddressList }

func UnmarshalMACAddressesRemoved(value []byte) (*MACAddressesRemoved, error) {
	l, err := unmarshalMACAddressList(TypeMACAddressesRemoved, value)
	if err != nil {
		return nil, err
	}
	return &MACAddressesRemoved{*l}, nil
}

func (m *MACAddressesRemoved) Marshal() []byte { return m.marshal() }
func (m *MACAddressesRemoved) ToIE() []byte {
	return tlv.Emit(TypeMACAddressesRemoved, nil, m.Marshal())
}

// OuterHeaderCreation directs the UPF to add a GTP-U/UDP/IP
// encapsulation (or other transport) header when forwarding; the
// Description flags select which fields are present.
type OuterHeaderCreation struct {
	Description uint16
	TEID        uint32
	IPv4        net.IP
	IPv6        net.IP
	Port        uint16
}

const (
	ohcGTPUIPv4 uint16 = 1 << 8
	ohcGTPUIPv6 uint16 = 1 << 9
	ohcUDPIPv4  uint16 = 1 << 10
	ohcUDPIPv6  uint16 = 1 << 11
)

func UnmarshalOuterHeaderCreation(value []byte) (*OuterHeaderCreation, error) {
	if len(value) < 2 {
		return nil, pfcperr.InvalidLengthErr(TypeName(TypeOuterHeaderCreation), TypeOuterHeaderCreation, 2, len(value))
	}
	desc := binary.BigEndian.Uint16(value[0:2])
	o := &OuterHeaderCreation{Description: desc}
	offset := 2
	gtpu := desc&ohcGTPUIPv4 != 0 || desc&ohcGTPUIPv6 != 0
	if gtpu {
		if len(value) < offset+4 {
			return nil, pfcperr.InvalidLengthErr(TypeName(TypeOuterHeaderCreation), TypeOuterHeaderCreation, offset+4, len(value))
		}
		o.TEID = binary.BigEndian.Uint32(value[offset : offset+4])
		offset += 4
	}
	if desc&ohcGTPUIPv4 != 0 || desc&ohcUDPIPv4 != 0 {
		if len(value) < offset+4 {
			return nil, pfcperr.InvalidLengthErr(TypeName(TypeOuterHeaderCreation), TypeOuterHeaderCreation, offset+4, len(value))
		}
		o.IPv4 = net.IP(append([]byte(nil), value[offset:offset+4]...))
		offset += 4
	}
	if desc&ohcGTPUIPv6 != 0 || desc&ohcUDPIPv6 != 0 {
		if len(value) < offset+16 {
			return nil, pfcperr.InvalidLengthErr(TypeName(TypeOuterHeaderCreation), TypeOuterHeaderCreation, offset+16, len(value))
		}
		o.IPv6 = net.IP(append([]byte(nil), value[offset:offset+16]...))
		offset += 16
	}
	if desc&ohcUDPIPv4 != 0 || desc&ohcUDPIPv6 != 0 {
		if len(value) < offset+2 {
			return nil, pfcperr.InvalidLengthErr(TypeName(TypeOuterHeaderCreation), TypeOuterHeaderCreation, offset+2, len(value))
		}
		o.Port = binary.BigEndian.Uint16(value[offset : offset+2])
	}
	return o, nil
}

func (o *OuterHeaderCreation) Marshal() []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, o.Description)
	if o.Description&(ohcGTPUIPv4|ohcGTPUIPv6) != 0 {
		teidBytes := make([]byte, 4)
		binary.BigEndian.PutUint32(teidBytes, o.TEID)
		buf = append(buf, teidBytes...)
	}
	if o.Description&(ohcGTPUIPv4|ohcUDPIPv4) != 0 {
		buf = append(buf, o.IPv4.To4()...)
	}
	if o.Description&(ohcGTPUIPv6|ohcUDPIPv6) != 0 {
		buf = append(buf, o.IPv6.To16()...)
	}
	if o.Description&(ohcUDPIPv4|ohcUDPIPv6) != 0 {
		portBytes := make([]byte, 2)
		binary.BigEndian.PutUint16(portBytes, o.Port)
		buf = append(buf, portBytes...)
	}
	return buf
}

func (o *OuterHeaderCreation) ToIE() []byte { return tlv.Emit(TypeOuterHeaderCreation, nil, o.Marshal()) }

// OuterHeaderRemoval directs the UPF to strip an encapsulation header
// before forwarding. 0 = GTP-U/UDP/IPv4, 1 = GTP-U/UDP/IPv6, per TS
// 29.244 clause 8.2.55.
type OuterHeaderRemoval uint8

func UnmarshalOuterHeaderRemoval(value []byte) (OuterHeaderRemoval, error) {
	if len(value) < 1 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypeOuterHeaderRemoval), TypeOuterHeaderRemoval, 1, len(value))
	}
	return OuterHeaderRemoval(value[0]), nil
}

func (o OuterHeaderRemoval) Marshal() []byte { return []byte{byte(o)} }

// VolumeMeasurement reports accumulated octet counts for a URR, gated
// by per-field presence flags in its first octet.
type VolumeMeasurement struct {
	HasTotal, HasUplink, HasDownlink bool
	Total, Uplink, Downlink          uint64
}

const (
	volFlagTotal    uint8 = 1 << 0
	volFlagUplink   uint8 = 1 << 1
	volFlagDownlink uint8 = 1 << 2
)

func UnmarshalVolumeMeasurement(value []byte) (*VolumeMeasurement, error) {
	if len(value) < 1 {
		return nil, pfcperr.InvalidLengthErr(TypeName(TypeVolumeMeasurement), TypeVolumeMeasurement, 1, len(value))
	}
	flags := value[0]
	v := &VolumeMeasurement{
		HasTotal:    flags&volFlagTotal != 0,
		HasUplink:   flags&volFlagUplink != 0,
		HasDownlink: flags&volFlagDownlink != 0,
	}
	offset := 1
	readU64 := func() (uint64, error) {
		if len(value) < offset+8 {
			return 0, pfcperr.InvalidLengthErr(TypeName(TypeVolumeMeasurement), TypeVolumeMeasurement, offset+8, len(value))
		}
		val := binary.BigEndian.Uint64(value[offset : offset+8])
		offset += 8
		return val, nil
	}
	var err error
	if v.HasTotal {
		if v.Total, err = readU64(); err != nil {
			return nil, err
		}
	}
	if v.HasUplink {
		if v.Uplink, err = readU64(); err != nil {
			return nil, err
		}
	}
	if v.HasDownlink {
		if v.Downlink, err = readU64(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (v *VolumeMeasurement) Marshal() []byte {
	var flags uint8
	if v.HasTotal {
		flags |= volFlagTotal
	}
	if v.HasUplink {
		flags |= volFlagUplink
	}
	if v.HasDownlink {
		flags |= volFlagDownlink
	}
	buf := []byte{flags}
	put := func(val uint64) {
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, val)
		buf = append(buf, b...)
	}
	if v.HasTotal {
		put(v.Total)
	}
	if v.HasUplink {
		put(v.Uplink)
	}
	if v.HasDownlink {
		put(v.Downlink)
	}
	return buf
}

// DurationMeasurement reports elapsed seconds for a URR.
type DurationMeasurement uint32

func UnmarshalDurationMeasurement(value []byte) (DurationMeasurement, error) {
	if len(value) < 4 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypeDurationMeasurement), TypeDurationMeasurement, 4, len(value))
	}
	return DurationMeasurement(binary.BigEndian.Uint32(value[:4])), nil
}

func (d DurationMeasurement) Marshal() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(d))
	return b
}
