package ie

import (
	"encoding/binary"
	"net"

	"github.com/your-org/pfcp-core/pfcp/pfcperr"
	"github.com/your-org/pfcp-core/pfcp/tlv"
)

// NodeID identifies a PFCP peer by IPv4, IPv6, or FQDN, discriminated
// by a leading sub-type octet per spec §4.4.
type NodeID struct {
	Kind NodeIDKind
	IPv4 net.IP
	IPv6 net.IP
	FQDN string
}

type NodeIDKind uint8

const (
	NodeIDIPv4 NodeIDKind = 0
	NodeIDIPv6 NodeIDKind = 1
	NodeIDFQDN NodeIDKind = 2
)

func UnmarshalNodeID(value []byte) (*NodeID, error) {
	if len(value) < 1 {
		return nil, pfcperr.InvalidLengthErr(TypeName(TypeNodeID), TypeNodeID, 1, len(value))
	}
	kind := NodeIDKind(value[0] & 0x0F)
	rest := value[1:]
	switch kind {
	case NodeIDIPv4:
		if len(rest) < 4 {
			return nil, pfcperr.InvalidLengthErr(TypeName(TypeNodeID), TypeNodeID, 5, len(value))
		}
		return &NodeID{Kind: kind, IPv4: net.IP(append([]byte(nil), rest[:4]...))}, nil
	case NodeIDIPv6:
		if len(rest) < 16 {
			return nil, pfcperr.InvalidLengthErr(TypeName(TypeNodeID), TypeNodeID, 17, len(value))
		}
		return &NodeID{Kind: kind, IPv6: net.IP(append([]byte(nil), rest[:16]...))}, nil
	case NodeIDFQDN:
		if len(rest) == 0 || len(rest) > MaxFQDNLength {
			return nil, pfcperr.InvalidValueErr(TypeName(TypeNodeID), "FQDN length out of range")
		}
		return &NodeID{Kind: kind, FQDN: string(rest)}, nil
	default:
		return nil, pfcperr.InvalidValueErr(TypeName(TypeNodeID), "unknown Node ID sub-type")
	}
}

func (n *NodeID) Marshal() []byte {
	switch n.Kind {
	case NodeIDIPv4:
		return append([]byte{byte(NodeIDIPv4)}, n.IPv4.To4()...)
	case NodeIDIPv6:
		return append([]byte{byte(NodeIDIPv6)}, n.IPv6.To16()...)
	default:
		return append([]byte{byte(NodeIDFQDN)}, []byte(n.FQDN)...)
	}
}

func (n *NodeID) ToIE() []byte { return tlv.Emit(TypeNodeID, nil, n.Marshal()) }

// FSEID is the Fully-Qualified SEID: a 64-bit SEID plus at least one
// of an IPv4/IPv6 address, per spec §4.4 (minimum 9 bytes: flags + 8
// byte SEID).
type FSEID struct {
	SEID uint64
	IPv4 net.IP
	IPv6 net.IP
}

const (
	fseidFlagV4 uint8 = 1 << 0
	fseidFlagV6 uint8 = 1 << 1
)

func UnmarshalFSEID(value []byte) (*FSEID, error) {
	if len(value) < 9 {
		return nil, pfcperr.InvalidLengthErr(TypeName(TypeFSEID), TypeFSEID, 9, len(value))
	}
	flags := value[0]
	v4 := flags&fseidFlagV4 != 0
	v6 := flags&fseidFlagV6 != 0
	if !v4 && !v6 {
		return nil, pfcperr.InvalidValueErr(TypeName(TypeFSEID), "at least one of V4/V6 must be set")
	}

	f := &FSEID{SEID: binary.BigEndian.Uint64(value[1:9])}
	offset := 9
	if v4 {
		if len(value) < offset+4 {
			return nil, pfcperr.InvalidLengthErr(TypeName(TypeFSEID), TypeFSEID, offset+4, len(value))
		}
		f.IPv4 = net.IP(append([]byte(nil), value[offset:offset+4]...))
		offset += 4
	}
	if v6 {
		if len(value) < offset+16 {
			return nil, pfcperr.InvalidLengthErr(TypeName(TypeFSEID), TypeFSEID, offset+16, len(value))
		}
		f.IPv6 = net.IP(append([]byte(nil), value[offset:offset+16]...))
		offset += 16
	}
	return f, nil
}

func (f *FSEID) Marshal() []byte {
	var flags uint8
	if f.IPv4 != nil {
		flags |= fseidFlagV4
	}
	if f.IPv6 != nil {
		flags |= fseidFlagV6
	}
	buf := make([]byte, 1, 25)
	buf[0] = flags
	seidBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(seidBytes, f.SEID)
	buf = append(buf, seidBytes...)
	if f.IPv4 != nil {
		buf = append(buf, f.IPv4.To4()...)
	}
	if f.IPv6 != nil {
		buf = append(buf, f.IPv6.To16()...)
	}
	return buf
}

func (f *FSEID) ToIE() []byte { return tlv.Emit(TypeFSEID, nil, f.Marshal()) }

// FTEID is the Fully-Qualified Tunnel Endpoint Identifier: a TEID plus
// an IPv4 and/or IPv6 address, or CHOOSE semantics requesting the peer
// allocate the field. Spec §4.4 flag rules:
//   V4 xor CH, V6 xor CH, CHID requires CH.
type FTEID struct {
	V4, V6, CH, CHID bool
	TEID             uint32
	IPv4             net.IP
	IPv6             net.IP
	ChooseID         uint8
}

const (
	fteidFlagV4   uint8 = 1 << 0
	fteidFlagV6   uint8 = 1 << 1
	fteidFlagCH   uint8 = 1 << 2
	fteidFlagCHID uint8 = 1 << 3
)

func UnmarshalFTEID(value []byte) (*FTEID, error) {
	if len(value) < 1 {
		return nil, pfcperr.InvalidLengthErr(TypeName(TypeFTEID), TypeFTEID, 1, len(value))
	}
	flags := value[0]
	f := &FTEID{
		V4:   flags&fteidFlagV4 != 0,
		V6:   flags&fteidFlagV6 != 0,
		CH:   flags&fteidFlagCH != 0,
		CHID: flags&fteidFlagCHID != 0,
	}
	if err := f.validateFlags(); err != nil {
		return nil, err
	}

	offset := 1
	if !f.CH {
		if len(value) < offset+4 {
			return nil, pfcperr.InvalidLengthErr(TypeName(TypeFTEID), TypeFTEID, offset+4, len(value))
		}
		f.TEID = binary.BigEndian.Uint32(value[offset : offset+4])
		offset += 4
		if f.V4 {
			if len(value) < offset+4 {
				return nil, pfcperr.InvalidLengthErr(TypeName(TypeFTEID), TypeFTEID, offset+4, len(value))
			}
			f.IPv4 = net.IP(append([]byte(nil), value[offset:offset+4]...))
			offset += 4
		}
		if f.V6 {
			if len(value) < offset+16 {
				return nil, pfcperr.InvalidLengthErr(TypeName(TypeFTEID), TypeFTEID, offset+16, len(value))
			}
			f.IPv6 = net.IP(append([]byte(nil), value[offset:offset+16]...))
			offset += 16
		}
	}
	if f.CHID {
		if len(value) < offset+1 {
			return nil, pfcperr.InvalidLengthErr(TypeName(TypeFTEID), TypeFTEID, offset+1, len(value))
		}
		f.ChooseID = value[offset]
	}
	return f, nil
}

// validateFlags enforces spec §4.4's F-TEID flag-combination rules:
// V4 ⊕ CH, V6 ⊕ CH (CHOOSE and a literal address are mutually
// exclusive — CHOOSE must not be combined with a literal for either
// family), and CHID requires CH.
func (f *FTEID) validateFlags() error {
	if f.CH && f.V4 {
		return pfcperr.InvalidValueErr(TypeName(TypeFTEID), "V4 and CH must not both be set")
	}
	if f.CH && f.V6 {
		return pfcperr.InvalidValueErr(TypeName(TypeFTEID), "V6 and CH must not both be set")
	}
	if f.CHID && !f.CH {
		return pfcperr.InvalidValueErr(TypeName(TypeFTEID), "CHID requires CH")
	}
	if !f.V4 && !f.V6 && !f.CH {
		return pfcperr.InvalidValueErr(TypeName(TypeFTEID), "at least one of V4/V6/CH required")
	}
	return nil
}

func (f *FTEID) Marshal() []byte {
	var flags uint8
	if f.V4 {
		flags |= fteidFlagV4
	}
	if f.V6 {
		flags |= fteidFlagV6
	}
	if f.CH {
		flags |= fteidFlagCH
	}
	if f.CHID {
		flags |= fteidFlagCHID
	}
	buf := []byte{flags}
	if !f.CH {
		teidBytes := make([]byte, 4)
		binary.BigEndian.PutUint32(teidBytes, f.TEID)
		buf = append(buf, teidBytes...)
		if f.V4 {
			buf = append(buf, f.IPv4.To4()...)
		}
		if f.V6 {
			buf = append(buf, f.IPv6.To16()...)
		}
	}
	if f.CHID {
		buf = append(buf, f.ChooseID)
	}
	return buf
}

func (f *FTEID) ToIE() []byte { return tlv.Emit(TypeFTEID, nil, f.Marshal()) }

// ValidateBuildTimeFlags applies the same flag-combination rules as the
// parse-time check (validateFlags) to a value built by hand, so V4
// together with CH is rejected at build.
// SessionEstablishmentRequestBuilder.Build calls it for each PDI's F-TEID.
func (f *FTEID) ValidateBuildTimeFlags() error {
	return f.validateFlags()
}

// UEIPAddress carries the UE's IP address in a PDI, with the same
// V4/V6 flag-combination discipline as F-TEID but without a TEID or
// CHOOSE semantics (it additionally supports an IPv6 prefix-delegation
// length and a "no destination/source indication" bit, omitted here as
// out of this module's scope).
type UEIPAddress struct {
	V4, V6 bool
	IPv4   net.IP
	IPv6   net.IP
}

const (
	ueipFlagV4 uint8 = 1 << 1
	ueipFlagV6 uint8 = 1 << 2
)

func UnmarshalUEIPAddress(value []byte) (*UEIPAddress, error) {
	if len(value) < 1 {
		return nil, pfcperr.InvalidLengthErr(TypeName(TypeUEIPAddress), TypeUEIPAddress, 1, len(value))
	}
	flags := value[0]
	u := &UEIPAddress{V4: flags&ueipFlagV4 != 0, V6: flags&ueipFlagV6 != 0}
	if !u.V4 && !u.V6 {
		return nil, pfcperr.InvalidValueErr(TypeName(TypeUEIPAddress), "at least one of V4/V6 required")
	}
	offset := 1
	if u.V4 {
		if len(value) < offset+4 {
			return nil, pfcperr.InvalidLengthErr(TypeName(TypeUEIPAddress), TypeUEIPAddress, offset+4, len(value))
		}
		u.IPv4 = net.IP(append([]byte(nil), value[offset:offset+4]...))
		offset += 4
	}
	if u.V6 {
		if len(value) < offset+16 {
			return nil, pfcperr.InvalidLengthErr(TypeName(TypeUEIPAddress), TypeUEIPAddress, offset+16, len(value))
		}
		u.IPv6 = net.IP(append([]byte(nil), value[offset:offset+16]...))
	}
	return u, nil
}

func (u *UEIPAddress) Marshal() []byte {
	var flags uint8
	if u.V4 {
		flags |= ueipFlagV4
	}
	if u.V6 {
		flags |= ueipFlagV6
	}
	buf := []byte{flags}
	if u.V4 {
		buf = append(buf, u.IPv4.To4()...)
	}
	if u.V6 {
		buf = append(buf, u.IPv6.To16()...)
	}
	return buf
}
