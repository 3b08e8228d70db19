package ie

import (
	"net"

	"github.com/your-org/pfcp-core/pfcp/pfcperr"
	"github.com/your-org/pfcp-core/pfcp/tlv"
)

// UPFunctionFeatures is a UPF's advertised capability bitmask, per TS
// 29.244 clause 8.2.63. The spec keeps extending this field with more
// octets across releases; only the first two (Release 15 baseline) are
// named here, with any further octets preserved verbatim in Extra so
// the round-trip law holds regardless of how many the peer sent.
type UPFunctionFeatures struct {
	Octet1, Octet2 uint8
	Extra          []byte
}

const (
	UPFFBUCP uint8 = 1 << 0
	UPFFDDND uint8 = 1 << 1
	UPFFDLBD uint8 = 1 << 2
	UPFFTRST uint8 = 1 << 3
	UPFFFTUP uint8 = 1 << 4
	UPFFPFDM uint8 = 1 << 5
	UPFFHEEU uint8 = 1 << 6
	UPFFTREU uint8 = 1 << 7
)

func UnmarshalUPFunctionFeatures(value []byte) (*UPFunctionFeatures, error) {
	if len(value) < 2 {
		return nil, pfcperr.InvalidLengthErr(TypeName(TypeUPFunctionFeatures), TypeUPFunctionFeatures, 2, len(value))
	}
	f := &UPFunctionFeatures{Octet1: value[0], Octet2: value[1]}
	if len(value) > 2 {
		f.Extra = append([]byte(nil), value[2:]...)
	}
	return f, nil
}

func (f *UPFunctionFeatures) Marshal() []byte {
	return append([]byte{f.Octet1, f.Octet2}, f.Extra...)
}

func (f *UPFunctionFeatures) ToIE() []byte { return tlv.Emit(TypeUPFunctionFeatures, nil, f.Marshal()) }

func (f *UPFunctionFeatures) Supports(bit uint8) bool { return f.Octet1&bit != 0 }

// CPFunctionFeatures is an SMF's advertised capability bitmask, per TS
// 29.244 clause 8.2.88.
type CPFunctionFeatures uint8

const (
	CPFFLOAD CPFunctionFeatures = 1 << 0
	CPFFOVRL CPFunctionFeatures = 1 << 1
)

func UnmarshalCPFunctionFeatures(value []byte) (CPFunctionFeatures, error) {
	if len(value) < 1 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypeCPFunctionFeatures), TypeCPFunctionFeatures, 1, len(value))
	}
	return CPFunctionFeatures(value[0]), nil
}

func (c CPFunctionFeatures) Marshal() []byte { return []byte{byte(c)} }

func (c CPFunctionFeatures) ToIE() []byte { return tlv.Emit(TypeCPFunctionFeatures, nil, c.Marshal()) }

// NodeReportType is a flag byte naming why a Node Report Request was
// generated; only UPFR (User Plane Path Failure Report) is modeled.
type NodeReportType uint8

const NodeReportTypeUPFR NodeReportType = 1 << 0

func UnmarshalNodeReportType(value []byte) (NodeReportType, error) {
	if len(value) < 1 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypeNodeReportType), TypeNodeReportType, 1, len(value))
	}
	return NodeReportType(value[0] & 0x01), nil
}

func (n NodeReportType) Marshal() []byte { return []byte{byte(n) & 0x01} }

func (n NodeReportType) ToIE() []byte { return tlv.Emit(TypeNodeReportType, nil, n.Marshal()) }

func (n NodeReportType) HasUPFR() bool { return n&NodeReportTypeUPFR != 0 }

// RemoteGTPUPeer identifies a GTP-U peer whose path has failed, by
// IPv4 and/or IPv6 address, with the same flag discipline as F-TEID's
// address fields (minus TEID/CHOOSE semantics).
type RemoteGTPUPeer struct {
	V4, V6 bool
	IPv4   net.IP
	IPv6   net.IP
}

const (
	rgtpuFlagV4 uint8 = 1 << 0
	rgtpuFlagV6 uint8 = 1 << 1
)

func UnmarshalRemoteGTPUPeer(value []byte) (*RemoteGTPUPeer, error) {
	if len(value) < 1 {
		return nil, pfcperr.InvalidLengthErr(TypeName(TypeRemoteGTPUPeer), TypeRemoteGTPUPeer, 1, len(value))
	}
	flags := value[0]
	r := &RemoteGTPUPeer{V4: flags&rgtpuFlagV4 != 0, V6: flags&rgtpuFlagV6 != 0}
	if !r.V4 && !r.V6 {
		return nil, pfcperr.InvalidValueErr(TypeName(TypeRemoteGTPUPeer), "at least one of V4/V6 required")
	}
	offset := 1
	if r.V4 {
		if len(value) < offset+4 {
			return nil, pfcperr.InvalidLengthErr(TypeName(TypeRemoteGTPUPeer), TypeRemoteGTPUPeer, offset+4, len(value))
		}
		r.IPv4 = net.IP(append([]byte(nil), value[offset:offset+4]...))
		offset += 4
	}
	if r.V6 {
		if len(value) < offset+16 {
			return nil, pfcperr.InvalidLengthErr(TypeName(TypeRemoteGTPUPeer), TypeRemoteGTPUPeer, offset+16, len(value))
		}
		r.IPv6 = net.IP(append([]byte(nil), value[offset:offset+16]...))
	}
	return r, nil
}

func (r *RemoteGTPUPeer) Marshal() []byte {
	var flags uint8
	if r.V4 {
		flags |= rgtpuFlagV4
	}
	if r.V6 {
		flags |= rgtpuFlagV6
	}
	buf := []byte{flags}
	if r.V4 {
		buf = append(buf, r.IPv4.To4()...)
	}
	if r.V6 {
		buf = append(buf, r.IPv6.To16()...)
	}
	return buf
}

func (r *RemoteGTPUPeer) ToIE() []byte { return tlv.Emit(TypeRemoteGTPUPeer, nil, r.Marshal()) }

// UserPlanePathFailureReport is the grouped IE carried by Node Report
// Request, naming every failed peer. Mandatory: at least one Remote
// GTP-U Peer (spec §7 supplemental scope).
type UserPlanePathFailureReport struct {
	RemoteGTPUPeers []*RemoteGTPUPeer
}

func ParseUserPlanePathFailureReport(value []byte, depth int) (*UserPlanePathFailureReport, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	name := TypeName(TypeUserPlanePathFailureReport)
	peers := g.All(TypeRemoteGTPUPeer)
	if len(peers) == 0 {
		return nil, pfcperr.MandatoryIeMissingErr(name, TypeName(TypeRemoteGTPUPeer))
	}
	r := &UserPlanePathFailureReport{}
	for _, c := range peers {
		p, err := UnmarshalRemoteGTPUPeer(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		r.RemoteGTPUPeers = append(r.RemoteGTPUPeers, p)
	}
	return r, nil
}

func (r *UserPlanePathFailureReport) Marshal() []byte {
	var parts [][]byte
	for _, p := range r.RemoteGTPUPeers {
		parts = append(parts, p.ToIE())
	}
	return Emit(parts...)
}

func (r *UserPlanePathFailureReport) ToIE() []byte {
	return tlvWrap(TypeUserPlanePathFailureReport, r.Marshal())
}

// PFCPAssocReleaseRequest is a flag byte requesting association
// release (SARR: Sx/N4 Association Release Request).
type PFCPAssocReleaseRequest uint8

const PARRSARR PFCPAssocReleaseRequest = 1 << 0

func UnmarshalPFCPAssocReleaseRequest(value []byte) (PFCPAssocReleaseRequest, error) {
	if len(value) < 1 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypePFCPAssocReleaseRequest), TypePFCPAssocReleaseRequest, 1, len(value))
	}
	return PFCPAssocReleaseRequest(value[0] & 0x01), nil
}

func (p PFCPAssocReleaseRequest) Marshal() []byte { return []byte{byte(p) & 0x01} }

func (p PFCPAssocReleaseRequest) ToIE() []byte {
	return tlv.Emit(TypePFCPAssocReleaseRequest, nil, p.Marshal())
}

// GracefulReleasePeriod is a timer value (unit + value per TS 29.061
// clause 5.9.9.5 octet encoding, carried opaquely here as raw bits).
type GracefulReleasePeriod uint8

func UnmarshalGracefulReleasePeriod(value []byte) (GracefulReleasePeriod, error) {
	if len(value) < 1 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypeGracefulReleasePeriod), TypeGracefulReleasePeriod, 1, len(value))
	}
	return GracefulReleasePeriod(value[0]), nil
}

func (g GracefulReleasePeriod) Marshal() []byte { return []byte{byte(g)} }

func (g GracefulReleasePeriod) ToIE() []byte {
	return tlv.Emit(TypeGracefulReleasePeriod, nil, g.Marshal())
}

// PFCPSMReqFlags is a flag byte on Session Modification Request (DROBU,
// SNDEM, QAURR).
type PFCPSMReqFlags uint8

const (
	SMReqDROBU PFCPSMReqFlags = 1 << 0
	SMReqSNDEM PFCPSMReqFlags = 1 << 1
	SMReqQAURR PFCPSMReqFlags = 1 << 2
)

func UnmarshalPFCPSMReqFlags(value []byte) (PFCPSMReqFlags, error) {
	if len(value) < 1 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypePFCPSMReqFlags), TypePFCPSMReqFlags, 1, len(value))
	}
	return PFCPSMReqFlags(value[0]), nil
}

func (f PFCPSMReqFlags) Marshal() []byte { return []byte{byte(f)} }

func (f PFCPSMReqFlags) ToIE() []byte { return tlv.Emit(TypePFCPSMReqFlags, nil, f.Marshal()) }

// PFCPSRRspFlags is a flag byte on Session Report Response (DROBU).
type PFCPSRRspFlags uint8

const SRRspDROBU PFCPSRRspFlags = 1 << 0

func UnmarshalPFCPSRRspFlags(value []byte) (PFCPSRRspFlags, error) {
	if len(value) < 1 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypePFCPSRRspFlags), TypePFCPSRRspFlags, 1, len(value))
	}
	return PFCPSRRspFlags(value[0] & 0x01), nil
}

func (f PFCPSRRspFlags) Marshal() []byte { return []byte{byte(f) & 0x01} }

func (f PFCPSRRspFlags) ToIE() []byte { return tlv.Emit(TypePFCPSRRspFlags, nil, f.Marshal()) }
