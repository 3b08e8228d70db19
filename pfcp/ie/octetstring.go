package ie

import (
	"github.com/your-org/pfcp-core/pfcp/pfcperr"
	"github.com/your-org/pfcp-core/pfcp/tlv"
)

// MaxFQDNLength bounds any FQDN-shaped string-bearing IE (Node ID
// FQDN variant, APN/DNN) per the RFC limit cited in spec §5.
const MaxFQDNLength = 255

// NetworkInstance is a variable octet-string IE that may legally carry
// length 0 to clear a previously-set network routing context (spec
// §6 allowlist).
type NetworkInstance string

func UnmarshalNetworkInstance(value []byte) (NetworkInstance, error) {
	return NetworkInstance(value), nil
}

func (n NetworkInstance) Marshal() []byte { return []byte(n) }

func (n NetworkInstance) ToIE() []byte { return tlv.Emit(TypeNetworkInstance, nil, n.Marshal()) }

// ForwardingPolicy is a variable octet-string IE; zero length clears a
// previously-set forwarding policy identifier (spec §6 allowlist).
type ForwardingPolicy string

func UnmarshalForwardingPolicy(value []byte) (ForwardingPolicy, error) {
	return ForwardingPolicy(value), nil
}

func (f ForwardingPolicy) Marshal() []byte { return []byte(f) }

func (f ForwardingPolicy) ToIE() []byte { return tlv.Emit(TypeForwardingPolicy, nil, f.Marshal()) }

// APNDNN is a variable octet-string IE; zero length means the default
// APN applies (spec §6 allowlist).
type APNDNN string

func UnmarshalAPNDNN(value []byte) (APNDNN, error) {
	if len(value) > MaxFQDNLength {
		return "", pfcperr.InvalidValueErr(TypeName(TypeAPNDNN), "exceeds maximum FQDN length")
	}
	return APNDNN(value), nil
}

func (a APNDNN) Marshal() []byte { return []byte(a) }

func (a APNDNN) ToIE() []byte { return tlv.Emit(TypeAPNDNN, nil, a.Marshal()) }

// SDFFilter is an opaque octet-string IE carrying a raw IPFilterRule;
// this module treats its internal syntax as opaque to the host, per
// spec §1's "the application layer decides semantics" non-goal, but
// still rejects zero length since SDF Filter is not allowlisted.
type SDFFilter []byte

func UnmarshalSDFFilter(value []byte) (SDFFilter, error) {
	if len(value) == 0 {
		return nil, pfcperr.InvalidLengthErr(TypeName(TypeSDFFilter), TypeSDFFilter, 1, 0)
	}
	return append(SDFFilter(nil), value...), nil
}

func (s SDFFilter) Marshal() []byte { return []byte(s) }

func (s SDFFilter) ToIE() []byte { return tlv.Emit(TypeSDFFilter, nil, s.Marshal()) }

// ApplicationID is an opaque octet-string IE naming a detected
// application.
type ApplicationID string

func UnmarshalApplicationID(value []byte) (ApplicationID, error) {
	if len(value) == 0 {
		return "", pfcperr.InvalidLengthErr(TypeName(TypeApplicationID), TypeApplicationID, 1, 0)
	}
	return ApplicationID(value), nil
}

func (a ApplicationID) Marshal() []byte { return []byte(a) }

func (a ApplicationID) ToIE() []byte { return tlv.Emit(TypeApplicationID, nil, a.Marshal()) }

// PFDContents is an opaque octet-string IE carrying a packet-flow
// description blob (URL/domain/flow descriptions); its internal TLV
// sub-structure is outside this module's scope per spec §1, so it is
// carried as opaque bytes.
type PFDContents []byte

func UnmarshalPFDContents(value []byte) (PFDContents, error) {
	if len(value) == 0 {
		return nil, pfcperr.InvalidLengthErr(TypeName(TypePFDContents), TypePFDContents, 1, 0)
	}
	return append(PFDContents(nil), value...), nil
}

func (p PFDContents) Marshal() []byte { return []byte(p) }

func (p PFDContents) ToIE() []byte { return tlv.Emit(TypePFDContents, nil, p.Marshal()) }
