// Package tlv implements the Type-Length-Value envelope shared by
// every PFCP Information Element: 3GPP TS 29.244 clause 8.1.2.
package tlv

import (
	"github.com/your-org/pfcp-core/internal/wire"
	"github.com/your-org/pfcp-core/pfcp/pfcperr"
)

// EnterpriseBit is set in the Type field's bit 15 when the IE is a
// vendor-specific (enterprise) IE.
const EnterpriseBit uint16 = 0x8000

// MinHeaderLength is the envelope size with no enterprise ID.
const MinHeaderLength = 4

// EnterpriseHeaderLength is the envelope size when the enterprise bit
// is set (type + length + 2-byte enterprise ID).
const EnterpriseHeaderLength = 6

// zeroLengthAllowlist is the bit-exact set of type codes that may
// carry a zero-length value, per spec §6. Every other IE MUST be
// rejected at length 0 — this is enforced universally at this layer,
// not opt-in per IE.
var zeroLengthAllowlist = map[uint16]bool{
	22:  true, // Network Instance
	41:  true, // Forwarding Policy
	159: true, // APN/DNN
}

// ZeroLengthAllowed reports whether ieType may legally carry a
// zero-length value.
func ZeroLengthAllowed(ieType uint16) bool {
	return zeroLengthAllowlist[ieType]
}

// IE is a parsed TLV envelope: the type code, an optional enterprise
// ID, and the opaque value slice. Value aliases the input buffer and
// must not be retained past the buffer's lifetime by callers that
// intend to reuse it.
type IE struct {
	Type         uint16
	Enterprise   *uint16
	Value        []byte
	TotalConsumed int
}

// IsEnterprise reports whether bit 15 of Type is set.
func (ie *IE) IsEnterprise() bool {
	return ie.Type&EnterpriseBit != 0
}

// MandatoryToUnderstand reports whether bit 15 of Type is clear,
// meaning an unrecognized instance of this type must fail parsing
// rather than being silently skipped (spec §4.5 unknown-children
// rule).
func (ie *IE) MandatoryToUnderstand() bool {
	return !ie.IsEnterprise()
}

// Parse decodes a single TLV envelope from the front of buf.
//
// It requires at least 4 bytes for the type+length header, 6 if the
// enterprise bit is set, and enforces 4+length <= len(buf) (the
// enterprise ID, if present, counts toward length per spec §3). It
// then enforces the universal zero-length policy: a zero-length value
// outside ZeroLengthAllowed fails with ZeroLengthNotAllowed.
func Parse(buf []byte) (*IE, error) {
	if len(buf) < MinHeaderLength {
		return nil, pfcperr.InvalidLengthErr("TLV", 0, MinHeaderLength, len(buf))
	}

	ieType := wire.BE.Uint16(buf[0:2])
	length := wire.BE.Uint16(buf[2:4])

	headerLen := MinHeaderLength
	var enterprise *uint16
	valueLen := int(length)

	if ieType&EnterpriseBit != 0 {
		if len(buf) < EnterpriseHeaderLength {
			return nil, pfcperr.InvalidLengthErr("TLV", ieType, EnterpriseHeaderLength, len(buf))
		}
		id := wire.BE.Uint16(buf[4:6])
		enterprise = &id
		headerLen = EnterpriseHeaderLength
		valueLen = int(length) - 2
		if valueLen < 0 {
			return nil, pfcperr.InvalidLengthErr("TLV", ieType, 2, int(length))
		}
	}

	total := MinHeaderLength + int(length)
	if total > len(buf) {
		return nil, pfcperr.InvalidLengthErr("TLV", ieType, total, len(buf))
	}

	if valueLen == 0 && !ZeroLengthAllowed(ieType) {
		return nil, pfcperr.ZeroLengthNotAllowedErr(ieType)
	}

	value := buf[headerLen:total]

	return &IE{
		Type:          ieType,
		Enterprise:    enterprise,
		Value:         value,
		TotalConsumed: total,
	}, nil
}

// Iterate walks buf, invoking fn once per parsed IE in wire order.
// Iteration stops cleanly at end-of-buffer and fails on a truncated
// trailing IE header. fn may return a non-nil error to abort iteration
// early; that error is returned unwrapped from Iterate.
func Iterate(buf []byte, fn func(ie *IE) error) error {
	offset := 0
	for offset < len(buf) {
		ie, err := Parse(buf[offset:])
		if err != nil {
			return err
		}
		if err := fn(ie); err != nil {
			return err
		}
		offset += ie.TotalConsumed
	}
	return nil
}

// Emit writes ieType (with the enterprise bit set if enterprise is
// non-nil), the length (adjusted to include the 2-byte enterprise ID
// when present), the enterprise ID itself, and then value, returning
// the complete envelope.
func Emit(ieType uint16, enterprise *uint16, value []byte) []byte {
	length := len(value)
	headerLen := MinHeaderLength
	if enterprise != nil {
		ieType |= EnterpriseBit
		length += 2
		headerLen = EnterpriseHeaderLength
	}

	buf := make([]byte, headerLen, headerLen+len(value))
	wire.BE.PutUint16(buf[0:2], ieType)
	wire.BE.PutUint16(buf[2:4], uint16(length))
	if enterprise != nil {
		wire.BE.PutUint16(buf[4:6], *enterprise)
	}
	buf = append(buf, value...)
	return buf
}
