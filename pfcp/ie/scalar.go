package ie

import (
	"encoding/binary"

	"github.com/your-org/pfcp-core/pfcp/pfcperr"
	"github.com/your-org/pfcp-core/pfcp/tlv"
)

// Precedence is a PDR's selection precedence (lower value = higher
// priority). 0 is invalid per spec §4.4.
type Precedence uint32

// UnmarshalPrecedence decodes a Precedence value and rejects 0.
func UnmarshalPrecedence(value []byte) (Precedence, error) {
	if len(value) < 4 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypePrecedence), TypePrecedence, 4, len(value))
	}
	v := binary.BigEndian.Uint32(value[:4])
	if v == 0 {
		return 0, pfcperr.InvalidValueErr(TypeName(TypePrecedence), "precedence must be non-zero")
	}
	return Precedence(v), nil
}

// Marshal encodes the 4-byte big-endian value.
func (p Precedence) Marshal() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(p))
	return b
}

// ToIE wraps the value in its TLV envelope.
func (p Precedence) ToIE() []byte { return tlv.Emit(TypePrecedence, nil, p.Marshal()) }

// Rule identifiers: PDR ID is 16-bit, FAR/QER/URR IDs are 32-bit, and
// BAR ID is 8-bit; each is its own scalar type below.

// PDRID identifies a Packet Detection Rule within a session (16-bit).
type PDRID uint16

func UnmarshalPDRID(value []byte) (PDRID, error) {
	if len(value) < 2 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypePDRID), TypePDRID, 2, len(value))
	}
	return PDRID(binary.BigEndian.Uint16(value[:2])), nil
}

func (id PDRID) Marshal() []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(id))
	return b
}

func (id PDRID) ToIE() []byte { return tlv.Emit(TypePDRID, nil, id.Marshal()) }

// FARID identifies a Forwarding Action Rule (32-bit).
type FARID uint32

func UnmarshalFARID(value []byte) (FARID, error) {
	if len(value) < 4 {
		return 0, pfcperr.InvalidLengthErr("FAR ID", 0, 4, len(value))
	}
	return FARID(binary.BigEndian.Uint32(value[:4])), nil
}

func (id FARID) Marshal() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(id))
	return b
}

// QERID identifies a QoS Enforcement Rule (32-bit).
type QERID uint32

func UnmarshalQERID(value []byte) (QERID, error) {
	if len(value) < 4 {
		return 0, pfcperr.InvalidLengthErr("QER ID", 0, 4, len(value))
	}
	return QERID(binary.BigEndian.Uint32(value[:4])), nil
}

func (id QERID) Marshal() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(id))
	return b
}

// URRID identifies a Usage Reporting Rule (32-bit).
type URRID uint32

func UnmarshalURRID(value []byte) (URRID, error) {
	if len(value) < 4 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypeURRID), TypeURRID, 4, len(value))
	}
	return URRID(binary.BigEndian.Uint32(value[:4])), nil
}

func (id URRID) Marshal() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(id))
	return b
}

func (id URRID) ToIE() []byte { return tlv.Emit(TypeURRID, nil, id.Marshal()) }

// BARID identifies a Buffering Action Rule (8-bit).
type BARID uint8

func UnmarshalBARID(value []byte) (BARID, error) {
	if len(value) < 1 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypeBARID), TypeBARID, 1, len(value))
	}
	return BARID(value[0]), nil
}

func (id BARID) Marshal() []byte { return []byte{byte(id)} }

func (id BARID) ToIE() []byte { return tlv.Emit(TypeBARID, nil, id.Marshal()) }

// URSEQN is a Usage Report's sequence number within its URR (32-bit).
type URSEQN uint32

func UnmarshalURSEQN(value []byte) (URSEQN, error) {
	if len(value) < 4 {
		return 0, pfcperr.InvalidLengthErr("UR-SEQN", 0, 4, len(value))
	}
	return URSEQN(binary.BigEndian.Uint32(value[:4])), nil
}

func (n URSEQN) Marshal() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(n))
	return b
}

// QFI is the QoS Flow Identifier (6 significant low bits of 1 byte).
type QFI uint8

func UnmarshalQFI(value []byte) (QFI, error) {
	if len(value) < 1 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypeQFI), TypeQFI, 1, len(value))
	}
	return QFI(value[0] & 0x3F), nil
}

func (q QFI) Marshal() []byte { return []byte{byte(q) & 0x3F} }

func (q QFI) ToIE() []byte { return tlv.Emit(TypeQFI, nil, q.Marshal()) }

// RecoveryTimeStamp carries NTP seconds since 1900-01-01, identifying a
// peer's last restart.
type RecoveryTimeStamp uint32

func UnmarshalRecoveryTimeStamp(value []byte) (RecoveryTimeStamp, error) {
	if len(value) < 4 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypeRecoveryTimeStamp), TypeRecoveryTimeStamp, 4, len(value))
	}
	return RecoveryTimeStamp(binary.BigEndian.Uint32(value[:4])), nil
}

func (r RecoveryTimeStamp) Marshal() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(r))
	return b
}

func (r RecoveryTimeStamp) ToIE() []byte { return tlv.Emit(TypeRecoveryTimeStamp, nil, r.Marshal()) }

// SequenceNumber is a generic 32-bit sequence-number-carrying IE, used
// by association-scoped procedures distinct from the header's own
// sequence number.
type SequenceNumber uint32

func UnmarshalSequenceNumber(value []byte) (SequenceNumber, error) {
	if len(value) < 4 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypeSequenceNumber), TypeSequenceNumber, 4, len(value))
	}
	return SequenceNumber(binary.BigEndian.Uint32(value[:4])), nil
}

func (s SequenceNumber) Marshal() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(s))
	return b
}
