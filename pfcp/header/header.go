// Package header implements the PFCP message header codec: the 8- or
// 16-byte fixed prefix that precedes every message's IE sequence, per
// 3GPP TS 29.244 Release 18 clause 7.2.2.
package header

import (
	"github.com/your-org/pfcp-core/internal/wire"
	"github.com/your-org/pfcp-core/pfcp/pfcperr"
)

// Version is the only PFCP version this module understands.
const Version uint8 = 1

// MinLength is the shortest possible header: no SEID present.
const MinLength = 8

// SEIDLength is the header length when the SEID flag is set.
const SEIDLength = 16

// Header is the decoded form of the 8/16-byte PFCP header.
type Header struct {
	Version uint8

	// FO is the Follow-On flag, passed through unmodified.
	FO bool
	// MP is the Message Priority flag; when set, Priority is
	// meaningful.
	MP bool
	// SEIDPresent mirrors the S flag; when true, SEID carries the
	// session endpoint identifier addressed by this message.
	SEIDPresent bool

	MessageType   uint8
	MessageLength uint16

	SEID uint64

	SequenceNumber uint32 // low 24 bits significant
	Priority       uint8  // meaningful iff MP is set
}

// Len returns the serialized header length: 8 bytes, or 16 if SEID is
// present.
func (h *Header) Len() int {
	if h.SEIDPresent {
		return SEIDLength
	}
	return MinLength
}

// Parse decodes a PFCP header from the front of buf and returns the
// decoded header plus the offset at which the IE sequence begins.
// Parse never reads past the declared structure and never panics on a
// truncated or malformed buffer.
func Parse(buf []byte) (*Header, int, error) {
	if len(buf) < MinLength {
		return nil, 0, pfcperr.InvalidLengthErr("Header", 0, MinLength, len(buf))
	}

	b0 := buf[0]
	version := (b0 >> 5) & 0x07
	if version != Version {
		return nil, 0, pfcperr.UnsupportedVersionErr(version, Version)
	}

	h := &Header{
		Version:     version,
		FO:          b0&0x04 != 0,
		MP:          b0&0x02 != 0,
		SEIDPresent: b0&0x01 != 0,
		MessageType: buf[1],
	}
	h.MessageLength = wire.BE.Uint16(buf[2:4])

	offset := 4
	if h.SEIDPresent {
		if len(buf) < SEIDLength {
			return nil, 0, pfcperr.InvalidLengthErr("Header", 0, SEIDLength, len(buf))
		}
		h.SEID = wire.BE.Uint64(buf[4:12])
		offset = 12
	}

	if len(buf) < offset+4 {
		return nil, 0, pfcperr.InvalidLengthErr("Header", 0, offset+4, len(buf))
	}
	seqAndPriority := buf[offset : offset+4]
	h.SequenceNumber = wire.Uint24(seqAndPriority[0:3])
	if h.MP {
		h.Priority = seqAndPriority[3] & 0x0F
	}
	offset += 4

	declaredEnd := 4 + int(h.MessageLength)
	if declaredEnd < offset {
		return nil, 0, pfcperr.InvalidLengthErr("Header", 0, offset, declaredEnd)
	}
	if declaredEnd > len(buf) {
		return nil, 0, pfcperr.InvalidLengthErr("Header", 0, declaredEnd, len(buf))
	}

	return h, offset, nil
}

// Emit serializes h into a fresh buffer, followed immediately by
// payload (the sequence/priority word is NOT included in payload — it
// is written by Emit itself). MessageLength is computed from
// len(payload) plus the SEID and sequence/priority fields, overriding
// any value already stored on h.
func Emit(h *Header, payload []byte) []byte {
	bodyLen := 4 + len(payload) // sequence+priority word, plus IEs
	if h.SEIDPresent {
		bodyLen += 8
	}

	buf := make([]byte, h.headerLenFor(), bodyLen+4)

	var b0 byte
	b0 |= (Version & 0x07) << 5
	if h.FO {
		b0 |= 0x04
	}
	if h.MP {
		b0 |= 0x02
	}
	if h.SEIDPresent {
		b0 |= 0x01
	}
	buf[0] = b0
	buf[1] = h.MessageType
	wire.BE.PutUint16(buf[2:4], uint16(bodyLen))

	offset := 4
	if h.SEIDPresent {
		wire.BE.PutUint64(buf[4:12], h.SEID)
		offset = 12
	}

	wire.PutUint24(buf[offset:offset+3], h.SequenceNumber)
	if h.MP {
		buf[offset+3] = h.Priority & 0x0F
	} else {
		buf[offset+3] = 0
	}

	buf = append(buf, payload...)
	return buf
}

func (h *Header) headerLenFor() int {
	if h.SEIDPresent {
		return SEIDLength
	}
	return MinLength
}
