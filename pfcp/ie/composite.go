package ie

import "github.com/your-org/pfcp-core/pfcp/pfcperr"

// BitRate is the Composite shape shared by MBR and GBR: an uplink and
// downlink rate, each a 40-bit (5-byte) value in kbps per TS 29.244
// clause 8.2.25/8.2.26.
type BitRate struct {
	Uplink   uint64
	Downlink uint64
}

func unmarshalBitRate(ieType uint16, value []byte) (BitRate, error) {
	if len(value) < 10 {
		return BitRate{}, pfcperr.InvalidLengthErr(TypeName(ieType), ieType, 10, len(value))
	}
	return BitRate{
		Uplink:   readUint40(value[0:5]),
		Downlink: readUint40(value[5:10]),
	}, nil
}

func (b BitRate) marshal() []byte {
	buf := make([]byte, 10)
	writeUint40(buf[0:5], b.Uplink)
	writeUint40(buf[5:10], b.Downlink)
	return buf
}

func readUint40(b []byte) uint64 {
	return uint64(b[0])<<32 | uint64(b[1])<<24 | uint64(b[2])<<16 | uint64(b[3])<<8 | uint64(b[4])
}

func writeUint40(b []byte, v uint64) {
	b[0] = byte(v >> 32)
	b[1] = byte(v >> 24)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 8)
	b[4] = byte(v)
}

// MBR is a QER's Maximum Bit Rate.
type MBR struct{ BitRate }

func UnmarshalMBR(value []byte) (MBR, error) {
	b, err := unmarshalBitRate(TypeMBR, value)
	return MBR{b}, err
}

func (m MBR) Marshal() []byte { return m.marshal() }

// GBR is a QER's Guaranteed Bit Rate.
type GBR struct{ BitRate }

func UnmarshalGBR(value []byte) (GBR, error) {
	b, err := unmarshalBitRate(TypeGBR, value)
	return GBR{b}, err
}

func (g GBR) Marshal() []byte { return g.marshal() }

// QERCorrelationID links multiple QERs across sessions so their
// aggregate bit rate can be enforced jointly.
type QERCorrelationID uint32

func UnmarshalQERCorrelationID(value []byte) (QERCorrelationID, error) {
	if len(value) < 4 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypeQERCorrelationID), TypeQERCorrelationID, 4, len(value))
	}
	return QERCorrelationID(uint32(value[0])<<24 | uint32(value[1])<<16 | uint32(value[2])<<8 | uint32(value[3])), nil
}

func (q QERCorrelationID) Marshal() []byte {
	return []byte{byte(q >> 24), byte(q >> 16), byte(q >> 8), byte(q)}
}

// RQI is the Reflective QoS Indication flag; a single bit packed in a
// one-byte field per TS 29.244 clause 8.2.123.
type RQI bool

func UnmarshalRQI(value []byte) (RQI, error) {
	if len(value) < 1 {
		return false, pfcperr.InvalidLengthErr(TypeName(TypeRQI), TypeRQI, 1, len(value))
	}
	return RQI(value[0]&0x01 != 0), nil
}

func (r RQI) Marshal() []byte {
	if r {
		return []byte{0x01}
	}
	return []byte{0x00}
}
