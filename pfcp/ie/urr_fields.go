package ie

import (
	"encoding/binary"

	"github.com/your-org/pfcp-core/pfcp/pfcperr"
	"github.com/your-org/pfcp-core/pfcp/tlv"
)

// MeasurementMethod is a URR's flag byte selecting which of
// duration/volume/event it accumulates.
type MeasurementMethod uint8

const (
	MeasurementMethodDURAT MeasurementMethod = 1 << 0
	MeasurementMethodVOLUM MeasurementMethod = 1 << 1
	MeasurementMethodEVENT MeasurementMethod = 1 << 2
)

func UnmarshalMeasurementMethod(value []byte) (MeasurementMethod, error) {
	if len(value) < 1 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypeMeasurementMethod), TypeMeasurementMethod, 1, len(value))
	}
	return MeasurementMethod(value[0]), nil
}

func (m MeasurementMethod) Marshal() []byte { return []byte{byte(m)} }
func (m MeasurementMethod) ToIE() []byte    { return tlv.Emit(TypeMeasurementMethod, nil, m.Marshal()) }

// ReportingTriggers is a URR's multi-byte flag field naming which
// conditions trigger a Usage Report; only the first two octets are
// interpreted, any further octets round-trip verbatim via Extra.
type ReportingTriggers struct {
	Octet1, Octet2 uint8
	Extra          []byte
}

func UnmarshalReportingTriggers(value []byte) (ReportingTriggers, error) {
	if len(value) < 2 {
		return ReportingTriggers{}, pfcperr.InvalidLengthErr(TypeName(TypeReportingTriggers), TypeReportingTriggers, 2, len(value))
	}
	var extra []byte
	if len(value) > 2 {
		extra = append([]byte(nil), value[2:]...)
	}
	return ReportingTriggers{Octet1: value[0], Octet2: value[1], Extra: extra}, nil
}

func (r ReportingTriggers) Marshal() []byte {
	return append([]byte{r.Octet1, r.Octet2}, r.Extra...)
}

func (r ReportingTriggers) ToIE() []byte { return tlv.Emit(TypeReportingTriggers, nil, r.Marshal()) }

// volumeFields is the shared Composite shape for Volume Threshold,
// Volume Quota, and their Subsequent-* variants: a presence-flag octet
// followed by the present 8-byte total/uplink/downlink counters, in
// that order (spec §3's Composite shape).
type volumeFields struct {
	HasTotal, HasUplink, HasDownlink bool
	Total, Uplink, Downlink          uint64
}

func unmarshalVolumeFields(ieType uint16, value []byte) (volumeFields, error) {
	if len(value) < 1 {
		return volumeFields{}, pfcperr.InvalidLengthErr(TypeName(ieType), ieType, 1, len(value))
	}
	flags := value[0]
	v := volumeFields{
		HasTotal:    flags&0x01 != 0,
		HasUplink:   flags&0x02 != 0,
		HasDownlink: flags&0x04 != 0,
	}
	offset := 1
	read := func() (uint64, error) {
		if len(value) < offset+8 {
			return 0, pfcperr.InvalidLengthErr(TypeName(ieType), ieType, offset+8, len(value))
		}
		val := binary.BigEndian.Uint64(value[offset : offset+8])
		offset += 8
		return val, nil
	}
	var err error
	if v.HasTotal {
		if v.Total, err = read(); err != nil {
			return volumeFields{}, err
		}
	}
	if v.HasUplink {
		if v.Uplink, err = read(); err != nil {
			return volumeFields{}, err
		}
	}
	if v.HasDownlink {
		if v.Downlink, err = read(); err != nil {
			return volumeFields{}, err
		}
	}
	return v, nil
}

func (v volumeFields) marshal() []byte {
	var flags uint8
	if v.HasTotal {
		flags |= 0x01
	}
	if v.HasUplink {
		flags |= 0x02
	}
	if v.HasDownlink {
		flags |= 0x04
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

// VolumeThreshold is the accumulated-volume level that triggers a
// Usage Report.
type VolumeThreshold struct{ volumeFields }

func UnmarshalVolumeThreshold(value []byte) (VolumeThreshold, error) {
	v, err := unmarshalVolumeFields(TypeVolumeThreshold, value)
	return VolumeThreshold{v}, err
}

func (v VolumeThreshold) Marshal() []byte { return v.marshal() }
func (v VolumeThreshold) ToIE() []byte    { return tlv.Emit(TypeVolumeThreshold, nil, v.Marshal()) }

// VolumeQuota is the total volume allowance before the UPF must request
// a new quota.
type VolumeQuota struct{ volumeFields }

func UnmarshalVolumeQuota(value []byte) (VolumeQuota, error) {
	v, err := unmarshalVolumeFields(TypeVolumeQuota, value)
	return VolumeQuota{v}, err
}

func (v VolumeQuota) Marshal() []byte { return v.marshal() }
func (v VolumeQuota) ToIE() []byte    { return tlv.Emit(TypeVolumeQuota, nil, v.Marshal()) }

// timeSeconds is the shared Scalar shape for the family of 32-bit
// elapsed/threshold-seconds IEs (Time Threshold, Time Quota,
// Monitoring Time, Quota Holding Time).
type timeSeconds uint32

func unmarshalTimeSeconds(ieType uint16, value []byte) (timeSeconds, error) {
	if len(value) < 4 {
		return 0, pfcperr.InvalidLengthErr(TypeName(ieType), ieType, 4, len(value))
	}
	return timeSeconds(binary.BigEndian.Uint32(value[:4])), nil
}

func (t timeSeconds) marshal() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(t))
	return b
}

// TimeThreshold is the elapsed-seconds level that triggers a Usage
// Report.
type TimeThreshold uint32

func UnmarshalTimeThreshold(value []byte) (TimeThreshold, error) {
	t, err := unmarshalTimeSeconds(TypeTimeThreshold, value)
	return TimeThreshold(t), err
}

func (t TimeThreshold) Marshal() []byte { return timeSeconds(t).marshal() }
func (t TimeThreshold) ToIE() []byte    { return tlv.Emit(TypeTimeThreshold, nil, t.Marshal()) }

// TimeQuota is the total elapsed-seconds allowance before the UPF must
// request a new quota.
type TimeQuota uint32

func UnmarshalTimeQuota(value []byte) (TimeQuota, error) {
	t, err := unmarshalTimeSeconds(TypeTimeQuota, value)
	return TimeQuota(t), err
}

func (t TimeQuota) Marshal() []byte { return timeSeconds(t).marshal() }
func (t TimeQuota) ToIE() []byte    { return tlv.Emit(TypeTimeQuota, nil, t.Marshal()) }

// MonitoringTime is the absolute NTP timestamp at which a URR's
// thresholds reset, per TS 29.244 clause 8.2.19.
type MonitoringTime uint32

func UnmarshalMonitoringTime(value []byte) (MonitoringTime, error) {
	t, err := unmarshalTimeSeconds(TypeMonitoringTime, value)
	return MonitoringTime(t), err
}

func (t MonitoringTime) Marshal() []byte { return timeSeconds(t).marshal() }
func (t MonitoringTime) ToIE() []byte    { return tlv.Emit(TypeMonitoringTime, nil, t.Marshal()) }
