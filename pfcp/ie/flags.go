package ie

import (
	"github.com/your-org/pfcp-core/pfcp/pfcperr"
	"github.com/your-org/pfcp-core/pfcp/tlv"
)

// ApplyAction is the flag byte controlling how a FAR disposes of
// matched traffic. Named bits per TS 29.244 clause 8.2.26; undefined
// bits are never interpreted.
type ApplyAction uint8

const (
	ApplyActionDrop ApplyAction = 1 << 0
	ApplyActionForw ApplyAction = 1 << 1
	ApplyActionBuff ApplyAction = 1 << 2
	ApplyActionNoCP ApplyAction = 1 << 3
	ApplyActionDupl ApplyAction = 1 << 4
)

func UnmarshalApplyAction(value []byte) (ApplyAction, error) {
	if len(value) < 1 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypeApplyAction), TypeApplyAction, 1, len(value))
	}
	return ApplyAction(value[0]), nil
}

func (a ApplyAction) Marshal() []byte { return []byte{byte(a)} }

func (a ApplyAction) Drop() bool { return a&ApplyActionDrop != 0 }
func (a ApplyAction) Forw() bool { return a&ApplyActionForw != 0 }
func (a ApplyAction) Buff() bool { return a&ApplyActionBuff != 0 }
func (a ApplyAction) NoCP() bool { return a&ApplyActionNoCP != 0 }
func (a ApplyAction) Dupl() bool { return a&ApplyActionDupl != 0 }

// GateStatus controls whether a QER's uplink/downlink gates are open.
type GateStatus uint8

const (
	GateOpen   GateStatus = 0
	GateClosed GateStatus = 1
)

// UnmarshalGateStatus decodes the packed UL (bits 1-0) / DL (bits 3-2)
// gate status byte.
func UnmarshalGateStatus(value []byte) (ul, dl GateStatus, err error) {
	if len(value) < 1 {
		return 0, 0, pfcperr.InvalidLengthErr(TypeName(TypeGateStatus), TypeGateStatus, 1, len(value))
	}
	ul = GateStatus(value[0] & 0x03)
	dl = GateStatus((value[0] >> 2) & 0x03)
	return ul, dl, nil
}

func MarshalGateStatus(ul, dl GateStatus) []byte {
	return []byte{byte(ul&0x03) | byte(dl&0x03)<<2}
}

// UsageReportTrigger is a multi-byte flag field naming why a Usage
// Report was generated. Only the first two octets (the common subset
// used by this module) are interpreted; any further octets are
// preserved verbatim in Extra so marshal(unmarshal(v)) reproduces the
// exact wire length instead of padding or truncating it.
type UsageReportTrigger struct {
	Octet1 uint8
	Octet2 uint8
	Extra  []byte
}

const (
	URTPeriodicReport uint8 = 1 << 0
	URTVolumeThreshold uint8 = 1 << 1
	URTTimeThreshold   uint8 = 1 << 2
	URTQuotaHoldingTime uint8 = 1 << 3
	URTStartOfTraffic   uint8 = 1 << 4
	URTStopOfTraffic    uint8 = 1 << 5
	URTDroppedDLTraffic uint8 = 1 << 6
	URTLinkedUsageReporting uint8 = 1 << 7
)

func UnmarshalUsageReportTrigger(value []byte) (UsageReportTrigger, error) {
	if len(value) < 2 {
		return UsageReportTrigger{}, pfcperr.InvalidLengthErr(TypeName(TypeUsageReportTrigger), TypeUsageReportTrigger, 2, len(value))
	}
	var extra []byte
	if len(value) > 2 {
		extra = append([]byte(nil), value[2:]...)
	}
	return UsageReportTrigger{Octet1: value[0], Octet2: value[1], Extra: extra}, nil
}

func (u UsageReportTrigger) Marshal() []byte {
	b := append([]byte{u.Octet1, u.Octet2}, u.Extra...)
	return b
}

func (u UsageReportTrigger) ToIE() []byte { return tlv.Emit(TypeUsageReportTrigger, nil, u.Marshal()) }

func (u UsageReportTrigger) Periodic() bool { return u.Octet1&URTPeriodicReport != 0 }
func (u UsageReportTrigger) VolumeThreshold() bool { return u.Octet1&URTVolumeThreshold != 0 }
func (u UsageReportTrigger) TimeThreshold() bool { return u.Octet1&URTTimeThreshold != 0 }
