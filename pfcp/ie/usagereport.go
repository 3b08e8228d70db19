package ie

import "github.com/your-org/pfcp-core/pfcp/pfcperr"

// UsageReport is the grouped IE a Session Report Request uses to carry
// one URR's accumulated usage. Mandatory: URR ID, UR-SEQN, Usage Report
// Trigger (spec §4.4); volume/duration/Ethernet traffic are optional
// depending on the URR's configured measurement method.
type UsageReport struct {
	URRID                      URRID
	URSEQN                     URSEQN
	UsageReportTrigger         UsageReportTrigger
	VolumeMeasurement          *VolumeMeasurement
	DurationMeasurement        *DurationMeasurement
	EthernetTrafficInformation *EthernetTrafficInformation
}

func ParseUsageReport(value []byte, depth int) (*UsageReport, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	name := TypeName(TypeUsageReport)

	idChild, err := g.RequireOne(name, TypeURRID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalURRID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}

	seqnChild, err := g.RequireOne(name, TypeURSEQN)
	if err != nil {
		return nil, err
	}
	seqn, err := UnmarshalURSEQN(seqnChild.Raw.Value)
	if err != nil {
		return nil, err
	}

	trigChild, err := g.RequireOne(name, TypeUsageReportTrigger)
	if err != nil {
		return nil, err
	}
	trig, err := UnmarshalUsageReportTrigger(trigChild.Raw.Value)
	if err != nil {
		return nil, err
	}

	ur := &UsageReport{URRID: id, URSEQN: seqn, UsageReportTrigger: trig}

	if c := g.First(TypeVolumeMeasurement); c != nil {
		v, err := UnmarshalVolumeMeasurement(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		ur.VolumeMeasurement = v
	}
	if c := g.First(TypeDurationMeasurement); c != nil {
		d, err := UnmarshalDurationMeasurement(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		ur.DurationMeasurement = &d
	}
	if c := g.First(TypeEthernetTrafficInformation); c != nil {
		if c.Group == nil {
			return nil, pfcperr.InvalidValueErr(TypeName(TypeEthernetTrafficInformation), "expected grouped value")
		}
		e, err := ParseEthernetTrafficInformation(c.Raw.Value, depth+1)
		if err != nil {
			return nil, err
		}
		ur.EthernetTrafficInformation = e
	}
	return ur, nil
}

func (u *UsageReport) Marshal() []byte {
	parts := [][]byte{
		tlvWrap(TypeURRID, u.URRID.Marshal()),
		tlvWrap(TypeURSEQN, u.URSEQN.Marshal()),
		u.UsageReportTrigger.ToIE(),
	}
	if u.VolumeMeasurement != nil {
		parts = append(parts, tlvWrap(TypeVolumeMeasurement, u.VolumeMeasurement.Marshal()))
	}
	if u.DurationMeasurement != nil {
		parts = append(parts, tlvWrap(TypeDurationMeasurement, u.DurationMeasurement.Marshal()))
	}
	if u.EthernetTrafficInformation != nil {
		parts = append(parts, u.EthernetTrafficInformation.ToIE())
	}
	return Emit(parts...)
}

func (u *UsageReport) ToIE() []byte { return tlvWrap(TypeUsageReport, u.Marshal()) }
