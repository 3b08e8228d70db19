package ie

// CreateURR is the grouped IE installing a Usage Reporting Rule.
// Mandatory: URR ID, Measurement Method. Optional: Reporting Triggers
// plus whichever thresholds/quotas the measurement method calls for.
type CreateURR struct {
	URRID              URRID
	MeasurementMethod  MeasurementMethod
	ReportingTriggers  *ReportingTriggers
	VolumeThreshold    *VolumeThreshold
	VolumeQuota        *VolumeQuota
	TimeThreshold      *TimeThreshold
	TimeQuota          *TimeQuota
	MonitoringTime     *MonitoringTime
}

func ParseCreateURR(value []byte, depth int) (*CreateURR, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	name := TypeName(TypeCreateURR)

	idChild, err := g.RequireOne(name, TypeURRID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalURRID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}

	mmChild, err := g.RequireOne(name, TypeMeasurementMethod)
	if err != nil {
		return nil, err
	}
	mm, err := UnmarshalMeasurementMethod(mmChild.Raw.Value)
	if err != nil {
		return nil, err
	}

	u := &CreateURR{URRID: id, MeasurementMethod: mm}

	if c := g.First(TypeReportingTriggers); c != nil {
		rt, err := UnmarshalReportingTriggers(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.ReportingTriggers = &rt
	}
	if c := g.First(TypeVolumeThreshold); c != nil {
		v, err := UnmarshalVolumeThreshold(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.VolumeThreshold = &v
	}
	if c := g.First(TypeVolumeQuota); c != nil {
		v, err := UnmarshalVolumeQuota(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.VolumeQuota = &v
	}
	if c := g.First(TypeTimeThreshold); c != nil {
		v, err := UnmarshalTimeThreshold(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.TimeThreshold = &v
	}
	if c := g.First(TypeTimeQuota); c != nil {
		v, err := UnmarshalTimeQuota(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.TimeQuota = &v
	}
	if c := g.First(TypeMonitoringTime); c != nil {
		v, err := UnmarshalMonitoringTime(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.MonitoringTime = &v
	}
	return u, nil
}

func (u *CreateURR) Marshal() []byte {
	parts := [][]byte{
		tlvWrap(TypeURRID, u.URRID.Marshal()),
		u.MeasurementMethod.ToIE(),
	}
	if u.ReportingTriggers != nil {
		parts = append(parts, u.ReportingTriggers.ToIE())
	}
	if u.VolumeThreshold != nil {
		parts = append(parts, u.VolumeThreshold.ToIE())
	}
	if u.VolumeQuota != nil {
		parts = append(parts, u.VolumeQuota.ToIE())
	}
	if u.TimeThreshold != nil {
		parts = append(parts, u.TimeThreshold.ToIE())
	}
	if u.TimeQuota != nil {
		parts = append(parts, u.TimeQuota.ToIE())
	}
	if u.MonitoringTime != nil {
		parts = append(parts, u.MonitoringTime.ToIE())
	}
	return Emit(parts...)
}

func (u *CreateURR) ToIE() []byte { return tlvWrap(TypeCreateURR, u.Marshal()) }

// UpdateURR is the grouped IE modifying an existing URR. Mandatory:
// URR ID; everything else is an optional partial update.
type UpdateURR struct {
	URRID             URRID
	ReportingTriggers *ReportingTriggers
	VolumeThreshold   *VolumeThreshold
	VolumeQuota       *VolumeQuota
	TimeThreshold     *TimeThreshold
	TimeQuota         *TimeQuota
}

func ParseUpdateURR(value []byte, depth int) (*UpdateURR, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	idChild, err := g.RequireOne(TypeName(TypeUpdateURR), TypeURRID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalURRID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}
	u := &UpdateURR{URRID: id}
	if c := g.First(TypeReportingTriggers); c != nil {
		rt, err := UnmarshalReportingTriggers(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.ReportingTriggers = &rt
	}
	if c := g.First(TypeVolumeThreshold); c != nil {
		v, err := UnmarshalVolumeThreshold(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.VolumeThreshold = &v
	}
	if c := g.First(TypeVolumeQuota); c != nil {
		v, err := UnmarshalVolumeQuota(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.VolumeQuota = &v
	}
	if c := g.First(TypeTimeThreshold); c != nil {
		v, err := UnmarshalTimeThreshold(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.TimeThreshold = &v
	}
	if c := g.First(TypeTimeQuota); c != nil {
		v, err := UnmarshalTimeQuota(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.TimeQuota = &v
	}
	return u, nil
}

func (u *UpdateURR) Marshal() []byte {
	parts := [][]byte{tlvWrap(TypeURRID, u.URRID.Marshal())}
	if u.ReportingTriggers != nil {
		parts = append(parts, u.ReportingTriggers.ToIE())
	}
	if u.VolumeThreshold != nil {
		parts = append(parts, u.VolumeThreshold.ToIE())
	}
	if u.VolumeQuota != nil {
		parts = append(parts, u.VolumeQuota.ToIE())
	}
	if u.TimeThreshold != nil {
		parts = append(parts, u.TimeThreshold.ToIE())
	}
	if u.TimeQuota != nil {
		parts = append(parts, u.TimeQuota.ToIE())
	}
	return Emit(parts...)
}

func (u *UpdateURR) ToIE() []byte { return tlvWrap(TypeUpdateURR, u.Marshal()) }

// RemoveURR is the grouped IE naming a URR to delete; mandatory: URR
// ID.
type RemoveURR struct {
	URRID URRID
}

func ParseRemoveURR(value []byte, depth int) (*RemoveURR, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	idChild, err := g.RequireOne(TypeName(TypeRemoveURR), TypeURRID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalURRID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}
	return &RemoveURR{URRID: id}, nil
}

func (r *RemoveURR) Marshal() []byte { return tlvWrap(TypeURRID, r.URRID.Marshal()) }
func (r *RemoveURR) ToIE() []byte    { return tlvWrap(TypeRemoveURR, r.Marshal()) }
