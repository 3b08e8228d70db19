package ie

// CreateQER is the grouped IE installing a QoS Enforcement Rule.
// Mandatory: QER ID, Gate Status. Everything else is an optional
// rate/correlation refinement.
type CreateQER struct {
	QERID            QERID
	GateStatusUL     GateStatus
	GateStatusDL     GateStatus
	MBR              *MBR
	GBR              *GBR
	QERCorrelationID *QERCorrelationID
	QFI              *QFI
	RQI              *RQI
}

func ParseCreateQER(value []byte, depth int) (*CreateQER, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	name := TypeName(TypeCreateQER)

	idChild, err := g.RequireOne(name, TypeQERID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalQERID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}

	gsChild, err := g.RequireOne(name, TypeGateStatus)
	if err != nil {
		return nil, err
	}
	ul, dl, err := UnmarshalGateStatus(gsChild.Raw.Value)
	if err != nil {
		return nil, err
	}

	q := &CreateQER{QERID: id, GateStatusUL: ul, GateStatusDL: dl}

	if c := g.First(TypeMBR); c != nil {
		m, err := UnmarshalMBR(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		q.MBR = &m
	}
	if c := g.First(TypeGBR); c != nil {
		gb, err := UnmarshalGBR(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		q.GBR = &gb
	}
	if c := g.First(TypeQERCorrelationID); c != nil {
		cid, err := UnmarshalQERCorrelationID(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		q.QERCorrelationID = &cid
	}
	if c := g.First(TypeQFI); c != nil {
		qfi, err := UnmarshalQFI(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		q.QFI = &qfi
	}
	if c := g.First(TypeRQI); c != nil {
		rqi, err := UnmarshalRQI(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		q.RQI = &rqi
	}
	return q, nil
}

func (q *CreateQER) Marshal() []byte {
	parts := [][]byte{
		tlvWrap(TypeQERID, q.QERID.Marshal()),
		tlvWrap(TypeGateStatus, MarshalGateStatus(q.GateStatusUL, q.GateStatusDL)),
	}
	if q.MBR != nil {
		parts = append(parts, tlvWrap(TypeMBR, q.MBR.Marshal()))
	}
	if q.GBR != nil {
		parts = append(parts, tlvWrap(TypeGBR, q.GBR.Marshal()))
	}
	if q.QERCorrelationID != nil {
		parts = append(parts, tlvWrap(TypeQERCorrelationID, q.QERCorrelationID.Marshal()))
	}
	if q.QFI != nil {
		parts = append(parts, q.QFI.ToIE())
	}
	if q.RQI != nil {
		parts = append(parts, tlvWrap(TypeRQI, q.RQI.Marshal()))
	}
	return Emit(parts...)
}

func (q *CreateQER) ToIE() []byte { return tlvWrap(TypeCreateQER, q.Marshal()) }

// UpdateQER is the grouped IE modifying an existing QER. Mandatory:
// QER ID; everything else is an optional partial update.
type UpdateQER struct {
	QERID            QERID
	GateStatusUL     *GateStatus
	GateStatusDL     *GateStatus
	MBR              *MBR
	GBR              *GBR
	QERCorrelationID *QERCorrelationID
	QFI              *QFI
	RQI              *RQI
}

func ParseUpdateQER(value []byte, depth int) (*UpdateQER, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	idChild, err := g.RequireOne(TypeName(TypeUpdateQER), TypeQERID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalQERID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}
	u := &UpdateQER{QERID: id}

	if c := g.First(TypeGateStatus); c != nil {
		ul, dl, err := UnmarshalGateStatus(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.GateStatusUL, u.GateStatusDL = &ul, &dl
	}
	if c := g.First(TypeMBR); c != nil {
		m, err := UnmarshalMBR(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.MBR = &m
	}
	if c := g.First(TypeGBR); c != nil {
		gb, err := UnmarshalGBR(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.GBR = &gb
	}
	if c := g.First(TypeQERCorrelationID); c != nil {
		cid, err := UnmarshalQERCorrelationID(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.QERCorrelationID = &cid
	}
	if c := g.First(TypeQFI); c != nil {
		qfi, err := UnmarshalQFI(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.QFI = &qfi
	}
	if c := g.First(TypeRQI); c != nil {
		rqi, err := UnmarshalRQI(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.RQI = &rqi
	}
	return u, nil
}

func (u *UpdateQER) Marshal() []byte {
	parts := [][]byte{tlvWrap(TypeQERID, u.QERID.Marshal())}
	if u.GateStatusUL != nil && u.GateStatusDL != nil {
		parts = append(parts, tlvWrap(TypeGateStatus, MarshalGateStatus(*u.GateStatusUL, *u.GateStatusDL)))
	}
	if u.MBR != nil {
		parts = append(parts, tlvWrap(TypeMBR, u.MBR.Marshal()))
	}
	if u.GBR != nil {
		parts = append(parts, tlvWrap(TypeGBR, u.GBR.Marshal()))
	}
	if u.QERCorrelationID != nil {
		parts = append(parts, tlvWrap(TypeQERCorrelationID, u.QERCorrelationID.Marshal()))
	}
	if u.QFI != nil {
		parts = append(parts, u.QFI.ToIE())
	}
	if u.RQI != nil {
		parts = append(parts, tlvWrap(TypeRQI, u.RQI.Marshal()))
	}
	return Emit(parts...)
}

func (u *UpdateQER) ToIE() []byte { return tlvWrap(TypeUpdateQER, u.Marshal()) }

// RemoveQER is the grouped IE naming a QER to delete; mandatory: QER
// ID.
type RemoveQER struct {
	QERID QERID
}

func ParseRemoveQER(value []byte, depth int) (*RemoveQER, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	idChild, err := g.RequireOne(TypeName(TypeRemoveQER), TypeQERID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalQERID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}
	return &RemoveQER{QERID: id}, nil
}

func (r *RemoveQER) Marshal() []byte { return tlvWrap(TypeQERID, r.QERID.Marshal()) }
func (r *RemoveQER) ToIE() []byte    { return tlvWrap(TypeRemoveQER, r.Marshal()) }
