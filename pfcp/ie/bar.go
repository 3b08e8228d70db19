package ie

// CreateBAR is the grouped IE installing a Buffering Action Rule,
// referenced by a FAR whose Apply Action sets Buff. Mandatory: BAR ID.
type CreateBAR struct {
	BARID                     BARID
	DownlinkDataNotifDelay    *uint8
	SuggestedBufferingPackets *uint16
}

func ParseCreateBAR(value []byte, depth int) (*CreateBAR, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	idChild, err := g.RequireOne(TypeName(TypeCreateBAR), TypeBARID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalBARID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}
	b := &CreateBAR{BARID: id}
	if c := g.First(TypeDownlinkDataNotifDelay); c != nil && len(c.Raw.Value) >= 1 {
		v := c.Raw.Value[0]
		b.DownlinkDataNotifDelay = &v
	}
	if c := g.First(TypeSuggestedBufferingPackets); c != nil && len(c.Raw.Value) >= 2 {
		v := uint16(c.Raw.Value[0])<<8 | uint16(c.Raw.Value[1])
		b.SuggestedBufferingPackets = &v
	}
	return b, nil
}

func (b *CreateBAR) Marshal() []byte {
	parts := [][]byte{tlvWrap(TypeBARID, b.BARID.Marshal())}
	if b.DownlinkDataNotifDelay != nil {
		parts = append(parts, tlvWrap(TypeDownlinkDataNotifDelay, []byte{*b.DownlinkDataNotifDelay}))
	}
	if b.SuggestedBufferingPackets != nil {
		v := *b.SuggestedBufferingPackets
		parts = append(parts, tlvWrap(TypeSuggestedBufferingPackets, []byte{byte(v >> 8), byte(v)}))
	}
	return Emit(parts...)
}

func (b *CreateBAR) ToIE() []byte { return tlvWrap(TypeCreateBAR, b.Marshal()) }

// RemoveBAR is the grouped IE naming a BAR to delete; mandatory: BAR
// ID.
type RemoveBAR struct {
	BARID BARID
}

func ParseRemoveBAR(value []byte, depth int) (*RemoveBAR, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	idChild, err := g.RequireOne(TypeName(TypeRemoveBAR), TypeBARID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalBARID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}
	return &RemoveBAR{BARID: id}, nil
}

func (r *RemoveBAR) Marshal() []byte { return tlvWrap(TypeBARID, r.BARID.Marshal()) }
func (r *RemoveBAR) ToIE() []byte    { return tlvWrap(TypeRemoveBAR, r.Marshal()) }

// UpdateBAR is the grouped IE modifying an existing BAR, carried either
// on a Session Modification Request or (update-within-response form) a
// Session Report Response. Mandatory: BAR ID; everything else optional.
type UpdateBAR struct {
	BARID                     BARID
	DownlinkDataNotifDelay    *uint8
	SuggestedBufferingPackets *uint16
}

func ParseUpdateBAR(value []byte, depth int) (*UpdateBAR, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	idChild, err := g.RequireOne(TypeName(TypeUpdateBAR), TypeBARID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalBARID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}
	u := &UpdateBAR{BARID: id}
	if c := g.First(TypeDownlinkDataNotifDelay); c != nil && len(c.Raw.Value) >= 1 {
		v := c.Raw.Value[0]
		u.DownlinkDataNotifDelay = &v
	}
	if c := g.First(TypeSuggestedBufferingPackets); c != nil && len(c.Raw.Value) >= 2 {
		v := uint16(c.Raw.Value[0])<<8 | uint16(c.Raw.Value[1])
		u.SuggestedBufferingPackets = &v
	}
	return u, nil
}

func (u *UpdateBAR) Marshal() []byte {
	parts := [][]byte{tlvWrap(TypeBARID, u.BARID.Marshal())}
	if u.DownlinkDataNotifDelay != nil {
		parts = append(parts, tlvWrap(TypeDownlinkDataNotifDelay, []byte{*u.DownlinkDataNotifDelay}))
	}
	if u.SuggestedBufferingPackets != nil {
		v := *u.SuggestedBufferingPackets
		parts = append(parts, tlvWrap(TypeSuggestedBufferingPackets, []byte{byte(v >> 8), byte(v)}))
	}
	return Emit(parts...)
}

func (u *UpdateBAR) ToIE() []byte { return tlvWrap(TypeUpdateBAR, u.Marshal()) }
