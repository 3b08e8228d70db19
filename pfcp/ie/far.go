package ie

import "github.com/your-org/pfcp-core/pfcp/pfcperr"

// ForwardingParameters tells the UPF how to forward traffic a FAR
// disposes of with Forw: the egress interface, plus optional
// encapsulation and routing hints. Mandatory: Destination Interface.
type ForwardingParameters struct {
	DestinationInterface DestinationInterface
	NetworkInstance      *NetworkInstance
	OuterHeaderCreation  *OuterHeaderCreation
	ForwardingPolicy     *ForwardingPolicy
}

func parseForwardingParameters(g *Group, parentName string) (*ForwardingParameters, error) {
	c, err := g.RequireOne(parentName, TypeDestinationInterface)
	if err != nil {
		return nil, err
	}
	di, err := UnmarshalDestinationInterface(c.Raw.Value)
	if err != nil {
		return nil, err
	}
	fp := &ForwardingParameters{DestinationInterface: di}

	if c := g.First(TypeNetworkInstance); c != nil {
		n, err := UnmarshalNetworkInstance(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		fp.NetworkInstance = &n
	}
	if c := g.First(TypeOuterHeaderCreation); c != nil {
		o, err := UnmarshalOuterHeaderCreation(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		fp.OuterHeaderCreation = o
	}
	if c := g.First(TypeForwardingPolicy); c != nil {
		p, err := UnmarshalForwardingPolicy(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		fp.ForwardingPolicy = &p
	}
	return fp, nil
}

func (fp *ForwardingParameters) marshal() []byte {
	parts := [][]byte{tlvWrap(TypeDestinationInterface, fp.DestinationInterface.Marshal())}
	if fp.NetworkInstance != nil {
		parts = append(parts, tlvWrap(TypeNetworkInstance, fp.NetworkInstance.Marshal()))
	}
	if fp.OuterHeaderCreation != nil {
		parts = append(parts, fp.OuterHeaderCreation.ToIE())
	}
	if fp.ForwardingPolicy != nil {
		parts = append(parts, tlvWrap(TypeForwardingPolicy, fp.ForwardingPolicy.Marshal()))
	}
	return Emit(parts...)
}

func (fp *ForwardingParameters) ToIE() []byte { return tlvWrap(TypeForwardingParameters, fp.marshal()) }

// DuplicatingParameters tells the UPF where to send a duplicated copy
// of traffic a FAR disposes of with Dupl. Mandatory: Destination
// Interface.
type DuplicatingParameters struct {
	DestinationInterface DestinationInterface
	OuterHeaderCreation  *OuterHeaderCreation
}

func parseDuplicatingParameters(g *Group, parentName string) (*DuplicatingParameters, error) {
	c, err := g.RequireOne(parentName, TypeDestinationInterface)
	if err != nil {
		return nil, err
	}
	di, err := UnmarshalDestinationInterface(c.Raw.Value)
	if err != nil {
		return nil, err
	}
	dp := &DuplicatingParameters{DestinationInterface: di}
	if c := g.First(TypeOuterHeaderCreation); c != nil {
		o, err := UnmarshalOuterHeaderCreation(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		dp.OuterHeaderCreation = o
	}
	return dp, nil
}

func (dp *DuplicatingParameters) marshal() []byte {
	parts := [][]byte{tlvWrap(TypeDestinationInterface, dp.DestinationInterface.Marshal())}
	if dp.OuterHeaderCreation != nil {
		parts = append(parts, dp.OuterHeaderCreation.ToIE())
	}
	return Emit(parts...)
}

func (dp *DuplicatingParameters) ToIE() []byte {
	return tlvWrap(TypeDuplicatingParameters, dp.marshal())
}

// CreateFAR is the grouped IE installing a Forwarding Action Rule.
// Mandatory: FAR ID, Apply Action. Forwarding Parameters is mandatory
// whenever Apply Action sets Forw; BAR ID is mandatory whenever Apply
// Action sets Buff (spec §4.4 cross-field rule).
type CreateFAR struct {
	FARID                  FARID
	ApplyAction            ApplyAction
	ForwardingParameters   *ForwardingParameters
	DuplicatingParameters  *DuplicatingParameters
	BARID                  *BARID
}

func ParseCreateFAR(value []byte, depth int) (*CreateFAR, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	name := TypeName(TypeCreateFAR)

	idChild, err := g.RequireOne(name, TypeFARID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalFARID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}

	aaChild, err := g.RequireOne(name, TypeApplyAction)
	if err != nil {
		return nil, err
	}
	aa, err := UnmarshalApplyAction(aaChild.Raw.Value)
	if err != nil {
		return nil, err
	}

	far := &CreateFAR{FARID: id, ApplyAction: aa}

	if c := g.First(TypeForwardingParameters); c != nil {
		if c.Group == nil {
			return nil, pfcperr.InvalidValueErr(TypeName(TypeForwardingParameters), "expected grouped value")
		}
		fp, err := parseForwardingParameters(c.Group, TypeName(TypeForwardingParameters))
		if err != nil {
			return nil, err
		}
		far.ForwardingParameters = fp
	}
	if c := g.First(TypeDuplicatingParameters); c != nil {
		if c.Group == nil {
			return nil, pfcperr.InvalidValueErr(TypeName(TypeDuplicatingParameters), "expected grouped value")
		}
		dp, err := parseDuplicatingParameters(c.Group, TypeName(TypeDuplicatingParameters))
		if err != nil {
			return nil, err
		}
		far.DuplicatingParameters = dp
	}
	if c := g.First(TypeBARID); c != nil {
		b, err := UnmarshalBARID(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		far.BARID = &b
	}

	if err := far.validateApplyActionRules(name); err != nil {
		return nil, err
	}
	return far, nil
}

// validateApplyActionRules enforces spec §4.4: Forw requires
// Forwarding Parameters, Buff requires a BAR ID.
func (f *CreateFAR) validateApplyActionRules(parentName string) error {
	if f.ApplyAction.Forw() && f.ForwardingParameters == nil {
		return pfcperr.MandatoryIeMissingErr(parentName, TypeName(TypeForwardingParameters))
	}
	if f.ApplyAction.Buff() && f.BARID == nil {
		return pfcperr.MandatoryIeMissingErr(parentName, TypeName(TypeBARID))
	}
	return nil
}

func (f *CreateFAR) Marshal() []byte {
	parts := [][]byte{
		tlvWrap(TypeFARID, f.FARID.Marshal()),
		tlvWrap(TypeApplyAction, f.ApplyAction.Marshal()),
	}
	if f.ForwardingParameters != nil {
		parts = append(parts, f.ForwardingParameters.ToIE())
	}
	if f.DuplicatingParameters != nil {
		parts = append(parts, f.DuplicatingParameters.ToIE())
	}
	if f.BARID != nil {
		parts = append(parts, tlvWrap(TypeBARID, f.BARID.Marshal()))
	}
	return Emit(parts...)
}

func (f *CreateFAR) ToIE() []byte { return tlvWrap(TypeCreateFAR, f.Marshal()) }

// UpdateForwardingParameters is the partial-update variant of
// Forwarding Parameters: every field is optional since it modifies
// rather than replaces.
type UpdateForwardingParameters struct {
	DestinationInterface *DestinationInterface
	NetworkInstance      *NetworkInstance
	OuterHeaderCreation  *OuterHeaderCreation
	ForwardingPolicy     *ForwardingPolicy
}

func ParseUpdateForwardingParameters(value []byte, depth int) (*UpdateForwardingParameters, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	ufp := &UpdateForwardingParameters{}
	if c := g.First(TypeDestinationInterface); c != nil {
		di, err := UnmarshalDestinationInterface(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		ufp.DestinationInterface = &di
	}
	if c := g.First(TypeNetworkInstance); c != nil {
		n, err := UnmarshalNetworkInstance(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		ufp.NetworkInstance = &n
	}
	if c := g.First(TypeOuterHeaderCreation); c != nil {
		o, err := UnmarshalOuterHeaderCreation(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		ufp.OuterHeaderCreation = o
	}
	if c := g.First(TypeForwardingPolicy); c != nil {
		p, err := UnmarshalForwardingPolicy(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		ufp.ForwardingPolicy = &p
	}
	return ufp, nil
}

func (u *UpdateForwardingParameters) Marshal() []byte {
	var parts [][]byte
	if u.DestinationInterface != nil {
		parts = append(parts, tlvWrap(TypeDestinationInterface, u.DestinationInterface.Marshal()))
	}
	if u.NetworkInstance != nil {
		parts = append(parts, tlvWrap(TypeNetworkInstance, u.NetworkInstance.Marshal()))
	}
	if u.OuterHeaderCreation != nil {
		parts = append(parts, u.OuterHeaderCreation.ToIE())
	}
	if u.ForwardingPolicy != nil {
		parts = append(parts, tlvWrap(TypeForwardingPolicy, u.ForwardingPolicy.Marshal()))
	}
	return Emit(parts...)
}

func (u *UpdateForwardingParameters) ToIE() []byte {
	return tlvWrap(TypeUpdateForwardingParameters, u.Marshal())
}

// UpdateFAR is the grouped IE modifying an existing FAR. Mandatory:
// FAR ID; everything else is an optional partial update. The Buff
// cross-field rule still applies when Apply Action is present and
// sets Buff.
type UpdateFAR struct {
	FARID                      FARID
	ApplyAction                *ApplyAction
	UpdateForwardingParameters *UpdateForwardingParameters
	BARID                      *BARID
}

func ParseUpdateFAR(value []byte, depth int) (*UpdateFAR, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	name := TypeName(TypeUpdateFAR)

	idChild, err := g.RequireOne(name, TypeFARID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalFARID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}

	uf := &UpdateFAR{FARID: id}

	if c := g.First(TypeApplyAction); c != nil {
		aa, err := UnmarshalApplyAction(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		uf.ApplyAction = &aa
	}
	if c := g.First(TypeUpdateForwardingParameters); c != nil {
		if c.Group == nil {
			return nil, pfcperr.InvalidValueErr(TypeName(TypeUpdateForwardingParameters), "expected grouped value")
		}
		ufp, err := ParseUpdateForwardingParameters(c.Raw.Value, depth+1)
		if err != nil {
			return nil, err
		}
		uf.UpdateForwardingParameters = ufp
	}
	if c := g.First(TypeBARID); c != nil {
		b, err := UnmarshalBARID(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		uf.BARID = &b
	}

	if uf.ApplyAction != nil && uf.ApplyAction.Buff() && uf.BARID == nil {
		return nil, pfcperr.MandatoryIeMissingErr(name, TypeName(TypeBARID))
	}
	return uf, nil
}

func (u *UpdateFAR) Marshal() []byte {
	parts := [][]byte{tlvWrap(TypeFARID, u.FARID.Marshal())}
	if u.ApplyAction != nil {
		parts = append(parts, tlvWrap(TypeApplyAction, u.ApplyAction.Marshal()))
	}
	if u.UpdateForwardingParameters != nil {
		parts = append(parts, u.UpdateForwardingParameters.ToIE())
	}
	if u.BARID != nil {
		parts = append(parts, tlvWrap(TypeBARID, u.BARID.Marshal()))
	}
	return Emit(parts...)
}

func (u *UpdateFAR) ToIE() []byte { return tlvWrap(TypeUpdateFAR, u.Marshal()) }

// RemoveFAR is the grouped IE naming a FAR to delete; mandatory: FAR
// ID.
type RemoveFAR struct {
	FARID FARID
}

func ParseRemoveFAR(value []byte, depth int) (*RemoveFAR, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	idChild, err := g.RequireOne(TypeName(TypeRemoveFAR), TypeFARID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalFARID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}
	return &RemoveFAR{FARID: id}, nil
}

func (r *RemoveFAR) Marshal() []byte { return tlvWrap(TypeFARID, r.FARID.Marshal()) }
func (r *RemoveFAR) ToIE() []byte    { return tlvWrap(TypeRemoveFAR, r.Marshal()) }
