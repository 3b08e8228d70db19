package ie

import (
	"github.com/your-org/pfcp-core/pfcp/pfcperr"
	"github.com/your-org/pfcp-core/pfcp/tlv"
)

// PDI is the Packet Detection Information grouped IE: how to classify
// a packet. Its only universally-mandatory child across PFCP releases
// is Source Interface; F-TEID/UE IP/Network Instance are conditional
// on the interface and access type.
type PDI struct {
	SourceInterface            SourceInterface
	FTEID                      *FTEID
	NetworkInstance            *NetworkInstance
	UEIPAddress                *UEIPAddress
	SDFFilter                  *SDFFilter
	ApplicationID              *ApplicationID
	EthernetContextInformation *EthernetContextInformation
}

func ParsePDI(g *Group) (*PDI, error) {
	c, err := g.RequireOne(TypeName(TypePDI), TypeSourceInterface)
	if err != nil {
		return nil, err
	}
	si, err := UnmarshalSourceInterface(c.Raw.Value)
	if err != nil {
		return nil, err
	}
	pdi := &PDI{SourceInterface: si}

	if c := g.First(TypeFTEID); c != nil {
		f, err := UnmarshalFTEID(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		pdi.FTEID = f
	}
	if c := g.First(TypeNetworkInstance); c != nil {
		n, err := UnmarshalNetworkInstance(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		pdi.NetworkInstance = &n
	}
	if c := g.First(TypeUEIPAddress); c != nil {
		u, err := UnmarshalUEIPAddress(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		pdi.UEIPAddress = u
	}
	if c := g.First(TypeSDFFilter); c != nil {
		s, err := UnmarshalSDFFilter(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		pdi.SDFFilter = &s
	}
	if c := g.First(TypeApplicationID); c != nil {
		a, err := UnmarshalApplicationID(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		pdi.ApplicationID = &a
	}
	if c := g.First(TypeEthernetContextInformation); c != nil {
		if c.Group == nil {
			return nil, pfcperr.InvalidValueErr(TypeName(TypeEthernetContextInformation), "expected grouped value")
		}
		e, err := ethernetContextInformationFromGroup(c.Group)
		if err != nil {
			return nil, err
		}
		pdi.EthernetContextInformation = e
	}
	return pdi, nil
}

func (p *PDI) Marshal() []byte {
	parts := [][]byte{tlvWrap(TypeSourceInterface, p.SourceInterface.Marshal())}
	if p.FTEID != nil {
		parts = append(parts, p.FTEID.ToIE())
	}
	if p.NetworkInstance != nil {
		parts = append(parts, tlvWrap(TypeNetworkInstance, p.NetworkInstance.Marshal()))
	}
	if p.UEIPAddress != nil {
		parts = append(parts, tlvWrap(TypeUEIPAddress, p.UEIPAddress.Marshal()))
	}
	if p.SDFFilter != nil {
		parts = append(parts, tlvWrap(TypeSDFFilter, p.SDFFilter.Marshal()))
	}
	if p.ApplicationID != nil {
		parts = append(parts, tlvWrap(TypeApplicationID, p.ApplicationID.Marshal()))
	}
	if p.EthernetContextInformation != nil {
		parts = append(parts, p.EthernetContextInformation.ToIE())
	}
	return Emit(parts...)
}

// CreatePDR is the grouped IE a Session Establishment/Modification
// Request uses to install a Packet Detection Rule. Mandatory: PDR ID,
// Precedence, PDI. Optional: FAR ID, QER ID, Outer Header Removal.
type CreatePDR struct {
	PDRID              PDRID
	Precedence         Precedence
	PDI                *PDI
	OuterHeaderRemoval *OuterHeaderRemoval
	FARID              *FARID
	QERID              *QERID
}

func ParseCreatePDR(value []byte, depth int) (*CreatePDR, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	name := TypeName(TypeCreatePDR)

	idChild, err := g.RequireOne(name, TypePDRID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalPDRID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}

	precChild, err := g.RequireOne(name, TypePrecedence)
	if err != nil {
		return nil, err
	}
	prec, err := UnmarshalPrecedence(precChild.Raw.Value)
	if err != nil {
		return nil, err
	}

	pdiChild, err := g.RequireOne(name, TypePDI)
	if err != nil {
		return nil, err
	}
	if pdiChild.Group == nil {
		return nil, pfcperr.InvalidValueErr(TypeName(TypePDI), "expected grouped PDI")
	}
	pdi, err := ParsePDI(pdiChild.Group)
	if err != nil {
		return nil, err
	}

	cpdr := &CreatePDR{PDRID: id, Precedence: prec, PDI: pdi}

	if c := g.First(TypeOuterHeaderRemoval); c != nil {
		v, err := UnmarshalOuterHeaderRemoval(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		cpdr.OuterHeaderRemoval = &v
	}
	if c := g.First(TypeFARID); c != nil {
		v, err := UnmarshalFARID(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		cpdr.FARID = &v
	}
	if c := g.First(TypeQERID); c != nil {
		v, err := UnmarshalQERID(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		cpdr.QERID = &v
	}
	return cpdr, nil
}

func (c *CreatePDR) Marshal() []byte {
	parts := [][]byte{
		tlvWrap(TypePDRID, c.PDRID.Marshal()),
		tlvWrap(TypePrecedence, c.Precedence.Marshal()),
		tlvWrap(TypePDI, c.PDI.Marshal()),
	}
	if c.OuterHeaderRemoval != nil {
		parts = append(parts, tlvWrap(TypeOuterHeaderRemoval, c.OuterHeaderRemoval.Marshal()))
	}
	if c.FARID != nil {
		parts = append(parts, tlvWrap(TypeFARID, c.FARID.Marshal()))
	}
	if c.QERID != nil {
		parts = append(parts, tlvWrap(TypeQERID, c.QERID.Marshal()))
	}
	return Emit(parts...)
}

func (c *CreatePDR) ToIE() []byte { return tlvWrap(TypeCreatePDR, c.Marshal()) }

// UpdatePDR is the grouped IE modifying an existing PDR. Mandatory: PDR
// ID; everything else is an optional partial update.
type UpdatePDR struct {
	PDRID              PDRID
	Precedence         *Precedence
	PDI                *PDI
	OuterHeaderRemoval *OuterHeaderRemoval
	FARID              *FARID
	QERID              *QERID
}

func ParseUpdatePDR(value []byte, depth int) (*UpdatePDR, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	idChild, err := g.RequireOne(TypeName(TypeUpdatePDR), TypePDRID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalPDRID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}
	u := &UpdatePDR{PDRID: id}
	if c := g.First(TypePrecedence); c != nil {
		p, err := UnmarshalPrecedence(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.Precedence = &p
	}
	if c := g.First(TypePDI); c != nil {
		if c.Group == nil {
			return nil, pfcperr.InvalidValueErr(TypeName(TypePDI), "expected grouped PDI")
		}
		pdi, err := ParsePDI(c.Group)
		if err != nil {
			return nil, err
		}
		u.PDI = pdi
	}
	if c := g.First(TypeOuterHeaderRemoval); c != nil {
		v, err := UnmarshalOuterHeaderRemoval(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.OuterHeaderRemoval = &v
	}
	if c := g.First(TypeFARID); c != nil {
		v, err := UnmarshalFARID(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.FARID = &v
	}
	if c := g.First(TypeQERID); c != nil {
		v, err := UnmarshalQERID(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		u.QERID = &v
	}
	return u, nil
}

func (u *UpdatePDR) Marshal() []byte {
	parts := [][]byte{tlvWrap(TypePDRID, u.PDRID.Marshal())}
	if u.Precedence != nil {
		parts = append(parts, tlvWrap(TypePrecedence, u.Precedence.Marshal()))
	}
	if u.PDI != nil {
		parts = append(parts, tlvWrap(TypePDI, u.PDI.Marshal()))
	}
	if u.OuterHeaderRemoval != nil {
		parts = append(parts, tlvWrap(TypeOuterHeaderRemoval, u.OuterHeaderRemoval.Marshal()))
	}
	if u.FARID != nil {
		parts = append(parts, tlvWrap(TypeFARID, u.FARID.Marshal()))
	}
	if u.QERID != nil {
		parts = append(parts, tlvWrap(TypeQERID, u.QERID.Marshal()))
	}
	return Emit(parts...)
}

func (u *UpdatePDR) ToIE() []byte { return tlvWrap(TypeUpdatePDR, u.Marshal()) }

// CreatedPDR is the response-side grouped IE echoing a PDR ID alongside
// the F-TEID the UPF allocated for it (when the request used CHOOSE).
type CreatedPDR struct {
	PDRID PDRID
	FTEID *FTEID
}

func ParseCreatedPDR(value []byte, depth int) (*CreatedPDR, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	idChild, err := g.RequireOne(TypeName(TypeCreatedPDR), TypePDRID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalPDRID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}
	cp := &CreatedPDR{PDRID: id}
	if c := g.First(TypeFTEID); c != nil {
		f, err := UnmarshalFTEID(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		cp.FTEID = f
	}
	return cp, nil
}

func (c *CreatedPDR) Marshal() []byte {
	parts := [][]byte{tlvWrap(TypePDRID, c.PDRID.Marshal())}
	if c.FTEID != nil {
		parts = append(parts, c.FTEID.ToIE())
	}
	return Emit(parts...)
}

func (c *CreatedPDR) ToIE() []byte { return tlvWrap(TypeCreatedPDR, c.Marshal()) }

// RemovePDR is the grouped IE naming a PDR to delete; mandatory: PDR
// ID.
type RemovePDR struct {
	PDRID PDRID
}

func ParseRemovePDR(value []byte, depth int) (*RemovePDR, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	idChild, err := g.RequireOne(TypeName(TypeRemovePDR), TypePDRID)
	if err != nil {
		return nil, err
	}
	id, err := UnmarshalPDRID(idChild.Raw.Value)
	if err != nil {
		return nil, err
	}
	return &RemovePDR{PDRID: id}, nil
}

func (r *RemovePDR) Marshal() []byte { return tlvWrap(TypePDRID, r.PDRID.Marshal()) }
func (r *RemovePDR) ToIE() []byte    { return tlvWrap(TypeRemovePDR, r.Marshal()) }

// tlvWrap is a package-local shortcut for wrapping value bytes under
// ieType with no enterprise ID, used throughout the grouped IE files.
func tlvWrap(ieType uint16, value []byte) []byte {
	return tlv.Emit(ieType, nil, value)
}
