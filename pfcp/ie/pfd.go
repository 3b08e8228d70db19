package ie

import "github.com/your-org/pfcp-core/pfcp/pfcperr"

// PFDContext is the grouped IE wrapping one packet-flow description
// blob within an Application ID's PFDs entry. Mandatory: PFD Contents.
type PFDContext struct {
	PFDContents PFDContents
}

func ParsePFDContext(value []byte, depth int) (*PFDContext, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	c, err := g.RequireOne(TypeName(TypePFDContext), TypePFDContents)
	if err != nil {
		return nil, err
	}
	contents, err := UnmarshalPFDContents(c.Raw.Value)
	if err != nil {
		return nil, err
	}
	return &PFDContext{PFDContents: contents}, nil
}

func (p *PFDContext) Marshal() []byte { return p.PFDContents.ToIE() }
func (p *PFDContext) ToIE() []byte    { return tlvWrap(TypePFDContext, p.Marshal()) }

// ApplicationIDsPFDs is the grouped IE naming one detected application
// and the packet-flow descriptions that identify its traffic.
// Mandatory: Application ID, at least one PFD Context.
type ApplicationIDsPFDs struct {
	ApplicationID ApplicationID
	PFDContexts   []*PFDContext
}

func ParseApplicationIDsPFDs(value []byte, depth int) (*ApplicationIDsPFDs, error) {
	g, err := ParseGroup(value, depth)
	if err != nil {
		return nil, err
	}
	name := TypeName(TypeApplicationIDsPFDs)

	appChild, err := g.RequireOne(name, TypeApplicationID)
	if err != nil {
		return nil, err
	}
	appID, err := UnmarshalApplicationID(appChild.Raw.Value)
	if err != nil {
		return nil, err
	}

	ctxChildren := g.All(TypePFDContext)
	if len(ctxChildren) == 0 {
		return nil, pfcperr.MandatoryIeMissingErr(name, TypeName(TypePFDContext))
	}
	a := &ApplicationIDsPFDs{ApplicationID: appID}
	for _, c := range ctxChildren {
		ctx, err := ParsePFDContext(c.Raw.Value, depth+1)
		if err != nil {
			return nil, err
		}
		a.PFDContexts = append(a.PFDContexts, ctx)
	}
	return a, nil
}

func (a *ApplicationIDsPFDs) Marshal() []byte {
	parts := [][]byte{tlvWrap(TypeApplicationID, a.ApplicationID.Marshal())}
	for _, ctx := range a.PFDContexts {
		parts = append(parts, ctx.ToIE())
	}
	return Emit(parts...)
}

func (a *ApplicationIDsPFDs) ToIE() []byte { return tlvWrap(TypeApplicationIDsPFDs, a.Marshal()) }
