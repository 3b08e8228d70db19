package ie

import (
	"github.com/your-org/pfcp-core/pfcp/pfcperr"
	"github.com/your-org/pfcp-core/pfcp/tlv"
)

// MaxNestingDepth bounds how many grouped IEs may nest inside one
// another, per spec §4.5/§5. The outermost message body counts as
// depth 0; a PDI inside a Create PDR inside a Session Establishment
// Request is depth 2.
const MaxNestingDepth = 4

// RawIE is the fallback envelope for any IE type this catalog does not
// give a concrete Go representation, per the tagged-variant-plus-
// fallback pattern endorsed in spec §9.
type RawIE struct {
	Type       uint16
	Enterprise *uint16
	Value      []byte
}

func (r *RawIE) ToIE() []byte { return tlv.Emit(r.Type, r.Enterprise, r.Value) }

// Child is one parsed TLV child of a grouped IE: its TLV envelope and,
// when the (non-enterprise) type is itself grouped, a further *Group.
type Child struct {
	Raw   *tlv.IE
	Group *Group // non-nil iff Raw.Type (minus enterprise bit) IsGrouped
}

// Group is the generic decoded form of any grouped IE: its children in
// wire order, indexed additionally by type for mandatory-child lookup.
type Group struct {
	Children []Child
	byType   map[uint16][]Child
}

// ParseGroup recursively decodes value as a sequence of child TLVs,
// descending into nested grouped IEs up to MaxNestingDepth. depth is
// the nesting depth of value itself (0 for a message's top-level IE
// sequence).
func ParseGroup(value []byte, depth int) (*Group, error) {
	if depth > MaxNestingDepth {
		return nil, pfcperr.TooManyElementsErr(MaxNestingDepth)
	}

	g := &Group{byType: make(map[uint16][]Child)}
	count := 0
	err := tlv.Iterate(value, func(raw *tlv.IE) error {
		count++
		if count > MaxTopLevelIEs {
			return pfcperr.TooManyElementsErr(MaxTopLevelIEs)
		}

		baseType := raw.Type &^ tlv.EnterpriseBit
		if !raw.IsEnterprise() && !definedTypes[baseType] {
			return pfcperr.UnknownMandatoryIeErr(raw.Type)
		}

		child := Child{Raw: raw}
		if !raw.IsEnterprise() && IsGrouped(baseType) {
			sub, err := ParseGroup(raw.Value, depth+1)
			if err != nil {
				if perr, ok := err.(*pfcperr.Error); ok {
					return perr.WithContext("in " + TypeName(baseType))
				}
				return err
			}
			child.Group = sub
		}

		g.Children = append(g.Children, child)
		g.byType[raw.Type] = append(g.byType[raw.Type], child)
		return nil
	})
	if err != nil {
		if perr, ok := err.(*pfcperr.Error); ok {
			return nil, perr
		}
		return nil, err
	}
	return g, nil
}

// MaxTopLevelIEs bounds the number of sibling IEs parsed at any one
// grouped level or message body, per spec §5.
const MaxTopLevelIEs = 1000

// First returns the first child of type ieType, or nil if absent.
func (g *Group) First(ieType uint16) *Child {
	cs := g.byType[ieType]
	if len(cs) == 0 {
		return nil
	}
	return &cs[0]
}

// All returns every child of type ieType in wire order.
func (g *Group) All(ieType uint16) []Child {
	return g.byType[ieType]
}

// RequireOne fetches exactly one mandatory child, reporting
// MandatoryIeMissing (scoped to parentName) when absent.
func (g *Group) RequireOne(parentName string, ieType uint16) (*Child, error) {
	c := g.First(ieType)
	if c == nil {
		return nil, pfcperr.MandatoryIeMissingErr(parentName, TypeName(ieType))
	}
	return c, nil
}

// Emit concatenates already-encoded child TLVs in argument order; the
// grouped IE Marshal methods use it to build their value bytes.
func Emit(children ...[]byte) []byte {
	var out []byte
	for _, c := range children {
		out = append(out, c...)
	}
	return out
}
