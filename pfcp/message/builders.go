package message

import (
	"github.com/your-org/pfcp-core/pfcp/ie"
	"github.com/your-org/pfcp-core/pfcp/pfcperr"
)

// SessionEstablishmentRequestBuilder assembles a Session Establishment
// Request one rule at a time. Setters never validate; Build runs the
// cross-field checks (PDR/FAR presence, each FAR's Apply Action rules,
// each PDI F-TEID's flag rules) and consumes the builder.
type SessionEstablishmentRequestBuilder struct {
	msg *SessionEstablishmentRequest
}

// NewSessionEstablishmentRequest starts a builder for the two fields
// every session establishment needs: the CP function's own node
// identity and the F-SEID it is allocating for this session.
func NewSessionEstablishmentRequest(nodeID *ie.NodeID, fseid *ie.FSEID) *SessionEstablishmentRequestBuilder {
	return &SessionEstablishmentRequestBuilder{msg: &SessionEstablishmentRequest{NodeID: nodeID, FSEID: fseid}}
}

func (b *SessionEstablishmentRequestBuilder) AddPDR(pdr *ie.CreatePDR) *SessionEstablishmentRequestBuilder {
	b.msg.CreatePDRs = append(b.msg.CreatePDRs, pdr)
	return b
}

func (b *SessionEstablishmentRequestBuilder) AddFAR(far *ie.CreateFAR) *SessionEstablishmentRequestBuilder {
	b.msg.CreateFARs = append(b.msg.CreateFARs, far)
	return b
}

func (b *SessionEstablishmentRequestBuilder) AddURR(urr *ie.CreateURR) *SessionEstablishmentRequestBuilder {
	b.msg.CreateURRs = append(b.msg.CreateURRs, urr)
	return b
}

func (b *SessionEstablishmentRequestBuilder) AddQER(qer *ie.CreateQER) *SessionEstablishmentRequestBuilder {
	b.msg.CreateQERs = append(b.msg.CreateQERs, qer)
	return b
}

func (b *SessionEstablishmentRequestBuilder) AddBAR(bar *ie.CreateBAR) *SessionEstablishmentRequestBuilder {
	b.msg.CreateBARs = append(b.msg.CreateBARs, bar)
	return b
}

// Build validates the accumulated rule set and returns the finished
// request. A session with no PDR classifies nothing and no FAR
// forwards anything, so both are required (mirrors the check the wire
// decoder enforces on parse). Forw requires Forwarding Parameters and
// Buff requires a BAR ID, as in ie.ParseCreateFAR. After Build the
// builder holds a fresh, empty request, so later setter calls do not
// modify the returned one.
func (b *SessionEstablishmentRequestBuilder) Build() (*SessionEstablishmentRequest, error) {
	name := Name(TypeSessionEstablishmentRequest)
	if len(b.msg.CreatePDRs) == 0 {
		return nil, mandatoryIe(name, ie.TypeCreatePDR)
	}
	if len(b.msg.CreateFARs) == 0 {
		return nil, mandatoryIe(name, ie.TypeCreateFAR)
	}
	for _, far := range b.msg.CreateFARs {
		if far.ApplyAction.Forw() && far.ForwardingParameters == nil {
			return nil, mandatoryIe(ie.TypeName(ie.TypeCreateFAR), ie.TypeForwardingParameters)
		}
		if far.ApplyAction.Buff() && far.BARID == nil {
			return nil, mandatoryIe(ie.TypeName(ie.TypeCreateFAR), ie.TypeBARID)
		}
	}
	for _, pdr := range b.msg.CreatePDRs {
		if pdr.PDI != nil && pdr.PDI.FTEID != nil {
			if err := pdr.PDI.FTEID.ValidateBuildTimeFlags(); err != nil {
				return nil, err
			}
		}
	}
	m := b.msg
	b.msg = &SessionEstablishmentRequest{}
	return m, nil
}

// SessionModificationRequestBuilder assembles an incremental session
// change. Every field is optional, but Build rejects a modification
// that sets no F-SEID and no rule change at all.
type SessionModificationRequestBuilder struct {
	msg *SessionModificationRequest
}

func NewSessionModificationRequest() *SessionModificationRequestBuilder {
	return &SessionModificationRequestBuilder{msg: &SessionModificationRequest{}}
}

func (b *SessionModificationRequestBuilder) WithFSEID(f *ie.FSEID) *SessionModificationRequestBuilder {
	b.msg.FSEID = f
	return b
}

func (b *SessionModificationRequestBuilder) AddPDR(pdr *ie.CreatePDR) *SessionModificationRequestBuilder {
	b.msg.CreatePDRs = append(b.msg.CreatePDRs, pdr)
	return b
}

func (b *SessionModificationRequestBuilder) UpdatePDR(pdr *ie.UpdatePDR) *SessionModificationRequestBuilder {
	b.msg.UpdatePDRs = append(b.msg.UpdatePDRs, pdr)
	return b
}

func (b *SessionModificationRequestBuilder) RemovePDR(pdr *ie.RemovePDR) *SessionModificationRequestBuilder {
	b.msg.RemovePDRs = append(b.msg.RemovePDRs, pdr)
	return b
}

func (b *SessionModificationRequestBuilder) AddFAR(far *ie.CreateFAR) *SessionModificationRequestBuilder {
	b.msg.CreateFARs = append(b.msg.CreateFARs, far)
	return b
}

func (b *SessionModificationRequestBuilder) UpdateFAR(far *ie.UpdateFAR) *SessionModificationRequestBuilder {
	b.msg.UpdateFARs = append(b.msg.UpdateFARs, far)
	return b
}

func (b *SessionModificationRequestBuilder) RemoveFAR(far *ie.RemoveFAR) *SessionModificationRequestBuilder {
	b.msg.RemoveFARs = append(b.msg.RemoveFARs, far)
	return b
}

func (b *SessionModificationRequestBuilder) UpdateQER(qer *ie.UpdateQER) *SessionModificationRequestBuilder {
	b.msg.UpdateQERs = append(b.msg.UpdateQERs, qer)
	return b
}

func (b *SessionModificationRequestBuilder) RemoveURR(urr *ie.RemoveURR) *SessionModificationRequestBuilder {
	b.msg.RemoveURRs = append(b.msg.RemoveURRs, urr)
	return b
}

// Build returns the finished request. A modification touching nothing
// is a caller error, not a wire-level one: it would round-trip fine but
// serve no purpose.
func (b *SessionModificationRequestBuilder) Build() (*SessionModificationRequest, error) {
	m := b.msg
	touched := len(m.CreatePDRs)+len(m.UpdatePDRs)+len(m.RemovePDRs)+
		len(m.CreateFARs)+len(m.UpdateFARs)+len(m.RemoveFARs)+
		len(m.CreateURRs)+len(m.UpdateURRs)+len(m.RemoveURRs)+
		len(m.CreateQERs)+len(m.UpdateQERs)+len(m.RemoveQERs)+
		len(m.CreateBARs)+len(m.UpdateBARs)+len(m.RemoveBARs) > 0
	if !touched && m.FSEID == nil {
		return nil, pfcperr.InvalidValueErr(Name(TypeSessionModificationRequest), "modification changes nothing")
	}
	return m, nil
}

// NewUplinkToCoreFAR builds a CreateFAR that forwards matched traffic
// out the Core-side interface with no further encapsulation — the
// common case for an uplink PDR on a PDU session anchor.
func NewUplinkToCoreFAR(farID ie.FARID) *ie.CreateFAR {
	return &ie.CreateFAR{
		FARID:       farID,
		ApplyAction: ie.ApplyActionForw,
		ForwardingParameters: &ie.ForwardingParameters{
			DestinationInterface: ie.DestinationInterface{Interface: ie.InterfaceCore},
		},
	}
}

// NewDropFAR builds a CreateFAR that discards matched traffic outright.
func NewDropFAR(farID ie.FARID) *ie.CreateFAR {
	return &ie.CreateFAR{FARID: farID, ApplyAction: ie.ApplyActionDrop}
}

// NewBufferingFAR builds a CreateFAR that buffers matched downlink
// traffic under the named BAR pending a Downlink Data Report.
func NewBufferingFAR(farID ie.FARID, barID ie.BARID) *ie.CreateFAR {
	return &ie.CreateFAR{FARID: farID, ApplyAction: ie.ApplyActionBuff, BARID: &barID}
}

// NewOpenGateQER builds a CreateQER with both gates open and no rate
// limit — the common case for a QER that exists purely to carry a QFI
// or correlation ID.
func NewOpenGateQER(qerID ie.QERID) *ie.CreateQER {
	return &ie.CreateQER{QERID: qerID, GateStatusUL: ie.GateOpen, GateStatusDL: ie.GateOpen}
}

// NewRateLimitedQER builds a CreateQER with both gates open and the
// given uplink/downlink bit rates as its Maximum Bit Rate.
func NewRateLimitedQER(qerID ie.QERID, ulKbps, dlKbps uint64) *ie.CreateQER {
	return &ie.CreateQER{
		QERID:        qerID,
		GateStatusUL: ie.GateOpen,
		GateStatusDL: ie.GateOpen,
		MBR:          &ie.MBR{BitRate: ie.BitRate{Uplink: ulKbps, Downlink: dlKbps}},
	}
}
