package message

import (
	"github.com/your-org/pfcp-core/pfcp/ie"
	"github.com/your-org/pfcp-core/pfcp/pfcperr"
)

// SessionEstablishmentRequest installs a new PFCP session: the rules
// that classify, act on, measure, and buffer its traffic.
type SessionEstablishmentRequest struct {
	NodeID     *ie.NodeID
	FSEID      *ie.FSEID
	CreatePDRs []*ie.CreatePDR
	CreateFARs []*ie.CreateFAR
	CreateURRs []*ie.CreateURR
	CreateQERs []*ie.CreateQER
	CreateBARs []*ie.CreateBAR
}

func DecodeSessionEstablishmentRequest(body []byte) (*SessionEstablishmentRequest, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	name := Name(TypeSessionEstablishmentRequest)

	nc, err := g.RequireOne(name, ie.TypeNodeID)
	if err != nil {
		return nil, err
	}
	nodeID, err := ie.UnmarshalNodeID(nc.Raw.Value)
	if err != nil {
		return nil, err
	}

	fc, err := g.RequireOne(name, ie.TypeFSEID)
	if err != nil {
		return nil, err
	}
	fseid, err := ie.UnmarshalFSEID(fc.Raw.Value)
	if err != nil {
		return nil, err
	}

	m := &SessionEstablishmentRequest{NodeID: nodeID, FSEID: fseid}

	for _, c := range g.All(ie.TypeCreatePDR) {
		v, err := ie.ParseCreatePDR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.CreatePDRs = append(m.CreatePDRs, v)
	}
	if len(m.CreatePDRs) == 0 {
		return nil, mandatoryIe(name, ie.TypeCreatePDR)
	}

	for _, c := range g.All(ie.TypeCreateFAR) {
		v, err := ie.ParseCreateFAR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.CreateFARs = append(m.CreateFARs, v)
	}
	if len(m.CreateFARs) == 0 {
		return nil, mandatoryIe(name, ie.TypeCreateFAR)
	}

	for _, c := range g.All(ie.TypeCreateURR) {
		v, err := ie.ParseCreateURR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.CreateURRs = append(m.CreateURRs, v)
	}
	for _, c := range g.All(ie.TypeCreateQER) {
		v, err := ie.ParseCreateQER(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.CreateQERs = append(m.CreateQERs, v)
	}
	for _, c := range g.All(ie.TypeCreateBAR) {
		v, err := ie.ParseCreateBAR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.CreateBARs = append(m.CreateBARs, v)
	}
	return m, nil
}

func (m *SessionEstablishmentRequest) MessageType() uint8 { return TypeSessionEstablishmentRequest }
func (m *SessionEstablishmentRequest) MarshalIEs() []byte {
	parts := [][]byte{m.NodeID.ToIE(), m.FSEID.ToIE()}
	for _, v := range m.CreatePDRs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.CreateFARs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.CreateURRs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.CreateQERs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.CreateBARs {
		parts = append(parts, v.ToIE())
	}
	return ie.Emit(parts...)
}

// SessionEstablishmentResponse reports whether the session was
// installed, echoing any UPF-allocated F-TEIDs.
type SessionEstablishmentResponse struct {
	NodeID      *ie.NodeID
	Cause       ie.Cause
	FSEID       *ie.FSEID
	CreatedPDRs []*ie.CreatedPDR
	OffendingIE *ie.OffendingIE
}

func DecodeSessionEstablishmentResponse(body []byte) (*SessionEstablishmentResponse, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	name := Name(TypeSessionEstablishmentResponse)

	nc, err := g.RequireOne(name, ie.TypeNodeID)
	if err != nil {
		return nil, err
	}
	nodeID, err := ie.UnmarshalNodeID(nc.Raw.Value)
	if err != nil {
		return nil, err
	}

	cc, err := g.RequireOne(name, ie.TypeCause)
	if err != nil {
		return nil, err
	}
	cause, err := ie.UnmarshalCause(cc.Raw.Value)
	if err != nil {
		return nil, err
	}

	m := &SessionEstablishmentResponse{NodeID: nodeID, Cause: cause}
	if c := g.First(ie.TypeFSEID); c != nil {
		f, err := ie.UnmarshalFSEID(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		m.FSEID = f
	}
	for _, c := range g.All(ie.TypeCreatedPDR) {
		v, err := ie.ParseCreatedPDR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.CreatedPDRs = append(m.CreatedPDRs, v)
	}
	if oc := g.First(ie.TypeOffendingIE); oc != nil {
		o, err := ie.UnmarshalOffendingIE(oc.Raw.Value)
		if err != nil {
			return nil, err
		}
		m.OffendingIE = &o
	}
	return m, nil
}

func (m *SessionEstablishmentResponse) MessageType() uint8 {
	return TypeSessionEstablishmentResponse
}
func (m *SessionEstablishmentResponse) MarshalIEs() []byte {
	parts := [][]byte{m.NodeID.ToIE(), m.Cause.ToIE()}
	if m.FSEID != nil {
		parts = append(parts, m.FSEID.ToIE())
	}
	for _, v := range m.CreatedPDRs {
		parts = append(parts, v.ToIE())
	}
	if m.OffendingIE != nil {
		parts = append(parts, m.OffendingIE.ToIE())
	}
	return ie.Emit(parts...)
}

// SessionModificationRequest applies an incremental change to an
// existing session's rule sets.
type SessionModificationRequest struct {
	FSEID      *ie.FSEID
	CreatePDRs []*ie.CreatePDR
	UpdatePDRs []*ie.UpdatePDR
	RemovePDRs []*ie.RemovePDR
	CreateFARs []*ie.CreateFAR
	UpdateFARs []*ie.UpdateFAR
	RemoveFARs []*ie.RemoveFAR
	CreateURRs []*ie.CreateURR
	UpdateURRs []*ie.UpdateURR
	RemoveURRs []*ie.RemoveURR
	CreateQERs []*ie.CreateQER
	UpdateQERs []*ie.UpdateQER
	RemoveQERs []*ie.RemoveQER
	CreateBARs []*ie.CreateBAR
	UpdateBARs []*ie.UpdateBAR
	RemoveBARs []*ie.RemoveBAR
}

func DecodeSessionModificationRequest(body []byte) (*SessionModificationRequest, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	m := &SessionModificationRequest{}

	if c := g.First(ie.TypeFSEID); c != nil {
		f, err := ie.UnmarshalFSEID(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		m.FSEID = f
	}
	for _, c := range g.All(ie.TypeCreatePDR) {
		v, err := ie.ParseCreatePDR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.CreatePDRs = append(m.CreatePDRs, v)
	}
	for _, c := range g.All(ie.TypeUpdatePDR) {
		v, err := ie.ParseUpdatePDR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.UpdatePDRs = append(m.UpdatePDRs, v)
	}
	for _, c := range g.All(ie.TypeRemovePDR) {
		v, err := ie.ParseRemovePDR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.RemovePDRs = append(m.RemovePDRs, v)
	}
	for _, c := range g.All(ie.TypeCreateFAR) {
		v, err := ie.ParseCreateFAR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.CreateFARs = append(m.CreateFARs, v)
	}
	for _, c := range g.All(ie.TypeUpdateFAR) {
		v, err := ie.ParseUpdateFAR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.UpdateFARs = append(m.UpdateFARs, v)
	}
	for _, c := range g.All(ie.TypeRemoveFAR) {
		v, err := ie.ParseRemoveFAR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.RemoveFARs = append(m.RemoveFARs, v)
	}
	for _, c := range g.All(ie.TypeCreateURR) {
		v, err := ie.ParseCreateURR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.CreateURRs = append(m.CreateURRs, v)
	}
	for _, c := range g.All(ie.TypeUpdateURR) {
		v, err := ie.ParseUpdateURR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.UpdateURRs = append(m.UpdateURRs, v)
	}
	for _, c := range g.All(ie.TypeRemoveURR) {
		v, err := ie.ParseRemoveURR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.RemoveURRs = append(m.RemoveURRs, v)
	}
	for _, c := range g.All(ie.TypeCreateQER) {
		v, err := ie.ParseCreateQER(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.CreateQERs = append(m.CreateQERs, v)
	}
	for _, c := range g.All(ie.TypeUpdateQER) {
		v, err := ie.ParseUpdateQER(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.UpdateQERs = append(m.UpdateQERs, v)
	}
	for _, c := range g.All(ie.TypeRemoveQER) {
		v, err := ie.ParseRemoveQER(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.RemoveQERs = append(m.RemoveQERs, v)
	}
	for _, c := range g.All(ie.TypeCreateBAR) {
		v, err := ie.ParseCreateBAR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.CreateBARs = append(m.CreateBARs, v)
	}
	for _, c := range g.All(ie.TypeUpdateBAR) {
		v, err := ie.ParseUpdateBAR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.UpdateBARs = append(m.UpdateBARs, v)
	}
	for _, c := range g.All(ie.TypeRemoveBAR) {
		v, err := ie.ParseRemoveBAR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.RemoveBARs = append(m.RemoveBARs, v)
	}
	return m, nil
}

func (m *SessionModificationRequest) MessageType() uint8 { return TypeSessionModificationRequest }
func (m *SessionModificationRequest) MarshalIEs() []byte {
	var parts [][]byte
	if m.FSEID != nil {
		parts = append(parts, m.FSEID.ToIE())
	}
	for _, v := range m.CreatePDRs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.UpdatePDRs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.RemovePDRs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.CreateFARs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.UpdateFARs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.RemoveFARs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.CreateURRs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.UpdateURRs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.RemoveURRs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.CreateQERs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.UpdateQERs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.RemoveQERs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.CreateBARs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.UpdateBARs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.RemoveBARs {
		parts = append(parts, v.ToIE())
	}
	return ie.Emit(parts...)
}

// SessionModificationResponse reports whether the change was applied,
// carrying any newly created PDRs' allocated F-TEIDs and any usage
// accrued up to the modification (e.g. when a URR was removed).
type SessionModificationResponse struct {
	Cause        ie.Cause
	CreatedPDRs  []*ie.CreatedPDR
	UsageReports []*ie.UsageReport
	OffendingIE  *ie.OffendingIE
}

func DecodeSessionModificationResponse(body []byte) (*SessionModificationResponse, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	cc, err := g.RequireOne(Name(TypeSessionModificationResponse), ie.TypeCause)
	if err != nil {
		return nil, err
	}
	cause, err := ie.UnmarshalCause(cc.Raw.Value)
	if err != nil {
		return nil, err
	}
	m := &SessionModificationResponse{Cause: cause}
	for _, c := range g.All(ie.TypeCreatedPDR) {
		v, err := ie.ParseCreatedPDR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.CreatedPDRs = append(m.CreatedPDRs, v)
	}
	for _, c := range g.All(ie.TypeUsageReport) {
		v, err := ie.ParseUsageReport(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.UsageReports = append(m.UsageReports, v)
	}
	if oc := g.First(ie.TypeOffendingIE); oc != nil {
		o, err := ie.UnmarshalOffendingIE(oc.Raw.Value)
		if err != nil {
			return nil, err
		}
		m.OffendingIE = &o
	}
	return m, nil
}

func (m *SessionModificationResponse) MessageType() uint8 { return TypeSessionModificationResponse }
func (m *SessionModificationResponse) MarshalIEs() []byte {
	parts := [][]byte{m.Cause.ToIE()}
	for _, v := range m.CreatedPDRs {
		parts = append(parts, v.ToIE())
	}
	for _, v := range m.UsageReports {
		parts = append(parts, v.ToIE())
	}
	if m.OffendingIE != nil {
		parts = append(parts, m.OffendingIE.ToIE())
	}
	return ie.Emit(parts...)
}

// SessionDeletionRequest carries no mandatory IEs; the session it
// targets is identified entirely by the header's SEID.
type SessionDeletionRequest struct{}

func DecodeSessionDeletionRequest(body []byte) (*SessionDeletionRequest, error) {
	if _, err := groupParse(body); err != nil {
		return nil, err
	}
	return &SessionDeletionRequest{}, nil
}

func (m *SessionDeletionRequest) MessageType() uint8 { return TypeSessionDeletionRequest }
func (m *SessionDeletionRequest) MarshalIEs() []byte { return nil }

// SessionDeletionResponse reports whether the session was removed,
// carrying the final usage accrued by its URRs.
type SessionDeletionResponse struct {
	Cause        ie.Cause
	UsageReports []*ie.UsageReport
}

func DecodeSessionDeletionResponse(body []byte) (*SessionDeletionResponse, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	cc, err := g.RequireOne(Name(TypeSessionDeletionResponse), ie.TypeCause)
	if err != nil {
		return nil, err
	}
	cause, err := ie.UnmarshalCause(cc.Raw.Value)
	if err != nil {
		return nil, err
	}
	m := &SessionDeletionResponse{Cause: cause}
	for _, c := range g.All(ie.TypeUsageReport) {
		v, err := ie.ParseUsageReport(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.UsageReports = append(m.UsageReports, v)
	}
	return m, nil
}

func (m *SessionDeletionResponse) MessageType() uint8 { return TypeSessionDeletionResponse }
func (m *SessionDeletionResponse) MarshalIEs() []byte {
	parts := [][]byte{m.Cause.ToIE()}
	for _, v := range m.UsageReports {
		parts = append(parts, v.ToIE())
	}
	return ie.Emit(parts...)
}

// SessionReportRequest is sent UPF -> SMF to deliver usage data or
// notify of a session-scoped event (downlink data arrival, error
// indication, inactivity).
type SessionReportRequest struct {
	ReportType   ie.ReportType
	UsageReports []*ie.UsageReport
}

func DecodeSessionReportRequest(body []byte) (*SessionReportRequest, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	rc, err := g.RequireOne(Name(TypeSessionReportRequest), ie.TypeReportType)
	if err != nil {
		return nil, err
	}
	rt, err := ie.UnmarshalReportType(rc.Raw.Value)
	if err != nil {
		return nil, err
	}
	m := &SessionReportRequest{ReportType: rt}
	for _, c := range g.All(ie.TypeUsageReport) {
		v, err := ie.ParseUsageReport(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.UsageReports = append(m.UsageReports, v)
	}
	return m, nil
}

func (m *SessionReportRequest) MessageType() uint8 { return TypeSessionReportRequest }
func (m *SessionReportRequest) MarshalIEs() []byte {
	parts := [][]byte{m.ReportType.ToIE()}
	for _, v := range m.UsageReports {
		parts = append(parts, v.ToIE())
	}
	return ie.Emit(parts...)
}

// SessionReportResponse acknowledges a Session Report Request, and may
// carry a BAR update in response to a downlink data report (e.g. to
// start buffering) or request the SMF drop a buffered downlink packet.
type SessionReportResponse struct {
	Cause          ie.Cause
	OffendingIE    *ie.OffendingIE
	UpdateBAR      *ie.UpdateBAR
	PFCPSRRspFlags *ie.PFCPSRRspFlags
}

func DecodeSessionReportResponse(body []byte) (*SessionReportResponse, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	cc, err := g.RequireOne(Name(TypeSessionReportResponse), ie.TypeCause)
	if err != nil {
		return nil, err
	}
	cause, err := ie.UnmarshalCause(cc.Raw.Value)
	if err != nil {
		return nil, err
	}
	m := &SessionReportResponse{Cause: cause}
	if oc := g.First(ie.TypeOffendingIE); oc != nil {
		o, err := ie.UnmarshalOffendingIE(oc.Raw.Value)
		if err != nil {
			return nil, err
		}
		m.OffendingIE = &o
	}
	if c := g.First(ie.TypeUpdateBAR); c != nil {
		u, err := ie.ParseUpdateBAR(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.UpdateBAR = u
	}
	if c := g.First(ie.TypePFCPSRRspFlags); c != nil {
		f, err := ie.UnmarshalPFCPSRRspFlags(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		m.PFCPSRRspFlags = &f
	}
	return m, nil
}

func (m *SessionReportResponse) MessageType() uint8 { return TypeSessionReportResponse }
func (m *SessionReportResponse) MarshalIEs() []byte {
	parts := [][]byte{m.Cause.ToIE()}
	if m.OffendingIE != nil {
		parts = append(parts, m.OffendingIE.ToIE())
	}
	if m.UpdateBAR != nil {
		parts = append(parts, m.UpdateBAR.ToIE())
	}
	if m.PFCPSRRspFlags != nil {
		parts = append(parts, m.PFCPSRRspFlags.ToIE())
	}
	return ie.Emit(parts...)
}

// mandatoryIe builds a MandatoryIeMissing error scoped to a message
// name for a repeated-IE slot (at-least-one-required), distinct from
// the single-child ie.Group.RequireOne helper.
func mandatoryIe(messageName string, ieType uint16) error {
	return pfcperr.MandatoryIeMissingErr(messageName, ie.TypeName(ieType))
}
