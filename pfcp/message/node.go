package message

import (
	"github.com/your-org/pfcp-core/pfcp/ie"
	"github.com/your-org/pfcp-core/pfcp/pfcperr"
)

// HeartbeatRequest carries the sender's restart counter so a peer can
// detect whether state must be re-synchronized.
type HeartbeatRequest struct {
	RecoveryTimeStamp ie.RecoveryTimeStamp
}

func DecodeHeartbeatRequest(body []byte) (*HeartbeatRequest, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	name := Name(TypeHeartbeatRequest)
	c, err := g.RequireOne(name, ie.TypeRecoveryTimeStamp)
	if err != nil {
		return nil, err
	}
	ts, err := ie.UnmarshalRecoveryTimeStamp(c.Raw.Value)
	if err != nil {
		return nil, err
	}
	return &HeartbeatRequest{RecoveryTimeStamp: ts}, nil
}

func (m *HeartbeatRequest) MessageType() uint8 { return TypeHeartbeatRequest }
func (m *HeartbeatRequest) MarshalIEs() []byte { return m.RecoveryTimeStamp.ToIE() }

// HeartbeatResponse echoes the responder's own restart counter.
type HeartbeatResponse struct {
	RecoveryTimeStamp ie.RecoveryTimeStamp
}

func DecodeHeartbeatResponse(body []byte) (*HeartbeatResponse, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	c, err := g.RequireOne(Name(TypeHeartbeatResponse), ie.TypeRecoveryTimeStamp)
	if err != nil {
		return nil, err
	}
	ts, err := ie.UnmarshalRecoveryTimeStamp(c.Raw.Value)
	if err != nil {
		return nil, err
	}
	return &HeartbeatResponse{RecoveryTimeStamp: ts}, nil
}

func (m *HeartbeatResponse) MessageType() uint8 { return TypeHeartbeatResponse }
func (m *HeartbeatResponse) MarshalIEs() []byte { return m.RecoveryTimeStamp.ToIE() }

// PFDManagementRequest installs or refreshes Packet Flow Descriptions
// for one or more applications, SMF/PFD-function -> UPF.
type PFDManagementRequest struct {
	ApplicationIDsPFDs []*ie.ApplicationIDsPFDs
}

func DecodePFDManagementRequest(body []byte) (*PFDManagementRequest, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	name := Name(TypePFDManagementRequest)
	children := g.All(ie.TypeApplicationIDsPFDs)
	if len(children) == 0 {
		return nil, pfcperr.MandatoryIeMissingErr(name, "Application ID's PFDs")
	}
	m := &PFDManagementRequest{}
	for _, c := range children {
		a, err := ie.ParseApplicationIDsPFDs(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.ApplicationIDsPFDs = append(m.ApplicationIDsPFDs, a)
	}
	return m, nil
}

func (m *PFDManagementRequest) MessageType() uint8 { return TypePFDManagementRequest }
func (m *PFDManagementRequest) MarshalIEs() []byte {
	var parts [][]byte
	for _, a := range m.ApplicationIDsPFDs {
		parts = append(parts, a.ToIE())
	}
	return ie.Emit(parts...)
}

// PFDManagementResponse reports whether the installation succeeded.
type PFDManagementResponse struct {
	Cause       ie.Cause
	OffendingIE *ie.OffendingIE
}

func DecodePFDManagementResponse(body []byte) (*PFDManagementResponse, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	name := Name(TypePFDManagementResponse)
	c, err := g.RequireOne(name, ie.TypeCause)
	if err != nil {
		return nil, err
	}
	cause, err := ie.UnmarshalCause(c.Raw.Value)
	if err != nil {
		return nil, err
	}
	m := &PFDManagementResponse{Cause: cause}
	if oc := g.First(ie.TypeOffendingIE); oc != nil {
		o, err := ie.UnmarshalOffendingIE(oc.Raw.Value)
		if err != nil {
			return nil, err
		}
		m.OffendingIE = &o
	}
	return m, nil
}

func (m *PFDManagementResponse) MessageType() uint8 { return TypePFDManagementResponse }
func (m *PFDManagementResponse) MarshalIEs() []byte {
	parts := [][]byte{m.Cause.ToIE()}
	if m.OffendingIE != nil {
		parts = append(parts, m.OffendingIE.ToIE())
	}
	return ie.Emit(parts...)
}

// AssociationSetupRequest establishes a PFCP association between two
// nodes, exchanging node identities and capabilities.
type AssociationSetupRequest struct {
	NodeID             *ie.NodeID
	RecoveryTimeStamp  ie.RecoveryTimeStamp
	UPFunctionFeatures *ie.UPFunctionFeatures
	CPFunctionFeatures *ie.CPFunctionFeatures
}

func DecodeAssociationSetupRequest(body []byte) (*AssociationSetupRequest, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	name := Name(TypeAssociationSetupRequest)

	nc, err := g.RequireOne(name, ie.TypeNodeID)
	if err != nil {
		return nil, err
	}
	nodeID, err := ie.UnmarshalNodeID(nc.Raw.Value)
	if err != nil {
		return nil, err
	}

	rc, err := g.RequireOne(name, ie.TypeRecoveryTimeStamp)
	if err != nil {
		return nil, err
	}
	ts, err := ie.UnmarshalRecoveryTimeStamp(rc.Raw.Value)
	if err != nil {
		return nil, err
	}

	m := &AssociationSetupRequest{NodeID: nodeID, RecoveryTimeStamp: ts}
	if c := g.First(ie.TypeUPFunctionFeatures); c != nil {
		f, err := ie.UnmarshalUPFunctionFeatures(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		m.UPFunctionFeatures = f
	}
	if c := g.First(ie.TypeCPFunctionFeatures); c != nil {
		f, err := ie.UnmarshalCPFunctionFeatures(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		m.CPFunctionFeatures = &f
	}
	return m, nil
}

func (m *AssociationSetupRequest) MessageType() uint8 { return TypeAssociationSetupRequest }
func (m *AssociationSetupRequest) MarshalIEs() []byte {
	parts := [][]byte{m.NodeID.ToIE(), m.RecoveryTimeStamp.ToIE()}
	if m.UPFunctionFeatures != nil {
		parts = append(parts, m.UPFunctionFeatures.ToIE())
	}
	if m.CPFunctionFeatures != nil {
		parts = append(parts, m.CPFunctionFeatures.ToIE())
	}
	return ie.Emit(parts...)
}

// AssociationSetupResponse reports acceptance plus the responder's own
// node identity, restart counter, and capabilities.
type AssociationSetupResponse struct {
	NodeID             *ie.NodeID
	Cause              ie.Cause
	RecoveryTimeStamp  ie.RecoveryTimeStamp
	UPFunctionFeatures *ie.UPFunctionFeatures
}

func DecodeAssociationSetupResponse(body []byte) (*AssociationSetupResponse, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	name := Name(TypeAssociationSetupResponse)

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

	rc, err := g.RequireOne(name, ie.TypeRecoveryTimeStamp)
	if err != nil {
		return nil, err
	}
	ts, err := ie.UnmarshalRecoveryTimeStamp(rc.Raw.Value)
	if err != nil {
		return nil, err
	}

	m := &AssociationSetupResponse{NodeID: nodeID, Cause: cause, RecoveryTimeStamp: ts}
	if c := g.First(ie.TypeUPFunctionFeatures); c != nil {
		f, err := ie.UnmarshalUPFunctionFeatures(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		m.UPFunctionFeatures = f
	}
	return m, nil
}

func (m *AssociationSetupResponse) MessageType() uint8 { return TypeAssociationSetupResponse }
func (m *AssociationSetupResponse) MarshalIEs() []byte {
	parts := [][]byte{m.NodeID.ToIE(), m.Cause.ToIE(), m.RecoveryTimeStamp.ToIE()}
	if m.UPFunctionFeatures != nil {
		parts = append(parts, m.UPFunctionFeatures.ToIE())
	}
	return ie.Emit(parts...)
}

// AssociationUpdateRequest refreshes capabilities on an existing
// association, or requests its release.
type AssociationUpdateRequest struct {
	NodeID                  *ie.NodeID
	UPFunctionFeatures      *ie.UPFunctionFeatures
	CPFunctionFeatures      *ie.CPFunctionFeatures
	PFCPAssocReleaseRequest *ie.PFCPAssocReleaseRequest
	GracefulReleasePeriod   *ie.GracefulReleasePeriod
}

func DecodeAssociationUpdateRequest(body []byte) (*AssociationUpdateRequest, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	nc, err := g.RequireOne(Name(TypeAssociationUpdateRequest), ie.TypeNodeID)
	if err != nil {
		return nil, err
	}
	nodeID, err := ie.UnmarshalNodeID(nc.Raw.Value)
	if err != nil {
		return nil, err
	}
	m := &AssociationUpdateRequest{NodeID: nodeID}
	if c := g.First(ie.TypeUPFunctionFeatures); c != nil {
		f, err := ie.UnmarshalUPFunctionFeatures(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		m.UPFunctionFeatures = f
	}
	if c := g.First(ie.TypeCPFunctionFeatures); c != nil {
		f, err := ie.UnmarshalCPFunctionFeatures(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		m.CPFunctionFeatures = &f
	}
	if c := g.First(ie.TypePFCPAssocReleaseRequest); c != nil {
		f, err := ie.UnmarshalPFCPAssocReleaseRequest(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		m.PFCPAssocReleaseRequest = &f
	}
	if c := g.First(ie.TypeGracefulReleasePeriod); c != nil {
		f, err := ie.UnmarshalGracefulReleasePeriod(c.Raw.Value)
		if err != nil {
			return nil, err
		}
		m.GracefulReleasePeriod = &f
	}
	return m, nil
}

func (m *AssociationUpdateRequest) MessageType() uint8 { return TypeAssociationUpdateRequest }
func (m *AssociationUpdateRequest) MarshalIEs() []byte {
	parts := [][]byte{m.NodeID.ToIE()}
	if m.UPFunctionFeatures != nil {
		parts = append(parts, m.UPFunctionFeatures.ToIE())
	}
	if m.CPFunctionFeatures != nil {
		parts = append(parts, m.CPFunctionFeatures.ToIE())
	}
	if m.PFCPAssocReleaseRequest != nil {
		parts = append(parts, m.PFCPAssocReleaseRequest.ToIE())
	}
	if m.GracefulReleasePeriod != nil {
		parts = append(parts, m.GracefulReleasePeriod.ToIE())
	}
	return ie.Emit(parts...)
}

// AssociationUpdateResponse reports acceptance of an association
// update or release.
type AssociationUpdateResponse struct {
	NodeID *ie.NodeID
	Cause  ie.Cause
}

func DecodeAssociationUpdateResponse(body []byte) (*AssociationUpdateResponse, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	name := Name(TypeAssociationUpdateResponse)
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
	return &AssociationUpdateResponse{NodeID: nodeID, Cause: cause}, nil
}

func (m *AssociationUpdateResponse) MessageType() uint8 { return TypeAssociationUpdateResponse }
func (m *AssociationUpdateResponse) MarshalIEs() []byte {
	return ie.Emit(m.NodeID.ToIE(), m.Cause.ToIE())
}

// AssociationReleaseRequest tears down a PFCP association.
type AssociationReleaseRequest struct {
	NodeID *ie.NodeID
}

func DecodeAssociationReleaseRequest(body []byte) (*AssociationReleaseRequest, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	c, err := g.RequireOne(Name(TypeAssociationReleaseRequest), ie.TypeNodeID)
	if err != nil {
		return nil, err
	}
	nodeID, err := ie.UnmarshalNodeID(c.Raw.Value)
	if err != nil {
		return nil, err
	}
	return &AssociationReleaseRequest{NodeID: nodeID}, nil
}

func (m *AssociationReleaseRequest) MessageType() uint8 { return TypeAssociationReleaseRequest }
func (m *AssociationReleaseRequest) MarshalIEs() []byte { return m.NodeID.ToIE() }

// AssociationReleaseResponse confirms an association's release.
type AssociationReleaseResponse struct {
	NodeID *ie.NodeID
	Cause  ie.Cause
}

func DecodeAssociationReleaseResponse(body []byte) (*AssociationReleaseResponse, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	name := Name(TypeAssociationReleaseResponse)
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
	return &AssociationReleaseResponse{NodeID: nodeID, Cause: cause}, nil
}

func (m *AssociationReleaseResponse) MessageType() uint8 { return TypeAssociationReleaseResponse }
func (m *AssociationReleaseResponse) MarshalIEs() []byte {
	return ie.Emit(m.NodeID.ToIE(), m.Cause.ToIE())
}

// VersionNotSupportedResponse carries no IEs; its header's message type
// alone tells the peer to retry with a lower PFCP version.
type VersionNotSupportedResponse struct{}

func DecodeVersionNotSupportedResponse(body []byte) (*VersionNotSupportedResponse, error) {
	return &VersionNotSupportedResponse{}, nil
}

func (m *VersionNotSupportedResponse) MessageType() uint8 { return TypeVersionNotSupportedResponse }
func (m *VersionNotSupportedResponse) MarshalIEs() []byte { return nil }

// NodeReportRequest tells the CP function about a node-level event, such
// as a failed user plane path.
type NodeReportRequest struct {
	NodeID                     *ie.NodeID
	NodeReportType             ie.NodeReportType
	UserPlanePathFailureReport *ie.UserPlanePathFailureReport
}

func DecodeNodeReportRequest(body []byte) (*NodeReportRequest, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	name := Name(TypeNodeReportRequest)

	nc, err := g.RequireOne(name, ie.TypeNodeID)
	if err != nil {
		return nil, err
	}
	nodeID, err := ie.UnmarshalNodeID(nc.Raw.Value)
	if err != nil {
		return nil, err
	}

	rc, err := g.RequireOne(name, ie.TypeNodeReportType)
	if err != nil {
		return nil, err
	}
	rt, err := ie.UnmarshalNodeReportType(rc.Raw.Value)
	if err != nil {
		return nil, err
	}

	m := &NodeReportRequest{NodeID: nodeID, NodeReportType: rt}
	if c := g.First(ie.TypeUserPlanePathFailureReport); c != nil {
		f, err := ie.ParseUserPlanePathFailureReport(c.Raw.Value, 1)
		if err != nil {
			return nil, err
		}
		m.UserPlanePathFailureReport = f
	}
	return m, nil
}

func (m *NodeReportRequest) MessageType() uint8 { return TypeNodeReportRequest }
func (m *NodeReportRequest) MarshalIEs() []byte {
	parts := [][]byte{m.NodeID.ToIE(), m.NodeReportType.ToIE()}
	if m.UserPlanePathFailureReport != nil {
		parts = append(parts, m.UserPlanePathFailureReport.ToIE())
	}
	return ie.Emit(parts...)
}

// NodeReportResponse acknowledges a Node Report Request.
type NodeReportResponse struct {
	NodeID      *ie.NodeID
	Cause       ie.Cause
	OffendingIE *ie.OffendingIE
}

func DecodeNodeReportResponse(body []byte) (*NodeReportResponse, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	name := Name(TypeNodeReportResponse)
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
	m := &NodeReportResponse{NodeID: nodeID, Cause: cause}
	if oc := g.First(ie.TypeOffendingIE); oc != nil {
		o, err := ie.UnmarshalOffendingIE(oc.Raw.Value)
		if err != nil {
			return nil, err
		}
		m.OffendingIE = &o
	}
	return m, nil
}

func (m *NodeReportResponse) MessageType() uint8 { return TypeNodeReportResponse }
func (m *NodeReportResponse) MarshalIEs() []byte {
	parts := [][]byte{m.NodeID.ToIE(), m.Cause.ToIE()}
	if m.OffendingIE != nil {
		parts = append(parts, m.OffendingIE.ToIE())
	}
	return ie.Emit(parts...)
}

// SessionSetDeletionRequest tears down every session associated with a
// given set of CP function(s), identified by their node ID, ahead of a
// planned CP function restart.
type SessionSetDeletionRequest struct {
	NodeID *ie.NodeID
}

func DecodeSessionSetDeletionRequest(body []byte) (*SessionSetDeletionRequest, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	c, err := g.RequireOne(Name(TypeSessionSetDeletionRequest), ie.TypeNodeID)
	if err != nil {
		return nil, err
	}
	nodeID, err := ie.UnmarshalNodeID(c.Raw.Value)
	if err != nil {
		return nil, err
	}
	return &SessionSetDeletionRequest{NodeID: nodeID}, nil
}

func (m *SessionSetDeletionRequest) MessageType() uint8 { return TypeSessionSetDeletionRequest }
func (m *SessionSetDeletionRequest) MarshalIEs() []byte { return m.NodeID.ToIE() }

// SessionSetDeletionResponse confirms the bulk session teardown.
type SessionSetDeletionResponse struct {
	NodeID *ie.NodeID
	Cause  ie.Cause
}

func DecodeSessionSetDeletionResponse(body []byte) (*SessionSetDeletionResponse, error) {
	g, err := groupParse(body)
	if err != nil {
		return nil, err
	}
	name := Name(TypeSessionSetDeletionResponse)
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
	return &SessionSetDeletionResponse{NodeID: nodeID, Cause: cause}, nil
}

func (m *SessionSetDeletionResponse) MessageType() uint8 { return TypeSessionSetDeletionResponse }
func (m *SessionSetDeletionResponse) MarshalIEs() []byte {
	return ie.Emit(m.NodeID.ToIE(), m.Cause.ToIE())
}
