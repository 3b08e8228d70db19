// Package message implements the PFCP message catalog: 25 message
// types over the header (pfcp/header) and IE (pfcp/ie) codecs, per
// 3GPP TS 29.244 Release 18 clause 7.3. Each type is a concrete Go
// struct with a Decode function and a MarshalIEs method; Parse and
// Emit tie those to the header codec.
package message

import (
	"strconv"

	"github.com/your-org/pfcp-core/pfcp/header"
	"github.com/your-org/pfcp-core/pfcp/ie"
	"github.com/your-org/pfcp-core/pfcp/pfcperr"
)

// Message type codes, per TS 29.244 Table 7.2.1-1. Request codes are
// odd; each request's response is the next even code, per 3GPP
// convention.
const (
	TypeHeartbeatRequest             uint8 = 1
	TypeHeartbeatResponse            uint8 = 2
	TypePFDManagementRequest         uint8 = 3
	TypePFDManagementResponse        uint8 = 4
	TypeAssociationSetupRequest      uint8 = 5
	TypeAssociationSetupResponse     uint8 = 6
	TypeAssociationUpdateRequest     uint8 = 7
	TypeAssociationUpdateResponse    uint8 = 8
	TypeAssociationReleaseRequest    uint8 = 9
	TypeAssociationReleaseResponse   uint8 = 10
	TypeVersionNotSupportedResponse  uint8 = 11
	TypeNodeReportRequest            uint8 = 12
	TypeNodeReportResponse           uint8 = 13
	TypeSessionSetDeletionRequest    uint8 = 14
	TypeSessionSetDeletionResponse   uint8 = 15
	TypeSessionEstablishmentRequest  uint8 = 50
	TypeSessionEstablishmentResponse uint8 = 51
	TypeSessionModificationRequest   uint8 = 52
	TypeSessionModificationResponse  uint8 = 53
	TypeSessionDeletionRequest       uint8 = 54
	TypeSessionDeletionResponse      uint8 = 55
	TypeSessionReportRequest         uint8 = 56
	TypeSessionReportResponse        uint8 = 57
)

// Message is implemented by every decoded message type. MarshalIEs
// serializes the message's IE sequence in spec order; it does not
// include the header, which Emit attaches separately.
type Message interface {
	MessageType() uint8
	MarshalIEs() []byte
}

// typeNames backs Name() for logging and error context.
var typeNames = map[uint8]string{
	TypeHeartbeatRequest:             "Heartbeat Request",
	TypeHeartbeatResponse:            "Heartbeat Response",
	TypePFDManagementRequest:         "PFD Management Request",
	TypePFDManagementResponse:        "PFD Management Response",
	TypeAssociationSetupRequest:      "Association Setup Request",
	TypeAssociationSetupResponse:     "Association Setup Response",
	TypeAssociationUpdateRequest:     "Association Update Request",
	TypeAssociationUpdateResponse:    "Association Update Response",
	TypeAssociationReleaseRequest:    "Association Release Request",
	TypeAssociationReleaseResponse:   "Association Release Response",
	TypeVersionNotSupportedResponse:  "Version Not Supported Response",
	TypeNodeReportRequest:            "Node Report Request",
	TypeNodeReportResponse:           "Node Report Response",
	TypeSessionSetDeletionRequest:    "Session Set Deletion Request",
	TypeSessionSetDeletionResponse:   "Session Set Deletion Response",
	TypeSessionEstablishmentRequest:  "Session Establishment Request",
	TypeSessionEstablishmentResponse: "Session Establishment Response",
	TypeSessionModificationRequest:   "Session Modification Request",
	TypeSessionModificationResponse:  "Session Modification Response",
	TypeSessionDeletionRequest:       "Session Deletion Request",
	TypeSessionDeletionResponse:      "Session Deletion Response",
	TypeSessionReportRequest:         "Session Report Request",
	TypeSessionReportResponse:        "Session Report Response",
}

// Name returns a human-readable name for msgType, falling back to its
// numeric form for codes outside this catalog.
func Name(msgType uint8) string {
	if n, ok := typeNames[msgType]; ok {
		return n
	}
	return "Message " + strconv.Itoa(int(msgType))
}

// sessionScoped lists every message type whose header MUST carry the S
// flag (session-scoped messages); every other type's header MUST NOT.
var sessionScoped = map[uint8]bool{
	TypeSessionEstablishmentRequest:  true,
	TypeSessionEstablishmentResponse: true,
	TypeSessionModificationRequest:   true,
	TypeSessionModificationResponse:  true,
	TypeSessionDeletionRequest:       true,
	TypeSessionDeletionResponse:      true,
	TypeSessionReportRequest:         true,
	TypeSessionReportResponse:        true,
}

// SEIDRequired reports whether msgType's header must carry the S flag.
func SEIDRequired(msgType uint8) bool { return sessionScoped[msgType] }

// decoders dispatches a message type's IE body (already sliced from
// the header's declared length) to its Decode function.
var decoders = map[uint8]func(body []byte) (Message, error){
	TypeHeartbeatRequest:             func(b []byte) (Message, error) { return DecodeHeartbeatRequest(b) },
	TypeHeartbeatResponse:            func(b []byte) (Message, error) { return DecodeHeartbeatResponse(b) },
	TypePFDManagementRequest:         func(b []byte) (Message, error) { return DecodePFDManagementRequest(b) },
	TypePFDManagementResponse:        func(b []byte) (Message, error) { return DecodePFDManagementResponse(b) },
	TypeAssociationSetupRequest:      func(b []byte) (Message, error) { return DecodeAssociationSetupRequest(b) },
	TypeAssociationSetupResponse:     func(b []byte) (Message, error) { return DecodeAssociationSetupResponse(b) },
	TypeAssociationUpdateRequest:     func(b []byte) (Message, error) { return DecodeAssociationUpdateRequest(b) },
	TypeAssociationUpdateResponse:    func(b []byte) (Message, error) { return DecodeAssociationUpdateResponse(b) },
	TypeAssociationReleaseRequest:    func(b []byte) (Message, error) { return DecodeAssociationReleaseRequest(b) },
	TypeAssociationReleaseResponse:   func(b []byte) (Message, error) { return DecodeAssociationReleaseResponse(b) },
	TypeVersionNotSupportedResponse:  func(b []byte) (Message, error) { return DecodeVersionNotSupportedResponse(b) },
	TypeNodeReportRequest:            func(b []byte) (Message, error) { return DecodeNodeReportRequest(b) },
	TypeNodeReportResponse:           func(b []byte) (Message, error) { return DecodeNodeReportResponse(b) },
	TypeSessionSetDeletionRequest:    func(b []byte) (Message, error) { return DecodeSessionSetDeletionRequest(b) },
	TypeSessionSetDeletionResponse:   func(b []byte) (Message, error) { return DecodeSessionSetDeletionResponse(b) },
	TypeSessionEstablishmentRequest:  func(b []byte) (Message, error) { return DecodeSessionEstablishmentRequest(b) },
	TypeSessionEstablishmentResponse: func(b []byte) (Message, error) { return DecodeSessionEstablishmentResponse(b) },
	TypeSessionModificationRequest:   func(b []byte) (Message, error) { return DecodeSessionModificationRequest(b) },
	TypeSessionModificationResponse:  func(b []byte) (Message, error) { return DecodeSessionModificationResponse(b) },
	TypeSessionDeletionRequest:       func(b []byte) (Message, error) { return DecodeSessionDeletionRequest(b) },
	TypeSessionDeletionResponse:      func(b []byte) (Message, error) { return DecodeSessionDeletionResponse(b) },
	TypeSessionReportRequest:         func(b []byte) (Message, error) { return DecodeSessionReportRequest(b) },
	TypeSessionReportResponse:        func(b []byte) (Message, error) { return DecodeSessionReportResponse(b) },
}

// Decoded is the result of a successful Parse: the header plus the
// typed message body it framed.
type Decoded struct {
	Header  *header.Header
	Message Message
}

// Parse decodes a full PFCP buffer (header + IEs) into a typed
// message. Unrelated/unknown-but-skippable IEs are dropped silently by
// the underlying decoder per the forward-compatibility rule; any
// mandatory-IE violation or structural failure is fatal for the whole
// message (spec §4.6 "Failure semantics").
func Parse(buf []byte) (*Decoded, error) {
	h, offset, err := header.Parse(buf)
	if err != nil {
		return nil, err
	}

	decode, ok := decoders[h.MessageType]
	if !ok {
		return nil, pfcperr.UnknownMessageTypeErr(h.MessageType)
	}

	if SEIDRequired(h.MessageType) != h.SEIDPresent {
		return nil, &pfcperr.Error{
			Code:        pfcperr.InvalidValue,
			MessageName: Name(h.MessageType),
			Reason:      "S flag does not match this message type's SEID requirement",
		}
	}

	declaredEnd := 4 + int(h.MessageLength)
	body := buf[offset:declaredEnd]

	msg, err := decode(body)
	if err != nil {
		if perr, ok := err.(*pfcperr.Error); ok {
			return nil, perr.WithContext("in " + Name(h.MessageType))
		}
		return nil, err
	}

	return &Decoded{Header: h, Message: msg}, nil
}

// Emit serializes msg's IEs and wraps them with h via the header
// codec, computing Message Length from the assembled payload.
func Emit(h *header.Header, msg Message) []byte {
	h.MessageType = msg.MessageType()
	h.SEIDPresent = SEIDRequired(h.MessageType)
	return header.Emit(h, msg.MarshalIEs())
}

// groupParse is a small helper shared by every Decode function: parse
// the message body as a top-level (depth 0) IE group.
func groupParse(body []byte) (*ie.Group, error) {
	return ie.ParseGroup(body, 0)
}
