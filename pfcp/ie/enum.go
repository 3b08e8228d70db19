package ie

import (
	"github.com/your-org/pfcp-core/pfcp/pfcperr"
	"github.com/your-org/pfcp-core/pfcp/tlv"
)

// Cause is the closed-set result code carried in every response
// message.
type Cause uint8

const (
	CauseRequestAccepted                      Cause = 1
	CauseRequestRejected                      Cause = 64
	CauseSessionContextNotFound                Cause = 65
	CauseMandatoryIEMissing                    Cause = 66
	CauseConditionalIEMissing                  Cause = 67
	CauseInvalidLength                         Cause = 68
	CauseMandatoryIEIncorrect                  Cause = 69
	CauseInvalidForwardingPolicy                Cause = 70
	CauseInvalidFTEIDAllocationOption           Cause = 71
	CauseNoEstablishedPFCPAssociation           Cause = 72
	CauseRuleCreationModificationFailure        Cause = 73
	CausePFCPEntityInCongestion                 Cause = 74
	CauseNoResourcesAvailable                   Cause = 75
	CauseServiceNotSupported                    Cause = 76
	CauseSystemFailure                          Cause = 77
	CauseRedirectionRequested                   Cause = 78
)

var validCauses = map[Cause]bool{
	CauseRequestAccepted: true, CauseRequestRejected: true, CauseSessionContextNotFound: true,
	CauseMandatoryIEMissing: true, CauseConditionalIEMissing: true, CauseInvalidLength: true,
	CauseMandatoryIEIncorrect: true, CauseInvalidForwardingPolicy: true,
	CauseInvalidFTEIDAllocationOption: true, CauseNoEstablishedPFCPAssociation: true,
	CauseRuleCreationModificationFailure: true, CausePFCPEntityInCongestion: true,
	CauseNoResourcesAvailable: true, CauseServiceNotSupported: true, CauseSystemFailure: true,
	CauseRedirectionRequested: true,
}

// UnmarshalCause decodes a Cause and rejects unknown discriminants.
func UnmarshalCause(value []byte) (Cause, error) {
	if len(value) < 1 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypeCause), TypeCause, 1, len(value))
	}
	c := Cause(value[0])
	if !validCauses[c] {
		return 0, pfcperr.InvalidValueErr(TypeName(TypeCause), "unknown cause value")
	}
	return c, nil
}

func (c Cause) Marshal() []byte { return []byte{byte(c)} }

func (c Cause) ToIE() []byte { return tlv.Emit(TypeCause, nil, c.Marshal()) }

// Interface is the closed 4-bit enum shared by Source Interface and
// Destination Interface (spec §4.4: 0..3 only).
type Interface uint8

const (
	InterfaceAccess     Interface = 0
	InterfaceCore       Interface = 1
	InterfaceSGiLAN     Interface = 2
	InterfaceCPFunction Interface = 3
)

func unmarshalInterface(ieType uint16, value []byte) (Interface, error) {
	if len(value) < 1 {
		return 0, pfcperr.InvalidLengthErr(TypeName(ieType), ieType, 1, len(value))
	}
	v := Interface(value[0] & 0x0F)
	if v > InterfaceCPFunction {
		return 0, pfcperr.InvalidValueErr(TypeName(ieType), "interface value out of 0..3 range")
	}
	return v, nil
}

func (i Interface) Marshal() []byte { return []byte{byte(i) & 0x0F} }

// SourceInterface decodes/encodes as the Source Interface IE.
type SourceInterface struct{ Interface }

func UnmarshalSourceInterface(value []byte) (SourceInterface, error) {
	v, err := unmarshalInterface(TypeSourceInterface, value)
	return SourceInterface{v}, err
}

func (s SourceInterface) ToIE() []byte { return tlv.Emit(TypeSourceInterface, nil, s.Marshal()) }

// DestinationInterface decodes/encodes as the Destination Interface IE.
type DestinationInterface struct{ Interface }

func UnmarshalDestinationInterface(value []byte) (DestinationInterface, error) {
	v, err := unmarshalInterface(TypeDestinationInterface, value)
	return DestinationInterface{v}, err
}

func (d DestinationInterface) ToIE() []byte { return tlv.Emit(TypeDestinationInterface, nil, d.Marshal()) }

// ReportType is a flag byte over the reasons a Session Report Request
// was generated; modeled here as a closed set of named bits rather than
// a strict enum because 3GPP allows several to be combined.
type ReportType uint8

const (
	ReportTypeDLDR  ReportType = 1 << 0 // downlink data report
	ReportTypeUSAR  ReportType = 1 << 1 // usage report
	ReportTypeERIR  ReportType = 1 << 2 // error indication report
	ReportTypeUPIR  ReportType = 1 << 3 // user plane inactivity report
)

func UnmarshalReportType(value []byte) (ReportType, error) {
	if len(value) < 1 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypeReportType), TypeReportType, 1, len(value))
	}
	return ReportType(value[0] & 0x0F), nil
}

func (r ReportType) Marshal() []byte { return []byte{byte(r) & 0x0F} }

func (r ReportType) ToIE() []byte { return tlv.Emit(TypeReportType, nil, r.Marshal()) }

func (r ReportType) HasUSAR() bool { return r&ReportTypeUSAR != 0 }
func (r ReportType) HasDLDR() bool { return r&ReportTypeDLDR != 0 }
func (r ReportType) HasERIR() bool { return r&ReportTypeERIR != 0 }
func (r ReportType) HasUPIR() bool { return r&ReportTypeUPIR != 0 }

// OffendingIE names the type code of an IE that caused a mandatory
// violation, echoed back in an error response.
type OffendingIE uint16

func UnmarshalOffendingIE(value []byte) (OffendingIE, error) {
	if len(value) < 2 {
		return 0, pfcperr.InvalidLengthErr(TypeName(TypeOffendingIE), TypeOffendingIE, 2, len(value))
	}
	return OffendingIE(uint16(value[0])<<8 | uint16(value[1])), nil
}

func (o OffendingIE) Marshal() []byte { return []byte{byte(o >> 8), byte(o)} }

func (o OffendingIE) ToIE() []byte { return tlv.Emit(TypeOffendingIE, nil, o.Marshal()) }
