// Package ie implements the PFCP Information Element catalog: marshal,
// unmarshal, and validation for the IE shapes defined in 3GPP TS 29.244
// Release 18 clause 8.2.
//
// Every catalog entry is a concrete Go type with an Unmarshal
// constructor and a ToIE method that wraps its value bytes in the TLV
// envelope (pfcp/tlv) under its own type code. IE types not given a
// concrete representation here are still listed by type code in the
// catalog's set of defined types (definedTypes) so the
// mandatory-to-understand rule is enforceable for them; their value is
// carried as a RawIE.
package ie

import "strconv"

// Type codes for every IE named in this module's scope. Names follow
// 3GPP TS 29.244 Table 8.1.2-1.
const (
	TypeCreatePDR                  uint16 = 1
	TypePDI                        uint16 = 2
	TypeCreateFAR                  uint16 = 3
	TypeForwardingParameters       uint16 = 4
	TypeDuplicatingParameters      uint16 = 5
	TypeCreateURR                  uint16 = 6
	TypeCreateQER                  uint16 = 7
	TypeCreatedPDR                 uint16 = 8
	TypeUpdatePDR                  uint16 = 9
	TypeUpdateFAR                  uint16 = 10
	TypeUpdateForwardingParameters uint16 = 11
	TypeUpdateBAR                  uint16 = 12
	TypeUpdateURR                  uint16 = 13
	TypeUpdateQER                  uint16 = 14
	TypeRemovePDR                  uint16 = 15
	TypeRemoveFAR                  uint16 = 16
	TypeRemoveURR                  uint16 = 17
	TypeRemoveQER                  uint16 = 18
	TypeCause                      uint16 = 19
	TypeSourceInterface            uint16 = 20
	TypeFTEID                      uint16 = 21
	TypeNetworkInstance            uint16 = 22
	TypeSDFFilter                  uint16 = 23
	TypeApplicationID              uint16 = 24
	TypeGateStatus                 uint16 = 25
	TypeMBR                        uint16 = 26
	TypeGBR                        uint16 = 27
	TypeQERCorrelationID           uint16 = 28
	TypePrecedence                 uint16 = 29
	TypeTransportLevelMarking      uint16 = 30
	TypeVolumeThreshold            uint16 = 31
	TypeTimeThreshold              uint16 = 32
	TypeMonitoringTime             uint16 = 33
	TypeSubsequentVolumeThreshold  uint16 = 34
	TypeSubsequentTimeThreshold    uint16 = 35
	TypeInactivityDetectionTime    uint16 = 36
	TypeReportingTriggers          uint16 = 37
	TypeRedirectInformation        uint16 = 38
	TypeReportType                 uint16 = 39
	TypeOffendingIE                uint16 = 40
	TypeForwardingPolicy           uint16 = 41
	TypeDestinationInterface       uint16 = 42
	TypeUPFunctionFeatures         uint16 = 43
	TypeApplyAction                uint16 = 44
	TypeDownlinkDataServiceInfo    uint16 = 45
	TypeDownlinkDataNotifDelay     uint16 = 46
	TypeDLBufferingDuration        uint16 = 47
	TypeDLBufferingSuggestedCount  uint16 = 48
	TypePFCPSMReqFlags             uint16 = 49
	TypePFCPSRRspFlags             uint16 = 50
	TypeSequenceNumber             uint16 = 52
	TypeMetric                     uint16 = 53
	TypeTimer                      uint16 = 54
	TypePDRID                      uint16 = 56
	TypeFSEID                      uint16 = 57
	TypeNodeID                     uint16 = 60
	TypePFDContents                uint16 = 61
	TypeMeasurementMethod          uint16 = 62
	TypeUsageReportTrigger         uint16 = 63
	TypeMeasurementPeriod          uint16 = 64
	TypeFQCSID                     uint16 = 65
	TypeVolumeMeasurement          uint16 = 66
	TypeDurationMeasurement        uint16 = 67
	TypeApplicationDetectionInfo   uint16 = 68
	TypeTimeOfFirstPacket          uint16 = 69
	TypeTimeOfLastPacket           uint16 = 70
	TypeQuotaHoldingTime           uint16 = 71
	TypeDroppedDLTrafficThreshold  uint16 = 72
	TypeVolumeQuota                uint16 = 73
	TypeTimeQuota                  uint16 = 74
	TypeStartTime                  uint16 = 75
	TypeEndTime                    uint16 = 76
	TypeURRID                      uint16 = 81
	TypeLinkedURRID                uint16 = 82
	TypeCreateBAR                  uint16 = 85
	TypeRemoveBAR                  uint16 = 87
	TypeOuterHeaderCreation        uint16 = 84
	TypeBARID                      uint16 = 88
	TypeCPFunctionFeatures         uint16 = 89
	TypeUsageInformation           uint16 = 90
	TypeApplicationInstanceID      uint16 = 91
	TypeFlowInformation            uint16 = 92
	TypeUEIPAddress                uint16 = 93
	TypePacketRate                 uint16 = 94
	TypeOuterHeaderRemoval         uint16 = 95
	TypeRecoveryTimeStamp          uint16 = 96
	TypeDLFlowLevelMarking         uint16 = 97
	TypeHeaderEnrichment           uint16 = 98
	TypeMeasurementInformation     uint16 = 100
	TypeNodeReportType             uint16 = 101
	TypeUserPlanePathFailureReport uint16 = 102
	TypeRemoteGTPUPeer            uint16 = 103
	TypeURSEQN                    uint16 = 104
	TypeFARID                     uint16 = 108
	TypeQERID                     uint16 = 109
	TypeOCIFlags                  uint16 = 110
	TypePFCPAssocReleaseRequest   uint16 = 111
	TypeGracefulReleasePeriod     uint16 = 112
	TypePDNType                   uint16 = 113
	TypeFailedRuleID              uint16 = 114
	TypeTimeQuotaMechanism        uint16 = 115
	TypeUserPlaneIPResourceInfo   uint16 = 116
	TypeUserPlaneInactivityTimer  uint16 = 117
	TypeAggregatedURRs            uint16 = 118
	TypeMultiplier                uint16 = 119
	TypeAggregatedURRID           uint16 = 120
	TypeSubsequentVolumeQuota     uint16 = 121
	TypeSubsequentTimeQuota       uint16 = 122
	TypeRQI                       uint16 = 123
	TypeQFI                       uint16 = 124
	TypeQueryURRReference         uint16 = 125
	TypeAdditionalUsageReportsInfo uint16 = 126
	TypeCreateTrafficEndpoint     uint16 = 127
	TypeCreatedTrafficEndpoint    uint16 = 128
	TypeUpdateTrafficEndpoint     uint16 = 129
	TypeRemoveTrafficEndpoint     uint16 = 130
	TypeTrafficEndpointID         uint16 = 131
	TypeEthernetPacketFilter      uint16 = 132
	TypeMACAddress                uint16 = 133
	TypeCTAG                      uint16 = 134
	TypeSTAG                      uint16 = 135
	TypeEthertype                 uint16 = 136
	TypeProxying                  uint16 = 137
	TypeEthernetFilterID          uint16 = 138
	TypeEthernetFilterProperties  uint16 = 139
	TypeSuggestedBufferingPackets uint16 = 140
	TypeUserID                    uint16 = 141
	TypeEthernetPDUSessionInfo    uint16 = 142
	TypeEthernetTrafficInformation uint16 = 143
	TypeMACAddressesDetected      uint16 = 144
	TypeMACAddressesRemoved       uint16 = 145
	TypeEthernetInactivityTimer   uint16 = 146
	TypeAdditionalMonitoringTime  uint16 = 147
	TypeEventQuota                uint16 = 148
	TypeEventThreshold            uint16 = 149
	TypeSubsequentEventQuota      uint16 = 150
	TypeSubsequentEventThreshold  uint16 = 151
	TypeTraceInformation          uint16 = 152
	TypeFramedRoute               uint16 = 153
	TypeFramedRouting             uint16 = 154
	TypeFramedIPv6Route           uint16 = 155
	TypeEventTimeStamp            uint16 = 156
	TypeAveragingWindow           uint16 = 157
	TypePagingPolicyIndicator     uint16 = 158
	TypeAPNDNN                    uint16 = 159
	TypeEthernetContextInformation uint16 = 254
	TypeUsageReport               uint16 = 80
	TypeApplicationIDsPFDs        uint16 = 58
	TypePFDContext                uint16 = 59
)

// groupedTypes lists every IE type whose wire layout is a concatenation
// of child TLVs (the Grouped shape), as opposed to a scalar/composite
// payload.
var groupedTypes = map[uint16]bool{
	TypeCreatePDR:                  true,
	TypePDI:                        true,
	TypeCreateFAR:                  true,
	TypeForwardingParameters:       true,
	TypeDuplicatingParameters:      true,
	TypeCreateURR:                  true,
	TypeCreateQER:                  true,
	TypeCreatedPDR:                 true,
	TypeUpdatePDR:                  true,
	TypeUpdateFAR:                  true,
	TypeUpdateForwardingParameters: true,
	TypeUpdateBAR:                  true,
	TypeUpdateURR:                  true,
	TypeUpdateQER:                  true,
	TypeRemovePDR:                  true,
	TypeRemoveFAR:                  true,
	TypeRemoveURR:                  true,
	TypeRemoveQER:                  true,
	TypeApplicationDetectionInfo:   true,
	TypeCreateTrafficEndpoint:      true,
	TypeCreatedTrafficEndpoint:     true,
	TypeUpdateTrafficEndpoint:      true,
	TypeUserPlanePathFailureReport: true,
	TypeEthernetContextInformation: true,
	TypeEthernetTrafficInformation: true,
	TypeAggregatedURRs:             true,
	TypeUsageReport:                true,
	TypeCreateBAR:                  true,
	TypeRemoveBAR:                  true,
	TypeApplicationIDsPFDs:         true,
	TypePFDContext:                 true,
}

// IsGrouped reports whether ieType's wire layout is a concatenation of
// child TLVs.
func IsGrouped(ieType uint16) bool {
	return groupedTypes[ieType]
}

// typeNames backs TypeName for error messages and logging; entries not
// present here are rendered numerically.
var typeNames = map[uint16]string{
	TypeCreatePDR:                  "Create PDR",
	TypePDI:                        "PDI",
	TypeCreateFAR:                  "Create FAR",
	TypeForwardingParameters:       "Forwarding Parameters",
	TypeDuplicatingParameters:      "Duplicating Parameters",
	TypeCreateURR:                  "Create URR",
	TypeCreateQER:                  "Create QER",
	TypeCreatedPDR:                 "Created PDR",
	TypeUpdatePDR:                  "Update PDR",
	TypeUpdateFAR:                  "Update FAR",
	TypeUpdateForwardingParameters: "Update Forwarding Parameters",
	TypeUpdateBAR:                  "Update BAR",
	TypeUpdateURR:                  "Update URR",
	TypeUpdateQER:                  "Update QER",
	TypeRemovePDR:                  "Remove PDR",
	TypeRemoveFAR:                  "Remove FAR",
	TypeRemoveURR:                  "Remove URR",
	TypeRemoveQER:                  "Remove QER",
	TypeCause:                      "Cause",
	TypeSourceInterface:            "Source Interface",
	TypeFTEID:                      "F-TEID",
	TypeNetworkInstance:            "Network Instance",
	TypePrecedence:                 "Precedence",
	TypeReportType:                 "Report Type",
	TypeOffendingIE:                "Offending IE",
	TypeForwardingPolicy:           "Forwarding Policy",
	TypeDestinationInterface:       "Destination Interface",
	TypeApplyAction:                "Apply Action",
	TypePDRID:                      "PDR ID",
	TypeFARID:                      "FAR ID",
	TypeQERID:                      "QER ID",
	TypeFSEID:                      "F-SEID",
	TypeNodeID:                     "Node ID",
	TypeUsageReportTrigger:         "Usage Report Trigger",
	TypeVolumeMeasurement:          "Volume Measurement",
	TypeDurationMeasurement:        "Duration Measurement",
	TypeURRID:                      "URR ID",
	TypeURSEQN:                     "UR-SEQN",
	TypeOuterHeaderCreation:        "Outer Header Creation",
	TypeOuterHeaderRemoval:         "Outer Header Removal",
	TypeBARID:                      "BAR ID",
	TypeCreateBAR:                  "Create BAR",
	TypeRemoveBAR:                  "Remove BAR",
	TypeUEIPAddress:                "UE IP Address",
	TypeRecoveryTimeStamp:          "Recovery Time Stamp",
	TypeQFI:                        "QFI",
	TypeMACAddressesDetected:       "MAC Addresses Detected",
	TypeMACAddressesRemoved:        "MAC Addresses Removed",
	TypeEthernetContextInformation: "Ethernet Context Information",
	TypeEthernetTrafficInformation: "Ethernet Traffic Information",
	TypeUsageReport:                "Usage Report",
	TypeAPNDNN:                     "APN/DNN",
	TypeSequenceNumber:             "Sequence Number",
	TypeGateStatus:                 "Gate Status",
	TypeMBR:                        "MBR",
	TypeGBR:                        "GBR",
	TypeApplicationIDsPFDs:         "Application ID's PFDs",
	TypePFDContext:                 "PFD Context",
	TypePFDContents:                "PFD Contents",
	TypeApplicationID:              "Application ID",
}

// TypeName returns a human-readable name for ieType, falling back to
// its numeric form for codes this catalog doesn't name individually.
func TypeName(ieType uint16) string {
	if name, ok := typeNames[ieType&^0x8000]; ok {
		return name
	}
	return "IE " + strconv.Itoa(int(ieType&^0x8000))
}
