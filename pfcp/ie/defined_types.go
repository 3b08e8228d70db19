package ie

// definedTypes is the full set of 3GPP TS 29.244 IE type codes this
// catalog names, used by the grouped-IE engine's unknown-child rule:
// a child type code outside this set is "unrecognized" regardless of
// whether this module gives it a concrete Go representation.
var definedTypes = map[uint16]bool{
	TypeAPNDNN: true,
	TypeApplicationIDsPFDs: true,
	TypePFDContext: true,
	TypeAdditionalMonitoringTime: true,
	TypeAdditionalUsageReportsInfo: true,
	TypeAggregatedURRID: true,
	TypeAggregatedURRs: true,
	TypeApplicationDetectionInfo: true,
	TypeApplicationID: true,
	TypeApplicationInstanceID: true,
	TypeApplyAction: true,
	TypeAveragingWindow: true,
	TypeBARID: true,
	TypeCPFunctionFeatures: true,
	TypeCTAG: true,
	TypeCause: true,
	TypeCreateFAR: true,
	TypeCreateBAR: true,
	TypeCreatePDR: true,
	TypeCreateQER: true,
	TypeCreateTrafficEndpoint: true,
	TypeCreateURR: true,
	TypeCreatedPDR: true,
	TypeCreatedTrafficEndpoint: true,
	TypeDLBufferingDuration: true,
	TypeDLBufferingSuggestedCount: true,
	TypeDLFlowLevelMarking: true,
	TypeDestinationInterface: true,
	TypeDownlinkDataNotifDelay: true,
	TypeDownlinkDataServiceInfo: true,
	TypeDroppedDLTrafficThreshold: true,
	TypeDuplicatingParameters: true,
	TypeDurationMeasurement: true,
	TypeEndTime: true,
	TypeEthernetContextInformation: true,
	TypeEthernetFilterID: true,
	TypeEthernetFilterProperties: true,
	TypeEthernetInactivityTimer: true,
	TypeEthernetPDUSessionInfo: true,
	TypeEthernetPacketFilter: true,
	TypeEthernetTrafficInformation: true,
	TypeEthertype: true,
	TypeEventQuota: true,
	TypeEventThreshold: true,
	TypeEventTimeStamp: true,
	TypeFARID: true,
	TypeFQCSID: true,
	TypeFSEID: true,
	TypeFTEID: true,
	TypeFailedRuleID: true,
	TypeFlowInformation: true,
	TypeForwardingParameters: true,
	TypeForwardingPolicy: true,
	TypeFramedIPv6Route: true,
	TypeFramedRoute: true,
	TypeFramedRouting: true,
	TypeGBR: true,
	TypeGateStatus: true,
	TypeGracefulReleasePeriod: true,
	TypeHeaderEnrichment: true,
	TypeInactivityDetectionTime: true,
	TypeLinkedURRID: true,
	TypeMACAddress: true,
	TypeMACAddressesDetected: true,
	TypeMACAddressesRemoved: true,
	TypeMBR: true,
	TypeMeasurementInformation: true,
	TypeMeasurementMethod: true,
	TypeMeasurementPeriod: true,
	TypeMetric: true,
	TypeMonitoringTime: true,
	TypeMultiplier: true,
	TypeNetworkInstance: true,
	TypeNodeID: true,
	TypeNodeReportType: true,
	TypeOCIFlags: true,
	TypeOffendingIE: true,
	TypeOuterHeaderCreation: true,
	TypeOuterHeaderRemoval: true,
	TypePDI: true,
	TypePDNType: true,
	TypePDRID: true,
	TypePFCPAssocReleaseRequest: true,
	TypePFCPSMReqFlags: true,
	TypePFCPSRRspFlags: true,
	TypePFDContents: true,
	TypePacketRate: true,
	TypePagingPolicyIndicator: true,
	TypePrecedence: true,
	TypeProxying: true,
	TypeQERCorrelationID: true,
	TypeQERID: true,
	TypeQFI: true,
	TypeQueryURRReference: true,
	TypeQuotaHoldingTime: true,
	TypeRQI: true,
	TypeRecoveryTimeStamp: true,
	TypeRedirectInformation: true,
	TypeRemoteGTPUPeer: true,
	TypeRemoveBAR: true,
	TypeRemoveFAR: true,
	TypeRemovePDR: true,
	TypeRemoveQER: true,
	TypeRemoveTrafficEndpoint: true,
	TypeRemoveURR: true,
	TypeReportType: true,
	TypeReportingTriggers: true,
	TypeSDFFilter: true,
	TypeSTAG: true,
	TypeSequenceNumber: true,
	TypeSourceInterface: true,
	TypeStartTime: true,
	TypeSubsequentEventQuota: true,
	TypeSubsequentEventThreshold: true,
	TypeSubsequentTimeQuota: true,
	TypeSubsequentTimeThreshold: true,
	TypeSubsequentVolumeQuota: true,
	TypeSubsequentVolumeThreshold: true,
	TypeSuggestedBufferingPackets: true,
	TypeTimeOfFirstPacket: true,
	TypeTimeOfLastPacket: true,
	TypeTimeQuota: true,
	TypeTimeQuotaMechanism: true,
	TypeTimeThreshold: true,
	TypeTimer: true,
	TypeTraceInformation: true,
	TypeTrafficEndpointID: true,
	TypeTransportLevelMarking: true,
	TypeUEIPAddress: true,
	TypeUPFunctionFeatures: true,
	TypeURRID: true,
	TypeURSEQN: true,
	TypeUpdateBAR: true,
	TypeUpdateFAR: true,
	TypeUpdateForwardingParameters: true,
	TypeUpdatePDR: true,
	TypeUpdateQER: true,
	TypeUpdateTrafficEndpoint: true,
	TypeUpdateURR: true,
	TypeUsageInformation: true,
	TypeUsageReport: true,
	TypeUsageReportTrigger: true,
	TypeUserID: true,
	TypeUserPlaneIPResourceInfo: true,
	TypeUserPlaneInactivityTimer: true,
	TypeUserPlanePathFailureReport: true,
	TypeVolumeMeasurement: true,
	TypeVolumeQuota: true,
	TypeVolumeThreshold: true,
}
