// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import "fmt"

// ParamType represents an SCTP INIT/INITACK/HEARTBEAT/RECONFIG parameter type.
type ParamType uint16

// ParamType enums.
const (
	ParamTypeHeartbeatInfo             ParamType = 1      // Heartbeat Info [RFC9260]
	ParamTypeIPv4Address               ParamType = 5      // IPv4 IP [RFC9260]
	ParamTypeIPv6Address               ParamType = 6      // IPv6 IP [RFC9260]
	ParamTypeStateCookie               ParamType = 7      // State Cookie [RFC9260]
	ParamTypeUnrecognizedParameter     ParamType = 8      // Unrecognized Parameters [RFC9260]
	ParamTypeCookiePreservative        ParamType = 9      // Cookie Preservative [RFC9260]
	ParamTypeHostNameAddress           ParamType = 11     // Host Name IP (deprecated) [RFC9260]
	ParamTypeSupportedAddressTypes     ParamType = 12     // Supported IP Types [RFC9260]
	ParamTypeOutgoingResetRequest      ParamType = 13     // Outgoing SSN Reset Request Parameter [RFC6525]
	ParamTypeIncomingResetRequest      ParamType = 14     // Incoming SSN Reset Request Parameter [RFC6525]
	ParamTypeSSNTSNResetRequest        ParamType = 15     // SSN/TSN Reset Request Parameter [RFC6525]
	ParamTypeReconfigResponse          ParamType = 16     // Re-configuration Response Parameter [RFC6525]
	ParamTypeAddOutgoingStreamsRequest ParamType = 17     // Add Outgoing Streams Request Parameter [RFC6525]
	ParamTypeAddIncomingStreamsRequest ParamType = 18     // Add Incoming Streams Request Parameter [RFC6525]
	ParamTypeECNCapable                ParamType = 0x8000 // ECN Capable [RFC9260 appendix A]
	ParamTypeZeroChecksumAcceptable    ParamType = 0x8001 // Zero Checksum Acceptable [RFC9653]
	ParamTypeRandom                    ParamType = 0x8002 // Random [RFC4805]
	ParamTypeChunkList                 ParamType = 0x8003 // Chunk List [RFC4895]
	ParamTypeRequestedHMACAlgorithm    ParamType = 0x8004 // Requested HMAC Algorithm Parameter [RFC4895]
	ParamTypePadding                   ParamType = 0x8005 // Padding [RFC4820]
	ParamTypeSupportedExtensions       ParamType = 0x8008 // Supported Extensions [RFC5061]
	ParamTypeForwardTSNSupported       ParamType = 0xC000 // Forward TSN supported [RFC3758]
	ParamTypeAddIPAddress              ParamType = 0xC001 // Add IP Address [RFC5061]
	ParamTypeDeleteIPAddress           ParamType = 0xC002 // Delete IP Address [RFC5061]
	ParamTypeErrorCauseIndication      ParamType = 0xC003 // Error Cause Indication [RFC5061]
	ParamTypeSetPrimaryAddress         ParamType = 0xC004 // Set Primary Address [RFC5061]
	ParamTypeSuccessIndication         ParamType = 0xC005 // Success Indication [RFC5061]
	ParamTypeAdaptationLayerIndication ParamType = 0xC006 // Adaptation Layer Indication [RFC5061]
)

// UnrecognizedAction returns what a receiver does with a parameter of type p
// it does not recognize. Parameters encode it in the two highest-order bits
// of the type, the same way chunks do.
func (p ParamType) UnrecognizedAction() UnrecognizedChunkAction {
	return UnrecognizedChunkAction(uint8(p>>8) & unrecognizedChunkActionMask)
}

// isReconfigParam reports whether p may appear in a RECONFIG chunk.
func (p ParamType) isReconfigParam() bool {
	return p >= ParamTypeOutgoingResetRequest && p <= ParamTypeAddIncomingStreamsRequest
}

func (p ParamType) String() string { //nolint:cyclop
	switch p {
	case ParamTypeHeartbeatInfo:
		return "Heartbeat Info"
	case ParamTypeIPv4Address:
		return "IPv4 IP"
	case ParamTypeIPv6Address:
		return "IPv6 IP"
	case ParamTypeStateCookie:
		return "State Cookie"
	case ParamTypeUnrecognizedParameter:
		return "Unrecognized Parameters"
	case ParamTypeCookiePreservative:
		return "Cookie Preservative"
	case ParamTypeHostNameAddress:
		return "Host Name IP"
	case ParamTypeSupportedAddressTypes:
		return "Supported IP Types"
	case ParamTypeOutgoingResetRequest:
		return "Outgoing SSN Reset Request Parameter"
	case ParamTypeIncomingResetRequest:
		return "Incoming SSN Reset Request Parameter"
	case ParamTypeSSNTSNResetRequest:
		return "SSN/TSN Reset Request Parameter"
	case ParamTypeReconfigResponse:
		return "Re-configuration Response Parameter"
	case ParamTypeAddOutgoingStreamsRequest:
		return "Add Outgoing Streams Request Parameter"
	case ParamTypeAddIncomingStreamsRequest:
		return "Add Incoming Streams Request Parameter"
	case ParamTypeECNCapable:
		return "ECN Capable"
	case ParamTypeZeroChecksumAcceptable:
		return "Zero Checksum Acceptable"
	case ParamTypeRandom:
		return "Random"
	case ParamTypeChunkList:
		return "Chunk List"
	case ParamTypeRequestedHMACAlgorithm:
		return "Requested HMAC Algorithm Parameter"
	case ParamTypePadding:
		return "Padding"
	case ParamTypeSupportedExtensions:
		return "Supported Extensions"
	case ParamTypeForwardTSNSupported:
		return "Forward TSN supported"
	case ParamTypeAddIPAddress:
		return "Add IP Address"
	case ParamTypeDeleteIPAddress:
		return "Delete IP Address"
	case ParamTypeErrorCauseIndication:
		return "Error Cause Indication"
	case ParamTypeSetPrimaryAddress:
		return "Set Primary Address"
	case ParamTypeSuccessIndication:
		return "Success Indication"
	case ParamTypeAdaptationLayerIndication:
		return "Adaptation Layer Indication"
	default:
		return fmt.Sprintf("Unknown ParamType: %d", uint16(p))
	}
}
