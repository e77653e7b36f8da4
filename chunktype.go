// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import "fmt"

// ChunkType is an enum for SCTP Chunk Type field
// This field identifies the type of information contained in the
// Chunk Value field.
type ChunkType uint8

// List of known ChunkType enums.
const (
	ChunkTypePayloadData      ChunkType = 0
	ChunkTypeInit             ChunkType = 1
	ChunkTypeInitAck          ChunkType = 2
	ChunkTypeSack             ChunkType = 3
	ChunkTypeHeartbeat        ChunkType = 4
	ChunkTypeHeartbeatAck     ChunkType = 5
	ChunkTypeAbort            ChunkType = 6
	ChunkTypeShutdown         ChunkType = 7
	ChunkTypeShutdownAck      ChunkType = 8
	ChunkTypeError            ChunkType = 9
	ChunkTypeCookieEcho       ChunkType = 10
	ChunkTypeCookieAck        ChunkType = 11
	ChunkTypeECNE             ChunkType = 12
	ChunkTypeCWR              ChunkType = 13
	ChunkTypeShutdownComplete ChunkType = 14
	ChunkTypeReconfig         ChunkType = 130
	ChunkTypeForwardTSN       ChunkType = 192
)

func (c ChunkType) String() string { //nolint:cyclop
	switch c {
	case ChunkTypePayloadData:
		return "DATA"
	case ChunkTypeInit:
		return "INIT"
	case ChunkTypeInitAck:
		return "INIT-ACK"
	case ChunkTypeSack:
		return "SACK"
	case ChunkTypeHeartbeat:
		return "HEARTBEAT"
	case ChunkTypeHeartbeatAck:
		return "HEARTBEAT-ACK"
	case ChunkTypeAbort:
		return "ABORT"
	case ChunkTypeShutdown:
		return "SHUTDOWN"
	case ChunkTypeShutdownAck:
		return "SHUTDOWN-ACK"
	case ChunkTypeError:
		return "ERROR"
	case ChunkTypeCookieEcho:
		return "COOKIE-ECHO"
	case ChunkTypeCookieAck:
		return "COOKIE-ACK"
	case ChunkTypeECNE:
		return "ECNE"
	case ChunkTypeCWR:
		return "CWR"
	case ChunkTypeShutdownComplete:
		return "SHUTDOWN-COMPLETE"
	case ChunkTypeReconfig:
		return "RECONFIG"
	case ChunkTypeForwardTSN:
		return "FORWARD-TSN"
	default:
		return fmt.Sprintf("Unknown ChunkType: %d", c)
	}
}

// UnrecognizedChunkAction is the action encoded in the two highest-order
// bits of a Chunk Type, telling a receiver what to do with a type it does not
// recognize.
//
//	00 - Stop processing this SCTP packet, discard the unrecognized chunk and
//	     all further chunks.
//	01 - Stop processing this SCTP packet, discard the unrecognized chunk and
//	     all further chunks, and report the unrecognized chunk in an ERROR chunk
//	     using the 'Unrecognized Chunk Type' error cause.
//	10 - Skip this chunk and continue processing.
//	11 - Skip this chunk and continue processing, but report it in an ERROR
//	     chunk using the 'Unrecognized Chunk Type' error cause.
//
// https://www.rfc-editor.org/rfc/rfc9260.html#section-3.2
type UnrecognizedChunkAction uint8

// UnrecognizedChunkAction enums.
const (
	UnrecognizedChunkActionStop          UnrecognizedChunkAction = 0b00000000
	UnrecognizedChunkActionStopAndReport UnrecognizedChunkAction = 0b01000000
	UnrecognizedChunkActionSkip          UnrecognizedChunkAction = 0b10000000
	UnrecognizedChunkActionSkipAndReport UnrecognizedChunkAction = 0b11000000

	unrecognizedChunkActionMask = 0b11000000
)

// UnrecognizedAction returns the action a receiver takes if it does not
// recognize c.
func (c ChunkType) UnrecognizedAction() UnrecognizedChunkAction {
	return UnrecognizedChunkAction(uint8(c) & unrecognizedChunkActionMask)
}

// Skip reports whether processing may continue past the chunk.
func (a UnrecognizedChunkAction) Skip() bool {
	return a&UnrecognizedChunkActionSkip != 0
}

// Report reports whether the chunk should be reported back to the peer.
func (a UnrecognizedChunkAction) Report() bool {
	return a == UnrecognizedChunkActionStopAndReport || a == UnrecognizedChunkActionSkipAndReport
}

func (a UnrecognizedChunkAction) String() string {
	switch a {
	case UnrecognizedChunkActionStop:
		return "stop"
	case UnrecognizedChunkActionStopAndReport:
		return "stop and report"
	case UnrecognizedChunkActionSkip:
		return "skip"
	case UnrecognizedChunkActionSkipAndReport:
		return "skip and report"
	default:
		return fmt.Sprintf("Unknown UnrecognizedChunkAction: %d", uint8(a))
	}
}
