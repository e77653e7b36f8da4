// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"errors"
	"fmt"
)

/*
HeartbeatAck represents an SCTP Chunk of type HEARTBEAT ACK (RFC 9260 section 3.3.6)

An endpoint should send this chunk to its peer endpoint as a response
to a HEARTBEAT chunk. A HEARTBEAT ACK is always sent to the source IP
address of the IP datagram containing the HEARTBEAT chunk to which this
ack is responding.

The parameter field contains a variable-length opaque data structure.

Variable Parameters                 Status     Type Value
-------------------------------------------------------------
Heartbeat Info                      Mandatory  1

nolint:godot
*/
type HeartbeatAck struct {
	Params []Param
}

// Heartbeat ack chunk errors.
var (
	ErrChunkTypeNotHeartbeatAck = errors.New("chunk type is not of type HEARTBEAT ACK")
	ErrHeartbeatAckParams       = errors.New("heartbeat Ack must have one param")
)

func (*HeartbeatAck) isChunk() {}

func (h *HeartbeatAck) Header() ChunkHeader {
	return ChunkHeader{Type: ChunkTypeHeartbeatAck, ValueLength: h.ValueLength()}
}

func (h *HeartbeatAck) ValueLength() int {
	return paramsValueLength(h.Params)
}

// Unmarshal parses a HEARTBEAT ACK, which must echo one Heartbeat Info.
func (h *HeartbeatAck) Unmarshal(raw []byte) error {
	_, value, err := unmarshalChunk(raw, ChunkTypeHeartbeatAck, ErrChunkTypeNotHeartbeatAck)
	if err != nil {
		return err
	}

	if len(value) == 0 {
		return fmt.Errorf("%w: empty body", ErrHeartbeatAckParams)
	}

	info, err := unmarshalHeartbeatInfo(value)
	if err != nil {
		return err
	}
	h.Params = []Param{info}

	return nil
}

func (h *HeartbeatAck) MarshalTo(buf []byte) ([]byte, error) {
	if err := checkHeartbeatParams(h.Params, false); err != nil {
		return buf, fmt.Errorf("%w: %w", ErrHeartbeatAckParams, err)
	}

	return marshalHeartbeat(buf, h.Header(), h.Params)
}

func (h *HeartbeatAck) Marshal() ([]byte, error) {
	return Marshal(h)
}

func (h *HeartbeatAck) Check() error {
	return checkHeartbeatParams(h.Params, false)
}

// String makes HeartbeatAck printable.
func (h *HeartbeatAck) String() string {
	return heartbeatString(ChunkTypeHeartbeatAck, h.Params)
}
