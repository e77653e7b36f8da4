// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"errors"
	"fmt"
)

/*
Heartbeat represents an SCTP Chunk of type HEARTBEAT (RFC 9260 section 3.3.5)

An endpoint sends this chunk to probe reachability of a destination address.
The chunk MUST contain exactly one variable-length parameter:

Variable Parameters                 Status     Type Value
-------------------------------------------------------------
Heartbeat Info                      Mandatory  1

nolint:godot
*/
type Heartbeat struct {
	Params []Param
}

// Heartbeat chunk errors.
var (
	ErrChunkTypeNotHeartbeat      = errors.New("ChunkType is not of type HEARTBEAT")
	ErrHeartbeatNotLongEnoughInfo = errors.New("heartbeat is not long enough to contain Heartbeat Info")
	ErrHeartbeatParam             = errors.New("heartbeat should only have HEARTBEAT param")
	ErrHeartbeatExtraNonZero      = errors.New("heartbeat has non-zero trailing bytes after last parameter")
	ErrHeartbeatMarshalNoInfo     = errors.New("heartbeat requires exactly one Heartbeat Info parameter")
)

func (*Heartbeat) isChunk() {}

func (h *Heartbeat) Header() ChunkHeader {
	return ChunkHeader{Type: ChunkTypeHeartbeat, ValueLength: h.ValueLength()}
}

func (h *Heartbeat) ValueLength() int {
	return paramsValueLength(h.Params)
}

// Unmarshal parses a HEARTBEAT. A header-only chunk is accepted and leaves
// Params empty.
func (h *Heartbeat) Unmarshal(raw []byte) error {
	_, value, err := unmarshalChunk(raw, ChunkTypeHeartbeat, ErrChunkTypeNotHeartbeat)
	if err != nil {
		return err
	}

	// if the body is completely empty, accept it but don't populate params.
	if len(value) == 0 {
		h.Params = nil

		return nil
	}

	info, err := unmarshalHeartbeatInfo(value)
	if err != nil {
		return err
	}
	h.Params = []Param{info}

	return nil
}

func (h *Heartbeat) MarshalTo(buf []byte) ([]byte, error) {
	if err := checkHeartbeatParams(h.Params, true); err != nil {
		return buf, err
	}

	return marshalHeartbeat(buf, h.Header(), h.Params)
}

func (h *Heartbeat) Marshal() ([]byte, error) {
	return Marshal(h)
}

// Check requires exactly one Heartbeat Info parameter.
func (h *Heartbeat) Check() error {
	return checkHeartbeatParams(h.Params, false)
}

// String makes Heartbeat printable.
func (h *Heartbeat) String() string {
	return heartbeatString(ChunkTypeHeartbeat, h.Params)
}

// unmarshalHeartbeatInfo decodes the single Heartbeat Info TLV of a
// HEARTBEAT or HEARTBEAT ACK value.
func unmarshalHeartbeatInfo(value []byte) (*HeartbeatInfo, error) {
	// need at least a parameter header present (TLV: 4 bytes minimum).
	if len(value) < paramHeaderLength {
		return nil, fmt.Errorf("%w: %d", ErrHeartbeatNotLongEnoughInfo, len(value))
	}

	header, body, err := unmarshalParamHeader(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHeartbeatNotLongEnoughInfo, err)
	}
	if header.typ != ParamTypeHeartbeatInfo {
		return nil, fmt.Errorf("%w: instead have %s", ErrHeartbeatParam, header.typ)
	}

	// any trailing bytes beyond the single param must be all zeros.
	if rem := value[header.length():]; !allZero(rem) {
		return nil, ErrHeartbeatExtraNonZero
	}

	return &HeartbeatInfo{Info: body}, nil
}

func checkHeartbeatParams(params []Param, allowEmpty bool) error {
	if len(params) == 0 && allowEmpty {
		return nil
	}
	if len(params) != 1 {
		return fmt.Errorf("%w: have %d", ErrHeartbeatMarshalNoInfo, len(params))
	}
	if _, ok := params[0].(*HeartbeatInfo); !ok {
		return fmt.Errorf("%w: instead have %s", ErrHeartbeatParam, params[0].Type())
	}

	return nil
}

func marshalHeartbeat(buf []byte, header ChunkHeader, params []Param) ([]byte, error) {
	start := len(buf)

	buf, err := header.MarshalTo(buf)
	if err != nil {
		return buf, err
	}
	if buf, err = marshalParams(buf, params); err != nil {
		return buf[:start], err
	}

	return buf, nil
}

func heartbeatString(typ ChunkType, params []Param) string {
	res := typ.String()
	for _, p := range params {
		res += fmt.Sprintf("\n - %s", p)
	}

	return res
}
