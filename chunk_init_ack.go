// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire // nolint:dupl

import (
	"errors"
	"fmt"
)

/*
InitAck represents an SCTP Chunk of type INIT ACK (RFC 9260 section 3.3.3).

See InitCommon for the fixed headers.

Variable Parameters                     Status     Type Value
-------------------------------------------------------------
State Cookie                            Mandatory  7
IPv4 Address                            Optional   5
IPv6 Address                            Optional   6
Unrecognized Parameter                  Optional   8
Reserved for ECN Capable                Optional   32768 (0x8000)
Host Name Address                       Optional   11
Supported Address Types                 Optional   12

nolint:godot
*/
type InitAck struct {
	InitCommon
}

// Init ack chunk errors.
var (
	ErrChunkTypeNotInitAck         = errors.New("ChunkType is not of type INIT ACK")
	ErrInitAckUnmarshalFailed      = errors.New("failed to unmarshal INIT ACK body")
	ErrInitCommonDataMarshalFailed = errors.New("failed marshaling INIT common data")
	ErrInitAckCheckFailed          = errors.New("INIT ACK chunk check failed")
	ErrInitAckNoStateCookie        = errors.New("INIT ACK has no State Cookie")
)

func (*InitAck) isChunk() {}

func (i *InitAck) Header() ChunkHeader {
	return ChunkHeader{Type: ChunkTypeInitAck, ValueLength: i.ValueLength()}
}

func (i *InitAck) ValueLength() int {
	return i.valueLength()
}

func (i *InitAck) Unmarshal(raw []byte) error {
	_, value, err := unmarshalChunk(raw, ChunkTypeInitAck, ErrChunkTypeNotInitAck)
	if err != nil {
		return err
	}

	if err := i.InitCommon.unmarshal(value); err != nil {
		return fmt.Errorf("%w: %w", ErrInitAckUnmarshalFailed, err)
	}

	return nil
}

// MarshalTo appends the chunk to buf. RFC 9260: sender MUST set INIT ACK flags to 0.
func (i *InitAck) MarshalTo(buf []byte) ([]byte, error) {
	start := len(buf)

	buf, err := i.Header().MarshalTo(buf)
	if err != nil {
		return buf, err
	}
	if buf, err = i.InitCommon.marshalTo(buf); err != nil {
		return buf[:start], fmt.Errorf("%w: %w", ErrInitCommonDataMarshalFailed, err)
	}

	return buf, nil
}

func (i *InitAck) Marshal() ([]byte, error) {
	return Marshal(i)
}

func (i *InitAck) Check() error {
	if err := i.InitCommon.check(); err != nil {
		return fmt.Errorf("%w: %w", ErrInitAckCheckFailed, err)
	}

	if _, ok := i.StateCookie(); !ok {
		return fmt.Errorf("%w: %w", ErrInitAckCheckFailed, ErrInitAckNoStateCookie)
	}

	return nil
}

// StateCookie returns the State Cookie parameter.
func (i *InitAck) StateCookie() (*StateCookie, bool) {
	for _, p := range i.Params {
		if c, ok := p.(*StateCookie); ok {
			return c, true
		}
	}

	return nil, false
}

func (i *InitAck) String() string {
	return fmt.Sprintf("%s\n%s", ChunkTypeInitAck, &i.InitCommon)
}
