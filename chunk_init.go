// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire // nolint:dupl

import (
	"errors"
	"fmt"
)

/*
Init represents an SCTP Chunk of type INIT (RFC 9260 section 3.3.2)

See InitCommon for the fixed headers

	Variable Parameters               	Status     	Type Value
	-------------------------------------------------------------
	IPv4 IP (Note 1)               		Optional    5
	IPv6 IP (Note 1)               		Optional    6
	Cookie Preservative                 Optional    9
	Reserved for ECN Capable (Note 2)   Optional    32768 (0x8000)
	Host Name IP (Note 3)          		Optional    11
	Supported IP Types (Note 4)    		Optional    12

nolint:godot
*/
type Init struct {
	InitCommon
}

// Init chunk errors.
var (
	ErrChunkTypeNotTypeInit         = errors.New("ChunkType is not of type INIT")
	ErrChunkTypeInitUnmarshalFailed = errors.New("failed to unmarshal INIT body")
	ErrChunkTypeInitMarshalFailed   = errors.New("failed marshaling INIT common data")
	ErrInitCheckFailed              = errors.New("INIT chunk check failed")
)

func (*Init) isChunk() {}

func (i *Init) Header() ChunkHeader {
	return ChunkHeader{Type: ChunkTypeInit, ValueLength: i.ValueLength()}
}

func (i *Init) ValueLength() int {
	return i.valueLength()
}

func (i *Init) Unmarshal(raw []byte) error {
	_, value, err := unmarshalChunk(raw, ChunkTypeInit, ErrChunkTypeNotTypeInit)
	if err != nil {
		return err
	}

	if err := i.InitCommon.unmarshal(value); err != nil {
		return fmt.Errorf("%w: %w", ErrChunkTypeInitUnmarshalFailed, err)
	}

	return nil
}

// MarshalTo appends the chunk to buf. RFC 9260: sender MUST set INIT flags to 0.
func (i *Init) MarshalTo(buf []byte) ([]byte, error) {
	start := len(buf)

	buf, err := i.Header().MarshalTo(buf)
	if err != nil {
		return buf, err
	}
	if buf, err = i.InitCommon.marshalTo(buf); err != nil {
		return buf[:start], fmt.Errorf("%w: %w", ErrChunkTypeInitMarshalFailed, err)
	}

	return buf, nil
}

func (i *Init) Marshal() ([]byte, error) {
	return Marshal(i)
}

func (i *Init) Check() error {
	if err := i.InitCommon.check(); err != nil {
		return fmt.Errorf("%w: %w", ErrInitCheckFailed, err)
	}

	return nil
}

func (i *Init) String() string {
	return fmt.Sprintf("%s\n%s", ChunkTypeInit, &i.InitCommon)
}
