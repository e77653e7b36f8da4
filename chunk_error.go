// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire // nolint:dupl

import (
	"errors"
	"fmt"
)

/*
Error represents an SCTP Chunk of type ERROR (Type = 9), RFC 9260 section 3.3.10.

An endpoint sends this chunk to notify its peer of one or more error
conditions. Contains one or more Error Causes (TLVs). Flags are set to
0 on transmit and ignored on receipt.

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|   Type = 9    | Chunk  Flags  |           Length              |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	\                                                               \
	/                    one or more Error Causes                   /
	\                                                               \
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/
type Error struct {
	ErrorCauses []ErrorCause
}

// Error chunk errors.
var (
	ErrChunkTypeNotError     = errors.New("ChunkType is not of type ERROR")
	ErrBuildErrorChunkFailed = errors.New("failed build Error Chunk")
	ErrErrorNoCauses         = errors.New("ERROR chunk contains no error causes")
)

func (*Error) isChunk() {}

func (e *Error) Header() ChunkHeader {
	return ChunkHeader{Type: ChunkTypeError, ValueLength: e.ValueLength()}
}

func (e *Error) ValueLength() int {
	return errorCausesValueLength(e.ErrorCauses)
}

func (e *Error) Unmarshal(raw []byte) error {
	_, value, err := unmarshalChunk(raw, ChunkTypeError, ErrChunkTypeNotError)
	if err != nil {
		return err
	}

	// flags are reserved: sender sets to 0, receiver ignores.
	causes, err := unmarshalErrorCauses(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildErrorChunkFailed, err)
	}
	if len(causes) == 0 {
		return ErrErrorNoCauses
	}

	e.ErrorCauses = causes

	return nil
}

func (e *Error) MarshalTo(buf []byte) ([]byte, error) {
	start := len(buf)

	buf, err := e.Header().MarshalTo(buf)
	if err != nil {
		return buf, err
	}

	if buf, err = marshalErrorCauses(buf, e.ErrorCauses); err != nil {
		return buf[:start], fmt.Errorf("%w: %w", ErrBuildErrorChunkFailed, err)
	}

	return buf, nil
}

func (e *Error) Marshal() ([]byte, error) {
	return Marshal(e)
}

// Check fails for an ERROR chunk without causes.
func (e *Error) Check() error {
	if len(e.ErrorCauses) == 0 {
		return ErrErrorNoCauses
	}

	return nil
}

// String makes Error printable.
func (e *Error) String() string {
	res := ChunkTypeError.String()

	for _, cause := range e.ErrorCauses {
		res += fmt.Sprintf("\n - %s", cause)
	}

	return res
}
