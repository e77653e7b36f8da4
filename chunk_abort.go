// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire // nolint:dupl

import (
	"errors"
	"fmt"
)

/*
Abort represents an SCTP Chunk of type ABORT (RFC 9260 section 3.3.7).

The ABORT chunk closes the association. It may contain zero or more
Error Cause TLVs. DATA MUST NOT be bundled with ABORT. Control chunks
(except INIT, INIT ACK, and SHUTDOWN COMPLETE) MAY be bundled but MUST
precede the ABORT in the packet.

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|   Type = 6    |Reserved     |T|           Length              |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	\                                                               \
	/                   zero or more Error Causes                   /
	\                                                               \
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/
type Abort struct {
	// Flags is kept as received. Bit 0 is the T bit.
	Flags       byte
	ErrorCauses []ErrorCause
}

// Abort chunk errors.
var (
	ErrChunkTypeNotAbort     = errors.New("ChunkType is not of type ABORT")
	ErrBuildAbortChunkFailed = errors.New("failed build Abort Chunk")
)

func (*Abort) isChunk() {}

func (a *Abort) Header() ChunkHeader {
	return ChunkHeader{Type: ChunkTypeAbort, Flags: a.Flags, ValueLength: a.ValueLength()}
}

func (a *Abort) ValueLength() int {
	return errorCausesValueLength(a.ErrorCauses)
}

// TBit reports whether the T bit is set.
func (a *Abort) TBit() bool {
	return a.Flags&FlagTBit != 0
}

func (a *Abort) Unmarshal(raw []byte) error {
	header, value, err := unmarshalChunk(raw, ChunkTypeAbort, ErrChunkTypeNotAbort)
	if err != nil {
		return err
	}

	causes, err := unmarshalErrorCauses(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildAbortChunkFailed, err)
	}

	a.Flags = header.Flags
	a.ErrorCauses = causes

	return nil
}

func (a *Abort) MarshalTo(buf []byte) ([]byte, error) {
	start := len(buf)

	buf, err := a.Header().MarshalTo(buf)
	if err != nil {
		return buf, err
	}

	if buf, err = marshalErrorCauses(buf, a.ErrorCauses); err != nil {
		return buf[:start], fmt.Errorf("%w: %w", ErrBuildAbortChunkFailed, err)
	}

	return buf, nil
}

func (a *Abort) Marshal() ([]byte, error) {
	return Marshal(a)
}

func (a *Abort) Check() error {
	return nil
}

// String makes Abort printable.
func (a *Abort) String() string {
	res := ChunkTypeAbort.String()
	if a.TBit() {
		res += " T"
	}

	for _, cause := range a.ErrorCauses {
		res += fmt.Sprintf("\n - %s", cause)
	}

	return res
}
