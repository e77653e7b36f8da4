// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"errors"
	"fmt"
)

/*
ShutdownComplete represents an SCTP Chunk of type SHUTDOWN COMPLETE.

RFC 9260 section 3.3.13:
  - Used to acknowledge receipt of SHUTDOWN ACK at the end of shutdown.
  - Has NO parameters (length MUST be 4).
  - Flags: only the T bit is defined; other bits are reserved.

Header (no value follows):

	0                   1                   2                   3
	0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|   Type = 14   |Reserved     |T|      Length = 4               |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/
type ShutdownComplete struct {
	// Flags is kept as received. Bit 0 is the T bit.
	Flags byte
}

// FlagTBit marks a SHUTDOWN COMPLETE or ABORT sent with the receiver's own
// verification tag reflected.
const FlagTBit byte = 0x01

// Shutdown complete chunk errors.
var (
	ErrChunkTypeNotShutdownComplete = fmt.Errorf("ChunkType is not of type %s", ChunkTypeShutdownComplete.String())
	ErrShutdownCompleteHasValue     = errors.New("SHUTDOWN COMPLETE must not contain a value")
)

func (*ShutdownComplete) isChunk() {}

func (c *ShutdownComplete) Header() ChunkHeader {
	return ChunkHeader{Type: ChunkTypeShutdownComplete, Flags: c.Flags}
}

func (c *ShutdownComplete) ValueLength() int {
	return 0
}

// TBit reports whether the T bit is set.
func (c *ShutdownComplete) TBit() bool {
	return c.Flags&FlagTBit != 0
}

func (c *ShutdownComplete) Unmarshal(raw []byte) error {
	header, _, err := unmarshalChunk(raw, ChunkTypeShutdownComplete, ErrChunkTypeNotShutdownComplete)
	if err != nil {
		return err
	}

	// RFC 9260 section 3.3.13: no parameters => length MUST be 4.
	if header.ValueLength != 0 {
		return fmt.Errorf("%w: value length %d", ErrShutdownCompleteHasValue, header.ValueLength)
	}

	c.Flags = header.Flags

	return nil
}

func (c *ShutdownComplete) MarshalTo(buf []byte) ([]byte, error) {
	return c.Header().MarshalTo(buf)
}

func (c *ShutdownComplete) Marshal() ([]byte, error) {
	return Marshal(c)
}

func (c *ShutdownComplete) Check() error {
	return nil
}

// String makes ShutdownComplete printable.
func (c *ShutdownComplete) String() string {
	if c.TBit() {
		return ChunkTypeShutdownComplete.String() + " T"
	}

	return ChunkTypeShutdownComplete.String()
}
