// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"errors"
	"fmt"
)

/*
ShutdownAck represents an SCTP Chunk of type SHUTDOWN ACK (RFC 9260 section 3.3.9).

	0                   1                   2                   3
	0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|   Type = 8    |Chunk  Flags   |      Length = 4               |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/
type ShutdownAck struct{}

// Shutdown ack chunk errors.
var (
	ErrChunkTypeNotShutdownAck = errors.New("ChunkType is not of type SHUTDOWN-ACK")
	ErrShutdownAckHasValue     = errors.New("SHUTDOWN ACK must not contain a value")
)

func (*ShutdownAck) isChunk() {}

func (c *ShutdownAck) Header() ChunkHeader {
	return ChunkHeader{Type: ChunkTypeShutdownAck}
}

func (c *ShutdownAck) ValueLength() int {
	return 0
}

func (c *ShutdownAck) Unmarshal(raw []byte) error {
	header, _, err := unmarshalChunk(raw, ChunkTypeShutdownAck, ErrChunkTypeNotShutdownAck)
	if err != nil {
		return err
	}

	if header.ValueLength != 0 {
		return fmt.Errorf("%w: value length %d", ErrShutdownAckHasValue, header.ValueLength)
	}

	return nil
}

func (c *ShutdownAck) MarshalTo(buf []byte) ([]byte, error) {
	return c.Header().MarshalTo(buf)
}

func (c *ShutdownAck) Marshal() ([]byte, error) {
	return Marshal(c)
}

func (c *ShutdownAck) Check() error {
	return nil
}

// String makes ShutdownAck printable.
func (c *ShutdownAck) String() string {
	return ChunkTypeShutdownAck.String()
}
