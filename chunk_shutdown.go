// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

/*
Shutdown represents an SCTP Chunk of type SHUTDOWN (Type = 7), per RFC 9260 sec 3.3.8.

Each SHUTDOWN chunk has:
  - Chunk Flags: set to 0, ignored on receipt
  - Chunk Length: MUST be 8 (header 4 + value 4)
  - Value: Cumulative TSN Ack (32 bits)

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|   Type = 7    |  Chunk Flags  |        Chunk Length = 8       |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                      Cumulative TSN Ack                       |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/
type Shutdown struct {
	CumulativeTSNAck uint32
}

const (
	cumulativeTSNAckLength = 4
)

// Shutdown chunk errors.
var (
	ErrInvalidChunkSize     = errors.New("invalid chunk size")
	ErrChunkTypeNotShutdown = errors.New("ChunkType is not of type SHUTDOWN")
)

func (*Shutdown) isChunk() {}

func (c *Shutdown) Header() ChunkHeader {
	return ChunkHeader{Type: ChunkTypeShutdown, ValueLength: cumulativeTSNAckLength}
}

func (c *Shutdown) ValueLength() int {
	return cumulativeTSNAckLength
}

func (c *Shutdown) Unmarshal(raw []byte) error {
	_, value, err := unmarshalChunk(raw, ChunkTypeShutdown, ErrChunkTypeNotShutdown)
	if err != nil {
		return err
	}

	if len(value) != cumulativeTSNAckLength {
		return fmt.Errorf("%w: SHUTDOWN value is %d bytes, must be %d", ErrInvalidChunkSize, len(value), cumulativeTSNAckLength)
	}

	c.CumulativeTSNAck = binary.BigEndian.Uint32(value)

	return nil
}

func (c *Shutdown) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := c.Header().MarshalTo(buf)
	if err != nil {
		return buf, err
	}

	return binary.BigEndian.AppendUint32(buf, c.CumulativeTSNAck), nil
}

func (c *Shutdown) Marshal() ([]byte, error) {
	return Marshal(c)
}

func (c *Shutdown) Check() error {
	return nil
}

// String makes Shutdown printable.
func (c *Shutdown) String() string {
	return fmt.Sprintf("%s cumTSNAck=%d", ChunkTypeShutdown, c.CumulativeTSNAck)
}
