// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ForwardTSN is used by the sender to advance the cumulative TSN and
// indicate per-stream sequence numbers that were skipped (RFC 3758 section 3.2).
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|   Type = 192  |  Flags = 0x00 |        Length = Variable      |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                      New Cumulative TSN                       |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|         Stream-1              |       Stream Sequence-1       |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	\                                                               /
//	/                                                               \
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|         Stream-N              |       Stream Sequence-N       |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type ForwardTSN struct {
	// Upon reception of this value the data receiver MUST consider any
	// missing TSNs earlier than or equal to it as received.
	NewCumulativeTSN uint32
	Streams          []ForwardTSNStream
}

// ForwardTSNStream names the largest skipped sequence number of a stream.
// Unordered DATA is never reported here.
type ForwardTSNStream struct {
	Identifier uint16
	Sequence   uint16
}

const (
	newCumulativeTSNLength = 4
	forwardTSNStreamLength = 4
)

// Forward TSN chunk errors.
var (
	ErrChunkTooShort                = errors.New("chunk too short")
	ErrChunkTypeNotForwardTSN       = errors.New("ChunkType is not of type FORWARD TSN")
	ErrForwardTSNInvalidStreamBlock = errors.New("FORWARD TSN stream block section length invalid")
)

func (*ForwardTSN) isChunk() {}

// Header returns the chunk header. Flags are reserved, sender MUST set 0.
func (c *ForwardTSN) Header() ChunkHeader {
	return ChunkHeader{Type: ChunkTypeForwardTSN, ValueLength: c.ValueLength()}
}

func (c *ForwardTSN) ValueLength() int {
	return newCumulativeTSNLength + forwardTSNStreamLength*len(c.Streams)
}

// Unmarshal parses a FORWARD TSN. Flags are reserved: receiver ignores them.
func (c *ForwardTSN) Unmarshal(raw []byte) error {
	_, value, err := unmarshalChunk(raw, ChunkTypeForwardTSN, ErrChunkTypeNotForwardTSN)
	if err != nil {
		return err
	}

	if len(value) < newCumulativeTSNLength {
		return fmt.Errorf("%w: %d bytes", ErrChunkTooShort, len(value))
	}

	// remaining body MUST be a multiple of 4 (each stream block is 4 bytes).
	if (len(value)-newCumulativeTSNLength)%forwardTSNStreamLength != 0 {
		return fmt.Errorf("%w: %d bytes", ErrForwardTSNInvalidStreamBlock, len(value)-newCumulativeTSNLength)
	}

	c.NewCumulativeTSN = binary.BigEndian.Uint32(value)

	c.Streams = nil
	for off := newCumulativeTSNLength; off < len(value); off += forwardTSNStreamLength {
		c.Streams = append(c.Streams, ForwardTSNStream{
			Identifier: binary.BigEndian.Uint16(value[off:]),
			Sequence:   binary.BigEndian.Uint16(value[off+2:]),
		})
	}

	return nil
}

func (c *ForwardTSN) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := c.Header().MarshalTo(buf)
	if err != nil {
		return buf, err
	}

	buf = binary.BigEndian.AppendUint32(buf, c.NewCumulativeTSN)
	for _, s := range c.Streams {
		buf = binary.BigEndian.AppendUint16(buf, s.Identifier)
		buf = binary.BigEndian.AppendUint16(buf, s.Sequence)
	}

	return buf, nil
}

func (c *ForwardTSN) Marshal() ([]byte, error) {
	return Marshal(c)
}

func (c *ForwardTSN) Check() error {
	return nil
}

// String makes ForwardTSN printable.
func (c *ForwardTSN) String() string {
	res := fmt.Sprintf("New Cumulative TSN: %d\n", c.NewCumulativeTSN)
	for _, s := range c.Streams {
		res += fmt.Sprintf(" - si=%d, ssn=%d\n", s.Identifier, s.Sequence)
	}

	return res
}
