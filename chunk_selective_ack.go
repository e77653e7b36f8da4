// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

/*
SelectiveAck represents an SCTP Chunk of type SACK (RFC 9260 section 3.3.4).

This chunk is sent to the peer endpoint to acknowledge received DATA
chunks and to inform the peer endpoint of gaps in the received
subsequences of DATA chunks as represented by their TSNs.

0                   1                   2                   3
0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
|   Type = 3    |Chunk  Flags   |      Chunk Length             |
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
|                      Cumulative TSN Ack                       |
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
|          Advertised Receiver Window Credit (a_rwnd)           |
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
| Number of Gap Ack Blocks = N  |  Number of Duplicate TSNs = X |
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
|  Gap Ack Block #1 Start       |   Gap Ack Block #1 End        |
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
/                                                               /
\                              ...                              \
/                                                               /
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
|   Gap Ack Block #N Start      |  Gap Ack Block #N End         |
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
|                       Duplicate TSN 1                         |
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
/                                                               /
\                              ...                              \
/                                                               /
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
|                       Duplicate TSN X                         |
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/

// GapAckBlock acknowledges the TSNs from CumulativeTSNAck+Start to
// CumulativeTSNAck+End inclusive.
type GapAckBlock struct {
	Start uint16
	End   uint16
}

// Selective ack chunk errors.
var (
	ErrChunkTypeNotSack           = errors.New("ChunkType is not of type SACK")
	ErrSackSizeNotLargeEnoughInfo = errors.New("SACK Chunk size is not large enough to contain header")
	ErrSackSizeNotMatchPredicted  = errors.New("SACK Chunk size does not match predicted amount from header values")
	ErrSackGapBlockInvalidRange   = errors.New("SACK gap ack block has invalid Start/End range")
	ErrSackGapBlocksNotMonotonic  = errors.New("SACK gap ack blocks are not strictly increasing/non-overlapping")
	ErrSackTooManyEntries         = errors.New("SACK has more gap ack blocks or duplicate TSNs than fit the count fields")
)

// String makes GapAckBlock printable.
func (g GapAckBlock) String() string {
	return fmt.Sprintf("%d - %d", g.Start, g.End)
}

type SelectiveAck struct {
	CumulativeTSNAck               uint32
	AdvertisedReceiverWindowCredit uint32
	GapAckBlocks                   []GapAckBlock
	DuplicateTSN                   []uint32
}

const (
	selectiveAckHeaderSize = 12
	gapAckBlockSize        = 4
	duplicateTSNSize       = 4
)

func (*SelectiveAck) isChunk() {}

// Header returns the chunk header. RFC 9260: SACK flags must be 0.
func (s *SelectiveAck) Header() ChunkHeader {
	return ChunkHeader{Type: ChunkTypeSack, ValueLength: s.ValueLength()}
}

func (s *SelectiveAck) ValueLength() int {
	return selectiveAckHeaderSize + gapAckBlockSize*len(s.GapAckBlocks) + duplicateTSNSize*len(s.DuplicateTSN)
}

func (s *SelectiveAck) Unmarshal(raw []byte) error {
	_, value, err := unmarshalChunk(raw, ChunkTypeSack, ErrChunkTypeNotSack)
	if err != nil {
		return err
	}

	if len(value) < selectiveAckHeaderSize {
		return fmt.Errorf("%w: %v remaining, needs %v bytes", ErrSackSizeNotLargeEnoughInfo,
			len(value), selectiveAckHeaderSize)
	}

	nGap := int(binary.BigEndian.Uint16(value[8:]))
	nDup := int(binary.BigEndian.Uint16(value[10:]))

	if len(value) != selectiveAckHeaderSize+gapAckBlockSize*nGap+duplicateTSNSize*nDup {
		return fmt.Errorf("%w: %d bytes for %d gap ack blocks and %d duplicate TSNs",
			ErrSackSizeNotMatchPredicted, len(value), nGap, nDup)
	}

	offset := selectiveAckHeaderSize
	blocks := make([]GapAckBlock, nGap)
	for i := range blocks {
		blocks[i] = GapAckBlock{
			Start: binary.BigEndian.Uint16(value[offset:]),
			End:   binary.BigEndian.Uint16(value[offset+2:]),
		}
		offset += gapAckBlockSize
	}
	if err := checkGapAckBlocks(blocks); err != nil {
		return err
	}

	dups := make([]uint32, nDup)
	for i := range dups {
		dups[i] = binary.BigEndian.Uint32(value[offset:])
		offset += duplicateTSNSize
	}

	s.CumulativeTSNAck = binary.BigEndian.Uint32(value[0:])
	s.AdvertisedReceiverWindowCredit = binary.BigEndian.Uint32(value[4:])
	s.GapAckBlocks = nilIfEmpty(blocks)
	s.DuplicateTSN = nilIfEmpty(dups)

	return nil
}

func (s *SelectiveAck) MarshalTo(buf []byte) ([]byte, error) {
	if err := s.Check(); err != nil {
		return buf, err
	}

	buf, err := s.Header().MarshalTo(buf)
	if err != nil {
		return buf, err
	}

	buf = binary.BigEndian.AppendUint32(buf, s.CumulativeTSNAck)
	buf = binary.BigEndian.AppendUint32(buf, s.AdvertisedReceiverWindowCredit)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(s.GapAckBlocks))) //nolint:gosec // G115, checked above
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(s.DuplicateTSN))) //nolint:gosec // G115, checked above

	for _, g := range s.GapAckBlocks {
		buf = binary.BigEndian.AppendUint16(buf, g.Start)
		buf = binary.BigEndian.AppendUint16(buf, g.End)
	}

	for _, t := range s.DuplicateTSN {
		buf = binary.BigEndian.AppendUint32(buf, t)
	}

	return buf, nil
}

func (s *SelectiveAck) Marshal() ([]byte, error) {
	return Marshal(s)
}

// Check validates the gap ack blocks and the entry counts.
func (s *SelectiveAck) Check() error {
	if len(s.GapAckBlocks) > math.MaxUint16 || len(s.DuplicateTSN) > math.MaxUint16 {
		return fmt.Errorf("%w: %d gap ack blocks, %d duplicate TSNs",
			ErrSackTooManyEntries, len(s.GapAckBlocks), len(s.DuplicateTSN))
	}

	return checkGapAckBlocks(s.GapAckBlocks)
}

// checkGapAckBlocks requires strictly increasing, non-overlapping blocks.
// Contiguous blocks are allowed.
func checkGapAckBlocks(blocks []GapAckBlock) error {
	var prevEnd uint16
	for i, g := range blocks {
		if g.Start == 0 || g.End < g.Start {
			return fmt.Errorf("%w: %s", ErrSackGapBlockInvalidRange, g)
		}

		if i > 0 && g.Start <= prevEnd {
			return fmt.Errorf("%w: %s after end %d", ErrSackGapBlocksNotMonotonic, g, prevEnd)
		}

		prevEnd = g.End
	}

	return nil
}

// String makes SelectiveAck printable.
func (s *SelectiveAck) String() string {
	res := fmt.Sprintf("SACK cumTsnAck=%d arwnd=%d dupTsn=%v",
		s.CumulativeTSNAck,
		s.AdvertisedReceiverWindowCredit,
		s.DuplicateTSN)

	for _, gap := range s.GapAckBlocks {
		res = fmt.Sprintf("%s\n gap ack: %s", res, gap)
	}

	return res
}
