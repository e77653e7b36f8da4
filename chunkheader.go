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
ChunkHeader represents an SCTP Chunk header per RFC 9260 section 3.2.

Each chunk is formatted with:
  - 1 byte  Chunk Type
  - 1 byte  Chunk Flags
  - 2 bytes Chunk Length (includes header + value, excludes trailing padding)

The sender MUST pad the chunk to a 4-byte boundary with zero bytes (up to 3).
The receiver MUST ignore padding.

Chunk header layout:

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|   Chunk Type  |  Chunk Flags  |        Chunk Length           |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

Chunk value (follows header; variable length, may be followed by up to 3 bytes of zero padding):

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                           Chunk Value                         |
	|                               ...                             |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

A ChunkHeader is computed by a chunk from its fields; chunks never store one.
*/
type ChunkHeader struct {
	Type  ChunkType
	Flags byte
	// ValueLength is the unpadded size of the chunk value, excluding the header.
	ValueLength int
}

const (
	chunkHeaderSize = 4

	// maxChunkValueLength is the largest value that still fits the 16-bit
	// Chunk Length field once the header is added.
	maxChunkValueLength = math.MaxUint16 - chunkHeaderSize
)

// SCTP chunk header errors.
var (
	ErrChunkHeaderTooSmall       = errors.New("raw is too small for a SCTP chunk")
	ErrChunkHeaderNotEnoughSpace = errors.New("not enough data left in SCTP packet to satisfy requested length")
	ErrChunkHeaderPaddingNonZero = errors.New("chunk padding is non-zero at offset")
	ErrChunkHeaderInvalidLength  = errors.New("chunk length field smaller than header length")
	ErrChunkValueTooLarge        = errors.New("chunk value does not fit in the chunk length field")
)

// Length returns the value of the Chunk Length field: header plus value,
// without trailing padding.
func (h ChunkHeader) Length() int {
	return chunkHeaderSize + h.ValueLength
}

// MarshalTo appends the 4 header bytes to buf and returns the extended buffer.
func (h ChunkHeader) MarshalTo(buf []byte) ([]byte, error) {
	if h.ValueLength < 0 || h.ValueLength > maxChunkValueLength {
		return buf, fmt.Errorf("%w: value length %d, maximum is %d",
			ErrChunkValueTooLarge, h.ValueLength, maxChunkValueLength)
	}

	buf = append(buf, uint8(h.Type), h.Flags, 0, 0)
	binary.BigEndian.PutUint16(buf[len(buf)-2:], uint16(h.Length())) //nolint:gosec // G115, checked above

	return buf, nil
}

// UnmarshalChunkHeader parses the first 4 bytes of raw. It does not check
// that raw holds the whole chunk, codecs do that once the type is known.
func UnmarshalChunkHeader(raw []byte) (ChunkHeader, error) {
	if len(raw) < chunkHeaderSize {
		return ChunkHeader{}, fmt.Errorf(
			"%w: raw only %d bytes, %d is the minimum length",
			ErrChunkHeaderTooSmall, len(raw), chunkHeaderSize,
		)
	}

	length := binary.BigEndian.Uint16(raw[2:])

	// RFC 9260 section 3.2: Chunk Length MUST be >= 4.
	if length < chunkHeaderSize {
		return ChunkHeader{}, fmt.Errorf("%w: length=%d", ErrChunkHeaderInvalidLength, length)
	}

	return ChunkHeader{
		Type:        ChunkType(raw[0]),
		Flags:       raw[1],
		ValueLength: int(length) - chunkHeaderSize,
	}, nil
}

// PeekChunkType returns the type of the chunk at the start of raw without
// parsing anything else.
func PeekChunkType(raw []byte) (ChunkType, error) {
	if len(raw) < chunkHeaderSize {
		return 0, fmt.Errorf(
			"%w: raw only %d bytes, %d is the minimum length",
			ErrChunkHeaderTooSmall, len(raw), chunkHeaderSize,
		)
	}

	return ChunkType(raw[0]), nil
}

// value returns the chunk value region of raw as declared by h. The returned
// slice aliases raw but its capacity stops at the value end.
func (h ChunkHeader) value(raw []byte) ([]byte, error) {
	length := h.Length()

	// Ensure we have the full (header+value) bytes available in this slice.
	if length > len(raw) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrChunkHeaderNotEnoughSpace, length, len(raw))
	}

	// Sender pads to a 4-byte boundary with zeros, receiver MUST ignore padding.
	// If padding bytes are present in this slice, validate they are zero.
	pad := getPadding(length)
	if remain := len(raw) - length; pad > 0 && remain > 0 {
		for i := 0; i < min(remain, pad); i++ {
			if raw[length+i] != 0 {
				return nil, fmt.Errorf("%w: %d", ErrChunkHeaderPaddingNonZero, length+i)
			}
		}
	}

	return nilIfEmpty(raw[chunkHeaderSize:length:length]), nil
}

// unmarshalChunk runs the gates every codec shares, in order: the header must
// be present, its type must be typ, and raw must hold the declared value.
func unmarshalChunk(raw []byte, typ ChunkType, errWrongType error) (ChunkHeader, []byte, error) {
	header, err := UnmarshalChunkHeader(raw)
	if err != nil {
		return ChunkHeader{}, nil, err
	}

	if header.Type != typ {
		return ChunkHeader{}, nil, fmt.Errorf("%w: actually is %s", errWrongType, header.Type.String())
	}

	value, err := header.value(raw)
	if err != nil {
		return ChunkHeader{}, nil, err
	}

	return header, value, nil
}

// String makes ChunkHeader printable.
func (h ChunkHeader) String() string {
	return h.Type.String()
}
