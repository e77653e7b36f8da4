// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"errors"
	"fmt"
)

// Chunk is implemented by the fifteen chunk kinds this package understands.
// The set is closed; use a type switch on the concrete pointer types.
//
// Header, ValueLength, Check and MarshalTo never modify the chunk. Unmarshal
// populates a zero value, and byte slices in the result alias raw.
type Chunk interface {
	fmt.Stringer

	Header() ChunkHeader
	Unmarshal(raw []byte) error
	// MarshalTo appends header and value, without trailing padding, to buf.
	MarshalTo(buf []byte) ([]byte, error)
	Marshal() ([]byte, error)
	Check() error
	ValueLength() int

	isChunk()
}

// Chunk marshal and dispatch errors.
var (
	ErrChunkLengthMismatch   = errors.New("chunk marshaled to a different length than it reported")
	ErrUnrecognizedChunkType = errors.New("unrecognized chunk type")
)

// UnrecognizedChunk is a chunk whose type this package does not implement.
// Raw holds header and value, without padding.
type UnrecognizedChunk struct {
	Header ChunkHeader
	Raw    []byte
}

// Action returns what the receiver must do with the chunk per its type's
// upper two bits.
func (u UnrecognizedChunk) Action() UnrecognizedChunkAction {
	return u.Header.Type.UnrecognizedAction()
}

// UnrecognizedChunkError is returned by ParseChunk for unknown chunk types.
type UnrecognizedChunkError struct {
	Chunk UnrecognizedChunk
}

func (e *UnrecognizedChunkError) Error() string {
	return fmt.Sprintf("%s: %d (%s)", ErrUnrecognizedChunkType, uint8(e.Chunk.Header.Type), e.Chunk.Action())
}

func (e *UnrecognizedChunkError) Unwrap() error {
	return ErrUnrecognizedChunkType
}

// Marshal sizes a buffer from c.ValueLength and marshals c into it.
func Marshal(c Chunk) ([]byte, error) {
	size := chunkHeaderSize + c.ValueLength()

	out, err := c.MarshalTo(make([]byte, 0, size))
	if err != nil {
		return nil, err
	}
	if len(out) != size {
		return nil, fmt.Errorf("%w: %s wrote %d bytes, expected %d", ErrChunkLengthMismatch, c.Header().Type, len(out), size)
	}

	return out, nil
}

func newChunk(typ ChunkType) Chunk { //nolint:cyclop
	switch typ {
	case ChunkTypePayloadData:
		return &PayloadData{}
	case ChunkTypeInit:
		return &Init{}
	case ChunkTypeInitAck:
		return &InitAck{}
	case ChunkTypeSack:
		return &SelectiveAck{}
	case ChunkTypeHeartbeat:
		return &Heartbeat{}
	case ChunkTypeHeartbeatAck:
		return &HeartbeatAck{}
	case ChunkTypeAbort:
		return &Abort{}
	case ChunkTypeShutdown:
		return &Shutdown{}
	case ChunkTypeShutdownAck:
		return &ShutdownAck{}
	case ChunkTypeError:
		return &Error{}
	case ChunkTypeCookieEcho:
		return &CookieEcho{}
	case ChunkTypeCookieAck:
		return &CookieAck{}
	case ChunkTypeShutdownComplete:
		return &ShutdownComplete{}
	case ChunkTypeReconfig:
		return &Reconfig{}
	case ChunkTypeForwardTSN:
		return &ForwardTSN{}
	default:
		return nil
	}
}

// ParseChunk decodes the chunk at the start of raw with the codec its type
// selects. Unknown types yield an *UnrecognizedChunkError once the header
// and value region have been validated.
func ParseChunk(raw []byte) (Chunk, error) {
	typ, err := PeekChunkType(raw)
	if err != nil {
		return nil, err
	}

	c := newChunk(typ)
	if c == nil {
		header, err := UnmarshalChunkHeader(raw)
		if err != nil {
			return nil, err
		}
		if _, err := header.value(raw); err != nil {
			return nil, err
		}

		return nil, &UnrecognizedChunkError{Chunk: UnrecognizedChunk{
			Header: header,
			Raw:    raw[:header.Length():header.Length()],
		}}
	}

	if err := c.Unmarshal(raw); err != nil {
		return nil, err
	}

	return c, nil
}

// CloneChunk returns a copy of c that shares no memory with it.
func CloneChunk(c Chunk) (Chunk, error) {
	raw, err := Marshal(c)
	if err != nil {
		return nil, err
	}

	return ParseChunk(raw)
}
