// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import "fmt"

// UnrecognizedChunkType reports a chunk the sender did not understand.
// Chunk holds the unrecognized chunk's header and value.
//
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|     Cause Code = 6            |      Cause Length             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	/                  Unrecognized Chunk                           /
//	\                                                               \
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type UnrecognizedChunkType struct {
	Chunk []byte
}

func (e *UnrecognizedChunkType) Code() ErrorCauseCode { return CauseUnrecognizedChunkType }

func (e *UnrecognizedChunkType) ValueLength() int { return len(e.Chunk) }

func (e *UnrecognizedChunkType) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendErrorCauseHeader(buf, e)
	if err != nil {
		return buf, err
	}

	return append(buf, e.Chunk...), nil
}

func (e *UnrecognizedChunkType) unmarshal(value []byte) error {
	e.Chunk = value

	return nil
}

func (e *UnrecognizedChunkType) String() string {
	if len(e.Chunk) > 0 {
		return fmt.Sprintf("%s: %s", CauseUnrecognizedChunkType, ChunkType(e.Chunk[0]))
	}

	return CauseUnrecognizedChunkType.String()
}

// UnrecognizedParameters reports the parameters of an INIT ACK the sender
// did not understand. Params holds the parameter TLVs verbatim.
type UnrecognizedParameters struct {
	Params []byte
}

func (e *UnrecognizedParameters) Code() ErrorCauseCode { return CauseUnrecognizedParameters }

func (e *UnrecognizedParameters) ValueLength() int { return len(e.Params) }

func (e *UnrecognizedParameters) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendErrorCauseHeader(buf, e)
	if err != nil {
		return buf, err
	}

	return append(buf, e.Params...), nil
}

func (e *UnrecognizedParameters) unmarshal(value []byte) error {
	e.Params = value

	return nil
}

func (e *UnrecognizedParameters) String() string {
	return fmt.Sprintf("%s: %d bytes", CauseUnrecognizedParameters, len(e.Params))
}
