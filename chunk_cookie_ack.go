// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"errors"
	"fmt"
)

/*
CookieAck represents an SCTP Chunk of type COOKIE ACK

	0                   1                   2                   3
	0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|   Type = 11   |  Chunk Flags  |     Length = 4                |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/
type CookieAck struct{}

// Cookie ack chunk errors.
var (
	ErrChunkTypeNotCookieAck = errors.New("ChunkType is not of type COOKIEACK")
	ErrCookieAckHasValue     = errors.New("COOKIE ACK must not contain a value")
)

func (*CookieAck) isChunk() {}

func (c *CookieAck) Header() ChunkHeader {
	return ChunkHeader{Type: ChunkTypeCookieAck}
}

func (c *CookieAck) ValueLength() int {
	return 0
}

func (c *CookieAck) Unmarshal(raw []byte) error {
	header, _, err := unmarshalChunk(raw, ChunkTypeCookieAck, ErrChunkTypeNotCookieAck)
	if err != nil {
		return err
	}

	// flags are reserved: sender sets 0, receiver ignores.
	if header.ValueLength != 0 {
		return fmt.Errorf("%w: value length %d", ErrCookieAckHasValue, header.ValueLength)
	}

	return nil
}

func (c *CookieAck) MarshalTo(buf []byte) ([]byte, error) {
	return c.Header().MarshalTo(buf)
}

func (c *CookieAck) Marshal() ([]byte, error) {
	return Marshal(c)
}

func (c *CookieAck) Check() error {
	return nil
}

// String makes CookieAck printable.
func (c *CookieAck) String() string {
	return ChunkTypeCookieAck.String()
}
