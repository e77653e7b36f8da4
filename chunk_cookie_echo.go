// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"errors"
	"fmt"
)

/*
CookieEcho represents an SCTP Chunk of type COOKIE ECHO (RFC 9260 section 3.3.11).

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|   Type = 10   |Chunk  Flags   |         Length                |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                     Cookie                                    |
	|                                                               |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

The cookie is opaque to the receiver of the INIT ACK and is echoed verbatim.
*/
type CookieEcho struct {
	Cookie []byte
}

// Cookie echo chunk errors.
var (
	ErrChunkTypeNotCookieEcho = errors.New("ChunkType is not of type COOKIEECHO")
)

func (*CookieEcho) isChunk() {}

// Header returns the chunk header for c. Flags are reserved and always 0.
func (c *CookieEcho) Header() ChunkHeader {
	return ChunkHeader{Type: ChunkTypeCookieEcho, ValueLength: c.ValueLength()}
}

// ValueLength returns the cookie length.
func (c *CookieEcho) ValueLength() int {
	return len(c.Cookie)
}

// Unmarshal parses a COOKIE ECHO. Cookie aliases raw.
func (c *CookieEcho) Unmarshal(raw []byte) error {
	_, value, err := unmarshalChunk(raw, ChunkTypeCookieEcho, ErrChunkTypeNotCookieEcho)
	if err != nil {
		return err
	}

	c.Cookie = value

	return nil
}

// MarshalTo appends the encoded chunk to buf.
func (c *CookieEcho) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := c.Header().MarshalTo(buf)
	if err != nil {
		return buf, err
	}

	return append(buf, c.Cookie...), nil
}

// Marshal encodes c into a new buffer.
func (c *CookieEcho) Marshal() ([]byte, error) {
	return Marshal(c)
}

// Check never fails, the cookie is only meaningful to its issuer.
func (c *CookieEcho) Check() error {
	return nil
}

// String makes CookieEcho printable.
func (c *CookieEcho) String() string {
	return fmt.Sprintf("%s cookie=%d bytes", ChunkTypeCookieEcho, len(c.Cookie))
}
