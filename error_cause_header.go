// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// errorCauseHeader is the TLV prefix shared by all error causes
// (RFC 9260 section 3.3.10).
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|           Cause Code          |         Cause Length          |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	/                    Cause-Specific Information                 /
//	\                                                               \
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type errorCauseHeader struct {
	code        ErrorCauseCode
	valueLength int
}

const (
	errorCauseHeaderLength = 4

	maxErrorCauseValueLen = math.MaxUint16 - errorCauseHeaderLength
)

func (e errorCauseHeader) length() int {
	return errorCauseHeaderLength + e.valueLength
}

func (e errorCauseHeader) marshalTo(buf []byte) ([]byte, error) {
	if e.valueLength < 0 || e.valueLength > maxErrorCauseValueLen {
		return buf, fmt.Errorf("%w: %s value length %d", ErrCauseLengthInvalid, e.code, e.valueLength)
	}

	buf = binary.BigEndian.AppendUint16(buf, uint16(e.code))

	return binary.BigEndian.AppendUint16(buf, uint16(e.length())), nil //nolint:gosec // G115, checked above
}

// unmarshalErrorCauseHeader parses the header at the start of raw and
// returns it with the value it declares.
func unmarshalErrorCauseHeader(raw []byte) (errorCauseHeader, []byte, error) {
	if len(raw) < errorCauseHeaderLength {
		return errorCauseHeader{}, nil, fmt.Errorf("%w: %d bytes", ErrCauseTooShort, len(raw))
	}

	clen := int(binary.BigEndian.Uint16(raw[2:]))
	if clen < errorCauseHeaderLength || clen > len(raw) {
		return errorCauseHeader{}, nil, fmt.Errorf("%w: length %d with %d bytes available", ErrCauseLengthInvalid, clen, len(raw))
	}

	header := errorCauseHeader{
		code:        ErrorCauseCode(binary.BigEndian.Uint16(raw)),
		valueLength: clen - errorCauseHeaderLength,
	}

	return header, nilIfEmpty(raw[errorCauseHeaderLength:clen:clen]), nil
}

// String makes errorCauseHeader printable.
func (e errorCauseHeader) String() string {
	return e.code.String()
}
