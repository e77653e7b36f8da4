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
paramHeader is the TLV prefix shared by all parameters (RFC 9260 section 3.2.1).

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|        Parameter Type         |       Parameter Length        |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	\                                                               \
	/                       Parameter Value                         /
	\                                                               \
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

Parameter Length counts the header and the value but not the padding.
*/
type paramHeader struct {
	typ         ParamType
	valueLength int
}

const (
	paramHeaderLength = 4

	maxParamValueLength = math.MaxUint16 - paramHeaderLength
)

// Parameter header parse errors.
var (
	ErrParamHeaderTooShort                  = errors.New("param header too short")
	ErrParamHeaderSelfReportedLengthShorter = errors.New("param self reported length is shorter than header length")
	ErrParamHeaderSelfReportedLengthLonger  = errors.New("param self reported length is longer than header length")
	ErrParamValueTooLarge                   = errors.New("param value does not fit in the parameter length field")
)

func (p paramHeader) length() int {
	return paramHeaderLength + p.valueLength
}

func (p paramHeader) marshalTo(buf []byte) ([]byte, error) {
	if p.valueLength < 0 || p.valueLength > maxParamValueLength {
		return buf, fmt.Errorf("%w: %s value length %d", ErrParamValueTooLarge, p.typ, p.valueLength)
	}

	buf = binary.BigEndian.AppendUint16(buf, uint16(p.typ))

	return binary.BigEndian.AppendUint16(buf, uint16(p.length())), nil //nolint:gosec // G115, checked above
}

// unmarshalParamHeader parses the TLV header at the start of raw and returns
// it with the value it declares.
func unmarshalParamHeader(raw []byte) (paramHeader, []byte, error) {
	if len(raw) < paramHeaderLength {
		return paramHeader{}, nil, fmt.Errorf("%w: %d bytes", ErrParamHeaderTooShort, len(raw))
	}

	paramLengthPlusHeader := int(binary.BigEndian.Uint16(raw[2:]))
	if paramLengthPlusHeader < paramHeaderLength {
		return paramHeader{}, nil, fmt.Errorf(
			"%w: param self reported length (%d) shorter than header length (%d)",
			ErrParamHeaderSelfReportedLengthShorter, paramLengthPlusHeader, paramHeaderLength,
		)
	}
	if len(raw) < paramLengthPlusHeader {
		return paramHeader{}, nil, fmt.Errorf(
			"%w: param length (%d) shorter than its self reported length (%d)",
			ErrParamHeaderSelfReportedLengthLonger, len(raw), paramLengthPlusHeader,
		)
	}

	header := paramHeader{
		typ:         ParamType(binary.BigEndian.Uint16(raw)),
		valueLength: paramLengthPlusHeader - paramHeaderLength,
	}

	return header, nilIfEmpty(raw[paramHeaderLength:paramLengthPlusHeader:paramLengthPlusHeader]), nil
}

// String makes paramHeader printable.
func (p paramHeader) String() string {
	return fmt.Sprintf("%s (%d)", p.typ, p.length())
}
