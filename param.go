// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"errors"
	"fmt"
)

// Param is a TLV parameter carried by INIT, INIT ACK, HEARTBEAT, HEARTBEAT ACK
// and RECONFIG chunks. Types this package does not model decode to *RawParam.
type Param interface {
	fmt.Stringer

	Type() ParamType
	// ValueLength is the unpadded value size, excluding the 4-byte header.
	ValueLength() int
	MarshalTo(buf []byte) ([]byte, error)

	unmarshal(value []byte) error
}

// Parameter list errors.
var (
	ErrParamInvalidValueLength = errors.New("param value has invalid length")
	ErrParamPaddingNonZero     = errors.New("param padding is non-zero")
	ErrParamTrailingNonZero    = errors.New("non-zero trailing bytes after last parameter")
)

func newParam(typ ParamType) Param { //nolint:cyclop
	switch typ {
	case ParamTypeHeartbeatInfo:
		return &HeartbeatInfo{}
	case ParamTypeIPv4Address:
		return &IPv4Address{}
	case ParamTypeIPv6Address:
		return &IPv6Address{}
	case ParamTypeStateCookie:
		return &StateCookie{}
	case ParamTypeUnrecognizedParameter:
		return &UnrecognizedParameter{}
	case ParamTypeCookiePreservative:
		return &CookiePreservative{}
	case ParamTypeSupportedAddressTypes:
		return &SupportedAddressTypes{}
	case ParamTypeOutgoingResetRequest:
		return &OutgoingResetRequest{}
	case ParamTypeIncomingResetRequest:
		return &IncomingResetRequest{}
	case ParamTypeSSNTSNResetRequest:
		return &SSNTSNResetRequest{}
	case ParamTypeReconfigResponse:
		return &ReconfigResponse{}
	case ParamTypeAddOutgoingStreamsRequest:
		return &AddStreamsRequest{Incoming: false}
	case ParamTypeAddIncomingStreamsRequest:
		return &AddStreamsRequest{Incoming: true}
	case ParamTypeECNCapable:
		return &ECNCapable{}
	case ParamTypeZeroChecksumAcceptable:
		return &ZeroChecksumAcceptable{}
	case ParamTypeSupportedExtensions:
		return &SupportedExtensions{}
	case ParamTypeForwardTSNSupported:
		return &ForwardTSNSupported{}
	default:
		return &RawParam{ParamType: typ}
	}
}

// ParseParam decodes the parameter at the start of raw. Padding after the
// parameter is not consumed.
func ParseParam(raw []byte) (Param, error) {
	header, value, err := unmarshalParamHeader(raw)
	if err != nil {
		return nil, err
	}

	return parseParamValue(header, value)
}

func parseParamValue(header paramHeader, value []byte) (Param, error) {
	p := newParam(header.typ)
	if err := p.unmarshal(value); err != nil {
		return nil, fmt.Errorf("%s: %w", header.typ, err)
	}

	return p, nil
}

// MarshalParam encodes p into a new buffer.
func MarshalParam(p Param) ([]byte, error) {
	return p.MarshalTo(make([]byte, 0, paramHeaderLength+p.ValueLength()))
}

// appendParamHeader starts p's encoding in buf.
func appendParamHeader(buf []byte, p Param) ([]byte, error) {
	return paramHeader{typ: p.Type(), valueLength: p.ValueLength()}.marshalTo(buf)
}

// paramsValueLength is the encoded size of params with every parameter but
// the last padded to 4 bytes.
func paramsValueLength(params []Param) int {
	n := 0
	for i, p := range params {
		n += paramHeaderLength + p.ValueLength()
		if i != len(params)-1 {
			n = paddedLength(n)
		}
	}

	return n
}

// marshalParams appends params to buf, padding all but the last.
func marshalParams(buf []byte, params []Param) ([]byte, error) {
	for i, p := range params {
		start := len(buf)

		var err error
		if buf, err = p.MarshalTo(buf); err != nil {
			return buf[:start], err
		}

		if i != len(params)-1 {
			buf = padByte(buf, getPadding(len(buf)-start))
		}
	}

	return buf, nil
}

// unmarshalParams decodes a run of parameters starting at a 4-byte aligned
// offset. Zero padding after the last parameter is tolerated.
func unmarshalParams(body []byte) ([]Param, error) {
	var params []Param

	offset := 0
	for offset < len(body) {
		remaining := body[offset:]
		if allZero(remaining) && (len(params) > 0 || len(remaining) < paramHeaderLength) {
			break
		}

		if len(remaining) < paramHeaderLength {
			return nil, fmt.Errorf("%w: %d bytes", ErrParamTrailingNonZero, len(remaining))
		}

		header, value, err := unmarshalParamHeader(remaining)
		if err != nil {
			return nil, err
		}

		p, err := parseParamValue(header, value)
		if err != nil {
			return nil, err
		}
		params = append(params, p)

		end := offset + header.length()
		next := min(paddedLength(end), len(body))
		if !allZero(body[end:next]) {
			return nil, fmt.Errorf("%w: after %s", ErrParamPaddingNonZero, header.typ)
		}
		offset = next
	}

	return params, nil
}

func checkParamValueLength(value []byte, want int) error {
	if len(value) != want {
		return fmt.Errorf("%w: %d bytes, expected %d", ErrParamInvalidValueLength, len(value), want)
	}

	return nil
}
