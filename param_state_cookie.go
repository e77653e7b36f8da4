// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"encoding/binary"
	"fmt"
)

// StateCookie is the opaque cookie an INIT ACK hands to the initiator, which
// echoes it in a COOKIE ECHO chunk.
type StateCookie struct {
	Cookie []byte
}

func (p *StateCookie) Type() ParamType { return ParamTypeStateCookie }

func (p *StateCookie) ValueLength() int { return len(p.Cookie) }

func (p *StateCookie) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendParamHeader(buf, p)
	if err != nil {
		return buf, err
	}

	return append(buf, p.Cookie...), nil
}

func (p *StateCookie) unmarshal(value []byte) error {
	p.Cookie = value

	return nil
}

func (p *StateCookie) String() string {
	return fmt.Sprintf("%s: %d bytes", ParamTypeStateCookie, len(p.Cookie))
}

// UnrecognizedParameter wraps a parameter an INIT receiver did not
// recognize and reports back in its INIT ACK. Param holds the complete TLV.
type UnrecognizedParameter struct {
	Param []byte
}

func (p *UnrecognizedParameter) Type() ParamType { return ParamTypeUnrecognizedParameter }

func (p *UnrecognizedParameter) ValueLength() int { return len(p.Param) }

func (p *UnrecognizedParameter) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendParamHeader(buf, p)
	if err != nil {
		return buf, err
	}

	return append(buf, p.Param...), nil
}

func (p *UnrecognizedParameter) unmarshal(value []byte) error {
	p.Param = value

	return nil
}

func (p *UnrecognizedParameter) String() string {
	if len(p.Param) >= 2 {
		return fmt.Sprintf("%s: %s", ParamTypeUnrecognizedParameter, ParamType(binary.BigEndian.Uint16(p.Param)))
	}

	return ParamTypeUnrecognizedParameter.String()
}

// CookiePreservative asks the peer for a longer cookie lifetime, in milliseconds.
type CookiePreservative struct {
	LifeSpanIncrement uint32
}

func (p *CookiePreservative) Type() ParamType { return ParamTypeCookiePreservative }

func (p *CookiePreservative) ValueLength() int { return 4 }

func (p *CookiePreservative) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendParamHeader(buf, p)
	if err != nil {
		return buf, err
	}

	return binary.BigEndian.AppendUint32(buf, p.LifeSpanIncrement), nil
}

func (p *CookiePreservative) unmarshal(value []byte) error {
	if err := checkParamValueLength(value, 4); err != nil {
		return err
	}
	p.LifeSpanIncrement = binary.BigEndian.Uint32(value)

	return nil
}

func (p *CookiePreservative) String() string {
	return fmt.Sprintf("%s: +%dms", ParamTypeCookiePreservative, p.LifeSpanIncrement)
}
