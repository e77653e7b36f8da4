// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net/netip"
	"strings"
)

// Address parameter errors.
var (
	ErrAddressFamilyMismatch = errors.New("address does not match the parameter family")
)

// IPv4Address lists an IPv4 transport address of the sender of an INIT or INIT ACK.
type IPv4Address struct {
	Addr netip.Addr
}

func (p *IPv4Address) Type() ParamType { return ParamTypeIPv4Address }

func (p *IPv4Address) ValueLength() int { return 4 }

func (p *IPv4Address) MarshalTo(buf []byte) ([]byte, error) {
	if !p.Addr.Is4() {
		return buf, fmt.Errorf("%w: %s is not IPv4", ErrAddressFamilyMismatch, p.Addr)
	}

	buf, err := appendParamHeader(buf, p)
	if err != nil {
		return buf, err
	}
	ip := p.Addr.As4()

	return append(buf, ip[:]...), nil
}

func (p *IPv4Address) unmarshal(value []byte) error {
	if err := checkParamValueLength(value, 4); err != nil {
		return err
	}
	p.Addr = netip.AddrFrom4([4]byte(value))

	return nil
}

func (p *IPv4Address) String() string {
	return fmt.Sprintf("%s: %s", ParamTypeIPv4Address, p.Addr)
}

// IPv6Address lists an IPv6 transport address of the sender of an INIT or INIT ACK.
type IPv6Address struct {
	Addr netip.Addr
}

func (p *IPv6Address) Type() ParamType { return ParamTypeIPv6Address }

func (p *IPv6Address) ValueLength() int { return 16 }

func (p *IPv6Address) MarshalTo(buf []byte) ([]byte, error) {
	if !p.Addr.Is6() {
		return buf, fmt.Errorf("%w: %s is not IPv6", ErrAddressFamilyMismatch, p.Addr)
	}

	buf, err := appendParamHeader(buf, p)
	if err != nil {
		return buf, err
	}
	ip := p.Addr.As16()

	return append(buf, ip[:]...), nil
}

func (p *IPv6Address) unmarshal(value []byte) error {
	if err := checkParamValueLength(value, 16); err != nil {
		return err
	}
	p.Addr = netip.AddrFrom16([16]byte(value))

	return nil
}

func (p *IPv6Address) String() string {
	return fmt.Sprintf("%s: %s", ParamTypeIPv6Address, p.Addr)
}

// SupportedAddressTypes lists the address parameter types the sender of an
// INIT can use.
type SupportedAddressTypes struct {
	AddressTypes []ParamType
}

func (p *SupportedAddressTypes) Type() ParamType { return ParamTypeSupportedAddressTypes }

func (p *SupportedAddressTypes) ValueLength() int { return 2 * len(p.AddressTypes) }

func (p *SupportedAddressTypes) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendParamHeader(buf, p)
	if err != nil {
		return buf, err
	}
	for _, t := range p.AddressTypes {
		buf = binary.BigEndian.AppendUint16(buf, uint16(t))
	}

	return buf, nil
}

func (p *SupportedAddressTypes) unmarshal(value []byte) error {
	if len(value)%2 != 0 {
		return fmt.Errorf("%w: %d bytes is not a list of 16-bit types", ErrParamInvalidValueLength, len(value))
	}

	p.AddressTypes = make([]ParamType, len(value)/2)
	for i := range p.AddressTypes {
		p.AddressTypes[i] = ParamType(binary.BigEndian.Uint16(value[2*i:]))
	}
	p.AddressTypes = nilIfEmpty(p.AddressTypes)

	return nil
}

func (p *SupportedAddressTypes) String() string {
	names := make([]string, len(p.AddressTypes))
	for i, t := range p.AddressTypes {
		names[i] = t.String()
	}

	return fmt.Sprintf("%s: [%s]", ParamTypeSupportedAddressTypes, strings.Join(names, ", "))
}
