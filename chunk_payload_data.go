// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

/*
PayloadData represents an SCTP Chunk of type DATA (RFC 9260 section 3.3.1)

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|   Type = 0    | Res |I|U|B|E|            Length               |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                              TSN                              |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|      Stream Identifier S      |   Stream Sequence Number n    |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                  Payload Protocol Identifier                  |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                                                               |
	|                 User Data (seq n of Stream S)                 |
	|                                                               |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

An unfragmented user message MUST have both the B and E bits set to 1.
Setting both B and E to 0 indicates a middle fragment: see Table 4 in RFC 9260.
*/
type PayloadData struct {
	Unordered         bool
	BeginningFragment bool
	EndingFragment    bool
	ImmediateSack     bool

	TSN                  uint32
	StreamIdentifier     uint16
	StreamSequenceNumber uint16
	PayloadType          PayloadProtocolIdentifier
	UserData             []byte
}

const (
	payloadDataEndingFragmentBitmask   = 1
	payloadDataBeginingFragmentBitmask = 2
	payloadDataUnorderedBitmask        = 4
	payloadDataImmediateSACK           = 8

	payloadDataHeaderSize = 12 // TSN(4) + SID(2) + SSN(2) + PPID(4)
)

// PayloadProtocolIdentifier is an enum for DataChannel payload types.
type PayloadProtocolIdentifier uint32

// PayloadProtocolIdentifier enums
// https://www.iana.org/assignments/sctp-parameters/sctp-parameters.xhtml#sctp-parameters-25
const (
	PayloadTypeUnknown           PayloadProtocolIdentifier = 0
	PayloadTypeWebRTCDCEP        PayloadProtocolIdentifier = 50
	PayloadTypeWebRTCString      PayloadProtocolIdentifier = 51
	PayloadTypeWebRTCBinary      PayloadProtocolIdentifier = 53
	PayloadTypeWebRTCStringEmpty PayloadProtocolIdentifier = 56
	PayloadTypeWebRTCBinaryEmpty PayloadProtocolIdentifier = 57
)

// Data chunk errors.
var (
	ErrChunkTypeNotPayloadData = errors.New("ChunkType is not of type DATA")
	ErrChunkPayloadSmall       = errors.New("packet is smaller than the header size")
	// RFC 9260 section 3.3.1: Length MUST be 16 + L with L > 0 (exclude padding).
	ErrDATAZeroUserData = errors.New("DATA chunk carries no user data (L must be > 0)")
)

func (p PayloadProtocolIdentifier) String() string {
	switch p {
	case PayloadTypeWebRTCDCEP:
		return "WebRTC DCEP"
	case PayloadTypeWebRTCString:
		return "WebRTC String"
	case PayloadTypeWebRTCBinary:
		return "WebRTC Binary"
	case PayloadTypeWebRTCStringEmpty:
		return "WebRTC String (Empty)"
	case PayloadTypeWebRTCBinaryEmpty:
		return "WebRTC Binary (Empty)"
	default:
		return fmt.Sprintf("Unknown Payload Protocol Identifier: %d", p)
	}
}

func (*PayloadData) isChunk() {}

// Header returns the chunk header. Only the defined flag bits are set,
// reserved bits are 0 on transmit.
func (p *PayloadData) Header() ChunkHeader {
	flags := uint8(0)
	if p.EndingFragment {
		flags |= payloadDataEndingFragmentBitmask
	}

	if p.BeginningFragment {
		flags |= payloadDataBeginingFragmentBitmask
	}

	if p.Unordered {
		flags |= payloadDataUnorderedBitmask
	}

	if p.ImmediateSack {
		flags |= payloadDataImmediateSACK
	}

	return ChunkHeader{Type: ChunkTypePayloadData, Flags: flags, ValueLength: p.ValueLength()}
}

func (p *PayloadData) ValueLength() int {
	return payloadDataHeaderSize + len(p.UserData)
}

func (p *PayloadData) Unmarshal(raw []byte) error {
	header, value, err := unmarshalChunk(raw, ChunkTypePayloadData, ErrChunkTypeNotPayloadData)
	if err != nil {
		return err
	}

	if len(value) < payloadDataHeaderSize {
		return fmt.Errorf("%w: %d", ErrChunkPayloadSmall, len(value))
	}

	// L > 0 (RFC 9260 section 3.3.1)
	if len(value) == payloadDataHeaderSize {
		return ErrDATAZeroUserData
	}

	p.ImmediateSack = header.Flags&payloadDataImmediateSACK != 0
	p.Unordered = header.Flags&payloadDataUnorderedBitmask != 0
	p.BeginningFragment = header.Flags&payloadDataBeginingFragmentBitmask != 0
	p.EndingFragment = header.Flags&payloadDataEndingFragmentBitmask != 0

	p.TSN = binary.BigEndian.Uint32(value[0:])
	p.StreamIdentifier = binary.BigEndian.Uint16(value[4:])
	p.StreamSequenceNumber = binary.BigEndian.Uint16(value[6:])
	p.PayloadType = PayloadProtocolIdentifier(binary.BigEndian.Uint32(value[8:]))
	p.UserData = value[payloadDataHeaderSize:]

	return nil
}

func (p *PayloadData) MarshalTo(buf []byte) ([]byte, error) {
	// L > 0 (RFC 9260 section 3.3.1)
	if len(p.UserData) == 0 {
		return buf, ErrDATAZeroUserData
	}

	buf, err := p.Header().MarshalTo(buf)
	if err != nil {
		return buf, err
	}

	buf = binary.BigEndian.AppendUint32(buf, p.TSN)
	buf = binary.BigEndian.AppendUint16(buf, p.StreamIdentifier)
	buf = binary.BigEndian.AppendUint16(buf, p.StreamSequenceNumber)
	buf = binary.BigEndian.AppendUint32(buf, uint32(p.PayloadType))

	return append(buf, p.UserData...), nil
}

func (p *PayloadData) Marshal() ([]byte, error) {
	return Marshal(p)
}

func (p *PayloadData) Check() error {
	if len(p.UserData) == 0 {
		return ErrDATAZeroUserData
	}

	return nil
}

// IsFragmented reports whether the chunk carries only part of a user message.
func (p *PayloadData) IsFragmented() bool {
	return !p.BeginningFragment || !p.EndingFragment
}

// String makes PayloadData printable.
func (p *PayloadData) String() string {
	return fmt.Sprintf("%s\n%d", p.Header(), p.TSN)
}
