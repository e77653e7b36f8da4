// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

/*
InitCommon represents an SCTP Chunk body of type INIT and INIT ACK (RFC 9260 section 3.3.2)

 0                   1                   2                   3
 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
|                         Initiate Tag                          |
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
|           Advertised Receiver Window Credit (a_rwnd)          |
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
|  Number of Outbound Streams   |  Number of Inbound Streams    |
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
|                          Initial TSN                          |
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
|                                                               |
|              Optional/Variable-Length Parameters              |
|                                                               |
+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

Fixed Parameters                     Status
----------------------------------------------
Initiate Tag                        Mandatory
Advertised Receiver Window Credit   Mandatory
Number of Outbound Streams          Mandatory
Number of Inbound Streams           Mandatory
Initial TSN                         Mandatory
*/
type InitCommon struct {
	InitiateTag                    uint32
	AdvertisedReceiverWindowCredit uint32
	NumOutboundStreams             uint16
	NumInboundStreams              uint16
	InitialTSN                     uint32

	// Params keeps the parameters in wire order. Types this package does
	// not model are kept as *RawParam.
	Params []Param
}

const (
	initChunkMinLength = 16

	// RFC 9260 section 6: a_rwnd must be at least 1500 bytes.
	minAdvertisedReceiverWindowCredit = 1500
)

// Init chunk errors.
var (
	ErrInitChunkMinLength            = errors.New("chunk init common body smaller than minimum length")
	ErrInitChunkParseParamFailed     = errors.New("failed to parse INIT/INIT ACK parameters")
	ErrInitCommonMarshalParam        = errors.New("unable to marshal parameter for INIT/INITACK")
	ErrInitInitiateTagZero           = errors.New("InitiateTag must not be 0")
	ErrInitInboundStreamRequestZero  = errors.New("inbound stream request must be > 0")
	ErrInitOutboundStreamRequestZero = errors.New("outbound stream request must be > 0")
	ErrInitAdvertisedReceiver1500    = errors.New("advertised Receiver Window Credit (a_rwnd) must be >= 1500")
	ErrInitUnknownParam              = errors.New("unknown param with stop action")
)

func (i *InitCommon) valueLength() int {
	return initChunkMinLength + paramsValueLength(i.Params)
}

func (i *InitCommon) unmarshal(value []byte) error {
	if len(value) < initChunkMinLength {
		return fmt.Errorf("%w: %d", ErrInitChunkMinLength, len(value))
	}

	i.InitiateTag = binary.BigEndian.Uint32(value[0:])
	i.AdvertisedReceiverWindowCredit = binary.BigEndian.Uint32(value[4:])
	i.NumOutboundStreams = binary.BigEndian.Uint16(value[8:])
	i.NumInboundStreams = binary.BigEndian.Uint16(value[10:])
	i.InitialTSN = binary.BigEndian.Uint32(value[12:])

	params, err := unmarshalParams(value[initChunkMinLength:])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInitChunkParseParamFailed, err)
	}
	i.Params = params

	return nil
}

func (i *InitCommon) marshalTo(buf []byte) ([]byte, error) {
	start := len(buf)

	buf = binary.BigEndian.AppendUint32(buf, i.InitiateTag)
	buf = binary.BigEndian.AppendUint32(buf, i.AdvertisedReceiverWindowCredit)
	buf = binary.BigEndian.AppendUint16(buf, i.NumOutboundStreams)
	buf = binary.BigEndian.AppendUint16(buf, i.NumInboundStreams)
	buf = binary.BigEndian.AppendUint32(buf, i.InitialTSN)

	buf, err := marshalParams(buf, i.Params)
	if err != nil {
		return buf[:start], fmt.Errorf("%w: %w", ErrInitCommonMarshalParam, err)
	}

	return buf, nil
}

func (i *InitCommon) check() error {
	if i.InitiateTag == 0 {
		return ErrInitInitiateTagZero
	}

	if i.NumInboundStreams == 0 {
		return ErrInitInboundStreamRequestZero
	}

	if i.NumOutboundStreams == 0 {
		return ErrInitOutboundStreamRequestZero
	}

	if i.AdvertisedReceiverWindowCredit < minAdvertisedReceiverWindowCredit {
		return ErrInitAdvertisedReceiver1500
	}

	for _, p := range i.UnrecognizedParams() {
		if !p.ParamType.UnrecognizedAction().Skip() {
			return fmt.Errorf("%w: %s", ErrInitUnknownParam, p.ParamType)
		}
	}

	return nil
}

// UnrecognizedParams returns the parameters whose types are not modeled.
func (i *InitCommon) UnrecognizedParams() []*RawParam {
	var out []*RawParam
	for _, p := range i.Params {
		if r, ok := p.(*RawParam); ok {
			out = append(out, r)
		}
	}

	return out
}

// ZeroChecksumEDMID returns the EDMID of the Zero Checksum Acceptable
// parameter, if one is present (RFC 9653 section 5.1).
func (i *InitCommon) ZeroChecksumEDMID() (uint32, bool) {
	for _, p := range i.Params {
		if zca, ok := p.(*ZeroChecksumAcceptable); ok {
			return zca.EDMID, true
		}
	}

	return 0, false
}

// SupportedExtensions returns the Supported Extensions parameter, if present.
func (i *InitCommon) SupportedExtensions() (*SupportedExtensions, bool) {
	for _, p := range i.Params {
		if ext, ok := p.(*SupportedExtensions); ok {
			return ext, true
		}
	}

	return nil, false
}

// String makes InitCommon printable.
func (i *InitCommon) String() string {
	format := `initiateTag: %d
	advertisedReceiverWindowCredit: %d
	numOutboundStreams: %d
	numInboundStreams: %d
	initialTSN: %d`

	res := fmt.Sprintf(format,
		i.InitiateTag,
		i.AdvertisedReceiverWindowCredit,
		i.NumOutboundStreams,
		i.NumInboundStreams,
		i.InitialTSN,
	)

	for idx, param := range i.Params {
		res += fmt.Sprintf("\nParam %d:\n %s", idx, param)
	}

	return res
}
