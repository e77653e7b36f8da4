// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"encoding/binary"
	"fmt"
)

// InvalidStreamIdentifier reports DATA sent to a stream that does not exist.
//
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|     Cause Code = 1            |      Cause Length = 8         |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|        Stream Identifier      |         (Reserved)            |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type InvalidStreamIdentifier struct {
	StreamIdentifier uint16
}

func (e *InvalidStreamIdentifier) Code() ErrorCauseCode { return CauseInvalidStreamIdentifier }

func (e *InvalidStreamIdentifier) ValueLength() int { return 4 }

func (e *InvalidStreamIdentifier) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendErrorCauseHeader(buf, e)
	if err != nil {
		return buf, err
	}
	buf = binary.BigEndian.AppendUint16(buf, e.StreamIdentifier)

	return append(buf, 0, 0), nil
}

func (e *InvalidStreamIdentifier) unmarshal(value []byte) error {
	if err := checkCauseValueLength(value, 4); err != nil {
		return err
	}
	e.StreamIdentifier = binary.BigEndian.Uint16(value)

	return nil
}

func (e *InvalidStreamIdentifier) String() string {
	return fmt.Sprintf("%s: stream %d", CauseInvalidStreamIdentifier, e.StreamIdentifier)
}

// NoUserData reports a DATA chunk without user data.
//
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|     Cause Code = 9            |      Cause Length = 8         |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	/                  TSN value                                    /
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type NoUserData struct {
	TSN uint32
}

func (e *NoUserData) Code() ErrorCauseCode { return CauseNoUserData }

func (e *NoUserData) ValueLength() int { return 4 }

func (e *NoUserData) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendErrorCauseHeader(buf, e)
	if err != nil {
		return buf, err
	}

	return binary.BigEndian.AppendUint32(buf, e.TSN), nil
}

func (e *NoUserData) unmarshal(value []byte) error {
	if err := checkCauseValueLength(value, 4); err != nil {
		return err
	}
	e.TSN = binary.BigEndian.Uint32(value)

	return nil
}

func (e *NoUserData) String() string {
	return fmt.Sprintf("%s: TSN %d", CauseNoUserData, e.TSN)
}

// StaleCookieError reports a cookie that expired. Staleness is how late it
// arrived, in microseconds.
type StaleCookieError struct {
	Staleness uint32
}

func (e *StaleCookieError) Code() ErrorCauseCode { return CauseStaleCookieError }

func (e *StaleCookieError) ValueLength() int { return 4 }

func (e *StaleCookieError) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendErrorCauseHeader(buf, e)
	if err != nil {
		return buf, err
	}

	return binary.BigEndian.AppendUint32(buf, e.Staleness), nil
}

func (e *StaleCookieError) unmarshal(value []byte) error {
	if err := checkCauseValueLength(value, 4); err != nil {
		return err
	}
	e.Staleness = binary.BigEndian.Uint32(value)

	return nil
}

func (e *StaleCookieError) String() string {
	return fmt.Sprintf("%s: %dus", CauseStaleCookieError, e.Staleness)
}

// MissingMandatoryParameter lists the mandatory parameters missing from an
// INIT or INIT ACK.
//
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|     Cause Code = 2            |      Cause Length = 8 + N * 2 |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                   Number of missing params = N                |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|   Missing Param Type #1       |   Missing Param Type #2       |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type MissingMandatoryParameter struct {
	ParamTypes []ParamType
}

func (e *MissingMandatoryParameter) Code() ErrorCauseCode { return CauseMissingMandatoryParameter }

func (e *MissingMandatoryParameter) ValueLength() int { return 4 + 2*len(e.ParamTypes) }

func (e *MissingMandatoryParameter) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendErrorCauseHeader(buf, e)
	if err != nil {
		return buf, err
	}

	buf = binary.BigEndian.AppendUint32(buf, uint32(len(e.ParamTypes))) //nolint:gosec // G115, bounded by header check
	for _, t := range e.ParamTypes {
		buf = binary.BigEndian.AppendUint16(buf, uint16(t))
	}

	return buf, nil
}

func (e *MissingMandatoryParameter) unmarshal(value []byte) error {
	if len(value) < 4 {
		return fmt.Errorf("%w: %d bytes", ErrCauseInvalidValueSize, len(value))
	}

	n := binary.BigEndian.Uint32(value)
	if uint64(n) > uint64((len(value)-4)/2) {
		return fmt.Errorf("%w: %d missing params in %d bytes", ErrCauseInvalidValueSize, n, len(value))
	}
	if err := checkCauseValueLength(value, 4+2*int(n)); err != nil {
		return err
	}

	e.ParamTypes = nil
	for i := 0; i < int(n); i++ {
		e.ParamTypes = append(e.ParamTypes, ParamType(binary.BigEndian.Uint16(value[4+2*i:])))
	}

	return nil
}

func (e *MissingMandatoryParameter) String() string {
	return fmt.Sprintf("%s: %v", CauseMissingMandatoryParameter, e.ParamTypes)
}
