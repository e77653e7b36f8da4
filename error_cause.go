// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"errors"
	"fmt"
)

// ErrorCauseCode is a cause code that appears in either an ERROR or ABORT chunk (RFC 9260 section 3.3.10).
type ErrorCauseCode uint16

// ErrorCause is one TLV of an ERROR or ABORT chunk. Codes this package does
// not model decode to *RawErrorCause.
type ErrorCause interface {
	fmt.Stringer

	Code() ErrorCauseCode
	ValueLength() int
	MarshalTo(buf []byte) ([]byte, error)

	unmarshal(value []byte) error
}

// Errors for building/validating error causes.
var (
	ErrCauseTooShort         = errors.New("error cause too short")
	ErrCauseLengthInvalid    = errors.New("error cause length invalid")
	ErrCauseTrailingNonZero  = errors.New("non-zero trailing bytes after last error cause")
	ErrCauseInvalidValueSize = errors.New("error cause value has invalid length")
)

// RFC 9260 section 3.3.10 "Error Causes".
const (
	CauseInvalidStreamIdentifier                ErrorCauseCode = 1
	CauseMissingMandatoryParameter              ErrorCauseCode = 2
	CauseStaleCookieError                       ErrorCauseCode = 3
	CauseOutOfResource                          ErrorCauseCode = 4
	CauseUnresolvableAddress                    ErrorCauseCode = 5
	CauseUnrecognizedChunkType                  ErrorCauseCode = 6
	CauseInvalidMandatoryParameter              ErrorCauseCode = 7
	CauseUnrecognizedParameters                 ErrorCauseCode = 8
	CauseNoUserData                             ErrorCauseCode = 9
	CauseCookieReceivedWhileShuttingDown        ErrorCauseCode = 10
	CauseRestartOfAnAssociationWithNewAddresses ErrorCauseCode = 11
	CauseUserInitiatedAbort                     ErrorCauseCode = 12
	CauseProtocolViolation                      ErrorCauseCode = 13
)

func (e ErrorCauseCode) String() string { //nolint:cyclop
	switch e {
	case CauseInvalidStreamIdentifier:
		return "Invalid Stream Identifier"
	case CauseMissingMandatoryParameter:
		return "Missing Mandatory Parameter"
	case CauseStaleCookieError:
		return "Stale Cookie Error"
	case CauseOutOfResource:
		return "Out of Resource"
	case CauseUnresolvableAddress:
		return "Unresolvable Address"
	case CauseUnrecognizedChunkType:
		return "Unrecognized Chunk Type"
	case CauseInvalidMandatoryParameter:
		return "Invalid Mandatory Parameter"
	case CauseUnrecognizedParameters:
		return "Unrecognized Parameters"
	case CauseNoUserData:
		return "No User Data"
	case CauseCookieReceivedWhileShuttingDown:
		return "Cookie Received While Shutting Down"
	case CauseRestartOfAnAssociationWithNewAddresses:
		return "Restart of an Association with New Addresses"
	case CauseUserInitiatedAbort:
		return "User Initiated Abort"
	case CauseProtocolViolation:
		return "Protocol Violation"
	default:
		return fmt.Sprintf("Unknown CauseCode: %d", uint16(e))
	}
}

func newErrorCause(code ErrorCauseCode) ErrorCause { //nolint:cyclop
	switch code {
	case CauseInvalidStreamIdentifier:
		return &InvalidStreamIdentifier{}
	case CauseMissingMandatoryParameter:
		return &MissingMandatoryParameter{}
	case CauseStaleCookieError:
		return &StaleCookieError{}
	case CauseOutOfResource:
		return &OutOfResource{}
	case CauseUnrecognizedChunkType:
		return &UnrecognizedChunkType{}
	case CauseInvalidMandatoryParameter:
		return &InvalidMandatoryParameter{}
	case CauseUnrecognizedParameters:
		return &UnrecognizedParameters{}
	case CauseNoUserData:
		return &NoUserData{}
	case CauseCookieReceivedWhileShuttingDown:
		return &CookieReceivedWhileShuttingDown{}
	case CauseUserInitiatedAbort:
		return &UserInitiatedAbort{}
	case CauseProtocolViolation:
		return &ProtocolViolation{}
	default:
		return &RawErrorCause{CauseCode: code}
	}
}

// ParseErrorCause decodes the error cause at the start of raw. Padding after
// the cause is not consumed.
func ParseErrorCause(raw []byte) (ErrorCause, error) {
	header, value, err := unmarshalErrorCauseHeader(raw)
	if err != nil {
		return nil, err
	}

	return parseErrorCauseValue(header, value)
}

func parseErrorCauseValue(header errorCauseHeader, value []byte) (ErrorCause, error) {
	cause := newErrorCause(header.code)
	if err := cause.unmarshal(value); err != nil {
		return nil, fmt.Errorf("%s: %w", header.code, err)
	}

	return cause, nil
}

// MarshalErrorCause encodes cause into a new buffer.
func MarshalErrorCause(cause ErrorCause) ([]byte, error) {
	return cause.MarshalTo(make([]byte, 0, errorCauseHeaderLength+cause.ValueLength()))
}

func appendErrorCauseHeader(buf []byte, cause ErrorCause) ([]byte, error) {
	return errorCauseHeader{code: cause.Code(), valueLength: cause.ValueLength()}.marshalTo(buf)
}

func checkCauseValueLength(value []byte, want int) error {
	if len(value) != want {
		return fmt.Errorf("%w: %d bytes, expected %d", ErrCauseInvalidValueSize, len(value), want)
	}

	return nil
}

// errorCausesValueLength is the encoded size of causes with every cause but
// the last padded to 4 bytes.
func errorCausesValueLength(causes []ErrorCause) int {
	n := 0
	for i, c := range causes {
		n += errorCauseHeaderLength + c.ValueLength()
		if i != len(causes)-1 {
			n = paddedLength(n)
		}
	}

	return n
}

func marshalErrorCauses(buf []byte, causes []ErrorCause) ([]byte, error) {
	for i, c := range causes {
		start := len(buf)

		var err error
		if buf, err = c.MarshalTo(buf); err != nil {
			return buf[:start], err
		}

		// Include padding for all but the last cause
		if i != len(causes)-1 {
			buf = padByte(buf, getPadding(len(buf)-start))
		}
	}

	return buf, nil
}

// unmarshalErrorCauses decodes consecutive error causes. Padding between
// causes, and after the last one, must be zero.
func unmarshalErrorCauses(body []byte) ([]ErrorCause, error) {
	var causes []ErrorCause

	offset := 0
	for offset < len(body) {
		remaining := body[offset:]
		if len(remaining) < errorCauseHeaderLength {
			if allZero(remaining) && len(causes) > 0 {
				break
			}

			return nil, fmt.Errorf("%w: %d bytes left", ErrCauseTooShort, len(remaining))
		}

		header, value, err := unmarshalErrorCauseHeader(remaining)
		if err != nil {
			return nil, err
		}

		cause, err := parseErrorCauseValue(header, value)
		if err != nil {
			return nil, err
		}
		causes = append(causes, cause)

		// skip inter-cause padding to 4-byte boundary.
		end := offset + header.length()
		next := min(paddedLength(end), len(body))
		if !allZero(body[end:next]) {
			return nil, ErrCauseTrailingNonZero
		}
		offset = next
	}

	return causes, nil
}
