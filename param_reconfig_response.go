// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ReconfigResponse is used by the receiver of a Re-configuration Request
// Parameter to respond to the request (RFC 6525 section 4.4).
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|     Parameter Type = 16       |      Parameter Length         |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|         Re-configuration Response Sequence Number             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                            Result                             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                   Sender's Next TSN (optional)                |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                  Receiver's Next TSN (optional)               |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type ReconfigResponse struct {
	// ReconfigResponseSequenceNumber is copied from the request to tie the
	// response to it.
	ReconfigResponseSequenceNumber uint32
	Result                         ReconfigResult

	// Optional fields. ReceiverNextTSN requires SenderNextTSN.
	SenderNextTSNPresent   bool
	SenderNextTSN          uint32
	ReceiverNextTSNPresent bool
	ReceiverNextTSN        uint32
}

// ReconfigResult is the outcome of a reconfiguration request.
type ReconfigResult uint32

// ReconfigResult enums.
const (
	ReconfigResultSuccessNOP                    ReconfigResult = 0
	ReconfigResultSuccessPerformed              ReconfigResult = 1
	ReconfigResultDenied                        ReconfigResult = 2
	ReconfigResultErrorWrongSSN                 ReconfigResult = 3
	ReconfigResultErrorRequestAlreadyInProgress ReconfigResult = 4
	ReconfigResultErrorBadSequenceNumber        ReconfigResult = 5
	ReconfigResultInProgress                    ReconfigResult = 6
)

// Reconfiguration response errors.
var (
	ErrReconfigRespParamTooShort      = errors.New("reconfig response parameter too short")
	ErrReconfigRespParamInvalidLength = errors.New("reconfig response parameter invalid length")
	ErrReconfigRespParamInvalidCombo  = errors.New("receiverNextTSN present requires senderNextTSN present")
)

func (t ReconfigResult) String() string {
	switch t {
	case ReconfigResultSuccessNOP:
		return "0: Success - Nothing to do"
	case ReconfigResultSuccessPerformed:
		return "1: Success - Performed"
	case ReconfigResultDenied:
		return "2: Denied"
	case ReconfigResultErrorWrongSSN:
		return "3: Error - Wrong SSN"
	case ReconfigResultErrorRequestAlreadyInProgress:
		return "4: Error - Request already in progress"
	case ReconfigResultErrorBadSequenceNumber:
		return "5: Error - Bad Sequence Number"
	case ReconfigResultInProgress:
		return "6: In progress"
	default:
		return fmt.Sprintf("Unknown ReconfigResult: %d", t)
	}
}

func (r *ReconfigResponse) Type() ParamType { return ParamTypeReconfigResponse }

func (r *ReconfigResponse) ValueLength() int {
	valueLen := 8
	if r.SenderNextTSNPresent {
		valueLen += 4
	}
	if r.ReceiverNextTSNPresent {
		valueLen += 4
	}

	return valueLen
}

func (r *ReconfigResponse) MarshalTo(buf []byte) ([]byte, error) {
	// Enforce ordering: receiverNextTSN can only be present if senderNextTSN is present.
	if r.ReceiverNextTSNPresent && !r.SenderNextTSNPresent {
		return buf, ErrReconfigRespParamInvalidCombo
	}

	buf, err := appendParamHeader(buf, r)
	if err != nil {
		return buf, err
	}

	buf = binary.BigEndian.AppendUint32(buf, r.ReconfigResponseSequenceNumber)
	buf = binary.BigEndian.AppendUint32(buf, uint32(r.Result))
	if r.SenderNextTSNPresent {
		buf = binary.BigEndian.AppendUint32(buf, r.SenderNextTSN)
	}
	if r.ReceiverNextTSNPresent {
		buf = binary.BigEndian.AppendUint32(buf, r.ReceiverNextTSN)
	}

	return buf, nil
}

func (r *ReconfigResponse) unmarshal(value []byte) error {
	if len(value) < 8 {
		return ErrReconfigRespParamTooShort
	}

	switch len(value) {
	case 8, 12, 16:
	default:
		return fmt.Errorf("%w: %d", ErrReconfigRespParamInvalidLength, len(value))
	}

	r.ReconfigResponseSequenceNumber = binary.BigEndian.Uint32(value)
	r.Result = ReconfigResult(binary.BigEndian.Uint32(value[4:]))

	// Optional fields: Sender's Next TSN, Receiver's Next TSN.
	if len(value) >= 12 {
		r.SenderNextTSNPresent = true
		r.SenderNextTSN = binary.BigEndian.Uint32(value[8:])
	}
	if len(value) == 16 {
		r.ReceiverNextTSNPresent = true
		r.ReceiverNextTSN = binary.BigEndian.Uint32(value[12:])
	}

	return nil
}

func (r *ReconfigResponse) String() string {
	return fmt.Sprintf("%s: respRSN=%d result=%s", ParamTypeReconfigResponse, r.ReconfigResponseSequenceNumber, r.Result)
}
