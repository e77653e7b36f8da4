// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// Fixed value payload size before the (optional) stream list:
	// RSN(4) + ResponseRSN(4) + SenderLastTSN(4) = 12 bytes.
	paramOutgoingResetRequestStreamIdentifiersOffset = 12
)

// OutgoingResetRequest is used by the sender to request the reset of some or
// all outgoing streams. Defined in RFC 6525 section 4.1.
//
//	0                   1                   2                   3
//	0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |     Parameter Type = 13       | Parameter Length = 16 + 2 * N |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |           Re-configuration Request Sequence Number            |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |           Re-configuration Response Sequence Number           |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |                Sender's Last Assigned TSN                     |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |  Stream Number 1 (optional)   |    Stream Number 2 (optional) |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// /                            ......                             /
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type OutgoingResetRequest struct {
	// ReconfigRequestSequenceNumber identifies the request. It starts at
	// the initial TSN and grows by 1 per request sent.
	ReconfigRequestSequenceNumber uint32
	// ReconfigResponseSequenceNumber holds the request sequence number of
	// an incoming request this one implicitly answers, or the next expected
	// request sequence number minus 1.
	ReconfigResponseSequenceNumber uint32
	// SenderLastTSN is the last TSN this sender assigned.
	SenderLastTSN uint32
	// StreamIdentifiers lists the streams to reset. Empty means all streams.
	StreamIdentifiers []uint16
}

// Outgoing reset request parameter errors.
var (
	ErrSSNResetRequestParamTooShort      = errors.New("outgoing SSN reset request parameter too short")
	ErrSSNResetRequestParamInvalidLength = errors.New("outgoing SSN reset request parameter invalid length")
)

func (r *OutgoingResetRequest) Type() ParamType { return ParamTypeOutgoingResetRequest }

func (r *OutgoingResetRequest) ValueLength() int {
	return paramOutgoingResetRequestStreamIdentifiersOffset + 2*len(r.StreamIdentifiers)
}

func (r *OutgoingResetRequest) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendParamHeader(buf, r)
	if err != nil {
		return buf, err
	}

	buf = binary.BigEndian.AppendUint32(buf, r.ReconfigRequestSequenceNumber)
	buf = binary.BigEndian.AppendUint32(buf, r.ReconfigResponseSequenceNumber)
	buf = binary.BigEndian.AppendUint32(buf, r.SenderLastTSN)

	return appendStreamIdentifiers(buf, r.StreamIdentifiers), nil
}

func (r *OutgoingResetRequest) unmarshal(value []byte) error {
	// Need at least the fixed 12-byte value.
	if len(value) < paramOutgoingResetRequestStreamIdentifiersOffset {
		return ErrSSNResetRequestParamTooShort
	}

	ids, err := parseStreamIdentifiers(value[paramOutgoingResetRequestStreamIdentifiersOffset:])
	if err != nil {
		return err
	}

	r.ReconfigRequestSequenceNumber = binary.BigEndian.Uint32(value)
	r.ReconfigResponseSequenceNumber = binary.BigEndian.Uint32(value[4:])
	r.SenderLastTSN = binary.BigEndian.Uint32(value[8:])
	r.StreamIdentifiers = ids

	return nil
}

func (r *OutgoingResetRequest) String() string {
	return fmt.Sprintf("%s: rsn=%d respRSN=%d lastTSN=%d streams=%v", ParamTypeOutgoingResetRequest,
		r.ReconfigRequestSequenceNumber, r.ReconfigResponseSequenceNumber, r.SenderLastTSN, r.StreamIdentifiers)
}

func appendStreamIdentifiers(buf []byte, ids []uint16) []byte {
	for _, sID := range ids {
		buf = binary.BigEndian.AppendUint16(buf, sID)
	}

	return buf
}

// parseStreamIdentifiers decodes a list of 16-bit stream numbers. An empty
// list means "all streams" (RFC 6525) and decodes to nil.
func parseStreamIdentifiers(raw []byte) ([]uint16, error) {
	// The remaining value length must be 2*N (each stream id is 2 bytes).
	if len(raw)%2 != 0 {
		return nil, ErrSSNResetRequestParamInvalidLength
	}

	ids := make([]uint16, len(raw)/2)
	for i := range ids {
		ids[i] = binary.BigEndian.Uint16(raw[2*i:])
	}

	return nilIfEmpty(ids), nil
}
