// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"encoding/binary"
	"fmt"
)

// IncomingResetRequest asks the peer to reset its outgoing streams, i.e. the
// sender's incoming ones (RFC 6525 section 4.2).
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|     Parameter Type = 14       |  Parameter Length = 8 + 2 * N |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|          Re-configuration Request Sequence Number             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|  Stream Number 1 (optional)   |    Stream Number 2 (optional) |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type IncomingResetRequest struct {
	ReconfigRequestSequenceNumber uint32
	StreamIdentifiers             []uint16
}

func (r *IncomingResetRequest) Type() ParamType { return ParamTypeIncomingResetRequest }

func (r *IncomingResetRequest) ValueLength() int { return 4 + 2*len(r.StreamIdentifiers) }

func (r *IncomingResetRequest) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendParamHeader(buf, r)
	if err != nil {
		return buf, err
	}
	buf = binary.BigEndian.AppendUint32(buf, r.ReconfigRequestSequenceNumber)

	return appendStreamIdentifiers(buf, r.StreamIdentifiers), nil
}

func (r *IncomingResetRequest) unmarshal(value []byte) error {
	if len(value) < 4 {
		return ErrSSNResetRequestParamTooShort
	}

	ids, err := parseStreamIdentifiers(value[4:])
	if err != nil {
		return err
	}

	r.ReconfigRequestSequenceNumber = binary.BigEndian.Uint32(value)
	r.StreamIdentifiers = ids

	return nil
}

func (r *IncomingResetRequest) String() string {
	return fmt.Sprintf("%s: rsn=%d streams=%v", ParamTypeIncomingResetRequest,
		r.ReconfigRequestSequenceNumber, r.StreamIdentifiers)
}

// SSNTSNResetRequest asks the peer to reset all stream sequence numbers and
// the TSN (RFC 6525 section 4.3).
type SSNTSNResetRequest struct {
	ReconfigRequestSequenceNumber uint32
}

func (r *SSNTSNResetRequest) Type() ParamType { return ParamTypeSSNTSNResetRequest }

func (r *SSNTSNResetRequest) ValueLength() int { return 4 }

func (r *SSNTSNResetRequest) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendParamHeader(buf, r)
	if err != nil {
		return buf, err
	}

	return binary.BigEndian.AppendUint32(buf, r.ReconfigRequestSequenceNumber), nil
}

func (r *SSNTSNResetRequest) unmarshal(value []byte) error {
	if err := checkParamValueLength(value, 4); err != nil {
		return err
	}
	r.ReconfigRequestSequenceNumber = binary.BigEndian.Uint32(value)

	return nil
}

func (r *SSNTSNResetRequest) String() string {
	return fmt.Sprintf("%s: rsn=%d", ParamTypeSSNTSNResetRequest, r.ReconfigRequestSequenceNumber)
}

// AddStreamsRequest asks for new outgoing streams (type 17) or asks the peer
// to add outgoing streams toward the sender (type 18). RFC 6525 section 4.5/4.6.
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|   Parameter Type = 17 or 18   |      Parameter Length = 12    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|          Re-configuration Request Sequence Number             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|      Number of new streams    |         Reserved              |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type AddStreamsRequest struct {
	// Incoming selects type 18 instead of 17.
	Incoming                      bool
	ReconfigRequestSequenceNumber uint32
	NumberOfNewStreams            uint16
}

func (r *AddStreamsRequest) Type() ParamType {
	if r.Incoming {
		return ParamTypeAddIncomingStreamsRequest
	}

	return ParamTypeAddOutgoingStreamsRequest
}

func (r *AddStreamsRequest) ValueLength() int { return 8 }

func (r *AddStreamsRequest) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendParamHeader(buf, r)
	if err != nil {
		return buf, err
	}
	buf = binary.BigEndian.AppendUint32(buf, r.ReconfigRequestSequenceNumber)
	buf = binary.BigEndian.AppendUint16(buf, r.NumberOfNewStreams)

	return append(buf, 0, 0), nil
}

func (r *AddStreamsRequest) unmarshal(value []byte) error {
	if err := checkParamValueLength(value, 8); err != nil {
		return err
	}
	r.ReconfigRequestSequenceNumber = binary.BigEndian.Uint32(value)
	r.NumberOfNewStreams = binary.BigEndian.Uint16(value[4:])

	return nil
}

func (r *AddStreamsRequest) String() string {
	return fmt.Sprintf("%s: rsn=%d new=%d", r.Type(), r.ReconfigRequestSequenceNumber, r.NumberOfNewStreams)
}
