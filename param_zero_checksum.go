// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ZeroChecksumAcceptable informs the receiver that the sender is willing to
// accept zero as checksum if some other error detection method is used
// instead. See RFC 9653 section 4.
//
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|   Type = 0x8001 (suggested)   |          Length = 8           |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|           Error Detection Method Identifier (EDMID)           |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type ZeroChecksumAcceptable struct {
	// EDMID names the alternate error detection method the sender is
	// willing to use for received packets.
	EDMID uint32
}

// EDMIDDTLS is the error detection method of SCTP over DTLS (RFC 9653 section 6).
const EDMIDDTLS uint32 = 1

// Zero Checksum parameter errors.
var (
	// RFC 9653 section 4: Length MUST be 8.
	ErrZeroChecksumParamInvalidLength = errors.New("zero checksum parameter length must be 8")
)

func (r *ZeroChecksumAcceptable) Type() ParamType { return ParamTypeZeroChecksumAcceptable }

func (r *ZeroChecksumAcceptable) ValueLength() int { return 4 }

func (r *ZeroChecksumAcceptable) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendParamHeader(buf, r)
	if err != nil {
		return buf, err
	}

	return binary.BigEndian.AppendUint32(buf, r.EDMID), nil
}

func (r *ZeroChecksumAcceptable) unmarshal(value []byte) error {
	if len(value) != 4 {
		return fmt.Errorf("%w: value is %d bytes", ErrZeroChecksumParamInvalidLength, len(value))
	}
	r.EDMID = binary.BigEndian.Uint32(value)

	return nil
}

func (r *ZeroChecksumAcceptable) String() string {
	return fmt.Sprintf("%s: EDMID=%d", ParamTypeZeroChecksumAcceptable, r.EDMID)
}
