// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import "fmt"

// ProtocolViolation reports a violation not covered by another cause.
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|         Cause Code=13         |      Cause Length=Variable    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	/                    Additional Information                     /
//	\                                                               \
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type ProtocolViolation struct {
	AdditionalInformation []byte
}

func (e *ProtocolViolation) Code() ErrorCauseCode { return CauseProtocolViolation }

func (e *ProtocolViolation) ValueLength() int { return len(e.AdditionalInformation) }

func (e *ProtocolViolation) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendErrorCauseHeader(buf, e)
	if err != nil {
		return buf, err
	}

	return append(buf, e.AdditionalInformation...), nil
}

func (e *ProtocolViolation) unmarshal(value []byte) error {
	e.AdditionalInformation = value

	return nil
}

// String makes ProtocolViolation printable.
func (e *ProtocolViolation) String() string {
	return fmt.Sprintf("%s: %s", CauseProtocolViolation, e.AdditionalInformation)
}

// UserInitiatedAbort carries the upper layer's reason for an ABORT.
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|         Cause Code=12         |      Cause Length=Variable    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	/                    Upper Layer Abort Reason                   /
//	\                                                               \
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type UserInitiatedAbort struct {
	UpperLayerAbortReason []byte
}

func (e *UserInitiatedAbort) Code() ErrorCauseCode { return CauseUserInitiatedAbort }

func (e *UserInitiatedAbort) ValueLength() int { return len(e.UpperLayerAbortReason) }

func (e *UserInitiatedAbort) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendErrorCauseHeader(buf, e)
	if err != nil {
		return buf, err
	}

	return append(buf, e.UpperLayerAbortReason...), nil
}

func (e *UserInitiatedAbort) unmarshal(value []byte) error {
	e.UpperLayerAbortReason = value

	return nil
}

// String makes UserInitiatedAbort printable.
func (e *UserInitiatedAbort) String() string {
	return fmt.Sprintf("%s: %s", CauseUserInitiatedAbort, e.UpperLayerAbortReason)
}
