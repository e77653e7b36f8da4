// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import "fmt"

// RawErrorCause holds a cause whose code is not modeled, kept verbatim.
type RawErrorCause struct {
	CauseCode ErrorCauseCode
	Value     []byte
}

func (e *RawErrorCause) Code() ErrorCauseCode { return e.CauseCode }

func (e *RawErrorCause) ValueLength() int { return len(e.Value) }

func (e *RawErrorCause) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendErrorCauseHeader(buf, e)
	if err != nil {
		return buf, err
	}

	return append(buf, e.Value...), nil
}

func (e *RawErrorCause) unmarshal(value []byte) error {
	e.Value = value

	return nil
}

func (e *RawErrorCause) String() string {
	return fmt.Sprintf("%s (%d bytes)", e.CauseCode, len(e.Value))
}
