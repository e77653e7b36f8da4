// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import "fmt"

// RawParam holds a parameter whose type is not modeled. Value is kept
// verbatim so it marshals back unchanged.
type RawParam struct {
	ParamType ParamType
	Value     []byte
}

func (r *RawParam) Type() ParamType { return r.ParamType }

func (r *RawParam) ValueLength() int { return len(r.Value) }

func (r *RawParam) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendParamHeader(buf, r)
	if err != nil {
		return buf, err
	}

	return append(buf, r.Value...), nil
}

func (r *RawParam) unmarshal(value []byte) error {
	r.Value = value

	return nil
}

func (r *RawParam) String() string {
	return fmt.Sprintf("%s (%d bytes, %s if unrecognized)", r.ParamType, len(r.Value), r.ParamType.UnrecognizedAction())
}
