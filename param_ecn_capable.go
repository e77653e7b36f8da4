// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

// ECNCapable announces Explicit Congestion Notification support in an INIT
// or INIT ACK (RFC 9260 appendix A). It has no value.
type ECNCapable struct{}

func (r *ECNCapable) Type() ParamType { return ParamTypeECNCapable }

func (r *ECNCapable) ValueLength() int { return 0 }

func (r *ECNCapable) MarshalTo(buf []byte) ([]byte, error) {
	return appendParamHeader(buf, r)
}

func (r *ECNCapable) unmarshal(value []byte) error {
	return checkParamValueLength(value, 0)
}

func (r *ECNCapable) String() string {
	return ParamTypeECNCapable.String()
}
