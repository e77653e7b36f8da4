// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

// ForwardTSNSupported announces partial reliability support (RFC 3758
// section 3.1). It has no value.
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|    Parameter Type = 49152     |  Parameter Length = 4         |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type ForwardTSNSupported struct{}

func (f *ForwardTSNSupported) Type() ParamType { return ParamTypeForwardTSNSupported }

func (f *ForwardTSNSupported) ValueLength() int { return 0 }

func (f *ForwardTSNSupported) MarshalTo(buf []byte) ([]byte, error) {
	return appendParamHeader(buf, f)
}

func (f *ForwardTSNSupported) unmarshal(value []byte) error {
	return checkParamValueLength(value, 0)
}

func (f *ForwardTSNSupported) String() string {
	return ParamTypeForwardTSNSupported.String()
}
