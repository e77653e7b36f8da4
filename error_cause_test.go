// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCauseCode_String(t *testing.T) {
	cases := []struct {
		code     ErrorCauseCode
		expected string
	}{
		{CauseInvalidStreamIdentifier, "Invalid Stream Identifier"},
		{CauseMissingMandatoryParameter, "Missing Mandatory Parameter"},
		{CauseStaleCookieError, "Stale Cookie Error"},
		{CauseOutOfResource, "Out of Resource"},
		{CauseUnresolvableAddress, "Unresolvable Address"},
		{CauseUnrecognizedChunkType, "Unrecognized Chunk Type"},
		{CauseInvalidMandatoryParameter, "Invalid Mandatory Parameter"},
		{CauseUnrecognizedParameters, "Unrecognized Parameters"},
		{CauseNoUserData, "No User Data"},
		{CauseCookieReceivedWhileShuttingDown, "Cookie Received While Shutting Down"},
		{CauseRestartOfAnAssociationWithNewAddresses, "Restart of an Association with New Addresses"},
		{CauseUserInitiatedAbort, "User Initiated Abort"},
		{CauseProtocolViolation, "Protocol Violation"},
		{ErrorCauseCode(0xFFFF), "Unknown CauseCode: 65535"},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.expected, tc.code.String(), "stringer mismatch for code %d", tc.code)
	}
}

func TestParseErrorCause_TooShort(t *testing.T) {
	_, err := ParseErrorCause([]byte{0x00, 0x01, 0x00})
	assert.ErrorIs(t, err, ErrCauseTooShort)
}

func TestParseErrorCause_LengthInvalid_TooSmallField(t *testing.T) {
	raw := make([]byte, 4)
	binary.BigEndian.PutUint16(raw[2:], 3)

	_, err := ParseErrorCause(raw)
	assert.ErrorIs(t, err, ErrCauseLengthInvalid)
}

func TestParseErrorCause_LengthInvalid_ClaimsMoreThanSlice(t *testing.T) {
	raw := make([]byte, 6)
	binary.BigEndian.PutUint16(raw[2:], 8)

	_, err := ParseErrorCause(raw)
	assert.ErrorIs(t, err, ErrCauseLengthInvalid)
}

func TestParseErrorCause_UnknownCodeKeptRaw(t *testing.T) {
	raw := []byte{0xFF, 0xFF, 0x00, 0x05, 0x2A}

	cause, err := ParseErrorCause(raw)
	require.NoError(t, err)
	assert.Equal(t, &RawErrorCause{CauseCode: 0xFFFF, Value: []byte{0x2A}}, cause)

	b, err := MarshalErrorCause(cause)
	require.NoError(t, err)
	assert.Equal(t, raw, b)
}

func TestParseErrorCause_IgnoresTrailingBytes(t *testing.T) {
	raw := []byte{0x00, 0x09, 0x00, 0x08, 0x01, 0x02, 0x03, 0x04, 0x09, 0x09, 0x09, 0x09}

	cause, err := ParseErrorCause(raw)
	require.NoError(t, err)
	assert.Equal(t, &NoUserData{TSN: 0x01020304}, cause)
}

func TestErrorCause_RoundTrip(t *testing.T) {
	tt := []struct {
		name  string
		cause ErrorCause
		raw   []byte
	}{
		{
			"invalid stream identifier",
			&InvalidStreamIdentifier{StreamIdentifier: 7},
			[]byte{0x00, 0x01, 0x00, 0x08, 0x00, 0x07, 0x00, 0x00},
		},
		{
			"missing mandatory parameter",
			&MissingMandatoryParameter{ParamTypes: []ParamType{ParamTypeStateCookie}},
			[]byte{0x00, 0x02, 0x00, 0x0a, 0x00, 0x00, 0x00, 0x01, 0x00, 0x07},
		},
		{
			"stale cookie",
			&StaleCookieError{Staleness: 500},
			[]byte{0x00, 0x03, 0x00, 0x08, 0x00, 0x00, 0x01, 0xf4},
		},
		{"out of resource", &OutOfResource{}, []byte{0x00, 0x04, 0x00, 0x04}},
		{
			"unrecognized chunk type",
			&UnrecognizedChunkType{Chunk: []byte{0xc0, 0x0, 0x0, 0x8, 0x0, 0x0, 0x0, 0x3}},
			[]byte{0x00, 0x06, 0x00, 0x0c, 0xc0, 0x0, 0x0, 0x8, 0x0, 0x0, 0x0, 0x3},
		},
		{"invalid mandatory parameter", &InvalidMandatoryParameter{}, []byte{0x00, 0x07, 0x00, 0x04}},
		{
			"unrecognized parameters",
			&UnrecognizedParameters{Params: []byte{0x80, 0x0a, 0x00, 0x04}},
			[]byte{0x00, 0x08, 0x00, 0x08, 0x80, 0x0a, 0x00, 0x04},
		},
		{"no user data", &NoUserData{TSN: 3}, []byte{0x00, 0x09, 0x00, 0x08, 0x00, 0x00, 0x00, 0x03}},
		{"cookie while shutting down", &CookieReceivedWhileShuttingDown{}, []byte{0x00, 0x0a, 0x00, 0x04}},
		{
			"user initiated abort",
			&UserInitiatedAbort{UpperLayerAbortReason: []byte("bye")},
			[]byte{0x00, 0x0c, 0x00, 0x07, 'b', 'y', 'e'},
		},
		{
			"protocol violation",
			&ProtocolViolation{AdditionalInformation: []byte("violation: unexpected state")},
			append([]byte{0x00, 0x0d, 0x00, 0x1f}, []byte("violation: unexpected state")...),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			b, err := MarshalErrorCause(tc.cause)
			require.NoError(t, err)
			assert.Equal(t, tc.raw, b)
			assert.Equal(t, len(tc.raw)-errorCauseHeaderLength, tc.cause.ValueLength())

			got, err := ParseErrorCause(b)
			require.NoError(t, err)
			assert.Equal(t, tc.cause, got)
			assert.Equal(t, tc.cause.Code(), got.Code())
			assert.NotEmpty(t, got.String())
		})
	}
}

func TestErrorCause_InvalidValueSize(t *testing.T) {
	tt := []struct {
		name string
		raw  []byte
	}{
		{"out of resource with value", []byte{0x00, 0x04, 0x00, 0x05, 0x01}},
		{"stream identifier short", []byte{0x00, 0x01, 0x00, 0x06, 0x00, 0x07}},
		{"missing params count mismatch", []byte{0x00, 0x02, 0x00, 0x08, 0x00, 0x00, 0x00, 0x02}},
		{"missing params no count", []byte{0x00, 0x02, 0x00, 0x06, 0x00, 0x00}},
		{"missing params count overflows value", []byte{0x00, 0x02, 0x00, 0x0a, 0xff, 0xff, 0xff, 0xff, 0x00, 0x07}},
		{"missing params count wraps", []byte{0x00, 0x02, 0x00, 0x0a, 0x80, 0x00, 0x00, 0x01, 0x00, 0x07}},
	}

	for _, tc := range tt {
		_, err := ParseErrorCause(tc.raw)
		assert.ErrorIsf(t, err, ErrCauseInvalidValueSize, "%s", tc.name)
	}
}

func TestErrorCauseHeader_MarshalTo_TooLargeValue(t *testing.T) {
	_, err := MarshalErrorCause(&ProtocolViolation{AdditionalInformation: make([]byte, maxErrorCauseValueLen+1)})
	assert.ErrorIs(t, err, ErrCauseLengthInvalid)
}

func TestErrorCauseHeader_String(t *testing.T) {
	h := errorCauseHeader{code: CauseCookieReceivedWhileShuttingDown}
	assert.Equal(t, "Cookie Received While Shutting Down", h.String())
}

func TestUnmarshalErrorCauses(t *testing.T) {
	// 7-byte cause padded to 8, then a 4-byte cause
	body := []byte{
		0x00, 0x0c, 0x00, 0x07, 'b', 'y', 'e', 0x00,
		0x00, 0x04, 0x00, 0x04,
	}

	causes, err := unmarshalErrorCauses(body)
	require.NoError(t, err)
	require.Len(t, causes, 2)
	assert.Equal(t, len(body), errorCausesValueLength(causes))

	out, err := marshalErrorCauses(nil, causes)
	require.NoError(t, err)
	assert.Equal(t, body, out)

	t.Run("non-zero padding", func(t *testing.T) {
		bad := append([]byte{}, body...)
		bad[7] = 0x01
		_, err := unmarshalErrorCauses(bad)
		assert.ErrorIs(t, err, ErrCauseTrailingNonZero)
	})

	t.Run("truncated header", func(t *testing.T) {
		_, err := unmarshalErrorCauses([]byte{0x00, 0x04, 0x00})
		assert.ErrorIs(t, err, ErrCauseTooShort)
	})
}
