// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadData(t *testing.T) {
	raw := []byte{
		0x00, 0x03, 0x00, 0x13,
		0x00, 0x00, 0x00, 0x01, // TSN
		0x00, 0x02, 0x00, 0x03, // SID, SSN
		0x00, 0x00, 0x00, 0x33, // PPID
		0x68, 0x69, 0x21,
	}

	p := &PayloadData{}
	require.NoError(t, p.Unmarshal(raw))
	assert.True(t, p.BeginningFragment)
	assert.True(t, p.EndingFragment)
	assert.False(t, p.Unordered)
	assert.False(t, p.ImmediateSack)
	assert.False(t, p.IsFragmented())
	assert.Equal(t, uint32(1), p.TSN)
	assert.Equal(t, uint16(2), p.StreamIdentifier)
	assert.Equal(t, uint16(3), p.StreamSequenceNumber)
	assert.Equal(t, PayloadTypeWebRTCString, p.PayloadType)
	assert.Equal(t, []byte("hi!"), p.UserData)
	assert.Equal(t, len(raw)-chunkHeaderSize, p.ValueLength())

	b, err := p.Marshal()
	require.NoError(t, err)
	assert.Equal(t, raw, b)
}

func TestPayloadData_Flags(t *testing.T) {
	for _, tc := range []struct {
		flags uint8
		data  PayloadData
	}{
		{0x01, PayloadData{EndingFragment: true}},
		{0x02, PayloadData{BeginningFragment: true}},
		{0x04, PayloadData{Unordered: true}},
		{0x08, PayloadData{ImmediateSack: true}},
		{0x0f, PayloadData{EndingFragment: true, BeginningFragment: true, Unordered: true, ImmediateSack: true}},
	} {
		tc.data.UserData = []byte{0x01}
		assert.Equal(t, tc.flags, tc.data.Header().Flags)

		b, err := tc.data.Marshal()
		require.NoError(t, err)

		// reserved bits are ignored on receive
		b[1] |= 0xf0
		var p PayloadData
		require.NoError(t, p.Unmarshal(b))
		assert.Equal(t, tc.data, p)
	}
}

func TestPayloadData_Failure(t *testing.T) {
	tt := []struct {
		name   string
		binary []byte
		err    error
	}{
		{"too small", []byte{0x00, 0x03, 0x00, 0x08, 0x00, 0x00, 0x00, 0x01}, ErrChunkPayloadSmall},
		{
			"no user data",
			[]byte{0x00, 0x03, 0x00, 0x10, 0x00, 0x00, 0x00, 0x01, 0x00, 0x02, 0x00, 0x03, 0x00, 0x00, 0x00, 0x33},
			ErrDATAZeroUserData,
		},
		{"wrong type", []byte{0x01, 0x00, 0x00, 0x04}, ErrChunkTypeNotPayloadData},
	}

	for _, tc := range tt {
		err := (&PayloadData{}).Unmarshal(tc.binary)
		assert.ErrorIsf(t, err, tc.err, "%s", tc.name)
	}

	_, err := (&PayloadData{}).Marshal()
	assert.ErrorIs(t, err, ErrDATAZeroUserData)
	assert.ErrorIs(t, (&PayloadData{}).Check(), ErrDATAZeroUserData)
}

func TestPayloadProtocolIdentifier_String(t *testing.T) {
	assert.Equal(t, "WebRTC DCEP", PayloadTypeWebRTCDCEP.String())
	assert.Equal(t, "WebRTC Binary (Empty)", PayloadTypeWebRTCBinaryEmpty.String())
	assert.Equal(t, "Unknown Payload Protocol Identifier: 7", PayloadProtocolIdentifier(7).String())
}
