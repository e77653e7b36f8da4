// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdown_Success(t *testing.T) {
	tt := []struct {
		binary []byte
		tsn    uint32
	}{
		{[]byte{0x07, 0x00, 0x00, 0x08, 0x12, 0x34, 0x56, 0x78}, 0x12345678},
	}

	for i, tc := range tt {
		actual := &Shutdown{}
		require.NoErrorf(t, actual.Unmarshal(tc.binary), "failed to unmarshal #%d", i)
		assert.Equal(t, tc.tsn, actual.CumulativeTSNAck)

		b, err := actual.Marshal()
		require.NoError(t, err)
		assert.Equalf(t, tc.binary, b, "test %d not equal", i)
	}
}

func TestShutdown_FlagsIgnored(t *testing.T) {
	actual := &Shutdown{}
	require.NoError(t, actual.Unmarshal([]byte{0x07, 0x01, 0x00, 0x08, 0x00, 0x00, 0x00, 0x01}))

	b, err := actual.Marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x07, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x01}, b)
}

func TestShutdown_Failure(t *testing.T) {
	tt := []struct {
		name   string
		binary []byte
		err    error
	}{
		{"length too short", []byte{0x07, 0x00, 0x00, 0x07, 0x12, 0x34, 0x56, 0x00}, ErrInvalidChunkSize},
		{"length too long", []byte{0x07, 0x00, 0x00, 0x09, 0x12, 0x34, 0x56, 0x78, 0x9a}, ErrInvalidChunkSize},
		{"payload too short", []byte{0x07, 0x00, 0x00, 0x08, 0x12, 0x34, 0x56}, ErrChunkHeaderNotEnoughSpace},
		{"invalid type", []byte{0x08, 0x00, 0x00, 0x08, 0x12, 0x34, 0x56, 0x78}, ErrChunkTypeNotShutdown},
	}

	for i, tc := range tt {
		actual := &Shutdown{}
		assert.ErrorIsf(t, actual.Unmarshal(tc.binary), tc.err, "expected unmarshal #%d: '%s' to fail.", i, tc.name)
	}
}
