// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChunkForwardTSN() []byte {
	return []byte{0xc0, 0x0, 0x0, 0x8, 0x0, 0x0, 0x0, 0x3}
}

func TestChunkForwardTSN_Success(t *testing.T) {
	tt := []struct {
		binary  []byte
		streams []ForwardTSNStream
	}{
		{testChunkForwardTSN(), nil},
		{
			[]byte{0xc0, 0x0, 0x0, 0xc, 0x0, 0x0, 0x0, 0x3, 0x0, 0x4, 0x0, 0x5},
			[]ForwardTSNStream{{Identifier: 4, Sequence: 5}},
		},
		{
			[]byte{0xc0, 0x0, 0x0, 0x10, 0x0, 0x0, 0x0, 0x3, 0x0, 0x4, 0x0, 0x5, 0x0, 0x6, 0x0, 0x7},
			[]ForwardTSNStream{{Identifier: 4, Sequence: 5}, {Identifier: 6, Sequence: 7}},
		},
	}

	for i, tc := range tt {
		actual := &ForwardTSN{}
		require.NoErrorf(t, actual.Unmarshal(tc.binary), "failed to unmarshal #%d", i)
		assert.Equal(t, uint32(3), actual.NewCumulativeTSN)
		assert.Equal(t, tc.streams, actual.Streams)
		assert.Equal(t, len(tc.binary)-chunkHeaderSize, actual.ValueLength())

		b, err := actual.Marshal()
		require.NoError(t, err)
		assert.Equalf(t, tc.binary, b, "test %d not equal", i)
	}
}

func TestChunkForwardTSN_ReservedFlagsIgnored(t *testing.T) {
	actual := &ForwardTSN{}
	require.NoError(t, actual.Unmarshal([]byte{0xc0, 0xff, 0x0, 0x8, 0x0, 0x0, 0x0, 0x3}))

	b, err := actual.Marshal()
	require.NoError(t, err)
	assert.Equal(t, testChunkForwardTSN(), b)
}

func TestChunkForwardTSNUnmarshal_Failure(t *testing.T) {
	tt := []struct {
		name   string
		binary []byte
		err    error
	}{
		{"chunk header to short", []byte{0xc0}, ErrChunkHeaderTooSmall},
		{"missing New Cumulative TSN", []byte{0xc0, 0x0, 0x0, 0x4}, ErrChunkTooShort},
		{
			"missing stream sequence",
			[]byte{0xc0, 0x0, 0x0, 0xe, 0x0, 0x0, 0x0, 0x3, 0x0, 0x4, 0x0, 0x5, 0x0, 0x6},
			ErrForwardTSNInvalidStreamBlock,
		},
		{"wrong type", []byte{0x03, 0x0, 0x0, 0x8, 0x0, 0x0, 0x0, 0x3}, ErrChunkTypeNotForwardTSN},
	}

	for i, tc := range tt {
		actual := &ForwardTSN{}
		err := actual.Unmarshal(tc.binary)
		assert.ErrorIsf(t, err, tc.err, "expected unmarshal #%d: '%s' to fail.", i, tc.name)
	}
}
