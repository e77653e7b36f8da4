// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectiveAck(t *testing.T) {
	raw := []byte{
		0x03, 0x00, 0x00, 0x1c,
		0x00, 0x00, 0x00, 0x0a, // cumulative TSN ack
		0x00, 0x01, 0x00, 0x00, // a_rwnd
		0x00, 0x02, 0x00, 0x01, // 2 gap ack blocks, 1 duplicate TSN
		0x00, 0x02, 0x00, 0x03,
		0x00, 0x04, 0x00, 0x04,
		0x00, 0x00, 0x00, 0x07,
	}

	sack := &SelectiveAck{}
	require.NoError(t, sack.Unmarshal(raw))
	assert.Equal(t, uint32(10), sack.CumulativeTSNAck)
	assert.Equal(t, uint32(0x10000), sack.AdvertisedReceiverWindowCredit)
	assert.Equal(t, []GapAckBlock{{Start: 2, End: 3}, {Start: 4, End: 4}}, sack.GapAckBlocks)
	assert.Equal(t, []uint32{7}, sack.DuplicateTSN)
	assert.Equal(t, len(raw)-chunkHeaderSize, sack.ValueLength())

	b, err := sack.Marshal()
	require.NoError(t, err)
	assert.Equal(t, raw, b)
	assert.Equal(t, "SACK cumTsnAck=10 arwnd=65536 dupTsn=[7]\n gap ack: 2 - 3\n gap ack: 4 - 4", sack.String())
}

func TestSelectiveAck_Empty(t *testing.T) {
	sack := &SelectiveAck{CumulativeTSNAck: 1, AdvertisedReceiverWindowCredit: 1500}
	b, err := sack.Marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x05, 0xdc, 0x00, 0x00, 0x00, 0x00}, b)

	sack2 := &SelectiveAck{}
	require.NoError(t, sack2.Unmarshal(b))
	assert.Empty(t, sack2.GapAckBlocks)
	assert.Empty(t, sack2.DuplicateTSN)
}

func TestSelectiveAck_Failure(t *testing.T) {
	header := []byte{0x00, 0x00, 0x00, 0x0a, 0x00, 0x01, 0x00, 0x00}

	tt := []struct {
		name  string
		value []byte
		err   error
	}{
		{"too short", header, ErrSackSizeNotLargeEnoughInfo},
		{"count mismatch", append(append([]byte{}, header...), 0x00, 0x01, 0x00, 0x00), ErrSackSizeNotMatchPredicted},
		{
			"zero start",
			append(append([]byte{}, header...), 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01),
			ErrSackGapBlockInvalidRange,
		},
		{
			"end before start",
			append(append([]byte{}, header...), 0x00, 0x01, 0x00, 0x00, 0x00, 0x03, 0x00, 0x02),
			ErrSackGapBlockInvalidRange,
		},
		{
			"overlapping",
			append(append([]byte{}, header...), 0x00, 0x02, 0x00, 0x00, 0x00, 0x02, 0x00, 0x05, 0x00, 0x05, 0x00, 0x06),
			ErrSackGapBlocksNotMonotonic,
		},
	}

	for _, tc := range tt {
		err := (&SelectiveAck{}).Unmarshal(withChunkHeader(ChunkTypeSack, tc.value))
		assert.ErrorIsf(t, err, tc.err, "%s", tc.name)
	}

	err := (&SelectiveAck{}).Unmarshal(withChunkHeader(ChunkTypeHeartbeat, header))
	assert.ErrorIs(t, err, ErrChunkTypeNotSack)
}

func TestSelectiveAck_MarshalFailure(t *testing.T) {
	sack := &SelectiveAck{GapAckBlocks: []GapAckBlock{{Start: 3, End: 5}, {Start: 5, End: 6}}}
	buf := []byte{0xaa}
	out, err := sack.MarshalTo(buf)
	assert.ErrorIs(t, err, ErrSackGapBlocksNotMonotonic)
	assert.Equal(t, buf, out)

	// contiguous blocks are fine
	sack = &SelectiveAck{GapAckBlocks: []GapAckBlock{{Start: 3, End: 5}, {Start: 6, End: 6}}}
	assert.NoError(t, sack.Check())
}
