// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/pion/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoggerFactory(buf *bytes.Buffer) *logging.DefaultLoggerFactory {
	return &logging.DefaultLoggerFactory{
		Writer:          buf,
		DefaultLogLevel: logging.LogLevelTrace,
		ScopeLevels:     map[string]logging.LogLevel{},
	}
}

func TestCodecOptions_Validation(t *testing.T) {
	t.Run("nil logger factory", func(t *testing.T) {
		var cfg CodecConfig
		err := WithLoggerFactory(nil).applyCodec(&cfg)
		assert.ErrorIs(t, err, errNilLoggerFactory)
	})

	t.Run("mtu zero", func(t *testing.T) {
		var cfg CodecConfig
		err := WithMTU(0).applyCodec(&cfg)
		assert.ErrorIs(t, err, errZeroMTUOption)

		_, err = NewCodec(WithMTU(0))
		assert.ErrorIs(t, err, errZeroMTUOption)
	})

	t.Run("apply", func(t *testing.T) {
		var cfg CodecConfig
		for _, opt := range []CodecOption{WithName("x"), WithEnableZeroChecksum(true), WithMTU(1200)} {
			require.NoError(t, opt.applyCodec(&cfg))
		}
		assert.Equal(t, CodecConfig{Name: "x", EnableZeroChecksum: true, MTU: 1200}, cfg)
	})
}

func TestCodec_Defaults(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)
	assert.False(t, codec.ZeroChecksum())

	pkt := &Packet{SourcePort: 1, DestinationPort: 2, VerificationTag: 3, Chunks: []Chunk{&CookieAck{}}}
	raw, err := codec.MarshalPacket(pkt)
	require.NoError(t, err)
	assert.NotEqual(t, uint32(0), binary.LittleEndian.Uint32(raw[8:]))

	decoded, err := codec.UnmarshalPacket(raw)
	require.NoError(t, err)
	assert.Equal(t, pkt.VerificationTag, decoded.VerificationTag)
	require.Len(t, decoded.Chunks, 1)
}

func TestCodec_ZeroChecksum(t *testing.T) {
	buf := &bytes.Buffer{}
	codec, err := NewCodec(WithName("zca"), WithEnableZeroChecksum(true), WithLoggerFactory(newTestLoggerFactory(buf)))
	require.NoError(t, err)
	assert.True(t, codec.ZeroChecksum())

	raw, err := codec.MarshalPacket(&Packet{SourcePort: 1, DestinationPort: 2, Chunks: []Chunk{&CookieAck{}}})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(raw[8:]))

	_, err = codec.UnmarshalPacket(raw)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[zca] accepted packet with zero checksum")

	strict, err := NewCodec(WithLoggerFactory(newTestLoggerFactory(buf)))
	require.NoError(t, err)
	_, err = strict.UnmarshalPacket(raw)
	assert.ErrorIs(t, err, ErrChecksumMismatch)
	assert.Contains(t, buf.String(), "failed to unmarshal packet")
}

func TestCodec_MTU(t *testing.T) {
	codec, err := NewCodec(WithMTU(32))
	require.NoError(t, err)

	small := &Packet{SourcePort: 1, DestinationPort: 2, Chunks: []Chunk{&CookieEcho{Cookie: make([]byte, 16)}}}
	raw, err := codec.MarshalPacket(small)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	large := &Packet{SourcePort: 1, DestinationPort: 2, Chunks: []Chunk{&CookieEcho{Cookie: make([]byte, 17)}}}
	_, err = codec.MarshalPacket(large)
	assert.ErrorIs(t, err, ErrPacketTooLarge)
}

func TestCodec_LogsSkippedChunks(t *testing.T) {
	buf := &bytes.Buffer{}
	codec, err := NewCodec(WithName("skip"), WithLoggerFactory(newTestLoggerFactory(buf)))
	require.NoError(t, err)

	raw := withChecksum(append(testPacketHeader(), 0xff, 0x00, 0x00, 0x04, 0x0b, 0x00, 0x00, 0x04))
	pkt, err := codec.UnmarshalPacket(raw)
	require.NoError(t, err)
	assert.Len(t, pkt.Skipped, 1)
	assert.Contains(t, buf.String(), "[skip] skipped unrecognized chunk")
}

func TestCodec_MarshalFailure(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)

	_, err = codec.MarshalPacket(&Packet{Chunks: []Chunk{&PayloadData{}}})
	assert.ErrorIs(t, err, ErrDATAZeroUserData)
}
