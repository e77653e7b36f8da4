// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gopacket's SCTP layer is an independent codec, packets must survive a
// trip through it in both directions. gopacket hands DATA user data to a
// trailing Payload layer and stops there, so DATA is the last chunk.

func TestPacket_GopacketDecodesOurs(t *testing.T) {
	pkt := &Packet{
		SourcePort:      testSCTPSrcDstPort,
		DestinationPort: 5001,
		VerificationTag: 0xdeadbeef,
		Chunks: []Chunk{
			&Shutdown{CumulativeTSNAck: 41},
			&PayloadData{
				Unordered:            true,
				BeginningFragment:    true,
				EndingFragment:       true,
				TSN:                  42,
				StreamIdentifier:     3,
				StreamSequenceNumber: 7,
				PayloadType:          PayloadTypeWebRTCBinary,
				UserData:             []byte("hello"),
			},
		},
	}
	raw, err := pkt.Marshal(false)
	require.NoError(t, err)

	decoded := gopacket.NewPacket(raw, layers.LayerTypeSCTP, gopacket.Default)
	require.Nil(t, decoded.ErrorLayer())

	sctp, ok := decoded.Layer(layers.LayerTypeSCTP).(*layers.SCTP)
	require.True(t, ok)
	assert.Equal(t, layers.SCTPPort(testSCTPSrcDstPort), sctp.SrcPort)
	assert.Equal(t, layers.SCTPPort(5001), sctp.DstPort)
	assert.Equal(t, uint32(0xdeadbeef), sctp.VerificationTag)

	shutdown, ok := decoded.Layer(layers.LayerTypeSCTPShutdown).(*layers.SCTPShutdown)
	require.True(t, ok)
	assert.Equal(t, uint32(41), shutdown.CumulativeTSNAck)

	data, ok := decoded.Layer(layers.LayerTypeSCTPData).(*layers.SCTPData)
	require.True(t, ok)
	assert.True(t, data.Unordered)
	assert.True(t, data.BeginFragment)
	assert.True(t, data.EndFragment)
	assert.Equal(t, uint32(42), data.TSN)
	assert.Equal(t, uint16(3), data.StreamId)
	assert.Equal(t, uint16(7), data.StreamSequence)
	assert.Equal(t, layers.SCTPPayloadProtocol(PayloadTypeWebRTCBinary), data.PayloadProtocol)
	assert.Equal(t, uint16(21), data.Length)

	payload := decoded.Layer(gopacket.LayerTypePayload)
	require.NotNil(t, payload)
	assert.Equal(t, []byte("hello"), payload.LayerContents())
}

func TestPacket_UnmarshalGopacketSerialized(t *testing.T) {
	buf := gopacket.NewSerializeBuffer()
	err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{ComputeChecksums: true},
		&layers.SCTP{
			SrcPort:         5001,
			DstPort:         testSCTPSrcDstPort,
			VerificationTag: 7,
		},
		&layers.SCTPShutdown{
			SCTPChunk:        layers.SCTPChunk{Type: layers.SCTPChunkTypeShutdown},
			CumulativeTSNAck: 99,
		},
		&layers.SCTPData{
			SCTPChunk:       layers.SCTPChunk{Type: layers.SCTPChunkTypeData},
			BeginFragment:   true,
			EndFragment:     true,
			TSN:             100,
			StreamId:        1,
			StreamSequence:  2,
			PayloadProtocol: layers.SCTPPayloadProtocol(PayloadTypeWebRTCString),
		},
		gopacket.Payload("abc"),
	)
	require.NoError(t, err)

	pkt := &Packet{}
	require.NoError(t, pkt.Unmarshal(false, buf.Bytes()))
	assert.Equal(t, uint16(5001), pkt.SourcePort)
	assert.Equal(t, uint16(testSCTPSrcDstPort), pkt.DestinationPort)
	assert.Equal(t, uint32(7), pkt.VerificationTag)

	assert.Equal(t, []Chunk{
		&Shutdown{CumulativeTSNAck: 99},
		&PayloadData{
			BeginningFragment:    true,
			EndingFragment:       true,
			TSN:                  100,
			StreamIdentifier:     1,
			StreamSequenceNumber: 2,
			PayloadType:          PayloadTypeWebRTCString,
			UserData:             []byte("abc"),
		},
	}, pkt.Chunks)
	assert.NoError(t, pkt.Check())

	// and back again, byte for byte
	raw, err := pkt.Marshal(false)
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), raw)
}
