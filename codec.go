// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pion/logging"
)

// ErrPacketTooLarge is returned when a packet does not fit the configured MTU.
var ErrPacketTooLarge = errors.New("packet is larger than the MTU")

// Codec marshals and unmarshals packets with a fixed set of options.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	name         string
	log          logging.LeveledLogger
	zeroChecksum bool
	mtu          uint32
}

// NewCodec creates a Codec. Without options it verifies and writes CRC32c
// on every packet and logs through the default logger factory.
func NewCodec(opts ...CodecOption) (*Codec, error) {
	var config CodecConfig
	for _, opt := range opts {
		if err := opt.applyCodec(&config); err != nil {
			return nil, err
		}
	}

	if config.LoggerFactory == nil {
		config.LoggerFactory = logging.NewDefaultLoggerFactory()
	}

	return &Codec{
		name:         config.Name,
		log:          config.LoggerFactory.NewLogger("sctpwire"),
		zeroChecksum: config.EnableZeroChecksum,
		mtu:          config.MTU,
	}, nil
}

// ZeroChecksum reports whether zero checksums are accepted and written.
func (c *Codec) ZeroChecksum() bool {
	return c.zeroChecksum
}

// MarshalPacket marshals pkt, rejecting packets larger than the MTU.
func (c *Codec) MarshalPacket(pkt *Packet) ([]byte, error) {
	if size := pkt.Length(); c.mtu != 0 && size > int(c.mtu) {
		return nil, fmt.Errorf("%w: %d bytes, MTU %d", ErrPacketTooLarge, size, c.mtu)
	}

	raw, err := pkt.Marshal(c.zeroChecksum)
	if err != nil {
		c.log.Warnf("[%s] failed to marshal packet: %v", c.name, err)

		return nil, err
	}
	c.log.Tracef("[%s] marshaled %d chunks into %d bytes", c.name, len(pkt.Chunks), len(raw))

	return raw, nil
}

// UnmarshalPacket decodes raw. Decoded byte fields alias raw, use
// Packet.Clone to keep them past the lifetime of raw.
func (c *Codec) UnmarshalPacket(raw []byte) (*Packet, error) {
	pkt := &Packet{}
	if err := pkt.Unmarshal(c.zeroChecksum, raw); err != nil {
		c.log.Warnf("[%s] failed to unmarshal packet: %v", c.name, err)

		return nil, err
	}

	if c.zeroChecksum && binary.LittleEndian.Uint32(raw[8:]) == 0 {
		c.log.Tracef("[%s] accepted packet with zero checksum", c.name)
	}

	for _, u := range pkt.Skipped {
		c.log.Debugf("[%s] skipped unrecognized chunk %s (%d bytes), peer asks for a report",
			c.name, u.Header.Type, u.Header.Length())
	}

	return pkt, nil
}
