// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"github.com/pion/logging"
)

// CodecConfig collects the settings of a Codec.
type CodecConfig struct {
	Name               string
	LoggerFactory      logging.LoggerFactory
	EnableZeroChecksum bool

	// MTU limits the size of marshaled packets. Zero means no limit.
	MTU uint32
}

// CodecOption configures a Codec.
type CodecOption interface {
	applyCodec(*CodecConfig) error
}

// codecOption wraps an apply function.
type codecOption func(*CodecConfig) error

func (o codecOption) applyCodec(c *CodecConfig) error { return o(c) }

// WithLoggerFactory sets the logger factory for the codec.
func WithLoggerFactory(loggerFactory logging.LoggerFactory) CodecOption {
	return codecOption(func(c *CodecConfig) error {
		if loggerFactory == nil {
			return errNilLoggerFactory
		}
		c.LoggerFactory = loggerFactory

		return nil
	})
}

// WithName sets the name used to prefix log lines.
func WithName(name string) CodecOption {
	return codecOption(func(c *CodecConfig) error {
		c.Name = name

		return nil
	})
}

// WithEnableZeroChecksum sets whether the codec should accept zero as a valid
// checksum and write zero checksums where RFC 9653 allows it.
// By default this is false.
func WithEnableZeroChecksum(b bool) CodecOption {
	return codecOption(func(c *CodecConfig) error {
		c.EnableZeroChecksum = b

		return nil
	})
}

// WithMTU limits the size of marshaled packets.
// By default packets are not limited.
func WithMTU(size uint32) CodecOption {
	return codecOption(func(c *CodecConfig) error {
		if size == 0 {
			return errZeroMTUOption
		}
		c.MTU = size

		return nil
	})
}
