// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"errors"
	"fmt"
)

// Reconfig represents an SCTP Chunk used to reconfigure streams.
// https://www.rfc-editor.org/rfc/rfc6525#section-3.1
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|   Type=130    |  Chunk Flags  |        Chunk Length           |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	\                                                               \
//	/                 Re-configuration Parameter(s)                 /
//	\                     (one or more TLVs)                        /
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type Reconfig struct {
	Params []Param
}

// RFC 6525 section 3.1: at most two parameters per RE-CONFIG chunk.
const maxReconfigParams = 2

// Reconfigure chunk errors.
var (
	ErrChunkTypeNotReconfig          = errors.New("ChunkType is not of type RECONFIG")
	ErrChunkParseParamTypeFailed     = errors.New("failed to parse param type")
	ErrReconfigNoParams              = errors.New("RECONFIG carries no parameters")
	ErrReconfigParamNotReconfig      = errors.New("parameter is not allowed in RECONFIG")
	ErrReconfigTooManyParams         = errors.New("RECONFIG carries more than two parameters")
	ErrChunkMarshalParamReconfigFail = errors.New("unable to marshal parameter for reconfig")
)

func (*Reconfig) isChunk() {}

func (c *Reconfig) Header() ChunkHeader {
	return ChunkHeader{Type: ChunkTypeReconfig, ValueLength: c.ValueLength()}
}

func (c *Reconfig) ValueLength() int {
	return paramsValueLength(c.Params)
}

// Unmarshal parses a RECONFIG. RFC 6525 requires one or more TLVs, all of
// them re-configuration parameters.
func (c *Reconfig) Unmarshal(raw []byte) error {
	_, value, err := unmarshalChunk(raw, ChunkTypeReconfig, ErrChunkTypeNotReconfig)
	if err != nil {
		return err
	}

	if len(value) == 0 {
		return fmt.Errorf("%w: empty RECONFIG body", ErrReconfigNoParams)
	}

	params, err := unmarshalParams(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrChunkParseParamTypeFailed, err)
	}
	if len(params) == 0 {
		return ErrReconfigNoParams
	}
	for _, p := range params {
		if !p.Type().isReconfigParam() {
			return fmt.Errorf("%w: %s", ErrReconfigParamNotReconfig, p.Type())
		}
	}
	c.Params = params

	return nil
}

func (c *Reconfig) MarshalTo(buf []byte) ([]byte, error) {
	start := len(buf)

	buf, err := c.Header().MarshalTo(buf)
	if err != nil {
		return buf, err
	}
	if buf, err = marshalParams(buf, c.Params); err != nil {
		return buf[:start], fmt.Errorf("%w: %w", ErrChunkMarshalParamReconfigFail, err)
	}

	return buf, nil
}

func (c *Reconfig) Marshal() ([]byte, error) {
	return Marshal(c)
}

// Check requires one or two re-configuration parameters. Combinations
// are validated by whoever handles the individual requests.
func (c *Reconfig) Check() error {
	switch {
	case len(c.Params) == 0:
		return ErrReconfigNoParams
	case len(c.Params) > maxReconfigParams:
		return fmt.Errorf("%w: %d", ErrReconfigTooManyParams, len(c.Params))
	}

	for _, p := range c.Params {
		if !p.Type().isReconfigParam() {
			return fmt.Errorf("%w: %s", ErrReconfigParamNotReconfig, p.Type())
		}
	}

	return nil
}

// String makes Reconfig printable.
func (c *Reconfig) String() string {
	if len(c.Params) == 0 {
		return "RECONFIG: <no params>"
	}

	res := "RECONFIG params:\n"
	for i, p := range c.Params {
		res += fmt.Sprintf("  [%d] %s\n", i, p)
	}

	return res
}
