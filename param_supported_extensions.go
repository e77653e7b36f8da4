// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"fmt"
	"strings"
)

// SupportedExtensions lists the extension chunk types the sender supports
// (RFC 5061 section 4.2.7).
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|     Parameter Type = 0x8008   |      Parameter Length         |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	| CHUNK TYPE 1  |  CHUNK TYPE 2 |  CHUNK TYPE 3 |  CHUNK TYPE 4 |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type SupportedExtensions struct {
	ChunkTypes []ChunkType
}

func (s *SupportedExtensions) Type() ParamType { return ParamTypeSupportedExtensions }

func (s *SupportedExtensions) ValueLength() int { return len(s.ChunkTypes) }

func (s *SupportedExtensions) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendParamHeader(buf, s)
	if err != nil {
		return buf, err
	}
	for _, t := range s.ChunkTypes {
		buf = append(buf, byte(t))
	}

	return buf, nil
}

func (s *SupportedExtensions) unmarshal(value []byte) error {
	s.ChunkTypes = make([]ChunkType, len(value))
	for i, b := range value {
		s.ChunkTypes[i] = ChunkType(b)
	}
	s.ChunkTypes = nilIfEmpty(s.ChunkTypes)

	return nil
}

// Supports reports whether typ is listed.
func (s *SupportedExtensions) Supports(typ ChunkType) bool {
	for _, t := range s.ChunkTypes {
		if t == typ {
			return true
		}
	}

	return false
}

func (s *SupportedExtensions) String() string {
	names := make([]string, len(s.ChunkTypes))
	for i, t := range s.ChunkTypes {
		names[i] = t.String()
	}

	return fmt.Sprintf("%s: [%s]", ParamTypeSupportedExtensions, strings.Join(names, ", "))
}
