// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortChunk(t *testing.T) {
	t.Run("One error cause", func(t *testing.T) {
		abort1 := &Abort{ErrorCauses: []ErrorCause{&ProtocolViolation{}}}
		bytes, err := abort1.Marshal()
		require.NoError(t, err)
		assert.Equal(t, []byte{0x06, 0x00, 0x00, 0x08, 0x00, 0x0d, 0x00, 0x04}, bytes)

		abort2 := &Abort{}
		require.NoError(t, abort2.Unmarshal(bytes))
		require.Len(t, abort2.ErrorCauses, 1)
		assert.Equal(t, abort1.ErrorCauses[0].Code(), abort2.ErrorCauses[0].Code())
	})

	t.Run("Many error causes", func(t *testing.T) {
		abort1 := &Abort{
			ErrorCauses: []ErrorCause{
				&InvalidMandatoryParameter{},
				&UnrecognizedChunkType{Chunk: []byte{0xff, 0x00, 0x00, 0x05, 0x01}},
				&ProtocolViolation{AdditionalInformation: []byte("x")},
			},
		}
		bytes, err := abort1.Marshal()
		require.NoError(t, err)
		assert.Equal(t, abort1.Header().Length(), len(bytes))

		abort2 := &Abort{}
		require.NoError(t, abort2.Unmarshal(bytes))
		require.Len(t, abort2.ErrorCauses, 3)
		for i, errorCause := range abort1.ErrorCauses {
			assert.Equal(t, errorCause.Code(), abort2.ErrorCauses[i].Code())
		}
		assert.Equal(t, abort1.ErrorCauses, abort2.ErrorCauses)
	})

	t.Run("No causes", func(t *testing.T) {
		abort := &Abort{}
		require.NoError(t, abort.Unmarshal([]byte{0x06, 0x00, 0x00, 0x04}))
		assert.Empty(t, abort.ErrorCauses)
		assert.NoError(t, abort.Check())
	})

	t.Run("T bit preserved", func(t *testing.T) {
		raw := []byte{0x06, 0x01, 0x00, 0x04}
		abort := &Abort{}
		require.NoError(t, abort.Unmarshal(raw))
		assert.True(t, abort.TBit())

		b, err := abort.Marshal()
		require.NoError(t, err)
		assert.Equal(t, raw, b)
	})
}

func TestAbortChunk_Failure(t *testing.T) {
	tt := []struct {
		name   string
		binary []byte
		err    error
	}{
		{"wrong type", []byte{0x09, 0x00, 0x00, 0x04}, ErrChunkTypeNotAbort},
		{"truncated cause", []byte{0x06, 0x00, 0x00, 0x07, 0x00, 0x0d, 0x00, 0x00}, ErrCauseTooShort},
		{"cause overruns chunk", []byte{0x06, 0x00, 0x00, 0x08, 0x00, 0x0d, 0x00, 0x08}, ErrCauseLengthInvalid},
	}

	for _, tc := range tt {
		err := (&Abort{}).Unmarshal(tc.binary)
		assert.ErrorIsf(t, err, tc.err, "%s", tc.name)
	}
}
