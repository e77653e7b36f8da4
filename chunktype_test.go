// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkType_String(t *testing.T) {
	tt := []struct {
		chunkType ChunkType
		expected  string
	}{
		{ChunkTypePayloadData, "DATA"},
		{ChunkTypeInit, "INIT"},
		{ChunkTypeInitAck, "INIT-ACK"},
		{ChunkTypeSack, "SACK"},
		{ChunkTypeHeartbeat, "HEARTBEAT"},
		{ChunkTypeHeartbeatAck, "HEARTBEAT-ACK"},
		{ChunkTypeAbort, "ABORT"},
		{ChunkTypeShutdown, "SHUTDOWN"},
		{ChunkTypeShutdownAck, "SHUTDOWN-ACK"},
		{ChunkTypeError, "ERROR"},
		{ChunkTypeCookieEcho, "COOKIE-ECHO"},
		{ChunkTypeCookieAck, "COOKIE-ACK"},
		{ChunkTypeECNE, "ECNE"},
		{ChunkTypeCWR, "CWR"},
		{ChunkTypeShutdownComplete, "SHUTDOWN-COMPLETE"},
		{ChunkTypeReconfig, "RECONFIG"},
		{ChunkTypeForwardTSN, "FORWARD-TSN"},
		{ChunkType(255), "Unknown ChunkType: 255"},
	}

	for _, tc := range tt {
		if tc.chunkType.String() != tc.expected {
			t.Errorf("failed to stringify chunkType %v, expected %s", tc.chunkType, tc.expected)
		}
	}
}

func TestChunkType_UnrecognizedAction(t *testing.T) {
	tt := []struct {
		chunkType ChunkType
		action    UnrecognizedChunkAction
		skip      bool
		report    bool
	}{
		{ChunkType(0x3f), UnrecognizedChunkActionStop, false, false},
		{ChunkType(0x7f), UnrecognizedChunkActionStopAndReport, false, true},
		{ChunkTypeReconfig, UnrecognizedChunkActionSkip, true, false},
		{ChunkTypeForwardTSN, UnrecognizedChunkActionSkipAndReport, true, true},
	}

	for _, tc := range tt {
		action := tc.chunkType.UnrecognizedAction()
		assert.Equal(t, tc.action, action, tc.chunkType.String())
		assert.Equal(t, tc.skip, action.Skip(), tc.chunkType.String())
		assert.Equal(t, tc.report, action.Report(), tc.chunkType.String())
	}

	assert.Equal(t, "skip and report", UnrecognizedChunkActionSkipAndReport.String())
}
