// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import "fmt"

// HeartbeatInfo carries sender-specific data in a HEARTBEAT, echoed back
// unchanged in the HEARTBEAT ACK (RFC 9260 section 3.3.5).
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|    Heartbeat Info Type=1      |         HB Info Length        |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	/                  Sender-Specific Heartbeat Info               /
//	\                                                               \
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type HeartbeatInfo struct {
	Info []byte
}

func (p *HeartbeatInfo) Type() ParamType { return ParamTypeHeartbeatInfo }

func (p *HeartbeatInfo) ValueLength() int { return len(p.Info) }

func (p *HeartbeatInfo) MarshalTo(buf []byte) ([]byte, error) {
	buf, err := appendParamHeader(buf, p)
	if err != nil {
		return buf, err
	}

	return append(buf, p.Info...), nil
}

func (p *HeartbeatInfo) unmarshal(value []byte) error {
	p.Info = value

	return nil
}

func (p *HeartbeatInfo) String() string {
	return fmt.Sprintf("%s: %d bytes", ParamTypeHeartbeatInfo, len(p.Info))
}
