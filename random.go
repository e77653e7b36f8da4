// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"github.com/pion/randutil"
)

// Use global random generator to properly seed by crypto grade random.
var globalMathRandomGenerator = randutil.NewMathRandomGenerator() // nolint:gochecknoglobals

// GenerateInitiateTag returns a random Initiate Tag. RFC 9260 section 3.3.2
// forbids the value 0.
func GenerateInitiateTag() uint32 {
	for {
		if tag := globalMathRandomGenerator.Uint32(); tag != 0 {
			return tag
		}
	}
}

// GenerateInitialTSN returns a random Initial TSN.
func GenerateInitialTSN() uint32 {
	return globalMathRandomGenerator.Uint32()
}

// NewInit builds an INIT with a random Initiate Tag and Initial TSN.
func NewInit(advertisedReceiverWindowCredit uint32, outbound, inbound uint16, params ...Param) *Init {
	return &Init{InitCommon: newInitCommon(advertisedReceiverWindowCredit, outbound, inbound, params)}
}

// NewInitAck builds an INIT ACK with a random Initiate Tag and Initial TSN.
// The State Cookie is placed first.
func NewInitAck(advertisedReceiverWindowCredit uint32, outbound, inbound uint16, cookie []byte, params ...Param) *InitAck {
	params = append([]Param{&StateCookie{Cookie: cookie}}, params...)

	return &InitAck{InitCommon: newInitCommon(advertisedReceiverWindowCredit, outbound, inbound, params)}
}

func newInitCommon(advertisedReceiverWindowCredit uint32, outbound, inbound uint16, params []Param) InitCommon {
	return InitCommon{
		InitiateTag:                    GenerateInitiateTag(),
		AdvertisedReceiverWindowCredit: advertisedReceiverWindowCredit,
		NumOutboundStreams:             outbound,
		NumInboundStreams:              inbound,
		InitialTSN:                     GenerateInitialTSN(),
		Params:                         params,
	}
}
