// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

// Create the crc32 table we'll use for the checksum.
var castagnoliTable = crc32.MakeTable(crc32.Castagnoli) // nolint:gochecknoglobals

// Allocate and zero this data once.
// We need to use it for the checksum and don't want to allocate/clear each time.
var fourZeroes [4]byte // nolint:gochecknoglobals

/*
Packet represents an SCTP packet, defined in https://tools.ietf.org/html/rfc9260#section-3
An SCTP packet is composed of a common header and chunks.  A chunk
contains either control information or user data.

						SCTP Packet Format
	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                        Common Header                          |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                          Chunk #1                             |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                           ...                                 |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                          Chunk #n                             |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

					SCTP Common Header Format
	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|     Source Port Number       |     Destination Port Number    |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                      Verification Tag                         |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                           Checksum                            |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/
type Packet struct {
	SourcePort      uint16
	DestinationPort uint16
	VerificationTag uint32
	Chunks          []Chunk

	// Skipped holds unrecognized chunks that were skipped on decode and
	// whose type asks the receiver to report them.
	Skipped []UnrecognizedChunk
}

const (
	packetHeaderSize = 12
)

// SCTP packet errors.
var (
	ErrPacketRawTooSmall             = errors.New("raw is smaller than the minimum length for a SCTP packet")
	ErrParseSCTPChunkNotEnoughData   = errors.New("unable to parse SCTP chunk, not enough data for complete header")
	ErrChecksumMismatch              = errors.New("checksum mismatch theirs")
	ErrSCTPPacketSourcePortZero      = errors.New("sctp packet must not have a source port of 0")
	ErrSCTPPacketDestinationPortZero = errors.New("sctp packet must not have a destination port of 0")
	ErrInitChunkBundled              = errors.New("init chunk must not be bundled with any other chunk")
	ErrInitChunkVerifyTagNotZero     = errors.New(
		"init chunk expects a verification tag of 0 on the packet when out-of-the-blue",
	)
)

// Unmarshal parses an SCTP packet and verifies its checksum.
//
// RFC 9260 section 6.8: every packet MUST be protected with CRC32c; receivers verify it.
// RFC 9653 adds an extension (ZCA) that allows a receiver to accept a packet
// whose checksum is incorrect but equal to zero, when an alternate error
// detection method is active for the path (ex: SCTP-over-DTLS) and ZCA has
// been negotiated.
//
// zeroChecksum indicates whether ZCA is active for the receiving path:
//   - zeroChecksum == true  : accept a packet if the only checksum issue is that
//     it is exactly zero.
//   - zeroChecksum == false : strict 9260 verification; any checksum mismatch fails.
//
// Chunks are decoded in wire order. An unrecognized chunk type is handled
// by its two highest-order bits: stop values return an *UnrecognizedChunkError,
// skip values continue with the next chunk and, when asked to report, record
// the chunk in Skipped.
func (p *Packet) Unmarshal(zeroChecksum bool, raw []byte) error { //nolint:cyclop
	if len(raw) < packetHeaderSize {
		return fmt.Errorf("%w: raw only %d bytes, %d is the minimum length", ErrPacketRawTooSmall, len(raw), packetHeaderSize)
	}

	// always compute CRC32c (RFC 9260 section 6.8).
	theirChecksum := binary.LittleEndian.Uint32(raw[8:])
	ourChecksum := generatePacketChecksum(raw)
	if theirChecksum != ourChecksum {
		if !zeroChecksum || theirChecksum != 0 {
			return fmt.Errorf("%w: %d ours: %d", ErrChecksumMismatch, theirChecksum, ourChecksum)
		}
	}

	p.SourcePort = binary.BigEndian.Uint16(raw[0:])
	p.DestinationPort = binary.BigEndian.Uint16(raw[2:])
	p.VerificationTag = binary.BigEndian.Uint32(raw[4:])
	p.Chunks = nil
	p.Skipped = nil

	offset := packetHeaderSize
	for {
		// Exact match, no more chunks
		if offset == len(raw) {
			break
		} else if offset+chunkHeaderSize > len(raw) {
			return fmt.Errorf("%w: offset %d remaining %d", ErrParseSCTPChunkNotEnoughData, offset, len(raw)-offset)
		}

		header, err := UnmarshalChunkHeader(raw[offset:])
		if err != nil {
			return err
		}

		c, err := ParseChunk(raw[offset:])
		var unrecognized *UnrecognizedChunkError
		switch {
		case errors.As(err, &unrecognized):
			action := unrecognized.Chunk.Action()
			if !action.Skip() {
				return err
			}
			if action.Report() {
				p.Skipped = append(p.Skipped, unrecognized.Chunk)
			}
		case err != nil:
			return err
		default:
			p.Chunks = append(p.Chunks, c)
		}

		// advance by the padded length, the last chunk may omit its padding.
		offset = min(offset+paddedLength(header.Length()), len(raw))
	}

	return nil
}

// Marshal builds an SCTP packet, padding every chunk to a 4-byte boundary.
//
// If zeroChecksum == true, a zero checksum is written (RFC 9653) unless
// the packet contains a restricted chunk (INIT or COOKIE ECHO), in which case
// a correct CRC32c is always written (RFC 9653 section 5.2). If zeroChecksum == false,
// a correct CRC32c is always written (RFC 9260 section 6.8).
//
// The caller sets zeroChecksum=true only when the peer has advertised ZCA and
// the current path satisfies the alternate method's constraints (e.g., DTLS).
// For OOTB responses and other control paths, always marshal with zeroChecksum=false.
func (p *Packet) Marshal(zeroChecksum bool) ([]byte, error) {
	raw := make([]byte, packetHeaderSize, p.Length())

	// Populate static headers
	// 8-12 is Checksum which will be populated when packet is complete
	binary.BigEndian.PutUint16(raw[0:], p.SourcePort)
	binary.BigEndian.PutUint16(raw[2:], p.DestinationPort)
	binary.BigEndian.PutUint32(raw[4:], p.VerificationTag)

	// Populate chunks
	for _, c := range p.Chunks {
		var err error
		if raw, err = c.MarshalTo(raw); err != nil {
			return nil, err
		}
		raw = padByte(raw, getPadding(len(raw)))
	}

	if zeroChecksum && !hasRestrictedChunk(p.Chunks) {
		binary.LittleEndian.PutUint32(raw[8:], 0)
	} else {
		binary.LittleEndian.PutUint32(raw[8:], generatePacketChecksum(raw))
	}

	return raw, nil
}

// Length returns the size of the marshaled packet, chunk padding included.
func (p *Packet) Length() int {
	n := packetHeaderSize
	for _, c := range p.Chunks {
		n += paddedLength(chunkHeaderSize + c.ValueLength())
	}

	return n
}

// Check validates the rules every packet must follow, then each chunk.
func (p *Packet) Check() error {
	// This is the SCTP sender's port number.  It can be used by the
	// receiver in combination with the source IP address, the SCTP
	// destination port, and possibly the destination IP address to
	// identify the association to which this packet belongs.  The port
	// number 0 MUST NOT be used.
	if p.SourcePort == 0 {
		return ErrSCTPPacketSourcePortZero
	}

	// The port number 0 MUST NOT be used.
	if p.DestinationPort == 0 {
		return ErrSCTPPacketDestinationPortZero
	}

	for _, c := range p.Chunks {
		switch c.(type) {
		case *Init:
			// An INIT or INIT ACK chunk MUST NOT be bundled with any other chunk.
			// They MUST be the only chunks present in the SCTP packets that carry
			// them.
			if len(p.Chunks) != 1 {
				return ErrInitChunkBundled
			}

			// A packet containing an INIT chunk MUST have a zero Verification
			// Tag.
			if p.VerificationTag != 0 {
				return ErrInitChunkVerifyTagNotZero
			}
		case *InitAck:
			if len(p.Chunks) != 1 {
				return ErrInitChunkBundled
			}
		}

		if err := c.Check(); err != nil {
			return err
		}
	}

	return nil
}

// Clone returns a deep copy of p that shares no memory with it.
func (p *Packet) Clone() (*Packet, error) {
	out := &Packet{
		SourcePort:      p.SourcePort,
		DestinationPort: p.DestinationPort,
		VerificationTag: p.VerificationTag,
	}

	for _, c := range p.Chunks {
		clone, err := CloneChunk(c)
		if err != nil {
			return nil, err
		}
		out.Chunks = append(out.Chunks, clone)
	}

	for _, u := range p.Skipped {
		out.Skipped = append(out.Skipped, UnrecognizedChunk{Header: u.Header, Raw: cloneBytes(u.Raw)})
	}

	return out, nil
}

// restrictedChunks per RFC 9653 section 5.2: INIT and COOKIE ECHO.
func hasRestrictedChunk(chs []Chunk) bool {
	for _, c := range chs {
		switch c.(type) {
		case *Init, *CookieEcho:
			return true
		}
	}

	return false
}

func generatePacketChecksum(raw []byte) (sum uint32) {
	// Fastest way to do a crc32 without allocating.
	sum = crc32.Update(sum, castagnoliTable, raw[0:8])
	sum = crc32.Update(sum, castagnoliTable, fourZeroes[:])
	sum = crc32.Update(sum, castagnoliTable, raw[12:])

	return sum
}

// String makes Packet printable.
func (p *Packet) String() string {
	format := `Packet:
	sourcePort: %d
	destinationPort: %d
	verificationTag: %d
	`
	res := fmt.Sprintf(format,
		p.SourcePort,
		p.DestinationPort,
		p.VerificationTag,
	)
	for i, chunk := range p.Chunks {
		res += fmt.Sprintf("Chunk %d:\n %s", i, chunk)
	}

	return res
}

// TryMarshalUnmarshal attempts to marshal and unmarshal a message. Added for fuzzing.
func TryMarshalUnmarshal(msg []byte) int {
	p := &Packet{}
	// Strict mode first (RFC 9260): require valid CRC32c.
	err := p.Unmarshal(false, msg)
	if err != nil {
		return 0
	}

	// Strict send (emit CRC32c).
	_, err = p.Marshal(false)
	if err != nil {
		return 0
	}

	return 1
}
