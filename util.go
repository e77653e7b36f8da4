// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

const (
	paddingMultiple = 4
)

// getPadding returns how many zero bytes bring len up to the next 4-byte boundary.
func getPadding(len int) int {
	return (paddingMultiple - (len % paddingMultiple)) % paddingMultiple
}

// paddedLength rounds len up to a multiple of 4.
func paddedLength(len int) int {
	return len + getPadding(len)
}

func padByte(in []byte, cnt int) []byte {
	if cnt <= 0 {
		return in
	}

	var padding [paddingMultiple]byte
	for cnt > len(padding) {
		in = append(in, padding[:]...)
		cnt -= len(padding)
	}

	return append(in, padding[:cnt]...)
}

// allZero returns true if every byte is 0x00.
func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}

	return true
}

// nilIfEmpty decodes zero-length lists and byte fields to nil, the same
// value a zero chunk or parameter carries.
func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}

	return s
}

// cloneBytes returns an owned copy of b, keeping nil as nil.
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}

	return append([]byte{}, b...)
}
