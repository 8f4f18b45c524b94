// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package stablehash

import (
	"encoding/binary"
	"math/bits"
)

// Legacy hashes s with the scheme cargo used before Rust 1.85:
// SipHash-2-4 with both keys zero, over the bytes of s plus the 0xFF
// terminator Rust's string hashing appends.
func Legacy(s string) uint64 {
	return sip24(0, 0, terminated(s))
}

// Current hashes s with rustc's stable hasher scheme: SipHash-1-3
// with the reference 128-bit finalization, both keys zero, the two
// output words folded into 64 bits as first*3 + second with wrapping
// arithmetic. Input convention as in [Legacy].
func Current(s string) uint64 {
	first, second := sip13x128(0, 0, terminated(s))
	return first*3 + second
}

// terminated returns the bytes of s followed by the 0xFF byte Rust
// appends when hashing a str (prefix-freedom for composite hashes).
func terminated(s string) []byte {
	data := make([]byte, len(s)+1)
	copy(data, s)
	data[len(s)] = 0xff
	return data
}

// sipState holds the four 64-bit lanes of the SipHash state.
type sipState struct {
	v0, v1, v2, v3 uint64
}

func newSipState(k0, k1 uint64) sipState {
	return sipState{
		v0: k0 ^ 0x736f6d6570736575,
		v1: k1 ^ 0x646f72616e646f6d,
		v2: k0 ^ 0x6c7967656e657261,
		v3: k1 ^ 0x7465646279746573,
	}
}

func (s *sipState) round() {
	s.v0 += s.v1
	s.v1 = bits.RotateLeft64(s.v1, 13)
	s.v1 ^= s.v0
	s.v0 = bits.RotateLeft64(s.v0, 32)
	s.v2 += s.v3
	s.v3 = bits.RotateLeft64(s.v3, 16)
	s.v3 ^= s.v2
	s.v0 += s.v3
	s.v3 = bits.RotateLeft64(s.v3, 21)
	s.v3 ^= s.v0
	s.v2 += s.v1
	s.v1 = bits.RotateLeft64(s.v1, 17)
	s.v1 ^= s.v2
	s.v2 = bits.RotateLeft64(s.v2, 32)
}

func (s *sipState) rounds(n int) {
	for i := 0; i < n; i++ {
		s.round()
	}
}

// compress feeds every complete 8-byte word of data through the state
// with cRounds compression rounds each, and returns the final block:
// the remaining tail bytes in the low positions with the total length
// modulo 256 in the top byte, per the SipHash specification.
func (s *sipState) compress(data []byte, cRounds int) uint64 {
	n := len(data)
	for len(data) >= 8 {
		m := binary.LittleEndian.Uint64(data[:8])
		s.v3 ^= m
		s.rounds(cRounds)
		s.v0 ^= m
		data = data[8:]
	}

	b := uint64(n&0xff) << 56
	for i, c := range data {
		b |= uint64(c) << (8 * uint(i))
	}
	return b
}

// sip24 is the standard 64-bit SipHash-2-4.
func sip24(k0, k1 uint64, data []byte) uint64 {
	s := newSipState(k0, k1)
	b := s.compress(data, 2)

	s.v3 ^= b
	s.rounds(2)
	s.v0 ^= b

	s.v2 ^= 0xff
	s.rounds(4)
	return s.v0 ^ s.v1 ^ s.v2 ^ s.v3
}

// sip13x128 is SipHash-1-3 with the reference double-width
// finalization, as implemented by rustc's SipHasher128. The 128-bit
// variant differs from the 64-bit one by xoring 0xEE into v1 at
// initialization and producing two output words.
func sip13x128(k0, k1 uint64, data []byte) (uint64, uint64) {
	s := newSipState(k0, k1)
	s.v1 ^= 0xee
	b := s.compress(data, 1)

	s.v3 ^= b
	s.rounds(1)
	s.v0 ^= b

	s.v2 ^= 0xee
	s.rounds(3)
	first := s.v0 ^ s.v1 ^ s.v2 ^ s.v3

	s.v1 ^= 0xdd
	s.rounds(3)
	second := s.v0 ^ s.v1 ^ s.v2 ^ s.v3
	return first, second
}
