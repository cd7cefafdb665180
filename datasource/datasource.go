// Package datasource implements the deterministic, exhaustible byte
// stream the fuzzer engine feeds operations from (§3 "Datasource",
// §4.1, §4.6). Byte-string draws are self-delimiting (length, payload)
// pairs and fixed-width draws read raw bytes, both off the front of the
// buffer; once the buffer is exhausted every
// further draw returns an error rather than panicking or wrapping
// around, so a Run deterministically winds down instead of spinning.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package datasource

import (
	goerrors "github.com/agilira/go-errors"
	"github.com/alecthomas/unsafeslice"
)

var (
	ErrExhausted = goerrors.New("DS_001", "datasource exhausted")
	ErrShortRead = goerrors.New("DS_002", "datasource short read")
)

// lengthPrefixSize is the number of header bytes a draw consumes before
// its payload: a single byte capped at 255, which is enough entropy for
// every draw this fuzzer makes (keys, scalars, moduli) without wasting
// buffer on a wider integer.
const lengthPrefixSize = 1

// Source reads typed values off a fixed byte buffer in a deterministic,
// forward-only order. The same buffer replayed through a fresh Source
// always produces the same sequence of draws, which is what makes the
// Run loop's debug trace and the Datasource-level corpus minimization
// both meaningful.
type Source struct {
	buf    []byte
	offset int
}

// New wraps data for sequential drawing. The buffer is not copied or
// retained beyond read access; callers must not mutate it while the
// Source is in use.
func New(data []byte) *Source {
	return &Source{buf: data}
}

// Remaining reports how many bytes have not yet been consumed.
func (s *Source) Remaining() int { return len(s.buf) - s.offset }

// Exhausted reports whether every byte has been drawn.
func (s *Source) Exhausted() bool { return s.Remaining() <= 0 }

func (s *Source) advance(n int) []byte {
	if s.offset+n > len(s.buf) {
		return nil
	}
	b := s.buf[s.offset : s.offset+n]
	s.offset += n
	return b
}

// GetBytes draws a length-prefixed byte slice. The returned slice
// aliases the underlying buffer; callers that hold onto it across a
// duplicate-task modifier mutation (§4.1 step 5) must copy first.
func (s *Source) GetBytes() ([]byte, error) {
	hdr := s.advance(lengthPrefixSize)
	if hdr == nil {
		return nil, ErrExhausted
	}
	n := int(hdr[0])
	if n == 0 {
		return nil, nil
	}
	payload := s.advance(n)
	if payload == nil {
		return nil, ErrShortRead
	}
	return payload, nil
}

// GetBytesMax draws a length-prefixed slice, clamping the usable length
// to max so a caller with a hard size cap (§4.3 "pool admission",
// various per-family caps in §9) never has to discard the draw and
// retry; it simply takes a shorter prefix of what the stream offered.
func (s *Source) GetBytesMax(max int) ([]byte, error) {
	b, err := s.GetBytes()
	if err != nil {
		return nil, err
	}
	if len(b) > max {
		return b[:max], nil
	}
	return b, nil
}

// GetUint64 draws eight raw bytes and reinterprets them as a uint64 via
// unsafeslice, avoiding an encoding/binary copy for what is, in this
// engine, an extremely hot path (module id selection happens on every
// single task draw).
func (s *Source) GetUint64() (uint64, error) {
	raw := s.advance(8)
	if raw == nil {
		return 0, ErrExhausted
	}
	buf := make([]byte, 8)
	copy(buf, raw)
	words := unsafeslice.Uint64SliceFromByteSlice(buf)
	return words[0], nil
}

// GetUint32 draws four bytes as a uint32, used for sizes, iteration
// counts and similar bounded numeric parameters.
func (s *Source) GetUint32() (uint32, error) {
	raw := s.advance(4)
	if raw == nil {
		return 0, ErrExhausted
	}
	return uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16 | uint32(raw[3])<<24, nil
}

// GetUint16 draws two bytes as a uint16.
func (s *Source) GetUint16() (uint16, error) {
	raw := s.advance(2)
	if raw == nil {
		return 0, ErrExhausted
	}
	return uint16(raw[0]) | uint16(raw[1])<<8, nil
}

// GetByte draws a single byte.
func (s *Source) GetByte() (byte, error) {
	raw := s.advance(1)
	if raw == nil {
		return 0, ErrExhausted
	}
	return raw[0], nil
}

// GetBool draws a byte and reports whether it is odd, matching the
// upstream Datasource's "low bit selects the branch" convention for
// every optional-field gate in the operation builders (§4.2).
func (s *Source) GetBool() (bool, error) {
	b, err := s.GetByte()
	if err != nil {
		return false, err
	}
	return b&1 == 1, nil
}

// GetDecimal draws a length-prefixed byte slice and renders it as an
// unsigned decimal string by treating each drawn byte as a base-256
// digit — the representation every Bignum-shaped field in operation/
// is built from (§4.8).
func (s *Source) GetDecimal() (string, error) {
	b, err := s.GetBytes()
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "0", nil
	}
	return bytesToDecimal(b), nil
}

func bytesToDecimal(b []byte) string {
	digits := []byte{0}
	for _, byteVal := range b {
		carry := int(byteVal)
		for i := 0; i < len(digits); i++ {
			v := int(digits[i])*256 + carry
			digits[i] = byte(v % 10)
			carry = v / 10
		}
		for carry > 0 {
			digits = append(digits, byte(carry%10))
			carry /= 10
		}
	}
	out := make([]byte, len(digits))
	for i, d := range digits {
		out[len(digits)-1-i] = '0' + d
	}
	return string(out)
}
