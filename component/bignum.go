// bignum.go: canonical decimal bignum value type shared by every family
// that exchanges arbitrary-precision integers with a backend.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package component

import (
	"math/big"
	"strings"
)

// Bignum is an arbitrary-precision integer carried in its canonical,
// trimmed decimal string form. Equality between two Bignums is defined
// on that canonical form, never on the underlying byte representation a
// backend happened to use — per §9 "Result equality must be semantic".
type Bignum struct {
	dec string
}

// NewBignum constructs a Bignum from a decimal string, trimming any
// leading zeroes except for the literal value "0" itself.
func NewBignum(dec string) Bignum {
	return Bignum{dec: trimLeadingZeroes(dec)}
}

// NewBignumFromBig constructs a Bignum from a math/big.Int.
func NewBignumFromBig(v *big.Int) Bignum {
	if v == nil {
		return Bignum{dec: "0"}
	}
	return Bignum{dec: v.String()}
}

func trimLeadingZeroes(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	if neg && s != "0" {
		s = "-" + s
	}
	return s
}

// Decimal returns the canonical trimmed decimal string.
func (b Bignum) Decimal() string { return b.dec }

// Big returns the value as a math/big.Int. Malformed decimal strings
// decode to zero; callers that need to detect malformed input should
// validate the Decimal() string themselves before calling this.
func (b Bignum) Big() *big.Int {
	v, ok := new(big.Int).SetString(b.dec, 10)
	if !ok {
		return new(big.Int)
	}
	return v
}

// Len reports the length in decimal digits of the canonical form,
// ignoring a leading minus sign — this is the quantity §4.3's sanity
// caps and §3's kMaxBignumSize invariant are stated in terms of.
func (b Bignum) Len() int {
	s := b.dec
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	return len(s)
}

// Equal reports semantic equality: two Bignums are equal iff their
// canonical decimal forms match.
func (b Bignum) Equal(other Bignum) bool { return b.dec == other.dec }

func (b Bignum) String() string { return b.dec }
