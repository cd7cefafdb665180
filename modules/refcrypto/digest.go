// digest.go: Digest and HMAC dispatch. The DigestID space mixes real
// cryptographic hashes with the pack's non-cryptographic utility
// hashes (murmur3, metrohash, cityhash, go-metro) — this module is
// their home since they arrived here as DigestID values rather than
// as a separate Misc sub-operation.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package refcrypto

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	metro "github.com/dgryski/go-metro"
	cityhash "github.com/hungrybirder/cityhash"
	metrohash "github.com/shivakar/metrohash"
	murmur3 "github.com/twmb/murmur3"
	"golang.org/x/crypto/sha3"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

// newHasher returns the hash.Hash for every DigestID this module
// implements, or nil for one it declines (BLAKE3, §ties to
// modules/simdcrypto instead).
func newHasher(id operation.DigestID) func() hash.Hash {
	switch id {
	case operation.SHA1:
		return sha1.New
	case operation.SHA256:
		return sha256.New
	case operation.SHA384:
		return sha512.New384
	case operation.SHA512:
		return sha512.New
	case operation.SHA3_256:
		return sha3.New256
	case operation.SHA3_512:
		return sha3.New512
	default:
		return nil
	}
}

func u64bytes(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return b
}

func sumNonCrypto(id operation.DigestID, data []byte) ([]byte, bool) {
	switch id {
	case operation.MURMUR3:
		h1, h2 := murmur3.Sum128(data)
		return append(u64bytes(h1), u64bytes(h2)...), true
	case operation.GOMETRO:
		return u64bytes(metro.Hash64(data, 0)), true
	case operation.METROHASH:
		return u64bytes(metrohash.Hash64(data, 0)), true
	case operation.CITYHASH:
		return u64bytes(cityhash.CityHash64(data, uint32(len(data)))), true
	default:
		return nil, false
	}
}

func digestBytes(id operation.DigestID, data []byte) ([]byte, bool) {
	if sum, ok := sumNonCrypto(id, data); ok {
		return sum, true
	}
	newH := newHasher(id)
	if newH == nil {
		return nil, false
	}
	h := newH()
	h.Write(data)
	return h.Sum(nil), true
}

func dispatchDigest(o *operation.DigestOp) (component.Result, error) {
	sum, ok := digestBytes(o.DigestType, o.Cleartext)
	if !ok {
		return nil, nil
	}
	return component.Digest{Buffer: component.Buffer{Data: sum}}, nil
}

func dispatchHMAC(o *operation.HMACOp) (component.Result, error) {
	newH := newHasher(o.DigestType)
	if newH == nil {
		return nil, nil
	}
	mac := hmac.New(newH, o.Key)
	mac.Write(o.Cleartext)
	return component.MAC{Buffer: component.Buffer{Data: mac.Sum(nil)}}, nil
}
