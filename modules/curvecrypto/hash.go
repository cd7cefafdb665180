// hash.go: the digest ECDSA_Sign/ECDSA_Verify operate over. Every
// ECDSA scheme signs a digest rather than a raw message; SHA-256 is the
// conventional default absent an explicit hash selector in the
// operation itself.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package curvecrypto

import (
	"crypto/rand"
	"crypto/sha256"
)

func hashForSign(cleartext []byte) []byte {
	sum := sha256.Sum256(cleartext)
	return sum[:]
}

func randFill(b []byte) (int, error) {
	return rand.Read(b)
}
