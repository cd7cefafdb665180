// digest.go: SHA256 via minio/sha256-simd (overlapping modules/refcrypto's
// stdlib SHA256 for a real cross-module check, §DOMAIN STACK) and
// BLAKE3 via zeebo/blake3, which no other module implements.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package simdcrypto

import (
	"github.com/zeebo/blake3"

	simdsha256 "github.com/minio/sha256-simd"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

func dispatchDigest(o *operation.DigestOp) (component.Result, error) {
	switch o.DigestType {
	case operation.SHA256:
		sum := simdsha256.Sum256(o.Cleartext)
		return component.Digest{Buffer: component.Buffer{Data: sum[:]}}, nil
	case operation.BLAKE3:
		sum := blake3.Sum256(o.Cleartext)
		return component.Digest{Buffer: component.Buffer{Data: sum[:]}}, nil
	default:
		return nil, nil
	}
}
