// cmac.go: CMAC dispatch for the synthetic HIGHWAYHASH_128 "cipher" id
// (§DOMAIN STACK) — HighwayHash is a keyed hash, not a block cipher, so
// it stands in for a CMAC construction the same shape as the rest of
// the family: a key plus a message in, a fixed-size tag out.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package simdcrypto

import (
	"github.com/minio/highwayhash"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

func dispatchCMAC(o *operation.CMACOp) (component.Result, error) {
	if o.CipherType != operation.HIGHWAYHASH_128 {
		return nil, nil
	}
	key := fitKey(o.Key, 32)
	h, err := highwayhash.New128(key)
	if err != nil {
		return nil, nil
	}
	h.Write(o.Cleartext)
	return component.MAC{Buffer: component.Buffer{Data: h.Sum(nil)}}, nil
}

func fitKey(key []byte, size int) []byte {
	if len(key) == size {
		return key
	}
	out := make([]byte, size)
	copy(out, key)
	return out
}
