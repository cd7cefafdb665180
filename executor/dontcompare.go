// dontcompare.go: the family-specific dontCompare overrides (§4.3,
// §8 P4/P5) — cases where two correct backends may legitimately produce
// different results for the same input, so cross-module comparison
// would manufacture false positives.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package executor

import "github.com/cryptofuzz-go/cryptodiff/operation"

// desEDE3WrapDontCompare skips comparison for SymmetricDecrypt under
// DES_EDE3_WRAP, whose key-wrap padding scheme is not bit-for-bit
// standardized across implementations.
func desEDE3WrapDontCompare(op operation.Operation) bool {
	o, ok := op.(*operation.SymmetricDecryptOp)
	return ok && o.Cipher.CipherType == operation.DES_EDE3_WRAP
}

func desEDE3WrapDontCompareCMAC(op operation.Operation) bool {
	o, ok := op.(*operation.CMACOp)
	return ok && o.CipherType == operation.DES_EDE3_WRAP
}

func desEDE3WrapDontCompareHMAC(op operation.Operation) bool {
	o, ok := op.(*operation.HMACOp)
	return ok && o.CipherType == operation.DES_EDE3_WRAP
}

// ecdsaSignDontCompare skips comparison whenever the signer was free to
// pick its own nonce (§8 P4): two correct backends will produce
// different, both-valid signatures. Deterministic curves (ed25519,
// ed448) are exempt since their signing procedure has no free nonce to
// begin with.
func ecdsaSignDontCompare(op operation.Operation) bool {
	o, ok := op.(*operation.ECDSA_SignOp)
	if !ok {
		return false
	}
	if o.Curve == operation.Ed25519 || o.Curve == operation.Ed448 {
		return false
	}
	return o.UseRandomNonce()
}

// bignumCalcDontCompare skips comparison for Rand(), whose whole point
// is to return a different value on every call.
func bignumCalcDontCompare(op operation.Operation) bool {
	o, ok := op.(*operation.BignumCalcOp)
	return ok && o.Op == operation.CalcRand
}
