// sizecaps.go: the input-size sanity caps every callModule applies
// before dispatch (§4.3, §8 P2). These exist purely to keep a single
// Run bounded in wall-clock cost; they are not a correctness rule, so
// a gated operation is reported exactly like a declined one.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package executor

import "github.com/cryptofuzz-go/cryptodiff/operation"

// kMaxBignumSize mirrors pools.kMaxBignumSize; duplicated here (rather
// than imported) because the size-cap check is a property of operation
// admission, while the pools constant is a property of pool admission
// — the two happen to share a value today (§3 I4, §4.3) but are
// conceptually independent limits.
const kMaxBignumSize = 4096

const maxPrivKeyDigits = 4096

func checkSizeCaps(op operation.Operation) bool {
	switch o := op.(type) {
	case *operation.ECC_PrivateToPublicOp:
		return inRange(len(o.PrivKey), 1, maxPrivKeyDigits)
	case *operation.ECDSA_SignOp:
		return inRange(len(o.PrivKey), 1, maxPrivKeyDigits)
	case *operation.BLS_PrivateToPublicOp:
		return inRange(len(o.PrivKey), 1, maxPrivKeyDigits)
	case *operation.BLS_SignOp:
		return inRange(len(o.PrivKey), 1, maxPrivKeyDigits)

	case *operation.DH_GenerateKeyPairOp:
		return len(o.Prime) <= kMaxBignumSize && len(o.Base_) <= kMaxBignumSize
	case *operation.DH_DeriveOp:
		return len(o.Prime) <= kMaxBignumSize && len(o.Base_) <= kMaxBignumSize &&
			len(o.Pub) <= kMaxBignumSize && len(o.Priv) <= kMaxBignumSize

	case *operation.BignumCalcOp:
		if o.BN0.Len() > kMaxBignumSize || o.BN1.Len() > kMaxBignumSize ||
			o.BN2.Len() > kMaxBignumSize || o.BN3.Len() > kMaxBignumSize {
			return false
		}
		switch o.Op {
		case operation.CalcSetBit:
			return o.BN1.Len() <= 4
		case operation.CalcExp:
			return o.BN0.Len() <= 5 && o.BN1.Len() <= 2
		case operation.CalcModLShift:
			return o.BN1.Len() <= 4
		case operation.CalcExp2:
			return o.BN0.Len() <= 4
		}
		return true

	case *operation.BLS_IsG1OnCurveOp:
		return o.G1.X.Len() <= kMaxBignumSize && o.G1.Y.Len() <= kMaxBignumSize
	case *operation.BLS_IsG2OnCurveOp:
		return o.G2.V.Len() <= kMaxBignumSize && o.G2.W.Len() <= kMaxBignumSize &&
			o.G2.X.Len() <= kMaxBignumSize && o.G2.Y.Len() <= kMaxBignumSize

	// ECDSA_Verify and BLS_Verify deliberately impose no cap (§4.3,
	// §9 open question): a verifier must stay robust against arbitrary
	// attacker-sized input.
	case *operation.ECDSA_VerifyOp, *operation.BLS_VerifyOp:
		return true

	default:
		return true
	}
}

func inRange(n, lo, hi int) bool { return n >= lo && n <= hi }
