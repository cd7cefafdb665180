// bignum.go: the BignumCalc fast path backed by holiman/uint256.
// uint256.Int is a fixed 4-word (256-bit) integer; every operation here
// wraps modulo 2^256 for free, which is exactly the modulus
// executor.New2Exp256 stamps in. Any other modulus (including an
// unmodded plain BignumCalc) is declined so this module's results are
// never silently wrong about the range they cover.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package simdcrypto

import (
	"github.com/holiman/uint256"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

const twoExp256Decimal = "115792089237316195423570985008687907853269984665640564039457584007913129639936"

func dispatchBignumCalc(o *operation.BignumCalcOp) (component.Result, error) {
	if o.Modulo == nil || o.Modulo.Decimal() != twoExp256Decimal {
		return nil, nil
	}

	a, aErr := uint256.FromDecimal(o.BN0.Decimal())
	b, bErr := uint256.FromDecimal(o.BN1.Decimal())
	if aErr != nil || bErr != nil {
		return nil, nil
	}

	result := new(uint256.Int)
	switch o.Op {
	case operation.CalcAdd:
		result.Add(a, b)
	case operation.CalcSub:
		result.Sub(a, b)
	case operation.CalcMul:
		result.Mul(a, b)
	case operation.CalcMod:
		if b.IsZero() {
			return nil, nil
		}
		result.Mod(a, b)
	default:
		// Exp/GCD/IsPrime/etc need arbitrary precision or a modulus
		// narrower than 2^256 to stay interesting; math/big already
		// covers them in modules/refcrypto.
		return nil, nil
	}
	return component.BignumResult{Bignum: component.NewBignum(result.Dec())}, nil
}
