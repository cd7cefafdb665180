// modular.go: the BLS12-381-restricted modular BignumCalc variant.
// Module declares SupportsModularBignumCalc() true so the executor's
// policy gate lets modular calls through; Dispatch itself only honors
// the two moduli BLS12-381 actually defines — the scalar field order r
// and the base field prime p — and declines every other modulus,
// mirroring modules/simdcrypto's narrower 2^256-only variant.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package curvecrypto

import (
	"math/big"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

const (
	bls12381ScalarOrder = "52435875175126190479447740508185965837690552500527637822603658699938581184513"
	bls12381BasePrime   = "4002409555221667393417789825735904156556882819939007885332058136124031650490837864442687629129015664037894272559787"
)

func isBLS12381Modulus(dec string) bool {
	return dec == bls12381ScalarOrder || dec == bls12381BasePrime
}

func dispatchBignumCalc(o *operation.BignumCalcOp) (component.Result, error) {
	if o.Modulo == nil || !isBLS12381Modulus(o.Modulo.Decimal()) {
		return nil, nil
	}

	mod := o.Modulo.Big()
	a := o.BN0.Big()
	b := o.BN1.Big()

	result := new(big.Int)
	switch o.Op {
	case operation.CalcAdd:
		result.Add(a, b).Mod(result, mod)
	case operation.CalcSub:
		result.Sub(a, b).Mod(result, mod)
	case operation.CalcMul:
		result.Mul(a, b).Mod(result, mod)
	case operation.CalcExp:
		result.Exp(a, b, mod)
	case operation.CalcMod:
		result.Mod(a, mod)
	default:
		return nil, nil
	}
	return component.BignumResult{Bignum: component.NewBignumFromBig(result)}, nil
}
