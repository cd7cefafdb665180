// bignum.go: BignumCalc on math/big — the generic, arbitrary-modulus
// implementation every other BignumCalc backend is checked against.
// Unlike modules/simdcrypto's uint256 fast path, this one accepts any
// modulus the three modular Executor variants stamp in, not just 2^256.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package refcrypto

import (
	"crypto/rand"
	"math/big"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

func dispatchBignumCalc(o *operation.BignumCalcOp) (component.Result, error) {
	a, b, c := o.BN0.Big(), o.BN1.Big(), o.BN2.Big()
	var mod *big.Int
	if o.Modulo != nil {
		mod = o.Modulo.Big()
	}

	reduce := func(v *big.Int) *big.Int {
		if mod == nil || mod.Sign() == 0 {
			return v
		}
		return new(big.Int).Mod(v, mod)
	}

	switch o.Op {
	case operation.CalcAdd:
		return bignumOK(reduce(new(big.Int).Add(a, b)))
	case operation.CalcSub:
		return bignumOK(reduce(new(big.Int).Sub(a, b)))
	case operation.CalcMul:
		return bignumOK(reduce(new(big.Int).Mul(a, b)))
	case operation.CalcMod:
		if b.Sign() == 0 {
			return nil, nil
		}
		return bignumOK(new(big.Int).Mod(a, b))
	case operation.CalcExp:
		if mod != nil && mod.Sign() != 0 {
			return bignumOK(new(big.Int).Exp(a, b, mod))
		}
		if b.Sign() < 0 || b.BitLen() > 32 {
			return nil, nil
		}
		return bignumOK(new(big.Int).Exp(a, b, nil))
	case operation.CalcExp2:
		if a.Sign() < 0 || a.BitLen() > 32 {
			return nil, nil
		}
		return bignumOK(reduce(new(big.Int).Lsh(big.NewInt(1), uint(a.Int64()))))
	case operation.CalcGCD:
		return bignumOK(new(big.Int).GCD(nil, nil, absBig(a), absBig(b)))
	case operation.CalcSetBit:
		if b.Sign() < 0 || b.BitLen() > 20 {
			return nil, nil
		}
		return bignumOK(reduce(new(big.Int).SetBit(a, int(b.Int64()), 1)))
	case operation.CalcModLShift:
		if mod == nil {
			mod = c
		}
		if mod.Sign() == 0 || b.Sign() < 0 || b.BitLen() > 32 {
			return nil, nil
		}
		shifted := new(big.Int).Lsh(a, uint(b.Int64()))
		return bignumOK(new(big.Int).Mod(shifted, mod))
	case operation.CalcRand:
		limit := new(big.Int).Lsh(big.NewInt(1), 256)
		v, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return nil, nil
		}
		return bignumOK(v)
	case operation.CalcIsPrime:
		if a.ProbablyPrime(20) {
			return bignumOK(big.NewInt(1))
		}
		return bignumOK(big.NewInt(0))
	case operation.CalcSqrt:
		if a.Sign() < 0 {
			return nil, nil
		}
		return bignumOK(new(big.Int).Sqrt(a))
	case operation.CalcJacobi:
		return bignumOK(big.NewInt(int64(big.Jacobi(a, b))))
	default:
		return nil, nil
	}
}

func bignumOK(v *big.Int) (component.Result, error) {
	return component.BignumResult{Bignum: component.NewBignumFromBig(v)}, nil
}

func absBig(v *big.Int) *big.Int {
	if v.Sign() < 0 {
		return new(big.Int).Neg(v)
	}
	return v
}
