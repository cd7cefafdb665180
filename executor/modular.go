// modular.go: the three modular BignumCalc executor variants (§4.8).
// Each fixes a constant modulus and stamps it onto every BignumCalc
// operation the buildTasks loop constructs, via BignumCalc's Policy
// GetOpPostprocess override; modules that answer false from
// SupportsModularBignumCalc are skipped entirely rather than being
// asked to run an operation they cannot honor.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package executor

import (
	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/module"
	"github.com/cryptofuzz-go/cryptodiff/operation"
	"github.com/cryptofuzz-go/cryptodiff/options"
)

const (
	bls12381R = "52435875175126190479447740508185965837690552500527637822603658699938581184513"
	bls12381P = "4002409555221667393417789825735904156556882819939007885332058136124031650490837864442687629129015664037894272559787"
	twoExp256 = "115792089237316195423570985008687907853269984665640564039457584007913129639936"
)

func newModularExecutor(registry *module.Registry, opts *options.Option, seed int64, modulus string) *Executor {
	e := New(registry, opts, seed)
	m := component.NewBignum(modulus)
	e.Modulus = &m
	return e
}

// NewModularBLS12_381_R builds an Executor whose BignumCalc operations
// are all taken modulo the BLS12-381 scalar field order.
func NewModularBLS12_381_R(registry *module.Registry, opts *options.Option, seed int64) *Executor {
	return newModularExecutor(registry, opts, seed, bls12381R)
}

// NewModularBLS12_381_P builds an Executor whose BignumCalc operations
// are all taken modulo the BLS12-381 base field prime.
func NewModularBLS12_381_P(registry *module.Registry, opts *options.Option, seed int64) *Executor {
	return newModularExecutor(registry, opts, seed, bls12381P)
}

// New2Exp256 builds an Executor whose BignumCalc operations are all
// taken modulo 2^256, the modulus most native-word bignum backends are
// fastest at.
func New2Exp256(registry *module.Registry, opts *options.Option, seed int64) *Executor {
	return newModularExecutor(registry, opts, seed, twoExp256)
}

// bignumCalcGetOpPostprocess stamps e.Modulus onto op if this Executor
// is one of the modular variants; a plain Executor leaves op untouched.
func bignumCalcGetOpPostprocess(e *Executor, ds opDatasource, op operation.Operation) operation.Operation {
	if e.Modulus == nil {
		return op
	}
	return operation.WithModulo(op, *e.Modulus)
}
