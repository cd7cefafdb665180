// bignumcalc.go: BignumCalc, the one operation family the executor
// dispatches in four flavors — plain and three modular variants with a
// fixed modulus stamped in by the executor itself (§4.8). The operation
// type is the same either way; Modulo is simply populated or not.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package operation

import (
	"fmt"

	"github.com/cryptofuzz-go/cryptodiff/component"
)

// BignumCalcOp carries up to four operands (bn0-bn3, following the
// upstream naming) plus the operator and an optional fixed modulus. Not
// every Calc op uses every operand; Add/Sub/Mul/Mod/GCD/Jacobi use two,
// Exp2/IsPrime/Sqrt use one, ModLShift uses three.
type BignumCalcOp struct {
	Base
	Op             CalcOp
	BN0, BN1, BN2, BN3 component.Bignum
	Modulo         *component.Bignum
}

func NewBignumCalcOp(op CalcOp, bn0, bn1, bn2, bn3 component.Bignum, modulo *component.Bignum, modifier []byte) *BignumCalcOp {
	return &BignumCalcOp{Base: NewBase(BignumCalc, modifier), Op: op, BN0: bn0, BN1: bn1, BN2: bn2, BN3: bn3, Modulo: modulo}
}
func (o *BignumCalcOp) AlgorithmString() string { return string(o.Op) }
func (o *BignumCalcOp) ToString() string {
	mod := "nullopt"
	if o.Modulo != nil {
		mod = o.Modulo.Decimal()
	}
	return fmt.Sprintf("BignumCalc(op=%s, bn0=%s, bn1=%s, bn2=%s, bn3=%s, mod=%s, modifier=%s)",
		o.Op, o.BN0.Decimal(), o.BN1.Decimal(), o.BN2.Decimal(), o.BN3.Decimal(), mod, o.modifierHex())
}
func (o *BignumCalcOp) ToJSON() map[string]any {
	m := map[string]any{
		"op": string(o.Op), "bn0": o.BN0.Decimal(), "bn1": o.BN1.Decimal(),
		"bn2": o.BN2.Decimal(), "bn3": o.BN3.Decimal(),
	}
	if o.Modulo != nil {
		m["mod"] = o.Modulo.Decimal()
	}
	return m
}
func (o *BignumCalcOp) Equal(other Operation) bool {
	oo, ok := other.(*BignumCalcOp)
	if !ok || o.Op != oo.Op || !o.EqualModifier(oo.Base) {
		return false
	}
	if !o.BN0.Equal(oo.BN0) || !o.BN1.Equal(oo.BN1) || !o.BN2.Equal(oo.BN2) || !o.BN3.Equal(oo.BN3) {
		return false
	}
	switch {
	case o.Modulo == nil && oo.Modulo == nil:
		return true
	case o.Modulo == nil || oo.Modulo == nil:
		return false
	default:
		return o.Modulo.Equal(*oo.Modulo)
	}
}
