// ecdh.go: the ECDH_Derive operation substitution (§4.6). With some
// probability, the original operation is replaced by one built from a
// pair of ECC_PrivateToPublic calls made against a chosen module,
// letting the fuzzer exercise ECDH over keys it just generated instead
// of only ever over a synthetic public point.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package executor

import (
	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

func ecdhDeriveGetOpPostprocess(e *Executor, ds opDatasource, op operation.Operation) operation.Operation {
	orig, ok := op.(*operation.ECDH_DeriveOp)
	if !ok {
		return op
	}

	substitute, err := ds.GetBool()
	if err != nil || !substitute {
		return op
	}

	rawID, err := ds.GetUint64()
	if err != nil {
		return op
	}
	mod, ok := e.resolveModule(operation.ModuleID(rawID))
	if !ok {
		return op
	}

	mod1, err := ds.GetBytes()
	if err != nil {
		return op
	}
	mod2, err := ds.GetBytes()
	if err != nil {
		return op
	}

	op1, err := operation.BuildECCPrivateToPublic(ds, mod1)
	if err != nil {
		return op
	}
	op2, err := operation.BuildECCPrivateToPublic(ds, mod2)
	if err != nil {
		return op
	}

	if op1.Curve != op2.Curve {
		return op
	}

	r1, err := mod.Dispatch(op1)
	if err != nil || r1 == nil {
		return op
	}
	r2, err := mod.Dispatch(op2)
	if err != nil || r2 == nil {
		return op
	}

	kp1, ok := r1.(component.ECC_KeyPair)
	if !ok {
		return op
	}
	kp2, ok := r2.(component.ECC_KeyPair)
	if !ok {
		return op
	}

	return operation.NewECDHDeriveOp(
		op1.Curve, op1.PrivKey, kp1.Pub.X.Decimal(), kp1.Pub.Y.Decimal(),
		op2.PrivKey, kp2.Pub.X.Decimal(), kp2.Pub.Y.Decimal(), orig.GetModifier(),
	)
}
