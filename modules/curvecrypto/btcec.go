// btcec.go: VerifierModule's independent secp256k1 ECDSA_Verify path,
// backed by btcsuite/btcd's btcec rather than decred's secp256k1/v4, so
// a signature accepted by secp256k1.go gets checked by a second,
// unrelated implementation of the same curve.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package curvecrypto

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

func dispatchVerifyBtcec(o *operation.ECDSA_VerifyOp) (component.Result, error) {
	if o.Curve != operation.Secp256k1 {
		return nil, nil
	}

	x, okX := new(big.Int).SetString(o.PubX, 10)
	y, okY := new(big.Int).SetString(o.PubY, 10)
	r, okR := new(big.Int).SetString(o.SigR, 10)
	s, okS := new(big.Int).SetString(o.SigS, 10)
	if !okX || !okY || !okR || !okS {
		return component.Bool{Value: false}, nil
	}
	if overflowsField(x) || overflowsField(y) || overflowsField(r) || overflowsField(s) {
		return component.Bool{Value: false}, nil
	}

	var fx, fy btcec.FieldVal
	fx.SetByteSlice(x.Bytes())
	fy.SetByteSlice(y.Bytes())
	pub := btcec.NewPublicKey(&fx, &fy)
	if !pub.IsOnCurve() {
		return component.Bool{Value: false}, nil
	}

	var rs, ss btcec.ModNScalar
	if rs.SetByteSlice(r.Bytes()) || ss.SetByteSlice(s.Bytes()) {
		return component.Bool{Value: false}, nil
	}
	sig := ecdsa.NewSignature(&rs, &ss)

	hash := hashForSign(o.Cleartext)
	return component.Bool{Value: sig.Verify(hash, pub)}, nil
}
