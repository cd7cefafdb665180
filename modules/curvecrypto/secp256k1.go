// secp256k1.go: the decred-backed secp256k1 backend. This is the
// primary ECDSA signer; VerifierModule in btcec.go cross-checks
// ECDSA_Verify against an independent implementation of the same
// curve.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package curvecrypto

import (
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

var errNotOnCurve = errors.New("curvecrypto: point not on curve")

func decimalToScalar(dec string) (*secp256k1.ModNScalar, bool) {
	v, ok := new(big.Int).SetString(dec, 10)
	if !ok {
		return nil, false
	}
	if v.Sign() < 0 {
		return nil, false
	}
	buf := v.Bytes()
	if len(buf) > 32 {
		return nil, false
	}
	var padded [32]byte
	copy(padded[32-len(buf):], buf)
	var s secp256k1.ModNScalar
	overflow := s.SetBytes(&padded)
	if overflow != 0 {
		return nil, false
	}
	return &s, true
}

func secp256k1KeyPairFromScalar(s *secp256k1.ModNScalar) component.ECC_KeyPair {
	priv := secp256k1.NewPrivateKey(s)
	pub := priv.PubKey()
	pubX, pubY := pubXY(pub)
	sb := s.Bytes()
	return component.ECC_KeyPair{
		Priv: component.NewBignumFromBig(new(big.Int).SetBytes(sb[:])),
		Pub: component.ECC_PublicKey{
			X: component.NewBignumFromBig(fieldValBig(pubX)),
			Y: component.NewBignumFromBig(fieldValBig(pubY)),
		},
	}
}

func fieldValBig(f *secp256k1.FieldVal) *big.Int {
	var b [32]byte
	f.PutBytesUnchecked(b[:])
	return new(big.Int).SetBytes(b[:])
}

func pubXY(pub *secp256k1.PublicKey) (*secp256k1.FieldVal, *secp256k1.FieldVal) {
	var jac secp256k1.JacobianPoint
	pub.AsJacobian(&jac)
	return &jac.X, &jac.Y
}

func secp256k1PrivateToPublic(o *operation.ECC_PrivateToPublicOp) (component.Result, error) {
	s, ok := decimalToScalar(o.PrivKey)
	if !ok {
		return nil, nil
	}
	return secp256k1KeyPairFromScalar(s), nil
}

func secp256k1GenerateKeyPair(o *operation.ECC_GenerateKeyPairOp) (component.Result, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, nil
	}
	s := priv.Key
	return secp256k1KeyPairFromScalar(&s), nil
}

func secp256k1ValidatePubkey(o *operation.ECC_ValidatePubkeyOp) (component.Result, error) {
	x, okX := new(big.Int).SetString(o.PubX, 10)
	y, okY := new(big.Int).SetString(o.PubY, 10)
	if !okX || !okY {
		return component.Bool{Value: false}, nil
	}
	var fx, fy secp256k1.FieldVal
	if overflowsField(x) || overflowsField(y) {
		return component.Bool{Value: false}, nil
	}
	fx.SetByteSlice(x.Bytes())
	fy.SetByteSlice(y.Bytes())
	ok := secp256k1.NewPublicKey(&fx, &fy).IsOnCurve()
	return component.Bool{Value: ok}, nil
}

func overflowsField(v *big.Int) bool {
	return v.Sign() < 0 || v.BitLen() > 256
}

func secp256k1Sign(o *operation.ECDSA_SignOp) (component.Result, error) {
	s, ok := decimalToScalar(o.PrivKey)
	if !ok {
		return nil, nil
	}
	priv := secp256k1.NewPrivateKey(s)
	hash := hashForSign(o.Cleartext)
	sig := ecdsa.Sign(priv, hash)
	pub := priv.PubKey()
	pubX, pubY := pubXY(pub)

	rScalar := sig.R()
	sScalar := sig.S()
	rBytes := rScalar.Bytes()
	sBytes := sScalar.Bytes()
	return component.ECDSA_Signature{
		Pub: component.ECC_PublicKey{
			X: component.NewBignumFromBig(fieldValBig(pubX)),
			Y: component.NewBignumFromBig(fieldValBig(pubY)),
		},
		R: component.NewBignumFromBig(new(big.Int).SetBytes(rBytes[:])),
		S: component.NewBignumFromBig(new(big.Int).SetBytes(sBytes[:])),
	}, nil
}

func secp256k1Verify(o *operation.ECDSA_VerifyOp) (component.Result, error) {
	x, okX := new(big.Int).SetString(o.PubX, 10)
	y, okY := new(big.Int).SetString(o.PubY, 10)
	r, okR := new(big.Int).SetString(o.SigR, 10)
	sv, okS := new(big.Int).SetString(o.SigS, 10)
	if !okX || !okY || !okR || !okS {
		return component.Bool{Value: false}, nil
	}
	if overflowsField(x) || overflowsField(y) || overflowsField(r) || overflowsField(sv) {
		return component.Bool{Value: false}, nil
	}

	pub, err := secp256k1PubFromCoords(x, y)
	if err != nil {
		return component.Bool{Value: false}, nil
	}

	var rs, ss secp256k1.ModNScalar
	if rs.SetByteSlice(r.Bytes()) || ss.SetByteSlice(sv.Bytes()) {
		return component.Bool{Value: false}, nil
	}
	sig := ecdsa.NewSignature(&rs, &ss)
	hash := hashForSign(o.Cleartext)
	return component.Bool{Value: sig.Verify(hash, pub)}, nil
}

func secp256k1PubFromCoords(x, y *big.Int) (*secp256k1.PublicKey, error) {
	var fx, fy secp256k1.FieldVal
	fx.SetByteSlice(x.Bytes())
	fy.SetByteSlice(y.Bytes())
	pub := secp256k1.NewPublicKey(&fx, &fy)
	if !pub.IsOnCurve() {
		return nil, errNotOnCurve
	}
	return pub, nil
}

func secp256k1ECDH(o *operation.ECDH_DeriveOp) (component.Result, error) {
	priv, ok := decimalToScalar(o.Priv1)
	if !ok {
		return nil, nil
	}
	x, okX := new(big.Int).SetString(o.Pub2X, 10)
	y, okY := new(big.Int).SetString(o.Pub2Y, 10)
	if !okX || !okY || overflowsField(x) || overflowsField(y) {
		return nil, nil
	}
	pub, err := secp256k1PubFromCoords(x, y)
	if err != nil {
		return nil, nil
	}

	var point, result secp256k1.JacobianPoint
	pub.AsJacobian(&point)
	secp256k1.ScalarMultNonConst(priv, &point, &result)
	result.ToAffine()

	shared := result.X.Bytes()
	return component.Secret{Buffer: component.Buffer{Data: shared[:]}}, nil
}
