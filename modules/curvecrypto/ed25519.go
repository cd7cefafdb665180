// ed25519.go: ed25519 key derivation via filippo.io/edwards25519's
// group arithmetic; stdlib crypto/ed25519 is used only for key
// generation. This module does not dispatch ECDSA_Sign or ECDSA_Verify
// on ed25519.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package curvecrypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"math/big"

	"filippo.io/edwards25519"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

func newEd25519Key() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	return ed25519.GenerateKey(rand.Reader)
}

// ed25519ScalarBytes reduces an arbitrary decimal private key into a
// canonical little-endian scalar representation edwards25519 accepts.
func ed25519ScalarBytes(dec string) ([]byte, bool) {
	v, ok := new(big.Int).SetString(dec, 10)
	if !ok || v.Sign() < 0 {
		return nil, false
	}
	be := v.Bytes()
	if len(be) > 32 {
		return nil, false
	}
	le := make([]byte, 32)
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	var wide [64]byte
	copy(wide[:32], le)
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		return nil, false
	}
	return s.Bytes(), true
}

// ed25519PointToXY carries the compressed point encoding in the X slot;
// no other module implements ed25519, so there's nothing to compare the
// Y slot against and it stays zero.
func ed25519PointToXY(p *edwards25519.Point) component.ECC_PublicKey {
	enc := p.Bytes()
	x := new(big.Int).SetBytes(reverseBytes(enc))
	return component.ECC_PublicKey{
		X: component.NewBignumFromBig(x),
		Y: component.NewBignumFromBig(big.NewInt(0)),
	}
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

func ed25519PrivateToPublic(o *operation.ECC_PrivateToPublicOp) (component.Result, error) {
	scalarBytes, ok := ed25519ScalarBytes(o.PrivKey)
	if !ok {
		return nil, nil
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(scalarBytes)
	if err != nil {
		return nil, nil
	}
	p := new(edwards25519.Point).ScalarBaseMult(s)
	pub := ed25519PointToXY(p)

	v, _ := new(big.Int).SetString(o.PrivKey, 10)
	return component.ECC_KeyPair{Priv: component.NewBignumFromBig(v), Pub: pub}, nil
}

func ed25519GenerateKeyPair(o *operation.ECC_GenerateKeyPairOp) (component.Result, error) {
	_, priv, err := newEd25519Key()
	if err != nil {
		return nil, nil
	}
	seed := priv.Seed()
	v := new(big.Int).SetBytes(reverseBytes(seed))
	s, err := edwards25519.NewScalar().SetUniformBytes(pad64(seed))
	if err != nil {
		return nil, nil
	}
	p := new(edwards25519.Point).ScalarBaseMult(s)
	return component.ECC_KeyPair{Priv: component.NewBignumFromBig(v), Pub: ed25519PointToXY(p)}, nil
}

func pad64(b []byte) []byte {
	var wide [64]byte
	copy(wide[:], b)
	return wide[:]
}
