// dh.go: classic Diffie-Hellman, implemented directly on math/big —
// no example repo in the retrieval pack carries a dedicated DH
// library, and the construction itself is a single modular
// exponentiation, the textbook case math/big exists for.
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

func decimalBig(s string) (*big.Int, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	return v, ok
}

func dispatchDHGenerateKeyPair(o *operation.DH_GenerateKeyPairOp) (component.Result, error) {
	prime, ok := decimalBig(o.Prime)
	if !ok || prime.Sign() <= 0 {
		return nil, nil
	}
	base, ok := decimalBig(o.Base_)
	if !ok {
		return nil, nil
	}
	priv, err := randBelow(prime)
	if err != nil {
		return nil, nil
	}
	pub := new(big.Int).Exp(base, priv, prime)
	return component.DH_KeyPair{
		Priv: component.NewBignumFromBig(priv),
		Pub:  component.NewBignumFromBig(pub),
	}, nil
}

func dispatchDHDerive(o *operation.DH_DeriveOp) (component.Result, error) {
	prime, ok := decimalBig(o.Prime)
	if !ok || prime.Sign() <= 0 {
		return nil, nil
	}
	pub, ok := decimalBig(o.Pub)
	if !ok {
		return nil, nil
	}
	priv, ok := decimalBig(o.Priv)
	if !ok {
		return nil, nil
	}
	secret := new(big.Int).Exp(pub, priv, prime)
	return component.BignumResult{Bignum: component.NewBignumFromBig(secret)}, nil
}

func randBelow(n *big.Int) (*big.Int, error) {
	if n.Sign() <= 0 {
		return big.NewInt(0), nil
	}
	return rand.Int(rand.Reader, n)
}
