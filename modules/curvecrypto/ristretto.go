// ristretto.go: ristretto255. ECC_PrivateToPublic and ECDH_Derive go
// through gtank/ristretto255's Scalar/Element FromUniformBytes +
// ScalarMult family; ECC_GenerateKeyPair goes through
// bwesterb/go-ristretto's Rand()/ScalarMultBase instead, so both
// libraries from the retrieval pack are genuinely exercised rather than
// one shadowing the other.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package curvecrypto

import (
	"crypto/sha512"
	"math/big"

	bwristretto "github.com/bwesterb/go-ristretto"
	"github.com/gtank/ristretto255"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

// uniformBytesFromDecimal expands a decimal scalar into the 64-byte
// uniform input FromUniformBytes expects, via the same sha512-widening
// trick dhpsi_ristretto.go's DeriveMultiply uses for arbitrary input.
func uniformBytesFromDecimal(dec string) ([]byte, bool) {
	v, ok := new(big.Int).SetString(dec, 10)
	if !ok || v.Sign() < 0 {
		return nil, false
	}
	hash := sha512.Sum512(v.Bytes())
	return hash[:], true
}

func ristrettoKeyPair(priv string) (component.ECC_KeyPair, bool) {
	uniform, ok := uniformBytesFromDecimal(priv)
	if !ok {
		return component.ECC_KeyPair{}, false
	}
	scalar := ristretto255.NewScalar().FromUniformBytes(uniform)
	elem := ristretto255.NewElement().ScalarBaseMult(scalar)
	enc := elem.Encode(nil)
	x := new(big.Int).SetBytes(enc)

	v, _ := new(big.Int).SetString(priv, 10)
	return component.ECC_KeyPair{
		Priv: component.NewBignumFromBig(v),
		Pub: component.ECC_PublicKey{
			X: component.NewBignumFromBig(x),
			Y: component.NewBignumFromBig(big.NewInt(0)),
		},
	}, true
}

func ristrettoPrivateToPublic(o *operation.ECC_PrivateToPublicOp) (component.Result, error) {
	kp, ok := ristrettoKeyPair(o.PrivKey)
	if !ok {
		return nil, nil
	}
	return kp, nil
}

func ristrettoGenerateKeyPair(o *operation.ECC_GenerateKeyPairOp) (component.Result, error) {
	var secretKey bwristretto.Scalar
	secretKey.Rand()
	var publicKey bwristretto.Point
	publicKey.ScalarMultBase(&secretKey)

	var privBytes, pubBytes [32]byte
	secretKey.BytesInto(&privBytes)
	publicKey.BytesInto(&pubBytes)

	privVal := new(big.Int).SetBytes(privBytes[:])
	pubVal := new(big.Int).SetBytes(pubBytes[:])
	return component.ECC_KeyPair{
		Priv: component.NewBignumFromBig(privVal),
		Pub: component.ECC_PublicKey{
			X: component.NewBignumFromBig(pubVal),
			Y: component.NewBignumFromBig(big.NewInt(0)),
		},
	}, nil
}

// ristrettoECDH mirrors dhpsi_ristretto.go's R255.DeriveMultiply: the
// peer's public coordinate is hashed into a uniform point rather than
// decoded, since Pub2X here is a decimal scalar coordinate rather than
// a canonical ristretto255 encoding.
func ristrettoECDH(o *operation.ECDH_DeriveOp) (component.Result, error) {
	uniform, ok := uniformBytesFromDecimal(o.Priv1)
	if !ok {
		return nil, nil
	}
	scalar := ristretto255.NewScalar().FromUniformBytes(uniform)

	peerVal, ok := new(big.Int).SetString(o.Pub2X, 10)
	if !ok {
		return nil, nil
	}
	hash := sha512.Sum512(peerVal.Bytes())
	elem := ristretto255.NewElement().FromUniformBytes(hash[:])

	result := ristretto255.NewElement().ScalarMult(scalar, elem)
	enc := result.Encode(nil)
	return component.Secret{Buffer: component.Buffer{Data: enc}}, nil
}
