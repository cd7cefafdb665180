// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package checks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

func TestTest_DigestEmptyResultViolatesInvariant(t *testing.T) {
	op := operation.NewDigestOp([]byte("x"), operation.SHA256, nil)
	err := Test(op, component.Digest{Buffer: component.Buffer{Data: nil}})
	require.ErrorIs(t, err, ErrInvariantViolated)
}

func TestTest_DigestNonEmptyResultPasses(t *testing.T) {
	op := operation.NewDigestOp([]byte("x"), operation.SHA256, nil)
	err := Test(op, component.Digest{Buffer: component.Buffer{Data: []byte("hash")}})
	require.NoError(t, err)
}

func TestTest_CiphertextEmptyViolatesInvariant(t *testing.T) {
	op := operation.NewSymmetricEncryptOp(
		operation.Cipher{CipherType: operation.AES_256_GCM, Key: make([]byte, 32), IV: make([]byte, 12)},
		[]byte("hello"), nil, false, nil, nil)
	err := Test(op, component.Ciphertext{CiphertextBytes: nil})
	require.ErrorIs(t, err, ErrInvariantViolated)
}

func TestTest_ECCGenerateKeyPairZeroPrivViolatesInvariant(t *testing.T) {
	op := operation.NewECCGenerateKeyPairOp(operation.Secp256k1, nil)
	err := Test(op, component.ECC_KeyPair{Priv: component.NewBignum("0")})
	require.ErrorIs(t, err, ErrInvariantViolated)
}

func TestTest_ECCGenerateKeyPairNonZeroPrivPasses(t *testing.T) {
	op := operation.NewECCGenerateKeyPairOp(operation.Secp256k1, nil)
	err := Test(op, component.ECC_KeyPair{Priv: component.NewBignum("123")})
	require.NoError(t, err)
}

func TestTest_ECDSASignZeroComponentViolatesInvariant(t *testing.T) {
	op := operation.NewECDSASignOp(operation.Secp256k1, "1", []byte("msg"), "", false, nil)
	err := Test(op, component.ECDSA_Signature{R: component.NewBignum("0"), S: component.NewBignum("2")})
	require.ErrorIs(t, err, ErrInvariantViolated)
}

func TestTest_BignumCalcMod_ResultLargerThanModulusViolatesInvariant(t *testing.T) {
	op := operation.NewBignumCalcOp(operation.CalcMod,
		component.NewBignum("1000"), component.NewBignum("7"),
		component.NewBignum("0"), component.NewBignum("0"), nil, nil)
	err := Test(op, component.BignumResult{Bignum: component.NewBignum("12345")})
	require.ErrorIs(t, err, ErrInvariantViolated)
}

func TestTest_BignumCalcMod_SmallResultPasses(t *testing.T) {
	op := operation.NewBignumCalcOp(operation.CalcMod,
		component.NewBignum("1000"), component.NewBignum("7"),
		component.NewBignum("0"), component.NewBignum("0"), nil, nil)
	err := Test(op, component.BignumResult{Bignum: component.NewBignum("3")})
	require.NoError(t, err)
}

func TestTest_BignumCalcIsPrime_NonBooleanResultViolatesInvariant(t *testing.T) {
	op := operation.NewBignumCalcOp(operation.CalcIsPrime,
		component.NewBignum("17"), component.NewBignum("0"),
		component.NewBignum("0"), component.NewBignum("0"), nil, nil)
	err := Test(op, component.BignumResult{Bignum: component.NewBignum("2")})
	require.ErrorIs(t, err, ErrInvariantViolated)
}

func TestTest_UnexpectedResultTypeIsNoOp(t *testing.T) {
	op := operation.NewECCGenerateKeyPairOp(operation.Secp256k1, nil)
	err := Test(op, component.Buffer{Data: []byte("whatever")})
	require.NoError(t, err)
}
