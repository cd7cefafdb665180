// Package curvecrypto wires in the retrieval pack's curve-specific
// libraries: decred's secp256k1, filippo.io/edwards25519, two
// independent ristretto255 implementations, and supranational/blst for
// the full BLS12-381 pairing surface. Module is the primary backend;
// VerifierModule is a second, narrower module built on btcsuite/btcd's
// secp256k1 so ECDSA_Verify has a genuinely independent second
// implementation to compare against Module's decred-backed signer.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package curvecrypto

import (
	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

const (
	ID         operation.ModuleID = 3
	VerifierID operation.ModuleID = 4
)

// Module is the primary curve backend.
type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) ID() operation.ModuleID          { return ID }
func (m *Module) Name() string                    { return "curvecrypto" }
func (m *Module) SupportsModularBignumCalc() bool { return true }

func (m *Module) Dispatch(op operation.Operation) (component.Result, error) {
	switch o := op.(type) {
	case *operation.ECC_PrivateToPublicOp:
		return dispatchPrivateToPublic(o)
	case *operation.ECC_GenerateKeyPairOp:
		return dispatchGenerateKeyPair(o)
	case *operation.ECC_ValidatePubkeyOp:
		return dispatchValidatePubkey(o)
	case *operation.ECDSA_SignOp:
		return dispatchSign(o)
	case *operation.ECDSA_VerifyOp:
		return dispatchVerify(o)
	case *operation.ECDH_DeriveOp:
		return dispatchECDH(o)
	case *operation.ECIES_EncryptOp:
		return dispatchECIESEncrypt(o)
	case *operation.ECIES_DecryptOp:
		return dispatchECIESDecrypt(o)
	case *operation.BLS_PrivateToPublicOp:
		return dispatchBLSPrivateToPublic(o)
	case *operation.BLS_GenerateKeyPairOp:
		return dispatchBLSGenerateKeyPair(o)
	case *operation.BLS_SignOp:
		return dispatchBLSSign(o)
	case *operation.BLS_VerifyOp:
		return dispatchBLSVerify(o)
	case *operation.BLS_PairingOp:
		return dispatchBLSPairing(o)
	case *operation.BLS_HashToG1Op:
		return dispatchBLSHashToG1(o)
	case *operation.BLS_HashToG2Op:
		return dispatchBLSHashToG2(o)
	case *operation.BLS_IsG1OnCurveOp:
		return dispatchBLSIsG1OnCurve(o)
	case *operation.BLS_IsG2OnCurveOp:
		return dispatchBLSIsG2OnCurve(o)
	case *operation.BLS_Compress_G1Op:
		return dispatchBLSCompressG1(o)
	case *operation.BLS_Decompress_G1Op:
		return dispatchBLSDecompressG1(o)
	case *operation.BLS_Compress_G2Op:
		return dispatchBLSCompressG2(o)
	case *operation.BLS_Decompress_G2Op:
		return dispatchBLSDecompressG2(o)
	case *operation.BignumCalcOp:
		return dispatchBignumCalc(o)
	default:
		return nil, nil
	}
}

// VerifierModule implements only ECDSA_Verify on secp256k1, via
// btcsuite/btcd's independent implementation.
type VerifierModule struct{}

func NewVerifier() *VerifierModule { return &VerifierModule{} }

func (m *VerifierModule) ID() operation.ModuleID          { return VerifierID }
func (m *VerifierModule) Name() string                    { return "curvecrypto-btcec" }
func (m *VerifierModule) SupportsModularBignumCalc() bool { return false }

func (m *VerifierModule) Dispatch(op operation.Operation) (component.Result, error) {
	o, ok := op.(*operation.ECDSA_VerifyOp)
	if !ok {
		return nil, nil
	}
	return dispatchVerifyBtcec(o)
}
