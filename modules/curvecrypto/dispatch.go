// dispatch.go: routes the ECC_*/ECDSA_*/ECDH_Derive families to a
// per-curve implementation. Each curve file owns its own library
// import and declines (nil, nil) for curves it doesn't cover.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package curvecrypto

import (
	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

func dispatchPrivateToPublic(o *operation.ECC_PrivateToPublicOp) (component.Result, error) {
	switch o.Curve {
	case operation.Secp256k1:
		return secp256k1PrivateToPublic(o)
	case operation.Ed25519:
		return ed25519PrivateToPublic(o)
	case operation.Ristretto255:
		return ristrettoPrivateToPublic(o)
	default:
		return nil, nil
	}
}

func dispatchGenerateKeyPair(o *operation.ECC_GenerateKeyPairOp) (component.Result, error) {
	switch o.Curve {
	case operation.Secp256k1:
		return secp256k1GenerateKeyPair(o)
	case operation.Ed25519:
		return ed25519GenerateKeyPair(o)
	case operation.Ristretto255:
		return ristrettoGenerateKeyPair(o)
	default:
		return nil, nil
	}
}

func dispatchValidatePubkey(o *operation.ECC_ValidatePubkeyOp) (component.Result, error) {
	switch o.Curve {
	case operation.Secp256k1:
		return secp256k1ValidatePubkey(o)
	default:
		return nil, nil
	}
}

func dispatchSign(o *operation.ECDSA_SignOp) (component.Result, error) {
	switch o.Curve {
	case operation.Secp256k1:
		return secp256k1Sign(o)
	default:
		return nil, nil
	}
}

func dispatchVerify(o *operation.ECDSA_VerifyOp) (component.Result, error) {
	switch o.Curve {
	case operation.Secp256k1:
		return secp256k1Verify(o)
	default:
		return nil, nil
	}
}

func dispatchECDH(o *operation.ECDH_DeriveOp) (component.Result, error) {
	switch o.Curve {
	case operation.Secp256k1:
		return secp256k1ECDH(o)
	case operation.Ristretto255:
		return ristrettoECDH(o)
	default:
		return nil, nil
	}
}
