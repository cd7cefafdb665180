// optionfilter.go: gates a built operation against the Option filter's
// digest/cipher/curve/calc-op inclusion sets before a module ever sees
// it (§6 "Options", §4.1 step 3). A gated operation is reported exactly
// like a declined one — this is not a correctness signal.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package executor

import "github.com/cryptofuzz-go/cryptodiff/operation"

func checkOptionFilter(e *Executor, op operation.Operation) bool {
	switch o := op.(type) {
	case *operation.DigestOp:
		return e.Options.HaveDigest(o.DigestType)
	case *operation.HMACOp:
		return e.Options.HaveDigest(o.DigestType)
	case *operation.CMACOp:
		return e.Options.HaveCipher(o.CipherType)
	case *operation.SymmetricEncryptOp:
		return e.Options.HaveCipher(o.Cipher.CipherType)
	case *operation.SymmetricDecryptOp:
		return e.Options.HaveCipher(o.Cipher.CipherType)

	case *operation.KDF_HKDF_Op:
		return e.Options.HaveDigest(o.DigestType)
	case *operation.KDF_PBKDF_Op:
		return e.Options.HaveDigest(o.DigestType)
	case *operation.KDF_PBKDF1_Op:
		return e.Options.HaveDigest(o.DigestType)
	case *operation.KDF_PBKDF2_Op:
		return e.Options.HaveDigest(o.DigestType)
	case *operation.KDF_SSH_Op:
		return e.Options.HaveDigest(o.DigestType)
	case *operation.KDF_TLS1_PRF_Op:
		return e.Options.HaveDigest(o.DigestType)
	case *operation.KDF_X963_Op:
		return e.Options.HaveDigest(o.DigestType)
	case *operation.KDF_BCRYPT_Op:
		return e.Options.HaveDigest(o.DigestType)
	case *operation.KDF_SP_800_108_Op:
		return e.Options.HaveDigest(o.Mech.Type)

	case *operation.ECC_PrivateToPublicOp:
		return e.Options.HaveCurve(o.Curve)
	case *operation.ECC_ValidatePubkeyOp:
		return e.Options.HaveCurve(o.Curve)
	case *operation.ECC_GenerateKeyPairOp:
		return e.Options.HaveCurve(o.Curve)
	case *operation.ECDSA_SignOp:
		return e.Options.HaveCurve(o.Curve)
	case *operation.ECDSA_VerifyOp:
		return e.Options.HaveCurve(o.Curve)
	case *operation.ECDH_DeriveOp:
		return e.Options.HaveCurve(o.Curve)
	case *operation.ECIES_EncryptOp:
		return e.Options.HaveCurve(o.Curve)
	case *operation.ECIES_DecryptOp:
		return e.Options.HaveCurve(o.Curve)

	case *operation.BignumCalcOp:
		return e.Options.HaveCalcOp(o.Op)

	default:
		return true
	}
}
