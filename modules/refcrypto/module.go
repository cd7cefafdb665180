// Package refcrypto is the reference backend: every algorithm it
// implements goes through the Go standard library or
// golang.org/x/crypto, the same dependency the teacher itself carries
// for its own KDF surface (kdf.go). It exists to give every other
// backend something well-understood to diverge against.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package refcrypto

import (
	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

// ID is this module's stable identifier.
const ID operation.ModuleID = 1

// Module dispatches every family this backend implements by a type
// switch on the concrete operation, mirroring the shape of the
// teacher's own single-struct HSMProvider implementation.
type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) ID() operation.ModuleID          { return ID }
func (m *Module) Name() string                    { return "refcrypto" }
func (m *Module) SupportsModularBignumCalc() bool { return true }

func (m *Module) Dispatch(op operation.Operation) (component.Result, error) {
	switch o := op.(type) {
	case *operation.DigestOp:
		return dispatchDigest(o)
	case *operation.HMACOp:
		return dispatchHMAC(o)
	case *operation.SymmetricEncryptOp:
		return dispatchEncrypt(o)
	case *operation.SymmetricDecryptOp:
		return dispatchDecrypt(o)
	case *operation.KDF_SCRYPT_Op:
		return dispatchScrypt(o)
	case *operation.KDF_HKDF_Op:
		return dispatchHKDF(o)
	case *operation.KDF_PBKDF2_Op:
		return dispatchPBKDF2(o)
	case *operation.KDF_PBKDF_Op:
		return dispatchPBKDF(o)
	case *operation.KDF_PBKDF1_Op:
		return dispatchPBKDF1(o)
	case *operation.KDF_ARGON2_Op:
		return dispatchArgon2(o)
	case *operation.KDF_BCRYPT_Op:
		return dispatchBcrypt(o)
	case *operation.KDF_SSH_Op:
		return dispatchSSHKDF(o)
	case *operation.KDF_TLS1_PRF_Op:
		return dispatchTLS1PRF(o)
	case *operation.KDF_X963_Op:
		return dispatchX963(o)
	case *operation.KDF_SP_800_108_Op:
		return dispatchSP800108(o)
	case *operation.DH_GenerateKeyPairOp:
		return dispatchDHGenerateKeyPair(o)
	case *operation.DH_DeriveOp:
		return dispatchDHDerive(o)
	case *operation.BignumCalcOp:
		return dispatchBignumCalc(o)
	case *operation.MiscOp:
		return dispatchMisc(o)
	default:
		return nil, nil
	}
}
