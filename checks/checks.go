// Package checks implements the per-operation invariant tests the Run
// loop calls right after a module dispatches an operation and before
// postprocess runs (§4.1 step 7, §8 properties P1-P3). These are
// family-specific sanity assertions a single module's own result must
// satisfy regardless of what any other module said — shape and range
// checks, not cross-module comparison.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package checks

import (
	goerrors "github.com/agilira/go-errors"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

var ErrInvariantViolated = goerrors.New("CHK_001", "operation invariant violated")

// Test runs the invariant check registered for op's family against
// result, returning ErrInvariantViolated (wrapped with detail) if it
// fails. Families with no specific invariant beyond "well-typed
// result" are a no-op here — the type assertions inside Equal/ToJSON
// already enforce that shape at the call site.
func Test(op operation.Operation, result component.Result) error {
	switch o := op.(type) {
	case *operation.DigestOp:
		return checkDigest(o, result)
	case *operation.SymmetricEncryptOp:
		return checkCiphertextNonEmpty(result)
	case *operation.ECC_GenerateKeyPairOp:
		return checkECCKeyPair(result)
	case *operation.ECDSA_SignOp:
		return checkECDSASignature(result)
	case *operation.BLS_GenerateKeyPairOp:
		return checkBLSKeyPair(result)
	case *operation.BignumCalcOp:
		return checkBignumCalc(o, result)
	default:
		return nil
	}
}

func checkDigest(o *operation.DigestOp, result component.Result) error {
	d, ok := result.(component.Digest)
	if !ok {
		return nil
	}
	if len(d.Data) == 0 {
		return goerrors.Wrap(ErrInvariantViolated, "CHK_001", "digest result must not be empty")
	}
	return nil
}

func checkCiphertextNonEmpty(result component.Result) error {
	c, ok := result.(component.Ciphertext)
	if !ok {
		return nil
	}
	if len(c.CiphertextBytes) == 0 {
		return goerrors.Wrap(ErrInvariantViolated, "CHK_002", "ciphertext must not be empty for non-empty cleartext")
	}
	return nil
}

// checkECCKeyPair covers the part of P1 ("a generated keypair's public
// point independently validates") that needs no backend: this package
// cannot itself reinvoke curve math, so it only checks that the
// generated private key is non-zero. The public coordinates are not
// checked here, and no postprocess step calls ECC_ValidatePubkey on
// the generated point.
func checkECCKeyPair(result component.Result) error {
	kp, ok := result.(component.ECC_KeyPair)
	if !ok {
		return nil
	}
	if kp.Priv.Decimal() == "0" {
		return goerrors.Wrap(ErrInvariantViolated, "CHK_003", "generated private key must not be zero")
	}
	return nil
}

func checkECDSASignature(result component.Result) error {
	sig, ok := result.(component.ECDSA_Signature)
	if !ok {
		return nil
	}
	if sig.R.Decimal() == "0" || sig.S.Decimal() == "0" {
		return goerrors.Wrap(ErrInvariantViolated, "CHK_004", "signature components must not be zero")
	}
	return nil
}

func checkBLSKeyPair(result component.Result) error {
	kp, ok := result.(component.BLS_KeyPair)
	if !ok {
		return nil
	}
	if kp.Priv.Decimal() == "0" {
		return goerrors.Wrap(ErrInvariantViolated, "CHK_005", "generated BLS private key must not be zero")
	}
	return nil
}

// checkBignumCalc enforces the per-operator algebraic invariants P2
// names concretely: Mod(A,B) for B!=0 has no more decimal digits than
// B (a digit-count bound, not an exact comparison with |B|), IsPrime
// results are 0 or 1, etc. Only the operators with a
// cheap, module-independent check are covered; the rest rely purely on
// cross-module comparison.
func checkBignumCalc(o *operation.BignumCalcOp, result component.Result) error {
	r, ok := result.(component.BignumResult)
	if !ok {
		return nil
	}
	switch o.Op {
	case operation.CalcMod:
		if o.BN1.Decimal() != "0" && bignumLen(r.Bignum) > bignumLen(o.BN1) {
			return goerrors.Wrap(ErrInvariantViolated, "CHK_006", "Mod(A,B) result must not exceed |B| in magnitude")
		}
	case operation.CalcIsPrime:
		if r.Decimal() != "0" && r.Decimal() != "1" {
			return goerrors.Wrap(ErrInvariantViolated, "CHK_007", "IsPrime(A) must return 0 or 1")
		}
	}
	return nil
}

func bignumLen(b component.Bignum) int { return b.Len() }
