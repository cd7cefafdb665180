// postprocess.go: the shared sanitizer-probe/pool-admission step every
// family's Postprocess hook runs (§4.3b, §3 "Pool"), plus the
// family-specific postprocess overrides: the self-decrypt check
// (§4.4), the DH ¼ pool-admission gate, and BLS_Sign's pool population
// (§4.7).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package executor

import (
	"encoding/hex"
	"fmt"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/module"
	"github.com/cryptofuzz-go/cryptodiff/operation"
	"github.com/cryptofuzz-go/cryptodiff/sanitizer"
)

// flatRegion is the narrow interface probeResult checks a Result
// against; declared locally to avoid importing component just for a
// type name used once.
type flatRegion interface{ FlatBytes() []byte }

func probeResult(result component.Result) {
	if r, ok := result.(flatRegion); ok {
		sanitizer.ProbeRegion(r)
	}
	if c, ok := result.(component.Ciphertext); ok && c.HasTag {
		sanitizer.Probe(c.Tag)
	}
}

// admitToPools feeds the pools every family's operations can seed,
// keyed on the concrete Result type rather than the operation family:
// any module that happens to produce an ECC_KeyPair, for instance,
// grows the keypair pool regardless of which family asked for it.
func admitToPools(e *Executor, op operation.Operation, result component.Result) {
	switch r := result.(type) {
	case component.ECC_KeyPair:
		e.Pools.CurveKeypair.Insert(r)
		e.Pools.CurvePrivkey.Insert(r.Priv)
	case component.BLS_KeyPair:
		e.Pools.CurvePrivkey.Insert(r.Priv)
	case component.ECDSA_Signature:
		e.Pools.CurveECDSASignature.Insert(r)
	case component.G1:
		e.Pools.CurveBLSG1.Insert(r)
	case component.G2:
		e.Pools.CurveBLSG2.Insert(r)
	case component.BignumResult:
		e.Pools.InsertBignum(r.Bignum)
	}
}

// selfDecryptPostprocess implements §4.4 exactly: after a successful
// SymmetricEncrypt, the same module is asked to decrypt its own
// ciphertext back to the original cleartext, unless the cipher/module
// combination is known not to support that round trip.
func selfDecryptPostprocess(e *Executor, mod module.Module, op operation.Operation, rp resultPair) {
	if e.Options.NoDecrypt() || !rp.ok {
		return
	}
	enc, ok := op.(*operation.SymmetricEncryptOp)
	if !ok {
		return
	}
	ct, ok := rp.result.(component.Ciphertext)
	if !ok {
		return
	}
	if len(enc.Cleartext) == 0 || len(ct.CiphertextBytes) == 0 {
		return
	}

	if !trySelfDecrypt(mod, enc) {
		return
	}

	dec := operation.FromEncrypt(enc, ct.CiphertextBytes, ct.Tag, ct.HasTag)
	result, err := mod.Dispatch(dec)
	if err != nil {
		return
	}
	if result == nil {
		fmt.Printf("Cannot decrypt ciphertext\n\n")
		printSelfDecryptDiagnostic(enc, ct)
		Abort([]task{{mod: mod, op: op}}, "cannot decrypt ciphertext")
		return
	}
	cleartext, ok := result.(component.Cleartext)
	if !ok {
		return
	}
	if string(cleartext.Data) != string(enc.Cleartext) {
		fmt.Printf("Cannot decrypt ciphertext (but decryption ostensibly succeeded)\n\n")
		printSelfDecryptDiagnostic(enc, ct)
		fmt.Printf("Purported cleartext: %s\n", hex.EncodeToString(cleartext.Data))
		Abort([]task{{mod: mod, op: op}}, "cannot decrypt ciphertext")
	}
}

// printSelfDecryptDiagnostic prints the operation and result lines §4.4
// requires before any self-decrypt abort: the operation that produced
// the ciphertext, the ciphertext itself, and its tag (or "nullopt" if
// the cipher didn't produce one).
func printSelfDecryptDiagnostic(enc *operation.SymmetricEncryptOp, ct component.Ciphertext) {
	fmt.Printf("Operation:\n%s\n", enc.ToString())
	fmt.Printf("Ciphertext: %s\n", hex.EncodeToString(ct.CiphertextBytes))
	if ct.HasTag {
		fmt.Printf("Tag: %s\n", hex.EncodeToString(ct.Tag))
	} else {
		fmt.Printf("Tag: nullopt\n")
	}
}

// trySelfDecrypt reports whether the self-decrypt check should even be
// attempted for this module/cipher combination (§4.4): the OpenSSL
// backend cannot reconstruct OCB's internal state from ciphertext alone,
// and cannot verify an AEAD tag that was never computed to a known size.
func trySelfDecrypt(mod module.Module, enc *operation.SymmetricEncryptOp) bool {
	if mod.Name() != "OpenSSL" {
		return true
	}
	switch enc.Cipher.CipherType {
	case operation.AES_128_OCB, operation.AES_256_OCB:
		return false
	case operation.AES_128_GCM, operation.AES_256_GCM, operation.AES_128_CCM, operation.AES_256_CCM,
		operation.ARIA_128_CCM, operation.ARIA_256_CCM, operation.ARIA_128_GCM, operation.ARIA_256_GCM:
		return enc.TagSize != nil
	default:
		return true
	}
}

// dhGenerateKeyPairPostprocess samples the process-wide deterministic
// PRNG for a 1-in-4 chance of seeding the DH pools from this keypair
// (§9 supplemented note): DH keys are expensive to regenerate, so only
// a fraction of generated pairs are kept around for DH_Derive draws to
// reuse.
func dhGenerateKeyPairPostprocess(e *Executor, mod module.Module, op operation.Operation, rp resultPair) {
	if !rp.ok {
		return
	}
	kp, ok := rp.result.(component.DH_KeyPair)
	if !ok {
		return
	}
	if e.rng.Intn(4) != 0 {
		return
	}
	e.Pools.DHPrivateKey.Insert(kp.Priv)
	e.Pools.DHPublicKey.Insert(kp.Pub)
}

// blsSignPostprocess populates the BLS signature/point pools from a
// successful BLS_Sign result (§4.7): later BLS_Verify and BLS_Pairing
// draws can then reuse a known-good signature, G1 public key, and G2
// signature point instead of only ever exercising fresh, unvalidated
// ones.
func blsSignPostprocess(e *Executor, mod module.Module, op operation.Operation, rp resultPair) {
	if !rp.ok {
		return
	}
	sig, ok := rp.result.(component.BLS_Signature)
	if !ok {
		return
	}
	e.Pools.CurveBLSSignature.Insert(sig)
	e.Pools.CurveBLSG2.Insert(sig.Sig)
	e.Pools.CurveBLSG1.Insert(component.G1{X: sig.Pub.X, Y: sig.Pub.Y})
}
