// fuzz_test.go: native Go fuzz functions driving the differential
// execution core end to end, one per operation family group that has
// at least two independent backends registered. Each seeds a small
// corpus of edge-case and valid inputs via f.Add and then asserts the
// Run loop never panics — a found difference or invariant violation
// is the loop's own, intended abort path (§6), not a defect in this
// harness, so it is not what these assertions check for.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package main

import (
	"testing"

	"github.com/cryptofuzz-go/cryptodiff/executor"
	"github.com/cryptofuzz-go/cryptodiff/operation"
	"github.com/cryptofuzz-go/cryptodiff/options"
)

func newTestExecutor(tb testing.TB) *executor.Executor {
	tb.Helper()
	reg := newRegistry()
	opts := options.New()
	return executor.New(reg, opts, 1)
}

func runFamily(tb testing.TB, exec *executor.Executor, family operation.Family, buf []byte) {
	tb.Helper()
	err := exec.Run(family, buf)
	if err != nil && err != executor.ErrNoTasksAccepted {
		tb.Logf("family=%s err=%v", family, err)
	}
}

// FuzzDigest drives the Digest family across refcrypto and simdcrypto,
// the pack's two independently-sourced SHA-256 implementations.
func FuzzDigest(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})
	f.Add(make([]byte, 256))

	exec := newTestExecutor(f)
	f.Fuzz(func(t *testing.T, buf []byte) {
		runFamily(t, exec, operation.Digest, buf)
	})
}

// FuzzSymmetricEncrypt drives SymmetricEncrypt, which exercises the
// self-decrypt postprocess step (§4.4) on every successful dispatch.
func FuzzSymmetricEncrypt(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x10, 0x10, 0x10})
	f.Add(make([]byte, 64))

	exec := newTestExecutor(f)
	f.Fuzz(func(t *testing.T, buf []byte) {
		runFamily(t, exec, operation.SymmetricEncrypt, buf)
	})
}

// FuzzECCPrivateToPublic drives curvecrypto's secp256k1, ed25519 and
// ristretto255 backends, the only families with three distinct curve
// code paths behind one Module.
func FuzzECCPrivateToPublic(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x01})
	f.Add([]byte{0x04, 0x01, '1', '2', '3', '4', '5'})

	exec := newTestExecutor(f)
	f.Fuzz(func(t *testing.T, buf []byte) {
		runFamily(t, exec, operation.ECC_PrivateToPublic, buf)
	})
}

// FuzzECDSAVerify drives both curvecrypto.Module and
// curvecrypto.VerifierModule, the decred- and btcsuite-backed secp256k1
// implementations, against the same input.
func FuzzECDSAVerify(f *testing.F) {
	f.Add([]byte{})
	f.Add(make([]byte, 32))

	exec := newTestExecutor(f)
	f.Fuzz(func(t *testing.T, buf []byte) {
		runFamily(t, exec, operation.ECDSA_Verify, buf)
	})
}

// FuzzBLSSign drives the full BLS12-381 surface (blst), including the
// pool-population postprocess step blsSignPostprocess. The pools it
// fills belong to this function's own executor.
func FuzzBLSSign(f *testing.F) {
	f.Add([]byte{})
	f.Add(make([]byte, 48))

	exec := newTestExecutor(f)
	f.Fuzz(func(t *testing.T, buf []byte) {
		runFamily(t, exec, operation.BLS_Sign, buf)
	})
}

// FuzzBLSVerify drives BLS_Verify on its own executor; it does not
// share FuzzBLSSign's pools.
func FuzzBLSVerify(f *testing.F) {
	f.Add([]byte{})
	f.Add(make([]byte, 96))

	exec := newTestExecutor(f)
	f.Fuzz(func(t *testing.T, buf []byte) {
		runFamily(t, exec, operation.BLS_Verify, buf)
	})
}

// FuzzBignumCalc drives the plain executor's BignumCalc family across
// refcrypto (math/big), simdcrypto (2^256-restricted) and curvecrypto
// (BLS12-381-restricted) modules, most of which will legitimately
// decline most draws.
func FuzzBignumCalc(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x01, '1', 0x01, '2', 0x01, '0', 0x01, '0'})

	exec := newTestExecutor(f)
	f.Fuzz(func(t *testing.T, buf []byte) {
		runFamily(t, exec, operation.BignumCalc, buf)
	})
}

// FuzzBignumCalcModularR drives the BLS12-381 scalar-order modular
// variant, under which curvecrypto's BLS12-381-only BignumCalc answers
// alongside refcrypto; simdcrypto, which takes only the 2^256 modulus,
// declines every call here.
func FuzzBignumCalcModularR(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x01, '1', 0x01, '2'})

	reg := newRegistry()
	exec := executor.NewModularBLS12_381_R(reg, options.New(), 1)
	f.Fuzz(func(t *testing.T, buf []byte) {
		runFamily(t, exec, operation.BignumCalc, buf)
	})
}

// FuzzReplayAllFamilies mirrors what the CLI's replay() does: the first
// byte of the corpus selects any family in the closed set (§3), so a
// malformed or truncated buffer for every family must still be handled
// without panicking.
func FuzzReplayAllFamilies(f *testing.F) {
	f.Add([]byte{0, 0})
	f.Add([]byte{255, 1, 2, 3})
	f.Add([]byte{})

	reg := newRegistry()
	opts := options.New()
	exec := executor.New(reg, opts, 7)

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) == 0 {
			return
		}
		family := operation.Family(int(data[0]) % operation.NumFamilies())
		_ = exec.Run(family, data[1:])
	})
}
