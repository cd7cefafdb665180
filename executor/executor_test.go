// executor_test.go: Run-loop invariant tests — gating (P1), size caps
// (P2), self-decrypt (P4), no-compare families (P5), fan-out (P6),
// duplicate-modifier mutation (P7), and modulus stamping (P8).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package executor

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/module"
	"github.com/cryptofuzz-go/cryptodiff/operation"
	"github.com/cryptofuzz-go/cryptodiff/options"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it; Abort prints its diagnostic via fmt.Printf,
// so this is the only way to assert on its exact output.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stdout
	os.Stdout = w
	fn()
	os.Stdout = old
	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

// fakeModule is a minimal in-memory module.Module test double whose
// Dispatch is fully scripted by the test.
type fakeModule struct {
	id       operation.ModuleID
	name     string
	modular  bool
	dispatch func(op operation.Operation) (component.Result, error)
	calls    int
}

func (f *fakeModule) ID() operation.ModuleID           { return f.id }
func (f *fakeModule) Name() string                     { return f.name }
func (f *fakeModule) SupportsModularBignumCalc() bool  { return f.modular }
func (f *fakeModule) Dispatch(op operation.Operation) (component.Result, error) {
	f.calls++
	if f.dispatch == nil {
		return nil, nil
	}
	return f.dispatch(op)
}

func newRegistry(t *testing.T, mods ...*fakeModule) *module.Registry {
	t.Helper()
	r := module.NewRegistry(nil)
	for _, m := range mods {
		require.NoError(t, r.Register(m))
	}
	return r
}

// --- P6: fan-out -----------------------------------------------------

func TestFanOut_EveryRegisteredModuleRepresented(t *testing.T) {
	m1 := &fakeModule{id: 1, name: "A"}
	m2 := &fakeModule{id: 2, name: "B"}
	m3 := &fakeModule{id: 3, name: "C"}
	reg := newRegistry(t, m1, m2, m3)
	e := New(reg, options.New(), 1)

	op := operation.NewDigestOp([]byte("x"), operation.SHA256, nil)
	tasks := []task{{moduleID: 1, mod: m1, op: op}}

	e.fanOut(operation.Digest, &tasks)

	require.Len(t, tasks, 3)
	seen := map[operation.ModuleID]bool{}
	for _, tk := range tasks {
		seen[tk.moduleID] = true
	}
	require.True(t, seen[1] && seen[2] && seen[3])
}

func TestFanOut_DisabledModuleNotAdded(t *testing.T) {
	m1 := &fakeModule{id: 1, name: "A"}
	m2 := &fakeModule{id: 2, name: "B"}
	reg := newRegistry(t, m1, m2)
	e := New(reg, options.New(options.WithDisabledModules(2)), 1)

	op := operation.NewDigestOp([]byte("x"), operation.SHA256, nil)
	tasks := []task{{moduleID: 1, mod: m1, op: op}}
	e.fanOut(operation.Digest, &tasks)

	require.Len(t, tasks, 1)
}

// --- P7: duplicate-modifier mutation ----------------------------------

func TestMutateDuplicateModifiers_EmptyModifierGetsMutated(t *testing.T) {
	m1 := &fakeModule{id: 1, name: "A"}
	e := New(newRegistry(t, m1), options.New(), 1)

	op1 := operation.NewDigestOp([]byte("x"), operation.SHA256, nil)
	op2 := operation.NewDigestOp([]byte("y"), operation.SHA256, nil)
	tasks := []task{
		{moduleID: 1, mod: m1, op: op1},
		{moduleID: 1, mod: m1, op: op2},
	}

	e.mutateDuplicateModifiers(tasks)

	require.NotEmpty(t, op2.GetModifier())
	require.NotEqual(t, string(op1.GetModifier()), string(op2.GetModifier()))
}

func TestMutateDuplicateModifiers_NonEmptyModifierIncremented(t *testing.T) {
	m1 := &fakeModule{id: 1, name: "A"}
	e := New(newRegistry(t, m1), options.New(), 1)

	mod := []byte{0x01, 0xFF}
	op1 := operation.NewDigestOp([]byte("x"), operation.SHA256, mod)
	op2 := operation.NewDigestOp([]byte("y"), operation.SHA256, append([]byte(nil), mod...))
	tasks := []task{
		{moduleID: 1, mod: m1, op: op1},
		{moduleID: 1, mod: m1, op: op2},
	}

	e.mutateDuplicateModifiers(tasks)

	require.Equal(t, []byte{0x02, 0x00}, op2.GetModifier())
}

func TestMutateDuplicateModifiers_DifferentModulesUntouched(t *testing.T) {
	m1 := &fakeModule{id: 1, name: "A"}
	m2 := &fakeModule{id: 2, name: "B"}
	e := New(newRegistry(t, m1, m2), options.New(), 1)

	op1 := operation.NewDigestOp([]byte("x"), operation.SHA256, nil)
	op2 := operation.NewDigestOp([]byte("y"), operation.SHA256, nil)
	tasks := []task{
		{moduleID: 1, mod: m1, op: op1},
		{moduleID: 2, mod: m2, op: op2},
	}

	e.mutateDuplicateModifiers(tasks)

	require.Empty(t, op2.GetModifier())
}

// --- P1: gating --------------------------------------------------------

func TestResolveModule_DisabledNotResolved(t *testing.T) {
	m1 := &fakeModule{id: 1, name: "A"}
	e := New(newRegistry(t, m1), options.New(options.WithDisabledModules(1)), 1)

	_, ok := e.resolveModule(1)
	require.False(t, ok)
}

func TestResolveModule_UnknownNotResolved(t *testing.T) {
	e := New(newRegistry(t), options.New(), 1)

	_, ok := e.resolveModule(99)
	require.False(t, ok)
}

func TestResolveModule_EnabledResolves(t *testing.T) {
	m1 := &fakeModule{id: 1, name: "A"}
	e := New(newRegistry(t, m1), options.New(), 1)

	mod, ok := e.resolveModule(1)
	require.True(t, ok)
	require.Equal(t, m1, mod)
}

// --- P2: size caps -------------------------------------------------------

func TestCheckSizeCaps_OversizedBignumRejected(t *testing.T) {
	huge := make([]byte, 0, kMaxBignumSize+1)
	for i := 0; i <= kMaxBignumSize; i++ {
		huge = append(huge, '9')
	}
	op := operation.NewBignumCalcOp(operation.CalcAdd,
		component.NewBignum(string(huge)), component.NewBignum("1"),
		component.NewBignum("0"), component.NewBignum("0"), nil, nil)

	require.False(t, checkSizeCaps(op))
}

func TestCheckSizeCaps_CalcExpNarrowCapRejectsLargeExponent(t *testing.T) {
	op := operation.NewBignumCalcOp(operation.CalcExp,
		component.NewBignum("12345"), component.NewBignum("123"),
		component.NewBignum("0"), component.NewBignum("0"), nil, nil)

	require.False(t, checkSizeCaps(op))
}

func TestCheckSizeCaps_OrdinaryBignumAccepted(t *testing.T) {
	op := operation.NewBignumCalcOp(operation.CalcAdd,
		component.NewBignum("1"), component.NewBignum("2"),
		component.NewBignum("0"), component.NewBignum("0"), nil, nil)

	require.True(t, checkSizeCaps(op))
}

// --- P8: modulus stamping -----------------------------------------------

func TestBignumCalcGetOpPostprocess_PlainExecutorLeavesOpUntouched(t *testing.T) {
	e := New(newRegistry(t), options.New(), 1)
	op := operation.NewBignumCalcOp(operation.CalcAdd,
		component.NewBignum("1"), component.NewBignum("2"),
		component.NewBignum("0"), component.NewBignum("0"), nil, nil)

	got := bignumCalcGetOpPostprocess(e, nil, op)

	bc := got.(*operation.BignumCalcOp)
	require.Nil(t, bc.Modulo)
}

func TestBignumCalcGetOpPostprocess_ModularExecutorStampsModulus(t *testing.T) {
	e := NewModularBLS12_381_R(newRegistry(t), options.New(), 1)
	op := operation.NewBignumCalcOp(operation.CalcAdd,
		component.NewBignum("1"), component.NewBignum("2"),
		component.NewBignum("0"), component.NewBignum("0"), nil, nil)

	got := bignumCalcGetOpPostprocess(e, nil, op)

	bc := got.(*operation.BignumCalcOp)
	require.NotNil(t, bc.Modulo)
	require.Equal(t, bls12381R, bc.Modulo.Decimal())
}

func TestBignumCalcGetOpPostprocess_2Exp256Variant(t *testing.T) {
	e := New2Exp256(newRegistry(t), options.New(), 1)
	op := operation.NewBignumCalcOp(operation.CalcAdd,
		component.NewBignum("1"), component.NewBignum("2"),
		component.NewBignum("0"), component.NewBignum("0"), nil, nil)

	got := bignumCalcGetOpPostprocess(e, nil, op)

	bc := got.(*operation.BignumCalcOp)
	require.NotNil(t, bc.Modulo)
	require.Equal(t, twoExp256, bc.Modulo.Decimal())
}

// --- P4: self-decrypt ----------------------------------------------------

func cipherOp(cleartext []byte) *operation.SymmetricEncryptOp {
	return operation.NewSymmetricEncryptOp(
		operation.Cipher{CipherType: operation.AES_256_GCM, Key: make([]byte, 32), IV: make([]byte, 12)},
		cleartext, nil, false, nil, nil,
	)
}

func TestSelfDecryptPostprocess_FatalOnNulloptResult(t *testing.T) {
	var exitCode int
	var exited bool
	old := exitFunc
	exitFunc = func(code int) { exited = true; exitCode = code }
	defer func() { exitFunc = old }()

	mod := &fakeModule{id: 1, name: "Decliner", dispatch: func(operation.Operation) (component.Result, error) {
		return nil, nil
	}}
	op := cipherOp([]byte("hello"))
	rp := resultPair{mod: mod, ok: true, result: component.Ciphertext{CiphertextBytes: []byte("ct")}}

	e := New(newRegistry(t, mod), options.New(), 1)
	selfDecryptPostprocess(e, mod, op, rp)

	require.True(t, exited)
	require.Equal(t, 1, exitCode)
}

func TestSelfDecryptPostprocess_EmptyCleartextSkipsCheck(t *testing.T) {
	old := exitFunc
	exitFunc = func(int) { t.Fatal("Abort must not be called") }
	defer func() { exitFunc = old }()

	calledDecrypt := false
	mod := &fakeModule{id: 1, name: "M", dispatch: func(operation.Operation) (component.Result, error) {
		calledDecrypt = true
		return nil, nil
	}}
	op := cipherOp(nil)
	rp := resultPair{mod: mod, ok: true, result: component.Ciphertext{CiphertextBytes: []byte("ct")}}

	e := New(newRegistry(t, mod), options.New(), 1)
	selfDecryptPostprocess(e, mod, op, rp)

	require.False(t, calledDecrypt)
}

func TestSelfDecryptPostprocess_MismatchAborts(t *testing.T) {
	var exited bool
	old := exitFunc
	exitFunc = func(int) { exited = true }
	defer func() { exitFunc = old }()

	mod := &fakeModule{id: 1, name: "M", dispatch: func(operation.Operation) (component.Result, error) {
		return component.Cleartext{Buffer: component.Buffer{Data: []byte("WRONG")}}, nil
	}}
	op := cipherOp([]byte("hello"))
	rp := resultPair{mod: mod, ok: true, result: component.Ciphertext{CiphertextBytes: []byte("ct")}}

	e := New(newRegistry(t, mod), options.New(), 1)
	selfDecryptPostprocess(e, mod, op, rp)

	require.True(t, exited)
}

func TestSelfDecryptPostprocess_RoundTripSucceedsSilently(t *testing.T) {
	old := exitFunc
	exitFunc = func(int) { t.Fatal("Abort must not be called on a correct round trip") }
	defer func() { exitFunc = old }()

	mod := &fakeModule{id: 1, name: "M", dispatch: func(operation.Operation) (component.Result, error) {
		return component.Cleartext{Buffer: component.Buffer{Data: []byte("hello")}}, nil
	}}
	op := cipherOp([]byte("hello"))
	rp := resultPair{mod: mod, ok: true, result: component.Ciphertext{CiphertextBytes: []byte("ct")}}

	e := New(newRegistry(t, mod), options.New(), 1)
	selfDecryptPostprocess(e, mod, op, rp)
}

// --- P5: no-compare families + two-module Abort scope --------------------

func TestNoopCompare_ECCGenerateKeyPairNeverAborts(t *testing.T) {
	old := exitFunc
	exitFunc = func(int) { t.Fatal("noopCompare must never abort") }
	defer func() { exitFunc = old }()

	m1 := &fakeModule{id: 1, name: "A"}
	m2 := &fakeModule{id: 2, name: "B"}
	e := New(newRegistry(t, m1, m2), options.New(), 1)
	policy := e.Policies.For(operation.ECC_GenerateKeyPair)

	op := operation.NewECCGenerateKeyPairOp(operation.Secp256k1, nil)
	tasks := []task{{moduleID: 1, mod: m1, op: op}, {moduleID: 2, mod: m2, op: op}}
	results := []resultPair{
		{mod: m1, ok: true, result: component.ECC_KeyPair{Priv: component.NewBignum("1")}},
		{mod: m2, ok: true, result: component.ECC_KeyPair{Priv: component.NewBignum("2")}},
	}

	e.compare(policy, tasks, results)
}

func TestDefaultCompare_AbortsOnlyOnDisagreeingPair(t *testing.T) {
	old := exitFunc
	exitFunc = func(int) {}
	defer func() { exitFunc = old }()

	m1 := &fakeModule{id: 1, name: "Alpha"}
	m2 := &fakeModule{id: 2, name: "Beta"}
	m3 := &fakeModule{id: 3, name: "Gamma"}
	e := New(newRegistry(t, m1, m2, m3), options.New(), 1)
	policy := e.Policies.For(operation.Digest)

	op := operation.NewDigestOp([]byte("x"), operation.SHA256, nil)
	tasks := []task{
		{moduleID: 1, mod: m1, op: op},
		{moduleID: 2, mod: m2, op: op},
		{moduleID: 3, mod: m3, op: op},
	}
	results := []resultPair{
		{mod: m1, ok: true, result: component.Digest{Buffer: component.Buffer{Data: []byte("same")}}},
		{mod: m2, ok: true, result: component.Digest{Buffer: component.Buffer{Data: []byte("different")}}},
		{mod: m3, ok: true, result: component.Digest{Buffer: component.Buffer{Data: []byte("same")}}},
	}

	out := captureStdout(t, func() { e.compare(policy, tasks, results) })

	require.Contains(t, out, "Alpha-Beta")
	require.NotContains(t, out, "Alpha-Beta-Gamma")
}
