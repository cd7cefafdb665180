// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package options

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptofuzz-go/cryptodiff/operation"
)

func TestNew_DefaultsMinModulesToTwoAndNothingDisabled(t *testing.T) {
	o := New()
	require.Equal(t, 2, o.MinModules())
	require.False(t, o.IsModuleDisabled(1))
	_, ok := o.ForceModule()
	require.False(t, ok)
}

func TestWithDisabledModules(t *testing.T) {
	o := New(WithDisabledModules(1, 2))
	require.True(t, o.IsModuleDisabled(1))
	require.True(t, o.IsModuleDisabled(2))
	require.False(t, o.IsModuleDisabled(3))
}

func TestWithForceModule(t *testing.T) {
	o := New(WithForceModule(7))
	id, ok := o.ForceModule()
	require.True(t, ok)
	require.Equal(t, operation.ModuleID(7), id)
}

func TestWithMinModules(t *testing.T) {
	o := New(WithMinModules(5))
	require.Equal(t, 5, o.MinModules())
}

func TestFlags_DefaultFalseAndSettable(t *testing.T) {
	o := New()
	require.False(t, o.NoDecrypt())
	require.False(t, o.NoCompare())
	require.False(t, o.DisableTests())
	require.False(t, o.Debug())

	o2 := New(WithNoDecrypt(), WithNoCompare(), WithDisableTests(), WithDebug())
	require.True(t, o2.NoDecrypt())
	require.True(t, o2.NoCompare())
	require.True(t, o2.DisableTests())
	require.True(t, o2.Debug())
}

func TestWithJSONDump_ForwardsToSink(t *testing.T) {
	var got []byte
	o := New(WithJSONDump(func(b []byte) { got = b }))
	o.DumpJSON([]byte("hello"))
	require.Equal(t, []byte("hello"), got)
}

func TestHaveDigest_NilSetAllowsEverything(t *testing.T) {
	o := New()
	require.True(t, o.HaveDigest(operation.SHA256))
}

func TestHaveDigest_RestrictedSet(t *testing.T) {
	o := New(WithDigests(operation.SHA256))
	require.True(t, o.HaveDigest(operation.SHA256))
	require.False(t, o.HaveDigest(operation.SHA1))
}

func TestHaveCipher_RestrictedSet(t *testing.T) {
	o := New(WithCiphers(operation.AES_256_GCM))
	require.True(t, o.HaveCipher(operation.AES_256_GCM))
	require.False(t, o.HaveCipher(operation.AES_128_OCB))
}

func TestHaveCurve_RestrictedSet(t *testing.T) {
	o := New(WithCurves(operation.Secp256k1))
	require.True(t, o.HaveCurve(operation.Secp256k1))
	require.False(t, o.HaveCurve(operation.P256))
}

func TestHaveCalcOp_RestrictedSet(t *testing.T) {
	o := New(WithCalcOps(operation.CalcAdd))
	require.True(t, o.HaveCalcOp(operation.CalcAdd))
	require.False(t, o.HaveCalcOp(operation.CalcSub))
}
