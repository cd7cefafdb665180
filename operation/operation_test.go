// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package operation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/datasource"
)

func TestBuild_Digest_DrawsModifierCleartextAndDigestType(t *testing.T) {
	buf := []byte{
		3, 'm', 'o', 'd', // modifier
		5, 'h', 'e', 'l', 'l', 'o', // cleartext
		1, // digest type byte -> digestIDs[1] = SHA256
	}
	ds := datasource.New(buf)

	op, err := Build(Digest, ds)
	require.NoError(t, err)

	d := op.(*DigestOp)
	require.Equal(t, []byte("hello"), d.Cleartext)
	require.Equal(t, SHA256, d.DigestType)
	require.Equal(t, []byte("mod"), d.GetModifier())
}

func TestBuild_ExhaustedBufferReturnsError(t *testing.T) {
	_, err := Build(Digest, datasource.New(nil))
	require.Error(t, err)
}

func TestBase_ModifierIsCopiedNotAliased(t *testing.T) {
	mod := []byte{1, 2, 3}
	op := NewDigestOp([]byte("x"), SHA256, mod)
	mod[0] = 0xFF

	require.Equal(t, byte(1), op.GetModifier()[0])
}

func TestBase_SetModifierReplacesInPlace(t *testing.T) {
	op := NewDigestOp([]byte("x"), SHA256, nil)
	op.SetModifier([]byte{9, 9})
	require.Equal(t, []byte{9, 9}, op.GetModifier())
}

func TestWithModulo_StampsModulusOntoBignumCalc(t *testing.T) {
	op := NewBignumCalcOp(CalcAdd, component.NewBignum("1"), component.NewBignum("2"),
		component.NewBignum("0"), component.NewBignum("0"), nil, nil)

	modulo := component.NewBignum("97")
	got := WithModulo(op, modulo)

	bc := got.(*BignumCalcOp)
	require.NotNil(t, bc.Modulo)
	require.Equal(t, "97", bc.Modulo.Decimal())
}

func TestWithModulo_NonBignumCalcOperationIsUnchanged(t *testing.T) {
	op := NewDigestOp([]byte("x"), SHA256, nil)
	got := WithModulo(op, component.NewBignum("97"))
	require.Same(t, op, got)
}

func TestBuildECCPrivateToPublic_DrawsCurveAndPrivKey(t *testing.T) {
	buf := []byte{
		3,               // curve byte -> curveIDs[3] = Secp256k1
		2, '4', '2',      // priv decimal drawn via GetDecimal: length-prefixed raw bytes, base-256 digits
	}
	ds := datasource.New(buf)

	op, err := BuildECCPrivateToPublic(ds, []byte("mod"))
	require.NoError(t, err)
	require.Equal(t, Secp256k1, op.Curve)
	require.Equal(t, []byte("mod"), op.GetModifier())
}

func TestDigestOp_EqualComparesFields(t *testing.T) {
	a := NewDigestOp([]byte("x"), SHA256, nil)
	b := NewDigestOp([]byte("x"), SHA256, nil)
	c := NewDigestOp([]byte("y"), SHA256, nil)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
