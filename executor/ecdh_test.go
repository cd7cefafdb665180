// ecdh_test.go: the ECDH_Derive substitution (§4.6) — specifically that
// the two substitute keys are drawn fresh off the datasource rather
// than reused from the original operation, so the same-curve guard is
// meaningful.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
	"github.com/cryptofuzz-go/cryptodiff/options"
)

// scriptedDS is a hand-scripted opDatasource: each field is a queue of
// canned return values, consumed in call order.
type scriptedDS struct {
	bools    []bool
	bytes    []byte
	uint64s  []uint64
	byteSlices [][]byte
	decimals []string
}

func (s *scriptedDS) GetBool() (bool, error) {
	v := s.bools[0]
	s.bools = s.bools[1:]
	return v, nil
}
func (s *scriptedDS) GetByte() (byte, error) {
	v := s.bytes[0]
	s.bytes = s.bytes[1:]
	return v, nil
}
func (s *scriptedDS) GetUint64() (uint64, error) {
	v := s.uint64s[0]
	s.uint64s = s.uint64s[1:]
	return v, nil
}
func (s *scriptedDS) GetBytes() ([]byte, error) {
	v := s.byteSlices[0]
	s.byteSlices = s.byteSlices[1:]
	return v, nil
}
func (s *scriptedDS) GetDecimal() (string, error) {
	v := s.decimals[0]
	s.decimals = s.decimals[1:]
	return v, nil
}

func TestECDHSubstitution_DifferentCurvesFallsBackToOriginal(t *testing.T) {
	mod := &fakeModule{id: 1, name: "M", dispatch: func(op operation.Operation) (component.Result, error) {
		o := op.(*operation.ECC_PrivateToPublicOp)
		return component.ECC_KeyPair{
			Priv: component.NewBignum(o.PrivKey),
			Pub:  component.ECC_PublicKey{X: component.NewBignum("1"), Y: component.NewBignum("2")},
		}, nil
	}}
	e := New(newRegistry(t, mod), options.New(), 1)

	ds := &scriptedDS{
		bools:      []bool{true},
		uint64s:    []uint64{1},
		byteSlices: [][]byte{[]byte("mod1"), []byte("mod2")},
		bytes:      []byte{3, 4}, // curveIDs[3]=Secp256k1, curveIDs[4]=Ed25519
		decimals:   []string{"11", "22"},
	}
	orig := operation.NewECDHDeriveOp(operation.P256, "10", "1", "2", "20", "3", "4", nil)

	got := ecdhDeriveGetOpPostprocess(e, ds, orig)

	require.Same(t, orig, got)
}

func TestECDHSubstitution_SameCurveSubstitutesFreshKeys(t *testing.T) {
	mod := &fakeModule{id: 1, name: "M", dispatch: func(op operation.Operation) (component.Result, error) {
		o := op.(*operation.ECC_PrivateToPublicOp)
		return component.ECC_KeyPair{
			Priv: component.NewBignum(o.PrivKey),
			Pub:  component.ECC_PublicKey{X: component.NewBignum("100"), Y: component.NewBignum("200")},
		}, nil
	}}
	e := New(newRegistry(t, mod), options.New(), 1)

	ds := &scriptedDS{
		bools:      []bool{true},
		uint64s:    []uint64{1},
		byteSlices: [][]byte{[]byte("mod1"), []byte("mod2")},
		bytes:      []byte{3, 3}, // both Secp256k1
		decimals:   []string{"11", "22"},
	}
	orig := operation.NewECDHDeriveOp(operation.P256, "10", "1", "2", "20", "3", "4", nil)

	got := ecdhDeriveGetOpPostprocess(e, ds, orig)

	sub, ok := got.(*operation.ECDH_DeriveOp)
	require.True(t, ok)
	require.NotSame(t, orig, sub)
	require.Equal(t, operation.Secp256k1, sub.Curve)
	require.Equal(t, "11", sub.Priv1)
	require.Equal(t, "22", sub.Priv2)
	require.Equal(t, "100", sub.Pub1X)
}

func TestECDHSubstitution_NoSubstituteFlagLeavesOriginal(t *testing.T) {
	e := New(newRegistry(t), options.New(), 1)
	ds := &scriptedDS{bools: []bool{false}}
	orig := operation.NewECDHDeriveOp(operation.P256, "10", "1", "2", "20", "3", "4", nil)

	got := ecdhDeriveGetOpPostprocess(e, ds, orig)

	require.Same(t, orig, got)
}
