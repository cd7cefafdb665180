// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package pools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptofuzz-go/cryptodiff/component"
)

func TestPool_GetOnEmptyReportsNotOK(t *testing.T) {
	p := NewPool[int](4)
	_, ok := p.Get()
	require.False(t, ok)
}

func TestPool_InsertAndGet(t *testing.T) {
	p := NewPool[int](4)
	p.Insert(1)
	v, ok := p.Get()
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 1, p.Len())
}

func TestPool_EvictsRatherThanGrowPastCapacity(t *testing.T) {
	p := NewPool[int](3)
	for i := 0; i < 10; i++ {
		p.Insert(i)
	}
	require.Equal(t, 3, p.Len())
}

func TestRegistry_InsertBignum_RespectsAdmissionCap(t *testing.T) {
	r := NewRegistry()
	huge := component.NewBignum(strings.Repeat("9", kMaxBignumSize+1))
	r.InsertBignum(huge)
	require.Equal(t, 0, r.Bignum.Len())

	small := component.NewBignum("42")
	r.InsertBignum(small)
	require.Equal(t, 1, r.Bignum.Len())
}

func TestRegistry_NewRegistryPopulatesEveryNamedPool(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r.CurvePrivkey)
	require.NotNil(t, r.CurveKeypair)
	require.NotNil(t, r.CurveECDSASignature)
	require.NotNil(t, r.CurveBLSG1)
	require.NotNil(t, r.CurveBLSG2)
	require.NotNil(t, r.CurveBLSSignature)
	require.NotNil(t, r.DHPrivateKey)
	require.NotNil(t, r.DHPublicKey)
	require.NotNil(t, r.Bignum)
}
