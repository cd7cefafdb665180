// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package datasource

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBytes_RoundTrip(t *testing.T) {
	s := New([]byte{3, 'a', 'b', 'c'})
	b, err := s.GetBytes()
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), b)
	require.True(t, s.Exhausted())
}

func TestGetBytes_ZeroLengthReturnsNilWithoutError(t *testing.T) {
	s := New([]byte{0})
	b, err := s.GetBytes()
	require.NoError(t, err)
	require.Nil(t, b)
}

func TestGetBytes_ExhaustedReturnsError(t *testing.T) {
	s := New(nil)
	_, err := s.GetBytes()
	require.ErrorIs(t, err, ErrExhausted)
}

func TestGetBytes_ShortReadReturnsError(t *testing.T) {
	s := New([]byte{5, 'a'})
	_, err := s.GetBytes()
	require.ErrorIs(t, err, ErrShortRead)
}

func TestGetBytesMax_ClampsToCap(t *testing.T) {
	s := New([]byte{4, 'a', 'b', 'c', 'd'})
	b, err := s.GetBytesMax(2)
	require.NoError(t, err)
	require.Equal(t, []byte("ab"), b)
}

func TestGetBool_LowBitConvention(t *testing.T) {
	s := New([]byte{0x01, 0x02})
	b1, err := s.GetBool()
	require.NoError(t, err)
	require.True(t, b1)
	b2, err := s.GetBool()
	require.NoError(t, err)
	require.False(t, b2)
}

func TestGetUint64_ExhaustedOnShortBuffer(t *testing.T) {
	s := New([]byte{1, 2, 3})
	_, err := s.GetUint64()
	require.ErrorIs(t, err, ErrExhausted)
}

func TestGetDecimal_EmptyDrawIsZero(t *testing.T) {
	s := New([]byte{0})
	d, err := s.GetDecimal()
	require.NoError(t, err)
	require.Equal(t, "0", d)
}

func TestGetDecimal_KnownValue(t *testing.T) {
	s := New([]byte{2, 0x01, 0x00}) // 0x0100 = 256
	d, err := s.GetDecimal()
	require.NoError(t, err)
	require.Equal(t, "256", d)
}

func TestRemaining_DecreasesAsBytesAreDrawn(t *testing.T) {
	s := New([]byte{1, 'x', 1, 'y'})
	require.Equal(t, 4, s.Remaining())
	_, err := s.GetBytes()
	require.NoError(t, err)
	require.Equal(t, 2, s.Remaining())
}
