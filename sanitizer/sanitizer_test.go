// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProbe_TouchesEveryByte(t *testing.T) {
	require.Equal(t, byte(0x01^0x02^0x03), Probe([]byte{0x01, 0x02, 0x03}))
}

func TestProbe_EmptySliceIsZero(t *testing.T) {
	require.Equal(t, byte(0), Probe(nil))
}

type flatRegionStub struct{ data []byte }

func (f flatRegionStub) FlatBytes() []byte { return f.data }

func TestProbeRegion_DoesNotPanicOnFlatRegion(t *testing.T) {
	require.NotPanics(t, func() { ProbeRegion(flatRegionStub{data: []byte("abc")}) })
}
