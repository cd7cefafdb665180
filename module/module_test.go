// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package module

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

type stubModule struct {
	id   operation.ModuleID
	name string
}

func (s *stubModule) ID() operation.ModuleID                       { return s.id }
func (s *stubModule) Name() string                                 { return s.name }
func (s *stubModule) SupportsModularBignumCalc() bool               { return false }
func (s *stubModule) Dispatch(operation.Operation) (component.Result, error) { return nil, nil }

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry(nil)
	m := &stubModule{id: 1, name: "Stub"}
	require.NoError(t, r.Register(m))

	got, err := r.Get(1)
	require.NoError(t, err)
	require.Same(t, m, got)
}

func TestRegistry_DuplicateRegistrationFails(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(&stubModule{id: 1, name: "A"}))
	err := r.Register(&stubModule{id: 1, name: "B"})
	require.ErrorIs(t, err, ErrModuleAlreadyExists)
}

func TestRegistry_GetUnknownFails(t *testing.T) {
	r := NewRegistry(nil)
	_, err := r.Get(42)
	require.ErrorIs(t, err, ErrModuleNotFound)
}

func TestRegistry_IDsPreservesInsertionOrder(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(&stubModule{id: 3, name: "C"}))
	require.NoError(t, r.Register(&stubModule{id: 1, name: "A"}))
	require.NoError(t, r.Register(&stubModule{id: 2, name: "B"}))

	require.Equal(t, []operation.ModuleID{3, 1, 2}, r.IDs())
}

func TestRegistry_Len(t *testing.T) {
	r := NewRegistry(nil)
	require.Equal(t, 0, r.Len())
	require.NoError(t, r.Register(&stubModule{id: 1, name: "A"}))
	require.Equal(t, 1, r.Len())
}
