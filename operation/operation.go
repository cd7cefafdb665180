// operation.go: the Operation contract (§3) and the Base type every
// per-family operation embeds for its modifier/equality/string-form
// plumbing.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package operation

import (
	"encoding/hex"
)

// Operation is the contract every per-family operation value satisfies
// (§3 "Operation value"). Concrete types embed Base for the shared
// parts and implement the family-specific accessors themselves.
type Operation interface {
	Family() Family
	Name() string
	AlgorithmString() string
	GetModifier() []byte
	SetModifier([]byte)
	ToString() string
	ToJSON() map[string]any
	Equal(Operation) bool
}

// Base carries the modifier every operation exposes (§3) plus the
// family tag, and implements the parts of Operation that are identical
// across every family.
type Base struct {
	family   Family
	modifier []byte
}

// NewBase constructs a Base for the given family with the supplied
// modifier (copied so later in-place mutation by the Run loop's
// duplicate-task step, §4.1 step 5, never aliases the caller's slice).
func NewBase(f Family, modifier []byte) Base {
	m := make([]byte, len(modifier))
	copy(m, modifier)
	return Base{family: f, modifier: m}
}

func (b Base) Family() Family        { return b.family }
func (b Base) Name() string          { return b.family.String() }
func (b *Base) GetModifier() []byte  { return b.modifier }
func (b *Base) SetModifier(m []byte) { b.modifier = m }

func (b Base) modifierHex() string { return hex.EncodeToString(b.modifier) }

// EqualModifier is a helper concrete operations use inside their own
// Equal implementation to compare the shared modifier field.
func (b Base) EqualModifier(other Base) bool {
	return string(b.modifier) == string(other.modifier)
}
