// Package module defines the backend Module contract (§3 "Module",
// §6) and the Registry that the executor selects modules from. The
// shape directly mirrors the teacher's HSMProvider/HSMManager pair:
// a capability-queryable interface, a registry keyed by name/id that
// owns lifecycle, and a go-plugins Manager carried for future
// out-of-process backend support. The Manager is stored exactly the
// way the teacher stores it — constructed by the caller, held, never
// invoked — since every Module this repo ships runs in-process; wiring
// a real plugin transport on top is future work, not something this
// core needs to guess at.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package module

import (
	"fmt"
	"sync"

	goerrors "github.com/agilira/go-errors"
	goplugins "github.com/agilira/go-plugins"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

var (
	ErrModuleNotFound     = goerrors.New("MOD_001", "module not found")
	ErrModuleAlreadyExists = goerrors.New("MOD_002", "module already registered")
	ErrUnsupported        = goerrors.New("MOD_003", "operation not supported by this module")
)

// Request and Response give the registry's plugin manager the same
// request/response shape the teacher's HSMRequest/HSMResponse pair
// has, should an out-of-process backend ever be wired in.
type Request struct {
	Family operation.Family
	Op     operation.Operation
}

type Response struct {
	Result component.Result
	Err    error
}

// Module is a single backend: one cryptographic library wired in far
// enough to answer every operation family it claims support for. Every
// method returns (result, error, ok) conceptually via the Family
// dispatch below — callModule in the executor package calls Dispatch
// and treats a nil Result with a nil error as "this module declines
// the operation" (§4.1's RETURN_IF_DISABLED equivalent).
type Module interface {
	// ID is the stable identifier the Datasource draws and the Option
	// filter gates on.
	ID() operation.ModuleID
	// Name is a short human identifier used in debug traces and in the
	// Abort diagnostic (§6).
	Name() string
	// SupportsModularBignumCalc reports whether this module accepts a
	// BignumCalc operation with Modulo populated (§4.8). Modules that
	// answer false are skipped entirely for the three modular executor
	// variants.
	SupportsModularBignumCalc() bool
	// Dispatch runs op and returns its result, or (nil, nil) if this
	// module does not implement op's family/algorithm combination.
	Dispatch(op operation.Operation) (component.Result, error)
}

// Registry owns the set of active modules and the plugin manager they
// could, in principle, be fronted by.
type Registry struct {
	mu            sync.RWMutex
	pluginManager *goplugins.Manager[Request, Response]
	modules       map[operation.ModuleID]Module
	order         []operation.ModuleID // insertion order, for deterministic fan-out (§4.1 step 4)
}

// NewRegistry builds an empty Registry. pluginManager may be nil; it is
// accepted and stored purely so a future out-of-process Module can be
// fronted by it, mirroring HSMManager's constructor signature.
func NewRegistry(pluginManager *goplugins.Manager[Request, Response]) *Registry {
	return &Registry{
		pluginManager: pluginManager,
		modules:       make(map[operation.ModuleID]Module),
	}
}

// Register adds m to the registry under its own ID.
func (r *Registry) Register(m Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := m.ID()
	if _, exists := r.modules[id]; exists {
		return fmt.Errorf("%w: %s", ErrModuleAlreadyExists, m.Name())
	}
	r.modules[id] = m
	r.order = append(r.order, id)
	return nil
}

// Get returns the module registered under id.
func (r *Registry) Get(id operation.ModuleID) (Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, exists := r.modules[id]
	if !exists {
		return nil, ErrModuleNotFound
	}
	return m, nil
}

// IDs returns every registered module id, in registration order, so
// that the Run loop's fan-out expansion (§4.1 step 4) and minModules
// gate see a stable enumeration across a single Run.
func (r *Registry) IDs() []operation.ModuleID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]operation.ModuleID, len(r.order))
	copy(out, r.order)
	return out
}

// Len reports how many modules are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
