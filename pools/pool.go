// Package pools implements the bounded "known good" value pools the
// executor seeds from postprocess hooks and later draws from when
// building new operations (§3 "Pool", §4.3, §4.7). Each pool holds a
// fixed-capacity slice and evicts a uniformly random existing entry
// once full, so that values drawn out of it stay spread across the
// whole run instead of decaying into "whatever was inserted most
// recently" — the same sync.Pool-adjacent buffer management idiom the
// teacher uses in its own pool.go, generalized here from byte buffers
// to arbitrary pooled values via a type parameter.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package pools

import (
	"math/rand"
	"sync"

	"github.com/cryptofuzz-go/cryptodiff/component"
)

// kMaxBignumSize bounds the decimal digit length of any Bignum admitted
// to Pool_Bignum (§4.8 "admission cap"): values larger than this are
// expensive to exercise repeatedly and are simply dropped rather than
// rejected with an error, since pool insertion is always best-effort.
const kMaxBignumSize = 4096

// defaultCapacity is the fixed size every named pool below is built
// with; it is small enough that eviction happens often (keeping the
// pool's contents fresh) while still giving later operations a
// meaningful chance of reusing a prior value.
const defaultCapacity = 64

// Pool is a bounded, concurrency-safe, randomly-evicting collection of
// T. Zero value is not usable; construct with NewPool.
type Pool[T any] struct {
	mu       sync.Mutex
	capacity int
	items    []T
}

// NewPool constructs a Pool with the given fixed capacity.
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{capacity: capacity}
}

// Insert adds v to the pool, evicting a uniformly random existing
// element first if the pool is already at capacity.
func (p *Pool[T]) Insert(v T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.items) < p.capacity {
		p.items = append(p.items, v)
		return
	}
	p.items[rand.Intn(len(p.items))] = v
}

// Get draws a uniformly random element. ok is false if the pool is
// empty.
func (p *Pool[T]) Get() (v T, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.items) == 0 {
		return v, false
	}
	return p.items[rand.Intn(len(p.items))], true
}

// Len reports the current number of pooled elements.
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// Registry is the set of named pools the executor's postprocess hooks
// write into and the operation builder draws from (§3, §4.3, §4.7).
// One Registry is shared across an entire Run.
type Registry struct {
	CurvePrivkey       *Pool[component.Bignum]
	CurveKeypair       *Pool[component.ECC_KeyPair]
	CurveECDSASignature *Pool[component.ECDSA_Signature]
	CurveBLSG1         *Pool[component.G1]
	CurveBLSG2         *Pool[component.G2]
	CurveBLSSignature  *Pool[component.BLS_Signature]
	DHPrivateKey       *Pool[component.Bignum]
	DHPublicKey        *Pool[component.Bignum]
	Bignum             *Pool[component.Bignum]
}

// NewRegistry builds the full set of named pools at their default
// capacities.
func NewRegistry() *Registry {
	return &Registry{
		CurvePrivkey:        NewPool[component.Bignum](defaultCapacity),
		CurveKeypair:        NewPool[component.ECC_KeyPair](defaultCapacity),
		CurveECDSASignature: NewPool[component.ECDSA_Signature](defaultCapacity),
		CurveBLSG1:          NewPool[component.G1](defaultCapacity),
		CurveBLSG2:          NewPool[component.G2](defaultCapacity),
		CurveBLSSignature:   NewPool[component.BLS_Signature](defaultCapacity),
		DHPrivateKey:        NewPool[component.Bignum](defaultCapacity),
		DHPublicKey:         NewPool[component.Bignum](defaultCapacity),
		Bignum:              NewPool[component.Bignum](defaultCapacity),
	}
}

// InsertBignum inserts v into the shared Bignum pool, applying the
// kMaxBignumSize admission cap.
func (r *Registry) InsertBignum(v component.Bignum) {
	if v.Len() > kMaxBignumSize {
		return
	}
	r.Bignum.Insert(v)
}
