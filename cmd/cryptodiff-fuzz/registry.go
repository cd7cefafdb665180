// registry.go: the concrete module set this binary runs with. Every
// module package under modules/ gets wired in here; a binary that only
// wants a subset builds its own registry instead of importing this one.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package main

import (
	"github.com/cryptofuzz-go/cryptodiff/module"
	"github.com/cryptofuzz-go/cryptodiff/modules/curvecrypto"
	"github.com/cryptofuzz-go/cryptodiff/modules/refcrypto"
	"github.com/cryptofuzz-go/cryptodiff/modules/simdcrypto"
)

// newRegistry builds the Registry every entry point in this binary
// shares: refcrypto (stdlib + x/crypto), simdcrypto (vectorized
// fast paths), curvecrypto (curve and pairing backends) plus its
// independent btcec-backed verifier.
func newRegistry() *module.Registry {
	reg := module.NewRegistry(nil)
	for _, m := range []module.Module{
		refcrypto.New(),
		simdcrypto.New(),
		curvecrypto.New(),
		curvecrypto.NewVerifier(),
	} {
		if err := reg.Register(m); err != nil {
			panic(err)
		}
	}
	return reg
}
