// misc.go: the catch-all Misc family. This reference backend answers
// a small fixed set of named sub-operations with a pure byte-buffer
// transform; anything else is declined.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package refcrypto

import (
	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

func dispatchMisc(o *operation.MiscOp) (component.Result, error) {
	switch o.Op {
	case "reverse":
		out := make([]byte, len(o.Cleartext))
		for i, b := range o.Cleartext {
			out[len(out)-1-i] = b
		}
		return component.Buffer{Data: out}, nil
	case "xor_ff":
		out := make([]byte, len(o.Cleartext))
		for i, b := range o.Cleartext {
			out[i] = b ^ 0xff
		}
		return component.Buffer{Data: out}, nil
	default:
		return nil, nil
	}
}
