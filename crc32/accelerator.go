// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package crc32

import stdcrc32 "hash/crc32"

// Provider is the contract required of an external bulk CRC-32C
// implementation (for example a hardware-accelerated one). Update must
// take an unfinalized register value s and return the register value
// for s updated by p, bit-for-bit identical to the software [Update]
// path. Providers must be associative with the in-library engine:
// switching providers mid-stream must not change the outcome.
type Provider interface {
	Update(s uint32, p []byte) uint32
}

// Software is the always-available, dependency-free provider backed
// by this package's own slice-by-8 engine.
var Software Provider = softwareProvider{}

type softwareProvider struct{}

func (softwareProvider) Update(s uint32, p []byte) uint32 { return Update(s, p) }

var castagnoliTable = stdcrc32.MakeTable(stdcrc32.Castagnoli)

// Accelerated returns a [Provider] backed by the standard library's
// hash/crc32 package, which dispatches to a hardware CRC32
// instruction when the host supports it. Its output is required to be
// bit-for-bit identical to [Software] for every input; this module's
// accelerator tests verify that across randomized inputs.
func Accelerated() Provider { return acceleratedProvider{} }

type acceleratedProvider struct{}

// Update adapts the stdlib convention (crc and result are
// already-finalized public checksums, with init/xorout hidden inside
// Update) to this package's convention (s is the raw, unfinalized
// register) by finalizing before the call and un-finalizing after.
func (acceleratedProvider) Update(s uint32, p []byte) uint32 {
	return Finalize(stdcrc32.Update(Finalize(s), castagnoliTable, p))
}
