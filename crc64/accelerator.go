// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package crc64

import stdcrc64 "hash/crc64"

// Provider is the contract required of an external bulk CRC-64/XZ
// implementation. Update must take an unfinalized register value s and
// return the register value for s updated by p, bit-for-bit identical
// to the software [Update] path.
type Provider interface {
	Update(s uint64, p []byte) uint64
}

// Software is the always-available, dependency-free provider backed
// by this package's own slice-by-8 engine.
var Software Provider = softwareProvider{}

type softwareProvider struct{}

func (softwareProvider) Update(s uint64, p []byte) uint64 { return Update(s, p) }

// ecmaTable is bit-exact for CRC-64/XZ: XZ uses the same polynomial,
// init, and xorout as ECMA-182.
var ecmaTable = stdcrc64.MakeTable(stdcrc64.ECMA)

// Accelerated returns a [Provider] backed by the standard library's
// hash/crc64 package.
func Accelerated() Provider { return acceleratedProvider{} }

type acceleratedProvider struct{}

func (acceleratedProvider) Update(s uint64, p []byte) uint64 {
	return Finalize(stdcrc64.Update(Finalize(s), ecmaTable, p))
}
