// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package crc

import (
	"github.com/malaire/rolling-dual-crc/crc32"
	"github.com/malaire/rolling-dual-crc/crc64"
)

// Checksum holds the pair of CRC-32C and CRC-64/XZ registers, updated
// in lockstep. It is the combined checksummer of this module: every
// byte fed to [Checksum.Update] advances both engines atomically.
//
// A zero Checksum is not ready to use; construct one with [New].
type Checksum struct {
	s32      uint32
	s64      uint64
	update32 func(uint32, []byte) uint32
	update64 func(uint64, []byte) uint64
}

// Option configures a [Checksum] or [Window] at construction time. The
// bound strategy never changes afterward, so hot paths never branch
// on whether acceleration is in effect.
type Option func(*options)

type options struct {
	provider32 crc32.Provider
	provider64 crc64.Provider
}

// WithCRC32Provider delegates bulk CRC-32C work to provider, for
// example [crc32.Accelerated] to dispatch to a hardware CRC32
// instruction when available. The default is [crc32.Software].
func WithCRC32Provider(provider crc32.Provider) Option {
	return func(o *options) { o.provider32 = provider }
}

// WithCRC64Provider delegates bulk CRC-64/XZ work to provider, for
// example [crc64.Accelerated]. The default is [crc64.Software].
func WithCRC64Provider(provider crc64.Provider) Option {
	return func(o *options) { o.provider64 = provider }
}

func resolveOptions(opts []Option) options {
	o := options{provider32: crc32.Software, provider64: crc64.Software}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns a [Checksum] initialized for an empty input.
func New(opts ...Option) *Checksum {
	o := resolveOptions(opts)
	return &Checksum{
		s32:      crc32.Init(),
		s64:      crc64.Init(),
		update32: o.provider32.Update,
		update64: o.provider64.Update,
	}
}

// Update feeds p into both engines in lockstep. Calling Update
// repeatedly is equivalent to calling it once with the concatenation
// of the arguments.
func (c *Checksum) Update(p []byte) {
	c.s32 = c.update32(c.s32, p)
	c.s64 = c.update64(c.s64, p)
}

// CRC32 returns the finalized CRC-32C checksum of all bytes fed so
// far. It does not mutate c and may be called repeatedly.
func (c *Checksum) CRC32() uint32 { return crc32.Finalize(c.s32) }

// CRC64 returns the finalized CRC-64/XZ checksum of all bytes fed so far.
func (c *Checksum) CRC64() uint64 { return crc64.Finalize(c.s64) }

// Checksum32 computes the one-shot CRC-32C checksum of p.
func Checksum32(p []byte) uint32 { return crc32.Checksum(p) }

// Checksum64 computes the one-shot CRC-64/XZ checksum of p.
func Checksum64(p []byte) uint64 { return crc64.Checksum(p) }

// ChecksumPair computes the one-shot CRC-32C and CRC-64/XZ checksums
// of p, equivalent to constructing a [Checksum], calling Update once,
// and reading both finalized values.
func ChecksumPair(p []byte) (uint32, uint64) {
	return crc32.Checksum(p), crc64.Checksum(p)
}

// ValidateCRC32Provider runs provider and [crc32.Software] over the
// same sample, starting from [crc32.Init], and reports
// [ErrProviderMismatch] if they diverge. It is a one-off startup check
// for an accelerator — ordinary [Checksum.Update] and [Window.Roll]
// never perform this comparison themselves, since spec.md requires
// them to never fail.
func ValidateCRC32Provider(provider crc32.Provider, sample []byte) error {
	if provider.Update(crc32.Init(), sample) != crc32.Software.Update(crc32.Init(), sample) {
		return ErrProviderMismatch
	}
	return nil
}

// ValidateCRC64Provider is the CRC-64/XZ counterpart of
// [ValidateCRC32Provider].
func ValidateCRC64Provider(provider crc64.Provider, sample []byte) error {
	if provider.Update(crc64.Init(), sample) != crc64.Software.Update(crc64.Init(), sample) {
		return ErrProviderMismatch
	}
	return nil
}
