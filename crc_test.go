// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package crc

import (
	"math/rand"
	"testing"

	"github.com/malaire/rolling-dual-crc/crc32"
	"github.com/malaire/rolling-dual-crc/crc64"
)

func TestCheckVectors(t *testing.T) {
	c32, c64 := ChecksumPair([]byte("123456789"))
	if c32 != 0xe3069283 {
		t.Errorf("Checksum32 = 0x%08x; want 0xe3069283", c32)
	}
	if c64 != 0x995dc9bbdf1939fa {
		t.Errorf("Checksum64 = 0x%016x; want 0x995dc9bbdf1939fa", c64)
	}
}

func TestHelloWorld(t *testing.T) {
	c32, c64 := ChecksumPair([]byte("Hello, world!"))
	if c32 != 0xc8a106e5 {
		t.Errorf("Checksum32 = 0x%08x; want 0xc8a106e5", c32)
	}
	if c64 != 0x8e59e143665877c4 {
		t.Errorf("Checksum64 = 0x%016x; want 0x8e59e143665877c4", c64)
	}
}

func TestOneShotEqualsIncremental(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	chunks := [][]byte{nil, randBytes(r, 3), randBytes(r, 8), randBytes(r, 257), randBytes(r, 1)}

	c := New()
	var all []byte
	for _, chunk := range chunks {
		c.Update(chunk)
		all = append(all, chunk...)
	}
	wantA, wantB := ChecksumPair(all)
	if got := c.CRC32(); got != wantA {
		t.Errorf("CRC32() = 0x%08x; want 0x%08x", got, wantA)
	}
	if got := c.CRC64(); got != wantB {
		t.Errorf("CRC64() = 0x%016x; want 0x%016x", got, wantB)
	}
}

func TestChecksumWithAcceleratedProviders(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	data := randBytes(r, 4096)

	sw := New()
	sw.Update(data)

	hw := New(WithCRC32Provider(crc32.Accelerated()), WithCRC64Provider(crc64.Accelerated()))
	hw.Update(data)

	if sw.CRC32() != hw.CRC32() {
		t.Errorf("software CRC32 = 0x%08x; accelerated = 0x%08x", sw.CRC32(), hw.CRC32())
	}
	if sw.CRC64() != hw.CRC64() {
		t.Errorf("software CRC64 = 0x%016x; accelerated = 0x%016x", sw.CRC64(), hw.CRC64())
	}
}

func TestValidateProviderAcceptsAccelerated(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	sample := randBytes(r, 4096)

	if err := ValidateCRC32Provider(crc32.Accelerated(), sample); err != nil {
		t.Errorf("ValidateCRC32Provider(Accelerated()) = %v; want nil", err)
	}
	if err := ValidateCRC64Provider(crc64.Accelerated(), sample); err != nil {
		t.Errorf("ValidateCRC64Provider(Accelerated()) = %v; want nil", err)
	}
}

type brokenProvider struct{}

func (brokenProvider) Update(s uint32, p []byte) uint32 {
	return crc32.Software.Update(s, p) ^ 1
}

func TestValidateProviderRejectsMismatch(t *testing.T) {
	if err := ValidateCRC32Provider(brokenProvider{}, []byte("anything")); err != ErrProviderMismatch {
		t.Errorf("ValidateCRC32Provider(bad) error = %v; want %v", err, ErrProviderMismatch)
	}
}

func randBytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	_, _ = r.Read(b)
	return b
}
