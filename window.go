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

// Window computes CRC-32C and CRC-64/XZ over a fixed-size sliding
// window of the most recently seen bytes. After each [Window.Roll]
// call, [Window.CRC32] and [Window.CRC64] describe exactly the
// window's current W bytes, in amortized O(1) work per rolled byte
// independent of W.
//
// A Window exclusively owns its ring buffer and both CRC registers;
// it is not safe for concurrent mutation from multiple goroutines.
type Window struct {
	buf []byte // ring buffer of the window's current W bytes
	pos int    // index of the oldest byte, i.e. the next one to be evicted

	s32 uint32
	s64 uint64

	out32 *[256]uint32 // out-byte compensation table, depends on W
	out64 *[256]uint64
}

// NewWindow constructs a [Window] of size len(initial) over those
// bytes. It fails with [ErrInvalidWindow] if initial is empty, since a
// zero-sized window has no meaningful rolling semantics.
//
// Construction may delegate the initial bulk CRC computation to an
// accelerator provider via [WithCRC32Provider]/[WithCRC64Provider];
// [Window.Roll] and [Window.RollSlice] always use the in-library
// byte-at-a-time path, since the out-byte compensation step has no
// bulk-provider equivalent.
func NewWindow(initial []byte, opts ...Option) (*Window, error) {
	if len(initial) == 0 {
		return nil, ErrInvalidWindow
	}
	o := resolveOptions(opts)
	w := len(initial)

	buf := make([]byte, w)
	copy(buf, initial)

	// OutByteTable cancels only the evicted byte itself. Each roll also
	// pushes the initial register's contribution one byte further, so
	// every entry additionally carries the difference between that
	// contribution after W-1 and after W bytes.
	out32, out64 := crc32.OutByteTable(w), crc64.OutByteTable(w)
	c32 := crc32.NewZeros(int64(w-1)).Apply(crc32.Init()) ^ crc32.NewZeros(int64(w)).Apply(crc32.Init())
	c64 := crc64.NewZeros(int64(w-1)).Apply(crc64.Init()) ^ crc64.NewZeros(int64(w)).Apply(crc64.Init())
	for b := range out32 {
		out32[b] ^= c32
		out64[b] ^= c64
	}

	return &Window{
		buf:   buf,
		pos:   0,
		s32:   o.provider32.Update(crc32.Init(), initial),
		s64:   o.provider64.Update(crc64.Init(), initial),
		out32: out32,
		out64: out64,
	}, nil
}

// Len returns the window's fixed size W.
func (win *Window) Len() int { return len(win.buf) }

// Roll appends b to the window and evicts the oldest byte, in strict
// Θ(1) time independent of W. The out-byte table XORs away the
// evicted byte's contribution (as if it were followed by W-1 zero
// bytes), and keeps the initial register's contribution at W bytes,
// before the new byte is folded in with the ordinary byte-at-a-time
// step; CRC linearity over GF(2) makes this exact.
func (win *Window) Roll(b byte) {
	out := win.buf[win.pos]
	win.s32 = crc32.AdvanceByte(win.s32^win.out32[out], b)
	win.s64 = crc64.AdvanceByte(win.s64^win.out64[out], b)
	win.buf[win.pos] = b
	win.pos++
	if win.pos == len(win.buf) {
		win.pos = 0
	}
}

// RollSlice calls Roll on each byte of p in order.
func (win *Window) RollSlice(p []byte) {
	for _, b := range p {
		win.Roll(b)
	}
}

// CRC32 returns the finalized CRC-32C checksum of the window's current contents.
func (win *Window) CRC32() uint32 { return crc32.Finalize(win.s32) }

// CRC64 returns the finalized CRC-64/XZ checksum of the window's current contents.
func (win *Window) CRC64() uint64 { return crc64.Finalize(win.s64) }
