// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Copyright 1995-2024 Jean-loup Gailly and Mark Adler. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package crc32

import "github.com/malaire/rolling-dual-crc/internal/lazy"

// reflectedPoly is Castagnoli's polynomial in reflected (LSB-first) form.
const reflectedPoly uint32 = 0x82f63b78

// sliceTables holds the eight slice-by-8 lookup tables for reflectedPoly.
// T0 is the ordinary single-byte reduction table; T1..T7 fold in bytes
// that are progressively further from the end of the current word.
type sliceTables [8][256]uint32

var tables = lazy.Value[*sliceTables]{Init: buildTables}

func buildTables() *sliceTables {
	var t sliceTables
	for b := 0; b < 256; b++ {
		crc := uint32(b)
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ reflectedPoly
			} else {
				crc >>= 1
			}
		}
		t[0][b] = crc
	}
	for i := 1; i < 8; i++ {
		for b := 0; b < 256; b++ {
			prev := t[i-1][b]
			t[i][b] = (prev >> 8) ^ t[0][prev&0xff]
		}
	}
	return &t
}
