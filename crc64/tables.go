// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Copyright 1995-2024 Jean-loup Gailly and Mark Adler. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package crc64

import "github.com/malaire/rolling-dual-crc/internal/lazy"

// reflectedPoly is the XZ/ECMA-182 polynomial in reflected (LSB-first) form.
const reflectedPoly uint64 = 0xc96c5795d7870f42

// sliceTables holds the eight slice-by-8 lookup tables for reflectedPoly.
type sliceTables [8][256]uint64

var tables = lazy.Value[*sliceTables]{Init: buildTables}

func buildTables() *sliceTables {
	var t sliceTables
	for b := 0; b < 256; b++ {
		crc := uint64(b)
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
