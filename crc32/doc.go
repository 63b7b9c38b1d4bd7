// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Copyright 1995-2024 Jean-loup Gailly and Mark Adler. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

// Package crc32 implements the CRC-32C (Castagnoli) checksum used by
// [github.com/malaire/rolling-dual-crc].
//
// The polynomial is fixed to Castagnoli's reflected form
// (0x82f63b78); this package intentionally does not generalize to
// other CRC-32 polynomials.
//
// State values returned by [Init] and [Update] are the raw,
// unfinalized CRC register: call [Finalize] to obtain the
// externally-visible checksum. Keeping the two separate lets the
// [Zeros] operator and the rolling window machinery in the parent
// package operate on the linear register directly.
package crc32
