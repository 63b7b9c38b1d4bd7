// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Copyright 1995-2024 Jean-loup Gailly and Mark Adler. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

// Package crc64 implements the CRC-64/XZ checksum used by
// [github.com/malaire/rolling-dual-crc].
//
// The polynomial is fixed to the XZ reflected form
// (0xc96c5795d7870f42), which is the same polynomial, init, and
// xorout as CRC-64/ECMA-182; this package intentionally does not
// generalize to other CRC-64 polynomials.
//
// State values returned by [Init] and [Update] are the raw,
// unfinalized CRC register: call [Finalize] to obtain the
// externally-visible checksum.
package crc64
