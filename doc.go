// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

// Package crc computes CRC-32C (Castagnoli) and CRC-64/XZ
// simultaneously over byte input, in three usage modes:
//
//   - [Checksum]: one-shot and incremental checksumming.
//   - [Window]: rolling-window checksumming over the most recent W
//     bytes, amortized O(1) work per byte regardless of W.
//   - The crc32 and crc64 subpackages' Zeros operator: appending long
//     runs of zero bytes in O(log N), for composing or skipping gaps.
//
// The two subpackages, [github.com/malaire/rolling-dual-crc/crc32]
// and [github.com/malaire/rolling-dual-crc/crc64], implement each
// polynomial's engine independently and may be used on their own;
// this package wires them together for the combined and rolling use
// cases.
package crc
