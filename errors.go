// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package crc

import "errors"

// ErrInvalidWindow is returned by [NewWindow] when the initial window
// is empty. A rolling window has no meaningful zero-sized semantics,
// so construction fails rather than silently producing a degenerate
// window.
var ErrInvalidWindow = errors.New("crc: rolling window must have at least one byte")

// ErrProviderMismatch is returned by [ValidateCRC32Provider] and
// [ValidateCRC64Provider] when a [crc32.Provider] or [crc64.Provider]
// disagrees with the software engine it is meant to accelerate. It
// should never be seen in production: a provider that can trigger it
// is broken and must not be bound with [WithCRC32Provider] or
// [WithCRC64Provider].
var ErrProviderMismatch = errors.New("crc: provider disagrees with the software engine")
