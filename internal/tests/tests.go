// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package tests

import (
	"math/rand"
	"testing"
)

// SplitCase is a pair of byte slices to be fed to an engine back to
// back, exercising incremental-vs-one-shot equivalence across a range
// of lengths and 8-byte-boundary alignments.
type SplitCase struct{ A, B []byte }

var SplitCases []SplitCase

func init() {
	zeroes := make([]byte, 8)
	SplitCases = []SplitCase{
		{nil, nil},
		{nil, zeroes},
		{zeroes, nil},
		{zeroes, zeroes},
	}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 128; i++ {
		SplitCases = append(SplitCases, SplitCase{randBuf(r, 256), randBuf(r, 256)})
	}
}

func randBuf(r *rand.Rand, max int) []byte {
	b := make([]byte, r.Intn(max))
	_, _ = r.Read(b)
	return b
}

// SplitFunc receives one SplitCase's two halves.
type SplitFunc func(t *testing.T, a, b []byte)

// FuzzSplit seeds f with every SplitCase and hands control to fn.
func FuzzSplit(f *testing.F, fn SplitFunc) {
	for _, c := range SplitCases {
		f.Add(c.A, c.B)
	}
	f.Fuzz(fn)
}

// TestSplit runs fn over every SplitCase in its own parallel subtest.
func TestSplit(t *testing.T, fn SplitFunc) {
	for _, c := range SplitCases {
		c := c
		t.Run("", func(t *testing.T) {
			t.Parallel()
			fn(t, c.A, c.B)
		})
	}
}
