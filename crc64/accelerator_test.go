// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package crc64

import (
	"math/rand"
	"testing"
)

func TestAcceleratedMatchesSoftware(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	lengths := []int{0, 1, 7, 8, 9, 1023, 1024, 1025}
	for _, n := range lengths {
		p := randBytes(r, n)
		sw := Software.Update(Init(), p)
		hw := Accelerated().Update(Init(), p)
		if sw != hw {
			t.Fatalf("len %d: software = 0x%016x; accelerated = 0x%016x", n, sw, hw)
		}
	}
}

func TestAcceleratedMidStreamSwitch(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	p1, p2 := randBytes(r, 123), randBytes(r, 457)
	s := Init()
	s = Software.Update(s, p1)
	s = Accelerated().Update(s, p2)
	want := Checksum(append(append([]byte(nil), p1...), p2...))
	if got := Finalize(s); got != want {
		t.Errorf("mixed providers = 0x%016x; want 0x%016x", got, want)
	}
}
