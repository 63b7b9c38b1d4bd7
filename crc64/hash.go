// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package crc64

import (
	"encoding"
	"encoding/binary"
	"errors"
	"hash"
)

// Hash is a [hash.Hash64] that also implements [encoding.BinaryMarshaler]
// and [encoding.BinaryUnmarshaler] to checkpoint and resume the
// internal state of the hash.
type Hash interface {
	hash.Hash64
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

const magic = "crc6\x01"

// New creates a new [Hash] computing the CRC-64/XZ checksum, optionally
// delegating bulk Write calls to provider. A nil provider uses [Software].
func New(provider Provider) Hash {
	if provider == nil {
		provider = Software
	}
	return &digest{s: Init(), update: provider.Update}
}

type digest struct {
	s      uint64
	update func(uint64, []byte) uint64
}

func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return 1 }
func (d *digest) Reset()         { d.s = Init() }

func (d *digest) Write(p []byte) (int, error) {
	d.s = d.update(d.s, p)
	return len(p), nil
}

func (d *digest) Sum64() uint64 { return Finalize(d.s) }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum64()
	return append(in,
		byte(s>>56), byte(s>>48), byte(s>>40), byte(s>>32),
		byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (d *digest) MarshalBinary() ([]byte, error) {
	b := make([]byte, len(magic)+8)
	copy(b, magic)
	binary.BigEndian.PutUint64(b[len(magic):], d.s)
	return b, nil
}

func (d *digest) UnmarshalBinary(b []byte) error {
	if len(b) != len(magic)+8 || string(b[:len(magic)]) != magic {
		return errors.New("crc64: invalid hash state")
	}
	d.s = binary.BigEndian.Uint64(b[len(magic):])
	return nil
}
