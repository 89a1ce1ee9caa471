// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package skipjack implements the SKIPJACK block cipher as described in the
// SKIPJACK and KEA Algorithm Specifications, Version 2.0.
//
// SKIPJACK encrypts 64-bit blocks under an 80-bit key in 32 rounds that
// alternate between two stepping rules, A and B, each built on a keyed
// 16-bit permutation G.
//
// SKIPJACK is a legacy cipher and its 80-bit key is too short for modern
// use. This package is provided for interoperability with existing data and
// for study; new designs should use AES (from crypto/aes) instead.
//
// Only the block transform is provided. Callers needing to process more than
// one block must supply a mode of operation themselves.
package skipjack // import "github.com/retrocipher/crypto/skipjack"

import (
	"crypto/cipher"
	"encoding/binary"
	"strconv"

	"github.com/retrocipher/crypto/internal/alias"
)

const (
	// BlockSize is the SKIPJACK block size in bytes.
	BlockSize = 8
	// KeySize is the SKIPJACK key size in bytes.
	KeySize = 10
)

// A Block is one 64-bit SKIPJACK block as four 16-bit words.
type Block [4]uint16

// A Key is an 80-bit SKIPJACK key.
type Key [KeySize]byte

// KeySizeError is returned for incorrect key sizes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "skipjack: invalid key size " + strconv.Itoa(int(k))
}

// A Cipher is an instance of SKIPJACK using a particular key. It is not
// modified after construction and may be used from multiple goroutines.
type Cipher struct {
	key Key
}

var _ cipher.Block = (*Cipher)(nil)

// New returns a Cipher for key.
func New(key Key) *Cipher {
	return &Cipher{key: key}
}

// NewCipher creates and returns a Cipher. The key argument must be exactly
// KeySize bytes long.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	c := new(Cipher)
	copy(c.key[:], key)
	return c, nil
}

// EncryptBlock encrypts b in place.
func (c *Cipher) EncryptBlock(b *Block) {
	encryptBlock(&c.key, b)
}

// DecryptBlock decrypts b in place.
func (c *Cipher) DecryptBlock(b *Block) {
	decryptBlock(&c.key, b)
}

// BlockSize returns the SKIPJACK block size, 8 bytes.
// It is necessary to satisfy the Block interface in the
// package "crypto/cipher".
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the 8-byte buffer src using the key and stores
// the result in dst. Each word is read and written big-endian.
// Note that for amounts of data larger than a block,
// it is not safe to just call Encrypt on successive blocks;
// instead, use an encryption mode like CBC (see crypto/cipher/cbc.go).
func (c *Cipher) Encrypt(dst, src []byte) {
	checkBuffers(dst, src)
	b := loadBlock(src)
	encryptBlock(&c.key, &b)
	storeBlock(dst, &b)
}

// Decrypt decrypts the 8-byte buffer src using the key and stores
// the result in dst.
func (c *Cipher) Decrypt(dst, src []byte) {
	checkBuffers(dst, src)
	b := loadBlock(src)
	decryptBlock(&c.key, &b)
	storeBlock(dst, &b)
}

func checkBuffers(dst, src []byte) {
	if len(src) < BlockSize {
		panic("skipjack: input not full block")
	}
	if len(dst) < BlockSize {
		panic("skipjack: output not full block")
	}
	if alias.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("skipjack: invalid buffer overlap")
	}
}

func loadBlock(src []byte) Block {
	return Block{
		binary.BigEndian.Uint16(src[0:]),
		binary.BigEndian.Uint16(src[2:]),
		binary.BigEndian.Uint16(src[4:]),
		binary.BigEndian.Uint16(src[6:]),
	}
}

func storeBlock(dst []byte, b *Block) {
	binary.BigEndian.PutUint16(dst[0:], b[0])
	binary.BigEndian.PutUint16(dst[2:], b[1])
	binary.BigEndian.PutUint16(dst[4:], b[2])
	binary.BigEndian.PutUint16(dst[6:], b[3])
}
