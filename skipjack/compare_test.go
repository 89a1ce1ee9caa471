// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skipjack_test

import (
	"bytes"
	"crypto/cipher"
	"crypto/des"
	"testing"

	idea "github.com/dgryski/go-idea"
	rc2 "github.com/dgryski/go-rc2"
	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/cast5"
	"golang.org/x/crypto/xtea"

	"github.com/retrocipher/crypto/skipjack"
)

// blockCiphers64 returns SKIPJACK next to other 64-bit block ciphers so they
// can be checked and measured the same way.
func blockCiphers64(t testing.TB) []struct {
	name  string
	block cipher.Block
} {
	key := func(n int) []byte {
		k := make([]byte, n)
		for i := range k {
			k[i] = byte(i*17 + 3)
		}
		return k
	}

	mk := func(b cipher.Block, err error) cipher.Block {
		if err != nil {
			t.Fatal(err)
		}
		return b
	}

	sj, err := skipjack.NewCipher(key(skipjack.KeySize))
	if err != nil {
		t.Fatal(err)
	}
	bf, err := blowfish.NewCipher(key(16))
	if err != nil {
		t.Fatal(err)
	}
	c5, err := cast5.NewCipher(key(16))
	if err != nil {
		t.Fatal(err)
	}
	xt, err := xtea.NewCipher(key(16))
	if err != nil {
		t.Fatal(err)
	}

	return []struct {
		name  string
		block cipher.Block
	}{
		{"SKIPJACK", sj},
		{"IDEA", mk(idea.NewCipher(key(16)))},
		{"RC2", mk(rc2.New(key(16), 128))},
		{"Blowfish", bf},
		{"CAST5", c5},
		{"XTEA", xt},
		{"DES", mk(des.NewCipher(key(8)))},
	}
}

func TestBlockCipherBehavior(t *testing.T) {
	for _, bc := range blockCiphers64(t) {
		t.Run(bc.name, func(t *testing.T) {
			c := bc.block
			if c.BlockSize() != skipjack.BlockSize {
				t.Fatalf("BlockSize() = %d, want %d", c.BlockSize(), skipjack.BlockSize)
			}

			src := []byte("ABCDEFGH")
			ct := make([]byte, c.BlockSize())
			c.Encrypt(ct, src)
			if bytes.Equal(ct, src) {
				t.Fatalf("Encrypt left %q unchanged", src)
			}

			buf := append([]byte(nil), src...)
			c.Encrypt(buf, buf)
			if !bytes.Equal(buf, ct) {
				t.Errorf("in-place Encrypt = %x, want %x", buf, ct)
			}

			c.Decrypt(buf, buf)
			if !bytes.Equal(buf, src) {
				t.Errorf("in-place Decrypt = %q, want %q", buf, src)
			}
		})
	}
}

func BenchmarkBlockCipher64(b *testing.B) {
	for _, bc := range blockCiphers64(b) {
		c := bc.block
		b.Run(bc.name+"/Encrypt", func(b *testing.B) {
			buf := make([]byte, c.BlockSize())
			b.SetBytes(int64(len(buf)))
			for i := 0; i < b.N; i++ {
				c.Encrypt(buf, buf)
			}
		})
		b.Run(bc.name+"/Decrypt", func(b *testing.B) {
			buf := make([]byte, c.BlockSize())
			b.SetBytes(int64(len(buf)))
			for i := 0; i < b.N; i++ {
				c.Decrypt(buf, buf)
			}
		})
	}
}
