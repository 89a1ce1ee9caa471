// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skipjack_test

import (
	"encoding/hex"
	"fmt"

	"github.com/retrocipher/crypto/skipjack"
)

func ExampleCipher_EncryptBlock() {
	c := skipjack.New(skipjack.Key{0x00, 0x99, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11})

	b := skipjack.Block{0x3322, 0x1100, 0xddcc, 0xbbaa}
	c.EncryptBlock(&b)
	fmt.Printf("%04x\n", b)

	c.DecryptBlock(&b)
	fmt.Printf("%04x\n", b)

	// Output:
	// [2587 cae2 7a12 d300]
	// [3322 1100 ddcc bbaa]
}

func ExampleNewCipher() {
	key, _ := hex.DecodeString("00998877665544332211")
	c, err := skipjack.NewCipher(key)
	if err != nil {
		panic(err)
	}

	plaintext, _ := hex.DecodeString("33221100ddccbbaa")
	ciphertext := make([]byte, skipjack.BlockSize)
	c.Encrypt(ciphertext, plaintext)
	fmt.Printf("%x\n", ciphertext)

	// Output: 2587cae27a12d300
}
