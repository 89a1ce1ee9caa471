// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skipjack

const rounds = 32

func wordToBytes(w uint16) (hi, lo byte) {
	return byte(w >> 8), byte(w)
}

func bytesToWord(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// g is the keyed permutation G on a single word: a four-round Feistel
// cascade over the F-table, one key byte per round, starting at key byte
// 4*step mod 10.
func g(key *Key, w uint16, step int) uint16 {
	g1, g2 := wordToBytes(w)
	k := 4 * step

	g3 := ftable[g2^key[k%KeySize]] ^ g1
	g4 := ftable[g3^key[(k+1)%KeySize]] ^ g2
	g5 := ftable[g4^key[(k+2)%KeySize]] ^ g3
	g6 := ftable[g5^key[(k+3)%KeySize]] ^ g4

	return bytesToWord(g5, g6)
}

// gInv undoes g for the same key and step.
func gInv(key *Key, w uint16, step int) uint16 {
	g5, g6 := wordToBytes(w)
	k := 4 * step

	g4 := ftable[g5^key[(k+3)%KeySize]] ^ g6
	g3 := ftable[g4^key[(k+2)%KeySize]] ^ g5
	g2 := ftable[g3^key[(k+1)%KeySize]] ^ g4
	g1 := ftable[g2^key[k%KeySize]] ^ g3

	return bytesToWord(g1, g2)
}

// A stepFunc returns b after one round. counter is the 1-based round number.
// Blocks are passed by value.
type stepFunc func(key *Key, b Block, counter uint16) Block

// keyStep maps a round counter to the 0-based step used to pick key bytes in G.
func keyStep(counter uint16) int {
	return int(counter) - 1
}

func stepA(key *Key, w Block, counter uint16) Block {
	x := g(key, w[0], keyStep(counter))
	return Block{x ^ w[3] ^ counter, x, w[1], w[2]}
}

func stepAInv(key *Key, w Block, counter uint16) Block {
	return Block{gInv(key, w[1], keyStep(counter)), w[2], w[3], w[0] ^ w[1] ^ counter}
}

func stepB(key *Key, w Block, counter uint16) Block {
	return Block{w[3], g(key, w[0], keyStep(counter)), w[0] ^ w[1] ^ counter, w[2]}
}

func stepBInv(key *Key, w Block, counter uint16) Block {
	x := gInv(key, w[1], keyStep(counter))
	return Block{x, x ^ w[2] ^ counter, w[3], w[0]}
}

// schedule lists which rule runs for each round. Encryption walks it top to
// bottom with rising counters; decryption walks it bottom to top with falling
// counters and the inverse rules.
var schedule = [...]struct {
	first, last uint16
	encrypt     stepFunc
	decrypt     stepFunc
}{
	{1, 8, stepA, stepAInv},
	{9, 16, stepB, stepBInv},
	{17, 24, stepA, stepAInv},
	{25, 32, stepB, stepBInv},
}

func encryptBlock(key *Key, b *Block) {
	w := *b
	for _, band := range schedule {
		for counter := band.first; counter <= band.last; counter++ {
			w = band.encrypt(key, w, counter)
		}
	}
	*b = w
}

func decryptBlock(key *Key, b *Block) {
	w := *b
	for i := len(schedule) - 1; i >= 0; i-- {
		band := &schedule[i]
		for counter := band.last; counter >= band.first; counter-- {
			w = band.decrypt(key, w, counter)
		}
	}
	*b = w
}
