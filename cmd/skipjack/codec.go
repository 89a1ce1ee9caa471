// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/retrocipher/crypto/skipjack"
)

func decodeHex(s string, n int) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s) != 2*n {
		return nil, errors.Errorf("want %d hex digits, got %d", 2*n, len(s))
	}
	return hex.DecodeString(s)
}

func parseKey(s string) (skipjack.Key, error) {
	var key skipjack.Key
	b, err := decodeHex(s, skipjack.KeySize)
	if err != nil {
		return key, errors.Wrap(err, "invalid key")
	}
	copy(key[:], b)
	return key, nil
}

// parseBlock reads 16 hex digits as four big-endian words.
func parseBlock(s string) (skipjack.Block, error) {
	var blk skipjack.Block
	b, err := decodeHex(s, skipjack.BlockSize)
	if err != nil {
		return blk, errors.Wrapf(err, "invalid block %q", s)
	}
	for i := range blk {
		blk[i] = binary.BigEndian.Uint16(b[2*i:])
	}
	return blk, nil
}

func formatBlock(blk skipjack.Block) string {
	var b [skipjack.BlockSize]byte
	for i, w := range blk {
		binary.BigEndian.PutUint16(b[2*i:], w)
	}
	return hex.EncodeToString(b[:])
}

// readKey prompts on w and reads the key from the terminal fd without echo.
func readKey(fd int, w io.Writer) (skipjack.Key, error) {
	if !term.IsTerminal(fd) {
		return skipjack.Key{}, errors.New("no key given and stdin is not a terminal")
	}

	fmt.Fprint(w, "Key (20 hex digits): ")
	line, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return skipjack.Key{}, errors.Wrap(err, "unable to read key")
	}
	defer func() {
		for i := range line {
			line[i] = 0
		}
	}()

	return parseKey(string(line))
}
