// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command skipjack encrypts or decrypts single 64-bit blocks with SKIPJACK.
//
// Each block is transformed on its own; no chaining mode is applied. Blocks
// come from the command line or, without arguments, from stdin one per line.
package main

import (
	"fmt"
	"os"

	"github.com/retrocipher/crypto/skipjack"
)

func main() {
	conf := parseConfig()

	log, err := newLogger(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(2)
	}

	var key skipjack.Key
	if conf.Key != "" {
		key, err = parseKey(conf.Key)
	} else {
		key, err = readKey(int(os.Stdin.Fd()), os.Stderr)
	}
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}

	t := &transformer{
		cipher:  skipjack.New(key),
		decrypt: conf.Decrypt,
		log:     log,
	}

	var failed int
	if flag.NArg() > 0 {
		failed, err = t.args(os.Stdout, flag.Args())
	} else {
		failed, err = t.lines(os.Stdout, os.Stdin)
	}
	if err != nil {
		log.Fatal(err)
	}
	if failed > 0 {
		log.Errorf("%d block(s) could not be transformed", failed)
		os.Exit(1)
	}
}
