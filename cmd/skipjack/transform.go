// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/retrocipher/crypto/skipjack"
)

// transformer runs every block it is given through one cipher direction.
type transformer struct {
	cipher  *skipjack.Cipher
	decrypt bool
	log     *logrus.Logger
}

func (t *transformer) transform(s string) (string, error) {
	b, err := parseBlock(s)
	if err != nil {
		return "", err
	}
	if t.decrypt {
		t.cipher.DecryptBlock(&b)
	} else {
		t.cipher.EncryptBlock(&b)
	}
	return formatBlock(b), nil
}

// args transforms each argument and writes one result per line.
// It returns the number of blocks that could not be parsed.
func (t *transformer) args(w io.Writer, args []string) (failed int, err error) {
	bw := bufio.NewWriter(w)
	for i, arg := range args {
		out, err := t.transform(arg)
		if err != nil {
			t.log.WithField("arg", i+1).Error(err)
			failed++
			continue
		}
		t.log.WithField("arg", i+1).Debugf("%s -> %s", arg, out)
		bw.WriteString(out + "\n")
	}
	return failed, errors.Wrap(bw.Flush(), "unable to write output")
}

// lines is like args but reads one block per line from r, skipping blank
// lines and '#' comments.
func (t *transformer) lines(w io.Writer, r io.Reader) (failed int, err error) {
	bw := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out, err := t.transform(line)
		if err != nil {
			t.log.WithField("line", n).Error(err)
			failed++
			continue
		}
		t.log.WithField("line", n).Debugf("%s -> %s", line, out)
		bw.WriteString(out + "\n")
	}
	if err := sc.Err(); err != nil {
		return failed, errors.Wrap(err, "unable to read input")
	}
	return failed, errors.Wrap(bw.Flush(), "unable to write output")
}
