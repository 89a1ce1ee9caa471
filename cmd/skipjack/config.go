// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/nadoo/conflag"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var flag = conflag.New()

// Config is the tool's configuration, from flags or a config file.
type Config struct {
	Key      string
	Decrypt  bool
	Verbose  bool
	LogLevel string
}

func parseConfig() *Config {
	conf := &Config{}

	flag.StringVar(&conf.Key, "key", "", "80-bit key as 20 hex digits, prompted for on the terminal when empty")
	flag.BoolVar(&conf.Decrypt, "decrypt", false, "decrypt blocks instead of encrypting them")
	flag.BoolVar(&conf.Verbose, "verbose", false, "verbose mode, same as -loglevel debug")
	flag.StringVar(&conf.LogLevel, "loglevel", "info", "log level: panic, fatal, error, warn, info, debug or trace")

	flag.Usage = usage
	if err := flag.Parse(); err != nil {
		// with no arguments at all conflag looks for an optional skipjack.conf.
		if !(len(os.Args) == 1 && os.IsNotExist(err)) {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			os.Exit(2)
		}
	}

	return conf
}

func newLogger(conf *Config) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse log level")
	}
	if conf.Verbose {
		lvl = logrus.DebugLevel
	}

	return &logrus.Logger{
		Out: os.Stderr,
		Formatter: &logrus.TextFormatter{
			TimestampFormat: time.RFC3339,
			FullTimestamp:   true,
			DisableSorting:  true,
		},
		Hooks: make(logrus.LevelHooks),
		Level: lvl,
	}, nil
}

func usage() {
	fmt.Fprint(flag.Output(), usage1)
	flag.PrintDefaults()
	fmt.Fprint(flag.Output(), usage2)
}

var usage1 = `
Usage: skipjack [-key KEY] [-decrypt] [OPTION]... [BLOCK]...

  e.g. skipjack -key 00998877665544332211 33221100ddccbbaa
       skipjack -config /etc/skipjack.conf -decrypt < blocks.txt

OPTION:
`

var usage2 = `
BLOCK:
   16 hex digits, four big-endian 16-bit words. Without BLOCK arguments,
   blocks are read from stdin one per line; blank lines and lines starting
   with '#' are skipped.

CONFIG FILE:
   one flag per line without the leading '-', e.g.
       key=00998877665544332211
       decrypt=true
`
