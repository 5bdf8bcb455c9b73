// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ulz

// Command ulz compresses, decompresses and inspects ULZ files.
//
//	ulz compress   [-t 0|2] [-l 1|2|4|8] [-s] [-like FILE] [-o OUT] [-p] [-k] FILE
//	ulz decompress [-o OUT] [-p] [-k] FILE
//	ulz info       FILE...
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

var (
	dashv bool
	dashh bool
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("ulz: ")
	flag.BoolVar(&dashv, "v", false, "verbose")
	flag.BoolVar(&dashh, "h", false, "show usage help")
}

func exitf(f string, args ...any) {
	fmt.Fprintf(os.Stderr, "ulz: "+f, args...)
	os.Exit(1)
}

func logf(f string, args ...any) {
	if dashv {
		log.Printf(f, args...)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `usage: %s [-v] <command> [args...]

commands:
  compress    compress a file (recompresses in place when -o names the input)
  decompress  decompress a file; output is .tim for TIM images, .dat otherwise
  info        print header fields and match statistics

`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if dashh || len(args) == 0 {
		usage()
		os.Exit(1)
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "compress", "c":
		err = runCompress(rest)
	case "decompress", "d":
		err = runDecompress(rest)
	case "info", "i":
		err = runInfo(os.Stdout, rest)
	default:
		exitf("unknown command %q\n", cmd)
	}

	if err != nil {
		exitf("%s\n", err)
	}
}
