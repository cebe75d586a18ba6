// The vpx-verify command checks that a VPX file survives decoding and
// encoding unchanged.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/francisdb/vpxtool"
	"github.com/francisdb/vpxtool/cfb"
)

const usage = `usage: vpx-verify [-w OUTPUT] INPUT

Reads the VPX file INPUT, decodes every stream, encodes the table again, and
compares each resulting stream with the original. Streams that differ, are
missing or were added are listed on stdout, and the exit status is 1.

If -w is given, the encoded table is also written to the file OUTPUT. OUTPUT
is replaced only once the whole table was encoded.

Warnings and errors are written to stderr.
`

// compare lists the differences between the streams of two containers.
func compare(want, got *cfb.Container) (diffs []string) {
	for _, path := range want.Paths() {
		a, _ := want.Stream(path)
		b, err := got.Stream(path)
		switch {
		case err != nil:
			diffs = append(diffs, fmt.Sprintf("missing: %s", path))
		case !bytes.Equal(a, b):
			diffs = append(diffs, fmt.Sprintf("changed: %s (%d -> %d bytes)", path, len(a), len(b)))
		}
	}
	for _, path := range got.Paths() {
		if !want.Has(path) {
			diffs = append(diffs, fmt.Sprintf("added: %s", path))
		}
	}
	return diffs
}

func main() {
	var output string
	flag.StringVar(&output, "w", "", "write the encoded table to this file")
	flag.Usage = func() { fmt.Fprintf(flag.CommandLine.Output(), usage) }
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	orig, err := cfb.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("open input: %w", err))
		os.Exit(1)
	}
	table, warn, err := vpxtool.Decoder{Parallel: true}.Decode(orig)
	if warn != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("decode warning: %w", warn))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("decode error: %w", err))
		os.Exit(1)
	}
	out, err := vpxtool.Encoder{}.Encode(table)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("encode error: %w", err))
		os.Exit(1)
	}

	diffs := compare(orig, out)
	for _, d := range diffs {
		fmt.Println(d)
	}
	if output != "" {
		if err := out.Save(output); err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("write output: %w", err))
			os.Exit(1)
		}
	}
	if len(diffs) > 0 {
		os.Exit(1)
	}
}
