// The vpx-extractvbs command writes the script of a table next to it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/francisdb/vpxtool"
)

const usage = `usage: vpx-extractvbs TABLE...

Reads the script of each VPX file TABLE, and writes it to a file with the same
name and the extension ".vbs". The script is written as stored, without any
change of encoding. Existing script files are replaced.

The path of each written file is written to stdout. Errors are written to
stderr.
`

func main() {
	flag.Usage = func() { fmt.Fprintf(flag.CommandLine.Output(), usage) }
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	failed := false
	for _, table := range flag.Args() {
		path, err := vpxtool.ExtractScript(table)
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("%s: %w", table, err))
			failed = true
			continue
		}
		fmt.Println(path)
	}
	if failed {
		os.Exit(1)
	}
}
