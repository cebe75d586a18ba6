// The vpx-dump command displays the records of a stream of a VPX file.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/cfb"
)

const usage = `usage: vpx-dump [-s STREAM] [INPUT] [OUTPUT]

Reads a VPX file from INPUT, and writes to OUTPUT a readable representation of
the records of STREAM, such as "GameStg/GameItem0". If STREAM is not given,
the path and size of every stream is written instead.

Game item streams start with the item type, which is written before the
records. Streams that are not made of records, such as sounds and table
info, are written as hex.

INPUT and OUTPUT are paths to files. If INPUT is "-" or unspecified, then stdin
is used. If OUTPUT is "-" or unspecified, then stdout is used. Errors are
written to stderr.
`

func dumpStream(w io.Writer, path string, data []byte) error {
	bw := bufio.NewWriter(w)
	if strings.HasPrefix(path, "GameStg/GameItem") && len(data) >= 4 {
		fmt.Fprintf(bw, "Type: % 02X\n", data[:4])
		data = data[4:]
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if _, err := biff.ReadRecords(data); err != nil {
		fmt.Fprintf(w, "not a record stream (%s), %d bytes\n", err, len(data))
		return nil
	}
	return biff.Dump(w, data)
}

func main() {
	var input io.Reader = os.Stdin
	var output io.Writer = os.Stdout

	var stream string
	flag.StringVar(&stream, "s", "", "path of the stream to dump")
	flag.Usage = func() { fmt.Fprintf(flag.CommandLine.Output(), usage) }
	flag.Parse()
	args := flag.Args()
	if len(args) >= 1 && args[0] != "-" {
		in, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("open input: %w", err))
			return
		}
		input = in
		defer in.Close()
	}
	if len(args) >= 2 && args[1] != "-" {
		out, err := os.Create(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("create output: %w", err))
			return
		}
		defer out.Close()
		output = out
	}

	b, err := io.ReadAll(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("read input: %w", err))
		return
	}
	c, err := cfb.Read(bytes.NewReader(b))
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("read input: %w", err))
		return
	}

	if stream == "" {
		for _, path := range c.Paths() {
			data, _ := c.Stream(path)
			fmt.Fprintf(output, "%-40s %d\n", path, len(data))
		}
		return
	}
	data, err := c.Stream(stream)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if err := dumpStream(output, stream, data); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("write error: %w", err))
	}
}
