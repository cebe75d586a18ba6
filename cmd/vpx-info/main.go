// The vpx-info command displays metadata and stats for a VPX file.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/francisdb/vpxtool"
	"github.com/francisdb/vpxtool/cfb"
)

const usage = `usage: vpx-info [INPUT] [OUTPUT]

Reads a VPX file from INPUT, and writes to OUTPUT the table metadata and
statistics for the file, as JSON.

INPUT and OUTPUT are paths to files. If INPUT is "-" or unspecified, then stdin
is used. If OUTPUT is "-" or unspecified, then stdout is used. Warnings and
errors are written to stderr.
`

type AssetLen struct {
	Kind   vpxtool.AssetKind
	Name   string
	Length int
}

func (a AssetLen) String() string {
	return fmt.Sprintf("%s:%s(%d)", a.Kind, a.Name, a.Length)
}

type AssetLenList []AssetLen

func (p AssetLenList) MarshalJSON() ([]byte, error) {
	list := append([]AssetLen{}, p...)
	sort.Slice(list, func(i, j int) bool {
		return list[i].Length > list[j].Length
	})
	if len(list) > 20 {
		list = list[:20]
	}
	return json.Marshal(list)
}

type Stats struct {
	Info json.RawMessage

	// Number of game items overall.
	ItemCount int

	// Number of game items per type.
	TypeCount map[string]int

	ImageCount      int
	SoundCount      int
	FontCount       int
	CollectionCount int

	// Size of the script in bytes.
	ScriptLength int

	// Assets whose data also appears in an earlier asset.
	Duplicates []string `json:",omitempty"`

	LargestAssets AssetLenList `json:",omitempty"`

	// Streams that are not decoded.
	ExtraStreams []string `json:",omitempty"`
}

func (s *Stats) Fill(t *vpxtool.Table) error {
	if t == nil {
		return nil
	}
	info, err := t.InfoJSON()
	if err != nil {
		return err
	}
	s.Info = info

	s.ItemCount = len(t.Items)
	s.TypeCount = map[string]int{}
	for _, item := range t.Items {
		s.TypeCount[item.Type().String()]++
	}
	s.ImageCount = len(t.Images)
	s.SoundCount = len(t.Sounds)
	s.FontCount = len(t.Fonts)
	s.CollectionCount = len(t.Collections)
	if script, err := t.GameData.Script(); err == nil {
		s.ScriptLength = len(script.Text)
	}

	assets, err := t.Assets()
	if err != nil {
		return err
	}
	for _, a := range assets {
		s.LargestAssets = append(s.LargestAssets, AssetLen{Kind: a.Kind, Name: a.Name, Length: a.Size})
		if a.DuplicateOf >= 0 {
			first := assets[a.DuplicateOf]
			s.Duplicates = append(s.Duplicates, fmt.Sprintf("%s %q = %s %q", a.Kind, a.Name, first.Kind, first.Name))
		}
	}
	for path := range t.Extra {
		s.ExtraStreams = append(s.ExtraStreams, path)
	}
	sort.Strings(s.ExtraStreams)
	return nil
}

func main() {
	var input io.Reader = os.Stdin
	var output io.Writer = os.Stdout

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
		defer func() {
			err := out.Sync()
			if err != nil {
				fmt.Fprintln(os.Stderr, fmt.Errorf("sync output: %w", err))
				return
			}
		}()
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
	table, warn, err := vpxtool.Decoder{Parallel: true}.Decode(c)
	if warn != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("decode warning: %w", warn))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("decode error: %w", err))
		return
	}

	var stats Stats
	if err := stats.Fill(table); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("stats error: %w", err))
		return
	}

	je := json.NewEncoder(output)
	je.SetEscapeHTML(false)
	je.SetIndent("", "\t")
	if err := je.Encode(stats); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("write error: %w", err))
	}
}
