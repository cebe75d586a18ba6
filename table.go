// The vpxtool package handles the decoding, encoding, and manipulation of
// Visual Pinball X table files.
//
// A VPX file is an OLE compound file. Most of its streams hold BIFF records:
// sequences of tagged, length-prefixed fields. A Table holds the decoded
// streams of one file: the game data with the table script, every game item,
// the image, sound and font assets, collections, and the table metadata.
// Streams that are not interpreted are kept in Table.Extra, so that reading a
// file and writing it back reproduces it.
//
// The GameStg/MAC stream holds a hash over the other streams. It is one of the
// streams kept in Table.Extra and is never recomputed, so a table written
// after its contents were changed carries a stale MAC.
//
// The biff sub-package implements the record layer, the gameitem sub-package
// the per-item decoders, and the cfb sub-package the compound file container.
package vpxtool

import (
	"fmt"
	"sync"

	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/cfb"
	"github.com/francisdb/vpxtool/errors"
	"github.com/francisdb/vpxtool/gameitem"
)

// Stream paths within a table file.
const (
	storageGame      = "GameStg"
	storageInfo      = "TableInfo"
	pathVersion      = storageGame + "/Version"
	pathGameData     = storageGame + "/GameData"
	pathCustomInfo   = storageGame + "/CustomInfoTags"
	prefixGameItem   = storageGame + "/GameItem"
	prefixImage      = storageGame + "/Image"
	prefixSound      = storageGame + "/Sound"
	prefixFont       = storageGame + "/Font"
	prefixCollection = storageGame + "/Collection"
)

// Table is a decoded table file.
type Table struct {
	// Version is the file format version, such as 1072 for 10.7.2.
	Version Version

	// Info holds the table metadata from the TableInfo storage.
	Info Info

	// CustomInfoTags lists the names of user defined metadata keys, whose
	// values are in Info.Properties. Nil if the file has no such stream.
	CustomInfoTags *CustomInfoTags

	// GameData holds the table-wide records, including the script.
	GameData GameData

	Items       []gameitem.Item
	Images      []Image
	Sounds      []Sound
	Fonts       []Font
	Collections []Collection

	// Extra holds streams that are not decoded, by path. They are written
	// back unchanged.
	Extra map[string][]byte
}

// StreamError attaches the path of a stream to an error or a warning.
type StreamError struct {
	Path  string
	Cause error
}

func (err StreamError) Error() string {
	return fmt.Sprintf("stream %s: %s", err.Path, err.Cause)
}

func (err StreamError) Unwrap() error {
	return err.Cause
}

func streamWarnings(path string, warn error) error {
	return errors.Wrap(warn, func(e error) error {
		return StreamError{Path: path, Cause: e}
	})
}

////////////////////////////////////////////////////////////////

// Decoder decodes a compound file into a Table.
type Decoder struct {
	// Parallel decodes the streams of each asset list concurrently. Each
	// stream has its own cursor, so the result is the same either way.
	Parallel bool
}

// indexed returns the paths prefix0, prefix1, ... up to the first missing one.
func indexed(c *cfb.Container, prefix string) []string {
	var paths []string
	for i := 0; ; i++ {
		p := fmt.Sprintf("%s%d", prefix, i)
		if !c.Has(p) {
			return paths
		}
		paths = append(paths, p)
	}
}

// decodeAll decodes each stream in paths. Warnings and the first error, in
// path order, are attributed to their stream.
func decodeAll[T any](d Decoder, c *cfb.Container, paths []string, decode func(data []byte) (T, error, error)) ([]T, error, error) {
	values := make([]T, len(paths))
	warns := make([]error, len(paths))
	errs := make([]error, len(paths))
	run := func(i int) {
		data, err := c.Stream(paths[i])
		if err != nil {
			errs[i] = err
			return
		}
		values[i], warns[i], errs[i] = decode(data)
	}
	if d.Parallel {
		var wg sync.WaitGroup
		for i := range paths {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				run(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range paths {
			run(i)
			if errs[i] != nil {
				break
			}
		}
	}
	var warn errors.Errors
	for i, path := range paths {
		warn = warn.Append(streamWarnings(path, warns[i]))
		if errs[i] != nil {
			return nil, warn.Return(), StreamError{Path: path, Cause: errs[i]}
		}
	}
	return values, warn.Return(), nil
}

// Decode decodes the streams of c into a Table.
func (d Decoder) Decode(c *cfb.Container) (t *Table, warn, err error) {
	if c == nil {
		return nil, nil, errors.New("nil container")
	}
	t = &Table{Extra: map[string][]byte{}}
	used := map[string]bool{}
	stream := func(path string) ([]byte, bool) {
		b, err := c.Stream(path)
		if err != nil {
			return nil, false
		}
		used[path] = true
		return b, true
	}

	if b, ok := stream(pathVersion); ok {
		if t.Version, err = decodeVersion(b); err != nil {
			return nil, warn, StreamError{Path: pathVersion, Cause: err}
		}
	}

	b, ok := stream(pathGameData)
	if !ok {
		return nil, warn, StreamError{Path: pathGameData, Cause: cfb.ErrStreamNotFound}
	}
	if t.GameData, err = decodeGameData(b); err != nil {
		return nil, warn, StreamError{Path: pathGameData, Cause: err}
	}

	var w error
	t.Info, w = decodeInfo(c, used)
	warn = errors.Union(warn, w)

	if b, ok := stream(pathCustomInfo); ok {
		var tags CustomInfoTags
		if w, err = tags.decode(b); err != nil {
			return nil, warn, StreamError{Path: pathCustomInfo, Cause: err}
		}
		t.CustomInfoTags = &tags
		warn = errors.Union(warn, streamWarnings(pathCustomInfo, w))
	}

	paths := indexed(c, prefixGameItem)
	for _, p := range paths {
		used[p] = true
	}
	if t.Items, w, err = decodeAll(d, c, paths, gameitem.Read); err != nil {
		return nil, errors.Union(warn, w), err
	}
	warn = errors.Union(warn, w)
	if n, ok := t.GameData.Count(CountItems); ok && int(n) != len(paths) {
		warn = errors.Union(warn, CountWarning{Tag: CountItems, Declared: n, Found: len(paths)})
	}

	if err = decodeAssets(d, c, t, used, &warn); err != nil {
		return nil, warn, err
	}

	for _, p := range c.Paths() {
		if !used[p] {
			t.Extra[p], _ = c.Stream(p)
		}
	}
	return t, warn, nil
}

func decodeAssets(d Decoder, c *cfb.Container, t *Table, used map[string]bool, warn *error) (err error) {
	type list struct {
		prefix string
		count  string
		decode func(paths []string) (int, error, error)
	}
	lists := []list{
		{prefixImage, CountImages, func(paths []string) (n int, w, err error) {
			t.Images, w, err = decodeAll(d, c, paths, decodeImage)
			return len(t.Images), w, err
		}},
		{prefixSound, CountSounds, func(paths []string) (n int, w, err error) {
			t.Sounds, w, err = decodeAll(d, c, paths, decodeSound)
			return len(t.Sounds), w, err
		}},
		{prefixFont, CountFonts, func(paths []string) (n int, w, err error) {
			t.Fonts, w, err = decodeAll(d, c, paths, decodeFont)
			return len(t.Fonts), w, err
		}},
		{prefixCollection, CountCollections, func(paths []string) (n int, w, err error) {
			t.Collections, w, err = decodeAll(d, c, paths, decodeCollection)
			return len(t.Collections), w, err
		}},
	}
	for _, l := range lists {
		paths := indexed(c, l.prefix)
		for _, p := range paths {
			used[p] = true
		}
		n, w, err := l.decode(paths)
		*warn = errors.Union(*warn, w)
		if err != nil {
			return err
		}
		if declared, ok := t.GameData.Count(l.count); ok && int(declared) != n {
			*warn = errors.Union(*warn, CountWarning{Tag: l.count, Declared: declared, Found: n})
		}
	}
	return nil
}

// CountWarning indicates that a count in the game data does not match the
// number of streams found.
type CountWarning struct {
	Tag      string
	Declared uint32
	Found    int
}

func (w CountWarning) Error() string {
	return fmt.Sprintf("game data %s declares %d streams, found %d", w.Tag, w.Declared, w.Found)
}

////////////////////////////////////////////////////////////////

// Encoder encodes a Table into a compound file.
type Encoder struct{}

// Encode returns a container holding the streams of t. The counts in the game
// data are updated to match the lists of t; t itself is not modified.
func (e Encoder) Encode(t *Table) (*cfb.Container, error) {
	if t == nil {
		return nil, errors.New("nil table")
	}
	c := cfb.New()
	for path, b := range t.Extra {
		c.SetStream(path, b)
	}

	c.SetStream(pathVersion, encodeVersion(t.Version))
	if err := encodeInfo(c, t.Info); err != nil {
		return nil, err
	}
	if t.CustomInfoTags != nil {
		b, err := t.CustomInfoTags.encode()
		if err != nil {
			return nil, StreamError{Path: pathCustomInfo, Cause: err}
		}
		c.SetStream(pathCustomInfo, b)
	}

	gd := t.GameData.Clone()
	gd.SetCount(CountItems, uint32(len(t.Items)))
	gd.SetCount(CountSounds, uint32(len(t.Sounds)))
	gd.SetCount(CountImages, uint32(len(t.Images)))
	gd.SetCount(CountFonts, uint32(len(t.Fonts)))
	gd.SetCount(CountCollections, uint32(len(t.Collections)))
	b, err := gd.encode()
	if err != nil {
		return nil, StreamError{Path: pathGameData, Cause: err}
	}
	c.SetStream(pathGameData, b)

	put := func(prefix string, i int, b []byte, err error) error {
		path := fmt.Sprintf("%s%d", prefix, i)
		if err != nil {
			return StreamError{Path: path, Cause: err}
		}
		c.SetStream(path, b)
		return nil
	}
	for i, item := range t.Items {
		b, err := gameitem.Write(item)
		if err := put(prefixGameItem, i, b, err); err != nil {
			return nil, err
		}
	}
	for i, img := range t.Images {
		b, err := img.encode()
		if err := put(prefixImage, i, b, err); err != nil {
			return nil, err
		}
	}
	for i, snd := range t.Sounds {
		b, err := snd.encode()
		if err := put(prefixSound, i, b, err); err != nil {
			return nil, err
		}
	}
	for i, f := range t.Fonts {
		b, err := f.encode()
		if err := put(prefixFont, i, b, err); err != nil {
			return nil, err
		}
	}
	for i, col := range t.Collections {
		b, err := col.encode()
		if err := put(prefixCollection, i, b, err); err != nil {
			return nil, err
		}
	}
	return c, nil
}

////////////////////////////////////////////////////////////////

// ReadFile decodes the table file at path.
func ReadFile(path string) (t *Table, warn, err error) {
	c, err := cfb.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return Decoder{}.Decode(c)
}

// WriteFile encodes t and writes it to path. If encoding or writing fails, an
// existing file at path is left untouched.
func WriteFile(path string, t *Table) error {
	c, err := Encoder{}.Encode(t)
	if err != nil {
		return err
	}
	return c.Save(path)
}

// decodeRecords decodes a stream made of a single field list.
func decodeRecords(data []byte, fields []biff.Field, layout *biff.Layout) (warn, err error) {
	r := biff.NewReader(data)
	if err := biff.DecodeFields(r, fields, layout); err != nil {
		return r.Warnings(), err
	}
	return r.Warnings(), nil
}

func encodeRecords(fields []biff.Field, layout biff.Layout) ([]byte, error) {
	w := biff.NewWriter()
	biff.EncodeFields(w, fields, layout)
	return w.Close(true)
}
