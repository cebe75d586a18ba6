// Package cfb adapts OLE compound files to a flat set of named byte streams.
//
// A Container holds every stream of a compound file in memory, addressed by
// its slash separated path, such as "GameStg/GameData". Storages are implied
// by the paths of the streams they contain. Reading is done with the mscfb
// package; writing produces a version 3 compound file with 512 byte sectors.
package cfb

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/richardlehane/mscfb"
)

var ErrStreamNotFound = errors.New("stream not found")

// Container is an in-memory set of compound file streams.
type Container struct {
	streams map[string][]byte
}

// New returns an empty container.
func New() *Container {
	return &Container{streams: map[string][]byte{}}
}

func clean(path string) string {
	return strings.Trim(path, "/")
}

// Stream returns the content of the stream at path.
func (c *Container) Stream(path string) ([]byte, error) {
	b, ok := c.streams[clean(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStreamNotFound, clean(path))
	}
	return b, nil
}

// Has returns whether a stream exists at path.
func (c *Container) Has(path string) bool {
	_, ok := c.streams[clean(path)]
	return ok
}

// SetStream creates or replaces the stream at path.
func (c *Container) SetStream(path string, data []byte) {
	c.streams[clean(path)] = data
}

// Remove deletes the stream at path, if present.
func (c *Container) Remove(path string) {
	delete(c.streams, clean(path))
}

// Paths returns the paths of all streams, sorted.
func (c *Container) Paths() []string {
	paths := make([]string, 0, len(c.streams))
	for p := range c.streams {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// List returns the names of the streams directly inside the storage at dir.
func (c *Container) List(dir string) []string {
	prefix := clean(dir) + "/"
	var names []string
	for _, p := range c.Paths() {
		if rest := strings.TrimPrefix(p, prefix); rest != p && !strings.Contains(rest, "/") {
			names = append(names, rest)
		}
	}
	return names
}

// Read decodes a compound file.
func Read(r io.ReaderAt) (*Container, error) {
	doc, err := mscfb.New(r)
	if err != nil {
		return nil, fmt.Errorf("open compound file: %w", err)
	}
	c := New()
	for entry, err := doc.Next(); err != io.EOF; entry, err = doc.Next() {
		if err != nil {
			return nil, fmt.Errorf("read compound file: %w", err)
		}
		if entry.FileInfo().IsDir() {
			continue
		}
		data := make([]byte, entry.Size)
		if _, err := io.ReadFull(entry, data); err != nil {
			return nil, fmt.Errorf("read stream %s: %w", entry.Name, err)
		}
		path := strings.Join(append(append([]string{}, entry.Path...), entry.Name), "/")
		c.SetStream(path, data)
	}
	return c, nil
}

// Open reads the compound file at path.
func Open(path string) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Bytes encodes the container as a compound file.
func (c *Container) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the container to path. The file is first written next to path
// and then renamed over it, so path is left untouched if writing fails.
func (c *Container) Save(path string) (err error) {
	b, err := c.Bytes()
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(b); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
