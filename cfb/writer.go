package cfb

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf16"
)

const (
	sectorSize     = 512
	miniSectorSize = 64
	miniCutoff     = 4096
	dirEntrySize   = 128
	headerDIFAT    = 109
	fatPerSector   = sectorSize / 4

	endOfChain = 0xFFFFFFFE
	freeSect   = 0xFFFFFFFF
	fatSect    = 0xFFFFFFFD
	difSect    = 0xFFFFFFFC
	noStream   = 0xFFFFFFFF

	typeStorage = 1
	typeStream  = 2
	typeRoot    = 5
	colorRed    = 0
	colorBlack  = 1

	maxNameLen = 31
)

var signature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

type dirEntry struct {
	name     string
	typ      byte
	left     uint32
	right    uint32
	child    uint32
	start    uint32
	size     uint64
	color    byte
	depth    int
	data     []byte
	children []int
}

// compareNames orders sibling entries the way compound files require:
// shorter names first, then by upper-cased UTF-16 code units.
func compareNames(a, b string) int {
	ua, ub := utf16.Encode([]rune(strings.ToUpper(a))), utf16.Encode([]rune(strings.ToUpper(b)))
	if len(ua) != len(ub) {
		return len(ua) - len(ub)
	}
	for i := range ua {
		if ua[i] != ub[i] {
			return int(ua[i]) - int(ub[i])
		}
	}
	return 0
}

func (c *Container) entries() ([]*dirEntry, error) {
	root := &dirEntry{name: "Root Entry", typ: typeRoot}
	entries := []*dirEntry{root}
	dirs := map[string]int{"": 0}
	var dir func(path string) (int, error)
	dir = func(path string) (int, error) {
		if i, ok := dirs[path]; ok {
			if entries[i].typ == typeStream {
				return 0, fmt.Errorf("%s is both a stream and a storage", path)
			}
			return i, nil
		}
		parent, name := "", path
		if j := strings.LastIndexByte(path, '/'); j >= 0 {
			parent, name = path[:j], path[j+1:]
		}
		p, err := dir(parent)
		if err != nil {
			return 0, err
		}
		entries = append(entries, &dirEntry{name: name, typ: typeStorage})
		i := len(entries) - 1
		entries[p].children = append(entries[p].children, i)
		dirs[path] = i
		return i, nil
	}
	for _, path := range c.Paths() {
		parent, name := "", path
		if j := strings.LastIndexByte(path, '/'); j >= 0 {
			parent, name = path[:j], path[j+1:]
		}
		if _, ok := dirs[path]; ok {
			return nil, fmt.Errorf("%s is both a stream and a storage", path)
		}
		p, err := dir(parent)
		if err != nil {
			return nil, err
		}
		data := c.streams[path]
		entries = append(entries, &dirEntry{name: name, typ: typeStream, data: data, size: uint64(len(data))})
		i := len(entries) - 1
		entries[p].children = append(entries[p].children, i)
		dirs[path] = i
	}
	for _, e := range entries {
		if n := len(utf16.Encode([]rune(e.name))); n == 0 || n > maxNameLen {
			return nil, fmt.Errorf("invalid entry name %q", e.name)
		}
		e.left, e.right, e.child = noStream, noStream, noStream
	}
	for _, e := range entries {
		sort.Slice(e.children, func(i, j int) bool {
			return compareNames(entries[e.children[i]].name, entries[e.children[j]].name) < 0
		})
		e.child = balance(entries, e.children, 0)
		colorSiblings(entries, e.children)
	}
	return entries, nil
}

// balance links sorted siblings into a balanced binary tree and returns the
// index of its root. Every empty link of the tree is at one of two adjacent
// depths.
func balance(entries []*dirEntry, sorted []int, depth int) uint32 {
	if len(sorted) == 0 {
		return noStream
	}
	mid := len(sorted) / 2
	e := entries[sorted[mid]]
	e.depth = depth
	e.left = balance(entries, sorted[:mid], depth+1)
	e.right = balance(entries, sorted[mid+1:], depth+1)
	return uint32(sorted[mid])
}

// colorSiblings colors a tree built by balance so that it is a valid
// red-black tree: the nodes of an incomplete bottom level are red, and all
// others are black.
func colorSiblings(entries []*dirEntry, siblings []int) {
	bottom, count := 0, 0
	for _, i := range siblings {
		switch d := entries[i].depth; {
		case d > bottom:
			bottom, count = d, 1
		case d == bottom:
			count++
		}
	}
	full := bottom == 0 || count == 1<<bottom
	for _, i := range siblings {
		e := entries[i]
		e.color = colorBlack
		if !full && e.depth == bottom {
			e.color = colorRed
		}
	}
}

func sectorsFor(n, size int) int {
	return (n + size - 1) / size
}

func pad(b []byte, size int) []byte {
	if r := len(b) % size; r != 0 {
		b = append(b, make([]byte, size-r)...)
	}
	return b
}

// WriteTo encodes the container as a compound file.
func (c *Container) WriteTo(w io.Writer) (n int64, err error) {
	entries, err := c.entries()
	if err != nil {
		return 0, err
	}

	var fat, miniFAT []uint32
	var body []byte

	chain := func(table *[]uint32, count int) uint32 {
		start := uint32(len(*table))
		for i := 0; i < count; i++ {
			next := uint32(len(*table) + 1)
			if i == count-1 {
				next = endOfChain
			}
			*table = append(*table, next)
		}
		return start
	}

	// Streams below the cutoff live in the mini stream.
	var mini []byte
	for _, e := range entries {
		if e.typ != typeStream {
			continue
		}
		switch {
		case len(e.data) == 0:
			e.start = endOfChain
		case len(e.data) < miniCutoff:
			e.start = chain(&miniFAT, sectorsFor(len(e.data), miniSectorSize))
			mini = append(mini, pad(append([]byte{}, e.data...), miniSectorSize)...)
		default:
			e.start = chain(&fat, sectorsFor(len(e.data), sectorSize))
			body = append(body, pad(append([]byte{}, e.data...), sectorSize)...)
		}
	}

	root := entries[0]
	root.start = endOfChain
	if len(mini) > 0 {
		root.size = uint64(len(mini))
		root.start = chain(&fat, sectorsFor(len(mini), sectorSize))
		body = append(body, pad(mini, sectorSize)...)
	}

	miniFATStart, miniFATCount := uint32(endOfChain), 0
	if len(miniFAT) > 0 {
		raw := make([]byte, 0, len(miniFAT)*4)
		for _, v := range miniFAT {
			raw = binary.LittleEndian.AppendUint32(raw, v)
		}
		raw = padWith(raw, sectorSize, freeSect)
		miniFATCount = len(raw) / sectorSize
		miniFATStart = chain(&fat, miniFATCount)
		body = append(body, raw...)
	}

	dir := make([]byte, 0, len(entries)*dirEntrySize)
	for _, e := range entries {
		dir = append(dir, e.encode()...)
	}
	for len(dir)%sectorSize != 0 {
		dir = append(dir, (&dirEntry{left: noStream, right: noStream, child: noStream}).encode()...)
	}
	dirStart := chain(&fat, len(dir)/sectorSize)
	body = append(body, dir...)

	// The FAT has to describe its own sectors and those of the DIFAT.
	dataSectors := len(fat)
	fatCount, difatCount := 0, 0
	for {
		total := dataSectors + fatCount + difatCount
		f := sectorsFor(total, fatPerSector)
		d := 0
		if f > headerDIFAT {
			d = sectorsFor(f-headerDIFAT, fatPerSector-1)
		}
		if f == fatCount && d == difatCount {
			break
		}
		fatCount, difatCount = f, d
	}
	fatSectors := make([]uint32, fatCount)
	for i := range fatSectors {
		fatSectors[i] = uint32(len(fat))
		fat = append(fat, fatSect)
	}
	difatSectors := make([]uint32, difatCount)
	for i := range difatSectors {
		difatSectors[i] = uint32(len(fat))
		fat = append(fat, difSect)
	}
	rawFAT := make([]byte, 0, fatCount*sectorSize)
	for _, v := range fat {
		rawFAT = binary.LittleEndian.AppendUint32(rawFAT, v)
	}
	rawFAT = padWith(rawFAT, sectorSize, freeSect)
	body = append(body, rawFAT...)

	var rawDIFAT []byte
	for i := 0; i < difatCount; i++ {
		for j := 0; j < fatPerSector-1; j++ {
			k := headerDIFAT + i*(fatPerSector-1) + j
			v := uint32(freeSect)
			if k < fatCount {
				v = fatSectors[k]
			}
			rawDIFAT = binary.LittleEndian.AppendUint32(rawDIFAT, v)
		}
		next := uint32(endOfChain)
		if i+1 < difatCount {
			next = difatSectors[i+1]
		}
		rawDIFAT = binary.LittleEndian.AppendUint32(rawDIFAT, next)
	}
	body = append(body, rawDIFAT...)

	header := make([]byte, sectorSize)
	copy(header, signature)
	le := binary.LittleEndian
	le.PutUint16(header[24:], 0x003E)
	le.PutUint16(header[26:], 3)
	le.PutUint16(header[28:], 0xFFFE)
	le.PutUint16(header[30:], 9)
	le.PutUint16(header[32:], 6)
	le.PutUint32(header[44:], uint32(fatCount))
	le.PutUint32(header[48:], dirStart)
	le.PutUint32(header[56:], miniCutoff)
	le.PutUint32(header[60:], miniFATStart)
	le.PutUint32(header[64:], uint32(miniFATCount))
	firstDIFAT := uint32(endOfChain)
	if difatCount > 0 {
		firstDIFAT = difatSectors[0]
	}
	le.PutUint32(header[68:], firstDIFAT)
	le.PutUint32(header[72:], uint32(difatCount))
	for i := 0; i < headerDIFAT; i++ {
		v := uint32(freeSect)
		if i < fatCount {
			v = fatSectors[i]
		}
		le.PutUint32(header[76+i*4:], v)
	}

	m, err := w.Write(header)
	n += int64(m)
	if err != nil {
		return n, err
	}
	m, err = w.Write(body)
	n += int64(m)
	return n, err
}

func padWith(b []byte, size int, fill uint32) []byte {
	for len(b)%size != 0 {
		b = binary.LittleEndian.AppendUint32(b, fill)
	}
	return b
}

func (e *dirEntry) encode() []byte {
	b := make([]byte, dirEntrySize)
	le := binary.LittleEndian
	if e.name != "" {
		name := utf16.Encode([]rune(e.name))
		for i, u := range name {
			le.PutUint16(b[i*2:], u)
		}
		le.PutUint16(b[64:], uint16((len(name)+1)*2))
	}
	b[66] = e.typ
	if e.typ == typeRoot {
		b[67] = colorBlack
	} else {
		b[67] = e.color
	}
	le.PutUint32(b[68:], e.left)
	le.PutUint32(b[72:], e.right)
	le.PutUint32(b[76:], e.child)
	le.PutUint32(b[116:], e.start)
	le.PutUint64(b[120:], e.size)
	return b
}
