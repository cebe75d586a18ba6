package biff

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Dump writes to w a readable representation of the records in data. Records
// are listed flat; the records of nested sub-streams follow the tag that
// opened them. When data could not be fully parsed, the records up to the
// failure are written followed by the error, which is also returned.
func Dump(w io.Writer, data []byte) error {
	records, err := ReadRecords(data)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Records: (count:%d) {", len(records))
	indent := 1
	for i, rec := range records {
		if rec.Tag == EndTag && indent > 1 {
			indent--
		}
		dumpRecord(bw, indent, i, rec)
		if len(rec.Data) == 0 && rec.Tag != EndTag && i+1 < len(records) && isSubStreamTag(rec.Tag) {
			indent++
		}
	}
	if err != nil {
		dumpNewline(bw, 1)
		fmt.Fprintf(bw, "Error: %s", err)
	}
	fmt.Fprint(bw, "\n}\n")
	if ferr := bw.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

// SubStreamTags lists the tags known to open a nested sub-stream. It only
// affects the indentation of Dump.
var SubStreamTags = map[string]bool{
	"DPNT": true,
	"JPEG": true,
}

func isSubStreamTag(tag string) bool {
	return SubStreamTags[tag]
}

func dumpRecord(w *bufio.Writer, indent, i int, rec Record) {
	dumpNewline(w, indent)
	fmt.Fprintf(w, "#%d: ", i)
	dumpTag(w, rec.Tag)
	switch {
	case len(rec.Data) == 0:
	case len(rec.Data) == 4:
		w.WriteString(" ")
		fmt.Fprintf(w, "(% 02X)", rec.Data)
	default:
		w.WriteString(" ")
		if !dumpText(w, rec.Data) {
			dumpBytes(w, indent, rec.Data)
		}
	}
}

func dumpNewline(w *bufio.Writer, indent int) {
	w.WriteByte('\n')
	for i := 0; i < indent; i++ {
		w.WriteByte('\t')
	}
}

func dumpTag(w *bufio.Writer, tag string) {
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		if c < utf8.RuneSelf && unicode.IsPrint(rune(c)) {
			w.WriteByte(c)
		} else {
			w.WriteByte('.')
		}
	}
}

// dumpText writes payloads that look like a length-prefixed string.
func dumpText(w *bufio.Writer, b []byte) bool {
	if len(b) < 4 {
		return false
	}
	n := int(b[0]) | int(b[1])<<8 | int(b[2])<<16 | int(b[3])<<24
	if n != len(b)-4 {
		return false
	}
	s := DecodeString(b[4:]).Text
	for _, r := range s {
		if !unicode.IsGraphic(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	fmt.Fprintf(w, "(len:%d) ", n)
	w.WriteString(strconv.Quote(s))
	return true
}

func dumpBytes(w *bufio.Writer, indent int, b []byte) {
	fmt.Fprintf(w, "(len:%d)", len(b))
	const width = 16
	for j := 0; j < len(b); j += width {
		dumpNewline(w, indent+1)
		w.WriteString("| ")
		for i := j; i < j+width; {
			if i < len(b) {
				s := strconv.FormatUint(uint64(b[i]), 16)
				if len(s) == 1 {
					w.WriteString("0")
				}
				w.WriteString(s)
			} else if len(b) < width {
				break
			} else {
				w.WriteString("  ")
			}
			i++
			if i%8 == 0 && i < j+width {
				w.WriteString("  ")
			} else {
				w.WriteString(" ")
			}
		}
		w.WriteString("|")
		n := len(b)
		if j+width < n {
			n = j + width
		}
		for i := j; i < n; i++ {
			if 32 <= b[i] && b[i] <= 126 {
				w.WriteRune(rune(b[i]))
			} else {
				w.WriteByte('.')
			}
		}
		w.WriteByte('|')
	}
}
