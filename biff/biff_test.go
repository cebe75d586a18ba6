package biff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"
)

// app concatenates strings, byte slices and single bytes into one slice.
func app(bs ...interface{}) []byte {
	var s []byte
	for _, b := range bs {
		switch b := b.(type) {
		case string:
			s = append(s, b...)
		case []byte:
			s = append(s, b...)
		case byte:
			s = append(s, b)
		case int:
			s = append(s, byte(b))
		}
	}
	return s
}

func u32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func f32(v float32) []byte {
	return u32(math.Float32bits(v))
}

// rec builds an ordinary record.
func rec(tag string, payload ...interface{}) []byte {
	p := app(payload...)
	return app(u32(uint32(len(p)+4)), tag, p)
}

func endb() []byte {
	return rec(EndTag)
}

func TestNextOrdinaryRecord(t *testing.T) {
	data := app(u32(8), "WDTH", u32(640))
	r := NewReader(data)
	if !r.Next() {
		t.Fatalf("expected record, got error %v", r.Err())
	}
	if r.Tag() != "WDTH" {
		t.Errorf("expected tag WDTH, got %q", r.Tag())
	}
	if r.Remaining() != 4 {
		t.Errorf("expected 4 remaining bytes, got %d", r.Remaining())
	}
	payload, err := r.Rest()
	if err != nil || !bytes.Equal(payload, u32(640)) {
		t.Errorf("unexpected payload % X (%v)", payload, err)
	}
	if r.Next() {
		t.Errorf("expected end of stream")
	}
	if !r.EOF() || r.Err() != nil {
		t.Errorf("expected clean EOF, got %v", r.Err())
	}
}

func TestNextCodeRecord(t *testing.T) {
	script := "Sub Foo()\nEnd Sub"
	// The leading length of CODE covers only the tag; the payload length
	// follows the tag.
	data := app(u32(4), "CODE", u32(uint32(len(script))), script, endb())
	r := NewReader(data)
	if !r.Next() {
		t.Fatalf("expected record, got error %v", r.Err())
	}
	if r.Tag() != CodeTag || r.Remaining() != len(script) {
		t.Fatalf("expected CODE with %d bytes, got %q with %d", len(script), r.Tag(), r.Remaining())
	}
	payload, err := r.Rest()
	if err != nil || string(payload) != script {
		t.Errorf("unexpected payload %q (%v)", payload, err)
	}
	if r.Next() || !r.Ended() {
		t.Errorf("expected ENDB to end the stream")
	}

	w := NewWriter()
	w.Record(CodeTag, []byte(script))
	b, err := w.Close(true)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, data) {
		t.Errorf("CODE record encoding mismatch:\n% X\n% X", b, data)
	}
}

func TestNextSkipsUnreadPayload(t *testing.T) {
	data := app(rec("PADD", u32(1), u32(2), u32(3)), rec("HGHT", f32(2.5)))
	r := NewReader(data)
	r.Next()
	if _, err := r.U32(); err != nil {
		t.Fatal(err)
	}
	if !r.Next() {
		t.Fatalf("expected second record, got error %v", r.Err())
	}
	if v, err := r.F32(); err != nil || v != 2.5 {
		t.Errorf("expected 2.5, got %v (%v)", v, err)
	}
}

func TestMalformedAndTruncated(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want error
	}{
		{"length underflow", app(u32(3), "ABCD"), ErrMalformedRecord},
		{"short header", app(u32(8), "AB"), ErrTruncatedRecord},
		{"payload past end", app(u32(12), "WDTH", u32(1)), ErrTruncatedRecord},
		{"code length past end", app(u32(4), "CODE", u32(100), "x"), ErrTruncatedRecord},
	}
	for _, c := range cases {
		r := NewReader(c.data)
		if r.Next() {
			t.Errorf("%s: expected failure", c.name)
			continue
		}
		if !errors.Is(r.Err(), c.want) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, r.Err())
		}
	}

	r := NewReader(rec("WDTH", u32(1)))
	r.Next()
	r.U32()
	if _, err := r.U32(); !errors.Is(err, ErrTruncatedRecord) {
		t.Errorf("expected read past record to fail, got %v", err)
	}
	var re RecordError
	if !errors.As(r.Err(), &re) || re.Tag != "WDTH" {
		t.Errorf("expected RecordError for WDTH, got %#v", r.Err())
	}
}

func TestStrings(t *testing.T) {
	// "café" in Windows-1252 is not valid UTF-8.
	latin := []byte{'c', 'a', 'f', 0xE9}
	data := app(rec("NAME", u32(4), latin), rec("UTF8", u32(5), "café"))
	r := NewReader(data)
	r.Next()
	s, err := r.String()
	if err != nil {
		t.Fatal(err)
	}
	if s.Text != "café" || s.Encoding != Latin1 {
		t.Errorf("unexpected latin string %#v", s)
	}
	r.Next()
	u, err := r.String()
	if err != nil {
		t.Fatal(err)
	}
	if u.Text != "café" || u.Encoding != UTF8 {
		t.Errorf("unexpected utf8 string %#v", u)
	}

	w := NewWriter()
	w.String("NAME", s)
	w.String("UTF8", u)
	b, err := w.Close(false)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, data) {
		t.Errorf("strings did not keep their encoding:\n% X\n% X", b, data)
	}

	w = NewWriter()
	w.String("NAME", String{Text: "中", Encoding: Latin1})
	if _, err := w.Close(false); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("expected ErrUnsupportedEncoding, got %v", err)
	}
}

func TestLatin1UnassignedBytes(t *testing.T) {
	// Bytes that Windows-1252 leaves unassigned survive a round trip.
	raw := []byte{0x81, 0x8D, 0x8F, 0x90, 0x9D, 0xE9}
	s := DecodeString(raw)
	if s.Encoding != Latin1 || s.Text != "\u0081\u008D\u008F\u0090\u009Dé" {
		t.Errorf("unexpected decoding %#v", s)
	}
	b, err := EncodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, raw) {
		t.Errorf("expected % X, got % X", raw, b)
	}
	if _, err := EncodeString(String{Text: "\u0080", Encoding: Latin1}); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("expected U+0080 to be rejected, got %v", err)
	}
}

func TestWideStrings(t *testing.T) {
	wide := []byte{'W', 0, 'a', 0, 'l', 0, 'l', 0, 0x3D, 0xD8, 0x00, 0xDE} // "Wall😀"
	data := rec("NAME", u32(uint32(len(wide))), wide)
	r := NewReader(data)
	r.Next()
	s, err := r.WideString()
	if err != nil {
		t.Fatal(err)
	}
	if s != "Wall\U0001F600" {
		t.Errorf("unexpected wide string %q", s)
	}
	w := NewWriter()
	w.WideString("NAME", s)
	if b, _ := w.Close(false); !bytes.Equal(b, data) {
		t.Errorf("wide string mismatch:\n% X\n% X", b, data)
	}

	bad := [][]byte{
		{'a', 0, 0x3D, 0xD8},       // high surrogate at end
		{0x00, 0xDE, 'a', 0},       // lone low surrogate
		{0x3D, 0xD8, 'a', 0, 0, 0}, // high surrogate followed by non-surrogate
		{'a', 0, 'b'},              // odd length
	}
	for _, b := range bad {
		r := NewReader(rec("NAME", u32(uint32(len(b))), b))
		r.Next()
		if _, err := r.WideString(); !errors.Is(err, ErrUnsupportedEncoding) {
			t.Errorf("% X: expected ErrUnsupportedEncoding, got %v", b, err)
		}
	}
}

func TestChildScope(t *testing.T) {
	point := func(x, y float32) []byte {
		return app(rec("VCEN", f32(x), f32(y), f32(0)), rec("SMTH", u32(1)), endb())
	}
	after := rec("WDTH", u32(7))
	data := app(
		rec("DPNT"), point(1, 2),
		rec("DPNT"), point(3, 4),
		rec("DPNT"), point(5, 6),
		after,
		endb(),
	)

	r := NewReader(data)
	var xs []float32
	for r.Next() {
		if r.Tag() != "DPNT" {
			break
		}
		c := r.Child()
		for c.Next() {
			if c.Tag() == "VCEN" {
				x, _ := c.F32()
				xs = append(xs, x)
			}
		}
		if c.Err() != nil || !c.Ended() {
			t.Fatalf("child did not end cleanly: %v", c.Err())
		}
		if err := r.Consume(c.Pos()); err != nil {
			t.Fatal(err)
		}
		if r.Remaining() != 0 {
			t.Errorf("expected no remaining payload after child, got %d", r.Remaining())
		}
	}
	if len(xs) != 3 || xs[0] != 1 || xs[1] != 3 || xs[2] != 5 {
		t.Errorf("unexpected points %v", xs)
	}
	if r.Tag() != "WDTH" {
		t.Fatalf("expected WDTH after the points, got %q", r.Tag())
	}
	// The cursor sits after the WDTH header; everything after the nested
	// block is the WDTH payload plus ENDB.
	if got, want := r.Len()+8, len(after)+len(endb()); got != want {
		t.Errorf("expected %d bytes after the nested block, got %d", want, got)
	}
}

type sample struct {
	width  uint32
	height float32
	name   String
	layer  *String
	items  []string
	layout Layout
}

func (s *sample) fields() []Field {
	return []Field{
		U32("WDTH", &s.width),
		F32("HGHT", &s.height),
		Str("NAME", &s.name),
		Repeated("ITEM", &s.items, (*Reader).WideString, (*Writer).WideString),
		Optional("LANR", &s.layer, Str),
	}
}

func TestFieldsDefaultsAndUnknown(t *testing.T) {
	s := &sample{width: 10, height: 20}
	r := NewReader(nil)
	if err := DecodeFields(r, s.fields(), &s.layout); err != nil {
		t.Fatal(err)
	}
	if s.width != 10 || s.height != 20 || len(s.layout.Unknown) != 0 || s.layer != nil {
		t.Errorf("empty input should keep defaults, got %#v", s)
	}

	wide, _ := EncodeWide("a")
	data := app(
		rec("XXXX", "lead"),
		rec("WDTH", u32(3)),
		rec("ZZZZ", u32(0xDEADBEEF)),
		rec("YYYY"),
		rec("ITEM", u32(2), wide),
		rec("ITEM", u32(2), wide),
		rec("HGHT", f32(1.5)),
		endb(),
	)
	s = &sample{width: 10, height: 20}
	r = NewReader(data)
	if err := DecodeFields(r, s.fields(), &s.layout); err != nil {
		t.Fatal(err)
	}
	if s.width != 3 || s.height != 1.5 || len(s.items) != 2 {
		t.Errorf("known fields lost: %#v", s)
	}
	want := []Unknown{
		{After: "", Tag: "XXXX", Data: []byte("lead")},
		{After: "WDTH", Tag: "ZZZZ", Data: u32(0xDEADBEEF)},
		{After: "WDTH", Tag: "YYYY", Data: []byte{}},
	}
	if len(s.layout.Unknown) != len(want) {
		t.Fatalf("expected %d unknown records, got %d", len(want), len(s.layout.Unknown))
	}
	for i, u := range want {
		got := s.layout.Unknown[i]
		if got.After != u.After || got.Tag != u.Tag || !bytes.Equal(got.Data, u.Data) {
			t.Errorf("unknown %d: expected %#v, got %#v", i, u, got)
		}
	}
	warns := r.Warnings()
	if warns == nil || !strings.Contains(warns.Error(), `"ZZZZ"`) {
		t.Errorf("expected unknown tag warnings, got %v", warns)
	}

	// NAME was absent and unchanged, so it stays absent.
	w := NewWriter()
	EncodeFields(w, s.fields(), s.layout)
	b, err := w.Close(true)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, data) {
		t.Errorf("encode mismatch:\n% X\n% X", b, data)
	}
}

func TestFieldsTableOrder(t *testing.T) {
	wide, _ := EncodeWide("a")
	s := &sample{width: 3, items: []string{"a"}}
	s.layout.Unknown = []Unknown{
		{Tag: "XXXX", Data: []byte("lead")},
		{After: "WDTH", Tag: "ZZZZ"},
		{After: "LANR", Tag: "YYYY"},
	}
	w := NewWriter()
	EncodeFields(w, s.fields(), s.layout)
	b, err := w.Close(true)
	if err != nil {
		t.Fatal(err)
	}
	// Without a decoded layout every field is written, in table order, and
	// unknown records whose field was not written go last.
	expect := app(
		rec("XXXX", "lead"),
		rec("WDTH", u32(3)),
		rec("ZZZZ"),
		rec("HGHT", f32(0)),
		rec("NAME", u32(0)),
		rec("ITEM", u32(2), wide),
		rec("YYYY"),
		endb(),
	)
	if !bytes.Equal(b, expect) {
		t.Errorf("encode mismatch:\n% X\n% X", b, expect)
	}
}

func TestFieldsReplayRepeated(t *testing.T) {
	a, _ := EncodeWide("a")
	c, _ := EncodeWide("c")
	data := app(
		rec("ITEM", u32(2), a),
		rec("XXXX", "mid"),
		rec("ITEM", u32(2), a),
		rec("HGHT", f32(2)),
		endb(),
	)
	s := &sample{}
	if err := DecodeFields(NewReader(data), s.fields(), &s.layout); err != nil {
		t.Fatal(err)
	}
	w := NewWriter()
	EncodeFields(w, s.fields(), s.layout)
	if b, _ := w.Close(true); !bytes.Equal(b, data) {
		t.Errorf("unknown record between repeated records moved:\n% X\n% X", b, data)
	}

	// Added values follow the last one read; removed values are dropped.
	s.items = append(s.items, "c")
	w = NewWriter()
	EncodeFields(w, s.fields(), s.layout)
	expect := app(
		rec("ITEM", u32(2), a),
		rec("XXXX", "mid"),
		rec("ITEM", u32(2), a),
		rec("ITEM", u32(2), c),
		rec("HGHT", f32(2)),
		endb(),
	)
	if b, _ := w.Close(true); !bytes.Equal(b, expect) {
		t.Errorf("added value misplaced:\n% X\n% X", b, expect)
	}
	s.items = s.items[:1]
	w = NewWriter()
	EncodeFields(w, s.fields(), s.layout)
	expect = app(
		rec("ITEM", u32(2), a),
		rec("XXXX", "mid"),
		rec("HGHT", f32(2)),
		endb(),
	)
	if b, _ := w.Close(true); !bytes.Equal(b, expect) {
		t.Errorf("removed value still written:\n% X\n% X", b, expect)
	}
}

func TestFieldsDuplicate(t *testing.T) {
	data := app(rec("WDTH", u32(5)), rec("HGHT", f32(1)), rec("WDTH", u32(9)), endb())
	s := &sample{}
	r := NewReader(data)
	if err := DecodeFields(r, s.fields(), &s.layout); err != nil {
		t.Fatal(err)
	}
	if s.width != 5 {
		t.Errorf("expected the first value, got %d", s.width)
	}
	var dup DuplicateTagWarning
	if !errors.As(r.Warnings(), &dup) || dup.Tag != "WDTH" || dup.Offset != 24 {
		t.Errorf("expected duplicate tag warning, got %v", r.Warnings())
	}
	w := NewWriter()
	EncodeFields(w, s.fields(), s.layout)
	if b, _ := w.Close(true); !bytes.Equal(b, data) {
		t.Errorf("duplicate record lost:\n% X\n% X", b, data)
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	data := app(
		u32(4), "CODE", u32(3), "abc",
		rec("DPNT"),
		rec("VCEN", f32(1), f32(2), f32(3)),
		endb(),
		rec("NAME", u32(1), "x"),
		endb(),
	)
	records, err := ReadRecords(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 6 {
		t.Fatalf("expected 6 records, got %d", len(records))
	}
	if found := FindRecords(records, CodeTag); len(found) != 1 || string(found[0].Data) != "abc" {
		t.Errorf("unexpected CODE records %v", found)
	}
	w := NewWriter()
	WriteRecords(w, records)
	b, err := w.Close(false)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, data) {
		t.Errorf("records did not round trip:\n% X\n% X", b, data)
	}

	var buf bytes.Buffer
	if err := Dump(&buf, data); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "NAME (len:1) \"x\"") {
		t.Errorf("unexpected dump:\n%s", buf.String())
	}
}

func TestWriterRejectsBadTag(t *testing.T) {
	w := NewWriter()
	w.U32("TOOLONG", 1)
	if _, err := w.Close(false); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
}
