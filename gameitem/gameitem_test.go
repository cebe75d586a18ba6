package gameitem

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"reflect"
	"testing"
	"unicode/utf16"

	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

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

func wide(s string) []byte {
	var b []byte
	for _, u := range utf16.Encode([]rune(s)) {
		b = append(b, byte(u), byte(u>>8))
	}
	return app(u32(uint32(len(b))), b)
}

func rec(tag string, payload ...interface{}) []byte {
	p := app(payload...)
	return app(u32(uint32(len(p)+4)), tag, p)
}

func endb() []byte {
	return rec(biff.EndTag)
}

// dpnt builds a drag point sub-stream.
func dpnt(records ...interface{}) []byte {
	return app(u32(4), "DPNT", app(records...), endb())
}

var layoutType = reflect.TypeOf(biff.Layout{})

// clearLayouts zeroes every layout reachable from v, so that a decoded value
// can be compared with one built by hand.
func clearLayouts(v reflect.Value) {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if !v.IsNil() {
			clearLayouts(v.Elem())
		}
	case reflect.Struct:
		if v.Type() == layoutType {
			if v.CanSet() {
				v.Set(reflect.Zero(layoutType))
			}
			return
		}
		for i := 0; i < v.NumField(); i++ {
			clearLayouts(v.Field(i))
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			clearLayouts(v.Index(i))
		}
	}
}

func TestEmptyItemHasDefaults(t *testing.T) {
	data := app(u32(uint32(TypeGate)), endb())
	item, warn, err := Read(data)
	if err != nil || warn != nil {
		t.Fatalf("unexpected error %v, warning %v", err, warn)
	}
	gate, ok := item.(*Gate)
	if !ok {
		t.Fatalf("expected *Gate, got %T", item)
	}
	if out, err := Write(gate); err != nil || !bytes.Equal(out, data) {
		t.Errorf("defaults were written back (%v):\n% X", err, out)
	}
	clearLayouts(reflect.ValueOf(gate))
	if !reflect.DeepEqual(gate, NewGate()) {
		t.Errorf("expected defaults, got %+v", gate)
	}
	if gate.Length != 100 || gate.Height != 50 || gate.Rotation != -90 {
		t.Errorf("unexpected geometry defaults %v %v %v", gate.Length, gate.Height, gate.Rotation)
	}
	if gate.Elasticity != float32(0.3) || gate.Friction != float32(0.02) ||
		gate.Damping != float32(0.985) || gate.GravityFactor != float32(0.25) {
		t.Errorf("unexpected physics defaults %+v", gate)
	}
	if gate.AngleMax != float32(math.Pi/2) || gate.AngleMin != 0 || gate.GateType != 2 {
		t.Errorf("unexpected angle or type defaults %+v", gate)
	}
	if !gate.ShowBracket || !gate.IsCollidable || !gate.IsVisible || gate.TwoWay {
		t.Errorf("unexpected flag defaults %+v", gate)
	}
}

func TestTimerDefaults(t *testing.T) {
	item, _, err := Read(app(u32(uint32(TypeTimer)), rec("NAME", wide("Timer1")), endb()))
	if err != nil {
		t.Fatal(err)
	}
	timer := item.(*Timer)
	if timer.Name != "Timer1" || NameOf(item) != "Timer1" {
		t.Errorf("unexpected name %q", timer.Name)
	}
	if !timer.TimerEnabled || timer.TimerInterval != 100 {
		t.Errorf("unexpected timer defaults %+v", timer)
	}
}

func TestItemRoundTrip(t *testing.T) {
	layer := biff.String{Text: "Layer 1"}
	visible := true
	on := true
	threshold := float32(2.5)
	width := float32(3)
	falloff := float32(0.4)
	material := biff.NewString("Rubber")
	point := func(x, y float32) DragPoint {
		return DragPoint{Center: vpxtype.Vertex2D{X: x, Y: y}, Z: 5, TexCoord: 0.5}
	}
	items := []Item{
		func() Item { g := NewGate(); g.Name = "Gate1"; g.TwoWay = true; return g }(),
		func() Item { f := NewFlipper(); f.Name = "LeftFlipper"; f.Center = vpxtype.Vertex2D{X: 278, Y: 1655}; return f }(),
		func() Item {
			p := NewPlunger()
			p.Name = "Plunger"
			p.EditorLayerName = &layer
			p.EditorLayerVisibility = &visible
			return p
		}(),
		func() Item { b := NewBumper(); b.Name = "Bumper1"; return b }(),
		func() Item { k := NewKicker(); k.Name = "Drain"; return k }(),
		func() Item { s := NewSpinner(); s.Name = "Spinner1"; return s }(),
		func() Item { h := NewHitTarget(); h.Name = "Target1"; h.Position.Z = 10; return h }(),
		func() Item { l := NewLightSequencer(); l.Name = "LightSeq1"; l.Collection = "GI"; return l }(),
		func() Item { d := NewDispReel(); d.Name = "Reel1"; return d }(),
		func() Item { d := NewDecal(); d.Name = "Decal1"; d.Text = biff.String{Text: "Café", Encoding: biff.Latin1}; return d }(),
		func() Item { tb := NewTextBox(); tb.Name = "Score"; tb.Font.Name = "Tahoma"; return tb }(),
		func() Item {
			w := NewWall()
			w.Name = "Apron"
			w.HeightTop = 80
			w.IsDroppable = true
			w.Image = biff.NewString("apron")
			w.ElasticityFalloff = &falloff
			return w
		}(),
		func() Item {
			l := NewLight()
			l.Name = "L1"
			l.Center = vpxtype.Vertex2D{X: 100, Y: 200}
			l.State = uint32(LightBlinking)
			l.Color = vpxtype.Color{R: 1, G: 2, B: 3}
			l.BlinkPattern = biff.NewString("1001")
			l.IsBulbLight = true
			l.HasStaticBulbMesh = &on
			l.DragPoints = []DragPoint{point(90, 190), point(110, 190), point(100, 210)}
			return l
		}(),
		func() Item {
			r := NewRamp()
			r.Name = "Ramp1"
			r.HeightTop = 60
			r.RampType = uint32(Ramp2Wire)
			r.Threshold = &threshold
			r.PhysicsMaterial = &material
			r.DragPoints = []DragPoint{point(0, 0), point(0, 400)}
			return r
		}(),
		func() Item {
			r := NewRubber()
			r.Name = "Rubber1"
			r.Thickness = 12
			r.HitHeight = &width
			r.RotZ = 45
			r.DragPoints = []DragPoint{point(1, 1), point(2, 2), point(3, 1)}
			return r
		}(),
		func() Item {
			f := NewFlasher()
			f.Name = "Flasher1"
			f.Height = 120
			f.Filter = uint32(FilterScreen)
			f.IsDMD = &on
			f.DragPoints = []DragPoint{point(0, 0), point(10, 0), point(10, 10), point(0, 10)}
			return f
		}(),
		func() Item {
			tr := NewTrigger()
			tr.Name = "Trigger1"
			tr.Shape = uint32(TriggerStar)
			tr.WireThickness = &width
			tr.DragPoints = []DragPoint{point(5, 5), point(15, 5), point(10, 15)}
			return tr
		}(),
	}
	for _, item := range items {
		data, err := Write(item)
		if err != nil {
			t.Errorf("%s: write: %v", item.Type(), err)
			continue
		}
		got, warn, err := Read(data)
		if err != nil || warn != nil {
			t.Errorf("%s: read: %v, warning %v", item.Type(), err, warn)
			continue
		}
		again, err := Write(got)
		if err != nil || !bytes.Equal(again, data) {
			t.Errorf("%s: re-encoding differs (%v)", item.Type(), err)
		}
		clearLayouts(reflect.ValueOf(got))
		if !reflect.DeepEqual(got, item) {
			t.Errorf("%s: round trip mismatch:\n got %+v\nwant %+v", item.Type(), got, item)
		}
	}
}

func TestOmittedTagsStayOmitted(t *testing.T) {
	data := app(u32(uint32(TypeGate)), rec("NAME", wide("Gate1")), endb())
	item, _, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Write(item)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("expected %d bytes, got %d:\n% X", len(data), len(out), out)
	}

	// A field that was absent is written once it changes.
	item.(*Gate).TwoWay = true
	out, err = Write(item)
	if err != nil {
		t.Fatal(err)
	}
	want := app(u32(uint32(TypeGate)), rec("NAME", wide("Gate1")), rec("TWWA", u32(1)), endb())
	if !bytes.Equal(out, want) {
		t.Errorf("changed field not written:\n got % X\nwant % X", out, want)
	}
}

func TestRecordOrderIsKept(t *testing.T) {
	data := app(
		u32(uint32(TypeTimer)),
		rec("NAME", wide("Timer1")),
		rec("TMIN", u32(40)),
		rec("TMON", u32(0)),
		rec("VCEN", f32(1), f32(2)),
		endb(),
	)
	item, warn, err := Read(data)
	if err != nil || warn != nil {
		t.Fatalf("unexpected error %v, warning %v", err, warn)
	}
	item.(*Timer).TimerInterval = 60
	out, err := Write(item)
	if err != nil {
		t.Fatal(err)
	}
	want := app(
		u32(uint32(TypeTimer)),
		rec("NAME", wide("Timer1")),
		rec("TMIN", u32(60)),
		rec("TMON", u32(0)),
		rec("VCEN", f32(1), f32(2)),
		endb(),
	)
	if !bytes.Equal(out, want) {
		t.Errorf("record order changed:\n got % X\nwant % X", out, want)
	}
}

func TestDuplicateTag(t *testing.T) {
	data := app(
		u32(uint32(TypeTimer)),
		rec("NAME", wide("Timer1")),
		rec("TMIN", u32(5)),
		rec("TMIN", u32(9)),
		endb(),
	)
	item, warn, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	var dup biff.DuplicateTagWarning
	if !errors.As(warn, &dup) || dup.Tag != "TMIN" {
		t.Errorf("expected duplicate tag warning, got %v", warn)
	}
	timer := item.(*Timer)
	if timer.TimerInterval != 5 {
		t.Errorf("expected first value to be kept, got %d", timer.TimerInterval)
	}
	if u := timer.Layout.Unknown; len(u) != 1 || !bytes.Equal(u[0].Data, u32(9)) {
		t.Errorf("expected repeat to be kept, got %+v", u)
	}
	out, err := Write(item)
	if err != nil || !bytes.Equal(out, data) {
		t.Errorf("round trip differs (%v):\n got % X\nwant % X", err, out, data)
	}
}

func TestDuplicateFont(t *testing.T) {
	font, _ := vpxtype.EncodeFont(vpxtype.Font{Version: 1, Weight: 400, Size: 10, Name: "Arial"})
	other, _ := vpxtype.EncodeFont(vpxtype.Font{Version: 1, Weight: 700, Size: 20, Name: "Courier"})
	data := app(
		u32(uint32(TypeTextBox)),
		rec("NAME", wide("Score")),
		u32(4), "FONT", font,
		u32(4), "FONT", other,
		endb(),
	)
	item, warn, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	if !errors.As(warn, new(biff.DuplicateTagWarning)) {
		t.Errorf("expected duplicate tag warning, got %v", warn)
	}
	if name := item.(*TextBox).Font.Name; name != "Arial" {
		t.Errorf("expected first font, got %q", name)
	}
	out, err := Write(item)
	if err != nil || !bytes.Equal(out, data) {
		t.Errorf("round trip differs (%v):\n got % X\nwant % X", err, out, data)
	}
}

func TestUnknownTagIsPreserved(t *testing.T) {
	data := app(
		u32(uint32(TypeTimer)),
		rec("VCEN", f32(10), f32(20)),
		rec("TMON", u32(1)),
		rec("XXXX", "hello"),
		rec("TMIN", u32(250)),
		rec("NAME", wide("Timer1")),
		rec("BGLS", u32(0)),
		rec("LOCK", u32(1)),
		rec("LAYR", u32(3)),
		endb(),
	)
	item, warn, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	var unknown biff.UnknownTagWarning
	if !errors.As(warn, &unknown) || unknown.Tag != "XXXX" {
		t.Errorf("expected unknown tag warning, got %v", warn)
	}
	var iw ItemWarning
	if !errors.As(warn, &iw) || iw.Name != "Timer1" || iw.Type != TypeTimer {
		t.Errorf("expected warning attributed to Timer1, got %v", warn)
	}
	timer := item.(*Timer)
	if timer.TimerInterval != 250 || !timer.Locked || timer.EditorLayer != 3 {
		t.Errorf("unexpected fields %+v", timer)
	}
	if u := timer.Layout.Unknown; len(u) != 1 || u[0].After != "TMON" {
		t.Errorf("unexpected unknown records %+v", u)
	}
	out, err := Write(item)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("round trip differs:\n got % X\nwant % X", out, data)
	}
}

func TestDragPoints(t *testing.T) {
	wall := NewWall()
	wall.Name = "Wall1"
	slingshot := true
	for i := 0; i < 3; i++ {
		p := DragPoint{Center: vpxtype.Vertex2D{X: float32(i), Y: float32(10 * i)}, Smooth: i == 1}
		if i == 2 {
			p.IsSlingshot = &slingshot
		}
		wall.DragPoints = append(wall.DragPoints, p)
	}
	data, err := Write(wall)
	if err != nil {
		t.Fatal(err)
	}
	item, warn, err := Read(data)
	if err != nil || warn != nil {
		t.Fatalf("unexpected error %v, warning %v", err, warn)
	}
	got := item.(*Wall)
	if len(got.DragPoints) != 3 {
		t.Fatalf("expected 3 drag points, got %d", len(got.DragPoints))
	}
	for i, p := range got.DragPoints {
		if p.Center.X != float32(i) || p.Center.Y != float32(10*i) {
			t.Errorf("drag point %d out of order: %v", i, p.Center)
		}
	}
	if got.DragPoints[2].IsSlingshot == nil || got.DragPoints[0].IsSlingshot != nil {
		t.Errorf("unexpected slingshot flags")
	}
	clearLayouts(reflect.ValueOf(got))
	if !reflect.DeepEqual(got, wall) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, wall)
	}
}

func TestUnknownTagBetweenDragPoints(t *testing.T) {
	data := app(
		u32(uint32(TypeWall)),
		rec("NAME", wide("Wall1")),
		dpnt(rec("VCEN", f32(1), f32(2))),
		rec("XXXX", "between"),
		dpnt(rec("VCEN", f32(3), f32(4))),
		endb(),
	)
	item, _, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	wall := item.(*Wall)
	if len(wall.DragPoints) != 2 {
		t.Fatalf("expected 2 drag points, got %d", len(wall.DragPoints))
	}
	out, err := Write(wall)
	if err != nil || !bytes.Equal(out, data) {
		t.Errorf("round trip differs (%v):\n got % X\nwant % X", err, out, data)
	}

	// Added points follow the last point that was read.
	wall.DragPoints = append(wall.DragPoints, DragPoint{Center: vpxtype.Vertex2D{X: 5, Y: 6}})
	out, err = Write(wall)
	if err != nil {
		t.Fatal(err)
	}
	w := biff.NewWriter()
	writeDragPoint(w, "DPNT", wall.DragPoints[2])
	added, err := w.Close(false)
	if err != nil {
		t.Fatal(err)
	}
	want := app(
		u32(uint32(TypeWall)),
		rec("NAME", wide("Wall1")),
		dpnt(rec("VCEN", f32(1), f32(2))),
		rec("XXXX", "between"),
		dpnt(rec("VCEN", f32(3), f32(4))),
		added,
		endb(),
	)
	if !bytes.Equal(out, want) {
		t.Errorf("added drag point misplaced:\n got % X\nwant % X", out, want)
	}
}

func TestUnknownTagInsideDragPoint(t *testing.T) {
	data := app(
		u32(uint32(TypeRubber)),
		rec("NAME", wide("Rubber1")),
		dpnt(rec("VCEN", f32(1), f32(2)), rec("YYYY", u32(7)), rec("SMTH", u32(1))),
		endb(),
	)
	item, warn, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	var unknown biff.UnknownTagWarning
	if !errors.As(warn, &unknown) || unknown.Tag != "YYYY" {
		t.Errorf("expected unknown tag warning, got %v", warn)
	}
	p := item.(*Rubber).DragPoints[0]
	if !p.Smooth || len(p.Layout.Unknown) != 1 || p.Layout.Unknown[0].After != "VCEN" {
		t.Errorf("unexpected drag point %+v", p)
	}
	out, err := Write(item)
	if err != nil || !bytes.Equal(out, data) {
		t.Errorf("round trip differs (%v):\n got % X\nwant % X", err, out, data)
	}
}

func TestDragPointWireFormat(t *testing.T) {
	point := app(
		u32(4), "DPNT",
		rec("VCEN", f32(1), f32(2)),
		rec("POSZ", f32(0)),
		rec("SMTH", u32(1)),
		rec("ATEX", u32(0)),
		rec("TEXC", f32(0)),
		rec("LOCK", u32(0)),
		rec("LAYR", u32(0)),
		endb(),
	)
	trigger := NewTrigger()
	trigger.DragPoints = []DragPoint{{Center: vpxtype.Vertex2D{X: 1, Y: 2}, Smooth: true}}
	data, err := Write(trigger)
	if err != nil {
		t.Fatal(err)
	}
	// The drag point is the last thing before the item's own ENDB.
	tail := app(point, endb())
	if !bytes.HasSuffix(data, tail) {
		t.Errorf("unexpected drag point encoding:\n got % X\nwant suffix % X", data, tail)
	}
}

func TestTextBoxFont(t *testing.T) {
	tb := NewTextBox()
	tb.Font = vpxtype.Font{Version: 1, Weight: 700, Size: 100000, Name: "Courier"}
	data, err := Write(tb)
	if err != nil {
		t.Fatal(err)
	}
	font, _ := vpxtype.EncodeFont(tb.Font)
	tail := app(u32(4), "FONT", font, endb())
	if !bytes.HasSuffix(data, tail) {
		t.Errorf("font is not written unframed before ENDB:\n% X", data)
	}
	item, _, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	if got := item.(*TextBox).Font; got != tb.Font {
		t.Errorf("expected font %v, got %v", tb.Font, got)
	}
}

func TestGenericItemIsVerbatim(t *testing.T) {
	data := app(
		u32(uint32(TypePrimitive)),
		rec("VPOS", f32(1), f32(2), f32(3), f32(0)),
		rec("NAME", wide("Prim1")),
		u32(4), "DPNT", rec("VCEN", f32(0), f32(0)), endb(),
		rec("M3DX", "\x00\x01\x02"),
		endb(),
	)
	item, warn, err := Read(data)
	if err != nil || warn != nil {
		t.Fatalf("unexpected error %v, warning %v", err, warn)
	}
	g, ok := item.(*Generic)
	if !ok {
		t.Fatalf("expected *Generic, got %T", item)
	}
	if g.Type() != TypePrimitive || NameOf(g) != "Prim1" {
		t.Errorf("unexpected generic item %s %q", g.Type(), NameOf(g))
	}
	out, err := Write(g)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("round trip differs:\n got % X\nwant % X", out, data)
	}
}

func TestTrailingRecordsKeepItemVerbatim(t *testing.T) {
	data := app(u32(uint32(TypeTimer)), rec("NAME", wide("T")), endb(), rec("XTRA", u32(1)))
	item, warn, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := item.(*Generic); !ok {
		t.Fatalf("expected *Generic, got %T", item)
	}
	if !errors.Is(warn, errTrailingData) {
		t.Errorf("expected trailing data warning, got %v", warn)
	}
	out, err := Write(item)
	if err != nil || !bytes.Equal(out, data) {
		t.Errorf("round trip differs (%v)", err)
	}
}

func TestMissingEnd(t *testing.T) {
	item, warn, err := Read(app(u32(uint32(TypeTimer)), rec("NAME", wide("T"))))
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(warn, errMissingEnd) {
		t.Errorf("expected missing end warning, got %v", warn)
	}
	out, err := Write(item)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasSuffix(out, endb()) {
		t.Errorf("expected ENDB to be added")
	}
}

func TestTruncatedItem(t *testing.T) {
	_, _, err := Read(app(u32(uint32(TypeGate)), u32(100), "LGTH"))
	if !errors.Is(err, biff.ErrTruncatedRecord) {
		t.Errorf("expected truncated record error, got %v", err)
	}
	if _, _, err := Read([]byte{1, 2}); err == nil {
		t.Errorf("expected error for short header")
	}
}

func TestTypeString(t *testing.T) {
	if TypeLightSeq.String() != "LightSequencer" || Type(99).String() != "Type(99)" {
		t.Errorf("unexpected type names %s %s", TypeLightSeq, Type(99))
	}
}
