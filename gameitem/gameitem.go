// Package gameitem decodes and encodes the game items of a VPX table.
//
// Each game item is stored in its own stream. The stream starts with a 32-bit
// item type, followed by the records of the item, terminated by ENDB. Every
// item kind known to this package is a struct whose fields are bound to record
// tags by a field list; fields absent from the input keep the defaults set by
// the kind's constructor. A decoded item remembers the order of its records in
// Common.Layout: records with unrecognized tags are written back in place, and
// fields that were absent are only written once they change.
//
// Item types without a dedicated decoder are decoded as Generic, which keeps
// every record verbatim.
package gameitem

import (
	"fmt"

	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/errors"
)

// Type identifies the kind of a game item.
type Type uint32

const (
	TypeWall        Type = 0
	TypeFlipper     Type = 1
	TypeTimer       Type = 2
	TypePlunger     Type = 3
	TypeTextBox     Type = 4
	TypeBumper      Type = 5
	TypeTrigger     Type = 6
	TypeLight       Type = 7
	TypeKicker      Type = 8
	TypeDecal       Type = 9
	TypeGate        Type = 10
	TypeSpinner     Type = 11
	TypeRamp        Type = 12
	TypeTable       Type = 13
	TypeLightCenter Type = 14
	TypeDragPoint   Type = 15
	TypeCollection  Type = 16
	TypeDispReel    Type = 17
	TypeLightSeq    Type = 18
	TypePrimitive   Type = 19
	TypeFlasher     Type = 20
	TypeRubber      Type = 21
	TypeHitTarget   Type = 22
	TypeBall        Type = 23
	TypePartGroup   Type = 24
)

var typeNames = map[Type]string{
	TypeWall:        "Wall",
	TypeFlipper:     "Flipper",
	TypeTimer:       "Timer",
	TypePlunger:     "Plunger",
	TypeTextBox:     "TextBox",
	TypeBumper:      "Bumper",
	TypeTrigger:     "Trigger",
	TypeLight:       "Light",
	TypeKicker:      "Kicker",
	TypeDecal:       "Decal",
	TypeGate:        "Gate",
	TypeSpinner:     "Spinner",
	TypeRamp:        "Ramp",
	TypeTable:       "Table",
	TypeLightCenter: "LightCenter",
	TypeDragPoint:   "DragPoint",
	TypeCollection:  "Collection",
	TypeDispReel:    "DispReel",
	TypeLightSeq:    "LightSequencer",
	TypePrimitive:   "Primitive",
	TypeFlasher:     "Flasher",
	TypeRubber:      "Rubber",
	TypeHitTarget:   "HitTarget",
	TypeBall:        "Ball",
	TypePartGroup:   "PartGroup",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", uint32(t))
}

// Item is a decoded game item.
type Item interface {
	// Type returns the item type written in front of the item's records.
	Type() Type

	common() *Common
	fields() []biff.Field
}

// Common holds the parts shared by every item kind.
type Common struct {
	// Name is the script name of the item.
	Name string

	Editor

	// Layout holds the order of the records that the item was decoded
	// from, including records that the decoder did not recognize.
	Layout biff.Layout
}

func (c *Common) common() *Common {
	return c
}

// NameOf returns the name of an item.
func NameOf(item Item) string {
	return item.common().Name
}

// New returns an item of the given type with every field at its default.
// Types without a dedicated decoder yield a Generic item.
func New(t Type) Item {
	switch t {
	case TypeWall:
		return NewWall()
	case TypeFlipper:
		return NewFlipper()
	case TypeTimer:
		return NewTimer()
	case TypePlunger:
		return NewPlunger()
	case TypeTextBox:
		return NewTextBox()
	case TypeBumper:
		return NewBumper()
	case TypeTrigger:
		return NewTrigger()
	case TypeLight:
		return NewLight()
	case TypeKicker:
		return NewKicker()
	case TypeDecal:
		return NewDecal()
	case TypeGate:
		return NewGate()
	case TypeSpinner:
		return NewSpinner()
	case TypeRamp:
		return NewRamp()
	case TypeDispReel:
		return NewDispReel()
	case TypeLightSeq:
		return NewLightSequencer()
	case TypeFlasher:
		return NewFlasher()
	case TypeRubber:
		return NewRubber()
	case TypeHitTarget:
		return NewHitTarget()
	}
	return &Generic{ItemType: t}
}

// ItemWarning attaches the item to a warning raised while decoding it.
type ItemWarning struct {
	Type  Type
	Name  string
	Cause error
}

func (w ItemWarning) Error() string {
	return fmt.Sprintf("%s %q: %s", w.Type, w.Name, w.Cause)
}

func (w ItemWarning) Unwrap() error {
	return w.Cause
}

var (
	// errTrailingData indicates bytes after the ENDB record of an item.
	errTrailingData = errors.New("data after end of item, keeping item verbatim")
	// errDroppedData indicates unparseable bytes after the ENDB record of
	// an item, which are not kept.
	errDroppedData = errors.New("discarded data after end of item")
	// errMissingEnd indicates an item stream without an ENDB record.
	errMissingEnd = errors.New("item has no end record")
)

// Read decodes a game item stream. Decoding problems that do not prevent a
// faithful round trip, such as unknown tags, are returned as warnings.
func Read(data []byte) (item Item, warn, err error) {
	r := biff.NewReader(data)
	t, err := r.U32()
	if err != nil {
		return nil, nil, err
	}
	item = New(Type(t))
	if g, ok := item.(*Generic); ok {
		if err := g.read(r); err != nil {
			return nil, nil, err
		}
		return g, nil, nil
	}
	if err := biff.DecodeFields(r, item.fields(), &item.common().Layout); err != nil {
		return nil, nil, err
	}
	if !r.Ended() {
		r.Warn(errMissingEnd)
	}
	warns := r.Warnings()
	if !r.EOF() {
		g := &Generic{ItemType: Type(t)}
		if err := g.read(biff.NewReader(data[4:])); err == nil {
			g.Name = NameOf(item)
			return g, ItemWarning{Type: g.ItemType, Name: g.Name, Cause: errTrailingData}, nil
		}
		warns = errors.Union(warns, fmt.Errorf("%w: %d bytes", errDroppedData, r.Len()))
	}
	warn = errors.Wrap(warns, func(e error) error {
		return ItemWarning{Type: item.Type(), Name: NameOf(item), Cause: e}
	})
	return item, warn, nil
}

// Write encodes a game item stream.
func Write(item Item) ([]byte, error) {
	w := biff.NewWriter()
	w.RawU32(uint32(item.Type()))
	if g, ok := item.(*Generic); ok {
		biff.WriteRecords(w, g.Records)
		return w.Close(false)
	}
	biff.EncodeFields(w, item.fields(), item.common().Layout)
	return w.Close(true)
}
