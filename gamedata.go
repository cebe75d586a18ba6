package vpxtool

import (
	"encoding/binary"
	"math"

	"github.com/francisdb/vpxtool/biff"
)

// Tags of the game data counts, one per indexed stream list.
const (
	CountItems       = "SEDT"
	CountSounds      = "SSND"
	CountImages      = "SIMG"
	CountFonts       = "SFNT"
	CountCollections = "SCOL"
)

// GameData holds the records of the GameData stream. The stream carries
// several hundred table-wide settings; they are kept as records in their
// original order, with accessors for the ones this package interprets.
type GameData struct {
	// Records includes the final ENDB record.
	Records []biff.Record
}

func decodeGameData(b []byte) (GameData, error) {
	records, err := biff.ReadRecords(b)
	if err != nil {
		return GameData{}, err
	}
	return GameData{Records: records}, nil
}

func (g GameData) encode() ([]byte, error) {
	w := biff.NewWriter()
	biff.WriteRecords(w, g.Records)
	return w.Close(false)
}

// Clone returns a copy of g whose record list can be modified independently.
func (g GameData) Clone() GameData {
	return GameData{Records: append([]biff.Record(nil), g.Records...)}
}

func (g GameData) find(tag string) ([]byte, bool) {
	for _, rec := range g.Records {
		if rec.Tag == tag {
			return rec.Data, true
		}
	}
	return nil, false
}

// set replaces the payload of the first record with tag. If there is none, the
// record is inserted before the final ENDB.
func (g *GameData) set(tag string, data []byte) {
	for i, rec := range g.Records {
		if rec.Tag == tag {
			g.Records[i].Data = data
			return
		}
	}
	i := len(g.Records)
	if i > 0 && g.Records[i-1].Tag == biff.EndTag {
		i--
	}
	g.Records = append(g.Records, biff.Record{})
	copy(g.Records[i+1:], g.Records[i:])
	g.Records[i] = biff.Record{Tag: tag, Data: data}
}

func (g GameData) u32(tag string) (uint32, bool) {
	b, ok := g.find(tag)
	if !ok || len(b) < 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

func (g GameData) f32(tag string) (float32, bool) {
	v, ok := g.u32(tag)
	return math.Float32frombits(v), ok
}

// Count returns the value of one of the Count tags.
func (g GameData) Count(tag string) (uint32, bool) {
	return g.u32(tag)
}

// SetCount sets the value of one of the Count tags.
func (g *GameData) SetCount(tag string, n uint32) {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, n)
	if old, ok := g.find(tag); ok && string(old) == string(b) {
		return
	}
	g.set(tag, b)
}

// Name returns the table name stored in the game data.
func (g GameData) Name() string {
	b, ok := g.find("NAME")
	if !ok || len(b) < 4 {
		return ""
	}
	s, err := biff.DecodeWide(b[4:])
	if err != nil {
		return ""
	}
	return s
}

// Bounds returns the playfield rectangle.
func (g GameData) Bounds() (left, top, right, bottom float32) {
	left, _ = g.f32("LEFT")
	top, _ = g.f32("TOPX")
	right, _ = g.f32("RGHT")
	bottom, _ = g.f32("BOTM")
	return left, top, right, bottom
}

// Gravity returns the gravity constant of the table.
func (g GameData) Gravity() (float32, bool) {
	return g.f32("GAVT")
}

// Friction returns the playfield friction.
func (g GameData) Friction() (float32, bool) {
	return g.f32("FRCT")
}

// PlayfieldImage returns the name of the playfield image.
func (g GameData) PlayfieldImage() string {
	b, ok := g.find("IMAG")
	if !ok || len(b) < 4 {
		return ""
	}
	return biff.DecodeString(b[4:]).Text
}

// Script returns the table script.
func (g GameData) Script() (biff.String, error) {
	return FindScript(g.Records)
}

// SetScript replaces the table script.
func (g *GameData) SetScript(s biff.String) error {
	b, err := biff.EncodeString(s)
	if err != nil {
		return err
	}
	g.set(biff.CodeTag, b)
	return nil
}
