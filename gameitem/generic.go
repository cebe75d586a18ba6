package gameitem

import "github.com/francisdb/vpxtool/biff"

// Generic is an item of a type without a dedicated decoder. Its records,
// including end markers of nested sub-streams and the final ENDB, are kept
// verbatim.
type Generic struct {
	ItemType Type
	Records  []biff.Record

	// Common.Name is filled from the NAME record for display. Changing it
	// does not affect encoding.
	Common
}

func (g *Generic) Type() Type { return g.ItemType }

func (g *Generic) fields() []biff.Field { return nil }

func (g *Generic) read(r *biff.Reader) error {
	records, err := biff.ReadRemainingRecords(r)
	if err != nil {
		return err
	}
	g.Records = records
	for _, rec := range records {
		if rec.Tag == "NAME" && len(rec.Data) >= 4 {
			if name, err := biff.DecodeWide(rec.Data[4:]); err == nil {
				g.Name = name
			}
			break
		}
	}
	return nil
}
