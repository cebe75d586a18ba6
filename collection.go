package vpxtool

import "github.com/francisdb/vpxtool/biff"

// Collection is a named group of game items.
type Collection struct {
	Name             string   // NAME
	Items            []string // ITEM
	FireEvents       bool     // EVNT
	StopSingleEvents bool     // SSNG
	GroupElements    bool     // GREL

	Layout biff.Layout
}

// NewCollection returns an empty collection with default flags.
func NewCollection(name string) Collection {
	return Collection{Name: name, GroupElements: true}
}

func (c *Collection) fields() []biff.Field {
	return []biff.Field{
		biff.Wide("NAME", &c.Name),
		biff.Repeated("ITEM", &c.Items, (*biff.Reader).WideString, (*biff.Writer).WideString),
		biff.Bool("EVNT", &c.FireEvents),
		biff.Bool("SSNG", &c.StopSingleEvents),
		biff.Bool("GREL", &c.GroupElements),
	}
}

func decodeCollection(b []byte) (c Collection, warn, err error) {
	c = NewCollection("")
	warn, err = decodeRecords(b, c.fields(), &c.Layout)
	return c, warn, err
}

func (c Collection) encode() ([]byte, error) {
	return encodeRecords(c.fields(), c.Layout)
}
