package gameitem

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

// Field constructors for the compound values used by items.

func color(tag string, v *vpxtype.Color) biff.Field {
	return biff.Field{
		Tag: tag,
		Read: func(r *biff.Reader) error {
			b, err := r.Bytes(4)
			if err != nil {
				return err
			}
			*v, err = vpxtype.DecodeBGR(b)
			return err
		},
		Write: func(w *biff.Writer) {
			b := vpxtype.EncodeBGR(*v)
			w.Record(tag, b[:])
		},
	}
}

func vertex2D(tag string, v *vpxtype.Vertex2D) biff.Field {
	return biff.Field{
		Tag: tag,
		Read: func(r *biff.Reader) error {
			b, err := r.Bytes(vpxtype.Vertex2DSize)
			if err != nil {
				return err
			}
			*v, err = vpxtype.DecodeVertex2D(b)
			return err
		},
		Write: func(w *biff.Writer) { w.Record(tag, vpxtype.EncodeVertex2D(*v)) },
	}
}

func vertex3D(tag string, v *vpxtype.Vertex3D) biff.Field {
	return biff.Field{
		Tag: tag,
		Read: func(r *biff.Reader) error {
			b, err := r.Bytes(vpxtype.Vertex3DSize)
			if err != nil {
				return err
			}
			*v, err = vpxtype.DecodeVertex3D(b)
			return err
		},
		Write: func(w *biff.Writer) { w.Record(tag, vpxtype.EncodeVertex3D(*v)) },
	}
}

// fontHeaderSize is the size of a persisted font up to and including the
// length of its name.
const fontHeaderSize = 11

// font binds a persisted font. The record length covers only the tag; the
// font follows the record unframed.
func font(tag string, v *vpxtype.Font) biff.Field {
	return biff.Field{
		Tag: tag,
		Read: func(r *biff.Reader) (err error) {
			*v, err = readFont(r)
			return err
		},
		Write: func(w *biff.Writer) {
			b, err := vpxtype.EncodeFont(*v)
			if err != nil {
				w.Fail(tag, err)
				return
			}
			w.Unframed(tag, b)
		},
		Skip: func(r *biff.Reader) error {
			_, err := readFont(r)
			return err
		},
	}
}

func readFont(r *biff.Reader) (vpxtype.Font, error) {
	c := r.Child()
	b, err := c.Bytes(fontHeaderSize)
	if err != nil {
		return vpxtype.Font{}, err
	}
	name, err := c.Bytes(int(b[fontHeaderSize-1]))
	if err != nil {
		return vpxtype.Font{}, err
	}
	f, _, err := vpxtype.DecodeFont(append(b, name...))
	if err != nil {
		return vpxtype.Font{}, err
	}
	return f, r.Consume(c.Pos())
}

// dragPoints binds the DPNT sub-streams of an item.
func dragPoints(s *[]DragPoint) biff.Field {
	return biff.Repeated("DPNT", s, readDragPoint, writeDragPoint)
}
