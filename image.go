package vpxtool

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/errors"
)

// Binary is an embedded file, such as the data of an image or a font.
type Binary struct {
	Name biff.String // NAME
	Path biff.String // PATH
	Data []byte      // SIZE, DATA

	Layout biff.Layout

	// size is the SIZE value that was read along with data.
	size *uint32
	data []byte
}

// Size returns the value of the SIZE record: the size that was read, as long
// as Data has not been replaced, or else the length of Data.
func (b *Binary) Size() uint32 {
	if b.size != nil && sameSlice(b.Data, b.data) {
		return *b.size
	}
	return uint32(len(b.Data))
}

func sameSlice(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

func (b *Binary) fields() []biff.Field {
	return []biff.Field{
		biff.Str("NAME", &b.Name),
		biff.Str("PATH", &b.Path),
		{
			Tag: "SIZE",
			Read: func(r *biff.Reader) error {
				n, err := r.U32()
				b.size = &n
				return err
			},
			Write: func(w *biff.Writer) { w.U32("SIZE", b.Size()) },
		},
		{
			Tag: "DATA",
			Read: func(r *biff.Reader) (err error) {
				b.Data, err = r.Rest()
				b.data = b.Data
				return err
			},
			Write: func(w *biff.Writer) { w.Record("DATA", b.Data) },
		},
	}
}

func readBinary(r *biff.Reader) (*Binary, error) {
	var bin Binary
	c := r.Child()
	if err := biff.DecodeFields(c, bin.fields(), &bin.Layout); err != nil {
		return nil, err
	}
	return &bin, r.Consume(c.Pos())
}

// Image is an image asset. Images stored as compressed bitmaps are not
// decoded; their stream is kept in Raw and only Name is set.
type Image struct {
	Name           biff.String  // NAME
	InternalName   *biff.String // INME
	Path           biff.String  // PATH
	Width          uint32       // WDTH
	Height         uint32       // HGHT
	Jpeg           *Binary      // JPEG
	AlphaTestValue *float32     // ALTV

	Raw []byte

	Layout biff.Layout
}

// errBitmap stops decoding at a BITS record. Its payload has no length
// framing, so nothing after it can be located.
var errBitmap = errors.New("bitmap image")

func (img *Image) fields() []biff.Field {
	return []biff.Field{
		biff.Str("NAME", &img.Name),
		biff.Optional("INME", &img.InternalName, biff.Str),
		biff.Str("PATH", &img.Path),
		biff.U32("WDTH", &img.Width),
		biff.U32("HGHT", &img.Height),
		{
			Tag: "JPEG",
			Read: func(r *biff.Reader) (err error) {
				img.Jpeg, err = readBinary(r)
				return err
			},
			Write: func(w *biff.Writer) {
				if img.Jpeg == nil {
					return
				}
				w.Child("JPEG", func(c *biff.Writer) {
					biff.EncodeFields(c, img.Jpeg.fields(), img.Jpeg.Layout)
				})
			},
			Skip: func(r *biff.Reader) error {
				_, err := readBinary(r)
				return err
			},
		},
		{
			Tag:   "BITS",
			Read:  func(r *biff.Reader) error { return errBitmap },
			Write: func(w *biff.Writer) {},
		},
		biff.Optional("ALTV", &img.AlphaTestValue, biff.F32),
	}
}

func decodeImage(b []byte) (img Image, warn, err error) {
	warn, err = decodeRecords(b, img.fields(), &img.Layout)
	if errors.Is(err, errBitmap) {
		return Image{Name: img.Name, Raw: b}, nil, nil
	}
	return img, warn, err
}

func (img Image) encode() ([]byte, error) {
	if img.Raw != nil {
		return img.Raw, nil
	}
	return encodeRecords(img.fields(), img.Layout)
}

// Data returns the file data of the image, or the raw stream for bitmaps.
func (img Image) Data() []byte {
	if img.Jpeg != nil {
		return img.Jpeg.Data
	}
	return img.Raw
}

// Font is a font asset.
type Font struct {
	Binary
}

func decodeFont(b []byte) (f Font, warn, err error) {
	warn, err = decodeRecords(b, f.fields(), &f.Layout)
	return f, warn, err
}

func (f Font) encode() ([]byte, error) {
	return encodeRecords(f.fields(), f.Layout)
}
