package vpxtool

import (
	"sort"

	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/cfb"
	"github.com/francisdb/vpxtool/errors"
)

// Info is the table metadata. Each value is a stream of the TableInfo storage
// holding UTF-16LE text without a length prefix. Nil fields have no stream.
type Info struct {
	TableName        *string
	AuthorName       *string
	AuthorEmail      *string
	AuthorWebSite    *string
	ReleaseDate      *string
	TableBlurb       *string
	TableDescription *string
	TableRules       *string
	TableVersion     *string
	TableSaveDate    *string
	TableSaveRev     *string

	// Screenshot is the image data of the Screenshot stream.
	Screenshot []byte

	// Properties holds every other key, such as the values of custom info
	// tags.
	Properties map[string]string
}

const keyScreenshot = "Screenshot"

func (info *Info) fields() map[string]**string {
	return map[string]**string{
		"TableName":        &info.TableName,
		"AuthorName":       &info.AuthorName,
		"AuthorEmail":      &info.AuthorEmail,
		"AuthorWebSite":    &info.AuthorWebSite,
		"ReleaseDate":      &info.ReleaseDate,
		"TableBlurb":       &info.TableBlurb,
		"TableDescription": &info.TableDescription,
		"TableRules":       &info.TableRules,
		"TableVersion":     &info.TableVersion,
		"TableSaveDate":    &info.TableSaveDate,
		"TableSaveRev":     &info.TableSaveRev,
	}
}

// decodeInfo decodes the TableInfo storage. Streams that are not valid UTF-16
// are left out of the model and kept as extra streams.
func decodeInfo(c *cfb.Container, used map[string]bool) (info Info, warn error) {
	fields := info.fields()
	var warns errors.Errors
	for _, key := range c.List(storageInfo) {
		path := storageInfo + "/" + key
		b, _ := c.Stream(path)
		if key == keyScreenshot {
			info.Screenshot = b
			used[path] = true
			continue
		}
		s, err := biff.DecodeWide(b)
		if err != nil {
			warns = warns.Append(StreamError{Path: path, Cause: err})
			continue
		}
		used[path] = true
		if p, ok := fields[key]; ok {
			*p = &s
			continue
		}
		if info.Properties == nil {
			info.Properties = map[string]string{}
		}
		info.Properties[key] = s
	}
	return info, warns.Return()
}

func encodeInfo(c *cfb.Container, info Info) error {
	put := func(key, value string) error {
		b, err := biff.EncodeWide(value)
		if err != nil {
			return StreamError{Path: storageInfo + "/" + key, Cause: err}
		}
		c.SetStream(storageInfo+"/"+key, b)
		return nil
	}
	for key, p := range info.fields() {
		if *p != nil {
			if err := put(key, **p); err != nil {
				return err
			}
		}
	}
	if info.Screenshot != nil {
		c.SetStream(storageInfo+"/"+keyScreenshot, info.Screenshot)
	}
	keys := make([]string, 0, len(info.Properties))
	for key := range info.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := put(key, info.Properties[key]); err != nil {
			return err
		}
	}
	return nil
}

// CustomInfoTags lists the names of user defined metadata keys.
type CustomInfoTags struct {
	Names   []biff.String // CUST
	Layout biff.Layout
}

func (t *CustomInfoTags) fields() []biff.Field {
	return []biff.Field{
		biff.Repeated("CUST", &t.Names, (*biff.Reader).String, (*biff.Writer).String),
	}
}

func (t *CustomInfoTags) decode(b []byte) (warn, err error) {
	return decodeRecords(b, t.fields(), &t.Layout)
}

func (t *CustomInfoTags) encode() ([]byte, error) {
	return encodeRecords(t.fields(), t.Layout)
}
