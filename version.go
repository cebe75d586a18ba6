package vpxtool

import (
	"encoding/binary"
	"fmt"

	"github.com/francisdb/vpxtool/biff"
)

// Version is the file format version of a table, as major*100 + minor*10 +
// revision.
type Version uint32

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v/100, v/10%10, v%10)
}

func decodeVersion(b []byte) (Version, error) {
	if len(b) != 4 {
		return 0, fmt.Errorf("%w: version is %d bytes", biff.ErrMalformedRecord, len(b))
	}
	return Version(binary.LittleEndian.Uint32(b)), nil
}

func encodeVersion(v Version) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}
