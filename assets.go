package vpxtool

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// AssetKind identifies the list an asset belongs to.
type AssetKind string

const (
	AssetImage AssetKind = "image"
	AssetSound AssetKind = "sound"
	AssetFont  AssetKind = "font"
)

// DigestSize is the size of an asset digest, in bytes.
const DigestSize = 16

// Digest identifies the content of an asset.
type Digest [DigestSize]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Asset summarizes one embedded asset of a table.
type Asset struct {
	Kind  AssetKind
	Index int
	Name  string
	Size  int

	// Digest is the BLAKE2b digest of the asset data.
	Digest Digest

	// DuplicateOf is the index within Assets of the first asset with the
	// same data, or -1.
	DuplicateOf int
}

func digest(data []byte) (d Digest, err error) {
	h, err := blake2b.New(DigestSize, nil)
	if err != nil {
		return d, err
	}
	h.Write(data)
	copy(d[:], h.Sum(nil))
	return d, nil
}

// Assets lists the images, sounds and fonts of the table, in that order.
func (t *Table) Assets() ([]Asset, error) {
	var assets []Asset
	seen := map[Digest]int{}
	add := func(kind AssetKind, i int, name string, data []byte) error {
		d, err := digest(data)
		if err != nil {
			return err
		}
		a := Asset{Kind: kind, Index: i, Name: name, Size: len(data), Digest: d, DuplicateOf: -1}
		if j, ok := seen[d]; ok {
			a.DuplicateOf = j
		} else {
			seen[d] = len(assets)
		}
		assets = append(assets, a)
		return nil
	}
	for i, img := range t.Images {
		if err := add(AssetImage, i, img.Name.Text, img.Data()); err != nil {
			return nil, err
		}
	}
	for i, snd := range t.Sounds {
		if err := add(AssetSound, i, snd.Name.Text, snd.Payload); err != nil {
			return nil, err
		}
	}
	for i, f := range t.Fonts {
		if err := add(AssetFont, i, f.Name.Text, f.Data); err != nil {
			return nil, err
		}
	}
	return assets, nil
}
