package vpxtool

import "github.com/francisdb/vpxtool/biff"

// Sound is a sound asset. The stream starts with three length-prefixed
// strings; the wave format, sample data and playback settings that follow
// are kept as they are.
type Sound struct {
	Name         biff.String
	Path         biff.String
	InternalName biff.String
	Payload      []byte
}

func decodeSound(b []byte) (snd Sound, warn, err error) {
	r := biff.NewReader(b)
	if snd.Name, err = r.String(); err != nil {
		return snd, nil, err
	}
	if snd.Path, err = r.String(); err != nil {
		return snd, nil, err
	}
	if snd.InternalName, err = r.String(); err != nil {
		return snd, nil, err
	}
	snd.Payload, err = r.Rest()
	return snd, nil, err
}

func (snd Sound) encode() ([]byte, error) {
	w := biff.NewWriter()
	for _, s := range []biff.String{snd.Name, snd.Path, snd.InternalName} {
		b, err := biff.EncodeString(s)
		if err != nil {
			return nil, err
		}
		w.RawU32(uint32(len(b)))
		w.RawBytes(b)
	}
	w.RawBytes(snd.Payload)
	return w.Close(false)
}
