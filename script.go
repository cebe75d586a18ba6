package vpxtool

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/cfb"
	"github.com/francisdb/vpxtool/errors"
)

// ErrScriptNotFound indicates that the game data has no CODE record.
var ErrScriptNotFound = errors.New("script not found")

func findCode(records []biff.Record) ([]byte, error) {
	code := biff.FindRecords(records, biff.CodeTag)
	if len(code) == 0 {
		return nil, ErrScriptNotFound
	}
	return code[0].Data, nil
}

// FindScript returns the text of the CODE record in records.
func FindScript(records []biff.Record) (biff.String, error) {
	b, err := findCode(records)
	if err != nil {
		return biff.String{}, err
	}
	return biff.DecodeString(b), nil
}

// ScriptPath returns the path of the script sidecar of a table: the table path
// with its extension replaced by ".vbs".
func ScriptPath(tablePath string) string {
	return strings.TrimSuffix(tablePath, filepath.Ext(tablePath)) + ".vbs"
}

// ExtractScript writes the script of the table at tablePath to its sidecar
// file, byte for byte, and returns the sidecar path. Only the game data stream
// is decoded.
func ExtractScript(tablePath string) (string, error) {
	c, err := cfb.Open(tablePath)
	if err != nil {
		return "", err
	}
	b, err := c.Stream(pathGameData)
	if err != nil {
		return "", err
	}
	records, err := biff.ReadRecords(b)
	if err != nil {
		return "", StreamError{Path: pathGameData, Cause: err}
	}
	code, err := findCode(records)
	if err != nil {
		return "", err
	}
	path := ScriptPath(tablePath)
	if err := writeFile(path, code); err != nil {
		return "", err
	}
	return path, nil
}

// writeFile writes data to a temporary file next to path, then renames it
// over path.
func writeFile(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
