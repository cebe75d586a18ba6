package gameitem

import "github.com/francisdb/vpxtool/biff"

// Editor holds the editor state written at the end of most items.
type Editor struct {
	Locked      bool   // LOCK
	EditorLayer uint32 // LAYR

	// Written by newer versions only.
	EditorLayerName       *biff.String // LANR
	EditorLayerVisibility *bool        // LVIS
}

func (e *Editor) fields() []biff.Field {
	return []biff.Field{
		biff.Bool("LOCK", &e.Locked),
		biff.U32("LAYR", &e.EditorLayer),
		biff.Optional("LANR", &e.EditorLayerName, biff.Str),
		biff.Optional("LVIS", &e.EditorLayerVisibility, biff.Bool),
	}
}
