package gameitem

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

// TextAlign is the horizontal alignment of text.
type TextAlign uint32

const (
	AlignLeft   TextAlign = 0
	AlignCenter TextAlign = 1
	AlignRight  TextAlign = 2
)

// TextBox displays text on the backglass or playfield.
type TextBox struct {
	Ver1           vpxtype.Vertex2D // VER1
	Ver2           vpxtype.Vertex2D // VER2
	BackColor      vpxtype.Color    // CLRB
	FontColor      vpxtype.Color    // CLRF
	IntensityScale float32          // INSC
	Text           biff.String      // TEXT
	TimerEnabled   bool             // TMON
	TimerInterval  int32            // TMIN
	Align          uint32           // ALGN
	IsTransparent  bool             // TRNS
	IsDMD          *bool            // IDMD
	Font           vpxtype.Font     // FONT

	Common
}

func NewTextBox() *TextBox {
	return &TextBox{
		Ver2:           vpxtype.Vertex2D{X: 100, Y: 50},
		FontColor:      vpxtype.RGB(255, 255, 255),
		IntensityScale: 1,
		Text:           biff.NewString("0"),
		TimerInterval:  100,
		Align:          uint32(AlignRight),
		Font:           vpxtype.DefaultFont,
	}
}

func (*TextBox) Type() Type { return TypeTextBox }

func (t *TextBox) fields() []biff.Field {
	f := []biff.Field{
		vertex2D("VER1", &t.Ver1),
		vertex2D("VER2", &t.Ver2),
		color("CLRB", &t.BackColor),
		color("CLRF", &t.FontColor),
		biff.F32("INSC", &t.IntensityScale),
		biff.Str("TEXT", &t.Text),
		biff.Bool("TMON", &t.TimerEnabled),
		biff.I32("TMIN", &t.TimerInterval),
		biff.Wide("NAME", &t.Name),
		biff.U32("ALGN", &t.Align),
		biff.Bool("TRNS", &t.IsTransparent),
		biff.Optional("IDMD", &t.IsDMD, biff.Bool),
	}
	f = append(f, t.Editor.fields()...)
	return append(f, font("FONT", &t.Font))
}
