package gameitem

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

// DispReel is an EM style score reel shown on the backglass.
type DispReel struct {
	Ver1             vpxtype.Vertex2D // VER1
	Ver2             vpxtype.Vertex2D // VER2
	BackColor        vpxtype.Color    // CLRB
	TimerEnabled     bool             // TMON
	TimerInterval    int32            // TMIN
	IsTransparent    bool             // TRNS
	Image            biff.String      // IMAG
	Sound            biff.String      // SOUN
	UseImageGrid     bool             // UGRD
	IsVisible        bool             // VISI
	ImagesPerGridRow uint32           // GIPR
	Range            uint32           // RANG
	UpdateInterval   uint32           // UPTM
	Width            float32          // WDTH
	Height           float32          // HIGH
	ReelCount        uint32           // RCNT
	ReelSpacing      float32          // RSPC
	MotorSteps       uint32           // MSTP

	Common
}

func NewDispReel() *DispReel {
	return &DispReel{
		BackColor:        vpxtype.RGB(64, 64, 64),
		TimerInterval:    100,
		IsVisible:        true,
		ImagesPerGridRow: 1,
		Range:            9,
		UpdateInterval:   50,
		Width:            30,
		Height:           40,
		ReelCount:        5,
		ReelSpacing:      4,
		MotorSteps:       2,
	}
}

func (*DispReel) Type() Type { return TypeDispReel }

func (d *DispReel) fields() []biff.Field {
	return append([]biff.Field{
		vertex2D("VER1", &d.Ver1),
		vertex2D("VER2", &d.Ver2),
		color("CLRB", &d.BackColor),
		biff.Bool("TMON", &d.TimerEnabled),
		biff.I32("TMIN", &d.TimerInterval),
		biff.Wide("NAME", &d.Name),
		biff.Bool("TRNS", &d.IsTransparent),
		biff.Str("IMAG", &d.Image),
		biff.Str("SOUN", &d.Sound),
		biff.Bool("UGRD", &d.UseImageGrid),
		biff.Bool("VISI", &d.IsVisible),
		biff.U32("GIPR", &d.ImagesPerGridRow),
		biff.U32("RANG", &d.Range),
		biff.U32("UPTM", &d.UpdateInterval),
		biff.F32("WDTH", &d.Width),
		biff.F32("HIGH", &d.Height),
		biff.U32("RCNT", &d.ReelCount),
		biff.F32("RSPC", &d.ReelSpacing),
		biff.U32("MSTP", &d.MotorSteps),
	}, d.Editor.fields()...)
}
