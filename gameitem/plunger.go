package gameitem

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

// PlungerType selects how a plunger is rendered.
type PlungerType uint32

const (
	PlungerModern PlungerType = 1
	PlungerFlat   PlungerType = 2
	PlungerCustom PlungerType = 3
)

// DefaultTipShape is the tip profile of a new custom plunger, as pairs of
// offset and diameter.
const DefaultTipShape = "0 .34; 2 .6; 3 .64; 5 .7; 7 .84; 8 .88; 9 .9; 11 .92; 14 .92; 39 .84"

type Plunger struct {
	Center              vpxtype.Vertex2D // VCEN
	Width               float32          // WDTH
	Height              float32          // HIGH
	ZAdjust             float32          // ZADJ
	Stroke              float32          // HPSL
	SpeedPull           float32          // SPDP
	SpeedFire           float32          // SPDF
	PlungerType         uint32           // TYPE
	AnimFrames          uint32           // ANFR
	Material            biff.String      // MATR
	Image               biff.String      // IMAG
	MechStrength        float32          // MEST
	IsMechPlunger       bool             // MECH
	AutoPlunger         bool             // APLG
	ParkPosition        float32          // MPRK
	ScatterVelocity     float32          // PSCV
	MomentumXfer        float32          // MOMX
	TimerEnabled        bool             // TMON
	TimerInterval       int32            // TMIN
	IsVisible           bool             // VSBL
	IsReflectionEnabled *bool            // REEN
	Surface             biff.String      // SURF
	TipShape            biff.String      // TIPS
	RodDiam             float32          // RODD
	RingGap             float32          // RNGG
	RingDiam            float32          // RNGD
	RingWidth           float32          // RNGW
	SpringDiam          float32          // SPRD
	SpringGauge         float32          // SPRG
	SpringLoops         float32          // SPRL
	SpringEndLoops      float32          // SPRE

	Common
}

func NewPlunger() *Plunger {
	return &Plunger{
		Width:          25,
		Height:         20,
		Stroke:         80,
		SpeedPull:      0.5,
		SpeedFire:      80,
		PlungerType:    uint32(PlungerModern),
		AnimFrames:     1,
		MechStrength:   85,
		ParkPosition:   0.5 / 3,
		MomentumXfer:   1,
		TimerInterval:  100,
		IsVisible:      true,
		TipShape:       biff.NewString(DefaultTipShape),
		RodDiam:        0.6,
		RingGap:        2,
		RingDiam:       0.94,
		RingWidth:      3,
		SpringDiam:     0.77,
		SpringGauge:    1.38,
		SpringLoops:    8,
		SpringEndLoops: 2.5,
	}
}

func (*Plunger) Type() Type { return TypePlunger }

func (p *Plunger) fields() []biff.Field {
	return append([]biff.Field{
		vertex2D("VCEN", &p.Center),
		biff.F32("WDTH", &p.Width),
		biff.F32("HIGH", &p.Height),
		biff.F32("ZADJ", &p.ZAdjust),
		biff.F32("HPSL", &p.Stroke),
		biff.F32("SPDP", &p.SpeedPull),
		biff.F32("SPDF", &p.SpeedFire),
		biff.U32("TYPE", &p.PlungerType),
		biff.U32("ANFR", &p.AnimFrames),
		biff.Str("MATR", &p.Material),
		biff.Str("IMAG", &p.Image),
		biff.F32("MEST", &p.MechStrength),
		biff.Bool("MECH", &p.IsMechPlunger),
		biff.Bool("APLG", &p.AutoPlunger),
		biff.F32("MPRK", &p.ParkPosition),
		biff.F32("PSCV", &p.ScatterVelocity),
		biff.F32("MOMX", &p.MomentumXfer),
		biff.Bool("TMON", &p.TimerEnabled),
		biff.I32("TMIN", &p.TimerInterval),
		biff.Bool("VSBL", &p.IsVisible),
		biff.Optional("REEN", &p.IsReflectionEnabled, biff.Bool),
		biff.Str("SURF", &p.Surface),
		biff.Wide("NAME", &p.Name),
		biff.Str("TIPS", &p.TipShape),
		biff.F32("RODD", &p.RodDiam),
		biff.F32("RNGG", &p.RingGap),
		biff.F32("RNGD", &p.RingDiam),
		biff.F32("RNGW", &p.RingWidth),
		biff.F32("SPRD", &p.SpringDiam),
		biff.F32("SPRG", &p.SpringGauge),
		biff.F32("SPRL", &p.SpringLoops),
		biff.F32("SPRE", &p.SpringEndLoops),
	}, p.Editor.fields()...)
}
