package gameitem

import (
	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

type Flipper struct {
	Center              vpxtype.Vertex2D // VCEN
	BaseRadius          float32          // BASR
	EndRadius           float32          // ENDR
	FlipperRadiusMax    float32          // FLPR
	Return              float32          // FRTN
	StartAngle          float32          // ANGS
	EndAngle            float32          // ANGE
	OverridePhysics     uint32           // OVRP
	Mass                float32          // FORC
	TimerEnabled        bool             // TMON
	TimerInterval       int32            // TMIN
	Surface             biff.String      // SURF
	Material            biff.String      // MATR
	RubberMaterial      biff.String      // RUMA
	RubberThickness     float32          // RTHF
	RubberHeight        float32          // RHGF
	RubberWidth         float32          // RWDF
	Strength            float32          // STRG
	Elasticity          float32          // ELAS
	ElasticityFalloff   float32          // ELFO
	Friction            float32          // FRIC
	RampUp              float32          // RPUP
	Scatter             float32          // SCTR
	TorqueDamping       float32          // TODA
	TorqueDampingAngle  float32          // TDAA
	FlipperRadiusMin    float32          // FRMN
	IsVisible           bool             // VSBL
	IsEnabled           bool             // ENBL
	Height              float32          // FHGT
	Image               biff.String      // IMAG
	IsReflectionEnabled *bool            // REEN

	Common
}

func NewFlipper() *Flipper {
	return &Flipper{
		BaseRadius:         21.5,
		EndRadius:          13,
		FlipperRadiusMax:   130,
		Return:             0.058,
		StartAngle:         121,
		EndAngle:           70,
		Mass:               1,
		TimerInterval:      100,
		RubberThickness:    7,
		RubberHeight:       19,
		RubberWidth:        24,
		Strength:           2200,
		Elasticity:         0.8,
		ElasticityFalloff:  0.43,
		Friction:           0.6,
		RampUp:             3,
		TorqueDamping:      0.75,
		TorqueDampingAngle: 6,
		IsVisible:          true,
		IsEnabled:          true,
		Height:             50,
	}
}

func (*Flipper) Type() Type { return TypeFlipper }

func (p *Flipper) fields() []biff.Field {
	return append([]biff.Field{
		vertex2D("VCEN", &p.Center),
		biff.F32("BASR", &p.BaseRadius),
		biff.F32("ENDR", &p.EndRadius),
		biff.F32("FLPR", &p.FlipperRadiusMax),
		biff.F32("FRTN", &p.Return),
		biff.F32("ANGS", &p.StartAngle),
		biff.F32("ANGE", &p.EndAngle),
		biff.U32("OVRP", &p.OverridePhysics),
		biff.F32("FORC", &p.Mass),
		biff.Bool("TMON", &p.TimerEnabled),
		biff.I32("TMIN", &p.TimerInterval),
		biff.Str("SURF", &p.Surface),
		biff.Str("MATR", &p.Material),
		biff.Wide("NAME", &p.Name),
		biff.Str("RUMA", &p.RubberMaterial),
		biff.F32("RTHF", &p.RubberThickness),
		biff.F32("RHGF", &p.RubberHeight),
		biff.F32("RWDF", &p.RubberWidth),
		biff.F32("STRG", &p.Strength),
		biff.F32("ELAS", &p.Elasticity),
		biff.F32("ELFO", &p.ElasticityFalloff),
		biff.F32("FRIC", &p.Friction),
		biff.F32("RPUP", &p.RampUp),
		biff.F32("SCTR", &p.Scatter),
		biff.F32("TODA", &p.TorqueDamping),
		biff.F32("TDAA", &p.TorqueDampingAngle),
		biff.F32("FRMN", &p.FlipperRadiusMin),
		biff.Bool("VSBL", &p.IsVisible),
		biff.Bool("ENBL", &p.IsEnabled),
		biff.F32("FHGT", &p.Height),
		biff.Str("IMAG", &p.Image),
		biff.Optional("REEN", &p.IsReflectionEnabled, biff.Bool),
	}, p.Editor.fields()...)
}
