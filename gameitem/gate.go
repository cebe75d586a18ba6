package gameitem

import (
	"math"

	"github.com/francisdb/vpxtool/biff"
	"github.com/francisdb/vpxtool/vpxtype"
)

// GateType selects the mesh of a gate.
type GateType uint32

const (
	GateWireW GateType = iota + 1
	GateWireRectangle
	GatePlate
	GateLongPlate
)

// Defaults of a newly placed gate.
const (
	DefaultGateLength        = 100
	DefaultGateHeight        = 50
	DefaultGateRotation      = -90
	DefaultGateElasticity    = 0.3
	DefaultGateFriction      = 0.02
	DefaultGateDamping       = 0.985
	DefaultGateGravityFactor = 0.25
	DefaultGateAngleMax      = math.Pi / 2
	DefaultGateAngleMin      = 0
	DefaultGateType          = GateWireRectangle
)

type Gate struct {
	Center              vpxtype.Vertex2D // VCEN
	Length              float32          // LGTH
	Height              float32          // HGTH
	Rotation            float32          // ROTA
	Material            biff.String      // MATR
	TimerEnabled        bool             // TMON
	ShowBracket         bool             // GSUP
	IsCollidable        bool             // GCOL
	TimerInterval       int32            // TMIN
	Surface             biff.String      // SURF
	Elasticity          float32          // ELAS
	AngleMax            float32          // GAMA
	AngleMin            float32          // GAMI
	Friction            float32          // GFRC
	Damping             float32          // AFRC
	GravityFactor       float32          // GGFC
	IsVisible           bool             // GVSB
	TwoWay              bool             // TWWA
	IsReflectionEnabled *bool            // REEN
	GateType            uint32           // GATY

	Common
}

func NewGate() *Gate {
	return &Gate{
		Length:        DefaultGateLength,
		Height:        DefaultGateHeight,
		Rotation:      DefaultGateRotation,
		ShowBracket:   true,
		IsCollidable:  true,
		TimerInterval: 100,
		Elasticity:    DefaultGateElasticity,
		AngleMax:      DefaultGateAngleMax,
		AngleMin:      DefaultGateAngleMin,
		Friction:      DefaultGateFriction,
		Damping:       DefaultGateDamping,
		GravityFactor: DefaultGateGravityFactor,
		IsVisible:     true,
		GateType:      uint32(DefaultGateType),
	}
}

func (*Gate) Type() Type { return TypeGate }

func (g *Gate) fields() []biff.Field {
	return append([]biff.Field{
		vertex2D("VCEN", &g.Center),
		biff.F32("LGTH", &g.Length),
		biff.F32("HGTH", &g.Height),
		biff.F32("ROTA", &g.Rotation),
		biff.Str("MATR", &g.Material),
		biff.Bool("TMON", &g.TimerEnabled),
		biff.Bool("GSUP", &g.ShowBracket),
		biff.Bool("GCOL", &g.IsCollidable),
		biff.I32("TMIN", &g.TimerInterval),
		biff.Str("SURF", &g.Surface),
		biff.Wide("NAME", &g.Name),
		biff.F32("ELAS", &g.Elasticity),
		biff.F32("GAMA", &g.AngleMax),
		biff.F32("GAMI", &g.AngleMin),
		biff.F32("GFRC", &g.Friction),
		biff.F32("AFRC", &g.Damping),
		biff.F32("GGFC", &g.GravityFactor),
		biff.Bool("GVSB", &g.IsVisible),
		biff.Bool("TWWA", &g.TwoWay),
		biff.Optional("REEN", &g.IsReflectionEnabled, biff.Bool),
		biff.U32("GATY", &g.GateType),
	}, g.Editor.fields()...)
}
