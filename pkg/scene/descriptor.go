package scene

import (
	"github.com/theRealZauberwuerfel/blackstar/pkg/core"
)

// Vec3 is the JSON-facing vector form of a scene file.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec converts to the renderer's vector type.
func (v Vec3) Vec() core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

// Camera describes the viewpoint for a render.
type Camera struct {
	Position Vec3    `json:"position"`
	LookAt   Vec3    `json:"look_at"`
	Up       Vec3    `json:"up"`
	VFov     float64 `json:"vfov"`   // vertical field of view in degrees
	Width    int     `json:"width"`  // output width in pixels
	Height   int     `json:"height"` // output height in pixels
}

// BlackHole describes the gravitational body. The horizon (Schwarzschild)
// radius may be given directly or derived from the mass parameter as 2M
// in geometric units.
type BlackHole struct {
	Position      Vec3    `json:"position"`
	Mass          float64 `json:"mass"`
	HorizonRadius float64 `json:"horizon_radius"`
}

// Horizon returns the effective horizon radius.
func (bh BlackHole) Horizon() float64 {
	if bh.HorizonRadius > 0 {
		return bh.HorizonRadius
	}
	return 2 * bh.Mass
}

// Disk describes the accretion disk in the equatorial plane of the hole.
// The disk is disabled when InnerRadius >= OuterRadius or Brightness == 0.
type Disk struct {
	InnerRadius float64 `json:"inner_radius"`
	OuterRadius float64 `json:"outer_radius"`
	Brightness  float64 `json:"brightness"` // peak brightness at the inner edge
	Falloff     float64 `json:"falloff"`    // inverse-power exponent of the radial falloff
	Hue         float64 `json:"hue"`        // base hue in degrees
	Saturation  float64 `json:"saturation"`
	Doppler     float64 `json:"doppler"` // hue skew per unit line-of-sight orbital velocity
}

// Enabled reports whether the disk participates in ray classification.
func (d Disk) Enabled() bool {
	return d.InnerRadius < d.OuterRadius && d.Brightness > 0
}

// Limits bounds the geodesic integration.
type Limits struct {
	EscapeRadius float64 `json:"escape_radius"`
	MaxSteps     int     `json:"max_steps"`
	InitialStep  float64 `json:"initial_step"`
}

// Stars controls how escaped rays are resolved against the star field.
// MagFaint and MagBright calibrate the magnitude-to-brightness mapping:
// stars at MagFaint are barely visible, stars at MagBright render at full
// intensity. Their exact values are an empirical tuning choice.
type Stars struct {
	Intensity  float64 `json:"intensity"`
	Saturation float64 `json:"saturation"`
	MagFaint   float64 `json:"mag_faint"`
	MagBright  float64 `json:"mag_bright"`
}

// Bloom parameters are carried in the descriptor but consumed only by the
// post-processing stage.
type Bloom struct {
	Threshold float64 `json:"threshold"`
	Radius    int     `json:"radius"`
	Strength  float64 `json:"strength"`
}

// Options holds rendering toggles outside the physical model.
type Options struct {
	Supersample bool  `json:"supersample"`
	Bloom       Bloom `json:"bloom"`
}

// Scene is the full immutable descriptor consumed by the frame renderer.
// It is validated once at load time; the hot path trusts its values.
type Scene struct {
	Camera    Camera    `json:"camera"`
	BlackHole BlackHole `json:"black_hole"`
	Disk      Disk      `json:"disk"`
	Limits    Limits    `json:"limits"`
	Stars     Stars     `json:"stars"`
	Options   Options   `json:"options"`
}

// Default returns a descriptor that renders a centered hole with a thin
// disk and a visible star field, suitable as a starting point for configs.
func Default() Scene {
	return Scene{
		Camera: Camera{
			Position: Vec3{X: 0, Y: 1.5, Z: -20},
			LookAt:   Vec3{X: 0, Y: 0, Z: 0},
			Up:       Vec3{X: 0, Y: 1, Z: 0},
			VFov:     50,
			Width:    640,
			Height:   360,
		},
		BlackHole: BlackHole{HorizonRadius: 1.0},
		Disk: Disk{
			InnerRadius: 2.6,
			OuterRadius: 9.0,
			Brightness:  1.0,
			Falloff:     2.0,
			Hue:         35,
			Saturation:  0.45,
			Doppler:     25,
		},
		Limits: Limits{
			EscapeRadius: 40,
			MaxSteps:     8000,
			InitialStep:  0.08,
		},
		Stars: Stars{
			Intensity:  1.0,
			Saturation: 0.7,
			MagFaint:   6.5,
			MagBright:  -1.5,
		},
		Options: Options{
			Supersample: false,
			Bloom:       Bloom{Threshold: 0.85, Radius: 8, Strength: 0.6},
		},
	}
}
