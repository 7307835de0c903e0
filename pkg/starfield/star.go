package starfield

import (
	"math"

	"github.com/theRealZauberwuerfel/blackstar/pkg/core"
)

// Star is one catalog entry: a unit direction on the celestial sphere, an
// apparent visual magnitude (lower = brighter), and a hue/saturation pair
// derived from its spectral class. Entries are immutable once indexed.
type Star struct {
	Direction  core.Vec3
	Magnitude  float64
	Hue        float64
	Saturation float64
}

// DirectionFromEquatorial converts J2000 right ascension / declination in
// degrees to a unit direction in the renderer's Y-up frame.
func DirectionFromEquatorial(raDeg, decDeg float64) core.Vec3 {
	ra := raDeg * math.Pi / 180
	dec := decDeg * math.Pi / 180
	return core.NewVec3(
		math.Cos(dec)*math.Cos(ra),
		math.Sin(dec),
		math.Cos(dec)*math.Sin(ra),
	)
}

// SpectralColor maps a spectral class letter (O B A F G K M) to the
// hue/saturation pair used when rendering the star. Unknown classes fall
// back to a neutral white.
func SpectralColor(class byte) (hue, sat float64) {
	switch class {
	case 'O':
		return 225, 0.35
	case 'B':
		return 220, 0.22
	case 'A':
		return 212, 0.10
	case 'F':
		return 200, 0.03
	case 'G':
		return 48, 0.15
	case 'K':
		return 35, 0.35
	case 'M':
		return 15, 0.55
	default:
		return 0, 0
	}
}

// NewStar builds an entry from catalog coordinates and spectral class.
func NewStar(raDeg, decDeg, mag float64, class byte) Star {
	hue, sat := SpectralColor(class)
	return Star{
		Direction:  DirectionFromEquatorial(raDeg, decDeg),
		Magnitude:  mag,
		Hue:        hue,
		Saturation: sat,
	}
}
