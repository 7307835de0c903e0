package starfield

import (
	"math"

	"github.com/theRealZauberwuerfel/blackstar/pkg/core"
	"github.com/theRealZauberwuerfel/blackstar/pkg/scene"
)

// Sampling radius on the unit sphere, squared. A star contributes nothing
// beyond this angular distance; inside it a Gaussian falloff turns each
// star into a small soft disc instead of an aliased point light.
const (
	sampleRadiusSq = 1.0e-4
	// Gaussian sigma² chosen so the falloff reaches ~1% at the radius.
	falloffSigmaSq = sampleRadiusSq / 9.0
)

// Sampler resolves escaped ray directions against a star index. It is pure
// and deterministic: the same direction against the same index always
// yields the same color.
type Sampler struct {
	index      *Index
	intensity  float64
	saturation float64
	fluxFaint  float64
	fluxBright float64
}

// NewSampler builds a sampler over the given index using the scene's star
// field options.
func NewSampler(index *Index, opts scene.Stars) *Sampler {
	return &Sampler{
		index:      index,
		intensity:  opts.Intensity,
		saturation: opts.Saturation,
		fluxFaint:  magFlux(opts.MagFaint),
		fluxBright: magFlux(opts.MagBright),
	}
}

// Sample returns the starlight color along a unit escape direction. The
// boolean is false when no star lies within the sampling radius, in which
// case the contribution is fully transparent background.
func (sp *Sampler) Sample(dir core.Vec3) (core.Vec3, bool) {
	star, d2, ok := sp.index.Nearest(dir)
	if !ok || d2 > sampleRadiusSq {
		return core.Vec3{}, false
	}

	value := math.Min(sp.brightness(star.Magnitude)*math.Exp(-d2/(2*falloffSigmaSq)), sp.intensity)
	sat := math.Min(star.Saturation*sp.saturation, 1.0)
	return core.HSV(star.Hue, sat, value), true
}

// brightness maps an apparent magnitude onto [0, 1] through the standard
// magnitude exponential, normalized between the two calibration points:
// full brightness at MagBright, zero at MagFaint. Stars dimmer than
// MagFaint contribute nothing. The calibration pair is configuration, not
// physics.
func (sp *Sampler) brightness(mag float64) float64 {
	b := (magFlux(mag) - sp.fluxFaint) / (sp.fluxBright - sp.fluxFaint)
	if b < 0 {
		return 0
	}
	if b > 1 {
		return 1
	}
	return b
}

// magFlux converts an apparent magnitude to relative flux.
func magFlux(mag float64) float64 {
	return math.Pow(10, -0.4*mag)
}
