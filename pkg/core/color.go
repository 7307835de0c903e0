package core

import (
	"image/color"
	"math"
)

// HSV converts a hue/saturation/value triple to a linear RGB color vector.
// Hue is in degrees and wraps modulo 360; saturation and value are in [0,1].
func HSV(hue, sat, val float64) Vec3 {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	sat = math.Min(math.Max(sat, 0), 1)

	c := val * sat
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := val - c

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Vec3{X: r + m, Y: g + m, Z: b + m}
}

// ToRGBA converts a linear color vector to an 8-bit RGBA value with gamma
// correction and clamping. Alpha is always fully opaque.
func ToRGBA(colorVec Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)
	colorVec = colorVec.GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
