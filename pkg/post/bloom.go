// Package post applies image-space post-processing to finished frames.
// It only ever consumes a completed color buffer; the render core never
// depends on it.
package post

import (
	"image"
	"math"

	"github.com/theRealZauberwuerfel/blackstar/pkg/scene"
)

// Bloom adds a light-bleed halo around bright pixels: pixels whose
// luminance exceeds the threshold are extracted, blurred with a separable
// Gaussian of the configured radius, and blended back scaled by strength.
// The result is always a new image, never an alias of the input; a radius
// or strength of zero yields an unmodified copy.
func Bloom(img *image.RGBA, cfg scene.Bloom) *image.RGBA {
	if cfg.Radius <= 0 || cfg.Strength <= 0 {
		out := image.NewRGBA(img.Bounds())
		copy(out.Pix, img.Pix)
		return out
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Bright-pass into a linear float buffer, one triple per pixel.
	bright := make([]float64, w*h*3)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			c := img.RGBAAt(bounds.Min.X+i, bounds.Min.Y+j)
			r := float64(c.R) / 255
			g := float64(c.G) / 255
			b := float64(c.B) / 255
			if 0.2126*r+0.7152*g+0.0722*b < cfg.Threshold {
				continue
			}
			idx := (j*w + i) * 3
			bright[idx], bright[idx+1], bright[idx+2] = r, g, b
		}
	}

	kernel := gaussianKernel(cfg.Radius)
	tmp := make([]float64, len(bright))
	blurPass(bright, tmp, w, h, kernel, true)
	blurPass(tmp, bright, w, h, kernel, false)

	out := image.NewRGBA(bounds)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			c := img.RGBAAt(bounds.Min.X+i, bounds.Min.Y+j)
			idx := (j*w + i) * 3
			c.R = addChannel(c.R, bright[idx]*cfg.Strength)
			c.G = addChannel(c.G, bright[idx+1]*cfg.Strength)
			c.B = addChannel(c.B, bright[idx+2]*cfg.Strength)
			out.SetRGBA(bounds.Min.X+i, bounds.Min.Y+j, c)
		}
	}
	return out
}

func addChannel(base uint8, add float64) uint8 {
	v := float64(base) + 255*add
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// gaussianKernel returns a normalized 1D kernel of half-width radius with
// sigma = radius/2.
func gaussianKernel(radius int) []float64 {
	sigma := float64(radius) / 2
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range kernel {
		x := float64(i - radius)
		kernel[i] = math.Exp(-x * x / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// blurPass convolves one axis of a packed RGB float buffer.
func blurPass(src, dst []float64, w, h int, kernel []float64, horizontal bool) {
	radius := (len(kernel) - 1) / 2
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			var r, g, b float64
			for k := -radius; k <= radius; k++ {
				x, y := i, j
				if horizontal {
					x = clampInt(i+k, 0, w-1)
				} else {
					y = clampInt(j+k, 0, h-1)
				}
				idx := (y*w + x) * 3
				weight := kernel[k+radius]
				r += src[idx] * weight
				g += src[idx+1] * weight
				b += src[idx+2] * weight
			}
			idx := (j*w + i) * 3
			dst[idx], dst[idx+1], dst[idx+2] = r, g, b
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
