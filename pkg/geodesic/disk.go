package geodesic

import (
	"math"

	"github.com/theRealZauberwuerfel/blackstar/pkg/core"
	"github.com/theRealZauberwuerfel/blackstar/pkg/scene"
)

// ShadeDisk converts a disk crossing into a linear RGB color. The model is
// empirical, not radiative transport: brightness follows an inverse-power
// falloff from the inner edge, softened near both rims, and the hue is
// skewed by the line-of-sight component of the local Keplerian orbital
// velocity (the approaching side renders hotter).
func ShadeDisk(d scene.Disk, horizon float64, res Result) core.Vec3 {
	r := res.DiskRadius
	if r <= 0 {
		return core.Vec3{}
	}

	brightness := d.Brightness * math.Pow(d.InnerRadius/r, d.Falloff)

	// Soften the annulus edges over 5% of the disk width each.
	width := d.OuterRadius - d.InnerRadius
	edge := 0.05 * width
	brightness *= smoothstep(d.InnerRadius, d.InnerRadius+edge, r)
	brightness *= 1 - smoothstep(d.OuterRadius-edge, d.OuterRadius, r)

	hue := d.Hue
	if d.Doppler != 0 {
		// Circular Keplerian orbit in the equatorial plane: speed
		// sqrt(rs/2r) in geometric units, tangential direction.
		orbital := core.NewVec3(0, 1, 0).Cross(res.DiskPoint).Normalize()
		lineOfSight := orbital.Dot(res.RayDir) * math.Sqrt(horizon/(2*r))
		hue += d.Doppler * lineOfSight
	}

	value := math.Min(brightness, 1.0)
	return core.HSV(hue, d.Saturation, value)
}

// smoothstep performs a Hermite interpolation between 0 and 1 across
// [edge0, edge1].
func smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}
