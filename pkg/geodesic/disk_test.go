package geodesic

import (
	"testing"

	"github.com/theRealZauberwuerfel/blackstar/pkg/core"
	"github.com/theRealZauberwuerfel/blackstar/pkg/scene"
)

func shadingDisk() scene.Disk {
	return scene.Disk{
		InnerRadius: 2,
		OuterRadius: 10,
		Brightness:  1,
		Falloff:     2,
		Hue:         35,
		Saturation:  0.5,
	}
}

func diskResult(point core.Vec3, rayDir core.Vec3) Result {
	return Result{
		Status:     DiskHit,
		DiskPoint:  point,
		DiskRadius: point.Length(),
		RayDir:     rayDir.Normalize(),
	}
}

func TestShadeDisk_BrightnessFallsOffWithRadius(t *testing.T) {
	d := shadingDisk()

	near := ShadeDisk(d, 1, diskResult(core.NewVec3(3, 0, 0), core.NewVec3(0, -1, 0)))
	far := ShadeDisk(d, 1, diskResult(core.NewVec3(8, 0, 0), core.NewVec3(0, -1, 0)))

	if near.Luminance() <= far.Luminance() {
		t.Errorf("Inner disk should outshine the outer disk: near %v, far %v",
			near.Luminance(), far.Luminance())
	}
}

func TestShadeDisk_EdgesFadeToBlack(t *testing.T) {
	d := shadingDisk()

	inner := ShadeDisk(d, 1, diskResult(core.NewVec3(d.InnerRadius, 0, 0), core.NewVec3(0, -1, 0)))
	outer := ShadeDisk(d, 1, diskResult(core.NewVec3(d.OuterRadius, 0, 0), core.NewVec3(0, -1, 0)))

	if inner.Luminance() > 1e-9 {
		t.Errorf("Inner rim should fade to black, got luminance %v", inner.Luminance())
	}
	if outer.Luminance() > 1e-9 {
		t.Errorf("Outer rim should fade to black, got luminance %v", outer.Luminance())
	}
}

func TestShadeDisk_DopplerSkewsOpposingSides(t *testing.T) {
	d := shadingDisk()
	d.Doppler = 40
	ray := core.NewVec3(0, 0, 1)

	left := ShadeDisk(d, 1, diskResult(core.NewVec3(-5, 0, 0), ray))
	right := ShadeDisk(d, 1, diskResult(core.NewVec3(5, 0, 0), ray))

	if left.Subtract(right).Length() < 1e-9 {
		t.Error("Opposing disk sides should differ in color under Doppler skew")
	}

	d.Doppler = 0
	left = ShadeDisk(d, 1, diskResult(core.NewVec3(-5, 0, 0), ray))
	right = ShadeDisk(d, 1, diskResult(core.NewVec3(5, 0, 0), ray))
	if left.Subtract(right).Length() > 1e-9 {
		t.Error("Without Doppler skew, opposing sides at equal radius should match")
	}
}

func TestShadeDisk_DegenerateRadiusIsBlack(t *testing.T) {
	d := shadingDisk()
	res := Result{Status: DiskHit, DiskPoint: core.Vec3{}, DiskRadius: 0}
	if got := ShadeDisk(d, 1, res); got != (core.Vec3{}) {
		t.Errorf("Zero crossing radius should shade black, got %v", got)
	}
}

func TestSmoothstep_Bounds(t *testing.T) {
	if got := smoothstep(0, 1, -0.5); got != 0 {
		t.Errorf("Below edge0 should be 0, got %v", got)
	}
	if got := smoothstep(0, 1, 1.5); got != 1 {
		t.Errorf("Above edge1 should be 1, got %v", got)
	}
	if got := smoothstep(0, 1, 0.5); got != 0.5 {
		t.Errorf("Midpoint should be 0.5, got %v", got)
	}
	if got := smoothstep(1, 1, 2); got != 1 {
		t.Errorf("Degenerate edges above should be 1, got %v", got)
	}
}
