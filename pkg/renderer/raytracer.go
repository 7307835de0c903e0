package renderer

import (
	"github.com/theRealZauberwuerfel/blackstar/pkg/core"
	"github.com/theRealZauberwuerfel/blackstar/pkg/geodesic"
	"github.com/theRealZauberwuerfel/blackstar/pkg/scene"
	"github.com/theRealZauberwuerfel/blackstar/pkg/starfield"
)

// Raytracer resolves single pixels: it derives the initial photon state
// from the camera, drives the geodesic integrator to termination and turns
// the terminal classification into a color. It holds no mutable state
// between pixels, so one instance per worker is purely a convenience.
type Raytracer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator *geodesic.Integrator
	sampler    *starfield.Sampler
	holePos    core.Vec3
}

// Fixed 2x2 sub-pixel offset grid used when supersampling is enabled.
var superSampleOffsets = [][2]float64{
	{0.25, 0.25}, {0.75, 0.25},
	{0.25, 0.75}, {0.75, 0.75},
}

// NewRaytracer creates a per-pixel tracer for a validated scene and a
// pre-built star index.
func NewRaytracer(sc *scene.Scene, index *starfield.Index) *Raytracer {
	return &Raytracer{
		scene:      sc,
		camera:     NewCameraFromScene(sc),
		integrator: geodesic.NewIntegrator(sc),
		sampler:    starfield.NewSampler(index, sc.Stars),
		holePos:    sc.BlackHole.Position.Vec(),
	}
}

// TracePixel produces the final color for pixel (i, j), averaging the
// supersample grid when enabled. The status counts of every traced ray are
// accumulated into tally.
func (rt *Raytracer) TracePixel(i, j int, tally *RayTally) core.Vec3 {
	if !rt.scene.Options.Supersample {
		return rt.traceOne(i, j, 0.5, 0.5, tally)
	}

	var accum core.Vec3
	for _, off := range superSampleOffsets {
		accum = accum.Add(rt.traceOne(i, j, off[0], off[1], tally))
	}
	return accum.Multiply(1.0 / float64(len(superSampleOffsets)))
}

// traceOne integrates a single ray and resolves its terminal state.
func (rt *Raytracer) traceOne(i, j int, du, dv float64, tally *RayTally) core.Vec3 {
	ray := rt.camera.GetRay(i, j, du, dv)

	// Shift into the frame centered on the gravitational body.
	state := geodesic.NewState(ray.Origin.Subtract(rt.holePos), ray.Direction)
	res := rt.integrator.Trace(state)
	tally.count(res.Status)

	switch res.Status {
	case geodesic.Captured:
		return core.Vec3{}
	case geodesic.DiskHit:
		return geodesic.ShadeDisk(rt.scene.Disk, rt.integrator.Horizon(), res)
	default:
		// Escaped, or exhausted and treated the same way.
		if color, ok := rt.sampler.Sample(res.Direction); ok {
			return color
		}
		return core.Vec3{}
	}
}

// RayTally counts terminal classifications for one worker's rays.
type RayTally struct {
	Captured  int
	DiskHits  int
	Escaped   int
	Exhausted int
}

func (t *RayTally) count(s geodesic.Status) {
	switch s {
	case geodesic.Captured:
		t.Captured++
	case geodesic.DiskHit:
		t.DiskHits++
	case geodesic.Escaped:
		t.Escaped++
	case geodesic.Exhausted:
		t.Exhausted++
	}
}

// Total returns the number of rays counted.
func (t *RayTally) Total() int {
	return t.Captured + t.DiskHits + t.Escaped + t.Exhausted
}

// add merges another tally into this one.
func (t *RayTally) add(other RayTally) {
	t.Captured += other.Captured
	t.DiskHits += other.DiskHits
	t.Escaped += other.Escaped
	t.Exhausted += other.Exhausted
}
