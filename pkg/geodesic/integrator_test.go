package geodesic

import (
	"math"
	"testing"

	"github.com/theRealZauberwuerfel/blackstar/pkg/core"
	"github.com/theRealZauberwuerfel/blackstar/pkg/scene"
)

// testScene returns a descriptor with a unit horizon and no disk.
func testScene() *scene.Scene {
	sc := scene.Default()
	sc.BlackHole = scene.BlackHole{HorizonRadius: 1.0}
	sc.Disk = scene.Disk{} // disabled
	sc.Limits = scene.Limits{EscapeRadius: 40, MaxSteps: 8000, InitialStep: 0.05}
	return &sc
}

func TestTrace_InsideHorizonIsCapturedImmediately(t *testing.T) {
	it := NewIntegrator(testScene())

	state := NewState(core.NewVec3(0.5, 0, 0), core.NewVec3(1, 0, 0))
	res := it.Trace(state)

	if res.Status != Captured {
		t.Errorf("Expected captured, got %v", res.Status)
	}
	if res.Steps != 0 {
		t.Errorf("Expected no steps for a state already inside the horizon, got %d", res.Steps)
	}
}

func TestTrace_NonFiniteStateIsCaptured(t *testing.T) {
	it := NewIntegrator(testScene())

	tests := []struct {
		name  string
		state State
	}{
		{"NaN position", NewState(core.NewVec3(math.NaN(), 0, 0), core.NewVec3(0, 0, 1))},
		{"Inf direction", NewState(core.NewVec3(5, 0, 0), core.NewVec3(math.Inf(1), 0, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if res := it.Trace(tt.state); res.Status != Captured {
				t.Errorf("Expected captured, got %v", res.Status)
			}
		})
	}
}

func TestTrace_RadialInfallIsCaptured(t *testing.T) {
	it := NewIntegrator(testScene())

	// Aimed straight at the center: zero angular momentum, no deflection.
	state := NewState(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1))
	res := it.Trace(state)

	if res.Status != Captured {
		t.Errorf("Expected radial infall to be captured, got %v after %d steps", res.Status, res.Steps)
	}
}

func TestTrace_BeyondEscapeRadiusEscapesOnFirstStep(t *testing.T) {
	it := NewIntegrator(testScene())

	state := NewState(core.NewVec3(0, 0, 41), core.NewVec3(0, 0, 1))
	res := it.Trace(state)

	if res.Status != Escaped {
		t.Errorf("Expected escaped, got %v", res.Status)
	}
	if res.Steps > 1 {
		t.Errorf("Expected escape on or before the first step, took %d", res.Steps)
	}
	if math.Abs(res.Direction.Length()-1) > 1e-9 {
		t.Errorf("Terminal direction should be normalized, length %v", res.Direction.Length())
	}
}

func TestTrace_StepCountNeverExceedsMaximum(t *testing.T) {
	sc := testScene()
	sc.Limits.MaxSteps = 25
	it := NewIntegrator(sc)

	// A tight tangential ray that cannot resolve in 25 steps.
	state := NewState(core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 1))
	res := it.Trace(state)

	if res.Steps > sc.Limits.MaxSteps {
		t.Errorf("Took %d steps, limit is %d", res.Steps, sc.Limits.MaxSteps)
	}
	if res.Status == Exhausted && res.Direction.Length() == 0 {
		t.Error("Exhausted rays must still carry a terminal direction")
	}
}

func TestTrace_GrazingRayIsDeflected(t *testing.T) {
	it := NewIntegrator(testScene())

	// Passes the hole at a few horizon radii: must escape, but bent.
	initial := core.NewVec3(0, 0, 1)
	state := NewState(core.NewVec3(4, 0, -30), initial)
	res := it.Trace(state)

	if res.Status != Escaped {
		t.Fatalf("Expected grazing ray to escape, got %v", res.Status)
	}
	if res.Direction.Dot(initial) > 0.99999 {
		t.Errorf("Expected measurable deflection, terminal direction %v", res.Direction)
	}
}

func TestTrace_DistantRayIsBarelyDeflected(t *testing.T) {
	sc := testScene()
	sc.Limits.EscapeRadius = 100
	it := NewIntegrator(sc)

	initial := core.NewVec3(0, 0, 1)
	state := NewState(core.NewVec3(60, 0, -60), initial)
	res := it.Trace(state)

	if res.Status != Escaped {
		t.Fatalf("Expected distant ray to escape, got %v", res.Status)
	}
	if res.Direction.Dot(initial) < 0.999 {
		t.Errorf("Far-field ray should travel almost straight, terminal direction %v", res.Direction)
	}
}

func TestTrace_DisabledDiskNeverReportsDiskHit(t *testing.T) {
	tests := []struct {
		name string
		disk scene.Disk
	}{
		{"inner >= outer", scene.Disk{InnerRadius: 8, OuterRadius: 2, Brightness: 1}},
		{"zero brightness", scene.Disk{InnerRadius: 2, OuterRadius: 8, Brightness: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := testScene()
			sc.Disk = tt.disk
			it := NewIntegrator(sc)

			// Rays that cross the equatorial plane inside the annulus.
			for x := -8.0; x <= 8.0; x += 1.0 {
				state := NewState(core.NewVec3(x, 3, 0), core.NewVec3(0, -1, 0.2))
				res := it.Trace(state)
				if res.Status == DiskHit {
					t.Fatalf("Disabled disk produced a disk hit at x=%v", x)
				}
			}
		})
	}
}

func TestTrace_DiskCrossingInterpolation(t *testing.T) {
	sc := testScene()
	// Nearly flat space so the ray travels straight through the plane.
	sc.BlackHole.HorizonRadius = 1e-3
	sc.Disk = scene.Disk{InnerRadius: 1, OuterRadius: 10, Brightness: 1, Falloff: 2}
	it := NewIntegrator(sc)

	state := NewState(core.NewVec3(5, 1, -1), core.NewVec3(0, -1, 0))
	res := it.Trace(state)

	if res.Status != DiskHit {
		t.Fatalf("Expected disk hit, got %v", res.Status)
	}
	if math.Abs(res.DiskPoint.Y) > 1e-6 {
		t.Errorf("Crossing point should lie on the equatorial plane, y=%v", res.DiskPoint.Y)
	}
	wantRadius := math.Sqrt(26)
	if math.Abs(res.DiskRadius-wantRadius) > 1e-3 {
		t.Errorf("Expected crossing radius %v, got %v", wantRadius, res.DiskRadius)
	}
}

func TestTrace_CrossingOutsideAnnulusIsNotADiskHit(t *testing.T) {
	sc := testScene()
	sc.BlackHole.HorizonRadius = 1e-3
	sc.Disk = scene.Disk{InnerRadius: 2, OuterRadius: 4, Brightness: 1}
	it := NewIntegrator(sc)

	// Crosses the plane at radius ~8, outside the annulus, then escapes.
	state := NewState(core.NewVec3(8, 1, 0), core.NewVec3(0, -1, 0.1))
	res := it.Trace(state)

	if res.Status == DiskHit {
		t.Errorf("Crossing at radius 8 must not hit a [2,4] disk")
	}
}

func TestStepSize_ShrinksNearHorizon(t *testing.T) {
	it := NewIntegrator(testScene())

	near := it.stepSize(1.05)
	mid := it.stepSize(3.0)
	far := it.stepSize(30.0)

	if near >= mid {
		t.Errorf("Step near the horizon (%v) should be smaller than at mid range (%v)", near, mid)
	}
	if mid > far {
		t.Errorf("Step should not shrink with distance: mid %v, far %v", mid, far)
	}
	if far > it.stepMax {
		t.Errorf("Step %v exceeds cap %v", far, it.stepMax)
	}
	if near < it.stepMin {
		t.Errorf("Step %v dropped below floor %v", near, it.stepMin)
	}
}
