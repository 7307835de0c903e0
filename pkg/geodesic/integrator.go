package geodesic

import (
	"math"

	"github.com/theRealZauberwuerfel/blackstar/pkg/core"
	"github.com/theRealZauberwuerfel/blackstar/pkg/scene"
)

// Integrator advances photon states through the Schwarzschild field until
// one of the four terminal conditions is met. It is stateless across rays
// and safe to share between workers.
type Integrator struct {
	horizon  float64
	escapeSq float64
	disk     scene.Disk
	maxSteps int

	stepInit float64
	stepMin  float64
	stepMax  float64
}

// Step-size bounds relative to the configured initial step. The floor keeps
// the strong-field region from stalling the ray; the cap bounds total cost
// in flat space.
const (
	stepFloorDiv = 64.0
	stepCapMul   = 4.0
)

// NewIntegrator builds an integrator from a validated scene descriptor.
func NewIntegrator(sc *scene.Scene) *Integrator {
	return &Integrator{
		horizon:  sc.BlackHole.Horizon(),
		escapeSq: sc.Limits.EscapeRadius * sc.Limits.EscapeRadius,
		disk:     sc.Disk,
		maxSteps: sc.Limits.MaxSteps,
		stepInit: sc.Limits.InitialStep,
		stepMin:  sc.Limits.InitialStep / stepFloorDiv,
		stepMax:  sc.Limits.InitialStep * stepCapMul,
	}
}

// Horizon returns the horizon radius the integrator classifies against.
func (it *Integrator) Horizon() float64 {
	return it.horizon
}

// derivative is the field-equation right-hand side d(state)/dλ.
//
// In Cartesian form the Schwarzschild null geodesic reduces to the
// pseudo-potential equation a = -(3/2)·rs·h²·x/r⁵ with h = |x × v| the
// conserved angular momentum of the ray. It depends only on the current
// position and direction, so it is a plain method rather than an
// interface: only one metric is in scope.
func (it *Integrator) derivative(pos, dir core.Vec3) (vel, acc core.Vec3) {
	r2 := pos.LengthSquared()
	if r2 <= 0 {
		return dir, core.Vec3{}
	}
	h2 := pos.Cross(dir).LengthSquared()
	r := math.Sqrt(r2)
	scale := -1.5 * it.horizon * h2 / (r2 * r2 * r)
	return dir, pos.Multiply(scale)
}

// rk4 advances the state by one classic fourth-order Runge-Kutta step of
// size h.
func (it *Integrator) rk4(s State, h float64) State {
	k1v, k1a := it.derivative(s.Position, s.Direction)
	k2v, k2a := it.derivative(
		s.Position.Add(k1v.Multiply(h/2)),
		s.Direction.Add(k1a.Multiply(h/2)))
	k3v, k3a := it.derivative(
		s.Position.Add(k2v.Multiply(h/2)),
		s.Direction.Add(k2a.Multiply(h/2)))
	k4v, k4a := it.derivative(
		s.Position.Add(k3v.Multiply(h)),
		s.Direction.Add(k3a.Multiply(h)))

	sixth := h / 6.0
	return State{
		Position: s.Position.Add(
			k1v.Add(k2v.Multiply(2)).Add(k3v.Multiply(2)).Add(k4v).Multiply(sixth)),
		Direction: s.Direction.Add(
			k1a.Add(k2a.Multiply(2)).Add(k3a.Multiply(2)).Add(k4a).Multiply(sixth)),
		Affine: s.Affine + h,
	}
}

// stepSize adapts the step to the distance above the horizon: small where
// the field is strong, capped where it is weak.
func (it *Integrator) stepSize(r float64) float64 {
	h := it.stepInit * (r - it.horizon) / (2 * it.horizon)
	if h < it.stepMin {
		return it.stepMin
	}
	if h > it.stepMax {
		return it.stepMax
	}
	return h
}

// Trace integrates one photon to termination. It never fails: every ray
// ends as Captured, DiskHit, Escaped or Exhausted within maxSteps steps,
// and non-finite numerics are folded into Captured.
func (it *Integrator) Trace(s State) Result {
	if !s.Position.IsFinite() || !s.Direction.IsFinite() {
		return Result{Status: Captured}
	}
	if s.Radius() < it.horizon {
		return Result{Status: Captured}
	}

	diskOn := it.disk.Enabled()
	for step := 1; step <= it.maxSteps; step++ {
		prev := s
		s = it.rk4(s, it.stepSize(prev.Radius()))

		if !s.Position.IsFinite() || !s.Direction.IsFinite() {
			return Result{Status: Captured, Steps: step}
		}

		r2 := s.Position.LengthSquared()
		if r2 < it.horizon*it.horizon {
			return Result{Status: Captured, Steps: step}
		}

		if diskOn && prev.Position.Y*s.Position.Y < 0 {
			if res, ok := it.diskCrossing(prev, s, step); ok {
				return res
			}
		}

		if r2 > it.escapeSq {
			return Result{
				Status:    Escaped,
				Direction: s.Direction.Normalize(),
				Steps:     step,
			}
		}
	}

	// Fail-safe: out of steps, resolve against the star field anyway.
	return Result{
		Status:    Exhausted,
		Direction: s.Direction.Normalize(),
		Steps:     it.maxSteps,
	}
}

// diskCrossing interpolates the equatorial crossing between two bracketing
// states and accepts it when the crossing radius lies inside the annulus.
func (it *Integrator) diskCrossing(prev, cur State, step int) (Result, bool) {
	t := prev.Position.Y / (prev.Position.Y - cur.Position.Y)
	point := prev.Position.Lerp(cur.Position, t)
	radius := math.Hypot(point.X, point.Z)
	if radius < it.disk.InnerRadius || radius > it.disk.OuterRadius {
		return Result{}, false
	}
	return Result{
		Status:     DiskHit,
		DiskPoint:  point,
		DiskRadius: radius,
		RayDir:     prev.Direction.Lerp(cur.Direction, t).Normalize(),
		Steps:      step,
	}, true
}
