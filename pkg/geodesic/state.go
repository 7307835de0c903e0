package geodesic

import (
	"github.com/theRealZauberwuerfel/blackstar/pkg/core"
)

// State is the integration variable for one photon: position relative to
// the gravitational center, propagation direction (magnitude carries the
// affine-parameter scaling), and the affine parameter accumulated so far.
type State struct {
	Position  core.Vec3
	Direction core.Vec3
	Affine    float64
}

// NewState creates a photon state at the given position moving along dir.
func NewState(position, dir core.Vec3) State {
	return State{Position: position, Direction: dir}
}

// Radius returns the current distance from the gravitational center.
func (s State) Radius() float64 {
	return s.Position.Length()
}

// Status classifies a terminated ray.
type Status int

const (
	// Captured rays crossed the horizon; their color is black.
	Captured Status = iota
	// DiskHit rays crossed the equatorial plane inside the disk annulus.
	DiskHit
	// Escaped rays left the escape radius; resolved against the star field.
	Escaped
	// Exhausted rays hit the step limit; treated exactly like Escaped.
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Captured:
		return "captured"
	case DiskHit:
		return "disk"
	case Escaped:
		return "escaped"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result is the terminal classification of one integrated ray.
type Result struct {
	Status Status

	// Direction is the normalized terminal propagation direction, valid
	// for Escaped and Exhausted rays.
	Direction core.Vec3

	// DiskPoint is the interpolated equatorial crossing point and
	// DiskRadius its distance from the center, valid for DiskHit rays.
	DiskPoint  core.Vec3
	DiskRadius float64

	// RayDir is the normalized propagation direction at the disk
	// crossing, used by the Doppler term of the disk shader.
	RayDir core.Vec3

	// Steps is the number of integration steps taken.
	Steps int
}
