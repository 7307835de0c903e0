package scene

import (
	"fmt"
)

// Keyframe pins scene parameters at a specific frame index. Between two
// keyframes the camera and disk parameters are interpolated linearly;
// everything else (resolution, limits, star field options) is taken from
// the base scene and never animated.
type Keyframe struct {
	Frame     int     `json:"frame"`
	Camera    Vec3    `json:"camera"`
	LookAt    Vec3    `json:"look_at"`
	VFov      float64 `json:"vfov"`
	DiskBrite float64 `json:"disk_brightness"`
}

func validateKeyframes(frames []Keyframe) error {
	for i, kf := range frames {
		if kf.Frame < 0 {
			return fmt.Errorf("keyframe %d: negative frame index %d", i, kf.Frame)
		}
		if i > 0 && kf.Frame <= frames[i-1].Frame {
			return fmt.Errorf("keyframe %d: frame %d not after previous frame %d", i, kf.Frame, frames[i-1].Frame)
		}
	}
	return nil
}

// Sequence expands the base scene and keyframes into an explicit finite
// slice of independent descriptors, one per output frame. With fewer than
// two keyframes it returns just the base scene.
func (sf *File) Sequence() []Scene {
	if len(sf.Keyframes) < 2 {
		return []Scene{sf.Scene}
	}

	first := sf.Keyframes[0]
	last := sf.Keyframes[len(sf.Keyframes)-1]
	frames := make([]Scene, 0, last.Frame-first.Frame+1)

	seg := 0
	for n := first.Frame; n <= last.Frame; n++ {
		for seg+2 < len(sf.Keyframes) && n >= sf.Keyframes[seg+1].Frame {
			seg++
		}
		a, b := sf.Keyframes[seg], sf.Keyframes[seg+1]
		t := float64(n-a.Frame) / float64(b.Frame-a.Frame)
		frames = append(frames, sf.Scene.interpolated(a, b, t))
	}
	return frames
}

// interpolated returns a copy of the base scene with the animated
// parameters blended between keyframes a and b.
func (s Scene) interpolated(a, b Keyframe, t float64) Scene {
	out := s
	pos := a.Camera.Vec().Lerp(b.Camera.Vec(), t)
	look := a.LookAt.Vec().Lerp(b.LookAt.Vec(), t)
	out.Camera.Position = Vec3{X: pos.X, Y: pos.Y, Z: pos.Z}
	out.Camera.LookAt = Vec3{X: look.X, Y: look.Y, Z: look.Z}
	out.Camera.VFov = lerp(a.VFov, b.VFov, t)
	out.Disk.Brightness = lerp(a.DiskBrite, b.DiskBrite, t)
	return out
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
