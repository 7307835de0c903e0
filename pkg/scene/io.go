package scene

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// File is the on-disk config format: a base scene plus optional keyframes
// describing an animated sequence.
type File struct {
	Scene     Scene      `json:"scene"`
	Keyframes []Keyframe `json:"keyframes,omitempty"`
}

// Load reads and validates a scene file. Every error here is reported
// before any pixel work begins; the renderer never re-validates.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	var sf File
	if err := json.NewDecoder(f).Decode(&sf); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := sf.Scene.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	if err := validateKeyframes(sf.Keyframes); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	// Keyframes overwrite camera and disk parameters, so every frame of
	// the expanded sequence must pass the same checks as the base scene.
	for n, fr := range sf.Sequence() {
		if err := fr.Validate(); err != nil {
			return nil, fmt.Errorf("scene %s: frame %d: %w", path, n, err)
		}
	}
	return &sf, nil
}

// Save writes a scene file as indented JSON.
func Save(path string, sf *File) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sf); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// Validate checks every numeric range the renderer depends on.
func (s *Scene) Validate() error {
	c := s.Camera
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("camera resolution must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("camera vfov must be in (0, 180), got %g", c.VFov)
	}
	if c.Up.Vec().Length() == 0 {
		return fmt.Errorf("camera up vector must be non-zero")
	}
	forward := c.LookAt.Vec().Subtract(c.Position.Vec())
	if forward.Length() == 0 {
		return fmt.Errorf("camera position and look_at must differ")
	}
	if forward.Normalize().Cross(c.Up.Vec().Normalize()).Length() < 1e-9 {
		return fmt.Errorf("camera up vector is parallel to the view direction")
	}

	rs := s.BlackHole.Horizon()
	if rs <= 0 {
		return fmt.Errorf("horizon radius must be positive, got %g", rs)
	}
	if !isFinite(rs) {
		return fmt.Errorf("horizon radius must be finite")
	}

	l := s.Limits
	if l.EscapeRadius <= rs {
		return fmt.Errorf("escape radius %g must exceed horizon radius %g", l.EscapeRadius, rs)
	}
	if l.MaxSteps <= 0 {
		return fmt.Errorf("max steps must be positive, got %d", l.MaxSteps)
	}
	if l.InitialStep <= 0 || !isFinite(l.InitialStep) {
		return fmt.Errorf("initial step must be positive and finite, got %g", l.InitialStep)
	}

	d := s.Disk
	if d.Enabled() {
		if d.InnerRadius < rs {
			return fmt.Errorf("disk inner radius %g lies inside the horizon %g", d.InnerRadius, rs)
		}
		if d.OuterRadius > l.EscapeRadius {
			return fmt.Errorf("disk outer radius %g exceeds escape radius %g", d.OuterRadius, l.EscapeRadius)
		}
		if d.Falloff < 0 {
			return fmt.Errorf("disk falloff must be non-negative, got %g", d.Falloff)
		}
	}

	st := s.Stars
	if st.Intensity < 0 || st.Saturation < 0 {
		return fmt.Errorf("star intensity and saturation must be non-negative")
	}
	if st.MagFaint <= st.MagBright {
		return fmt.Errorf("mag_faint %g must be dimmer (greater) than mag_bright %g", st.MagFaint, st.MagBright)
	}

	b := s.Options.Bloom
	if b.Radius < 0 || b.Strength < 0 || b.Threshold < 0 {
		return fmt.Errorf("bloom parameters must be non-negative")
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
