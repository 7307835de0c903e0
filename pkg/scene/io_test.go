package scene

import (
	"path/filepath"
	"testing"
)

func TestValidate_DefaultSceneIsValid(t *testing.T) {
	sc := Default()
	if err := sc.Validate(); err != nil {
		t.Errorf("Default scene should validate, got: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scene)
	}{
		{"zero width", func(s *Scene) { s.Camera.Width = 0 }},
		{"negative height", func(s *Scene) { s.Camera.Height = -1 }},
		{"zero vfov", func(s *Scene) { s.Camera.VFov = 0 }},
		{"vfov past 180", func(s *Scene) { s.Camera.VFov = 200 }},
		{"zero up vector", func(s *Scene) { s.Camera.Up = Vec3{} }},
		{"camera at look_at", func(s *Scene) { s.Camera.LookAt = s.Camera.Position }},
		{"up parallel to view", func(s *Scene) {
			s.Camera.Position = Vec3{Y: 10}
			s.Camera.LookAt = Vec3{}
			s.Camera.Up = Vec3{Y: 1}
		}},
		{"no horizon", func(s *Scene) { s.BlackHole = BlackHole{} }},
		{"escape inside horizon", func(s *Scene) { s.Limits.EscapeRadius = 0.5 }},
		{"zero max steps", func(s *Scene) { s.Limits.MaxSteps = 0 }},
		{"negative initial step", func(s *Scene) { s.Limits.InitialStep = -0.1 }},
		{"disk inside horizon", func(s *Scene) { s.Disk.InnerRadius = 0.2 }},
		{"disk past escape radius", func(s *Scene) { s.Disk.OuterRadius = 1000 }},
		{"negative disk falloff", func(s *Scene) { s.Disk.Falloff = -1 }},
		{"negative star intensity", func(s *Scene) { s.Stars.Intensity = -1 }},
		{"inverted magnitude calibration", func(s *Scene) {
			s.Stars.MagFaint = -2
			s.Stars.MagBright = 3
		}},
		{"negative bloom radius", func(s *Scene) { s.Options.Bloom.Radius = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := Default()
			tt.mutate(&sc)
			if err := sc.Validate(); err == nil {
				t.Error("Expected a validation error, got none")
			}
		})
	}
}

func TestValidate_DisabledDiskSkipsDiskChecks(t *testing.T) {
	sc := Default()
	sc.Disk = Disk{InnerRadius: 5, OuterRadius: 1, Brightness: 1} // disabled
	if err := sc.Validate(); err != nil {
		t.Errorf("Disabled disk should not be range-checked, got: %v", err)
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")

	original := &File{
		Scene: Default(),
		Keyframes: []Keyframe{
			{Frame: 0, Camera: Vec3{Z: -20}, LookAt: Vec3{}, VFov: 50, DiskBrite: 1},
			{Frame: 10, Camera: Vec3{X: 5, Z: -18}, LookAt: Vec3{}, VFov: 45, DiskBrite: 0.5},
		},
	}
	if err := Save(path, original); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Scene != original.Scene {
		t.Errorf("Scene changed in round trip:\n got %+v\nwant %+v", loaded.Scene, original.Scene)
	}
	if len(loaded.Keyframes) != len(original.Keyframes) {
		t.Fatalf("Keyframe count changed: %d vs %d", len(loaded.Keyframes), len(original.Keyframes))
	}
	for i := range loaded.Keyframes {
		if loaded.Keyframes[i] != original.Keyframes[i] {
			t.Errorf("Keyframe %d changed: %+v vs %+v", i, loaded.Keyframes[i], original.Keyframes[i])
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected an error for a missing scene file")
	}
}

func TestLoad_RejectsInvalidScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	bad := Default()
	bad.Camera.Width = 0
	if err := Save(path, &File{Scene: bad}); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected validation to reject the scene at load time")
	}
}

func TestLoad_RejectsInvalidAnimatedFrames(t *testing.T) {
	tests := []struct {
		name      string
		keyframes []Keyframe
	}{
		{
			"zero vfov in keyframes",
			[]Keyframe{
				{Frame: 0, Camera: Vec3{Z: -20}, LookAt: Vec3{}, VFov: 0, DiskBrite: 1},
				{Frame: 5, Camera: Vec3{Z: -10}, LookAt: Vec3{}, VFov: 0, DiskBrite: 1},
			},
		},
		{
			"camera sweeps through look_at",
			[]Keyframe{
				{Frame: 0, Camera: Vec3{Z: -10}, LookAt: Vec3{}, VFov: 50, DiskBrite: 1},
				{Frame: 2, Camera: Vec3{Z: 10}, LookAt: Vec3{}, VFov: 50, DiskBrite: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "anim.json")
			sf := &File{Scene: Default(), Keyframes: tt.keyframes}
			if err := Save(path, sf); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Expected a sequence with invalid frames to be rejected at load time")
			}
		})
	}
}

func TestLoad_RejectsUnorderedKeyframes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.json")
	sf := &File{
		Scene: Default(),
		Keyframes: []Keyframe{
			{Frame: 10},
			{Frame: 5},
		},
	}
	if err := Save(path, sf); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected out-of-order keyframes to be rejected")
	}
}
