package renderer

import (
	"math"

	"github.com/theRealZauberwuerfel/blackstar/pkg/core"
	"github.com/theRealZauberwuerfel/blackstar/pkg/scene"
)

// CameraConfig holds the parameters for perspective ray generation.
type CameraConfig struct {
	Center core.Vec3 // camera position in world space
	LookAt core.Vec3 // point the camera is aimed at
	Up     core.Vec3 // up vector for orientation
	Width  int       // image width in pixels
	Height int       // image height in pixels
	VFov   float64   // vertical field of view in degrees
}

// Camera generates world-space rays for pixel coordinates
type Camera struct {
	config          CameraConfig
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	forward         core.Vec3
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	aspectRatio := float64(config.Width) / float64(config.Height)

	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2 * halfHeight
	viewportWidth := aspectRatio * viewportHeight

	// Orthonormal basis: w points from the target back to the camera.
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.Center
	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		config:          config,
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		forward:         w.Negate(),
	}
}

// NewCameraFromScene builds the camera described by a scene descriptor.
func NewCameraFromScene(sc *scene.Scene) *Camera {
	return NewCamera(CameraConfig{
		Center: sc.Camera.Position.Vec(),
		LookAt: sc.Camera.LookAt.Vec(),
		Up:     sc.Camera.Up.Vec(),
		Width:  sc.Camera.Width,
		Height: sc.Camera.Height,
		VFov:   sc.Camera.VFov,
	})
}

// GetRay generates the ray through pixel (i, j) with a sub-pixel offset
// (du, dv) in [0, 1). Pixel (0, 0) is the top-left corner.
func (c *Camera) GetRay(i, j int, du, dv float64) core.Ray {
	s := (float64(i) + du) / float64(c.config.Width)
	t := 1 - (float64(j)+dv)/float64(c.config.Height)

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction.Normalize())
}

// GetCameraForward returns the normalized viewing direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.forward
}
