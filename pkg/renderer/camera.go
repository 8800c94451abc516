package renderer

import (
	"math"
	"math/rand"

	"github.com/ErikssonM/weekend-tracer/pkg/core"
)

// CameraConfig contains camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position (lookfrom)
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // World up vector
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter (0 for a pinhole camera)
	FocusDistance float64   // Distance to the plane in focus
}

// Camera generates world-space rays from normalized image-plane coordinates,
// modeling a thin lens for depth of field
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	theta := degreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	// Orthonormal basis: w points from the target back toward the camera
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.Center
	horizontal := u.Multiply(viewportWidth * config.FocusDistance)
	vertical := v.Multiply(viewportHeight * config.FocusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray for image-plane coordinates (s, t) where 0 <= s,t <= 1.
// With a non-zero aperture the ray origin is jittered within the lens disk,
// producing defocus blur away from the focus plane.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	offset := core.Vec3{}
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
