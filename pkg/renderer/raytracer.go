package renderer

import (
	"math"
	"math/rand"

	"github.com/ErikssonM/weekend-tracer/pkg/core"
)

// Sky gradient colors used when a ray escapes the scene
var (
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
	skyBottom = core.NewVec3(1.0, 1.0, 1.0)
)

// Offset from a surface before tracing a scattered ray, avoiding
// self-intersection from floating-point error at the scatter origin
const shadowAcneEpsilon = 0.001

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Raytracer renders a scene from a camera into an image buffer
type Raytracer struct {
	camera *Camera
	world  core.Hittable
	width  int
	height int
	config SamplingConfig
	random *rand.Rand
}

// NewRaytracer creates a new raytracer. The random source must not be shared
// with any concurrently running raytracer.
func NewRaytracer(camera *Camera, world core.Hittable, width, height int, config SamplingConfig, random *rand.Rand) *Raytracer {
	return &Raytracer{
		camera: camera,
		world:  world,
		width:  width,
		height: height,
		config: config,
		random: random,
	}
}

// backgroundGradient returns the sky color for a ray that escaped the scene,
// a vertical white-to-blue gradient based on the ray's vertical component
func backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return skyBottom.Lerp(skyTop, t)
}

// rayColor returns the radiance arriving along a ray, recursing on scattered
// rays up to the remaining depth budget
func (rt *Raytracer) rayColor(r core.Ray, depth int) core.Vec3 {
	// Bounce budget exhausted, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := rt.world.Hit(r, shadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, rt.random)
	if !didScatter {
		// Material absorbed the ray
		return core.Vec3{}
	}

	return scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, depth-1))
}

// RenderPass renders a single pass, averaging jittered samples per pixel
// into a new image buffer
func (rt *Raytracer) RenderPass() *Image {
	img := NewImage(rt.width, rt.height)

	for j := 0; j < rt.height; j++ {
		for i := 0; i < rt.width; i++ {
			colorAccum := core.Vec3{}

			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				s := (float64(i) + rt.random.Float64()) / float64(rt.width-1)
				t := (float64(j) + rt.random.Float64()) / float64(rt.height-1)

				ray := rt.camera.GetRay(s, t, rt.random)
				colorAccum = colorAccum.Add(rt.rayColor(ray, rt.config.MaxDepth))
			}

			img.Set(i, j, colorAccum.Divide(float64(rt.config.SamplesPerPixel)))
		}
	}

	return img
}

// Render renders a single pass of the scene into a new image buffer.
// The result is deterministic up to the random source.
func Render(camera *Camera, world core.Hittable, width, height, samplesPerPixel, maxDepth int, random *rand.Rand) *Image {
	rt := NewRaytracer(camera, world, width, height, SamplingConfig{
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
	}, random)
	return rt.RenderPass()
}
