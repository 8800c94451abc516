package scene

import (
	"math/rand"

	"github.com/ErikssonM/weekend-tracer/pkg/core"
	"github.com/ErikssonM/weekend-tracer/pkg/geometry"
	"github.com/ErikssonM/weekend-tracer/pkg/material"
	"github.com/ErikssonM/weekend-tracer/pkg/renderer"
)

// NewCoverScene creates the classic sphere-field scene: a large ground
// sphere, a grid of small spheres with randomly chosen materials, and three
// large feature spheres. The random source makes construction deterministic
// under test.
func NewCoverScene(random *rand.Rand) *Scene {
	world := geometry.NewSceneList()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -3; a < 3; a++ {
		for b := -3; b < 3; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Keep the small spheres clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat core.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.RandomVec3In(0.5, 1, random)
				fuzz := core.RandomFloat(0, 0.3, random)
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}

			world.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	glass := material.NewDielectric(1.5)
	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass))

	brown := material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, brown))

	mirror := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, mirror))

	lookFrom := core.NewVec3(13, 2, 3)
	lookAt := core.NewVec3(0, 0, 0)

	width := 400
	aspectRatio := 16.0 / 9.0

	camera := renderer.NewCamera(renderer.CameraConfig{
		Center:        lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   aspectRatio,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: lookFrom.Subtract(lookAt).Length(),
	})

	return &Scene{
		Camera: camera,
		World:  world,
		Width:  width,
		Height: int(float64(width) / aspectRatio),
	}
}
