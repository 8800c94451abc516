package scene

import (
	"github.com/ErikssonM/weekend-tracer/pkg/core"
	"github.com/ErikssonM/weekend-tracer/pkg/geometry"
	"github.com/ErikssonM/weekend-tracer/pkg/material"
	"github.com/ErikssonM/weekend-tracer/pkg/renderer"
)

// NewSimpleScene creates a small deterministic scene: a diffuse sphere
// flanked by a hollow glass sphere and a fuzzy metal sphere on a diffuse
// ground. Useful for quick renders and tests.
func NewSimpleScene() *Scene {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	world := geometry.NewSceneList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		// Negative radius flips the normals, making the glass sphere hollow
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	lookFrom := core.NewVec3(-2, 2, 1)
	lookAt := core.NewVec3(0, 0, -1)

	width := 400
	aspectRatio := 16.0 / 9.0

	camera := renderer.NewCamera(renderer.CameraConfig{
		Center:        lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   aspectRatio,
		VFov:          20.0,
		Aperture:      0.0,
		FocusDistance: lookFrom.Subtract(lookAt).Length(),
	})

	return &Scene{
		Camera: camera,
		World:  world,
		Width:  width,
		Height: int(float64(width) / aspectRatio),
	}
}
