package scene

import (
	"github.com/ErikssonM/weekend-tracer/pkg/geometry"
	"github.com/ErikssonM/weekend-tracer/pkg/renderer"
)

// Scene bundles a populated world with the camera and image dimensions
// used to render it
type Scene struct {
	Camera *renderer.Camera
	World  *geometry.SceneList
	Width  int
	Height int
}
