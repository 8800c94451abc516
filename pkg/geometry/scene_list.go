package geometry

import (
	"github.com/ErikssonM/weekend-tracer/pkg/core"
)

// SceneList is an ordered collection of hittable primitives. The order of
// primitives does not affect intersection results; the nearest hit wins.
type SceneList struct {
	objects []core.Hittable
}

// NewSceneList creates a scene list containing the given objects
func NewSceneList(objects ...core.Hittable) *SceneList {
	return &SceneList{objects: objects}
}

// Add appends objects to the scene list
func (s *SceneList) Add(objects ...core.Hittable) {
	s.objects = append(s.objects, objects...)
}

// Len returns the number of objects in the scene list
func (s *SceneList) Len() int {
	return len(s.objects)
}

// Hit finds the nearest intersection of the ray with any object in the list
func (s *SceneList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range s.objects {
		// Narrow tMax to the closest hit found so far
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
