package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ErikssonM/weekend-tracer/pkg/core"
)

func pointsEqual(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(-2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_Points(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name          string
		rayOrigin     core.Vec3
		rayDirection  core.Vec3
		expectedPoint core.Vec3
		expectedFront bool
	}{
		{
			name:          "head-on hit returns near side",
			rayOrigin:     core.NewVec3(-2, 0, 0),
			rayDirection:  core.NewVec3(1, 0, 0),
			expectedPoint: core.NewVec3(-1, 0, 0),
			expectedFront: true,
		},
		{
			name:          "glancing hit at the top",
			rayOrigin:     core.NewVec3(-2, 1, 0),
			rayDirection:  core.NewVec3(1, 0, 0),
			expectedPoint: core.NewVec3(0, 1, 0),
			expectedFront: true,
		},
		{
			name:          "interior origin returns the exit point",
			rayOrigin:     core.NewVec3(0, 0, 0),
			rayDirection:  core.NewVec3(1, 0, 0),
			expectedPoint: core.NewVec3(1, 0, 0),
			expectedFront: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if !pointsEqual(hit.Point, tt.expectedPoint, 1e-2) {
				t.Errorf("Expected hit point %v, got %v", tt.expectedPoint, hit.Point)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
		})
	}
}

func TestSphere_Hit_FrontAndBackFaceNormals(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if !pointsEqual(hit.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// tMax excludes both roots
	if hit, isHit := sphere.Hit(ray, 0.001, 0.5); isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// tMin excludes both roots
	if hit, isHit := sphere.Hit(ray, 3.5, math.Inf(1)); isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// tMin excludes the near root only, the far root is accepted
	hit, isHit := sphere.Hit(ray, 2.0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected far root hit, but got miss")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far root at t=3, got t=%f", hit.T)
	}
}

func TestSphere_NormalAlwaysOpposesRay(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		// Random origins inside and outside the sphere, random directions
		origin := core.RandomVec3In(-3, 3, random)
		direction := core.RandomUnitVector(random)
		ray := core.NewRay(origin, direction)

		hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
		if !isHit {
			continue
		}

		if hit.Normal.Dot(ray.Direction) > 0 {
			t.Fatalf("Normal %v does not oppose ray direction %v", hit.Normal, ray.Direction)
		}

		// FrontFace must agree with the unflipped outward normal
		outward := hit.Point.Subtract(sphere.Center).Divide(sphere.Radius)
		if hit.FrontFace != (ray.Direction.Dot(outward) < 0) {
			t.Fatalf("FrontFace %t inconsistent with outward normal %v", hit.FrontFace, outward)
		}

		if math.Abs(hit.Normal.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit normal, got length %f", hit.Normal.Length())
		}
	}
}
