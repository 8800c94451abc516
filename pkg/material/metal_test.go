package material

import (
	"math/rand"
	"testing"

	"github.com/ErikssonM/weekend-tracer/pkg/core"
)

func TestMetal_PerfectMirror(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	metal := NewMetal(albedo, 0.0)
	random := rand.New(rand.NewSource(42))

	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}
	// 45 degree incoming ray
	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	scatter, didScatter := metal.Scatter(ray, hit, random)
	if !didScatter {
		t.Fatal("Expected mirror reflection to scatter")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected reflection %v, got %v", expected, scatter.Scattered.Direction)
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzClamped(t *testing.T) {
	tests := []struct {
		name     string
		fuzz     float64
		expected float64
	}{
		{"above one", 1.5, 1.0},
		{"negative", -0.5, 0.0},
		{"in range", 0.3, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(core.NewVec3(1, 1, 1), tt.fuzz)
			if metal.Fuzz != tt.expected {
				t.Errorf("Expected fuzz %f, got %f", tt.expected, metal.Fuzz)
			}
		})
	}
}

func TestMetal_FuzzedScatterStaysAboveSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.5)
	random := rand.New(rand.NewSource(42))

	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}
	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := metal.Scatter(ray, hit, random)
		if didScatter && scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatal("Scattered ray reported as valid but points into the surface")
		}
	}
}

func TestMetal_GrazingRaysAbsorbed(t *testing.T) {
	// A heavily fuzzed reflection of a grazing ray frequently dips below
	// the surface; those rays must be absorbed, not scattered
	metal := NewMetal(core.NewVec3(1, 1, 1), 1.0)
	random := rand.New(rand.NewSource(42))

	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}
	ray := core.NewRay(core.NewVec3(-1, 0.001, 0), core.NewVec3(1, -0.001, 0))

	absorbed := 0
	for i := 0; i < 1000; i++ {
		if _, didScatter := metal.Scatter(ray, hit, random); !didScatter {
			absorbed++
		}
	}

	if absorbed == 0 {
		t.Error("Expected some grazing rays to be absorbed")
	}
}
