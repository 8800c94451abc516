package core

import "math/rand"

// RandomFloat returns a uniform random float in [min, max)
func RandomFloat(minVal, maxVal float64, random *rand.Rand) float64 {
	return minVal + (maxVal-minVal)*random.Float64()
}

// RandomVec3 generates a vector with components uniform in [0, 1)
func RandomVec3(random *rand.Rand) Vec3 {
	return Vec3{X: random.Float64(), Y: random.Float64(), Z: random.Float64()}
}

// RandomVec3In generates a vector with components uniform in [min, max)
func RandomVec3In(minVal, maxVal float64, random *rand.Rand) Vec3 {
	return Vec3{
		X: RandomFloat(minVal, maxVal, random),
		Y: RandomFloat(minVal, maxVal, random),
		Z: RandomFloat(minVal, maxVal, random),
	}
}

// RandomInUnitDisk generates a random point in the unit disk (z=0),
// uniform over the disk area
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := Vec3{X: 2*random.Float64() - 1, Y: 2*random.Float64() - 1}
		// Accept if inside unit disk
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInUnitSphere generates a random point inside the unit sphere,
// uniform over the sphere volume
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		p := RandomVec3In(-1, 1, random)
		// Accept if inside unit sphere
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed unit-length direction
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}
