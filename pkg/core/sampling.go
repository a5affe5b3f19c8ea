package core

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// Sampler provides uniform random numbers for rendering algorithms.
// Can be swapped out for deterministic testing.
type Sampler interface {
	Get1D() float32 // uniform in [0, 1)
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; each worker owns its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded deterministically
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// RandomRange returns a uniform value in [minVal, maxVal)
func RandomRange(sampler Sampler, minVal, maxVal float32) float32 {
	return minVal + (maxVal-minVal)*sampler.Get1D()
}

// RandomVec3 returns a vector whose components are uniform in [minVal, maxVal)
func RandomVec3(sampler Sampler, minVal, maxVal float32) Vec3 {
	return Vec3{
		X: RandomRange(sampler, minVal, maxVal),
		Y: RandomRange(sampler, minVal, maxVal),
		Z: RandomRange(sampler, minVal, maxVal),
	}
}

// RandomUnitVector returns a uniformly distributed direction on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	a := RandomRange(sampler, 0, 2*math32.Pi)
	z := RandomRange(sampler, -1, 1)
	r := math32.Sqrt(1 - z*z)
	return NewVec3(r*math32.Cos(a), r*math32.Sin(a), z)
}

// RandomInUnitSphere returns a uniformly distributed point inside the unit sphere.
// Uses a closed-form radius mapping instead of rejection sampling so that
// every sampler, including constant ones, terminates.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	direction := RandomUnitVector(sampler)
	radius := math32.Pow(sampler.Get1D(), 1.0/3.0)
	return direction.Multiply(radius)
}

// RandomInUnitDisk generates a random point in the unit disk on the XY plane
// using concentric mapping. A sample at the square's center maps to the origin.
func RandomInUnitDisk(sampler Sampler) Vec3 {
	// Map sample to [-1,1]² and handle degeneracy at the origin
	ox := 2*sampler.Get1D() - 1
	oy := 2*sampler.Get1D() - 1
	if ox == 0 && oy == 0 {
		return NewVec3(0, 0, 0)
	}

	var theta, r float32
	if math32.Abs(ox) > math32.Abs(oy) {
		r = ox
		theta = math32.Pi / 4 * (oy / ox)
	} else {
		r = oy
		theta = math32.Pi/2 - math32.Pi/4*(ox/oy)
	}
	return NewVec3(r*math32.Cos(theta), r*math32.Sin(theta), 0)
}

// SequenceSampler replays a fixed list of values in a loop.
// Useful for reproducing a path exactly; a single value gives a constant source.
type SequenceSampler struct {
	Values []float32
	next   int
}

// NewConstantSampler returns a sampler that always yields value
func NewConstantSampler(value float32) *SequenceSampler {
	return &SequenceSampler{Values: []float32{value}}
}

// Get1D returns the next value in the sequence
func (s *SequenceSampler) Get1D() float32 {
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
