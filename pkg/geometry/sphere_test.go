package geometry

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

const tolerance = 1e-5

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_TangentIsMiss(t *testing.T) {
	// Discriminant is exactly zero for a ray grazing the silhouette
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	if hit, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected tangent ray to miss, got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 3)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float32
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math32.Abs(hit.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Material != 3 {
				t.Errorf("Expected material 3, got %d", hit.Material)
			}
			if hit.Point.Subtract(ray.At(hit.T)).Length() > tolerance {
				t.Errorf("Hit point %v does not lie on the ray at t=%f", hit.Point, hit.T)
			}
		})
	}
}

func TestSphere_Hit_NegativeRadiusFlipsNormal(t *testing.T) {
	hollow := NewSphere(core.NewVec3(0, 0, 0), -1.0, 0)

	// From outside the outward normal points inwards, so the ray "hits the back"
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
	hit, isHit := hollow.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit on hollow sphere")
	}
	if hit.FrontFace {
		t.Error("Expected back face for negative radius sphere hit from outside")
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > tolerance {
		t.Errorf("Normal should still face the incoming ray, got %v", hit.Normal)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	tests := []struct {
		name       string
		tMin, tMax float32
		expectHit  bool
		expectedT  float32
	}{
		{"tMax before sphere", 0.001, 0.5, false, 0},
		{"tMin past sphere", 3.5, 1000, false, 0},
		{"near root excluded falls back to far root", 1.5, 1000, true, 3},
		{"boundary is exclusive", 1.0, 3.0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t (t=%f)", tt.expectHit, isHit, hit.T)
			}
			if isHit && math32.Abs(hit.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_Hit_Properties(t *testing.T) {
	sampler := core.NewSeededSampler(42)
	sphere := NewSphere(core.NewVec3(0.3, -0.2, -1), 0.7, 0)

	hits := 0
	for i := 0; i < 2000; i++ {
		origin := core.RandomVec3(sampler, -3, 3)
		direction := core.RandomVec3(sampler, -1, 1)
		if direction.NearZero() {
			continue
		}
		ray := core.NewRay(origin, direction)

		hit, isHit := sphere.Hit(ray, 0.001, 100)
		if !isHit {
			continue
		}
		hits++

		if hit.T <= 0.001 || hit.T >= 100 {
			t.Fatalf("t=%f outside (0.001, 100)", hit.T)
		}
		if math32.Abs(hit.Normal.Length()-1) > 1e-4 {
			t.Fatalf("Normal %v not unit length", hit.Normal)
		}
		if d := ray.Direction.Dot(hit.Normal); d > 0 {
			t.Fatalf("Normal %v points along ray %v", hit.Normal, ray.Direction)
		}

		// FrontFace reports which side of the geometric surface was struck
		outward := hit.Point.Subtract(sphere.Center).Divide(sphere.Radius)
		if d := ray.Direction.Dot(outward); hit.FrontFace != (d < 0) {
			t.Fatalf("FrontFace=%t but dot(direction, outward)=%f", hit.FrontFace, d)
		}
	}

	if hits == 0 {
		t.Fatal("Expected some random rays to hit the sphere")
	}
}
