package core

import (
	"math"
	"testing"
)

// sequenceSampler replays a fixed list of 3D samples, then repeats the last one
type sequenceSampler struct {
	samples []Vec3
	next    int
}

func (s *sequenceSampler) nextSample() Vec3 {
	sample := s.samples[min(s.next, len(s.samples)-1)]
	s.next++
	return sample
}

func (s *sequenceSampler) Get1D() float64 { return s.nextSample().X }
func (s *sequenceSampler) Get2D() Vec2 {
	v := s.nextSample()
	return NewVec2(v.X, v.Y)
}
func (s *sequenceSampler) Get3D() Vec3 { return s.nextSample() }

func TestRandomInUnitSphere_Bounds(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 10000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Sample %d outside unit ball: %v", i, p)
		}
	}
}

func TestRandomInUnitSphere_RejectsCorners(t *testing.T) {
	// First sample maps to the cube corner (1,1,1)-ish and must be rejected
	sampler := &sequenceSampler{samples: []Vec3{
		NewVec3(0.99, 0.99, 0.99),
		NewVec3(0.75, 0.5, 0.5),
	}}
	p := RandomInUnitSphere(sampler)
	if p != NewVec3(0.5, 0, 0) {
		t.Errorf("Expected (0.5, 0, 0) after rejection, got %v", p)
	}
	if sampler.next != 2 {
		t.Errorf("Expected 2 draws, got %d", sampler.next)
	}
}

func TestRandomInUnitDisk_Bounds(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 10000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Disk sample %d has non-zero z: %v", i, p)
		}
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Disk sample %d outside unit disk: %v", i, p)
		}
	}
}

func TestRandomUnitVector_UnitLength(t *testing.T) {
	sampler := NewSeededSampler(1)
	var mean Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Fatalf("Sample %d not unit length: %f", i, v.Length())
		}
		mean = mean.Add(v)
	}

	// Uniform directions should average out close to the origin
	mean = mean.Multiply(1.0 / n)
	if mean.Length() > 0.05 {
		t.Errorf("Expected mean direction near zero, got %v", mean)
	}
}

func TestRandomUnitVector_SkipsOrigin(t *testing.T) {
	sampler := &sequenceSampler{samples: []Vec3{
		NewVec3(0.5, 0.5, 0.5), // maps to the origin
		NewVec3(0.5, 0.5, 0.75),
	}}
	v := RandomUnitVector(sampler)
	if v != NewVec3(0, 0, 1) {
		t.Errorf("Expected (0, 0, 1), got %v", v)
	}
}
