package core

import (
	"errors"
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if dot := a.Dot(b); dot != 12 {
		t.Errorf("Expected dot product 12, got %f", dot)
	}
	if l := NewVec3(3, 4, 0).Length(); l != 5 {
		t.Errorf("Expected length 5, got %f", l)
	}
	if l2 := NewVec3(3, 4, 0).LengthSquared(); l2 != 25 {
		t.Errorf("Expected length squared 25, got %f", l2)
	}
}

func TestVec3_Normalize(t *testing.T) {
	unit := NewVec3(0, 3, 4).Normalize()
	if math.Abs(unit.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", unit.Length())
	}
	if math.Abs(unit.Y-0.6) > 1e-12 || math.Abs(unit.Z-0.8) > 1e-12 {
		t.Errorf("Expected (0, 0.6, 0.8), got %v", unit)
	}
}

func TestVec3_NormalizeZeroLength(t *testing.T) {
	_, err := Vec3{}.TryNormalize()
	var degenerate *DegenerateVectorError
	if !errors.As(err, &degenerate) {
		t.Fatalf("Expected DegenerateVectorError, got %v", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected Normalize of zero vector to panic")
		}
		if _, ok := r.(*DegenerateVectorError); !ok {
			t.Errorf("Expected panic value *DegenerateVectorError, got %T", r)
		}
	}()
	Vec3{}.Normalize()
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-7, 0).NearZero() {
		t.Error("Expected vector with one 1e-7 component not to be near zero")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, -2))
	if p := ray.At(1.5); p != NewVec3(1, 1, -2) {
		t.Errorf("Expected (1, 1, -2), got %v", p)
	}
}
