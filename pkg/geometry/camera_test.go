package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

func pinholeConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 2.0,
		VFov:        90.0,
	}
}

func TestCamera_PinholeViewportCorners(t *testing.T) {
	camera, err := NewCamera(pinholeConfig())
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	// tan(45°) = 1, so the viewport at focus distance 1 spans [-2,2] x [-1,1]
	tests := []struct {
		s, t     float64
		expected core.Vec3
	}{
		{0, 0, core.NewVec3(-2, -1, -1)},
		{1, 1, core.NewVec3(2, 1, -1)},
		{0.5, 0.5, core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		ray := camera.GetRay(tt.s, tt.t, nil)
		if ray.Origin != (core.Vec3{}) {
			t.Errorf("Pinhole ray origin should be the camera center, got %v", ray.Origin)
		}
		if ray.Direction.Subtract(tt.expected).Length() > 1e-12 {
			t.Errorf("GetRay(%v, %v): expected direction %v, got %v", tt.s, tt.t, tt.expected, ray.Direction)
		}
	}
}

func TestCamera_FocusDistanceDefaultsToLookAt(t *testing.T) {
	config := pinholeConfig()
	config.LookAt = core.NewVec3(0, 0, -4)
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	if camera.FocusDistance() != 4 {
		t.Errorf("Expected focus distance 4, got %f", camera.FocusDistance())
	}
}

func TestCamera_ThinLensRaysConvergeOnFocusPlane(t *testing.T) {
	config := pinholeConfig()
	config.Aperture = 0.5
	config.FocusDistance = 3
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	if camera.LensRadius() != 0.25 {
		t.Fatalf("Expected lens radius 0.25, got %f", camera.LensRadius())
	}

	sampler := core.NewSeededSampler(5)
	focusPoint := core.NewVec3(0, 0, -3)
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)

		if ray.Origin.Z != 0 || ray.Origin.Length() >= 0.25 {
			t.Fatalf("Ray origin %v outside lens disk", ray.Origin)
		}
		// Every lens sample aims at the same point on the focus plane
		if p := ray.At(1); p.Subtract(focusPoint).Length() > 1e-9 {
			t.Fatalf("Ray from %v does not pass through focus point, got %v", ray.Origin, p)
		}
	}
}

func TestNewCamera_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CameraConfig)
	}{
		{"zero aspect ratio", func(c *CameraConfig) { c.AspectRatio = 0 }},
		{"negative aspect ratio", func(c *CameraConfig) { c.AspectRatio = -1 }},
		{"NaN aspect ratio", func(c *CameraConfig) { c.AspectRatio = math.NaN() }},
		{"zero fov", func(c *CameraConfig) { c.VFov = 0 }},
		{"180 fov", func(c *CameraConfig) { c.VFov = 180 }},
		{"negative aperture", func(c *CameraConfig) { c.Aperture = -0.1 }},
		{"negative focus distance", func(c *CameraConfig) { c.FocusDistance = -2 }},
		{"look-from equals look-at", func(c *CameraConfig) { c.LookAt = c.Center }},
		{"up parallel to view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := pinholeConfig()
			tt.mutate(&config)
			camera, err := NewCamera(config)
			if !errors.Is(err, ErrInvalidCamera) {
				t.Errorf("Expected ErrInvalidCamera, got %v", err)
			}
			if camera != nil {
				t.Errorf("Expected nil camera on error")
			}
		})
	}
}
