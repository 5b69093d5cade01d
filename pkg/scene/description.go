package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

var ErrInvalidDescription = errors.New("scene: invalid description")

// Material type names accepted in descriptions
const (
	MaterialLambertian = "lambertian"
	MaterialMetal      = "metal"
	MaterialDielectric = "dielectric"
)

// Triple is a vector or color written as a JSON array [x, y, z]
type Triple [3]float64

// Vec3 converts the triple to a core.Vec3
func (t Triple) Vec3() core.Vec3 {
	return core.NewVec3(t[0], t[1], t[2])
}

func tripleOf(v core.Vec3) Triple {
	return Triple{v.X, v.Y, v.Z}
}

type CameraCfg struct {
	LookFrom      Triple  `json:"lookFrom"`
	LookAt        Triple  `json:"lookAt"`
	Up            Triple  `json:"up"`
	VFov          float64 `json:"vfov"`
	Aperture      float64 `json:"aperture,omitempty"`
	FocusDistance float64 `json:"focusDistance,omitempty"` // 0 focuses on lookAt
}

type BackgroundCfg struct {
	Top    Triple `json:"top"`
	Bottom Triple `json:"bottom"`
}

type MaterialCfg struct {
	Type            string  `json:"type"`
	Albedo          Triple  `json:"albedo"`
	Fuzz            float64 `json:"fuzz,omitempty"`
	RefractionIndex float64 `json:"refractionIndex,omitempty"`
}

type SphereCfg struct {
	Center Triple `json:"center"`
	// A negative radius keeps the geometry but flips the normals inward,
	// which models the inner wall of a hollow glass sphere.
	Radius   float64     `json:"radius"`
	Material MaterialCfg `json:"material"`
}

// Description is a serializable scene: camera placement, sky and spheres.
// The aspect ratio comes from the render configuration at build time.
type Description struct {
	Name       string         `json:"name,omitempty"`
	Camera     CameraCfg      `json:"camera"`
	Background *BackgroundCfg `json:"background,omitempty"` // nil selects the default sky
	Spheres    []SphereCfg    `json:"spheres"`
}

// ParseDescription decodes a JSON scene description
func ParseDescription(r io.Reader) (*Description, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var desc Description
	if err := dec.Decode(&desc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescription, err)
	}
	return &desc, nil
}

// LoadDescription reads a JSON scene description from path
func LoadDescription(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	desc, err := ParseDescription(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if desc.Name == "" {
		desc.Name = path
	}
	return desc, nil
}

// Build validates the description and constructs a renderable scene
func (d *Description) Build(aspectRatio float64) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center:        d.Camera.LookFrom.Vec3(),
		LookAt:        d.Camera.LookAt.Vec3(),
		Up:            d.Camera.Up.Vec3(),
		AspectRatio:   aspectRatio,
		VFov:          d.Camera.VFov,
		Aperture:      d.Camera.Aperture,
		FocusDistance: d.Camera.FocusDistance,
	}
	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, err
	}

	background := integrator.DefaultBackground()
	if d.Background != nil {
		background = integrator.Background{
			Top:    d.Background.Top.Vec3(),
			Bottom: d.Background.Bottom.Vec3(),
		}
	}

	shapes := make(geometry.ShapeList, 0, len(d.Spheres))
	for i, sc := range d.Spheres {
		mat, err := sc.Material.build()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		sphere, err := geometry.NewSphere(sc.Center.Vec3(), sc.Radius, mat)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		shapes = append(shapes, sphere)
	}

	logger.Debugf("Built scene %q with %d spheres", d.Name, len(shapes))

	return &Scene{
		Camera:       camera,
		CameraConfig: cameraConfig,
		Shapes:       shapes,
		Background:   background,
	}, nil
}

// build converts the material description into a material
func (m MaterialCfg) build() (material.Material, error) {
	switch m.Type {
	case MaterialLambertian:
		if err := checkAlbedo(m.Albedo); err != nil {
			return nil, err
		}
		return material.NewLambertian(m.Albedo.Vec3()), nil
	case MaterialMetal:
		if err := checkAlbedo(m.Albedo); err != nil {
			return nil, err
		}
		if !(m.Fuzz >= 0) {
			return nil, fmt.Errorf("%w: metal fuzz must not be negative, got %v", ErrInvalidDescription, m.Fuzz)
		}
		return material.NewMetal(m.Albedo.Vec3(), m.Fuzz), nil
	case MaterialDielectric:
		if !(m.RefractionIndex > 0) || math.IsInf(m.RefractionIndex, 0) {
			return nil, fmt.Errorf("%w: refraction index must be positive, got %v", ErrInvalidDescription, m.RefractionIndex)
		}
		return material.NewDielectric(m.RefractionIndex), nil
	default:
		return nil, fmt.Errorf("%w: unknown material type %q", ErrInvalidDescription, m.Type)
	}
}

func checkAlbedo(albedo Triple) error {
	for _, c := range albedo {
		if !(c >= 0 && c <= 1) {
			return fmt.Errorf("%w: albedo %v outside [0, 1]", ErrInvalidDescription, albedo)
		}
	}
	return nil
}

func lambertian(albedo core.Vec3) MaterialCfg {
	return MaterialCfg{Type: MaterialLambertian, Albedo: tripleOf(albedo)}
}

func metal(albedo core.Vec3, fuzz float64) MaterialCfg {
	return MaterialCfg{Type: MaterialMetal, Albedo: tripleOf(albedo), Fuzz: fuzz}
}

func dielectric(index float64) MaterialCfg {
	return MaterialCfg{Type: MaterialDielectric, RefractionIndex: index}
}
