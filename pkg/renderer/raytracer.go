package renderer

import (
	"fmt"
	"image/color"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetWorld() geometry.Shape
	GetBackground() integrator.Background
}

// Raytracer renders image rows of a scene. It holds no mutable state after
// construction, so one instance is shared by every worker.
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     Config
	integrator integrator.Integrator
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config Config) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if scene == nil || scene.GetCamera() == nil || scene.GetWorld() == nil {
		return nil, fmt.Errorf("%w: scene must provide a camera and a world", ErrInvalidConfig)
	}

	return &Raytracer{
		scene:      scene,
		width:      config.Width,
		height:     config.Height(),
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth, scene.GetBackground()),
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.integrator = i
}

// Width returns the image width in pixels
func (rt *Raytracer) Width() int { return rt.width }

// Height returns the image height in pixels
func (rt *Raytracer) Height() int { return rt.height }

// Config returns the rendering configuration
func (rt *Raytracer) Config() Config { return rt.config }

// RenderRow renders image row `row` (0 is the top of the image) using sampler
// for every random decision in the row
func (rt *Raytracer) RenderRow(row int, sampler core.Sampler) ([]color.RGBA, error) {
	if row < 0 || row >= rt.height {
		return nil, fmt.Errorf("renderer: row %d outside image of height %d", row, rt.height)
	}

	pixels := make([]color.RGBA, rt.width)
	for i := 0; i < rt.width; i++ {
		colorSum := rt.samplePixel(i, row, sampler)
		if !colorSum.IsFinite() {
			return nil, fmt.Errorf("renderer: pixel (%d, %d) accumulated non-finite color %v", i, row, colorSum)
		}
		pixels[i] = vec3ToColor(colorSum, rt.config.SamplesPerPixel)
	}
	return pixels, nil
}

// samplePixel accumulates SamplesPerPixel jittered samples for one pixel
func (rt *Raytracer) samplePixel(i, row int, sampler core.Sampler) core.Vec3 {
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()

	// Screen space t grows upward while rows are counted from the top
	j := rt.height - 1 - row
	sDenominator := float64(max(rt.width-1, 1))
	tDenominator := float64(max(rt.height-1, 1))

	colorAccum := core.Vec3{X: 0, Y: 0, Z: 0}
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		s := (float64(i) + sampler.Get1D()) / sDenominator
		t := (float64(j) + sampler.Get1D()) / tDenominator

		ray := camera.GetRay(s, t, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, world, sampler))
	}
	return colorAccum
}
