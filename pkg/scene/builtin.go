package scene

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// NewRandomSceneDescription creates the large field of small random spheres
// around three big ones: glass in the middle, matte brown and polished metal
// on either side. The same seed always produces the same field.
func NewRandomSceneDescription(seed int64) *Description {
	random := rand.New(rand.NewSource(seed))

	desc := &Description{
		Name: "random",
		Camera: CameraCfg{
			LookFrom:      Triple{13, 2, 3},
			LookAt:        Triple{0, 0, 0},
			Up:            Triple{0, 1, 0},
			VFov:          20,
			Aperture:      0.1,
			FocusDistance: 10,
		},
	}

	// Ground
	desc.Spheres = append(desc.Spheres, SphereCfg{
		Center:   Triple{0, -1000, 0},
		Radius:   1000,
		Material: lambertian(core.NewVec3(0.5, 0.5, 0.5)),
	})

	// Keep the small spheres clear of the big metal one
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat MaterialCfg
			switch {
			case chooseMat < 0.8:
				albedo := core.NewVec3(random.Float64(), random.Float64(), random.Float64())
				mat = lambertian(albedo.MultiplyVec(albedo))
			case chooseMat < 0.95:
				albedo := core.NewVec3(0.5*random.Float64(), 0.5*random.Float64(), 0.5*random.Float64())
				mat = metal(albedo, 0.5*random.Float64())
			default:
				mat = dielectric(1.5)
			}

			desc.Spheres = append(desc.Spheres, SphereCfg{
				Center:   tripleOf(center),
				Radius:   0.2,
				Material: mat,
			})
		}
	}

	desc.Spheres = append(desc.Spheres,
		SphereCfg{Center: Triple{0, 1, 0}, Radius: 1, Material: dielectric(1.5)},
		SphereCfg{Center: Triple{-4, 1, 0}, Radius: 1, Material: lambertian(core.NewVec3(0.4, 0.2, 0.1))},
		SphereCfg{Center: Triple{4, 1, 0}, Radius: 1, Material: metal(core.NewVec3(0.7, 0.6, 0.5), 0)},
	)

	return desc
}

// NewHollowGlassSceneDescription creates three spheres on a large yellow-green
// ground. The left one is a glass shell: an outer sphere with an inner sphere
// of negative radius whose normals point inward.
func NewHollowGlassSceneDescription() *Description {
	return &Description{
		Name: "hollow-glass",
		Camera: CameraCfg{
			LookFrom: Triple{-2, 2, 1},
			LookAt:   Triple{0, 0, -1},
			Up:       Triple{0, 1, 0},
			VFov:     30,
		},
		Spheres: []SphereCfg{
			{Center: Triple{0, -100.5, -2}, Radius: 100, Material: lambertian(core.NewVec3(0.8, 0.8, 0))},
			{Center: Triple{0, 0, -1}, Radius: 0.5, Material: lambertian(core.NewVec3(0.1, 0.2, 0.5))},
			{Center: Triple{-1, 0, -1}, Radius: 0.5, Material: dielectric(1.5)},
			{Center: Triple{-1, 0, -1}, Radius: -0.45, Material: dielectric(1.5)},
			{Center: Triple{1, 0, -1}, Radius: 0.5, Material: metal(core.NewVec3(0.8, 0.6, 0.2), 0.05)},
		},
	}
}

// NewSingleSphereSceneDescription creates one diffuse sphere in front of a
// pinhole camera at the origin. It renders quickly and is handy for checks.
func NewSingleSphereSceneDescription() *Description {
	return &Description{
		Name: "single",
		Camera: CameraCfg{
			LookFrom: Triple{0, 0, 0},
			LookAt:   Triple{0, 0, -1},
			Up:       Triple{0, 1, 0},
			VFov:     90,
		},
		Spheres: []SphereCfg{
			{Center: Triple{0, 0, -1}, Radius: 0.5, Material: lambertian(core.NewVec3(0.5, 0.5, 0.5))},
		},
	}
}
