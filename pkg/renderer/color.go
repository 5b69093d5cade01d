package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// maxChannel keeps quantized values below 256
const maxChannel = 0.999

// vec3ToColor converts an accumulated color sum into an 8-bit color:
// average, gamma 2 correction, clamp to [0, 0.999] and floor(256·v)
func vec3ToColor(colorSum core.Vec3, samples int) color.RGBA {
	colorVec := colorSum.Multiply(1.0 / float64(samples)).Sqrt().Clamp(0, maxChannel)

	return color.RGBA{
		R: quantize(colorVec.X),
		G: quantize(colorVec.Y),
		B: quantize(colorVec.Z),
		A: 255,
	}
}

// quantize maps a clamped channel value in [0, maxChannel] to 0..255
func quantize(value float64) uint8 {
	return uint8(math.Floor(256 * value))
}
