package slideview

import (
	"image/color"
	"math"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// Scale returns a copy of the Color with its R, G, and B components multiplied by the value given (alpha is left alone).
// This is used for simple shading.
func (color Color) Scale(value float32) Color {
	color.R *= value
	color.G *= value
	color.B *= value
	return color
}

// Mix returns the Color mixed with the other Color by the percentage given (0 being the calling Color, 1 being the other).
func (color Color) Mix(other Color, percent float32) Color {
	color.R += (other.R - color.R) * percent
	color.G += (other.G - color.G) * percent
	color.B += (other.B - color.B) * percent
	color.A += (other.A - color.A) * percent
	return color
}

// RGBA64 returns the Color's components as float64s.
func (color Color) RGBA64() (float64, float64, float64, float64) {
	return float64(color.R), float64(color.G), float64(color.B), float64(color.A)
}

// ToNRGBA64 converts the Color to an image/color.NRGBA64, clamping each component to [0, 1].
func (c Color) ToNRGBA64() color.NRGBA64 {
	return color.NRGBA64{
		R: uint16(clamp(c.R, 0, 1) * math.MaxUint16),
		G: uint16(clamp(c.G, 0, 1) * math.MaxUint16),
		B: uint16(clamp(c.B, 0, 1) * math.MaxUint16),
		A: uint16(clamp(c.A, 0, 1) * math.MaxUint16),
	}
}

// ConvertTosRGB returns a copy of the linear Color converted to sRGB. glTF stores material colors as linear values.
func (color Color) ConvertTosRGB() Color {

	convert := func(c float32) float32 {
		if c <= 0.0031308 {
			return c * 12.92
		}
		return float32(1.055*math.Pow(float64(c), 1/2.4) - 0.055)
	}

	color.R = convert(color.R)
	color.G = convert(color.G)
	color.B = convert(color.B)

	return color

}
