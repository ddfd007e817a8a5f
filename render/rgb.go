package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// RGB is a 24-bit color composited before conversion to tcell
type RGB struct {
	R, G, B uint8
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Blend performs alpha blending: c*(1-alpha) + src*alpha
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	inv := 1.0 - alpha
	return RGB{
		R: clamp(float64(c.R)*inv + float64(src.R)*alpha + 0.5),
		G: clamp(float64(c.G)*inv + float64(src.G)*alpha + 0.5),
		B: clamp(float64(c.B)*inv + float64(src.B)*alpha + 0.5),
	}
}

// Scale multiplies each channel by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Lerp interpolates a to b by t in [0,1]
func Lerp(a, b RGB, t float64) RGB {
	return Blend(a, b, t)
}

// RGBA converts to an image color with the given opacity
func (c RGB) RGBA(alpha float64) color.RGBA {
	a := clamp(alpha*255.0 + 0.5)
	// Premultiplied as image/color expects
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 255),
		G: uint8(uint16(c.G) * uint16(a) / 255),
		B: uint8(uint16(c.B) * uint16(a) / 255),
		A: a,
	}
}
