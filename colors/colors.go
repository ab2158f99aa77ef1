// Package colors holds the named slideview.Colors used by the viewer: a few basics, plus the palette for the scene and the HUD.
package colors

import "github.com/solarlune/slideview"

func Transparent() slideview.Color {
	return slideview.NewColor(0, 0, 0, 0)
}

func White() slideview.Color {
	return slideview.NewColor(1, 1, 1, 1)
}

func Black() slideview.Color {
	return slideview.NewColor(0, 0, 0, 1)
}

func Gray() slideview.Color {
	return slideview.NewColor(0.5, 0.5, 0.5, 1)
}

// Sky is the clear color behind the model.
func Sky() slideview.Color {
	return slideview.NewColor(0.55, 0.78, 0.95, 1)
}

// Ground is the color of the floor grid lines.
func Ground() slideview.Color {
	return slideview.NewColor(0.3, 0.55, 0.3, 1)
}

// HUDText is the color of regular HUD text.
func HUDText() slideview.Color {
	return slideview.NewColor(0.95, 0.95, 0.95, 1)
}

// HUDHighlight marks the active preset in the HUD.
func HUDHighlight() slideview.Color {
	return slideview.NewColor(1, 0.78, 0.2, 1)
}

// HUDShadow is drawn under HUD text to keep it readable over the sky.
func HUDShadow() slideview.Color {
	return slideview.NewColor(0, 0, 0, 0.6)
}

// SlideOrange, PoolBlue, and TowerGray match the materials of the built-in water slide model.
func SlideOrange() slideview.Color {
	return slideview.NewColor(1, 0.35, 0.05, 1)
}

func PoolBlue() slideview.Color {
	return slideview.NewColor(0.05, 0.45, 0.85, 1)
}

func TowerGray() slideview.Color {
	return slideview.NewColor(0.45, 0.47, 0.52, 1)
}
