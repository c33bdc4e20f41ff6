package smoothlife

import "image/color"

var smoothlifePalette = buildPalette()

// Palette exposes the color ramp used for rendering the field.
func (w *World) Palette() []color.RGBA {
	return smoothlifePalette
}

// buildPalette maps display bytes onto a blue-dominant ramp: blue rises
// linearly with the cell value, green quadratically and red cubically,
// so mid values read as deep blue and only saturated cells warm up.
func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		v := float64(i) / 255
		palette[i] = color.RGBA{
			R: uint8(v * v * v * 50),
			G: uint8(v * v * 100),
			B: uint8(i),
			A: 255,
		}
	}
	return palette
}

// refreshDisplay quantizes the continuous field into display bytes.
func (w *World) refreshDisplay() {
	cells := w.state.Cells()
	for i, v := range cells {
		w.display[i] = uint8(v * 255)
	}
}
