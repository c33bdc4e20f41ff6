package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"soft-ca/internal/render"
)

// WritePNG saves cells as a PNG, colored through the palette when one is
// provided and grayscale otherwise.
func WritePNG(path string, w, h int, cells []uint8, palette []color.RGBA) error {
	if len(cells) != w*h {
		return fmt.Errorf("png: %d cells for a %dx%d frame", len(cells), w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if palette != nil {
		render.FillPaletteRGBA(img.Pix, cells, palette)
	} else {
		render.FillGrayRGBA(img.Pix, cells)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("png encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
