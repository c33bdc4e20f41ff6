// Package export writes simulation frames to disk, either as the raw
// grayscale PGM the headless runner defaults to or as palette-colored
// PNGs.
package export

import (
	"fmt"
	"os"
)

// WritePGM saves cells as a binary grayscale PGM (P5) image.
func WritePGM(path string, w, h int, cells []uint8) error {
	if len(cells) != w*h {
		return fmt.Errorf("pgm: %d cells for a %dx%d frame", len(cells), w, h)
	}
	buf := make([]byte, 0, len(cells)+32)
	buf = append(buf, fmt.Sprintf("P5\n%d %d\n255\n", w, h)...)
	buf = append(buf, cells...)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
