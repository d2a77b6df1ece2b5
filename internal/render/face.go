package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFontSize is the label size in points used when [Options.FontSize]
// is unset.
const DefaultFontSize = 16

// newFace builds a font.Face for the embedded Go Regular typeface. Bundling
// the face keeps layout independent of platform font availability.
func newFace(size float64) (font.Face, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("building font face: %w", err)
	}
	return face, nil
}

func measure(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
