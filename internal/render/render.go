package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ewgtools/ewgpal/internal/biome"
	"github.com/ewgtools/ewgpal/internal/palette"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas colors.
var (
	background = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	border     = color.RGBA{A: 0xff}
	labelText  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// swatch is one cell's content: the owning biome's name plus a single color.
type swatch struct {
	name  string
	color biome.Color
}

// Render draws the palette as a grid image: a type-label column followed by
// wrapped rows of labeled color swatches. Groups appear in palette order and
// the type label repeats on each wrapped row of its group.
func Render(p *palette.Palette, opts Options) (*image.RGBA, error) {
	face, err := newFace(opts.fontSize())
	if err != nil {
		return nil, err
	}
	defer face.Close()

	lay := layoutForFace(p, face)
	img := image.NewRGBA(image.Rect(0, 0, lay.Width, lay.Height))
	fillRect(img, img.Bounds(), background)
	if lay.Rows == 0 {
		return img, nil
	}

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	row := 0
	for gi, g := range p.Groups {
		swatches := groupSwatches(g)
		for r := 0; r < lay.GroupRows[gi]; r++ {
			y := row * lay.CellHeight

			labelCell := image.Rect(0, y, lay.LabelColWidth+1, y+lay.CellHeight+1)
			fillRect(img, labelCell, background)
			strokeRect(img, labelCell, border)
			drawCentered(img, face, g.Type,
				0, lay.LabelColWidth,
				y+(lay.CellHeight-lineHeight)/2+ascent, labelText)

			for c := 0; c < lay.Columns; c++ {
				idx := r*lay.Columns + c
				if idx >= len(swatches) {
					break
				}
				sw := swatches[idx]
				x := lay.LabelColWidth + c*lay.CellWidth
				cell := image.Rect(x, y, x+lay.CellWidth+1, y+lay.CellHeight+1)
				fillRect(img, cell, sw.color)
				strokeRect(img, cell, border)

				lines := []string{sw.name, sw.color.Hex(), sw.color.Decimal()}
				gap := lineHeight / 2
				textHeight := len(lines)*lineHeight + (len(lines)-1)*gap
				textY := y + (lay.CellHeight-textHeight)/2
				for _, line := range lines {
					drawCentered(img, face, line, x, lay.CellWidth, textY+ascent, sw.color.Label())
					textY += lineHeight + gap
				}
			}
			row++
		}
	}
	return img, nil
}

// groupSwatches flattens a group into drawing order: biomes as sorted by the
// palette, each biome's colors in listed order.
func groupSwatches(g palette.Group) []swatch {
	out := make([]swatch, 0, g.Swatches())
	for _, b := range g.Biomes {
		for _, c := range b.Colors {
			out = append(out, swatch{name: b.Name, color: c})
		}
	}
	return out
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// strokeRect draws a one-pixel border just inside r. Adjacent cells overlap
// by one pixel, so shared edges collapse into a single grid line.
func strokeRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

// drawCentered draws s horizontally centered within [x, x+width] with its
// baseline at y.
func drawCentered(img *image.RGBA, face font.Face, s string, x, width, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x+(width-measure(face, s))/2, y),
	}
	d.DrawString(s)
}
