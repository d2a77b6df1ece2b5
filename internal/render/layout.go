package render

import (
	"math"

	"github.com/ewgtools/ewgpal/internal/palette"
	"golang.org/x/image/font"
)

// Options controls rendering.
type Options struct {
	// FontSize is the label size in points; 0 means DefaultFontSize.
	FontSize float64
}

func (o Options) fontSize() float64 {
	if o.FontSize > 0 {
		return o.FontSize
	}
	return DefaultFontSize
}

// swatchTextRows sizes a cell this many text lines tall, giving the three
// labels breathing room above and below.
const swatchTextRows = 7

// Layout is the computed geometry of a palette image, in pixels.
type Layout struct {
	Width, Height int
	LabelColWidth int   // width of the leading type-label column
	CellWidth     int   // width of one swatch cell
	CellHeight    int   // height of one row
	Columns       int   // swatch columns in the grid
	Rows          int   // total rows across all groups
	GroupRows     []int // wrapped row count per group, aligned with Palette.Groups
}

// ComputeLayout measures the palette's labels with the embedded face and
// returns the resulting geometry. An empty palette yields a 1x1 placeholder.
func ComputeLayout(p *palette.Palette, opts Options) (Layout, error) {
	face, err := newFace(opts.fontSize())
	if err != nil {
		return Layout{}, err
	}
	defer face.Close()
	return layoutForFace(p, face), nil
}

func layoutForFace(p *palette.Palette, face font.Face) Layout {
	maxSwatches := p.MaxGroupSwatches()
	if maxSwatches == 0 {
		return Layout{Width: 1, Height: 1}
	}

	// Long swatch runs wrap; the wrap point grows with the cube root of the
	// largest group so color-heavy worlds stay roughly square.
	wrap := 3 * int(math.Ceil(math.Cbrt(float64(maxSwatches))))
	columns := maxSwatches
	if columns > wrap {
		columns = wrap
	}

	lay := Layout{
		Columns:   columns,
		GroupRows: make([]int, len(p.Groups)),
	}

	padding := measure(face, "   ")
	lineHeight := face.Metrics().Height.Ceil()

	labelWidth := 0
	cellText := 0
	for gi, g := range p.Groups {
		if w := measure(face, g.Type); w > labelWidth {
			labelWidth = w
		}
		for _, b := range g.Biomes {
			if w := measure(face, b.Name); w > cellText {
				cellText = w
			}
			for _, c := range b.Colors {
				if w := measure(face, c.Hex()); w > cellText {
					cellText = w
				}
				if w := measure(face, c.Decimal()); w > cellText {
					cellText = w
				}
			}
		}
		rows := (wrap - 1 + g.Swatches()) / wrap
		lay.GroupRows[gi] = rows
		lay.Rows += rows
	}

	lay.LabelColWidth = labelWidth + 2*padding
	lay.CellWidth = cellText + 2*padding
	lay.CellHeight = swatchTextRows*lineHeight + 2*padding
	lay.Width = 1 + lay.LabelColWidth + columns*lay.CellWidth
	lay.Height = 1 + lay.Rows*lay.CellHeight
	return lay
}
