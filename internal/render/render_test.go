package render

import (
	"image"
	"testing"

	"github.com/ewgtools/ewgpal/internal/biome"
	"github.com/ewgtools/ewgpal/internal/palette"
)

func pixel(img image.Image, x, y int) biome.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return biome.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func TestRender_SwatchColors(t *testing.T) {
	p := worldPalette()
	img, err := Render(p, Options{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	lay, err := ComputeLayout(p, Options{})
	if err != nil {
		t.Fatalf("ComputeLayout error: %v", err)
	}

	if got := img.Bounds().Size(); got != image.Pt(lay.Width, lay.Height) {
		t.Fatalf("image size = %v, want %v", got, image.Pt(lay.Width, lay.Height))
	}

	// Sample just inside each cell's top-left corner: past the border,
	// above the centered text.
	samples := []struct {
		name     string
		col, row int
		want     biome.Color
	}{
		{"dune first color", 0, 0, biome.Color{R: 237, G: 201, B: 175}},
		{"dune second color", 1, 0, biome.Color{R: 194, G: 178, B: 128}},
		{"grassland", 0, 1, biome.Color{R: 34, G: 139, B: 34}},
	}

	for _, s := range samples {
		x := lay.LabelColWidth + s.col*lay.CellWidth + 2
		y := s.row*lay.CellHeight + 2
		if got := pixel(img, x, y); got != s.want {
			t.Errorf("%s: pixel (%d,%d) = %v, want %v", s.name, x, y, got, s.want)
		}
	}
}

func TestRender_BorderAndBackground(t *testing.T) {
	p := worldPalette()
	img, err := Render(p, Options{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	lay, err := ComputeLayout(p, Options{})
	if err != nil {
		t.Fatalf("ComputeLayout error: %v", err)
	}

	if got := pixel(img, 0, 0); got != (biome.Color{}) {
		t.Errorf("corner pixel = %v, want black border", got)
	}

	// plains has one swatch but the grid shows two columns; the unused cell
	// keeps the canvas background.
	gray := biome.Color{R: 0x40, G: 0x40, B: 0x40}
	x := lay.LabelColWidth + lay.CellWidth + 2
	y := lay.CellHeight + 2
	if got := pixel(img, x, y); got != gray {
		t.Errorf("unused cell pixel (%d,%d) = %v, want %v", x, y, got, gray)
	}
}

func TestRender_Empty(t *testing.T) {
	img, err := Render(palette.Build(nil), Options{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(1, 1) {
		t.Fatalf("empty image size = %v, want (1,1)", got)
	}
	if got := pixel(img, 0, 0); got != (biome.Color{R: 0x40, G: 0x40, B: 0x40}) {
		t.Errorf("empty canvas pixel = %v, want gray", got)
	}
}

func TestRender_WrappedGroupRepeatsLabelRow(t *testing.T) {
	// 12 swatches of one group wrap into two rows; the type label must be
	// drawn again on the second row.
	entries := make([]biome.Entry, 12)
	for i := range entries {
		entries[i] = biome.Entry{
			Type: "mesa", Name: "stripe",
			Color: biome.Color{R: 200, G: 100, B: 50},
			Index: i, Enabled: true,
		}
	}
	p := palette.Build(entries)

	img, err := Render(p, Options{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	lay, err := ComputeLayout(p, Options{})
	if err != nil {
		t.Fatalf("ComputeLayout error: %v", err)
	}
	if lay.Rows != 2 {
		t.Fatalf("Rows = %d, want 2", lay.Rows)
	}

	for r := 0; r < 2; r++ {
		if !hasLightText(img, 1, r*lay.CellHeight+1, lay.LabelColWidth-1, lay.CellHeight-1) {
			t.Errorf("label row %d has no white label text", r)
		}
	}
	// Third swatch of the second row is patch index 9+2 = 11, still filled.
	x := lay.LabelColWidth + 2*lay.CellWidth + 2
	y := lay.CellHeight + 2
	want := biome.Color{R: 200, G: 100, B: 50}
	if got := pixel(img, x, y); got != want {
		t.Errorf("wrapped swatch pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}

// hasLightText reports whether any pixel in the w x h region at (x, y) is
// bright enough to be white label text over the gray canvas.
func hasLightText(img image.Image, x, y, w, h int) bool {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c := pixel(img, x+dx, y+dy)
			if c.R >= 0xc8 && c.G >= 0xc8 && c.B >= 0xc8 {
				return true
			}
		}
	}
	return false
}
