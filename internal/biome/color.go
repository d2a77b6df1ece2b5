package biome

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is one 24-bit RGB color from a biome's color list.
type Color struct {
	R, G, B uint8
}

// RGBA implements [image/color.Color] so a Color can be used directly as a
// drawing source.
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(c.R) * 0x101, uint32(c.G) * 0x101, uint32(c.B) * 0x101, 0xffff
}

// Hex returns the color as "#RRGGBB" with uppercase hex digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Decimal returns the color as "R, G, B" with base-10 channel values.
func (c Color) Decimal() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// Label returns a text color that contrasts with c: white on dark colors,
// black on light ones. Brightness uses the ITU-R 601 channel weights.
func (c Color) Label() Color {
	brightness := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	if brightness < 123 {
		return Color{R: 255, G: 255, B: 255}
	}
	return Color{}
}

// rgbObject is the {"r": .., "g": .., "b": ..} form of a color element.
// Pointers distinguish a missing channel from an explicit zero.
type rgbObject struct {
	R *float64 `json:"r"`
	G *float64 `json:"g"`
	B *float64 `json:"b"`
}

// ParseColor decodes one element of a biome's color list. Three shapes are
// accepted: a hex string ("#RRGGBB", the "#" may be omitted), an [r, g, b]
// array, and an {"r": .., "g": .., "b": ..} object. Out-of-range channel
// values are clamped rather than rejected.
func ParseColor(raw json.RawMessage) (Color, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return Color{}, fmt.Errorf("empty color element")
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Color{}, fmt.Errorf("color string: %w", err)
		}
		return parseHex(s)
	case '[':
		var channels []float64
		if err := json.Unmarshal(raw, &channels); err != nil {
			return Color{}, fmt.Errorf("color triple: %w", err)
		}
		if len(channels) != 3 {
			return Color{}, fmt.Errorf("color triple has %d values, want 3", len(channels))
		}
		return Color{
			R: clampChannel(channels[0]),
			G: clampChannel(channels[1]),
			B: clampChannel(channels[2]),
		}, nil
	case '{':
		var obj rgbObject
		if err := json.Unmarshal(raw, &obj); err != nil {
			return Color{}, fmt.Errorf("color object: %w", err)
		}
		if obj.R == nil || obj.G == nil || obj.B == nil {
			return Color{}, fmt.Errorf("color object missing r, g, or b")
		}
		return Color{
			R: clampChannel(*obj.R),
			G: clampChannel(*obj.G),
			B: clampChannel(*obj.B),
		}, nil
	default:
		return Color{}, fmt.Errorf("unrecognized color element %s", trimmed)
	}
}

// parseHex accepts "#RRGGBB" and "RRGGBB"; some worlds omit the "#".
func parseHex(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("hex color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

func clampChannel(v float64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(math.Round(v))
}
