// Package render rasterizes a palette model into a single image.
//
// The image is a grid: a leading column carrying the biome type label, then
// one cell per swatch, wrapping long groups across multiple rows. Every cell
// is filled with its exact RGB color, given a one-pixel border, and
// annotated with the biome name, the "#RRGGBB" hex form, and the "R, G, B"
// decimal form in a contrasting text color.
//
// Text is measured and drawn with the embedded Go Regular typeface, so the
// geometry reported by [ComputeLayout] is deterministic regardless of the
// fonts installed on the host. [Render] produces the image in memory;
// encoding and writing belong to the imgenc package.
package render
